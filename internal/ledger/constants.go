package ledger

// StartingBalance is the STARS balance granted at registration
const StartingBalance = 1500
