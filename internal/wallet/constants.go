package wallet

// StarsPerUnit is the exchange rate from one external currency unit to STARS
const StarsPerUnit = 100
