package pvp

import "time"

// DefaultJoinTimeout is how long a joined match stays open before it
// resolves on its own. The stake is committed at join: walking away does
// not refund it, the wheel simply spins without the caller watching.
const DefaultJoinTimeout = 60 * time.Second

// CreditRetryDelay is how long a match with a failed payout credit waits
// before the wheel result is settled again. A won pot stays owed until the
// credit lands.
const CreditRetryDelay = 5 * time.Second

// opponentNames is the pool of display names for synthesized opponents
var opponentNames = []string{"Nova", "Orbit", "Quasar", "Lyra", "Vega", "Comet", "Pulsar", "Astra"}
