package engine

// Resolver tuning. These mirror the configured economy: changing them changes
// the house edge.
const (
	// WheelDegrees is the full sweep of the outcome wheel
	WheelDegrees = 360.0

	// UpgradeMinTargetRatio is the minimum target/source value ratio offered
	// by target listings, capping win probability near 0.6. The resolver
	// itself tolerates any ratio.
	UpgradeMinTargetRatio = 1.67

	// CraftMinInputs and CraftMaxInputs bound the number of items consumed
	// by a single craft
	CraftMinInputs = 4
	CraftMaxInputs = 12

	// CraftUplift is the target-value multiplier applied to the input sum
	CraftUplift = 1.15

	// CraftCandidateFloor excludes catalog items worth less than this
	// fraction of the target value
	CraftCandidateFloor = 0.8

	// CraftCandidateWindow is how many closest-to-target candidates the
	// final uniform pick runs over
	CraftCandidateWindow = 5

	// PvPCommission is the house cut taken from the winning pot
	PvPCommission = 0.025

	// OpponentBetSpread bounds the synthesized opponent's overbid:
	// opponentBet = bet + [0, OpponentBetSpread)
	OpponentBetSpread = 50
)
