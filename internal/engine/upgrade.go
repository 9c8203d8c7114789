package engine

import "github.com/getgifts/starcase/internal/domain"

// UpgradeOutcome is the result of a single upgrade spin
type UpgradeOutcome struct {
	Win    bool
	Stop   float64 // needle stop in [0, 360)
	Chance float64 // win probability actually applied
	// Award is the freshly-identified target instance; nil on a loss
	Award *domain.Item
}

// ResolveUpgrade samples a double-or-nothing upgrade of source into target.
// Win probability is source.Value / target.Value; the needle stops uniformly
// in [0, 360) and the spin wins when it lands inside the probability slice.
// A target cheaper than the source gives probability > 1 and always wins.
//
// Consumption of the source item is the caller's job and happens regardless
// of the outcome.
func (e *Engine) ResolveUpgrade(source domain.Item, target domain.CatalogItem) UpgradeOutcome {
	chance := float64(source.Value) / float64(target.Value)
	winAngle := chance * WheelDegrees

	stop := e.rnd() * WheelDegrees
	out := UpgradeOutcome{
		Win:    stop <= winAngle,
		Stop:   stop,
		Chance: chance,
	}
	if out.Win {
		award := e.mint(target)
		out.Award = &award
	}
	return out
}
