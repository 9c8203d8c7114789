package engine

import "math"

// PvPOutcome is the resolved result of a wheel duel
type PvPOutcome struct {
	CallerWins bool
	Stop       float64 // needle stop in [0, 360)
	Pot        int
	Payout     int // floor(pot * (1 - commission)) on a caller win, else 0
}

// ResolvePvP samples the winner of a two-player wheel duel. The caller's
// slice of the wheel is proportional to their share of the pot, making win
// probability exactly bet / (bet + opponentBet) - a pari-mutuel design. The
// house commission comes out of the pot, not on top of it. A losing caller's
// stake (debited at join) is simply not returned.
func (e *Engine) ResolvePvP(callerBet, opponentBet int) PvPOutcome {
	pot := callerBet + opponentBet
	callerSlice := float64(callerBet) / float64(pot) * WheelDegrees

	stop := e.rnd() * WheelDegrees
	out := PvPOutcome{
		CallerWins: stop <= callerSlice,
		Stop:       stop,
		Pot:        pot,
	}
	if out.CallerWins {
		out.Payout = int(math.Floor(float64(pot) * (1 - PvPCommission)))
	}
	return out
}

// OpponentBet synthesizes the counterpart's stake as bet + [0, spread).
// PvP services treat this as the default OpponentBetFunc; a real matchmaking
// system can substitute its own without touching ResolvePvP.
func (e *Engine) OpponentBet(bet int) int {
	return bet + e.pick(OpponentBetSpread)
}
