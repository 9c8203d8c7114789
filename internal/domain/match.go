package domain

import (
	"time"

	"github.com/google/uuid"
)

// MatchState represents the lifecycle of a PvP wheel match.
// waiting -> countdown -> spinning -> result; result is terminal.
type MatchState string

const (
	MatchStateWaiting   MatchState = "waiting"
	MatchStateCountdown MatchState = "countdown"
	MatchStateSpinning  MatchState = "spinning"
	MatchStateResult    MatchState = "result"
)

// MatchPlayer is one side of a PvP wheel match. Players are ephemeral: they
// exist only for the lifetime of the match object.
type MatchPlayer struct {
	UserID   string `json:"user_id,omitempty"`
	Name     string `json:"name"`
	Bet      int    `json:"bet"`
	Avatar   string `json:"avatar,omitempty"`
	Color    string `json:"color,omitempty"`
	Opponent bool   `json:"opponent,omitempty"` // synthesized counterpart
}

// Match is a PvP wheel duel between a caller and a synthesized opponent.
type Match struct {
	ID           uuid.UUID    `json:"id"`
	State        MatchState   `json:"state"`
	Caller       MatchPlayer  `json:"caller"`
	Opponent     MatchPlayer  `json:"opponent"`
	CreatedAt    time.Time    `json:"created_at"`
	SpinDeadline time.Time    `json:"spin_deadline"`
	CompletedAt  *time.Time   `json:"completed_at,omitempty"`
	Result       *MatchResult `json:"result,omitempty"`
}

// Pot returns the combined stake of both players
func (m *Match) Pot() int {
	return m.Caller.Bet + m.Opponent.Bet
}

// MatchResult is the resolved outcome of a match
type MatchResult struct {
	WinnerName string  `json:"winner_name"`
	CallerWon  bool    `json:"caller_won"`
	Pot        int     `json:"pot"`
	Payout     int     `json:"payout"` // 0 when the caller lost
	Stop       float64 `json:"stop"`   // wheel needle stop in [0, 360)
}
