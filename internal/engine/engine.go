package engine

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/getgifts/starcase/internal/domain"
)

// Engine resolves reward outcomes for cases, upgrades, crafts and PvP
// matches. Every resolver is pure given the injected random source: it reads
// no shared state and performs no I/O. Debits, credits and inventory
// mutation are the caller's responsibility, applied around the resolver call.
//
// Outcomes are determined at call time. Any spin or reveal animation is a
// presentation concern and must not influence the result.
type Engine struct {
	rnd   func() float64 // uniform in [0, 1)
	now   func() time.Time
	newID func() string
}

// New creates an engine backed by the default random source
func New() *Engine {
	return NewWithSource(
		rand.Float64, //nolint:gosec // Game odds, not security critical
		time.Now,
		uuid.NewString,
	)
}

// NewWithSource creates an engine with explicit randomness, clock and ID
// generation. Tests use this to make outcomes deterministic.
func NewWithSource(rnd func() float64, now func() time.Time, newID func() string) *Engine {
	return &Engine{rnd: rnd, now: now, newID: newID}
}

// mint creates a freshly-identified owned instance from a drop template
func (e *Engine) mint(t domain.CatalogItem) domain.Item {
	return domain.Item{
		ID:         e.newID(),
		Name:       t.Name,
		Rarity:     t.Rarity,
		Value:      t.Value,
		Image:      t.Image,
		AcquiredAt: e.now(),
	}
}

// pick returns a uniformly random index in [0, n)
func (e *Engine) pick(n int) int {
	return int(e.rnd() * float64(n))
}
