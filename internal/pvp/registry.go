package pvp

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/getgifts/starcase/internal/domain"
)

// CompletedRetention is how long resolved matches stay queryable
const CompletedRetention = 10 * time.Minute

// CompletedCacheSize caps how many resolved matches are retained
const CompletedCacheSize = 4096

// registry holds live matches keyed by match ID. Resolved matches move to a
// bounded, expiring cache so result queries keep working for a while without
// the registry growing without limit.
type registry struct {
	mu        sync.RWMutex
	active    map[uuid.UUID]*domain.Match
	completed *expirable.LRU[uuid.UUID, *domain.Match]
}

func newRegistry() *registry {
	return &registry{
		active:    make(map[uuid.UUID]*domain.Match),
		completed: expirable.NewLRU[uuid.UUID, *domain.Match](CompletedCacheSize, nil, CompletedRetention),
	}
}

// Put registers a live match
func (r *registry) Put(match *domain.Match) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.active[match.ID] = match
}

// Get returns a live or recently resolved match
func (r *registry) Get(id uuid.UUID) (*domain.Match, bool) {
	r.mu.RLock()
	match, ok := r.active[id]
	r.mu.RUnlock()
	if ok {
		return match, true
	}
	return r.completed.Get(id)
}

// Complete moves a match from the live set to the expiring result cache
func (r *registry) Complete(match *domain.Match) {
	r.mu.Lock()
	delete(r.active, match.ID)
	r.mu.Unlock()
	r.completed.Add(match.ID, match)
}

// ActiveCount returns the number of unresolved matches
func (r *registry) ActiveCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.active)
}
