package repository

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/getgifts/starcase/internal/domain"
)

const (
	// ProfileCacheSize is the maximum number of cached profiles
	ProfileCacheSize = 1000

	// ProfileCacheTTL bounds staleness against writers outside this process
	ProfileCacheTTL = 30 * time.Second
)

// CachedLedger decorates a Ledger with an expirable profile cache. Every
// profile write flows through the decorator, including transactional ones,
// so all services sharing the decorated repository read their own writes
// immediately; the TTL only matters for writes this process never saw.
type CachedLedger struct {
	inner Ledger
	cache *expirable.LRU[string, domain.Profile]
}

// NewCachedLedger wraps inner with profile caching
func NewCachedLedger(inner Ledger) *CachedLedger {
	return &CachedLedger{
		inner: inner,
		cache: expirable.NewLRU[string, domain.Profile](ProfileCacheSize, nil, ProfileCacheTTL),
	}
}

// CreateUser implements Ledger
func (c *CachedLedger) CreateUser(ctx context.Context, profile domain.Profile) error {
	if err := c.inner.CreateUser(ctx, profile); err != nil {
		return err
	}
	c.cache.Remove(profile.UserID)
	return nil
}

// GetProfile serves the cached entry when one is fresh
func (c *CachedLedger) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	if profile, ok := c.cache.Get(userID); ok {
		return &profile, nil
	}

	profile, err := c.inner.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	c.cache.Add(userID, *profile)
	return profile, nil
}

// UpdateProfile implements Ledger, dropping the stale cache entry
func (c *CachedLedger) UpdateProfile(ctx context.Context, profile domain.Profile) error {
	c.cache.Remove(profile.UserID)
	return c.inner.UpdateProfile(ctx, profile)
}

// GetInventory implements Ledger
func (c *CachedLedger) GetInventory(ctx context.Context, userID string) (*domain.Inventory, error) {
	return c.inner.GetInventory(ctx, userID)
}

// UpdateInventory implements Ledger
func (c *CachedLedger) UpdateInventory(ctx context.Context, userID string, inventory domain.Inventory) error {
	return c.inner.UpdateInventory(ctx, userID, inventory)
}

// BeginTx wraps the transaction so profile writes drop their cache entries
func (c *CachedLedger) BeginTx(ctx context.Context) (LedgerTx, error) {
	tx, err := c.inner.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	return &cachedLedgerTx{LedgerTx: tx, cache: c.cache, touched: map[string]struct{}{}}, nil
}

type cachedLedgerTx struct {
	LedgerTx
	cache   *expirable.LRU[string, domain.Profile]
	touched map[string]struct{}
}

// UpdateProfile drops the entry up front and records the user so Commit can
// drop it again, covering a concurrent GetProfile repopulating it between
// the write and the commit.
func (t *cachedLedgerTx) UpdateProfile(ctx context.Context, profile domain.Profile) error {
	t.cache.Remove(profile.UserID)
	t.touched[profile.UserID] = struct{}{}
	return t.LedgerTx.UpdateProfile(ctx, profile)
}

func (t *cachedLedgerTx) Commit(ctx context.Context) error {
	if err := t.LedgerTx.Commit(ctx); err != nil {
		return err
	}
	for userID := range t.touched {
		t.cache.Remove(userID)
	}
	return nil
}
