// Package fake provides in-memory repository implementations for service tests.
package fake

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/getgifts/starcase/internal/domain"
	"github.com/getgifts/starcase/internal/repository"
)

// Ledger is an in-memory repository.Ledger. Transactions snapshot state and
// apply on commit, so rollback semantics match the real repository closely
// enough for service-level tests.
type Ledger struct {
	mu          sync.Mutex
	Profiles    map[string]domain.Profile
	Inventories map[string]domain.Inventory

	// Error hooks for failure injection. Set through the setters when the
	// service under test runs background goroutines.
	CreateErr error
	BeginErr  error
	CommitErr error
	UpdateErr error
}

// SetUpdateErr installs or clears the profile/inventory write error hook
func (f *Ledger) SetUpdateErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.UpdateErr = err
}

// SetCommitErr installs or clears the commit error hook
func (f *Ledger) SetCommitErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CommitErr = err
}

func (f *Ledger) updateErr() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.UpdateErr
}

func (f *Ledger) commitErr() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.CommitErr
}

// NewLedger creates an empty fake ledger
func NewLedger() *Ledger {
	return &Ledger{
		Profiles:    make(map[string]domain.Profile),
		Inventories: make(map[string]domain.Inventory),
	}
}

// Seed installs a profile and inventory for a user
func (f *Ledger) Seed(profile domain.Profile, items ...domain.Item) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Profiles[profile.UserID] = profile
	f.Inventories[profile.UserID] = domain.Inventory{Items: items}
}

// CreateUser implements repository.Ledger
func (f *Ledger) CreateUser(ctx context.Context, profile domain.Profile) error {
	if f.CreateErr != nil {
		return f.CreateErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.Profiles[profile.UserID]; exists {
		return domain.ErrUserAlreadyExists
	}
	for _, p := range f.Profiles {
		if p.Username == profile.Username {
			return domain.ErrUserAlreadyExists
		}
	}
	f.Profiles[profile.UserID] = profile
	f.Inventories[profile.UserID] = domain.Inventory{Items: []domain.Item{}}
	return nil
}

// GetProfile implements repository.Ledger
func (f *Ledger) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.getProfileLocked(userID)
}

func (f *Ledger) getProfileLocked(userID string) (*domain.Profile, error) {
	profile, ok := f.Profiles[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	copied := profile
	if profile.TopupUsage != nil {
		copied.TopupUsage = make(map[string]time.Time, len(profile.TopupUsage))
		for k, v := range profile.TopupUsage {
			copied.TopupUsage[k] = v
		}
	}
	return &copied, nil
}

// UpdateProfile implements repository.Ledger
func (f *Ledger) UpdateProfile(ctx context.Context, profile domain.Profile) error {
	if err := f.updateErr(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.Profiles[profile.UserID]; !ok {
		return domain.ErrUserNotFound
	}
	f.Profiles[profile.UserID] = profile
	return nil
}

// GetInventory implements repository.Ledger
func (f *Ledger) GetInventory(ctx context.Context, userID string) (*domain.Inventory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.getInventoryLocked(userID)
}

func (f *Ledger) getInventoryLocked(userID string) (*domain.Inventory, error) {
	inventory, ok := f.Inventories[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	copied := domain.Inventory{
		Items:      append([]domain.Item(nil), inventory.Items...),
		LastUpdate: inventory.LastUpdate,
	}
	return &copied, nil
}

// UpdateInventory implements repository.Ledger
func (f *Ledger) UpdateInventory(ctx context.Context, userID string, inventory domain.Inventory) error {
	if err := f.updateErr(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.Inventories[userID]; !ok {
		return domain.ErrUserNotFound
	}
	f.Inventories[userID] = inventory
	return nil
}

// BeginTx implements repository.Ledger
func (f *Ledger) BeginTx(ctx context.Context) (repository.LedgerTx, error) {
	if f.BeginErr != nil {
		return nil, f.BeginErr
	}
	return &ledgerTx{parent: f}, nil
}

// ledgerTx buffers writes until commit
type ledgerTx struct {
	parent   *Ledger
	profiles []domain.Profile
	invOwner []string
	invs     []domain.Inventory
	done     bool
}

func (t *ledgerTx) GetProfileForUpdate(ctx context.Context, userID string) (*domain.Profile, error) {
	t.parent.mu.Lock()
	defer t.parent.mu.Unlock()
	return t.parent.getProfileLocked(userID)
}

func (t *ledgerTx) UpdateProfile(ctx context.Context, profile domain.Profile) error {
	if err := t.parent.updateErr(); err != nil {
		return err
	}
	t.profiles = append(t.profiles, profile)
	return nil
}

func (t *ledgerTx) GetInventory(ctx context.Context, userID string) (*domain.Inventory, error) {
	t.parent.mu.Lock()
	defer t.parent.mu.Unlock()
	return t.parent.getInventoryLocked(userID)
}

func (t *ledgerTx) UpdateInventory(ctx context.Context, userID string, inventory domain.Inventory) error {
	if err := t.parent.updateErr(); err != nil {
		return err
	}
	t.invOwner = append(t.invOwner, userID)
	t.invs = append(t.invs, inventory)
	return nil
}

func (t *ledgerTx) Commit(ctx context.Context) error {
	if err := t.parent.commitErr(); err != nil {
		return err
	}
	t.parent.mu.Lock()
	defer t.parent.mu.Unlock()
	for _, profile := range t.profiles {
		t.parent.Profiles[profile.UserID] = profile
	}
	for i, userID := range t.invOwner {
		t.parent.Inventories[userID] = t.invs[i]
	}
	t.done = true
	return nil
}

func (t *ledgerTx) Rollback(ctx context.Context) error {
	if t.done {
		return errors.New(domain.ErrMsgTxClosed)
	}
	t.profiles = nil
	t.invOwner = nil
	t.invs = nil
	return nil
}
