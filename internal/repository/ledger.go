package repository

import (
	"context"

	"github.com/getgifts/starcase/internal/domain"
)

// Ledger defines the interface for player balance and inventory persistence
type Ledger interface {
	CreateUser(ctx context.Context, profile domain.Profile) error
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, profile domain.Profile) error
	GetInventory(ctx context.Context, userID string) (*domain.Inventory, error)
	UpdateInventory(ctx context.Context, userID string, inventory domain.Inventory) error
	BeginTx(ctx context.Context) (LedgerTx, error)
}

// LedgerTx defines the interface for ledger transactions. Profile reads
// inside a transaction lock the row so concurrent spends serialize.
type LedgerTx interface {
	Tx
	GetProfileForUpdate(ctx context.Context, userID string) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, profile domain.Profile) error
	GetInventory(ctx context.Context, userID string) (*domain.Inventory, error)
	UpdateInventory(ctx context.Context, userID string, inventory domain.Inventory) error
}
