package wallet

import (
	"context"
	"fmt"

	"github.com/getgifts/starcase/internal/domain"
	"github.com/getgifts/starcase/internal/event"
	"github.com/getgifts/starcase/internal/logger"
	"github.com/getgifts/starcase/internal/repository"
)

// Result contains the outcome of a completed top-up
type Result struct {
	Credited       int    `json:"credited"`
	NewBalance     int    `json:"new_balance"`
	TotalRecharged int    `json:"total_recharged"`
	Reference      string `json:"reference"`
}

// Service defines the interface for wallet operations
type Service interface {
	TopUp(ctx context.Context, userID string, units int) (*Result, error)
}

type service struct {
	repo     repository.Ledger
	provider Provider
	bus      event.Bus
}

// NewService creates a new wallet service
func NewService(repo repository.Ledger, provider Provider, bus event.Bus) Service {
	return &service{repo: repo, provider: provider, bus: bus}
}

// TopUp charges the payment provider and credits the converted STARS. The
// lifetime recharge counter moves with the balance in the same transaction,
// since topup case eligibility reads it.
func (s *service) TopUp(ctx context.Context, userID string, units int) (*Result, error) {
	log := logger.FromContext(ctx)

	if units <= 0 {
		return nil, fmt.Errorf("%w: units must be positive, got %d", domain.ErrInvalidInput, units)
	}

	reference, err := s.provider.Charge(ctx, userID, units)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrWalletTransaction, err)
	}

	credited := units * StarsPerUnit

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	profile, err := tx.GetProfileForUpdate(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile.Balance += credited
	profile.TotalRecharged += credited

	if err := tx.UpdateProfile(ctx, *profile); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit top-up: %w", err)
	}

	log.Info("wallet topped up",
		"user_id", userID,
		"units", units,
		"credited", credited,
		"reference", reference)
	s.publish(ctx, event.NewWalletTopUpEvent(userID, units, credited, profile.TotalRecharged))

	return &Result{
		Credited:       credited,
		NewBalance:     profile.Balance,
		TotalRecharged: profile.TotalRecharged,
		Reference:      reference,
	}, nil
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn("event publish failed", "event_type", evt.Type, "error", err)
	}
}
