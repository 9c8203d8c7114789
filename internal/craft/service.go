package craft

import (
	"context"
	"fmt"

	"github.com/getgifts/starcase/internal/catalog"
	"github.com/getgifts/starcase/internal/domain"
	"github.com/getgifts/starcase/internal/engine"
	"github.com/getgifts/starcase/internal/event"
	"github.com/getgifts/starcase/internal/logger"
	"github.com/getgifts/starcase/internal/repository"
)

// Result contains the outcome of combining items into a new one
type Result struct {
	Target float64     `json:"target"` // aimed-for value: input sum with uplift
	Award  domain.Item `json:"award"`
}

// Service defines the interface for craft operations
type Service interface {
	Resolve(ctx context.Context, userID string, itemIDs []string) (*Result, error)
}

type service struct {
	repo    repository.Ledger
	catalog *catalog.Catalog
	engine  *engine.Engine
	bus     event.Bus
}

// NewService creates a new craft service
func NewService(repo repository.Ledger, cat *catalog.Catalog, eng *engine.Engine, bus event.Bus) Service {
	return &service{
		repo:    repo,
		catalog: cat,
		engine:  eng,
		bus:     bus,
	}
}

// Resolve consumes between 4 and 12 owned items and awards one item picked
// near the uplifted combined value. All inputs are consumed atomically; an
// unknown input fails the craft without touching the inventory.
func (s *service) Resolve(ctx context.Context, userID string, itemIDs []string) (*Result, error) {
	log := logger.FromContext(ctx)

	if len(itemIDs) < engine.CraftMinInputs {
		return nil, fmt.Errorf("%w: got %d", domain.ErrTooFewCraftInputs, len(itemIDs))
	}
	if len(itemIDs) > engine.CraftMaxInputs {
		return nil, fmt.Errorf("%w: got %d", domain.ErrTooManyCraftInputs, len(itemIDs))
	}
	if hasDuplicates(itemIDs) {
		return nil, fmt.Errorf("%w: duplicate craft input", domain.ErrInvalidInput)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	inventory, err := tx.GetInventory(ctx, userID)
	if err != nil {
		return nil, err
	}

	inputs := make([]domain.Item, 0, len(itemIDs))
	inputValue := 0
	for _, id := range itemIDs {
		item, err := inventory.Remove(id)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", err, id)
		}
		inputs = append(inputs, item)
		inputValue += item.Value
	}

	outcome := s.engine.ResolveCraft(inputs, s.catalog.Items())
	inventory.Add(outcome.Award)

	if err := tx.UpdateInventory(ctx, userID, *inventory); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit craft: %w", err)
	}

	log.Info("craft completed",
		"user_id", userID,
		"inputs", len(inputs),
		"input_value", inputValue,
		"award", outcome.Award.Name)
	s.publish(ctx, event.NewCraftCompletedEvent(
		userID, len(inputs), inputValue, outcome.Target, outcome.Award.Name, outcome.Award.Value))

	return &Result{Target: outcome.Target, Award: outcome.Award}, nil
}

func hasDuplicates(ids []string) bool {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return true
		}
		seen[id] = struct{}{}
	}
	return false
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn("event publish failed", "event_type", evt.Type, "error", err)
	}
}
