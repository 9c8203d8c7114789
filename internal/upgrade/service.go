package upgrade

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

// Result contains the outcome of an upgrade attempt. The source item is
// consumed whether or not the wheel lands in the win arc.
type Result struct {
	Win        bool         `json:"win"`
	Stop       float64      `json:"stop"` // wheel stop angle in degrees
	Chance     float64      `json:"chance"`
	Award      *domain.Item `json:"award,omitempty"`
	NewBalance int          `json:"new_balance"`
}

// Service defines the interface for upgrade operations
type Service interface {
	Targets(ctx context.Context, userID, itemID string) ([]domain.CatalogItem, error)
	Resolve(ctx context.Context, userID, itemID, targetName string) (*Result, error)
}

type service struct {
	repo    repository.Ledger
	catalog *catalog.Catalog
	engine  *engine.Engine
	bus     event.Bus
}

// NewService creates a new upgrade service
func NewService(repo repository.Ledger, cat *catalog.Catalog, eng *engine.Engine, bus event.Bus) Service {
	return &service{
		repo:    repo,
		catalog: cat,
		engine:  eng,
		bus:     bus,
	}
}

// Targets lists the templates an owned item may be upgraded into: everything
// worth at least the minimum ratio times the source value.
func (s *service) Targets(ctx context.Context, userID, itemID string) ([]domain.CatalogItem, error) {
	inventory, err := s.repo.GetInventory(ctx, userID)
	if err != nil {
		return nil, err
	}

	i := inventory.Find(itemID)
	if i == -1 {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotInInventory, itemID)
	}

	return s.catalog.UpgradeTargets(inventory.Items[i].Value, engine.UpgradeMinTargetRatio), nil
}

// Resolve spins the upgrade wheel: the win probability is the value ratio
// between source and target. The source is consumed up front; on a win the
// target is minted into the inventory, on a loss nothing is awarded.
func (s *service) Resolve(ctx context.Context, userID, itemID, targetName string) (*Result, error) {
	log := logger.FromContext(ctx)

	target, err := s.catalog.Template(targetName)
	if err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	profile, err := tx.GetProfileForUpdate(ctx, userID)
	if err != nil {
		return nil, err
	}

	inventory, err := tx.GetInventory(ctx, userID)
	if err != nil {
		return nil, err
	}

	source, err := inventory.Remove(itemID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, itemID)
	}

	if float64(target.Value) < float64(source.Value)*engine.UpgradeMinTargetRatio {
		return nil, fmt.Errorf("%w: %s is worth %d, need at least %.0f",
			domain.ErrTargetBelowRatio, targetName, target.Value,
			float64(source.Value)*engine.UpgradeMinTargetRatio)
	}

	outcome := s.engine.ResolveUpgrade(source, target)
	if outcome.Win {
		inventory.Add(*outcome.Award)
	}

	if err := tx.UpdateInventory(ctx, userID, *inventory); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit upgrade: %w", err)
	}

	log.Info("upgrade resolved",
		"user_id", userID,
		"source", source.Name,
		"target", targetName,
		"chance", outcome.Chance,
		"win", outcome.Win)
	s.publish(ctx, event.NewUpgradeResolvedEvent(
		userID, source.Name, source.Value, targetName, target.Value, outcome.Chance, outcome.Win))

	return &Result{
		Win:        outcome.Win,
		Stop:       outcome.Stop,
		Chance:     outcome.Chance,
		Award:      outcome.Award,
		NewBalance: profile.Balance,
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
