package cases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/getgifts/starcase/internal/catalog"
	"github.com/getgifts/starcase/internal/cooldown"
	"github.com/getgifts/starcase/internal/domain"
	"github.com/getgifts/starcase/internal/engine"
	"github.com/getgifts/starcase/internal/event"
	"github.com/getgifts/starcase/internal/logger"
	"github.com/getgifts/starcase/internal/repository"
)

// MaxQuantity caps how many cases one request may open
const MaxQuantity = 10

// OpenResult contains the outcome of opening one or more cases
type OpenResult struct {
	Items      []domain.Item `json:"items"`
	TotalValue int           `json:"total_value"`
	NewBalance int           `json:"new_balance"`
}

// Service defines the interface for case operations
type Service interface {
	List(ctx context.Context) []domain.Case
	Open(ctx context.Context, userID, caseID string, quantity int, code string) (*OpenResult, error)
}

type service struct {
	repo    repository.Ledger
	catalog *catalog.Catalog
	engine  *engine.Engine
	bus     event.Bus
	now     func() time.Time
}

// NewService creates a new case service
func NewService(repo repository.Ledger, cat *catalog.Catalog, eng *engine.Engine, bus event.Bus) Service {
	return &service{
		repo:    repo,
		catalog: cat,
		engine:  eng,
		bus:     bus,
		now:     time.Now,
	}
}

// List returns every case definition
func (s *service) List(ctx context.Context) []domain.Case {
	return s.catalog.Cases()
}

// Open validates the gate for the case type, debits or records the cooldown,
// draws the rewards and awards them, all within one transaction. The draw
// happens at call time; nothing about the outcome is deferred to the client.
func (s *service) Open(ctx context.Context, userID, caseID string, quantity int, code string) (*OpenResult, error) {
	log := logger.FromContext(ctx)

	cs, err := s.catalog.Case(caseID)
	if err != nil {
		return nil, err
	}

	if quantity < 1 || quantity > MaxQuantity {
		return nil, fmt.Errorf("%w: quantity must be between 1 and %d", domain.ErrInvalidInput, MaxQuantity)
	}
	// Gated free cases are a single draw; asking for more is a bad request,
	// not a silent downgrade.
	if cs.Type != domain.CaseTypeStandard && quantity != 1 {
		return nil, fmt.Errorf("%w: %s cases are limited to a single draw", domain.ErrInvalidInput, cs.Type)
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

	now := s.now()

	switch cs.Type {
	case domain.CaseTypeStandard:
		cost := cs.Price * quantity
		if profile.Balance < cost {
			return nil, fmt.Errorf("%w: need %d, have %d", domain.ErrInsufficientBalance, cost, profile.Balance)
		}
		profile.Balance -= cost

	case domain.CaseTypePromo:
		if !strings.EqualFold(code, cs.Code) {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidPromoCode, code)
		}
		if err := cooldown.CheckPromo(profile.LastPromoAt, now); err != nil {
			return nil, err
		}
		promoAt := now
		profile.LastPromoAt = &promoAt

	case domain.CaseTypeTopup:
		if profile.TotalRecharged < cs.MinRecharged {
			return nil, fmt.Errorf("%w: need %d recharged, have %d", domain.ErrRechargeTooLow, cs.MinRecharged, profile.TotalRecharged)
		}
		if err := cooldown.CheckTopup(profile.TopupUsage, caseID, now); err != nil {
			return nil, err
		}
		if profile.TopupUsage == nil {
			profile.TopupUsage = map[string]time.Time{}
		}
		profile.TopupUsage[caseID] = now
	}

	items := s.engine.DrawCase(cs, s.catalog.Items(), quantity)
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: catalog has no items", domain.ErrInvalidInput)
	}

	inventory, err := tx.GetInventory(ctx, userID)
	if err != nil {
		return nil, err
	}
	inventory.Add(items...)

	if err := tx.UpdateProfile(ctx, *profile); err != nil {
		return nil, err
	}
	if err := tx.UpdateInventory(ctx, userID, *inventory); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit case open: %w", err)
	}

	totalValue := 0
	names := make([]string, len(items))
	for i, item := range items {
		totalValue += item.Value
		names[i] = item.Name
	}

	log.Info("case opened",
		"user_id", userID,
		"case_id", caseID,
		"quantity", quantity,
		"total_value", totalValue)
	s.publish(ctx, event.NewCaseOpenedEvent(userID, caseID, string(cs.Type), quantity, names, totalValue))

	return &OpenResult{
		Items:      items,
		TotalValue: totalValue,
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
