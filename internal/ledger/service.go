package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/getgifts/starcase/internal/catalog"
	"github.com/getgifts/starcase/internal/domain"
	"github.com/getgifts/starcase/internal/event"
	"github.com/getgifts/starcase/internal/logger"
	"github.com/getgifts/starcase/internal/repository"
)

// SellResult contains the result of a sell operation
type SellResult struct {
	StarsGained int `json:"stars_gained"`
	ItemsSold   int `json:"items_sold"`
	NewBalance  int `json:"new_balance"`
}

// PromoResult contains the result of a general promo code redemption
type PromoResult struct {
	Reward     int `json:"reward"`
	NewBalance int `json:"new_balance"`
}

// Service defines the interface for ledger operations. The ledger is the
// single authority over balances and owned items; resolvers never mutate
// state themselves.
type Service interface {
	Register(ctx context.Context, username string) (*domain.Profile, error)
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
	GetInventory(ctx context.Context, userID string) (*domain.Inventory, error)
	SellItems(ctx context.Context, userID string, itemIDs []string) (*SellResult, error)
	SellAll(ctx context.Context, userID string) (*SellResult, error)
	RedeemPromo(ctx context.Context, userID, code string) (*PromoResult, error)
}

type service struct {
	repo    repository.Ledger
	catalog *catalog.Catalog
	bus     event.Bus
	now     func() time.Time
	newID   func() string
}

// NewService creates a new ledger service. Profile caching lives in the
// repository decorator so every mutating service invalidates it.
func NewService(repo repository.Ledger, cat *catalog.Catalog, bus event.Bus) Service {
	return &service{
		repo:    repo,
		catalog: cat,
		bus:     bus,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Register creates a new user with the starting balance and an empty inventory
func (s *service) Register(ctx context.Context, username string) (*domain.Profile, error) {
	log := logger.FromContext(ctx)

	profile := domain.Profile{
		UserID:     s.newID(),
		Username:   username,
		Balance:    StartingBalance,
		TopupUsage: map[string]time.Time{},
		CreatedAt:  s.now(),
	}

	if err := s.repo.CreateUser(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	log.Info("user registered", "user_id", profile.UserID, "username", username)
	s.publish(ctx, event.NewUserRegisteredEvent(profile.UserID, username, StartingBalance))

	return &profile, nil
}

// GetProfile retrieves a profile
func (s *service) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	return s.repo.GetProfile(ctx, userID)
}

// GetInventory retrieves the user's owned items
func (s *service) GetInventory(ctx context.Context, userID string) (*domain.Inventory, error) {
	return s.repo.GetInventory(ctx, userID)
}

// SellItems removes the given items from the inventory and credits their
// combined value. The whole operation is atomic: an unknown item ID fails
// the sale without touching balance or inventory.
func (s *service) SellItems(ctx context.Context, userID string, itemIDs []string) (*SellResult, error) {
	return s.sell(ctx, userID, itemIDs, false)
}

// SellAll liquidates the entire inventory
func (s *service) SellAll(ctx context.Context, userID string) (*SellResult, error) {
	return s.sell(ctx, userID, nil, true)
}

func (s *service) sell(ctx context.Context, userID string, itemIDs []string, all bool) (*SellResult, error) {
	log := logger.FromContext(ctx)

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

	if all {
		itemIDs = make([]string, len(inventory.Items))
		for i, item := range inventory.Items {
			itemIDs[i] = item.ID
		}
	}

	gained := 0
	for _, id := range itemIDs {
		item, err := inventory.Remove(id)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", err, id)
		}
		gained += item.Value
	}

	profile.Balance += gained

	if err := tx.UpdateProfile(ctx, *profile); err != nil {
		return nil, err
	}
	if err := tx.UpdateInventory(ctx, userID, *inventory); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit sale: %w", err)
	}

	log.Info("items sold", "user_id", userID, "count", len(itemIDs), "stars", gained)
	s.publish(ctx, event.NewItemsSoldEvent(userID, len(itemIDs), gained))

	return &SellResult{
		StarsGained: gained,
		ItemsSold:   len(itemIDs),
		NewBalance:  profile.Balance,
	}, nil
}

// RedeemPromo credits the flat reward attached to a general promo code.
// Codes are campaign-level and case-insensitive; an unknown code is a
// validation failure, not a server error.
func (s *service) RedeemPromo(ctx context.Context, userID, code string) (*PromoResult, error) {
	log := logger.FromContext(ctx)

	reward, ok := s.catalog.PromoReward(code)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidPromoCode, code)
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

	profile.Balance += reward

	if err := tx.UpdateProfile(ctx, *profile); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit redemption: %w", err)
	}

	log.Info("promo redeemed", "user_id", userID, "code", code, "reward", reward)
	s.publish(ctx, event.NewPromoRedeemedEvent(userID, code, reward))

	return &PromoResult{Reward: reward, NewBalance: profile.Balance}, nil
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn("event publish failed", "event_type", evt.Type, "error", err)
	}
}
