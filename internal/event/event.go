package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Common event types
const (
	CaseOpened      Type = "case.opened"
	UpgradeResolved Type = "upgrade.resolved"
	CraftCompleted  Type = "craft.completed"
	MatchCompleted  Type = "match.completed"
	PromoRedeemed   Type = "promo.redeemed"
	WalletTopUp     Type = "wallet.topup"
	ItemsSold       Type = "items.sold"
	UserRegistered  Type = "user.registered"
)

// Typed event payloads for type safety

// CaseOpenedPayloadV1 is the typed payload for case opening events
type CaseOpenedPayloadV1 struct {
	UserID     string   `json:"user_id"`
	CaseID     string   `json:"case_id"`
	CaseType   string   `json:"case_type"`
	Quantity   int      `json:"quantity"`
	ItemNames  []string `json:"item_names"`
	TotalValue int      `json:"total_value"`
	Timestamp  int64    `json:"timestamp"`
}

// UpgradeResolvedPayloadV1 is the typed payload for upgrade wheel events
type UpgradeResolvedPayloadV1 struct {
	UserID      string  `json:"user_id"`
	SourceName  string  `json:"source_name"`
	SourceValue int     `json:"source_value"`
	TargetName  string  `json:"target_name"`
	TargetValue int     `json:"target_value"`
	Chance      float64 `json:"chance"`
	Win         bool    `json:"win"`
	Timestamp   int64   `json:"timestamp"`
}

// CraftCompletedPayloadV1 is the typed payload for craft events
type CraftCompletedPayloadV1 struct {
	UserID     string  `json:"user_id"`
	InputCount int     `json:"input_count"`
	InputValue int     `json:"input_value"`
	Target     float64 `json:"target"`
	AwardName  string  `json:"award_name"`
	AwardValue int     `json:"award_value"`
	Timestamp  int64   `json:"timestamp"`
}

// MatchCompletedPayloadV1 is the typed payload for duel wheel completion events
type MatchCompletedPayloadV1 struct {
	MatchID    string `json:"match_id"`
	CallerID   string `json:"caller_id"`
	WinnerName string `json:"winner_name"`
	CallerWon  bool   `json:"caller_won"`
	Pot        int    `json:"pot"`
	Payout     int    `json:"payout"`
	Timestamp  int64  `json:"timestamp"`
}

// PromoRedeemedPayloadV1 is the typed payload for promo code redemptions
type PromoRedeemedPayloadV1 struct {
	UserID    string `json:"user_id"`
	Code      string `json:"code"`
	Reward    int    `json:"reward"`
	Timestamp int64  `json:"timestamp"`
}

// WalletTopUpPayloadV1 is the typed payload for wallet credit events
type WalletTopUpPayloadV1 struct {
	UserID         string `json:"user_id"`
	Amount         int    `json:"amount"` // external currency units
	Credited       int    `json:"credited"`
	TotalRecharged int    `json:"total_recharged"`
	Timestamp      int64  `json:"timestamp"`
}

// ItemsSoldPayloadV1 is the typed payload for inventory sale events
type ItemsSoldPayloadV1 struct {
	UserID    string `json:"user_id"`
	Count     int    `json:"count"`
	Value     int    `json:"value"`
	Timestamp int64  `json:"timestamp"`
}

// UserRegisteredPayloadV1 is the typed payload for registration events
type UserRegisteredPayloadV1 struct {
	UserID          string `json:"user_id"`
	Username        string `json:"username"`
	StartingBalance int    `json:"starting_balance"`
	Timestamp       int64  `json:"timestamp"`
}

// Type-safe event constructors

// NewCaseOpenedEvent creates a new case opened event
func NewCaseOpenedEvent(userID, caseID, caseType string, quantity int, itemNames []string, totalValue int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CaseOpened,
		Payload: CaseOpenedPayloadV1{
			UserID:     userID,
			CaseID:     caseID,
			CaseType:   caseType,
			Quantity:   quantity,
			ItemNames:  itemNames,
			TotalValue: totalValue,
			Timestamp:  time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewUpgradeResolvedEvent creates a new upgrade resolved event
func NewUpgradeResolvedEvent(userID, sourceName string, sourceValue int, targetName string, targetValue int, chance float64, win bool) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    UpgradeResolved,
		Payload: UpgradeResolvedPayloadV1{
			UserID:      userID,
			SourceName:  sourceName,
			SourceValue: sourceValue,
			TargetName:  targetName,
			TargetValue: targetValue,
			Chance:      chance,
			Win:         win,
			Timestamp:   time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewCraftCompletedEvent creates a new craft completed event
func NewCraftCompletedEvent(userID string, inputCount, inputValue int, target float64, awardName string, awardValue int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CraftCompleted,
		Payload: CraftCompletedPayloadV1{
			UserID:     userID,
			InputCount: inputCount,
			InputValue: inputValue,
			Target:     target,
			AwardName:  awardName,
			AwardValue: awardValue,
			Timestamp:  time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewMatchCompletedEvent creates a new match completed event
func NewMatchCompletedEvent(matchID uuid.UUID, callerID, winnerName string, callerWon bool, pot, payout int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    MatchCompleted,
		Payload: MatchCompletedPayloadV1{
			MatchID:    matchID.String(),
			CallerID:   callerID,
			WinnerName: winnerName,
			CallerWon:  callerWon,
			Pot:        pot,
			Payout:     payout,
			Timestamp:  time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewPromoRedeemedEvent creates a new promo redeemed event
func NewPromoRedeemedEvent(userID, code string, reward int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PromoRedeemed,
		Payload: PromoRedeemedPayloadV1{
			UserID:    userID,
			Code:      code,
			Reward:    reward,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewWalletTopUpEvent creates a new wallet top-up event
func NewWalletTopUpEvent(userID string, amount, credited, totalRecharged int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    WalletTopUp,
		Payload: WalletTopUpPayloadV1{
			UserID:         userID,
			Amount:         amount,
			Credited:       credited,
			TotalRecharged: totalRecharged,
			Timestamp:      time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewItemsSoldEvent creates a new items sold event
func NewItemsSoldEvent(userID string, count, value int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemsSold,
		Payload: ItemsSoldPayloadV1{
			UserID:    userID,
			Count:     count,
			Value:     value,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewUserRegisteredEvent creates a new user registered event
func NewUserRegisteredEvent(userID, username string, startingBalance int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    UserRegistered,
		Payload: UserRegisteredPayloadV1{
			UserID:          userID,
			Username:        username,
			StartingBalance: startingBalance,
			Timestamp:       time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	// Handlers run synchronously; a worker pool can be slotted in here if
	// a subscriber ever becomes slow.
	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
