package metrics

import (
	"context"

	"github.com/getgifts/starcase/internal/event"
	"github.com/getgifts/starcase/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.CaseOpened,
		event.UpgradeResolved,
		event.CraftCompleted,
		event.MatchCompleted,
		event.PromoRedeemed,
		event.WalletTopUp,
		event.ItemsSold,
		event.UserRegistered,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.CaseOpened:
		payload, err := event.DecodePayload[event.CaseOpenedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadMismatch, "type", evt.Type)
			return nil
		}
		CasesOpened.WithLabelValues(payload.CaseID).Add(float64(payload.Quantity))

	case event.UpgradeResolved:
		payload, err := event.DecodePayload[event.UpgradeResolvedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadMismatch, "type", evt.Type)
			return nil
		}
		UpgradesResolved.WithLabelValues(outcomeLabel(payload.Win)).Inc()

	case event.CraftCompleted:
		CraftsCompleted.Inc()

	case event.MatchCompleted:
		payload, err := event.DecodePayload[event.MatchCompletedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadMismatch, "type", evt.Type)
			return nil
		}
		MatchesCompleted.WithLabelValues(outcomeLabel(payload.CallerWon)).Inc()
		if payload.CallerWon {
			StarsEarned.Add(float64(payload.Payout))
		}

	case event.PromoRedeemed:
		payload, err := event.DecodePayload[event.PromoRedeemedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadMismatch, "type", evt.Type)
			return nil
		}
		PromosRedeemed.Inc()
		StarsEarned.Add(float64(payload.Reward))

	case event.WalletTopUp:
		payload, err := event.DecodePayload[event.WalletTopUpPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadMismatch, "type", evt.Type)
			return nil
		}
		WalletCredits.Inc()
		StarsEarned.Add(float64(payload.Credited))

	case event.ItemsSold:
		payload, err := event.DecodePayload[event.ItemsSoldPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadMismatch, "type", evt.Type)
			return nil
		}
		StarsEarned.Add(float64(payload.Value))
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func outcomeLabel(win bool) string {
	if win {
		return OutcomeWin
	}
	return OutcomeLoss
}
