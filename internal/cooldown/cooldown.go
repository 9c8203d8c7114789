package cooldown

import (
	"fmt"
	"time"

	"github.com/getgifts/starcase/internal/domain"
)

// Gate windows for free-case claims. Promo cases recharge on a fixed
// interval from the previous claim; topup cases reset at UTC midnight.
const (
	PromoInterval = 30 * 24 * time.Hour

	dayLayout = "2006-01-02"
)

// ErrOnCooldown is returned when a free case was claimed too recently
type ErrOnCooldown struct {
	Action    string
	Remaining time.Duration
}

func (e ErrOnCooldown) Error() string {
	hours := int(e.Remaining.Hours())
	minutes := int(e.Remaining.Minutes()) % 60

	if hours > 0 {
		return fmt.Sprintf("action '%s' on cooldown: %dh %dm remaining", e.Action, hours, minutes)
	}
	return fmt.Sprintf("action '%s' on cooldown: %dm remaining", e.Action, minutes)
}

// Is allows errors.Is() to match both the typed error and the domain sentinel
func (e ErrOnCooldown) Is(target error) bool {
	if _, ok := target.(ErrOnCooldown); ok {
		return true
	}
	return target == domain.ErrOnCooldown
}

// CheckPromo gates a promo-case claim. A fresh account (no previous claim)
// passes; otherwise the full interval must have elapsed. A claim exactly at
// the interval boundary is allowed.
func CheckPromo(last *time.Time, now time.Time) error {
	if last == nil {
		return nil
	}
	elapsed := now.Sub(*last)
	if elapsed >= PromoInterval {
		return nil
	}
	return ErrOnCooldown{Action: "promo", Remaining: PromoInterval - elapsed}
}

// CheckTopup gates a topup-case claim: one claim per case per UTC calendar
// day. The usage map is keyed by case ID and holds the last claim time.
func CheckTopup(usage map[string]time.Time, caseID string, now time.Time) error {
	last, ok := usage[caseID]
	if !ok {
		return nil
	}
	if last.UTC().Format(dayLayout) != now.UTC().Format(dayLayout) {
		return nil
	}
	return ErrOnCooldown{Action: "topup", Remaining: untilNextUTCDay(now)}
}

func untilNextUTCDay(now time.Time) time.Duration {
	u := now.UTC()
	midnight := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC).Add(24 * time.Hour)
	return midnight.Sub(u)
}
