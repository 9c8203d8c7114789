package cooldown

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getgifts/starcase/internal/domain"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func TestCheckPromo_FirstClaimAllowed(t *testing.T) {
	assert.NoError(t, CheckPromo(nil, testNow))
}

func TestCheckPromo_ExactBoundary(t *testing.T) {
	last := testNow.Add(-PromoInterval)
	assert.NoError(t, CheckPromo(&last, testNow), "claim exactly 30 days after the previous one must pass")
}

func TestCheckPromo_OneMillisecondShort(t *testing.T) {
	last := testNow.Add(-PromoInterval + time.Millisecond)
	err := CheckPromo(&last, testNow)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrOnCooldown)

	var onCooldown ErrOnCooldown
	require.True(t, errors.As(err, &onCooldown))
	assert.Equal(t, time.Millisecond, onCooldown.Remaining)
	assert.Equal(t, "promo", onCooldown.Action)
}

func TestCheckPromo_JustClaimed(t *testing.T) {
	last := testNow.Add(-time.Hour)
	err := CheckPromo(&last, testNow)
	require.Error(t, err)

	var onCooldown ErrOnCooldown
	require.True(t, errors.As(err, &onCooldown))
	assert.Equal(t, PromoInterval-time.Hour, onCooldown.Remaining)
}

func TestCheckTopup_NeverClaimed(t *testing.T) {
	assert.NoError(t, CheckTopup(nil, "bronze-topup", testNow))
	assert.NoError(t, CheckTopup(map[string]time.Time{}, "bronze-topup", testNow))
}

func TestCheckTopup_SameUTCDayRejected(t *testing.T) {
	usage := map[string]time.Time{
		"bronze-topup": time.Date(2025, 6, 15, 0, 0, 1, 0, time.UTC),
	}
	err := CheckTopup(usage, "bronze-topup", testNow)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrOnCooldown)

	var onCooldown ErrOnCooldown
	require.True(t, errors.As(err, &onCooldown))
	assert.Equal(t, 12*time.Hour, onCooldown.Remaining)
}

func TestCheckTopup_ResetsAtUTCMidnight(t *testing.T) {
	usage := map[string]time.Time{
		"bronze-topup": time.Date(2025, 6, 14, 23, 59, 59, 0, time.UTC),
	}
	// One second later it is a new calendar day, not a new 24h window.
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	assert.NoError(t, CheckTopup(usage, "bronze-topup", now))
}

func TestCheckTopup_PerCaseIndependence(t *testing.T) {
	usage := map[string]time.Time{
		"bronze-topup": testNow,
	}
	assert.Error(t, CheckTopup(usage, "bronze-topup", testNow))
	assert.NoError(t, CheckTopup(usage, "silver-topup", testNow))
}

func TestErrOnCooldown_Message(t *testing.T) {
	assert.Contains(t, ErrOnCooldown{Action: "promo", Remaining: 26 * time.Hour}.Error(), "26h")
	assert.Contains(t, ErrOnCooldown{Action: "topup", Remaining: 45 * time.Minute}.Error(), "45m")
}
