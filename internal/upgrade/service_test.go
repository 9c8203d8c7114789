package upgrade

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getgifts/starcase/internal/catalog"
	"github.com/getgifts/starcase/internal/domain"
	"github.com/getgifts/starcase/internal/engine"
	"github.com/getgifts/starcase/internal/event"
	"github.com/getgifts/starcase/internal/testing/fake"
)

const userID = "0b1e9f66-0000-0000-0000-000000000001"

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(catalog.Data{
		Items: []domain.CatalogItem{
			{Name: "Teddy Bear", Rarity: domain.RarityCommon, Value: 50},
			{Name: "Magic Lamp", Rarity: domain.RarityRare, Value: 200},
			{Name: "Dragon Egg", Rarity: domain.RarityEpic, Value: 800},
			{Name: "Golden Crown", Rarity: domain.RarityLegendary, Value: 5000},
		},
		Cases: []domain.Case{
			{ID: "starter", Name: "Starter", Type: domain.CaseTypeStandard, Rarity: domain.RarityCommon, Price: 100},
		},
	})
	require.NoError(t, err)
	return c
}

func newTestService(t *testing.T, repo *fake.Ledger, rnd float64) Service {
	t.Helper()
	counter := 0
	eng := engine.NewWithSource(
		func() float64 { return rnd },
		func() time.Time { return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC) },
		func() string { counter++; return fmt.Sprintf("minted-%d", counter) },
	)
	return NewService(repo, testCatalog(t), eng, event.NewMemoryBus())
}

func seedUser(repo *fake.Ledger, items ...domain.Item) {
	repo.Seed(domain.Profile{UserID: userID, Username: "astra", Balance: 1500}, items...)
}

func TestTargets_FiltersByRatio(t *testing.T) {
	repo := fake.NewLedger()
	svc := newTestService(t, repo, 0)
	seedUser(repo, domain.Item{ID: "i1", Name: "Magic Lamp", Value: 200})

	// 200 * 1.67 = 334: Dragon Egg and Golden Crown qualify.
	targets, err := svc.Targets(context.Background(), userID, "i1")
	require.NoError(t, err)
	require.Len(t, targets, 2)
	for _, target := range targets {
		assert.GreaterOrEqual(t, float64(target.Value), 334.0)
	}
}

func TestTargets_NotOwned(t *testing.T) {
	repo := fake.NewLedger()
	svc := newTestService(t, repo, 0)
	seedUser(repo)

	_, err := svc.Targets(context.Background(), userID, "ghost")
	assert.ErrorIs(t, err, domain.ErrNotInInventory)
}

func TestResolve_WinConsumesSourceAndMintsTarget(t *testing.T) {
	repo := fake.NewLedger()
	svc := newTestService(t, repo, 0.0) // stop angle 0: always inside the win arc
	seedUser(repo, domain.Item{ID: "i1", Name: "Magic Lamp", Value: 200})

	result, err := svc.Resolve(context.Background(), userID, "i1", "Dragon Egg")
	require.NoError(t, err)

	assert.True(t, result.Win)
	assert.InDelta(t, 0.25, result.Chance, 1e-9)
	require.NotNil(t, result.Award)
	assert.Equal(t, "Dragon Egg", result.Award.Name)

	inventory := repo.Inventories[userID]
	require.Len(t, inventory.Items, 1)
	assert.Equal(t, "Dragon Egg", inventory.Items[0].Name)
	assert.NotEqual(t, "i1", inventory.Items[0].ID, "award is a fresh instance")
}

func TestResolve_LossStillConsumesSource(t *testing.T) {
	repo := fake.NewLedger()
	svc := newTestService(t, repo, 0.999) // stop angle ~359.6: outside a 25% arc
	seedUser(repo, domain.Item{ID: "i1", Name: "Magic Lamp", Value: 200})

	result, err := svc.Resolve(context.Background(), userID, "i1", "Dragon Egg")
	require.NoError(t, err)

	assert.False(t, result.Win)
	assert.Nil(t, result.Award)
	assert.Empty(t, repo.Inventories[userID].Items, "source is gone even on a loss")
}

func TestResolve_TargetBelowRatio(t *testing.T) {
	repo := fake.NewLedger()
	svc := newTestService(t, repo, 0.0)
	seedUser(repo, domain.Item{ID: "i1", Name: "Magic Lamp", Value: 200})

	// 200 * 1.67 = 334 > 200: same-value target rejected.
	_, err := svc.Resolve(context.Background(), userID, "i1", "Magic Lamp")
	require.ErrorIs(t, err, domain.ErrTargetBelowRatio)

	require.Len(t, repo.Inventories[userID].Items, 1, "rejected attempt must not consume the source")
}

func TestResolve_UnknownTargetOrSource(t *testing.T) {
	repo := fake.NewLedger()
	svc := newTestService(t, repo, 0.0)
	seedUser(repo, domain.Item{ID: "i1", Name: "Magic Lamp", Value: 200})

	_, err := svc.Resolve(context.Background(), userID, "i1", "Phantom")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	_, err = svc.Resolve(context.Background(), userID, "ghost", "Dragon Egg")
	assert.ErrorIs(t, err, domain.ErrNotInInventory)
}

func TestResolve_ChanceBoundedByRatioGate(t *testing.T) {
	repo := fake.NewLedger()
	svc := newTestService(t, repo, 0.0)
	// 2994 * 1.67 = 5000.0 (within rounding): the cheapest legal target gives
	// the best possible odds, which can never exceed 1/1.67.
	seedUser(repo, domain.Item{ID: "i1", Name: "Custom", Value: 2994})

	result, err := svc.Resolve(context.Background(), userID, "i1", "Golden Crown")
	require.NoError(t, err)
	assert.InDelta(t, 0.5988, result.Chance, 0.0001)
	assert.LessOrEqual(t, result.Chance, 1/engine.UpgradeMinTargetRatio+1e-9)
}
