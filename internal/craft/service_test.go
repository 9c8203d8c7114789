package craft

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
			{Name: "Lucky Clover", Rarity: domain.RarityCommon, Value: 90},
			{Name: "Disco Ball", Rarity: domain.RarityCommon, Value: 120},
			{Name: "Magic Lamp", Rarity: domain.RarityRare, Value: 200},
			{Name: "Golden Crown", Rarity: domain.RarityLegendary, Value: 5000},
		},
		Cases: []domain.Case{
			{ID: "starter", Name: "Starter", Type: domain.CaseTypeStandard, Rarity: domain.RarityCommon, Price: 100},
		},
	})
	require.NoError(t, err)
	return c
}

func newTestService(t *testing.T, repo *fake.Ledger) Service {
	t.Helper()
	counter := 0
	eng := engine.NewWithSource(
		func() float64 { return 0.0 },
		func() time.Time { return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC) },
		func() string { counter++; return fmt.Sprintf("minted-%d", counter) },
	)
	return NewService(repo, testCatalog(t), eng, event.NewMemoryBus())
}

func seedInputs(repo *fake.Ledger, values ...int) []string {
	items := make([]domain.Item, len(values))
	ids := make([]string, len(values))
	for i, v := range values {
		id := fmt.Sprintf("i%d", i+1)
		items[i] = domain.Item{ID: id, Name: "Input", Value: v}
		ids[i] = id
	}
	repo.Seed(domain.Profile{UserID: userID, Username: "astra", Balance: 1500}, items...)
	return ids
}

func TestResolve_ConsumesInputsAndAwards(t *testing.T) {
	repo := fake.NewLedger()
	svc := newTestService(t, repo)
	ids := seedInputs(repo, 25, 25, 25, 25) // target 115

	result, err := svc.Resolve(context.Background(), userID, ids)
	require.NoError(t, err)

	assert.InDelta(t, 115.0, result.Target, 1e-9)
	assert.GreaterOrEqual(t, float64(result.Award.Value), result.Target*engine.CraftCandidateFloor)

	inventory := repo.Inventories[userID]
	require.Len(t, inventory.Items, 1, "all inputs consumed, one award added")
	assert.Equal(t, result.Award.ID, inventory.Items[0].ID)
}

func TestResolve_InputCountBounds(t *testing.T) {
	repo := fake.NewLedger()
	svc := newTestService(t, repo)
	ids := seedInputs(repo, 10, 10, 10)

	_, err := svc.Resolve(context.Background(), userID, ids)
	assert.ErrorIs(t, err, domain.ErrTooFewCraftInputs)

	tooMany := make([]string, engine.CraftMaxInputs+1)
	for i := range tooMany {
		tooMany[i] = fmt.Sprintf("x%d", i)
	}
	_, err = svc.Resolve(context.Background(), userID, tooMany)
	assert.ErrorIs(t, err, domain.ErrTooManyCraftInputs)
}

func TestResolve_DuplicateInputRejected(t *testing.T) {
	repo := fake.NewLedger()
	svc := newTestService(t, repo)
	ids := seedInputs(repo, 25, 25, 25, 25)

	_, err := svc.Resolve(context.Background(), userID, []string{ids[0], ids[0], ids[1], ids[2]})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestResolve_MissingInputLeavesInventoryUntouched(t *testing.T) {
	repo := fake.NewLedger()
	svc := newTestService(t, repo)
	ids := seedInputs(repo, 25, 25, 25, 25)

	_, err := svc.Resolve(context.Background(), userID, []string{ids[0], ids[1], ids[2], "ghost"})
	require.ErrorIs(t, err, domain.ErrNotInInventory)

	assert.Len(t, repo.Inventories[userID].Items, 4)
}

func TestResolve_PublishesEvent(t *testing.T) {
	repo := fake.NewLedger()
	bus := event.NewMemoryBus()

	var payload event.CraftCompletedPayloadV1
	bus.Subscribe(event.CraftCompleted, func(ctx context.Context, evt event.Event) error {
		var err error
		payload, err = event.DecodePayload[event.CraftCompletedPayloadV1](evt.Payload)
		return err
	})

	counter := 0
	eng := engine.NewWithSource(
		func() float64 { return 0.0 },
		func() time.Time { return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC) },
		func() string { counter++; return fmt.Sprintf("minted-%d", counter) },
	)
	svc := NewService(repo, testCatalog(t), eng, bus)
	ids := seedInputs(repo, 25, 25, 25, 25)

	_, err := svc.Resolve(context.Background(), userID, ids)
	require.NoError(t, err)

	assert.Equal(t, 4, payload.InputCount)
	assert.Equal(t, 100, payload.InputValue)
	assert.InDelta(t, 115.0, payload.Target, 1e-9)
}
