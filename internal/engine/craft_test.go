package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getgifts/starcase/internal/domain"
)

func craftInputs(values ...int) []domain.Item {
	items := make([]domain.Item, len(values))
	for i, v := range values {
		items[i] = domain.Item{ID: string(rune('a' + i)), Name: "input", Value: v}
	}
	return items
}

func TestResolveCraft_TargetComputation(t *testing.T) {
	e := newTestEngine(1)
	// 4 items totalling 100 -> target 115
	out := e.ResolveCraft(craftInputs(25, 25, 25, 25), testCatalog())
	assert.InDelta(t, 115.0, out.Target, 1e-9)
}

func TestResolveCraft_OutputWithinCandidateWindow(t *testing.T) {
	e := newTestEngine(2)
	catalog := testCatalog()
	inputs := craftInputs(50, 50, 50, 50) // sum 200, target 230, floor 184

	// Candidates: 200, 300, 800, 1200, 5000 - all five form the window.
	// Anything below 184 must never appear.
	for i := 0; i < 1000; i++ {
		out := e.ResolveCraft(inputs, catalog)
		assert.GreaterOrEqual(t, float64(out.Award.Value), out.Target*CraftCandidateFloor)
	}
}

func TestResolveCraft_PicksAmongClosestFive(t *testing.T) {
	e := newTestEngine(3)
	catalog := []domain.CatalogItem{
		{Name: "v90", Rarity: domain.RarityCommon, Value: 90},
		{Name: "v100", Rarity: domain.RarityCommon, Value: 100},
		{Name: "v110", Rarity: domain.RarityCommon, Value: 110},
		{Name: "v120", Rarity: domain.RarityCommon, Value: 120},
		{Name: "v130", Rarity: domain.RarityCommon, Value: 130},
		{Name: "v140", Rarity: domain.RarityCommon, Value: 140},
		{Name: "v5000", Rarity: domain.RarityLegendary, Value: 5000},
	}
	inputs := craftInputs(25, 25, 25, 25) // target 115, floor 92

	// Eligible: 100..140 and 5000; the five closest to 115 are 100..140.
	seen := make(map[string]bool)
	for i := 0; i < 2000; i++ {
		out := e.ResolveCraft(inputs, catalog)
		seen[out.Award.Name] = true
		assert.NotEqual(t, "v5000", out.Award.Name)
		assert.NotEqual(t, "v90", out.Award.Name)
	}
	for _, name := range []string{"v100", "v110", "v120", "v130", "v140"} {
		assert.True(t, seen[name], "candidate %s never chosen", name)
	}
}

func TestResolveCraft_NoCandidateFallsBackToMaxValue(t *testing.T) {
	e := newTestEngine(4)
	catalog := []domain.CatalogItem{
		{Name: "Teddy Bear", Rarity: domain.RarityCommon, Value: 50},
		{Name: "Lollipop", Rarity: domain.RarityCommon, Value: 75},
	}
	// sum 400 -> target 460, floor 368: no candidate at all
	inputs := craftInputs(100, 100, 100, 100)

	out := e.ResolveCraft(inputs, catalog)
	assert.Equal(t, "Lollipop", out.Award.Name, "fallback must be the highest-value item")
	assert.Equal(t, 75, out.Award.Value)
}

func TestResolveCraft_BoundaryFloorExactlyMissed(t *testing.T) {
	e := newTestEngine(5)
	// 4 items of total value 100 -> target 115, floor 92
	inputs := craftInputs(40, 30, 20, 10)
	catalog := []domain.CatalogItem{
		{Name: "below", Rarity: domain.RarityCommon, Value: 91},
	}

	out := e.ResolveCraft(inputs, catalog)
	require.NotEmpty(t, out.Award.ID, "craft must never fail on a sparse catalog")
	assert.Equal(t, "below", out.Award.Name)
}

func TestResolveCraft_MaxInputs(t *testing.T) {
	e := newTestEngine(6)
	values := make([]int, CraftMaxInputs)
	for i := range values {
		values[i] = 100
	}

	out := e.ResolveCraft(craftInputs(values...), testCatalog())
	assert.InDelta(t, 1200*CraftUplift, out.Target, 1e-9)
	assert.Positive(t, out.Award.Value)
}

func TestResolveCraft_OutputValueNonNegative(t *testing.T) {
	e := newTestEngine(7)
	for i := 0; i < 100; i++ {
		out := e.ResolveCraft(craftInputs(1, 1, 1, 1), testCatalog())
		assert.GreaterOrEqual(t, out.Award.Value, 0)
		assert.False(t, math.IsNaN(out.Target))
	}
}
