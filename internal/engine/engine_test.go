package engine

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/getgifts/starcase/internal/domain"
)

// newTestEngine returns an engine with a seeded random source, a fixed clock
// and sequential instance IDs, so outcomes are reproducible.
func newTestEngine(seed int64) *Engine {
	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // deterministic test source
	n := 0
	newID := func() string {
		n++
		return fmt.Sprintf("item-%d", n)
	}
	now := func() time.Time {
		return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	}
	return NewWithSource(rng.Float64, now, newID)
}

// fixedEngine returns an engine whose random source always yields v
func fixedEngine(v float64) *Engine {
	return NewWithSource(
		func() float64 { return v },
		time.Now,
		func() string { return "fixed-id" },
	)
}

func testCatalog() []domain.CatalogItem {
	return []domain.CatalogItem{
		{Name: "Teddy Bear", Rarity: domain.RarityCommon, Value: 50},
		{Name: "Lollipop", Rarity: domain.RarityCommon, Value: 75},
		{Name: "Magic Lamp", Rarity: domain.RarityRare, Value: 200},
		{Name: "Crystal Ball", Rarity: domain.RarityRare, Value: 300},
		{Name: "Dragon Egg", Rarity: domain.RarityEpic, Value: 800},
		{Name: "Phoenix Feather", Rarity: domain.RarityEpic, Value: 1200},
		{Name: "Golden Crown", Rarity: domain.RarityLegendary, Value: 5000},
	}
}
