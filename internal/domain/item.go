package domain

import "time"

// Rarity represents the drop tier of an item. Tiers are ordered:
// Common < Rare < Epic < Legendary.
type Rarity string

const (
	RarityCommon    Rarity = "Common"
	RarityRare      Rarity = "Rare"
	RarityEpic      Rarity = "Epic"
	RarityLegendary Rarity = "Legendary"
)

// rarityOrder maps each tier to its position in the ordering
var rarityOrder = map[Rarity]int{
	RarityCommon:    0,
	RarityRare:      1,
	RarityEpic:      2,
	RarityLegendary: 3,
}

// Valid reports whether r is one of the four known tiers
func (r Rarity) Valid() bool {
	_, ok := rarityOrder[r]
	return ok
}

// Less reports whether r is a lower tier than other
func (r Rarity) Less(other Rarity) bool {
	return rarityOrder[r] < rarityOrder[other]
}

// CatalogItem is a static drop template. Templates are never owned directly:
// every award mints a fresh Item instance from a template.
type CatalogItem struct {
	Name   string `json:"name" validate:"required"`
	Rarity Rarity `json:"rarity" validate:"required"`
	Value  int    `json:"value" validate:"required,gt=0"` // STARS sale price and odds weight
	Image  string `json:"image"`
}

// Item is an owned item instance. The ID is unique per award; two awards of
// the same template produce two distinct instances.
type Item struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Rarity     Rarity    `json:"rarity"`
	Value      int       `json:"value"`
	Image      string    `json:"image,omitempty"`
	AcquiredAt time.Time `json:"acquired_at"`
}
