package domain

// CaseType distinguishes how opening a case is gated
type CaseType string

const (
	// CaseTypeStandard is price-gated: balance >= price * quantity
	CaseTypeStandard CaseType = "standard"
	// CaseTypePromo is gated by a case-specific code and a fixed 30-day cooldown
	CaseTypePromo CaseType = "promo"
	// CaseTypeTopup is gated by a lifetime-recharge threshold and a
	// once-per-calendar-day cooldown
	CaseTypeTopup CaseType = "topup"
)

// Valid reports whether t is a known case type
func (t CaseType) Valid() bool {
	switch t {
	case CaseTypeStandard, CaseTypePromo, CaseTypeTopup:
		return true
	}
	return false
}

// Case is a purchasable or gated container yielding random items from a
// rarity-filtered pool.
type Case struct {
	ID     string   `json:"id" validate:"required"`
	Name   string   `json:"name" validate:"required"`
	Type   CaseType `json:"type" validate:"required"`
	Rarity Rarity   `json:"rarity" validate:"required"`
	Image  string   `json:"image"`

	// Price in STARS; only meaningful for standard cases
	Price int `json:"price,omitempty"`
	// Code required to open; only meaningful for promo cases
	Code string `json:"code,omitempty"`
	// MinRecharged is the lifetime-recharge threshold; only meaningful for
	// topup cases
	MinRecharged int `json:"min_recharged,omitempty"`
}
