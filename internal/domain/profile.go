package domain

import "time"

// Profile is the persisted ledger state of a single user. Balance is always
// non-negative; TotalRecharged only ever grows.
type Profile struct {
	UserID         string     `json:"user_id"`
	Username       string     `json:"username"`
	Balance        int        `json:"balance"`
	TotalRecharged int        `json:"total_recharged"`
	LastPromoAt    *time.Time `json:"last_promo_at,omitempty"`
	// TopupUsage maps case ID to the last time that topup case was opened
	TopupUsage map[string]time.Time `json:"topup_usage,omitempty"`
	CreatedAt  time.Time            `json:"created_at"`
}

// Inventory is the unordered set of owned item instances, stored as a JSONB
// document per user.
type Inventory struct {
	Items      []Item `json:"items"`
	LastUpdate int64  `json:"last_update,omitempty"`
}

// Find returns the index of the item with the given instance ID, or -1
func (inv *Inventory) Find(itemID string) int {
	for i := range inv.Items {
		if inv.Items[i].ID == itemID {
			return i
		}
	}
	return -1
}

// Remove deletes the item with the given instance ID from the inventory.
// Returns ErrNotInInventory if no such item is held.
func (inv *Inventory) Remove(itemID string) (Item, error) {
	i := inv.Find(itemID)
	if i == -1 {
		return Item{}, ErrNotInInventory
	}
	item := inv.Items[i]
	inv.Items = append(inv.Items[:i], inv.Items[i+1:]...)
	return item, nil
}

// Add appends awarded items to the inventory
func (inv *Inventory) Add(items ...Item) {
	inv.Items = append(inv.Items, items...)
}

// TotalValue sums the STARS value of every held item
func (inv *Inventory) TotalValue() int {
	total := 0
	for i := range inv.Items {
		total += inv.Items[i].Value
	}
	return total
}

// PromoCode maps a redeemable code to a flat STARS reward. Codes are matched
// case-insensitively.
type PromoCode struct {
	Code   string `json:"code" validate:"required"`
	Reward int    `json:"reward" validate:"required,gt=0"`
}
