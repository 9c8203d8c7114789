package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/getgifts/starcase/internal/domain"
)

// Data is the on-disk shape of the static catalog: drop templates, case
// definitions and the general promo-code table.
type Data struct {
	Items      []domain.CatalogItem `json:"items" validate:"required,min=1,dive"`
	Cases      []domain.Case        `json:"cases" validate:"required,min=1,dive"`
	PromoCodes []domain.PromoCode   `json:"promo_codes" validate:"dive"`
}

// Catalog is the loaded, validated lookup layer used by every resolver
// caller. It is immutable after load; per-rarity pools are precomputed.
type Catalog struct {
	items    []domain.CatalogItem
	byName   map[string]domain.CatalogItem
	byRarity map[domain.Rarity][]domain.CatalogItem
	cases    map[string]domain.Case
	caseList []domain.Case
	promos   map[string]int // upper-cased code -> flat STARS reward
}

// Load reads and validates a catalog JSON file
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	return New(data)
}

// New builds a catalog from already-decoded data, validating every entry.
// Items offered through any resolver must carry a rarity and a positive
// value, so misconfiguration fails at startup, not at draw time.
func New(data Data) (*Catalog, error) {
	if err := validator.New().Struct(data); err != nil {
		return nil, fmt.Errorf("catalog validation failed: %w", err)
	}

	c := &Catalog{
		items:    data.Items,
		byName:   make(map[string]domain.CatalogItem, len(data.Items)),
		byRarity: make(map[domain.Rarity][]domain.CatalogItem),
		cases:    make(map[string]domain.Case, len(data.Cases)),
		caseList: data.Cases,
		promos:   make(map[string]int, len(data.PromoCodes)),
	}

	for _, item := range data.Items {
		if !item.Rarity.Valid() {
			return nil, fmt.Errorf("item %q has unknown rarity %q", item.Name, item.Rarity)
		}
		if _, dup := c.byName[item.Name]; dup {
			return nil, fmt.Errorf("duplicate item name %q", item.Name)
		}
		c.byName[item.Name] = item
		c.byRarity[item.Rarity] = append(c.byRarity[item.Rarity], item)
	}

	for _, cs := range data.Cases {
		if !cs.Type.Valid() {
			return nil, fmt.Errorf("case %q has unknown type %q", cs.ID, cs.Type)
		}
		if !cs.Rarity.Valid() {
			return nil, fmt.Errorf("case %q has unknown rarity %q", cs.ID, cs.Rarity)
		}
		switch cs.Type {
		case domain.CaseTypeStandard:
			if cs.Price <= 0 {
				return nil, fmt.Errorf("standard case %q needs a positive price", cs.ID)
			}
		case domain.CaseTypePromo:
			if cs.Code == "" {
				return nil, fmt.Errorf("promo case %q needs a code", cs.ID)
			}
		case domain.CaseTypeTopup:
			if cs.MinRecharged <= 0 {
				return nil, fmt.Errorf("topup case %q needs a positive recharge threshold", cs.ID)
			}
		}
		if _, dup := c.cases[cs.ID]; dup {
			return nil, fmt.Errorf("duplicate case id %q", cs.ID)
		}
		c.cases[cs.ID] = cs
	}

	for _, p := range data.PromoCodes {
		c.promos[strings.ToUpper(p.Code)] = p.Reward
	}

	return c, nil
}

// Items returns every drop template
func (c *Catalog) Items() []domain.CatalogItem {
	return c.items
}

// ItemsByRarity returns the precomputed pool for one tier; may be empty
func (c *Catalog) ItemsByRarity(r domain.Rarity) []domain.CatalogItem {
	return c.byRarity[r]
}

// Template looks up a drop template by item name
func (c *Catalog) Template(name string) (domain.CatalogItem, error) {
	t, ok := c.byName[name]
	if !ok {
		return domain.CatalogItem{}, fmt.Errorf("%w: %s", domain.ErrItemNotFound, name)
	}
	return t, nil
}

// Cases returns every case definition in file order
func (c *Catalog) Cases() []domain.Case {
	return c.caseList
}

// Case looks up a case by ID
func (c *Catalog) Case(id string) (domain.Case, error) {
	cs, ok := c.cases[id]
	if !ok {
		return domain.Case{}, fmt.Errorf("%w: %s", domain.ErrCaseNotFound, id)
	}
	return cs, nil
}

// PromoReward resolves a general promo code (case-insensitive) to its flat
// STARS reward
func (c *Catalog) PromoReward(code string) (int, bool) {
	reward, ok := c.promos[strings.ToUpper(code)]
	return reward, ok
}

// UpgradeTargets returns templates eligible as upgrade targets for an item
// of the given value: everything worth at least ratio times the source,
// sorted is left to the caller. Templates equal in value to the floor are
// included.
func (c *Catalog) UpgradeTargets(sourceValue int, ratio float64) []domain.CatalogItem {
	floor := float64(sourceValue) * ratio
	var targets []domain.CatalogItem
	for _, t := range c.items {
		if float64(t.Value) >= floor {
			targets = append(targets, t)
		}
	}
	return targets
}
