package engine

import "github.com/getgifts/starcase/internal/domain"

// DrawCase draws quantity items for a case from the catalog. The pool is the
// subset of templates matching the case rarity; a case whose rarity matches
// nothing falls back to the entire catalog so a misconfigured case still
// produces a reward. Draws are independent and with replacement: duplicates
// within one open are valid.
//
// Each drawn item is a freshly-identified instance. An empty catalog is a
// configuration error and yields an empty result.
func (e *Engine) DrawCase(c domain.Case, catalog []domain.CatalogItem, quantity int) []domain.Item {
	if len(catalog) == 0 || quantity < 1 {
		return nil
	}

	pool := make([]domain.CatalogItem, 0, len(catalog))
	for _, t := range catalog {
		if t.Rarity == c.Rarity {
			pool = append(pool, t)
		}
	}
	if len(pool) == 0 {
		pool = catalog
	}

	items := make([]domain.Item, 0, quantity)
	for i := 0; i < quantity; i++ {
		items = append(items, e.mint(pool[e.pick(len(pool))]))
	}
	return items
}
