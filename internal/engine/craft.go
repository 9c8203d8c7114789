package engine

import (
	"math"
	"sort"

	"github.com/getgifts/starcase/internal/domain"
)

// CraftOutcome is the result of combining several items into one
type CraftOutcome struct {
	Target float64 // computed target value: input sum * CraftUplift
	Award  domain.Item
}

// ResolveCraft combines the input items into a single output. The target
// value is the input sum with a 15% uplift; candidates are catalog items
// worth at least 80% of the target, ranked by distance to the target, and
// the output is a uniform pick among the five closest. A catalog with no
// candidate at all falls back to its single highest-value item so a sparse
// catalog never fails a craft.
//
// Inputs must already be validated to CraftMinInputs..CraftMaxInputs; their
// consumption is the caller's job.
func (e *Engine) ResolveCraft(inputs []domain.Item, catalog []domain.CatalogItem) CraftOutcome {
	sum := 0
	for i := range inputs {
		sum += inputs[i].Value
	}
	target := float64(sum) * CraftUplift

	candidates := make([]domain.CatalogItem, 0, len(catalog))
	for _, t := range catalog {
		if float64(t.Value) >= target*CraftCandidateFloor {
			candidates = append(candidates, t)
		}
	}

	if len(candidates) == 0 {
		return CraftOutcome{Target: target, Award: e.mint(maxValueTemplate(catalog))}
	}

	// Closest to target first; equal distances break by value then name so
	// the candidate window is deterministic
	sort.Slice(candidates, func(i, j int) bool {
		di := math.Abs(float64(candidates[i].Value) - target)
		dj := math.Abs(float64(candidates[j].Value) - target)
		if di != dj {
			return di < dj
		}
		if candidates[i].Value != candidates[j].Value {
			return candidates[i].Value < candidates[j].Value
		}
		return candidates[i].Name < candidates[j].Name
	})

	window := CraftCandidateWindow
	if len(candidates) < window {
		window = len(candidates)
	}

	chosen := candidates[e.pick(window)]
	return CraftOutcome{Target: target, Award: e.mint(chosen)}
}

func maxValueTemplate(catalog []domain.CatalogItem) domain.CatalogItem {
	best := catalog[0]
	for _, t := range catalog[1:] {
		if t.Value > best.Value {
			best = t
		}
	}
	return best
}
