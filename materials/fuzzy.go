package materials

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// similarity scores two names on edit distance, 1 for equal strings,
// case-insensitively.
func similarity(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	if a == b {
		return 1.0
	}
	d := levenshtein.ComputeDistance(a, b)
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	if n == 0 {
		return 0.0
	}
	return 1.0 - float64(d)/float64(n)
}

// complete reports whether density, conductivity and heat capacity are
// all obtainable for the canonical name. Refractory and building
// entries always are; ASHRAE entries need density and heat capacity
// stored.
func complete(name string) bool {
	switch provenance[name] {
	case TableRefractory, TableBuilding:
		return true
	case TableASHRAE:
		row := ashrae[name]
		return row.Rho != nil && row.Cp != nil
	default:
		return false
	}
}

// rankedMatches returns every material name at or above the similarity
// cutoff, best first. Ties keep table order: refractories, ASHRAE,
// building.
func rankedMatches(name string, cutoff float64) []string {
	type scored struct {
		name string
		sim  float64
		pos  int
	}
	var hits []scored
	for i, candidate := range sortedNames {
		if sim := similarity(name, candidate); sim >= cutoff {
			hits = append(hits, scored{candidate, sim, i})
		}
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].sim != hits[j].sim {
			return hits[i].sim > hits[j].sim
		}
		return hits[i].pos < hits[j].pos
	})
	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.name
	}
	return out
}

// Nearest resolves free text to the closest canonical material name.
// Cutoffs are tried in tiers (strict, loose, none) so a result is
// always produced from the non-empty tables. With completeOnly only
// materials with density, conductivity and heat capacity all available
// are considered.
func Nearest(name string, completeOnly bool) string {
	load()
	if completeOnly {
		for _, hit := range rankedMatches(name, 0) {
			if complete(hit) {
				return hit
			}
		}
		return ""
	}
	for _, cutoff := range []float64{0.6, 0.3, 0} {
		if hits := rankedMatches(name, cutoff); len(hits) > 0 {
			return hits[0]
		}
	}
	return ""
}
