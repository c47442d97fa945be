package recommend

import "sort"

// DefaultLimit is how many picks a ranking returns unless the caller asks
// for a different count.
const DefaultLimit = 3

// Rank scores every candidate, sorts descending by score and returns the
// first limit entries. The sort is stable so equal scores keep the order
// the search returned them in. Empty input or a zero limit returns an
// empty, non-nil slice.
func Rank(restaurants []Restaurant, ctx Context, limit int) []ScoredRestaurant {
	scored := make([]ScoredRestaurant, 0, len(restaurants))
	for _, r := range restaurants {
		scored = append(scored, Score(r, ctx))
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if limit < 0 {
		limit = 0
	}
	if limit > len(scored) {
		limit = len(scored)
	}
	return scored[:limit]
}
