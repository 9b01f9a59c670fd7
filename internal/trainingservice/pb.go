package trainingservice

import (
	"slices"

	"github.com/sushihentaime/folio/internal/content"
)

var distanceRank = map[content.Distance]int{
	content.Distance5K:           1,
	content.Distance10K:          2,
	content.DistanceHalfMarathon: 3,
	content.DistanceMarathon:     4,
}

func rank(d content.Distance) int {
	if r, ok := distanceRank[d]; ok {
		return r
	}
	return len(distanceRank) + 1
}

// SortPersonalBests returns a copy of pbs ordered from the shortest race to
// the longest. Unknown distances sort last; equal ranks keep their order.
func SortPersonalBests(pbs []content.RunningPB) []content.RunningPB {
	sorted := slices.Clone(pbs)
	if sorted == nil {
		return []content.RunningPB{}
	}

	slices.SortStableFunc(sorted, func(a, b content.RunningPB) int {
		return rank(a.Distance) - rank(b.Distance)
	})

	return sorted
}
