package summaries

import (
	"sort"

	"github.com/vansan/gymtrack/internal/weights"
)

// projectionWindow caps how many recent weigh-ins feed the projection.
const projectionWindow = 4

// ProjectNextWeight extrapolates next week's body weight from recent
// weigh-ins: the average of the deltas between consecutive entries is
// added to the last known weight. This is deliberately not a
// regression, only consecutive-pair averaging. Fewer than two entries
// produce no projection.
func ProjectNextWeight(entries []weights.Entry) (float64, bool) {
	if len(entries) < 2 {
		return 0, false
	}

	sorted := make([]weights.Entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].WeekStart.Before(sorted[j].WeekStart)
	})

	if len(sorted) > projectionWindow {
		sorted = sorted[len(sorted)-projectionWindow:]
	}

	var deltaSum float64
	for i := 1; i < len(sorted); i++ {
		deltaSum += sorted[i].WeightKg - sorted[i-1].WeightKg
	}
	averageChange := deltaSum / float64(len(sorted)-1)

	lastKnown := sorted[len(sorted)-1].WeightKg
	return lastKnown + averageChange, true
}
