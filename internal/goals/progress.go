package goals

import (
	"github.com/vansan/gymtrack/internal/weights"
)

// WeightProgress describes how far along a weight goal is.
type WeightProgress struct {
	CurrentKg  float64 `json:"currentKg"`
	InitialKg  float64 `json:"initialKg"`
	TargetKg   float64 `json:"targetKg"`
	Percentage float64 `json:"percentage"`
	IsGain     bool    `json:"isGain"`
}

// WeightGoalProgress computes progress towards a weight goal from the
// user's weigh-in history. The initial weight is the oldest entry, the
// current weight the newest. A target above the initial weight is a
// gain goal, otherwise a loss goal. The percentage is clamped to [0, 100].
// Returns nil when there are no entries to measure against.
func WeightGoalProgress(goal Goal, entries []weights.Entry) *WeightProgress {
	if len(entries) == 0 {
		return nil
	}

	newest := entries[0]
	oldest := entries[0]
	for _, e := range entries[1:] {
		if e.WeekStart.After(newest.WeekStart) {
			newest = e
		}
		if e.WeekStart.Before(oldest.WeekStart) {
			oldest = e
		}
	}

	currentKg := newest.WeightKg
	initialKg := oldest.WeightKg
	isGain := goal.TargetValue > initialKg

	var percentage float64
	switch {
	case goal.TargetValue == initialKg:
		// nothing to gain or lose, the goal counts as met once the
		// current weight matches it
		if currentKg == goal.TargetValue {
			percentage = 100
		}
	case isGain:
		totalToGain := goal.TargetValue - initialKg
		gained := currentKg - initialKg
		percentage = clampPercentage(gained / totalToGain * 100)
	default:
		totalToLose := initialKg - goal.TargetValue
		lost := initialKg - currentKg
		percentage = clampPercentage(lost / totalToLose * 100)
	}

	return &WeightProgress{
		CurrentKg:  currentKg,
		InitialKg:  initialKg,
		TargetKg:   goal.TargetValue,
		Percentage: percentage,
		IsGain:     isGain,
	}
}

func clampPercentage(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
