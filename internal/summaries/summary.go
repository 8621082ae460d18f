package summaries

import (
	"math"
	"sort"
	"time"

	"github.com/vansan/gymtrack/internal/goals"
	"github.com/vansan/gymtrack/internal/weights"
)

// WeeklySummary is a memoized aggregate for one user and one week.
// At most one row exists per (userId, weekStart), and a row is only
// ever created for weeks with at least one session.
type WeeklySummary struct {
	ID             string    `json:"id"`
	UserID         string    `json:"userId"`
	WeekStart      time.Time `json:"weekStart"`
	Sessions       int       `json:"sessions"`
	TotalMin       int       `json:"totalMin"`
	TotalExercises int       `json:"totalExercises"`
	CreatedAt      time.Time `json:"createdAt"`
}

// TopExercise is an exercise ranked by how many sessions performed it
// within a week.
type TopExercise struct {
	ExerciseID string `json:"exerciseId"`
	Count      int    `json:"count"`
}

// WeeklyOverview is the full weekly report for one user. Summary is
// null for weeks without sessions, ProjectedWeightKg is null when
// there is not enough weigh-in history.
type WeeklyOverview struct {
	UserID            string         `json:"userId"`
	WeekStart         time.Time      `json:"weekStart"`
	WeekEnd           time.Time      `json:"weekEnd"`
	Summary           *WeeklySummary `json:"summary"`
	TopExercises      []TopExercise  `json:"topExercises"`
	WeightEntry       *weights.Entry `json:"weightEntry,omitempty"`
	ProjectedWeightKg *float64       `json:"projectedWeightKg,omitempty"`
	Goals             []goals.Goal   `json:"goals"`
}

// MonthlySummary aggregates the weekly summaries of the weeks
// overlapping one calendar month.
type MonthlySummary struct {
	UserID             string  `json:"userId"`
	Year               int     `json:"year"`
	Month              int     `json:"month"`
	TotalSessions      int     `json:"totalSessions"`
	TotalHours         float64 `json:"totalHours"`
	TotalExercises     int     `json:"totalExercises"`
	WeeksWithData      int     `json:"weeksWithData"`
	AvgSessionsPerWeek float64 `json:"avgSessionsPerWeek"`
}

// MonthStats is one month's slice of an annual summary.
type MonthStats struct {
	Month           int      `json:"month"`
	TotalSessions   int      `json:"totalSessions"`
	TotalMinutes    int      `json:"totalMinutes"`
	TotalExercises  int      `json:"totalExercises"`
	AverageWeightKg *float64 `json:"averageWeightKg"`
	HasData         bool     `json:"hasData"`
}

// AnnualSummary rolls a year up month by month. Months entirely in the
// future are excluded unless they already have data.
type AnnualSummary struct {
	UserID                  string       `json:"userId"`
	Year                    int          `json:"year"`
	Months                  []MonthStats `json:"months"`
	TotalSessions           int          `json:"totalSessions"`
	TotalMinutes            int          `json:"totalMinutes"`
	TotalHours              float64      `json:"totalHours"`
	TotalExercises          int          `json:"totalExercises"`
	AverageSessionsPerMonth float64      `json:"averageSessionsPerMonth"`
}

// UserWeekStats is one user's side of a shared weekly summary.
type UserWeekStats struct {
	UserID         string   `json:"userId"`
	UserName       string   `json:"userName"`
	Sessions       int      `json:"sessions"`
	TotalMin       int      `json:"totalMin"`
	TotalExercises int      `json:"totalExercises"`
	TrainingDays   []string `json:"trainingDays"`
}

// SharedWeeklySummary compares both users over the same week.
type SharedWeeklySummary struct {
	WeekStart         time.Time       `json:"weekStart"`
	WeekEnd           time.Time       `json:"weekEnd"`
	Users             []UserWeekStats `json:"users"`
	SameDays          int             `json:"sameDays"`
	SameDayPercentage int             `json:"sameDayPercentage"`
	TotalSessions     int             `json:"totalSessions"`
	TotalMin          int             `json:"totalMin"`
	TotalExercises    int             `json:"totalExercises"`
}

// RegenerationResult reports the outcome of one user's bulk
// regeneration run.
type RegenerationResult struct {
	UserID    string    `json:"userId"`
	WeekStart time.Time `json:"weekStart"`
	Generated bool      `json:"generated"`
	Error     string    `json:"error,omitempty"`
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func round0(x float64) float64 {
	return math.Round(x)
}

// sortTopExercises orders by count descending, ties broken by ID for
// a stable listing.
func sortTopExercises(top []TopExercise) {
	sort.Slice(top, func(i, j int) bool {
		if top[i].Count != top[j].Count {
			return top[i].Count > top[j].Count
		}
		return top[i].ExerciseID < top[j].ExerciseID
	})
}
