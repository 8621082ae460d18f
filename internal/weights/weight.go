package weights

import "time"

// Entry is one weekly weigh-in. WeekStart is always the Monday of the
// entry's week, and there is at most one entry per user per week.
type Entry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	WeekStart time.Time `json:"weekStart"`
	WeightKg  float64   `json:"weightKg"`
	CreatedAt time.Time `json:"createdAt"`
}
