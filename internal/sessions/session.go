package sessions

import "time"

// Session is one training visit, with the exercises performed in it.
type Session struct {
	ID          string            `json:"id"`
	UserID      string            `json:"userId"`
	Date        time.Time         `json:"date"`
	DurationMin int               `json:"durationMin"`
	Notes       string            `json:"notes,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
	Exercises   []SessionExercise `json:"exercises"`
}

// SessionExercise is one exercise performed within a session.
type SessionExercise struct {
	ID         string  `json:"id"`
	SessionID  string  `json:"sessionId"`
	ExerciseID string  `json:"exerciseId"`
	Sets       int     `json:"sets"`
	Reps       int     `json:"reps"`
	WeightKg   float64 `json:"weightKg"`
}

// ListParams filters a user's session listing.
type ListParams struct {
	UserID string
	From   *time.Time
	To     *time.Time
}
