package goals

import "time"

const (
	TypeWeight    = "weight"
	TypeFrequency = "frequency"
	TypeExercise  = "exercise"
)

// Goal is a per-user target. A user can have at most one goal per type.
type Goal struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Type        string    `json:"type"`
	TargetValue float64   `json:"targetValue"`
	CreatedAt   time.Time `json:"createdAt"`
}

func ValidType(goalType string) bool {
	switch goalType {
	case TypeWeight, TypeFrequency, TypeExercise:
		return true
	}
	return false
}
