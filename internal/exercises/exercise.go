package exercises

import "time"

// Exercise is a catalog entry, shared between both users. Sessions
// reference exercises by ID.
type Exercise struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category,omitempty"`
	CreatorID string    `json:"creatorId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListFilter narrows the catalog listing. Zero values mean "no filter".
type ListFilter struct {
	Category  string
	CreatorID string
	// Search matches case-insensitively anywhere in the name.
	Search string
}
