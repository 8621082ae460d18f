package users

import "time"

// User is one of the two tracked gym users. Users are seeded, there
// is no registration flow.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Img       string    `json:"img,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
