package api

import "time"

// UserResponse never carries the password hash.
// swagger:model api.UserResponse
type UserResponse struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	LastName  string    `json:"lastName"`
	FirstName string    `json:"firstName"`
	Admin     bool      `json:"admin"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
