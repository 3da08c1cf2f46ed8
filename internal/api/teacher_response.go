package api

import "time"

// swagger:model api.TeacherResponse
type TeacherResponse struct {
	ID        int       `json:"id"`
	LastName  string    `json:"lastName"`
	FirstName string    `json:"firstName"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
