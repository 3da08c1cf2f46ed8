package api

import "time"

// SessionRequest is the create/update body. Users lists participant IDs.
// swagger:model api.SessionRequest
type SessionRequest struct {
	Name        string    `json:"name" validate:"required,max=50" example:"yoga"`
	Date        time.Time `json:"date" validate:"required"`
	TeacherID   int       `json:"teacher_id" example:"1"`
	Description string    `json:"description" validate:"required,max=2500" example:"yoga for beginners"`
	Users       []int     `json:"users"`
}
