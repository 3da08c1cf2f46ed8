package api

import "time"

// swagger:model api.SessionResponse
type SessionResponse struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Date        time.Time `json:"date"`
	TeacherID   int       `json:"teacher_id"`
	Description string    `json:"description"`
	Users       []int     `json:"users"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
