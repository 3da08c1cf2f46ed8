// File: internal/model/session.go
package model

import "time"

// Session is a bookable class. Users holds participant user IDs in append
// order; a user ID appears at most once.
type Session struct {
	ID          int       `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Date        time.Time `db:"date" json:"date"`
	TeacherID   int       `db:"teacher_id" json:"teacher_id"`
	Users       []int     `json:"users"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
