// File: internal/model/teacher.go
package model

import "time"

// Teacher is reference data; rows are seeded by migration and read-only
// from the API surface.
type Teacher struct {
	ID        int       `db:"id" json:"id"`
	FirstName string    `db:"first_name" json:"first_name"`
	LastName  string    `db:"last_name" json:"last_name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
