package store

import (
	"context"
	"fmt"

	"yoga-studio/internal/database"
	"yoga-studio/internal/model"
)

func GetTeacherByID(ctx context.Context, db database.DB, teacherID int) (*model.Teacher, error) {
	row := db.QueryRow(ctx,
		`SELECT id, first_name, last_name, created_at, updated_at
		 FROM teachers WHERE id = $1`,
		teacherID,
	)
	t := &model.Teacher{}
	if err := row.Scan(
		&t.ID,
		&t.FirstName,
		&t.LastName,
		&t.CreatedAt,
		&t.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("GetTeacherByID: %w", err)
	}
	return t, nil
}

func ListTeachers(ctx context.Context, db database.DB) ([]model.Teacher, error) {
	rows, err := db.Query(ctx,
		`SELECT id, first_name, last_name, created_at, updated_at
		 FROM teachers ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListTeachers: %w", err)
	}
	defer rows.Close()

	var teachers []model.Teacher
	for rows.Next() {
		var t model.Teacher
		if err := rows.Scan(&t.ID, &t.FirstName, &t.LastName, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("ListTeachers: %w", err)
		}
		teachers = append(teachers, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListTeachers: %w", err)
	}
	return teachers, nil
}
