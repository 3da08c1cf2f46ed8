// File: internal/store/session.go
package store

import (
	"context"
	"fmt"

	"yoga-studio/internal/database"
	"yoga-studio/internal/model"
)

// Participant rows are ordered by their serial key so the list keeps
// append order.

func GetSessionByID(ctx context.Context, db database.DB, sessionID int) (*model.Session, error) {
	row := db.QueryRow(ctx,
		`SELECT id, name, description, date, COALESCE(teacher_id, 0), created_at, updated_at
		 FROM sessions WHERE id = $1`,
		sessionID,
	)
	s := &model.Session{}
	if err := row.Scan(
		&s.ID,
		&s.Name,
		&s.Description,
		&s.Date,
		&s.TeacherID,
		&s.CreatedAt,
		&s.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("GetSessionByID: %w", err)
	}

	users, err := sessionParticipants(ctx, db, sessionID)
	if err != nil {
		return nil, fmt.Errorf("GetSessionByID: %w", err)
	}
	s.Users = users
	return s, nil
}

func ListSessions(ctx context.Context, db database.DB) ([]model.Session, error) {
	rows, err := db.Query(ctx,
		`SELECT id, name, description, date, COALESCE(teacher_id, 0), created_at, updated_at
		 FROM sessions ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListSessions: %w", err)
	}
	defer rows.Close()

	var sessions []model.Session
	for rows.Next() {
		var s model.Session
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.Date, &s.TeacherID, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("ListSessions: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListSessions: %w", err)
	}

	prows, err := db.Query(ctx,
		`SELECT session_id, user_id FROM session_participants ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListSessions: %w", err)
	}
	defer prows.Close()

	bySession := map[int][]int{}
	for prows.Next() {
		var sessionID, userID int
		if err := prows.Scan(&sessionID, &userID); err != nil {
			return nil, fmt.Errorf("ListSessions: %w", err)
		}
		bySession[sessionID] = append(bySession[sessionID], userID)
	}
	if err := prows.Err(); err != nil {
		return nil, fmt.Errorf("ListSessions: %w", err)
	}
	for i := range sessions {
		sessions[i].Users = bySession[sessions[i].ID]
	}
	return sessions, nil
}

func CreateSession(ctx context.Context, db database.DB, s *model.Session) (*model.Session, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO sessions (name, description, date, teacher_id)
		 VALUES ($1, $2, $3, NULLIF($4, 0))
		 RETURNING id, created_at, updated_at`,
		s.Name,
		s.Description,
		s.Date,
		s.TeacherID,
	)
	if err := row.Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateSession: %w", err)
	}
	if err := replaceParticipants(ctx, db, s.ID, s.Users, false); err != nil {
		return nil, fmt.Errorf("CreateSession: %w", err)
	}
	return s, nil
}

func UpdateSession(ctx context.Context, db database.DB, s *model.Session) error {
	_, err := db.Exec(ctx,
		`UPDATE sessions
		 SET name = $1, description = $2, date = $3, teacher_id = NULLIF($4, 0), updated_at = now()
		 WHERE id = $5`,
		s.Name,
		s.Description,
		s.Date,
		s.TeacherID,
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateSession: %w", err)
	}
	if err := replaceParticipants(ctx, db, s.ID, s.Users, true); err != nil {
		return fmt.Errorf("UpdateSession: %w", err)
	}
	return nil
}

func DeleteSession(ctx context.Context, db database.DB, sessionID int) error {
	_, err := db.Exec(ctx,
		`DELETE FROM sessions WHERE id = $1`,
		sessionID,
	)
	if err != nil {
		return fmt.Errorf("DeleteSession: %w", err)
	}
	return nil
}

func AddSessionParticipant(ctx context.Context, db database.DB, sessionID, userID int) error {
	_, err := db.Exec(ctx,
		`INSERT INTO session_participants (session_id, user_id) VALUES ($1, $2)`,
		sessionID,
		userID,
	)
	if err != nil {
		return fmt.Errorf("AddSessionParticipant: %w", err)
	}
	return nil
}

func RemoveSessionParticipant(ctx context.Context, db database.DB, sessionID, userID int) error {
	_, err := db.Exec(ctx,
		`DELETE FROM session_participants WHERE session_id = $1 AND user_id = $2`,
		sessionID,
		userID,
	)
	if err != nil {
		return fmt.Errorf("RemoveSessionParticipant: %w", err)
	}
	return nil
}

func sessionParticipants(ctx context.Context, db database.DB, sessionID int) ([]int, error) {
	rows, err := db.Query(ctx,
		`SELECT user_id FROM session_participants WHERE session_id = $1 ORDER BY id`,
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []int
	for rows.Next() {
		var userID int
		if err := rows.Scan(&userID); err != nil {
			return nil, err
		}
		users = append(users, userID)
	}
	return users, rows.Err()
}

func replaceParticipants(ctx context.Context, db database.DB, sessionID int, users []int, clear bool) error {
	if clear {
		if _, err := db.Exec(ctx,
			`DELETE FROM session_participants WHERE session_id = $1`,
			sessionID,
		); err != nil {
			return err
		}
	}
	for _, userID := range users {
		if _, err := db.Exec(ctx,
			`INSERT INTO session_participants (session_id, user_id) VALUES ($1, $2)`,
			sessionID,
			userID,
		); err != nil {
			return err
		}
	}
	return nil
}
