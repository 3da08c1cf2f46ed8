// File: internal/mapper/session.go
package mapper

import (
	"context"
	"errors"
	"fmt"

	"yoga-studio/internal/api"
	"yoga-studio/internal/database"
	"yoga-studio/internal/model"
	"yoga-studio/internal/service"
	"yoga-studio/internal/store"

	"github.com/jackc/pgx/v5"
)

var (
	getTeacherByID = store.GetTeacherByID
	getUserByID    = store.GetUserByID
)

// SessionFromRequest builds a session from the wire payload, resolving the
// teacher and each participant through the store. An unknown teacher yields
// ErrBadRequest; unknown participant IDs are dropped.
func SessionFromRequest(ctx context.Context, db database.DB, req *api.SessionRequest) (*model.Session, error) {
	s := &model.Session{
		Name:        req.Name,
		Description: req.Description,
		Date:        req.Date,
	}

	if req.TeacherID != 0 {
		t, err := getTeacherByID(ctx, db, req.TeacherID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, fmt.Errorf("teacher %d: %w", req.TeacherID, service.ErrBadRequest)
			}
			return nil, err
		}
		s.TeacherID = t.ID
	}

	for _, userID := range req.Users {
		u, err := getUserByID(ctx, db, userID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				continue
			}
			return nil, err
		}
		s.Users = append(s.Users, u.ID)
	}

	return s, nil
}

// SessionToResponse projects the teacher and participants back to IDs.
func SessionToResponse(s *model.Session) *api.SessionResponse {
	users := s.Users
	if users == nil {
		users = []int{}
	}
	return &api.SessionResponse{
		ID:          s.ID,
		Name:        s.Name,
		Date:        s.Date,
		TeacherID:   s.TeacherID,
		Description: s.Description,
		Users:       users,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// SessionsToResponse maps element-wise, preserving order.
func SessionsToResponse(sessions []model.Session) []api.SessionResponse {
	out := make([]api.SessionResponse, 0, len(sessions))
	for i := range sessions {
		out = append(out, *SessionToResponse(&sessions[i]))
	}
	return out
}
