// File: internal/service/session.go
package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"yoga-studio/internal/database"
	"yoga-studio/internal/store"

	"github.com/jackc/pgx/v5"
)

var (
	getSessionByID    = store.GetSessionByID
	getUserByID       = store.GetUserByID
	addParticipant    = store.AddSessionParticipant
	removeParticipant = store.RemoveSessionParticipant
)

// Participate books userID onto sessionID. Missing session or user yields
// ErrNotFound; a duplicate booking yields ErrBadRequest.
func Participate(ctx context.Context, db database.DB, sessionID, userID int) error {
	s, err := getSessionByID(ctx, db, sessionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("session %d: %w", sessionID, ErrNotFound)
		}
		return err
	}

	u, err := getUserByID(ctx, db, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("user %d: %w", userID, ErrNotFound)
		}
		return err
	}

	if slices.Contains(s.Users, u.ID) {
		return fmt.Errorf("user %d already participates in session %d: %w", userID, sessionID, ErrBadRequest)
	}

	return addParticipant(ctx, db, s.ID, u.ID)
}

// NoLongerParticipate removes userID from sessionID. A missing session
// yields ErrNotFound; removing a non-participant yields ErrBadRequest.
func NoLongerParticipate(ctx context.Context, db database.DB, sessionID, userID int) error {
	s, err := getSessionByID(ctx, db, sessionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("session %d: %w", sessionID, ErrNotFound)
		}
		return err
	}

	if !slices.Contains(s.Users, userID) {
		return fmt.Errorf("user %d does not participate in session %d: %w", userID, sessionID, ErrBadRequest)
	}

	return removeParticipant(ctx, db, s.ID, userID)
}
