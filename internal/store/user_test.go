package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"yoga-studio/internal/database"
	"yoga-studio/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

// fakeUserRow implements pgx.Row for user queries.
type fakeUserRow struct {
	scanErr error
	u       *model.User
}

func (r *fakeUserRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	u := r.u
	switch len(dest) {
	case 8:
		// GetUserByID / GetUserByEmail
		*dest[0].(*int) = u.ID
		*dest[1].(*string) = u.Email
		*dest[2].(*string) = u.FirstName
		*dest[3].(*string) = u.LastName
		*dest[4].(*string) = u.PasswordHash
		*dest[5].(*bool) = u.IsAdmin
		*dest[6].(*time.Time) = u.CreatedAt
		*dest[7].(*time.Time) = u.UpdatedAt
	case 3:
		// CreateUser: id, created_at, updated_at
		*dest[0].(*int) = u.ID
		*dest[1].(*time.Time) = u.CreatedAt
		*dest[2].(*time.Time) = u.UpdatedAt
	default:
		panic("fakeUserRow.Scan: unexpected number of dest")
	}
	return nil
}

func TestUserStore(t *testing.T) {
	now := time.Now().UTC()
	sample := model.User{
		ID:           1,
		Email:        "user@mail.fr",
		FirstName:    "userFirstName",
		LastName:     "userLastName",
		PasswordHash: "hash",
		IsAdmin:      false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	t.Run("GetUserByID ok", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{u: &sample}
			},
		}
		got, err := GetUserByID(context.Background(), db, 1)
		require.NoError(t, err)
		require.Equal(t, sample, *got)
	})

	t.Run("GetUserByID not found", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{scanErr: pgx.ErrNoRows}
			},
		}
		_, err := GetUserByID(context.Background(), db, 1)
		require.ErrorIs(t, err, pgx.ErrNoRows)
	})

	t.Run("GetUserByEmail ok", func(t *testing.T) {
		var gotArg any
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				gotArg = args[0]
				return &fakeUserRow{u: &sample}
			},
		}
		got, err := GetUserByEmail(context.Background(), db, "user@mail.fr")
		require.NoError(t, err)
		require.Equal(t, "user@mail.fr", gotArg)
		require.Equal(t, sample.ID, got.ID)
	})

	t.Run("GetUserByEmail err", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{scanErr: errors.New("scan")}
			},
		}
		_, err := GetUserByEmail(context.Background(), db, "user@mail.fr")
		require.Error(t, err)
	})

	t.Run("CreateUser ok", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{u: &model.User{ID: 9, CreatedAt: now, UpdatedAt: now}}
			},
		}
		u := &model.User{Email: "new@mail.fr", FirstName: "a", LastName: "b", PasswordHash: "h"}
		created, err := CreateUser(context.Background(), db, u)
		require.NoError(t, err)
		require.Equal(t, 9, created.ID)
		require.Equal(t, now, created.CreatedAt)
	})

	t.Run("CreateUser err", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{scanErr: errors.New("dup")}
			},
		}
		_, err := CreateUser(context.Background(), db, &model.User{})
		require.Error(t, err)
	})

	t.Run("DeleteUser", func(t *testing.T) {
		deleted := false
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
				deleted = true
				require.Equal(t, 1, args[0])
				return pgconn.CommandTag{}, nil
			},
		}
		require.NoError(t, DeleteUser(context.Background(), db, 1))
		require.True(t, deleted)

		db.ExecFn = func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
			return pgconn.CommandTag{}, errors.New("exec")
		}
		require.Error(t, DeleteUser(context.Background(), db, 1))
	})
}
