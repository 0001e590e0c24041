//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CountBookings counts the room's bookings in status ("" counts every status).
func CountBookings(t *testing.T, db DBLike, roomID uuid.UUID, status string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM bookings WHERE room_id = $1 AND ($2::text = '' OR status = $2::text)",
		roomID, status).Scan(&n)
	require.NoError(t, err)
	return n
}

func BookingStatus(t *testing.T, db DBLike, bookingID uuid.UUID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM bookings WHERE id = $1", bookingID).Scan(&status)
	require.NoError(t, err)
	return status
}

// LastLogin returns nil until the user has logged in once.
func LastLogin(t *testing.T, db DBLike, email string) *time.Time {
	t.Helper()

	var at *time.Time
	err := db.QueryRow(context.Background(), "SELECT last_login FROM users WHERE email = $1", email).Scan(&at)
	require.NoError(t, err)
	return at
}
