package shared

import (
	"context"
	"math"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/domain/user"
	sqlc "hotel-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}

type Tx interface {
	Bookings() BookingRepository
	Rooms() RoomRepository
	Users() UserRepository
	DB() sqlc.DBTX
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	// FindOverlapping returns non-cancelled bookings of the room whose stay intersects [checkIn, checkOut).
	FindOverlapping(ctx context.Context, tx sqlc.DBTX, roomID uuid.UUID, stay booking.StayRange, excludeID *uuid.UUID) ([]*booking.Booking, error)
	// LockByID reads the booking with SELECT ... FOR UPDATE.
	LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
}

type RoomRepository interface {
	// LockForBooking serializes bookings of one room for the rest of the transaction.
	LockForBooking(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*room.Room, error)
	Upsert(ctx context.Context, tx sqlc.DBTX, rm *room.Room) (*room.Room, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) (uuid.UUID, error)
	FindByEmail(ctx context.Context, tx sqlc.DBTX, email user.Email) (*user.User, error)
	FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*user.User, error)
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
	UpdateProfile(ctx context.Context, tx sqlc.DBTX, u *user.User) error
	UpdatePassword(ctx context.Context, tx sqlc.DBTX, u *user.User) error
}

// Identity is the authenticated caller of a request. A nil *Identity means an anonymous guest.
type Identity struct {
	UserID uuid.UUID
	Email  user.Email
	Name   string
}

func NewIdentity(userID uuid.UUID, email, name string) (*Identity, error) {
	e, err := user.NewEmail(email)
	if err != nil {
		return nil, err
	}
	return &Identity{UserID: userID, Email: e, Name: name}, nil
}

// Page is a page-number request, normalized by NormalizePage.
type Page struct {
	Number  int
	PerPage int
}

func NormalizePage(page, perPage, defaultPerPage, maxPerPage int) Page {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	// keep the row offset within an int32 SQL parameter
	if maxPage := math.MaxInt32/perPage + 1; page > maxPage {
		page = maxPage
	}
	return Page{Number: page, PerPage: perPage}
}

// Offset fits in int32 for any page built by NormalizePage.
func (p Page) Offset() int32 {
	return int32((p.Number - 1) * p.PerPage) // #nosec G115 -- bounded by NormalizePage
}
