//go:build unit

package commands_test

import (
	"context"
	"sync"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/infra"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// memStore is an in-memory stand-in for PostgreSQL. Within holds the store lock for the
// whole transaction, which gives the same serialization as the room row lock.
type memStore struct {
	mu       sync.Mutex
	rooms    map[uuid.UUID]*room.Room
	bookings map[uuid.UUID]*booking.Booking
	users    map[uuid.UUID]*user.User

	// failWith makes every repository call fail
	failWith error
	// createErr fails only booking inserts, e.g. an exclusion violation
	createErr error
}

func newMemStore() *memStore {
	return &memStore{
		rooms:    map[uuid.UUID]*room.Room{},
		bookings: map[uuid.UUID]*booking.Booking{},
		users:    map[uuid.UUID]*user.User{},
	}
}

func (s *memStore) addRoom(rm *room.Room)         { s.rooms[rm.ID()] = rm }
func (s *memStore) addBooking(b *booking.Booking) { s.bookings[b.ID()] = b }
func (s *memStore) addUser(u *user.User)          { s.users[u.ID()] = u }

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, pgx.ErrNoRows, infra.KindNotFound)
}

type memUoW struct {
	store *memStore
}

func (u *memUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	return fn(ctx, &memTx{store: u.store})
}

func (u *memUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *memUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

type memTx struct {
	store *memStore
}

func (t *memTx) Bookings() shared.BookingRepository { return &memBookings{store: t.store} }
func (t *memTx) Rooms() shared.RoomRepository       { return &memRooms{store: t.store} }
func (t *memTx) Users() shared.UserRepository       { return &memUsers{store: t.store} }
func (t *memTx) DB() sqlc.DBTX                      { return nil }

type memBookings struct {
	store *memStore
}

func (r *memBookings) Create(_ context.Context, _ sqlc.DBTX, b *booking.Booking) error {
	if r.store.failWith != nil {
		return r.store.failWith
	}
	if r.store.createErr != nil {
		return r.store.createErr
	}
	r.store.bookings[b.ID()] = b
	return nil
}

func (r *memBookings) FindOverlapping(_ context.Context, _ sqlc.DBTX, roomID uuid.UUID, stay booking.StayRange, excludeID *uuid.UUID) ([]*booking.Booking, error) {
	if r.store.failWith != nil {
		return nil, r.store.failWith
	}
	var out []*booking.Booking
	for _, b := range r.store.bookings {
		if b.RoomID() != roomID || !b.IsActive() {
			continue
		}
		if excludeID != nil && b.ID() == *excludeID {
			continue
		}
		if b.Stay().Overlaps(stay) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *memBookings) LockByID(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*booking.Booking, error) {
	if r.store.failWith != nil {
		return nil, r.store.failWith
	}
	b, ok := r.store.bookings[id]
	if !ok {
		return nil, notFound("booking not found")
	}
	return b, nil
}

func (r *memBookings) UpdateStatus(_ context.Context, _ sqlc.DBTX, b *booking.Booking) error {
	if r.store.failWith != nil {
		return r.store.failWith
	}
	r.store.bookings[b.ID()] = b
	return nil
}

type memRooms struct {
	store *memStore
}

func (r *memRooms) LockForBooking(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*room.Room, error) {
	if r.store.failWith != nil {
		return nil, r.store.failWith
	}
	rm, ok := r.store.rooms[id]
	if !ok {
		return nil, notFound("room not found")
	}
	return rm, nil
}

func (r *memRooms) Upsert(_ context.Context, _ sqlc.DBTX, rm *room.Room) (*room.Room, error) {
	r.store.rooms[rm.ID()] = rm
	return rm, nil
}

type memUsers struct {
	store *memStore
}

func (r *memUsers) Create(_ context.Context, _ sqlc.DBTX, u *user.User) (uuid.UUID, error) {
	if r.store.failWith != nil {
		return uuid.Nil, r.store.failWith
	}
	for _, existing := range r.store.users {
		if existing.Email().Equals(u.Email()) {
			return uuid.Nil, infra.WrapRepoErr("email already exists", nil, infra.KindDuplicateKey)
		}
	}
	r.store.users[u.ID()] = u
	return u.ID(), nil
}

func (r *memUsers) FindByEmail(_ context.Context, _ sqlc.DBTX, email user.Email) (*user.User, error) {
	if r.store.failWith != nil {
		return nil, r.store.failWith
	}
	for _, u := range r.store.users {
		if u.Email().Equals(email) {
			return u, nil
		}
	}
	return nil, notFound("user not found")
}

func (r *memUsers) FindByID(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*user.User, error) {
	if r.store.failWith != nil {
		return nil, r.store.failWith
	}
	u, ok := r.store.users[id]
	if !ok {
		return nil, notFound("user not found")
	}
	return u, nil
}

func (r *memUsers) UpdateLastLogin(_ context.Context, _ sqlc.DBTX, id uuid.UUID) error {
	if _, ok := r.store.users[id]; !ok {
		return notFound("user not found")
	}
	return nil
}

func (r *memUsers) UpdateProfile(_ context.Context, _ sqlc.DBTX, u *user.User) error {
	if r.store.failWith != nil {
		return r.store.failWith
	}
	r.store.users[u.ID()] = u
	return nil
}

func (r *memUsers) UpdatePassword(_ context.Context, _ sqlc.DBTX, u *user.User) error {
	if r.store.failWith != nil {
		return r.store.failWith
	}
	r.store.users[u.ID()] = u
	return nil
}
