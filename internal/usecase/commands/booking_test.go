//go:build unit

package commands_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/shared"
	"hotel-booking/tests/common/builder"
	commandsmock "hotel-booking/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2030, 1, 10, 12, 0, 0, 0, time.UTC)

type bookingFixture struct {
	store   *memStore
	metrics *commandsmock.MockBookingMetrics
	cmds    commands.BookingCommands
	room    *room.Room
	clock   *clock.MockClock
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := newMemStore()
	rm := builder.NewRoomBuilder().BuildDomain()
	store.addRoom(rm)

	metrics := commandsmock.NewMockBookingMetrics(ctrl)
	clk := clock.NewMockClock(fixedNow)
	cmds := commands.NewBookingCommands(&memUoW{store: store}, clk, config.NewTestConfig(), metrics)
	return &bookingFixture{store: store, metrics: metrics, cmds: cmds, room: rm, clock: clk}
}

func (f *bookingFixture) input(checkIn, checkOut string, guests int) commands.CreateBookingInput {
	return commands.CreateBookingInput{
		RoomID:         f.room.ID(),
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		NumberOfGuests: guests,
		Title:          "Mr",
		Name:           "Taro",
		Email:          "taro@example.com",
	}
}

func (f *bookingFixture) seedBooking(checkIn, checkOut string, status booking.Status) *booking.Booking {
	in, _ := time.Parse(booking.DateLayout, checkIn)
	out, _ := time.Parse(booking.DateLayout, checkOut)
	b := builder.NewBookingBuilder().
		WithRoomID(f.room.ID()).
		WithOwner("owner@example.com").
		WithStay(in, out).
		WithStatus(status).
		BuildDomain()
	f.store.addBooking(b)
	return b
}

func identity(t *testing.T, email string) *shared.Identity {
	t.Helper()
	id, err := shared.NewIdentity(uuid.New(), email, "Signed In")
	require.NoError(t, err)
	return id
}

func TestBookingCommands_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: ログインユーザーの予約は本人が所有者になる", func(t *testing.T) {
		f := newBookingFixture(t)
		f.metrics.EXPECT().IncBookingCreated("confirmed").Times(1)
		caller := identity(t, "member@example.com")

		in := f.input("2030-01-20", "2030-01-23", 2)
		in.Email = ""
		in.Name = ""
		id, err := f.cmds.Create(ctx, in, caller)
		require.NoError(t, err)

		stored := f.store.bookings[id]
		require.NotNil(t, stored)
		assert.True(t, stored.IsOwnedBy(caller.Email))
		assert.Equal(t, "member@example.com", stored.Guest().Email())
		assert.Equal(t, "Signed In", stored.Guest().Name())
		assert.Equal(t, "264.00", stored.Quote().Total.String())
		assert.Equal(t, 3, stored.Quote().Nights)
	})

	t.Run("正常系: ゲスト予約はメールアドレスが所有者になる", func(t *testing.T) {
		f := newBookingFixture(t)
		f.metrics.EXPECT().IncBookingCreated("confirmed").Times(1)

		id, err := f.cmds.Create(ctx, f.input("2030-01-20", "2030-01-21", 1), nil)
		require.NoError(t, err)

		stored := f.store.bookings[id]
		require.NotNil(t, stored)
		assert.Equal(t, "taro@example.com", stored.OwnerEmail().Value())
		assert.Equal(t, "104.00", stored.Quote().Total.String())
	})

	t.Run("正常系: 前の予約のチェックアウト日にチェックインできる", func(t *testing.T) {
		f := newBookingFixture(t)
		f.seedBooking("2030-01-15", "2030-01-20", booking.StatusConfirmed)
		f.metrics.EXPECT().IncBookingCreated("confirmed").Times(1)

		_, err := f.cmds.Create(ctx, f.input("2030-01-20", "2030-01-22", 2), nil)
		require.NoError(t, err)
	})

	t.Run("正常系: キャンセル済みの予約は空室判定から除外される", func(t *testing.T) {
		f := newBookingFixture(t)
		f.seedBooking("2030-01-19", "2030-01-25", booking.StatusCancelled)
		f.metrics.EXPECT().IncBookingCreated("confirmed").Times(1)

		_, err := f.cmds.Create(ctx, f.input("2030-01-20", "2030-01-22", 2), nil)
		require.NoError(t, err)
	})

	cases := []struct {
		name   string
		mutate func(f *bookingFixture, in *commands.CreateBookingInput)
		errIs  error
	}{
		{
			name:   "ゲストのメール未指定",
			mutate: func(_ *bookingFixture, in *commands.CreateBookingInput) { in.Email = "" },
			errIs:  errs.ErrDomainValidation,
		},
		{
			name: "存在しない部屋はゲストのメール未指定より優先",
			mutate: func(_ *bookingFixture, in *commands.CreateBookingInput) {
				in.RoomID = uuid.New()
				in.Email = ""
			},
			errIs: shared.ErrRoomNotFound,
		},
		{
			name:   "ゲスト0人",
			mutate: func(_ *bookingFixture, in *commands.CreateBookingInput) { in.NumberOfGuests = 0 },
			errIs:  shared.ErrCapacityExceeded,
		},
		{
			name:   "最大泊数を超える滞在",
			mutate: func(_ *bookingFixture, in *commands.CreateBookingInput) { in.CheckOut = "9999-12-31" },
			errIs:  shared.ErrInvalidDuration,
		},
		{
			name: "存在しない部屋は日付不正より優先",
			mutate: func(_ *bookingFixture, in *commands.CreateBookingInput) {
				in.RoomID = uuid.New()
				in.CheckIn, in.CheckOut = "2030-01-23", "2030-01-20"
			},
			errIs: shared.ErrRoomNotFound,
		},
		{
			name:   "日付フォーマット不正",
			mutate: func(_ *bookingFixture, in *commands.CreateBookingInput) { in.CheckIn = "20/01/2030" },
			errIs:  shared.ErrInvalidRange,
		},
		{
			name:   "チェックアウトがチェックインと同日",
			mutate: func(_ *bookingFixture, in *commands.CreateBookingInput) { in.CheckOut = in.CheckIn },
			errIs:  shared.ErrInvalidRange,
		},
		{
			name:   "過去のチェックイン",
			mutate: func(_ *bookingFixture, in *commands.CreateBookingInput) { in.CheckIn = "2030-01-09" },
			errIs:  shared.ErrInvalidRange,
		},
		{
			name:   "定員超過",
			mutate: func(_ *bookingFixture, in *commands.CreateBookingInput) { in.NumberOfGuests = 3 },
			errIs:  shared.ErrCapacityExceeded,
		},
		{
			name:   "ストア障害は一時的エラー",
			mutate: func(f *bookingFixture, _ *commands.CreateBookingInput) { f.store.failWith = context.DeadlineExceeded },
			errIs:  errs.ErrStoreUnavailable,
		},
	}
	for _, tc := range cases {
		t.Run("異常系: "+tc.name, func(t *testing.T) {
			f := newBookingFixture(t)
			in := f.input("2030-01-20", "2030-01-23", 2)
			tc.mutate(f, &in)

			_, err := f.cmds.Create(ctx, in, nil)
			require.Error(t, err)
			assert.True(t, errs.Is(err, tc.errIs), "got %v", err)
			assert.Empty(t, f.store.bookings)
		})
	}

	t.Run("異常系: 定員超過には部屋の定員がヒントとして付く", func(t *testing.T) {
		f := newBookingFixture(t)

		_, err := f.cmds.Create(ctx, f.input("2030-01-20", "2030-01-23", 5), nil)
		require.True(t, errs.Is(err, shared.ErrCapacityExceeded), "got %v", err)
		want := fmt.Sprintf("room %s allows at most %d guests", f.room.Number(), f.room.MaxGuests())
		assert.Equal(t, []string{want}, errs.Hints(err))
	})

	t.Run("異常系: ゲスト0人は定員超過としてヒント付きで返す", func(t *testing.T) {
		f := newBookingFixture(t)

		_, err := f.cmds.Create(ctx, f.input("2030-01-20", "2030-01-23", 0), nil)
		require.True(t, errs.Is(err, shared.ErrCapacityExceeded), "got %v", err)
		assert.Equal(t, []string{booking.ErrInvalidGuestCount.Error()}, errs.Hints(err))
	})

	t.Run("異常系: 長すぎる滞在には泊数の上限がヒントとして付く", func(t *testing.T) {
		f := newBookingFixture(t)

		_, err := f.cmds.Create(ctx, f.input("2030-01-20", "2031-01-21", 2), nil)
		require.True(t, errs.Is(err, shared.ErrInvalidDuration), "got %v", err)
		assert.Equal(t, []string{fmt.Sprintf("stays are limited to %d nights", booking.MaxNights)}, errs.Hints(err))
	})

	t.Run("異常系: 重複する期間は競合としてカウントされる", func(t *testing.T) {
		f := newBookingFixture(t)
		f.seedBooking("2030-01-18", "2030-01-21", booking.StatusConfirmed)
		f.metrics.EXPECT().IncBookingConflict().Times(1)

		_, err := f.cmds.Create(ctx, f.input("2030-01-20", "2030-01-23", 2), nil)
		assert.ErrorIs(t, err, shared.ErrBookingConflict)
		assert.Len(t, f.store.bookings, 1)
	})

	t.Run("異常系: 排他制約違反は競合に変換される", func(t *testing.T) {
		f := newBookingFixture(t)
		f.store.createErr = infra.WrapRepoErr("booking overlaps", nil, infra.KindConflict)
		f.metrics.EXPECT().IncBookingConflict().Times(1)

		_, err := f.cmds.Create(ctx, f.input("2030-01-20", "2030-01-23", 2), nil)
		assert.ErrorIs(t, err, shared.ErrBookingConflict)
	})

	t.Run("並行性: 同じ期間への同時予約は1件だけ成功する", func(t *testing.T) {
		f := newBookingFixture(t)
		const attempts = 10
		f.metrics.EXPECT().IncBookingCreated("confirmed").Times(1)
		f.metrics.EXPECT().IncBookingConflict().Times(attempts - 1)

		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			successes int
			conflicts int
		)
		for range attempts {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := f.cmds.Create(ctx, f.input("2030-01-20", "2030-01-23", 2), nil)
				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					successes++
				case errs.Is(err, shared.ErrBookingConflict):
					conflicts++
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, successes)
		assert.Equal(t, attempts-1, conflicts)
		assert.Len(t, f.store.bookings, 1)
	})
}

func TestBookingCommands_CreateTodayBoundary(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t)
	f.metrics.EXPECT().IncBookingCreated(gomock.Any()).AnyTimes()

	// 2030-01-10 is "today" at fixedNow
	_, err := f.cmds.Create(ctx, f.input("2030-01-10", "2030-01-11", 1), nil)
	require.NoError(t, err)

	f.clock.Advance(24 * time.Hour)
	_, err = f.cmds.Create(ctx, f.input("2030-01-10", "2030-01-12", 1), nil)
	assert.ErrorIs(t, err, shared.ErrInvalidRange)
}

func TestBookingCommands_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: 所有者がキャンセルできる", func(t *testing.T) {
		f := newBookingFixture(t)
		b := f.seedBooking("2030-01-20", "2030-01-23", booking.StatusConfirmed)
		f.metrics.EXPECT().IncBookingCanceled().Times(1)

		f.clock.Advance(2 * time.Hour)
		require.NoError(t, f.cmds.Cancel(ctx, b.ID(), identity(t, "owner@example.com")))
		assert.Equal(t, booking.StatusCancelled, f.store.bookings[b.ID()].Status())
		assert.Equal(t, fixedNow.Add(2*time.Hour), f.store.bookings[b.ID()].UpdatedAt())
	})

	t.Run("正常系: 二重キャンセルは成功し状態もメトリクスも変わらない", func(t *testing.T) {
		f := newBookingFixture(t)
		b := f.seedBooking("2030-01-20", "2030-01-23", booking.StatusConfirmed)
		f.metrics.EXPECT().IncBookingCanceled().Times(1)
		owner := identity(t, "Owner@Example.com")

		require.NoError(t, f.cmds.Cancel(ctx, b.ID(), owner))
		require.NoError(t, f.cmds.Cancel(ctx, b.ID(), owner))
		assert.Equal(t, booking.StatusCancelled, f.store.bookings[b.ID()].Status())
	})

	t.Run("異常系: 所有者以外は403で状態は変わらない", func(t *testing.T) {
		f := newBookingFixture(t)
		b := f.seedBooking("2030-01-20", "2030-01-23", booking.StatusConfirmed)

		err := f.cmds.Cancel(ctx, b.ID(), identity(t, "someone@example.com"))
		assert.ErrorIs(t, err, shared.ErrForbidden)
		assert.Equal(t, booking.StatusConfirmed, f.store.bookings[b.ID()].Status())
	})

	t.Run("異常系: 存在しない予約", func(t *testing.T) {
		f := newBookingFixture(t)
		err := f.cmds.Cancel(ctx, uuid.New(), identity(t, "owner@example.com"))
		assert.ErrorIs(t, err, shared.ErrBookingNotFound)
	})

	t.Run("異常系: 未認証", func(t *testing.T) {
		f := newBookingFixture(t)
		b := f.seedBooking("2030-01-20", "2030-01-23", booking.StatusConfirmed)
		err := f.cmds.Cancel(ctx, b.ID(), nil)
		assert.ErrorIs(t, err, shared.ErrUnauthenticated)
	})

	t.Run("異常系: ストア障害", func(t *testing.T) {
		f := newBookingFixture(t)
		f.store.failWith = context.DeadlineExceeded
		err := f.cmds.Cancel(ctx, uuid.New(), identity(t, "owner@example.com"))
		assert.True(t, errs.Is(err, errs.ErrStoreUnavailable))
	})
}
