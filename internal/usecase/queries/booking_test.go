//go:build unit

package queries_test

import (
	"context"
	"testing"

	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/internal/usecase/shared"
	"hotel-booking/tests/common/builder"
	queriesmock "hotel-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newBookingQueries(t *testing.T) (*queriesmock.MockBookingReadStore, queries.BookingQueries) {
	store := queriesmock.NewMockBookingReadStore(gomock.NewController(t))
	return store, queries.NewBookingQueries(store, config.NewTestConfig())
}

func TestBookingQueries_ListForGuest(t *testing.T) {
	ctx := context.Background()
	identity, err := shared.NewIdentity(uuid.New(), "Guest@Example.com", "Guest")
	require.NoError(t, err)

	views := make([]*queries.BookingView, 3)
	for i := range views {
		views[i] = builder.NewBookingBuilder().WithOwner("guest@example.com").BuildReadModel(nil)
	}

	t.Run("正常系: limit+1件取得し次ページのカーソルを返す", func(t *testing.T) {
		store, q := newBookingQueries(t)
		store.EXPECT().ListByEmailFirstPage(gomock.Any(), "guest@example.com", int32(3)).Return(views, nil)

		page, err := q.ListForGuest(ctx, identity, nil, 2)
		require.NoError(t, err)
		require.Len(t, page.Bookings, 2)
		require.NotNil(t, page.NextCursor)

		checkIn, id, err := queries.DecodeAfterCursor(page.NextCursor.After)
		require.NoError(t, err)
		assert.Equal(t, views[1].ID, id)
		assert.True(t, checkIn.Equal(views[1].CheckIn))
	})

	t.Run("正常系: 最終ページにはカーソルが付かない", func(t *testing.T) {
		store, q := newBookingQueries(t)
		store.EXPECT().ListByEmailFirstPage(gomock.Any(), "guest@example.com", int32(11)).Return(views, nil)

		page, err := q.ListForGuest(ctx, identity, nil, 0)
		require.NoError(t, err)
		assert.Len(t, page.Bookings, 3)
		assert.Nil(t, page.NextCursor)
	})

	t.Run("正常系: カーソル以降をキーセットで取得", func(t *testing.T) {
		store, q := newBookingQueries(t)
		last := views[0]
		cursor := &queries.Cursor{After: queries.EncodeAfterCursor(last.CheckIn, last.ID)}
		store.EXPECT().ListByEmailKeyset(gomock.Any(), "guest@example.com", last.CheckIn, last.ID, int32(6)).
			Return(views[1:], nil)

		page, err := q.ListForGuest(ctx, identity, cursor, 5)
		require.NoError(t, err)
		assert.Len(t, page.Bookings, 2)
		assert.Nil(t, page.NextCursor)
	})

	t.Run("異常系: 壊れたカーソル", func(t *testing.T) {
		_, q := newBookingQueries(t)
		_, err := q.ListForGuest(ctx, identity, &queries.Cursor{After: "!!"}, 5)
		assert.ErrorIs(t, err, queries.ErrInvalidCursor)
	})

	t.Run("異常系: 未認証", func(t *testing.T) {
		_, q := newBookingQueries(t)
		_, err := q.ListForGuest(ctx, nil, nil, 5)
		assert.ErrorIs(t, err, shared.ErrUnauthenticated)
	})
}

func TestBookingQueries_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("異常系: 見つからない", func(t *testing.T) {
		store, q := newBookingQueries(t)
		id := uuid.New()
		store.EXPECT().FindByID(gomock.Any(), id).Return(nil, infra.WrapRepoErr("booking not found", pgx.ErrNoRows))

		_, err := q.GetByID(ctx, id)
		assert.ErrorIs(t, err, shared.ErrBookingNotFound)
	})
}
