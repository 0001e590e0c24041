package readstore

import (
	"context"
	"strings"
	"time"

	"hotel-booking/internal/infra"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RoomViewQueries interface {
	GetRoomByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Rooms, error)
	SearchAvailableRooms(ctx context.Context, db sqlc.DBTX, arg sqlc.SearchAvailableRoomsParams) ([]sqlc.Rooms, error)
	CountAvailableRooms(ctx context.Context, db sqlc.DBTX, arg sqlc.CountAvailableRoomsParams) (int64, error)
}

type RoomReadStore struct {
	queries RoomViewQueries
	db      sqlc.DBTX
	timeout time.Duration
}

func NewRoomReadStore(queries RoomViewQueries, db sqlc.DBTX, cfg config.Config) *RoomReadStore {
	return &RoomReadStore{
		queries: queries,
		db:      db,
		timeout: cfg.DB.QueryTimeout,
	}
}

func (r *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	row, err := r.queries.GetRoomByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}

	view, err := toRoomView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert room", err, infra.KindDBFailure)
	}
	return view, nil
}

func (r *RoomReadStore) Search(ctx context.Context, f queries.RoomSearchFilter, limit, offset int32) ([]*queries.RoomView, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	c := toSearchParams(f)
	rows, err := r.queries.SearchAvailableRooms(ctx, r.db, sqlc.SearchAvailableRoomsParams{
		MinGuests: c.MinGuests,
		Query:     c.Query,
		MinPrice:  c.MinPrice,
		MaxPrice:  c.MaxPrice,
		CheckOut:  c.CheckOut,
		CheckIn:   c.CheckIn,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search rooms", err)
	}

	result := make([]*queries.RoomView, 0, len(rows))
	for _, row := range rows {
		view, err := toRoomView(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert room", err, infra.KindDBFailure)
		}
		result = append(result, view)
	}
	return result, nil
}

func (r *RoomReadStore) Count(ctx context.Context, f queries.RoomSearchFilter) (int64, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	n, err := r.queries.CountAvailableRooms(ctx, r.db, toSearchParams(f))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count rooms", err)
	}
	return n, nil
}

func toSearchParams(f queries.RoomSearchFilter) sqlc.CountAvailableRoomsParams {
	p := sqlc.CountAvailableRoomsParams{
		CheckOut: pgconv.DateToPgtype(f.CheckOut),
		CheckIn:  pgconv.DateToPgtype(f.CheckIn),
		Query:    pgconv.OptionalText(escapeLike(strings.TrimSpace(f.Text))),
		MinPrice: pgconv.CentsPtrToNumeric(f.MinPriceCents),
		MaxPrice: pgconv.CentsPtrToNumeric(f.MaxPriceCents),
	}
	if f.MinGuests != nil {
		p.MinGuests = pgtype.Int4{Int32: int32(*f.MinGuests), Valid: true} // #nosec G115 -- validated small positive
	}
	return p
}

// escapeLike neutralizes LIKE wildcards so user text matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func toRoomView(row sqlc.Rooms) (*queries.RoomView, error) {
	price, err := pgconv.NumericToCents(row.PricePerNight)
	if err != nil {
		return nil, err
	}
	fee, err := pgconv.NumericToCents(row.ServiceAndTaxFee)
	if err != nil {
		return nil, err
	}

	return &queries.RoomView{
		ID:                    row.ID,
		RoomNumber:            row.RoomNumber,
		RoomName:              row.RoomName,
		Description:           row.Description,
		MaxGuests:             int(row.MaxGuests),
		PricePerNightCents:    price,
		ServiceAndTaxFeeCents: fee,
		Image:                 row.Image,
		CreatedAt:             pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:             pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
