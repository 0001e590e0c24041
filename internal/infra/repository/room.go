package repository

import (
	"context"

	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/repository/converter"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type RoomWriteQueries interface {
	LockRoomForBooking(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Rooms, error)
	UpsertRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertRoomParams) (sqlc.Rooms, error)
}

type RoomRepository struct {
	queries RoomWriteQueries
}

func NewRoomRepository(queries RoomWriteQueries) *RoomRepository {
	return &RoomRepository{queries: queries}
}

func (r *RoomRepository) LockForBooking(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*room.Room, error) {
	row, err := r.queries.LockRoomForBooking(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock room", err)
	}

	rm, err := converter.RoomFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert room", err, infra.KindDBFailure)
	}
	return rm, nil
}

// Upsert writes a catalog room keyed by its room number.
func (r *RoomRepository) Upsert(ctx context.Context, tx sqlc.DBTX, rm *room.Room) (*room.Room, error) {
	row, err := r.queries.UpsertRoom(ctx, tx, converter.RoomToUpsertParams(rm))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to upsert room", err)
	}

	stored, err := converter.RoomFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert room", err, infra.KindDBFailure)
	}
	return stored, nil
}
