package readstore

import (
	"context"
	"time"

	"hotel-booking/internal/infra"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadQueries interface {
	FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
	timeout time.Duration
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX, cfg config.Config) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
		timeout: cfg.DB.QueryTimeout,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	row, err := r.queries.FindUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return toUserView(row), nil
}

func toUserView(row sqlc.Users) *queries.UserView {
	return &queries.UserView{
		ID:           row.ID,
		Email:        row.Email,
		Name:         row.Name,
		Title:        pgconv.StringPtrFromPgtype(row.Title),
		ProfileImage: pgconv.StringPtrFromPgtype(row.ProfileImage),
		PhoneNumber:  pgconv.StringPtrFromPgtype(row.PhoneNumber),
		LastLogin:    pgconv.TimePtrFromPgtype(row.LastLogin),
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
