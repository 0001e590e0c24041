package repository

import (
	"context"

	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/repository/converter"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UserQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (uuid.UUID, error)
	FindUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error)
	FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error)
	UpdateUserLastLogin(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
	UpdateUserProfile(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserProfileParams) error
	UpdateUserPassword(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserPasswordParams) error
}

type UserRepository struct {
	queries UserQueries
}

func NewUserRepository(queries UserQueries) *UserRepository {
	return &UserRepository{
		queries: queries,
	}
}

func (r *UserRepository) Create(ctx context.Context, tx sqlc.DBTX, u *user.User) (uuid.UUID, error) {
	params := sqlc.CreateUserParams{
		Email:        u.Email().Value(),
		Name:         u.Name(),
		PasswordHash: u.PasswordHash(),
	}
	id, err := r.queries.CreateUser(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, tx sqlc.DBTX, email user.Email) (*user.User, error) {
	row, err := r.queries.FindUserByEmail(ctx, tx, email.Value())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	return toDomainUser(row)
}

func (r *UserRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*user.User, error) {
	row, err := r.queries.FindUserByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return toDomainUser(row)
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error {
	if err := r.queries.UpdateUserLastLogin(ctx, tx, userID); err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, tx sqlc.DBTX, u *user.User) error {
	if err := r.queries.UpdateUserProfile(ctx, tx, converter.UserToProfileParams(u)); err != nil {
		return infra.WrapRepoErr("failed to update user profile", err)
	}
	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, tx sqlc.DBTX, u *user.User) error {
	params := sqlc.UpdateUserPasswordParams{ID: u.ID(), PasswordHash: u.PasswordHash()}
	if err := r.queries.UpdateUserPassword(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to update user password", err)
	}
	return nil
}

func toDomainUser(row sqlc.Users) (*user.User, error) {
	u, err := converter.UserFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert user", err, infra.KindDBFailure)
	}
	return u, nil
}
