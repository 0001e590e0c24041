package commands

import (
	"context"

	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/password"
	"hotel-booking/internal/usecase/shared"
)

var ErrCurrentPasswordMismatch = errs.New("current password is incorrect")

type UserCommands interface {
	UpdateProfile(ctx context.Context, identity *shared.Identity, profile user.Profile) error
	ChangePassword(ctx context.Context, identity *shared.Identity, currentPassword, newPassword string) error
}

type userCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewUserCommands(uow shared.UnitOfWork) UserCommands {
	return &userCommandsImpl{uow: uow}
}

func (c *userCommandsImpl) UpdateProfile(ctx context.Context, identity *shared.Identity, profile user.Profile) error {
	if identity == nil {
		return shared.ErrUnauthenticated
	}

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Users().FindByID(ctx, tx.DB(), identity.UserID)
		if err != nil {
			return err
		}
		if err := u.UpdateProfile(profile); err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		return tx.Users().UpdateProfile(ctx, tx.DB(), u)
	})
	return mapUserErr(err)
}

func (c *userCommandsImpl) ChangePassword(ctx context.Context, identity *shared.Identity, currentPassword, newPassword string) error {
	if identity == nil {
		return shared.ErrUnauthenticated
	}

	next, err := user.NewPassword(newPassword)
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Users().FindByID(ctx, tx.DB(), identity.UserID)
		if err != nil {
			return err
		}
		if err := password.ComparePassword(u.PasswordHash(), currentPassword); err != nil {
			return ErrCurrentPasswordMismatch
		}

		hash, err := password.HashPassword(next.Value())
		if err != nil {
			return errs.Wrap(err, "failed to hash password")
		}
		u.ChangePasswordHash(hash)
		return tx.Users().UpdatePassword(ctx, tx.DB(), u)
	})
	return mapUserErr(err)
}

func mapUserErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errs.Is(err, errs.ErrDomainValidation), errs.Is(err, ErrCurrentPasswordMismatch):
		return err
	case infra.IsKind(err, infra.KindNotFound):
		return ErrUserNotFound
	}
	return shared.StoreErr(err, nil)
}
