package commands

import (
	"context"
	"log/slog"

	"hotel-booking/internal/domain/user"
	reqdto "hotel-booking/internal/handler/dto/request"
	"hotel-booking/internal/infra"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/jwt"
	"hotel-booking/internal/pkg/password"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound       = errs.New("token subject no longer exists")
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrEmailTaken         = errs.New("email has already been taken")
	ErrTokenGeneration    = errs.New("token generation failed")
	ErrTokenValidation    = errs.New("token validation failed")
)

type AuthResult struct {
	UserID    uuid.UUID
	Email     string
	Name      string
	TokenPair *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthCommands interface {
	Register(ctx context.Context, req reqdto.RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*AuthResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	users      shared.UserRepository
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, users shared.UserRepository, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		users:      users,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (*AuthResult, error) {
	reg, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	hash, err := password.HashPassword(reg.Password().Value())
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	u, err := user.NewUser(reg.Email(), reg.Name(), hash)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var id uuid.UUID
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var cerr error
		id, cerr = tx.Users().Create(ctx, tx.DB(), u)
		return cerr
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, shared.StoreErr(err, nil)
	}

	pair, err := a.issue(id, u.Email().Value(), u.Name())
	if err != nil {
		return nil, err
	}

	slog.Info("user registered", "user_id", id)
	return &AuthResult{UserID: id, Email: u.Email().Value(), Name: u.Name(), TokenPair: pair}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*AuthResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		// Same error as a password mismatch to prevent user enumeration
		return nil, ErrInvalidCredentials
	}

	var u *user.User
	err = a.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var ferr error
		u, ferr = a.users.FindByEmail(ctx, db, credentials.Email())
		return ferr
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, shared.StoreErr(err, nil)
	}

	if err := password.ComparePassword(u.PasswordHash(), credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	pair, err := a.issue(u.ID(), u.Email().Value(), u.Name())
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if password.NeedsRehash(u.PasswordHash()) {
			hash, herr := password.HashPassword(credentials.Password().Value())
			if herr != nil {
				return herr
			}
			u.ChangePasswordHash(hash)
			if herr := tx.Users().UpdatePassword(ctx, tx.DB(), u); herr != nil {
				return herr
			}
		}
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), u.ID())
	})
	if err != nil {
		// Login already succeeded; only last_login (or the rehash) is stale
		slog.Warn("failed to update last login", "user_id", u.ID(), "error", err.Error())
	}

	return &AuthResult{UserID: u.ID(), Email: u.Email().Value(), Name: u.Name(), TokenPair: pair}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	// The user may have been removed since the token was issued
	var u *user.User
	err = a.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var ferr error
		u, ferr = a.users.FindByID(ctx, db, claims.UserID)
		return ferr
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, shared.StoreErr(err, nil)
	}

	return a.issue(u.ID(), u.Email().Value(), u.Name())
}

func (a *authCommandsImpl) issue(id uuid.UUID, email, name string) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(id, email, name)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	refreshToken, err := a.jwtService.GenerateRefreshToken(id, email, name)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
