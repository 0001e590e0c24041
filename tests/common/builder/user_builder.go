//go:build unit || e2e

package builder

import (
	"time"

	"hotel-booking/internal/domain/user"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserBuilder struct {
	ID           uuid.UUID
	Email        string
	Name         string
	Title        *string
	PhoneNumber  *string
	ProfileImage *string
	PasswordHash string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		Email:        "test@example.com",
		Name:         "Test User",
		PasswordHash: "hashed_password",
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	usr, err := user.NewUser(email, u.Name, u.PasswordHash)
	if err != nil {
		return nil, err
	}

	if u.Title != nil || u.PhoneNumber != nil || u.ProfileImage != nil {
		if err := usr.UpdateProfile(user.Profile{
			Title:        u.Title,
			PhoneNumber:  u.PhoneNumber,
			ProfileImage: u.ProfileImage,
		}); err != nil {
			return nil, err
		}
	}
	return usr, nil
}

// BuildStored returns the user as if it had been read back from the store.
func (u *UserBuilder) BuildStored() *user.User {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		panic(err)
	}
	now := time.Now()
	return user.ReconstructUser(u.ID, email, u.Name, u.Title, u.ProfileImage, u.PhoneNumber, u.PasswordHash, nil, now, now)
}

func (u *UserBuilder) BuildInfra() sqlc.Users {
	now := time.Now()
	return sqlc.Users{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		Title:        pgconv.StringPtrToPgtype(u.Title),
		ProfileImage: pgconv.StringPtrToPgtype(u.ProfileImage),
		PhoneNumber:  pgconv.StringPtrToPgtype(u.PhoneNumber),
		PasswordHash: u.PasswordHash,
		LastLogin:    pgtype.Timestamptz{},
		CreatedAt:    pgconv.TimeToPgtype(now),
		UpdatedAt:    pgconv.TimeToPgtype(now),
	}
}

func (u *UserBuilder) BuildReadModel() *queries.UserView {
	now := time.Now()
	return &queries.UserView{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		Title:        u.Title,
		ProfileImage: u.ProfileImage,
		PhoneNumber:  u.PhoneNumber,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithID(id uuid.UUID) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithName(name string) *UserBuilder {
	u.Name = name
	return u
}

func (u *UserBuilder) WithTitle(title string) *UserBuilder {
	u.Title = &title
	return u
}

func (u *UserBuilder) WithPhoneNumber(phone string) *UserBuilder {
	u.PhoneNumber = &phone
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}
