package user

import (
	"time"

	"hotel-booking/internal/pkg/patch"

	"github.com/google/uuid"
)

type User struct {
	id           uuid.UUID
	email        Email
	name         string
	title        *string
	profileImage *string
	phoneNumber  *string
	passwordHash string
	lastLogin    *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(email Email, name string, passwordHash string) (*User, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}

	return &User{
		id:           uuid.New(),
		email:        email,
		name:         n,
		passwordHash: passwordHash,
	}, nil
}

func ReconstructUser(
	id uuid.UUID,
	email Email,
	name string,
	title, profileImage, phoneNumber *string,
	passwordHash string,
	lastLogin *time.Time,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:           id,
		email:        email,
		name:         name,
		title:        title,
		profileImage: profileImage,
		phoneNumber:  phoneNumber,
		passwordHash: passwordHash,
		lastLogin:    lastLogin,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// UpdateProfile applies the non-nil fields of p. An empty string clears an optional field.
func (u *User) UpdateProfile(p Profile) error {
	name, err := NewName(patch.Coalesce(p.Name, u.name))
	if err != nil {
		return err
	}

	u.name = name
	u.title = patch.Clearable(p.Title, u.title)
	u.profileImage = patch.Clearable(p.ProfileImage, u.profileImage)
	u.phoneNumber = patch.Clearable(p.PhoneNumber, u.phoneNumber)
	return nil
}

func (u *User) ChangePasswordHash(hash string) {
	u.passwordHash = hash
}

func (u *User) ID() uuid.UUID         { return u.id }
func (u *User) Email() Email          { return u.email }
func (u *User) Name() string          { return u.name }
func (u *User) Title() *string        { return u.title }
func (u *User) ProfileImage() *string { return u.profileImage }
func (u *User) PhoneNumber() *string  { return u.phoneNumber }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) LastLogin() *time.Time { return u.lastLogin }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }
