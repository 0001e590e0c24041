package response

import (
	"time"

	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AuthUser struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
}

type AuthResponse struct {
	Token        string   `json:"token"`
	RefreshToken string   `json:"refresh_token"`
	User         AuthUser `json:"user"`
}

type TokenResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

type UserResponse struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	Title        *string    `json:"title"`
	ProfileImage *string    `json:"profile_image"`
	PhoneNumber  *string    `json:"phone_number"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func FromAuthResult(r *commands.AuthResult) AuthResponse {
	return AuthResponse{
		Token:        r.TokenPair.AccessToken,
		RefreshToken: r.TokenPair.RefreshToken,
		User: AuthUser{
			ID:    r.UserID,
			Email: r.Email,
			Name:  r.Name,
		},
	}
}

func FromUserView(v *queries.UserView) (UserResponse, error) {
	var res UserResponse
	if err := copier.Copy(&res, v); err != nil {
		return UserResponse{}, err
	}
	return res, nil
}
