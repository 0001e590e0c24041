package request

import "hotel-booking/internal/domain/user"

// UpdateProfileRequest leaves absent fields unchanged; an empty string clears an optional field.
type UpdateProfileRequest struct {
	Title        *string `json:"title" binding:"omitempty,max=50"`
	Name         *string `json:"name" binding:"omitempty,max=255"`
	ProfileImage *string `json:"profile_image" binding:"omitempty,max=2048"`
	PhoneNumber  *string `json:"phone_number" binding:"omitempty,max=32"`
}

func (r *UpdateProfileRequest) ToDomain() user.Profile {
	return user.Profile{
		Title:        r.Title,
		Name:         r.Name,
		ProfileImage: r.ProfileImage,
		PhoneNumber:  r.PhoneNumber,
	}
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}
