package user

// Profile holds the editable part of a user. Nil fields are left unchanged by UpdateProfile.
type Profile struct {
	Title        *string
	Name         *string
	ProfileImage *string
	PhoneNumber  *string
}
