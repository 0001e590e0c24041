package auth

import "hotel-booking/internal/domain/user"

// Credentials is a normalised email plus a password that meets the length rule.
type Credentials struct {
	email    user.Email
	password user.Password
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}
	password, err := user.NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, err
	}
	return Credentials{email: email, password: password}, nil
}

func (c Credentials) Email() user.Email       { return c.email }
func (c Credentials) Password() user.Password { return c.password }

// Registration is a validated sign-up request. The name is checked before the
// credentials so a blank form reports the name first.
type Registration struct {
	Credentials
	name string
}

func NewRegistration(name, emailStr, passwordStr string) (Registration, error) {
	n, err := user.NewName(name)
	if err != nil {
		return Registration{}, err
	}
	creds, err := NewCredentials(emailStr, passwordStr)
	if err != nil {
		return Registration{}, err
	}
	return Registration{Credentials: creds, name: n}, nil
}

func (r Registration) Name() string { return r.name }
