package booking

import (
	"errors"
	"strings"
	"time"

	"hotel-booking/internal/domain/user"
)

var (
	ErrInvalidRange      = errors.New("check-out must be after check-in and check-in cannot be in the past")
	ErrInvalidGuestCount = errors.New("number of guests must be at least 1")
	ErrMissingGuestEmail = errors.New("guest email is required")
	ErrStayTooLong       = errors.New("stay is longer than the maximum number of nights")
)

const (
	DateLayout = "2006-01-02"
	// MaxNights bounds a single stay; it also keeps totals inside the stored numeric range.
	MaxNights = 365
)

// StayRange is a half-open interval of calendar days [checkIn, checkOut).
// Both ends are held as midnight UTC so that day arithmetic ignores zone offsets.
type StayRange struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayRange(checkIn, checkOut time.Time) (StayRange, error) {
	in := ToDate(checkIn)
	out := ToDate(checkOut)
	if !out.After(in) {
		return StayRange{}, ErrInvalidRange
	}
	if out.Sub(in) > MaxNights*24*time.Hour {
		return StayRange{}, ErrStayTooLong
	}
	return StayRange{checkIn: in, checkOut: out}, nil
}

// ParseStayRange reads two "2006-01-02" dates.
func ParseStayRange(checkIn, checkOut string) (StayRange, error) {
	in, err := time.Parse(DateLayout, strings.TrimSpace(checkIn))
	if err != nil {
		return StayRange{}, ErrInvalidRange
	}
	out, err := time.Parse(DateLayout, strings.TrimSpace(checkOut))
	if err != nil {
		return StayRange{}, ErrInvalidRange
	}
	return NewStayRange(in, out)
}

// ReconstructStayRange skips validation for rows already accepted by the store.
func ReconstructStayRange(checkIn, checkOut time.Time) StayRange {
	return StayRange{checkIn: ToDate(checkIn), checkOut: ToDate(checkOut)}
}

// ValidateNotBefore rejects stays whose check-in day precedes today.
func (s StayRange) ValidateNotBefore(today time.Time) error {
	if s.checkIn.Before(ToDate(today)) {
		return ErrInvalidRange
	}
	return nil
}

func (s StayRange) CheckIn() time.Time  { return s.checkIn }
func (s StayRange) CheckOut() time.Time { return s.checkOut }

// Nights is the whole-day difference between check-out and check-in.
func (s StayRange) Nights() int {
	return int(s.checkOut.Sub(s.checkIn).Hours() / 24)
}

// Overlaps uses half-open semantics: a stay ending on day X does not collide with one starting on day X.
func (s StayRange) Overlaps(o StayRange) bool {
	return s.checkIn.Before(o.checkOut) && o.checkIn.Before(s.checkOut)
}

func (s StayRange) String() string {
	return "[" + s.checkIn.Format(DateLayout) + "," + s.checkOut.Format(DateLayout) + ")"
}

// ToDate drops the clock part, keeping the calendar day as seen in t's location.
func ToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar day in the hotel's location.
func Today(now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return ToDate(now.In(loc))
}

// GuestContact is the title/name/email snapshot captured when the booking is made.
type GuestContact struct {
	title string
	name  string
	email string
}

func NewGuestContact(title, name, email string) (GuestContact, error) {
	gc := GuestContact{
		title: strings.TrimSpace(title),
		name:  strings.TrimSpace(name),
	}
	if strings.TrimSpace(email) != "" {
		e, err := user.NewEmail(email)
		if err != nil {
			return GuestContact{}, err
		}
		gc.email = e.Value()
	}
	return gc, nil
}

func ReconstructGuestContact(title, name, email string) GuestContact {
	return GuestContact{title: title, name: name, email: email}
}

func (g GuestContact) Title() string { return g.title }
func (g GuestContact) Name() string  { return g.name }
func (g GuestContact) Email() string { return g.email }

func (g GuestContact) IsEmpty() bool {
	return g.title == "" && g.name == "" && g.email == ""
}
