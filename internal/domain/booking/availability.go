package booking

import "github.com/google/uuid"

// IsAvailable reports whether stay collides with none of the given bookings.
// Cancelled bookings never block, and excludeID (if set) is skipped.
func IsAvailable(stay StayRange, existing []*Booking, excludeID *uuid.UUID) bool {
	return len(Conflicts(stay, existing, excludeID)) == 0
}

// Conflicts returns the bookings that block stay.
func Conflicts(stay StayRange, existing []*Booking, excludeID *uuid.UUID) []*Booking {
	var out []*Booking
	for _, b := range existing {
		if b == nil || b.status == StatusCancelled {
			continue
		}
		if excludeID != nil && b.id == *excludeID {
			continue
		}
		if b.stay.Overlaps(stay) {
			out = append(out, b)
		}
	}
	return out
}
