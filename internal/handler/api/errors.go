package api

import (
	"net/http"
	"strings"

	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

// abortWithUsecaseError maps usecase sentinels onto HTTP statuses.
func abortWithUsecaseError(c *gin.Context, err error) {
	status, msg := statusFor(err)
	if status == http.StatusUnprocessableEntity {
		if hints := errs.Hints(err); len(hints) > 0 {
			msg += ": " + strings.Join(hints, "; ")
		}
	}
	httperr.AbortWithError(c, status, err, msg, nil)
}

func statusFor(err error) (int, string) {
	switch {
	case errs.Is(err, errs.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, "Service temporarily unavailable"
	case errs.Is(err, shared.ErrUnauthenticated):
		return http.StatusUnauthorized, "Authentication required"
	case errs.Is(err, shared.ErrForbidden):
		return http.StatusForbidden, "Forbidden"
	case errs.Is(err, shared.ErrRoomNotFound):
		return http.StatusNotFound, "Room not found"
	case errs.Is(err, shared.ErrBookingNotFound):
		return http.StatusNotFound, "Booking not found"
	case errs.Is(err, queries.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errs.Is(err, shared.ErrInvalidRange):
		return http.StatusUnprocessableEntity, shared.ErrInvalidRange.Error()
	case errs.Is(err, shared.ErrCapacityExceeded):
		return http.StatusUnprocessableEntity, shared.ErrCapacityExceeded.Error()
	case errs.Is(err, shared.ErrBookingConflict):
		return http.StatusUnprocessableEntity, shared.ErrBookingConflict.Error()
	case errs.Is(err, shared.ErrInvalidDuration):
		return http.StatusUnprocessableEntity, shared.ErrInvalidDuration.Error()
	case errs.Is(err, queries.ErrInvalidCursor):
		return http.StatusBadRequest, "Invalid cursor"
	case errs.Is(err, commands.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid email or password"
	case errs.Is(err, commands.ErrTokenValidation), errs.Is(err, commands.ErrUserNotFound):
		return http.StatusUnauthorized, "Invalid or expired token"
	case errs.Is(err, commands.ErrEmailTaken):
		return http.StatusUnprocessableEntity, commands.ErrEmailTaken.Error()
	case errs.Is(err, commands.ErrCurrentPasswordMismatch):
		return http.StatusUnprocessableEntity, commands.ErrCurrentPasswordMismatch.Error()
	case errs.Is(err, errs.ErrDomainValidation):
		return http.StatusUnprocessableEntity, "Validation failed: " + err.Error()
	}
	return http.StatusInternalServerError, "Internal server error"
}
