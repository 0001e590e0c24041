package converter

import (
	"hotel-booking/internal/domain/user"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/pgconv"
)

func UserFromRow(row sqlc.Users) (*user.User, error) {
	email, err := user.NewEmail(row.Email)
	if err != nil {
		return nil, errs.Wrap(err, "email")
	}

	return user.ReconstructUser(
		row.ID,
		email,
		row.Name,
		pgconv.StringPtrFromPgtype(row.Title),
		pgconv.StringPtrFromPgtype(row.ProfileImage),
		pgconv.StringPtrFromPgtype(row.PhoneNumber),
		row.PasswordHash,
		pgconv.TimePtrFromPgtype(row.LastLogin),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func UserToProfileParams(u *user.User) sqlc.UpdateUserProfileParams {
	return sqlc.UpdateUserProfileParams{
		ID:           u.ID(),
		Title:        pgconv.StringPtrToPgtype(u.Title()),
		Name:         u.Name(),
		ProfileImage: pgconv.StringPtrToPgtype(u.ProfileImage()),
		PhoneNumber:  pgconv.StringPtrToPgtype(u.PhoneNumber()),
	}
}
