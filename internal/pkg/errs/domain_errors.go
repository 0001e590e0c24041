package errs

import cr "github.com/cockroachdb/errors"

// Cross-layer sentinel errors shared by the usecase and infra layers
var (
	// Validation errors
	ErrDomainValidation = cr.New("domain validation error")

	// Store errors
	ErrStoreUnavailable = cr.New("store temporarily unavailable")
)
