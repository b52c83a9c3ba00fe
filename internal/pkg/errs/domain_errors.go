package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Catalog errors
	ErrPropertyNotFound = errors.New("property not found")

	// Stay / quoting errors
	ErrInvalidStayRange  = errors.New("invalid stay range")
	ErrInvalidGuestCount = errors.New("invalid guest count")
	ErrNoPrearrangedStay = errors.New("property has no prearranged stay")

	// Checkout errors
	ErrNoActiveIntent       = errors.New("no active booking intent")
	ErrValidationFailed     = errors.New("checkout validation failed")
	ErrSubmissionInProgress = errors.New("submission already in progress")
	ErrSubmissionFailed     = errors.New("booking submission failed")
)
