package workflow

import "errors"

var (
	ErrRoomNotFound    = errors.New("room not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrInvalidDateRange = errors.New("end date must be after start date")
	ErrRoomUnavailable  = errors.New("room is not available")
	ErrAlreadyPaid      = errors.New("booking is already paid")
	ErrMissingReference = errors.New("payment method reference required")
	ErrEmptyReview      = errors.New("review text must not be empty")
)

var (
	ErrDuplicateUsername  = errors.New("username is already taken")
	ErrInvalidEmail       = errors.New("email must contain @ and end with .com")
	ErrInvalidPhone       = errors.New("phone must be exactly 10 digits")
	ErrInvalidCredentials = errors.New("invalid credentials or role mismatch")
)
