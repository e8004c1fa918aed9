package marketerrors

import "errors"

// Repository-level errors
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrListingNotFound = errors.New("listing not found")
	ErrOfferNotFound   = errors.New("offer not found")
	ErrChatNotFound    = errors.New("chat not found")
	ErrEmailTaken      = errors.New("email already registered")
)

// business logic errors
var (
	ErrValidation      = errors.New("validation failed")
	ErrOfferNotPending = errors.New("offer is not pending")
	ErrPendingExists   = errors.New("a pending offer already exists for this listing")
	ErrNotOwner        = errors.New("caller does not own this resource")
	ErrChatForbidden   = errors.New("caller is not a participant of this chat")
	ErrUnauthorized    = errors.New("invalid credentials")
)
