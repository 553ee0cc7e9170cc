package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Record errors
	ErrMsgUserNotFound = "user not found"
	ErrMsgItemNotFound = "item not found"

	// Validation errors
	ErrMsgInvalidInput = "invalid input"

	// Storage errors
	ErrMsgStorage = "storage error"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgDeliveryFailed    = "delivery failed"

	// Shop flow errors
	ErrMsgSessionExpired    = "session expired"
	ErrMsgInvalidSelection  = "invalid selection"
	ErrMsgChannelRestricted = "command not allowed in this channel"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrUserNotFound is returned by partial updates against a key that was never created.
	ErrUserNotFound = errors.New(ErrMsgUserNotFound)

	// ErrItemNotFound is returned by catalog lookups; catalog entries are never created lazily.
	ErrItemNotFound = errors.New(ErrMsgItemNotFound)

	// ErrInvalidInput covers negative amounts and prices and malformed uploads.
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	// ErrStorage wraps every fault raised by the persistence layer.
	ErrStorage = errors.New(ErrMsgStorage)

	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	// ErrDeliveryFailed means coins were deducted but the item could not be handed over.
	ErrDeliveryFailed = errors.New(ErrMsgDeliveryFailed)

	ErrSessionExpired    = errors.New(ErrMsgSessionExpired)
	ErrInvalidSelection  = errors.New(ErrMsgInvalidSelection)
	ErrChannelRestricted = errors.New(ErrMsgChannelRestricted)
)
