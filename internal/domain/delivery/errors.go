package delivery

import "errors"

var (
	ErrUnknownPlatform   = errors.New("unknown delivery platform")
	ErrUnknownStatus     = errors.New("unknown delivery status")
	ErrNotFound          = errors.New("delivery order not found")
	ErrInvalidTransition = errors.New("invalid delivery status transition")
)
