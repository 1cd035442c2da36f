package booking

import "errors"

var (
	ErrInvalidEmail     = errors.New("patient email is not a valid address")
	ErrSlotNotFound     = errors.New("time slot not found")
	ErrSlotNotAvailable = errors.New("time slot is not available for booking")
	ErrSessionNotFound  = errors.New("session not found")
	ErrNotCancellable   = errors.New("only scheduled sessions can be cancelled")
)
