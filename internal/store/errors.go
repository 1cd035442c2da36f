package store

import "errors"

var (
	ErrSlotNotFound         = errors.New("time slot not found")
	ErrSlotTaken            = errors.New("time slot is already booked")
	ErrSessionNotFound      = errors.New("session not found")
	ErrPsychologistNotFound = errors.New("psychologist not found")
)
