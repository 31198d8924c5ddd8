package service

import "errors"

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidInput is returned when a request fails validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInsufficientQuantity is returned when a sell exceeds the position.
	ErrInsufficientQuantity = errors.New("insufficient quantity to sell")
)
