package fhash

import "github.com/pkg/errors"

var (
	// ErrInvalidSeed is returned when a seed or bucket span is zero, negative
	// or larger than the table capacity.
	ErrInvalidSeed = errors.New("invalid seed")

	// ErrNotFound is returned by Delete when the value is not stored.
	ErrNotFound = errors.New("value not found")

	// ErrInvalidCapacity is returned for a capacity below what the operation needs.
	ErrInvalidCapacity = errors.New("invalid capacity")

	// ErrCorruptSnapshot is returned when a snapshot cannot be decoded.
	ErrCorruptSnapshot = errors.New("corrupt snapshot")
)
