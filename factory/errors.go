package factory

import (
	"errors"
	"strconv"
)

var (
	// ErrNilBuilder is returned when Register is given a nil builder.
	ErrNilBuilder = errors.New("factory: nil builder")

	// ErrBlankKind is returned when Register is given an empty discriminator.
	ErrBlankKind = errors.New("factory: blank kind")
)

// DuplicateKindError is returned when Register is asked to bind a kind that
// already has a builder.
type DuplicateKindError struct{ Kind Kind }

// Error implements the error interface.
func (e DuplicateKindError) Error() string {
	// Example: factory: duplicate kind "car"
	return "factory: duplicate kind " + strconv.Quote(string(e.Kind))
}

// UnknownKindError is returned by BuildStrict when no builder matches the
// request's discriminator.
//
// Build never returns it; unknown kinds fall back to the default builder
// there.
type UnknownKindError struct{ Kind Kind }

// Error implements the error interface.
func (e UnknownKindError) Error() string {
	// Example: factory: unknown kind "boat"
	return "factory: unknown kind " + strconv.Quote(string(e.Kind))
}
