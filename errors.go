package linq

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrEmptySequence is returned by Aggregate when the sequence has no elements to seed the accumulator.
	ErrEmptySequence = errors.New("sequence contained no elements")

	// ErrNoValueFound is returned by First and Single when no element matches.
	ErrNoValueFound = errors.New("no value found")

	// ErrNoItemFound is returned by Last when no element matches.
	ErrNoItemFound = errors.New("no item found")

	// ErrIndexNotFound is returned by ElementAt when the index is negative or past the end of the sequence.
	ErrIndexNotFound = errors.New("index not found")

	// ErrMultipleValuesFound is returned by Single and SingleOrDefault when more than one element matches.
	ErrMultipleValuesFound = errors.New("more than one value present in sequence")

	// ErrEmptyNumericReduction is returned by Min, Max, and Sum when the sequence has no elements.
	ErrEmptyNumericReduction = errors.New("no values in sequence")

	// ErrDuplicateKey marks errors returned by ToDictionary when a key selector produces the same key twice.
	// Such errors also match ErrMultipleValuesFound.
	ErrDuplicateKey = errors.New("duplicate key")
)

// A CastError is the panic value used when Cast cannot convert an element to the requested Kind.
type CastError struct {
	// Value is the element that could not be converted.
	Value any

	// Kind is the requested kind.
	Kind Kind

	// Err is the underlying conversion failure, if any.
	Err error
}

// Error implements error.
func (e *CastError) Error() string {
	msg := fmt.Sprintf("cannot cast %v (%T) to %s", e.Value, e.Value, e.Kind)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Unwrap returns the underlying conversion failure.
func (e *CastError) Unwrap() error {
	return e.Err
}
