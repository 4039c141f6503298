package types

import (
	"errors"
	"fmt"
)

var (
	// ErrOverflow is returned when a sum cannot be represented in 64 bits.
	ErrOverflow = errors.New("overflow")
	// ErrEntropyUnavailable is returned when the random source cannot supply bytes.
	// It indicates an environment defect and should not be retried.
	ErrEntropyUnavailable = errors.New("entropy unavailable")
)

func NewMethodNotFoundError(name string) error {
	return fmt.Errorf("method %v not found", name)
}

func NewServiceNotFoundError(name string) error {
	return fmt.Errorf("service %v not found", name)
}

func NewInvalidInputError(in interface{}) error {
	return fmt.Errorf("invalid input %T", in)
}

func NewInvalidOutputError(in interface{}) error {
	return fmt.Errorf("invalid output %T", in)
}
