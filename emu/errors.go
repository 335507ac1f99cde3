package emu

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned for an access at or beyond the memory
	// capacity, or one whose address arithmetic would overflow.
	ErrOutOfBounds = errors.New("address out of bounds")

	// ErrConversionFailure is returned when a value cannot be converted
	// between a byte and the register width. It indicates a broken width
	// implementation or a transfer wider than the register.
	ErrConversionFailure = errors.New("register width conversion failed")
)

// MemoryError records the failing operation and address of a memory fault.
type MemoryError struct {
	Op   string
	Addr uint64
	Err  error
}

func (err *MemoryError) Error() string {
	return fmt.Sprintf("%s 0x%X: %v", err.Op, err.Addr, err.Err)
}

func (err *MemoryError) Unwrap() error {
	return err.Err
}
