// Package emu provides a width-generic functional RISC-V integer core.
package emu

import "github.com/sarchlab/rvcore/xlen"

// NumRegs is the number of integer registers (x0-x31).
const NumRegs = 32

// RegFile represents the RISC-V integer register file.
// It contains 32 general-purpose registers (x0-x31) and the program
// counter (PC), all XLEN bits wide.
type RegFile[T xlen.Word[T]] struct {
	// X holds general-purpose registers x0-x31.
	// X[0] is locked at construction so it always reads as 0.
	X [NumRegs]RegLock[T]

	// PC is the program counter. It is never locked.
	PC RegLock[T]
}

// NewRegFile creates a zeroed register file with x0 hardwired to zero.
func NewRegFile[T xlen.Word[T]]() *RegFile[T] {
	r := &RegFile[T]{}
	r.X[0].Lock()
	return r
}

// ReadReg reads a register value.
// Registers >= 32 (e.g., sentinel values from a decoder) return 0.
func (r *RegFile[T]) ReadReg(reg uint8) T {
	if reg >= NumRegs {
		var zero T
		return zero
	}
	return r.X[reg].Get()
}

// WriteReg writes a value to a register. Writes to x0 and to registers
// >= 32 are ignored.
func (r *RegFile[T]) WriteReg(reg uint8, value T) {
	if reg >= NumRegs {
		return
	}
	r.X[reg].Set(value)
}
