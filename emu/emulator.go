package emu

import (
	"fmt"
	"io"

	"github.com/sarchlab/rvcore/xlen"
)

// Emulator is a RISC-V integer core of one register width: a register file
// with x0 hardwired to zero, a byte memory, and the execution units that
// operate on them. A decoder drives it by reading operands, calling one
// primitive, and writing the result back.
//
// An Emulator is not safe for concurrent use.
type Emulator[T xlen.Reg[T, S, U], S xlen.Ordered[S], U xlen.Ordered[U]] struct {
	regFile *RegFile[T]
	memory  *Memory

	// Execution units
	alu        *ALU[T, S, U]
	lsu        *LoadStoreUnit[T]
	branchUnit *BranchUnit[T, S, U]

	capacity uint64
	trace    io.Writer
}

// RV16, RV32, RV64 and RV128 are the cores for each supported width.
type (
	RV16  = Emulator[xlen.U16, xlen.I16, xlen.U16]
	RV32  = Emulator[xlen.U32, xlen.I32, xlen.U32]
	RV64  = Emulator[xlen.U64, xlen.I64, xlen.U64]
	RV128 = Emulator[xlen.U128, xlen.I128, xlen.U128]
)

type emulatorOptions struct {
	trace io.Writer
}

// EmulatorOption is a functional option for configuring the Emulator.
type EmulatorOption func(*emulatorOptions)

// WithTrace makes the emulator report every memory fault to w.
func WithTrace(w io.Writer) EmulatorOption {
	return func(o *emulatorOptions) {
		o.trace = w
	}
}

// New creates a core with capacity bytes of zeroed memory, zeroed
// registers and x0 locked.
func New[T xlen.Reg[T, S, U], S xlen.Ordered[S], U xlen.Ordered[U]](
	capacity uint64,
	opts ...EmulatorOption,
) *Emulator[T, S, U] {
	o := &emulatorOptions{}
	for _, opt := range opts {
		opt(o)
	}

	e := &Emulator[T, S, U]{
		capacity: capacity,
		trace:    o.trace,
		alu:      NewALU[T, S, U](),
	}
	e.Reset()

	return e
}

// NewFromConfig creates a core from a validated Config. The Config's XLEN
// must match the width the core is instantiated with.
func NewFromConfig[T xlen.Reg[T, S, U], S xlen.Ordered[S], U xlen.Ordered[U]](
	config *Config,
	opts ...EmulatorOption,
) (*Emulator[T, S, U], error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid core config: %w", err)
	}

	var zero T
	if config.XLEN != zero.Bits() {
		return nil, fmt.Errorf("config xlen %d does not match %d-bit core",
			config.XLEN, zero.Bits())
	}

	return New[T, S, U](config.MemoryBytes, opts...), nil
}

// NewRV16 creates a 16-bit core.
func NewRV16(capacity uint64, opts ...EmulatorOption) *RV16 {
	return New[xlen.U16, xlen.I16, xlen.U16](capacity, opts...)
}

// NewRV32 creates a 32-bit core.
func NewRV32(capacity uint64, opts ...EmulatorOption) *RV32 {
	return New[xlen.U32, xlen.I32, xlen.U32](capacity, opts...)
}

// NewRV64 creates a 64-bit core.
func NewRV64(capacity uint64, opts ...EmulatorOption) *RV64 {
	return New[xlen.U64, xlen.I64, xlen.U64](capacity, opts...)
}

// NewRV128 creates a 128-bit core.
func NewRV128(capacity uint64, opts ...EmulatorOption) *RV128 {
	return New[xlen.U128, xlen.I128, xlen.U128](capacity, opts...)
}

// Reset restores the power-on state: zeroed registers with x0 locked and
// zeroed memory of the original capacity.
func (e *Emulator[T, S, U]) Reset() {
	e.regFile = NewRegFile[T]()
	e.memory = NewMemory(e.capacity)

	// Recreate execution units
	e.lsu = NewLoadStoreUnit[T](e.memory)
	e.branchUnit = NewBranchUnit[T, S, U](e.regFile)
}

// RegFile returns the emulator's register file.
func (e *Emulator[T, S, U]) RegFile() *RegFile[T] {
	return e.regFile
}

// Memory returns the emulator's memory.
func (e *Emulator[T, S, U]) Memory() *Memory {
	return e.memory
}

// ALU returns the emulator's ALU.
func (e *Emulator[T, S, U]) ALU() *ALU[T, S, U] {
	return e.alu
}

// Read returns the value of register x[reg].
func (e *Emulator[T, S, U]) Read(reg uint8) T {
	return e.regFile.ReadReg(reg)
}

// Write sets register x[reg]. Writing x0 has no effect.
func (e *Emulator[T, S, U]) Write(reg uint8, value T) {
	e.regFile.WriteReg(reg, value)
}

// PC returns the program counter.
func (e *Emulator[T, S, U]) PC() T {
	return e.regFile.PC.Get()
}

// SetPC sets the program counter.
func (e *Emulator[T, S, U]) SetPC(pc T) {
	e.regFile.PC.Set(pc)
}

// LB loads a sign-extended byte.
func (e *Emulator[T, S, U]) LB(addr uint64) (T, error) {
	return e.load("lb", addr, e.lsu.LB)
}

// LBU loads a zero-extended byte.
func (e *Emulator[T, S, U]) LBU(addr uint64) (T, error) {
	return e.load("lbu", addr, e.lsu.LBU)
}

// LH loads a sign-extended half-word.
func (e *Emulator[T, S, U]) LH(addr uint64) (T, error) {
	return e.load("lh", addr, e.lsu.LH)
}

// LHU loads a zero-extended half-word.
func (e *Emulator[T, S, U]) LHU(addr uint64) (T, error) {
	return e.load("lhu", addr, e.lsu.LHU)
}

// LW loads a full register.
func (e *Emulator[T, S, U]) LW(addr uint64) (T, error) {
	return e.load("lw", addr, e.lsu.LW)
}

// SB stores the low byte of value.
func (e *Emulator[T, S, U]) SB(value T, addr uint64) error {
	return e.fault("sb", e.lsu.SB(value, addr))
}

// SH stores the low half-word of value.
func (e *Emulator[T, S, U]) SH(value T, addr uint64) error {
	return e.fault("sh", e.lsu.SH(value, addr))
}

// SW stores the full register.
func (e *Emulator[T, S, U]) SW(value T, addr uint64) error {
	return e.fault("sw", e.lsu.SW(value, addr))
}

// BEQ branches by imm if rs1 == rs2 and reports whether it did.
func (e *Emulator[T, S, U]) BEQ(rs1, rs2, imm T) bool { return e.branchUnit.BEQ(rs1, rs2, imm) }

// BNE branches by imm if rs1 != rs2 and reports whether it did.
func (e *Emulator[T, S, U]) BNE(rs1, rs2, imm T) bool { return e.branchUnit.BNE(rs1, rs2, imm) }

// BLT branches by imm if rs1 < rs2 (signed) and reports whether it did.
func (e *Emulator[T, S, U]) BLT(rs1, rs2, imm T) bool { return e.branchUnit.BLT(rs1, rs2, imm) }

// BGE branches by imm if rs1 >= rs2 (signed) and reports whether it did.
func (e *Emulator[T, S, U]) BGE(rs1, rs2, imm T) bool { return e.branchUnit.BGE(rs1, rs2, imm) }

// BLTU branches by imm if rs1 < rs2 (unsigned) and reports whether it did.
func (e *Emulator[T, S, U]) BLTU(rs1, rs2, imm T) bool { return e.branchUnit.BLTU(rs1, rs2, imm) }

// BGEU branches by imm if rs1 >= rs2 (unsigned) and reports whether it did.
func (e *Emulator[T, S, U]) BGEU(rs1, rs2, imm T) bool { return e.branchUnit.BGEU(rs1, rs2, imm) }

func (e *Emulator[T, S, U]) load(op string, addr uint64, fn func(uint64) (T, error)) (T, error) {
	v, err := fn(addr)
	return v, e.fault(op, err)
}

// fault passes err through, reporting it to the trace writer if one is
// set.
func (e *Emulator[T, S, U]) fault(op string, err error) error {
	if err != nil && e.trace != nil {
		_, _ = fmt.Fprintf(e.trace, "fault: %s: %v\n", op, err)
	}
	return err
}
