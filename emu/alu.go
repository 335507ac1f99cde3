package emu

import "github.com/sarchlab/rvcore/xlen"

// ALU implements the RISC-V integer arithmetic and logic operations.
// Every operation is total: it is defined for all bit patterns and never
// fails. Operand fetch and write-back are the caller's job.
type ALU[T xlen.Reg[T, S, U], S xlen.Ordered[S], U xlen.Ordered[U]] struct{}

// NewALU creates a new ALU.
func NewALU[T xlen.Reg[T, S, U], S xlen.Ordered[S], U xlen.Ordered[U]]() *ALU[T, S, U] {
	return &ALU[T, S, U]{}
}

// ADD performs rs1 + rs2, wrapping.
func (a *ALU[T, S, U]) ADD(rs1, rs2 T) T { return rs1.Add(rs2) }

// SUB performs rs1 - rs2, wrapping.
func (a *ALU[T, S, U]) SUB(rs1, rs2 T) T { return rs1.Sub(rs2) }

// MUL performs rs1 * rs2 and keeps the low XLEN bits.
func (a *ALU[T, S, U]) MUL(rs1, rs2 T) T { return rs1.Mul(rs2) }

func (a *ALU[T, S, U]) XOR(rs1, rs2 T) T { return rs1.Xor(rs2) }
func (a *ALU[T, S, U]) OR(rs1, rs2 T) T { return rs1.Or(rs2) }
func (a *ALU[T, S, U]) AND(rs1, rs2 T) T { return rs1.And(rs2) }

// SLL shifts rs1 left by the low log2(XLEN) bits of shamt.
func (a *ALU[T, S, U]) SLL(rs1, shamt T) T {
	return rs1.Shl(shiftAmount(shamt))
}

// SRL shifts rs1 right by the low log2(XLEN) bits of shamt, filling with
// zeros.
func (a *ALU[T, S, U]) SRL(rs1, shamt T) T {
	return rs1.Shr(shiftAmount(shamt))
}

// SRA shifts rs1 right by the low log2(XLEN) bits of shamt, filling with
// copies of the sign bit.
func (a *ALU[T, S, U]) SRA(rs1, shamt T) T {
	n := shiftAmount(shamt)
	r := rs1.Shr(n)

	// The storage type shifts logically, so set the n vacated high bits by
	// hand when the original value was negative.
	sign := rs1.SMin()
	if rs1.And(sign) == sign {
		umax := rs1.UMax()
		r = r.Or(umax.Shr(n).Xor(umax))
	}

	return r
}

// SLT sets 1 if rs1 < rs2 as signed integers, else 0.
func (a *ALU[T, S, U]) SLT(rs1, rs2 T) T {
	if rs1.AsSigned().Less(rs2.AsSigned()) {
		return rs1.One()
	}
	return rs1.UMin()
}

// SLTU sets 1 if rs1 < rs2 as unsigned integers, else 0.
func (a *ALU[T, S, U]) SLTU(rs1, rs2 T) T {
	if rs1.AsUnsigned().Less(rs2.AsUnsigned()) {
		return rs1.One()
	}
	return rs1.UMin()
}

// shiftAmount extracts the shamt field: the low log2(XLEN) bits of v.
func shiftAmount[T xlen.Word[T]](v T) uint {
	return uint(v.Low64() & uint64(v.Bits()-1))
}
