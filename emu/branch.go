package emu

import "github.com/sarchlab/rvcore/xlen"

// BranchUnit implements the RISC-V conditional branches. A taken branch
// adds the immediate to the PC; a branch not taken leaves the PC alone so
// the caller can advance it.
type BranchUnit[T xlen.Reg[T, S, U], S xlen.Ordered[S], U xlen.Ordered[U]] struct {
	regFile *RegFile[T]
}

// NewBranchUnit creates a new BranchUnit connected to the given register
// file.
func NewBranchUnit[T xlen.Reg[T, S, U], S xlen.Ordered[S], U xlen.Ordered[U]](
	regFile *RegFile[T],
) *BranchUnit[T, S, U] {
	return &BranchUnit[T, S, U]{regFile: regFile}
}

// BEQ branches if rs1 == rs2.
func (b *BranchUnit[T, S, U]) BEQ(rs1, rs2, imm T) bool {
	return b.branch(rs1 == rs2, imm)
}

// BNE branches if rs1 != rs2.
func (b *BranchUnit[T, S, U]) BNE(rs1, rs2, imm T) bool {
	return b.branch(rs1 != rs2, imm)
}

// BLT branches if rs1 < rs2 as signed integers.
func (b *BranchUnit[T, S, U]) BLT(rs1, rs2, imm T) bool {
	return b.branch(rs1.AsSigned().Less(rs2.AsSigned()), imm)
}

// BGE branches if rs1 >= rs2 as signed integers.
func (b *BranchUnit[T, S, U]) BGE(rs1, rs2, imm T) bool {
	return b.branch(!rs1.AsSigned().Less(rs2.AsSigned()), imm)
}

// BLTU branches if rs1 < rs2 as unsigned integers.
func (b *BranchUnit[T, S, U]) BLTU(rs1, rs2, imm T) bool {
	return b.branch(rs1.AsUnsigned().Less(rs2.AsUnsigned()), imm)
}

// BGEU branches if rs1 >= rs2 as unsigned integers.
func (b *BranchUnit[T, S, U]) BGEU(rs1, rs2, imm T) bool {
	return b.branch(!rs1.AsUnsigned().Less(rs2.AsUnsigned()), imm)
}

func (b *BranchUnit[T, S, U]) branch(taken bool, imm T) bool {
	if taken {
		b.regFile.PC.Add(imm)
	}
	return taken
}
