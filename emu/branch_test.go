package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/rvcore/emu"
	"github.com/sarchlab/rvcore/xlen"
)

var _ = Describe("BranchUnit", func() {
	var (
		regFile    *emu.RegFile[xlen.U32]
		branchUnit *emu.BranchUnit[xlen.U32, xlen.I32, xlen.U32]
	)

	const (
		neg1 = xlen.U32(0xFFFF_FFFF)
		back = xlen.U32(0xFFFF_FFF0) // -16
	)

	BeforeEach(func() {
		regFile = emu.NewRegFile[xlen.U32]()
		regFile.PC.Set(0x1000) // Start at address 0x1000
		branchUnit = emu.NewBranchUnit[xlen.U32, xlen.I32, xlen.U32](regFile)
	})

	DescribeTable("conditions",
		func(op string, rs1, rs2 xlen.U32, taken bool) {
			branches := map[string]func(rs1, rs2, imm xlen.U32) bool{
				"beq":  branchUnit.BEQ,
				"bne":  branchUnit.BNE,
				"blt":  branchUnit.BLT,
				"bge":  branchUnit.BGE,
				"bltu": branchUnit.BLTU,
				"bgeu": branchUnit.BGEU,
			}

			Expect(branches[op](rs1, rs2, 0x20)).To(Equal(taken))
			if taken {
				Expect(regFile.PC.Get()).To(Equal(xlen.U32(0x1020)))
			} else {
				Expect(regFile.PC.Get()).To(Equal(xlen.U32(0x1000)))
			}
		},
		Entry("beq equal", "beq", xlen.U32(5), xlen.U32(5), true),
		Entry("beq different", "beq", xlen.U32(5), xlen.U32(6), false),
		Entry("bne different", "bne", xlen.U32(5), xlen.U32(6), true),
		Entry("bne equal", "bne", xlen.U32(5), xlen.U32(5), false),
		Entry("blt negative < positive", "blt", neg1, xlen.U32(1), true),
		Entry("blt positive < negative", "blt", xlen.U32(1), neg1, false),
		Entry("blt equal", "blt", xlen.U32(3), xlen.U32(3), false),
		Entry("bge positive >= negative", "bge", xlen.U32(1), neg1, true),
		Entry("bge equal", "bge", neg1, neg1, true),
		Entry("bge negative >= positive", "bge", neg1, xlen.U32(1), false),
		Entry("bltu small < large", "bltu", xlen.U32(1), neg1, true),
		Entry("bltu large < small", "bltu", neg1, xlen.U32(1), false),
		Entry("bgeu large >= small", "bgeu", neg1, xlen.U32(1), true),
		Entry("bgeu equal", "bgeu", xlen.U32(0), xlen.U32(0), true),
		Entry("bgeu small >= large", "bgeu", xlen.U32(1), neg1, false),
	)

	It("should branch backward with a negative immediate", func() {
		Expect(branchUnit.BEQ(0, 0, back)).To(BeTrue())

		Expect(regFile.PC.Get()).To(Equal(xlen.U32(0x1000 - 16)))
	})

	It("should wrap the PC around the address space", func() {
		regFile.PC.Set(8)

		Expect(branchUnit.BNE(0, 1, back)).To(BeTrue())
		Expect(regFile.PC.Get()).To(Equal(xlen.U32(0xFFFF_FFF8)))
	})

	It("should not move a locked PC", func() {
		regFile.PC.Lock()

		Expect(branchUnit.BEQ(1, 1, 0x40)).To(BeTrue())
		Expect(regFile.PC.Get()).To(Equal(xlen.U32(0x1000)))
	})

	It("should compare 128-bit operands by their reinterpretation", func() {
		regFile128 := emu.NewRegFile[xlen.U128]()
		unit := emu.NewBranchUnit[xlen.U128, xlen.I128, xlen.U128](regFile128)
		var z xlen.U128

		Expect(unit.BLT(z.UMax(), z.One(), z.One())).To(BeTrue())
		Expect(unit.BLTU(z.UMax(), z.One(), z.One())).To(BeFalse())
		Expect(unit.BGEU(z.SMin(), z.SMax(), z.One())).To(BeTrue())
		Expect(regFile128.PC.Get()).To(Equal(xlen.NewU128(0, 2)))
	})
})
