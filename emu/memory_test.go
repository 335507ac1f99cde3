package emu_test

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/rvcore/emu"
)

var _ = Describe("Memory", func() {
	var memory *emu.Memory

	BeforeEach(func() {
		memory = emu.NewMemory(1024)
	})

	It("should report its capacity", func() {
		Expect(memory.Capacity()).To(Equal(uint64(1024)))
	})

	It("should start zeroed", func() {
		data, err := memory.ReadBytes(0, 1024)

		Expect(err).NotTo(HaveOccurred())
		Expect(data).To(Equal(make([]byte, 1024)))
	})

	It("should read back a stored byte", func() {
		Expect(memory.SB(0xAB, 1023)).To(Succeed())

		b, err := memory.GetByte(1023)
		Expect(err).NotTo(HaveOccurred())
		Expect(b).To(Equal(byte(0xAB)))
	})

	It("should overwrite exactly one byte", func() {
		Expect(memory.WriteBytes(10, []byte{1, 2, 3})).To(Succeed())
		Expect(memory.SB(0xFF, 11)).To(Succeed())

		data, err := memory.ReadBytes(10, 3)
		Expect(err).NotTo(HaveOccurred())
		Expect(data).To(Equal([]byte{1, 0xFF, 3}))
	})

	Describe("bounds", func() {
		It("should fail at the capacity", func() {
			_, err := memory.GetByte(1024)
			Expect(errors.Is(err, emu.ErrOutOfBounds)).To(BeTrue())

			err = memory.SB(0, 1024)
			Expect(errors.Is(err, emu.ErrOutOfBounds)).To(BeTrue())
		})

		It("should report the faulting address", func() {
			_, err := memory.GetByte(2000)

			var memErr *emu.MemoryError
			Expect(errors.As(err, &memErr)).To(BeTrue())
			Expect(memErr.Addr).To(Equal(uint64(2000)))
			Expect(memErr.Op).To(Equal("read"))
			Expect(err.Error()).To(ContainSubstring("0x7D0"))
		})

		It("should not wrap around the address space", func() {
			_, err := memory.ReadBytes(math.MaxUint64, 2)
			Expect(errors.Is(err, emu.ErrOutOfBounds)).To(BeTrue())

			err = memory.WriteBytes(math.MaxUint64-1, []byte{1, 2, 3})
			Expect(errors.Is(err, emu.ErrOutOfBounds)).To(BeTrue())
		})

		It("should reject a bulk write that runs past the end", func() {
			err := memory.WriteBytes(1022, []byte{1, 2, 3})
			Expect(errors.Is(err, emu.ErrOutOfBounds)).To(BeTrue())

			b, _ := memory.GetByte(1022)
			Expect(b).To(Equal(byte(0)))
		})
	})

	It("should treat an empty memory as all out of bounds", func() {
		empty := emu.NewMemory(0)

		_, err := empty.GetByte(0)
		Expect(errors.Is(err, emu.ErrOutOfBounds)).To(BeTrue())
	})
})
