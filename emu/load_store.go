package emu

import (
	"math/bits"

	"github.com/sarchlab/rvcore/xlen"
)

// LoadStoreUnit implements RISC-V load and store operations on top of a
// byte memory. Half-word transfers move XLEN/16 bytes and word transfers
// move XLEN/8 bytes, so a word always fills the register.
type LoadStoreUnit[T xlen.Word[T]] struct {
	memory *Memory
}

// NewLoadStoreUnit creates a new LoadStoreUnit connected to the given
// memory.
func NewLoadStoreUnit[T xlen.Word[T]](memory *Memory) *LoadStoreUnit[T] {
	return &LoadStoreUnit[T]{memory: memory}
}

// LoadUnsigned assembles n bytes starting at addr, little-endian, into a
// zero-extended register value.
func (lsu *LoadStoreUnit[T]) LoadUnsigned(addr uint64, n uint) (T, error) {
	var r T
	if n*8 > r.Bits() {
		return r, &MemoryError{Op: "load", Addr: addr, Err: ErrConversionFailure}
	}

	for i := uint(0); i < n; i++ {
		a, err := byteAddr("load", addr, i)
		if err != nil {
			return r.UMin(), err
		}
		b, err := lsu.memory.GetByte(a)
		if err != nil {
			return r.UMin(), err
		}
		r = r.Or(r.FromByte(b).Shl(8 * i))
	}

	return r, nil
}

// LoadSigned is LoadUnsigned followed by sign extension from bit 8n-1.
func (lsu *LoadStoreUnit[T]) LoadSigned(addr uint64, n uint) (T, error) {
	r, err := lsu.LoadUnsigned(addr, n)
	if err != nil || n == 0 {
		return r, err
	}

	sign := r.One().Shl(8*n - 1)
	if r.And(sign) == sign {
		r = r.Or(r.UMax().Shl(8 * n))
	}

	return r, nil
}

// Store writes the low n bytes of value starting at addr, little-endian.
// Bytes are written one at a time; a fault stops the store but bytes
// already written stay written.
func (lsu *LoadStoreUnit[T]) Store(value T, addr uint64, n uint) error {
	if n*8 > value.Bits() {
		return &MemoryError{Op: "store", Addr: addr, Err: ErrConversionFailure}
	}

	mask := value.FromByte(0xFF)
	for i := uint(0); i < n; i++ {
		b, ok := value.Shr(8 * i).And(mask).Byte()
		if !ok {
			return &MemoryError{Op: "store", Addr: addr, Err: ErrConversionFailure}
		}
		a, err := byteAddr("store", addr, i)
		if err != nil {
			return err
		}
		if err := lsu.memory.SB(b, a); err != nil {
			return err
		}
	}

	return nil
}

// byteAddr returns addr+i, failing instead of wrapping past the top of the
// address space.
func byteAddr(op string, addr uint64, i uint) (uint64, error) {
	a, carry := bits.Add64(addr, uint64(i), 0)
	if carry != 0 {
		return 0, &MemoryError{Op: op, Addr: addr, Err: ErrOutOfBounds}
	}
	return a, nil
}

func (lsu *LoadStoreUnit[T]) half() uint {
	var zero T
	return zero.Bits() / 16
}

func (lsu *LoadStoreUnit[T]) word() uint {
	var zero T
	return zero.Bits() / 8
}

// LB loads a byte with sign extension.
func (lsu *LoadStoreUnit[T]) LB(addr uint64) (T, error) {
	return lsu.LoadSigned(addr, 1)
}

// LBU loads a byte with zero extension.
func (lsu *LoadStoreUnit[T]) LBU(addr uint64) (T, error) {
	return lsu.LoadUnsigned(addr, 1)
}

// LH loads a half-word with sign extension.
func (lsu *LoadStoreUnit[T]) LH(addr uint64) (T, error) {
	return lsu.LoadSigned(addr, lsu.half())
}

// LHU loads a half-word with zero extension.
func (lsu *LoadStoreUnit[T]) LHU(addr uint64) (T, error) {
	return lsu.LoadUnsigned(addr, lsu.half())
}

// LW loads a full register. There is nothing to extend.
func (lsu *LoadStoreUnit[T]) LW(addr uint64) (T, error) {
	return lsu.LoadUnsigned(addr, lsu.word())
}

// SB stores the low byte of value.
func (lsu *LoadStoreUnit[T]) SB(value T, addr uint64) error {
	return lsu.Store(value, addr, 1)
}

// SH stores the low half-word of value.
func (lsu *LoadStoreUnit[T]) SH(value T, addr uint64) error {
	return lsu.Store(value, addr, lsu.half())
}

// SW stores the full register.
func (lsu *LoadStoreUnit[T]) SW(value T, addr uint64) error {
	return lsu.Store(value, addr, lsu.word())
}
