// Package xlen defines the register widths the RISC-V core can be built for.
//
// A register value is a bit pattern with no signedness of its own. Every
// width comes as an unsigned and a signed Go type sharing the same storage
// size; an operation that cares about signedness reinterprets its operands
// through AsSigned or AsUnsigned and compares the results.
package xlen

// Ordered is a value that can be compared with values of its own type.
type Ordered[T any] interface {
	comparable

	// Less reports whether the receiver orders before o under the
	// signedness of the receiver's type.
	Less(o T) bool
}

// Word is the signedness-agnostic arithmetic every register width provides.
type Word[T any] interface {
	Ordered[T]

	// Add, Sub and Mul wrap on overflow.
	Add(o T) T
	Sub(o T) T
	Mul(o T) T

	And(o T) T
	Or(o T) T
	Xor(o T) T

	// Shl and Shr are logical shifts; vacated bits are zero. Shifting by
	// Bits() or more yields zero.
	Shl(n uint) T
	Shr(n uint) T

	// UMin is 000..0.
	UMin() T
	// UMax is 111..1.
	UMax() T
	// SMin is 100..0.
	SMin() T
	// SMax is 011..1.
	SMax() T
	// One is 000..1.
	One() T

	// Bits is the register width in bits.
	Bits() uint

	// FromByte zero-extends b to the register width.
	FromByte(b byte) T
	// Byte narrows the value to a byte. It fails if the value does not
	// fit in eight unsigned bits.
	Byte() (byte, bool)
	// Low64 returns the low 64 bits of the pattern.
	Low64() uint64
}

// Reg is a Word with its signed (S) and unsigned (U) reinterpretations.
// Both conversions keep the bit pattern unchanged.
type Reg[T any, S Ordered[S], U Ordered[U]] interface {
	Word[T]

	AsSigned() S
	AsUnsigned() U
}
