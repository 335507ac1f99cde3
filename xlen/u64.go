package xlen

import "math"

// U64 is an unsigned 64-bit register value.
type U64 uint64

// I64 is a signed 64-bit register value.
type I64 int64

func (v U64) Add(o U64) U64 { return v + o }
func (v U64) Sub(o U64) U64 { return v - o }
func (v U64) Mul(o U64) U64 { return v * o }
func (v U64) And(o U64) U64 { return v & o }
func (v U64) Or(o U64) U64 { return v | o }
func (v U64) Xor(o U64) U64 { return v ^ o }

func (v U64) Shl(n uint) U64 { return v << n }
func (v U64) Shr(n uint) U64 { return v >> n }

func (v U64) Less(o U64) bool { return v < o }

func (U64) UMin() U64 { return 0 }
func (U64) UMax() U64 { return math.MaxUint64 }
func (U64) SMin() U64 { return 1 << (64 - 1) }
func (U64) SMax() U64 { return math.MaxInt64 }
func (U64) One() U64 { return 1 }
func (U64) Bits() uint { return 64 }

func (U64) FromByte(b byte) U64 { return U64(b) }

func (v U64) Byte() (byte, bool) { return byte(v), v <= math.MaxUint8 }
func (v U64) Low64() uint64 { return uint64(v) }

func (v U64) AsSigned() I64 { return I64(v) }
func (v U64) AsUnsigned() U64 { return v }

func (v I64) Add(o I64) I64 { return v + o }
func (v I64) Sub(o I64) I64 { return v - o }
func (v I64) Mul(o I64) I64 { return v * o }
func (v I64) And(o I64) I64 { return v & o }
func (v I64) Or(o I64) I64 { return v | o }
func (v I64) Xor(o I64) I64 { return v ^ o }

func (v I64) Shl(n uint) I64 { return v << n }

// Shr is logical; Go's >> on a signed operand would copy the sign bit.
func (v I64) Shr(n uint) I64 { return I64(uint64(v) >> n) }

func (v I64) Less(o I64) bool { return v < o }

func (I64) UMin() I64 { return 0 }
func (I64) UMax() I64 { return -1 }
func (I64) SMin() I64 { return math.MinInt64 }
func (I64) SMax() I64 { return math.MaxInt64 }
func (I64) One() I64 { return 1 }
func (I64) Bits() uint { return 64 }

func (I64) FromByte(b byte) I64 { return I64(b) }

func (v I64) Byte() (byte, bool) { return byte(v), v >= 0 && v <= math.MaxUint8 }
func (v I64) Low64() uint64 { return uint64(v) }

func (v I64) AsSigned() I64 { return v }
func (v I64) AsUnsigned() U64 { return U64(v) }
