package xlen

import "math"

// U32 is an unsigned 32-bit register value.
type U32 uint32

// I32 is a signed 32-bit register value.
type I32 int32

func (v U32) Add(o U32) U32 { return v + o }
func (v U32) Sub(o U32) U32 { return v - o }
func (v U32) Mul(o U32) U32 { return v * o }
func (v U32) And(o U32) U32 { return v & o }
func (v U32) Or(o U32) U32 { return v | o }
func (v U32) Xor(o U32) U32 { return v ^ o }

func (v U32) Shl(n uint) U32 { return v << n }
func (v U32) Shr(n uint) U32 { return v >> n }

func (v U32) Less(o U32) bool { return v < o }

func (U32) UMin() U32 { return 0 }
func (U32) UMax() U32 { return math.MaxUint32 }
func (U32) SMin() U32 { return 1 << (32 - 1) }
func (U32) SMax() U32 { return math.MaxInt32 }
func (U32) One() U32 { return 1 }
func (U32) Bits() uint { return 32 }

func (U32) FromByte(b byte) U32 { return U32(b) }

func (v U32) Byte() (byte, bool) { return byte(v), v <= math.MaxUint8 }
func (v U32) Low64() uint64 { return uint64(v) }

func (v U32) AsSigned() I32 { return I32(v) }
func (v U32) AsUnsigned() U32 { return v }

func (v I32) Add(o I32) I32 { return v + o }
func (v I32) Sub(o I32) I32 { return v - o }
func (v I32) Mul(o I32) I32 { return v * o }
func (v I32) And(o I32) I32 { return v & o }
func (v I32) Or(o I32) I32 { return v | o }
func (v I32) Xor(o I32) I32 { return v ^ o }

func (v I32) Shl(n uint) I32 { return v << n }

// Shr is logical; Go's >> on a signed operand would copy the sign bit.
func (v I32) Shr(n uint) I32 { return I32(uint32(v) >> n) }

func (v I32) Less(o I32) bool { return v < o }

func (I32) UMin() I32 { return 0 }
func (I32) UMax() I32 { return -1 }
func (I32) SMin() I32 { return math.MinInt32 }
func (I32) SMax() I32 { return math.MaxInt32 }
func (I32) One() I32 { return 1 }
func (I32) Bits() uint { return 32 }

func (I32) FromByte(b byte) I32 { return I32(b) }

func (v I32) Byte() (byte, bool) { return byte(v), v >= 0 && v <= math.MaxUint8 }
func (v I32) Low64() uint64 { return uint64(uint32(v)) }

func (v I32) AsSigned() I32 { return v }
func (v I32) AsUnsigned() U32 { return U32(v) }
