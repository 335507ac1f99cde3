package xlen

import "math"

// U16 is an unsigned 16-bit register value.
type U16 uint16

// I16 is a signed 16-bit register value.
type I16 int16

func (v U16) Add(o U16) U16 { return v + o }
func (v U16) Sub(o U16) U16 { return v - o }
func (v U16) Mul(o U16) U16 { return v * o }
func (v U16) And(o U16) U16 { return v & o }
func (v U16) Or(o U16) U16 { return v | o }
func (v U16) Xor(o U16) U16 { return v ^ o }

func (v U16) Shl(n uint) U16 { return v << n }
func (v U16) Shr(n uint) U16 { return v >> n }

func (v U16) Less(o U16) bool { return v < o }

func (U16) UMin() U16 { return 0 }
func (U16) UMax() U16 { return math.MaxUint16 }
func (U16) SMin() U16 { return 1 << (16 - 1) }
func (U16) SMax() U16 { return math.MaxInt16 }
func (U16) One() U16 { return 1 }
func (U16) Bits() uint { return 16 }

func (U16) FromByte(b byte) U16 { return U16(b) }

func (v U16) Byte() (byte, bool) { return byte(v), v <= math.MaxUint8 }
func (v U16) Low64() uint64 { return uint64(v) }

func (v U16) AsSigned() I16 { return I16(v) }
func (v U16) AsUnsigned() U16 { return v }

func (v I16) Add(o I16) I16 { return v + o }
func (v I16) Sub(o I16) I16 { return v - o }
func (v I16) Mul(o I16) I16 { return v * o }
func (v I16) And(o I16) I16 { return v & o }
func (v I16) Or(o I16) I16 { return v | o }
func (v I16) Xor(o I16) I16 { return v ^ o }

func (v I16) Shl(n uint) I16 { return v << n }

// Shr is logical; Go's >> on a signed operand would copy the sign bit.
func (v I16) Shr(n uint) I16 { return I16(uint16(v) >> n) }

func (v I16) Less(o I16) bool { return v < o }

func (I16) UMin() I16 { return 0 }
func (I16) UMax() I16 { return -1 }
func (I16) SMin() I16 { return math.MinInt16 }
func (I16) SMax() I16 { return math.MaxInt16 }
func (I16) One() I16 { return 1 }
func (I16) Bits() uint { return 16 }

func (I16) FromByte(b byte) I16 { return I16(b) }

func (v I16) Byte() (byte, bool) { return byte(v), v >= 0 && v <= math.MaxUint8 }
func (v I16) Low64() uint64 { return uint64(uint16(v)) }

func (v I16) AsSigned() I16 { return v }
func (v I16) AsUnsigned() U16 { return U16(v) }
