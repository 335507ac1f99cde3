package xlen

import (
	"math"

	"lukechampine.com/uint128"
)

// U128 is an unsigned 128-bit register value.
type U128 uint128.Uint128

// I128 is a signed 128-bit register value. It shares U128's storage; only
// Less differs.
type I128 uint128.Uint128

// NewU128 builds a U128 from its high and low halves.
func NewU128(hi, lo uint64) U128 {
	return U128(uint128.New(lo, hi))
}

// NewI128 builds an I128 from its high and low halves.
func NewI128(hi, lo uint64) I128 {
	return I128(uint128.New(lo, hi))
}

func (v U128) u() uint128.Uint128 { return uint128.Uint128(v) }

func (v U128) Add(o U128) U128 { return U128(v.u().AddWrap(o.u())) }
func (v U128) Sub(o U128) U128 { return U128(v.u().SubWrap(o.u())) }
func (v U128) Mul(o U128) U128 { return U128(v.u().MulWrap(o.u())) }
func (v U128) And(o U128) U128 { return U128(v.u().And(o.u())) }
func (v U128) Or(o U128) U128 { return U128(v.u().Or(o.u())) }
func (v U128) Xor(o U128) U128 { return U128(v.u().Xor(o.u())) }

func (v U128) Shl(n uint) U128 { return U128(v.u().Lsh(n)) }
func (v U128) Shr(n uint) U128 { return U128(v.u().Rsh(n)) }

func (v U128) Less(o U128) bool { return v.u().Cmp(o.u()) < 0 }

func (U128) UMin() U128 { return U128{} }
func (U128) UMax() U128 { return U128(uint128.Max) }
func (U128) SMin() U128 { return NewU128(1<<63, 0) }
func (U128) SMax() U128 { return NewU128(math.MaxInt64, math.MaxUint64) }
func (U128) One() U128 { return NewU128(0, 1) }
func (U128) Bits() uint { return 128 }

func (U128) FromByte(b byte) U128 { return NewU128(0, uint64(b)) }

func (v U128) Byte() (byte, bool) { return byte(v.Lo), v.Hi == 0 && v.Lo <= math.MaxUint8 }
func (v U128) Low64() uint64 { return v.Lo }

func (v U128) AsSigned() I128 { return I128(v) }
func (v U128) AsUnsigned() U128 { return v }

// String prints the value in decimal.
func (v U128) String() string { return v.u().String() }

func (v I128) u() uint128.Uint128 { return uint128.Uint128(v) }

func (v I128) Add(o I128) I128 { return I128(v.u().AddWrap(o.u())) }
func (v I128) Sub(o I128) I128 { return I128(v.u().SubWrap(o.u())) }
func (v I128) Mul(o I128) I128 { return I128(v.u().MulWrap(o.u())) }
func (v I128) And(o I128) I128 { return I128(v.u().And(o.u())) }
func (v I128) Or(o I128) I128 { return I128(v.u().Or(o.u())) }
func (v I128) Xor(o I128) I128 { return I128(v.u().Xor(o.u())) }

func (v I128) Shl(n uint) I128 { return I128(v.u().Lsh(n)) }
func (v I128) Shr(n uint) I128 { return I128(v.u().Rsh(n)) }

// Less compares the high halves as two's-complement and breaks ties on the
// unsigned low halves.
func (v I128) Less(o I128) bool {
	if v.Hi != o.Hi {
		return int64(v.Hi) < int64(o.Hi)
	}
	return v.Lo < o.Lo
}

func (I128) UMin() I128 { return I128{} }
func (I128) UMax() I128 { return I128(uint128.Max) }
func (I128) SMin() I128 { return NewI128(1<<63, 0) }
func (I128) SMax() I128 { return NewI128(math.MaxInt64, math.MaxUint64) }
func (I128) One() I128 { return NewI128(0, 1) }
func (I128) Bits() uint { return 128 }

func (I128) FromByte(b byte) I128 { return NewI128(0, uint64(b)) }

func (v I128) Byte() (byte, bool) { return byte(v.Lo), v.Hi == 0 && v.Lo <= math.MaxUint8 }
func (v I128) Low64() uint64 { return v.Lo }

func (v I128) AsSigned() I128 { return v }
func (v I128) AsUnsigned() U128 { return U128(v) }

// String prints the value in signed decimal.
func (v I128) String() string {
	if int64(v.Hi) >= 0 {
		return v.u().String()
	}
	return "-" + U128{}.Sub(U128(v)).String()
}
