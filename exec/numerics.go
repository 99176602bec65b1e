package exec

import (
	"math"
	"math/bits"
)

const (
	f32Max         = 0x7f7fffff
	f32Inf         = 0x7f800000
	f32NegMax      = 0xff7fffff
	f32NegInf      = 0xff800000
	f32NegOne      = 0xbf800000
	f32NegZero     = 0x80000000
	f32QuietNaN    = 0x7fc00000
	f32QuietNegNaN = 0xffc00000
	f32QuietNaNBit = 0x00400000
	f32SigBits     = 23
	f32SigMask     = 0x7fffff
	f32SignMask    = 0x80000000
)

const (
	f64Inf         = 0x7ff0000000000000
	f64NegInf      = 0xfff0000000000000
	f64NegOne      = 0xbff0000000000000
	f64NegZero     = 0x8000000000000000
	f64QuietNaN    = 0x7ff8000000000000
	f64QuietNegNaN = 0xfff8000000000000
	f64QuietNaNBit = 0x0008000000000000
	f64SigBits     = 52
	f64SigMask     = 0xfffffffffffff
	f64SignMask    = 0x8000000000000000
)

func f32(b uint32) float32 { return math.Float32frombits(b) }
func f64(b uint64) float64 { return math.Float64frombits(b) }

func F32IsNaN(b uint32) bool {
	return (b > f32Inf && b < f32NegZero) || b > f32NegInf
}

func F64IsNaN(b uint64) bool {
	return (b > f64Inf && b < f64NegZero) || b > f64NegInf
}

func F32IsZero(b uint32) bool {
	return b == 0 || b == f32NegZero
}

func F64IsZero(b uint64) bool {
	return b == 0 || b == f64NegZero
}

func F32IsCanonicalNaN(b uint32) bool {
	return b == f32QuietNaN || b == f32QuietNegNaN
}

func F64IsCanonicalNaN(b uint64) bool {
	return b == f64QuietNaN || b == f64QuietNegNaN
}

func F32IsArithmeticNaN(b uint32) bool {
	return b&f32QuietNaN == f32QuietNaN
}

func F64IsArithmeticNaN(b uint64) bool {
	return b&f64QuietNaN == f64QuietNaN
}

func f32Quiet(b uint32) uint32 {
	if F32IsNaN(b) {
		return b | f32QuietNaNBit
	}
	return b
}

func f64Quiet(b uint64) uint64 {
	if F64IsNaN(b) {
		return b | f64QuietNaNBit
	}
	return b
}

func b2i(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// Integer arithmetic. Values are carried as unsigned bit patterns.

func I32DivS(a, b uint32) (uint32, Result) {
	if b == 0 {
		return 0, TrapIntegerDivideByZero
	}
	if int32(a) == math.MinInt32 && int32(b) == -1 {
		return 0, TrapIntegerOverflow
	}
	return uint32(int32(a) / int32(b)), Ok
}

func I32DivU(a, b uint32) (uint32, Result) {
	if b == 0 {
		return 0, TrapIntegerDivideByZero
	}
	return a / b, Ok
}

func I32RemS(a, b uint32) (uint32, Result) {
	if b == 0 {
		return 0, TrapIntegerDivideByZero
	}
	if int32(b) == -1 {
		return 0, Ok
	}
	return uint32(int32(a) % int32(b)), Ok
}

func I32RemU(a, b uint32) (uint32, Result) {
	if b == 0 {
		return 0, TrapIntegerDivideByZero
	}
	return a % b, Ok
}

func I64DivS(a, b uint64) (uint64, Result) {
	if b == 0 {
		return 0, TrapIntegerDivideByZero
	}
	if int64(a) == math.MinInt64 && int64(b) == -1 {
		return 0, TrapIntegerOverflow
	}
	return uint64(int64(a) / int64(b)), Ok
}

func I64DivU(a, b uint64) (uint64, Result) {
	if b == 0 {
		return 0, TrapIntegerDivideByZero
	}
	return a / b, Ok
}

func I64RemS(a, b uint64) (uint64, Result) {
	if b == 0 {
		return 0, TrapIntegerDivideByZero
	}
	if int64(b) == -1 {
		return 0, Ok
	}
	return uint64(int64(a) % int64(b)), Ok
}

func I64RemU(a, b uint64) (uint64, Result) {
	if b == 0 {
		return 0, TrapIntegerDivideByZero
	}
	return a % b, Ok
}

func I32Shl(a, b uint32) uint32  { return a << (b & 31) }
func I32ShrS(a, b uint32) uint32 { return uint32(int32(a) >> (b & 31)) }
func I32ShrU(a, b uint32) uint32 { return a >> (b & 31) }
func I32Rotl(a, b uint32) uint32 { return bits.RotateLeft32(a, int(b&31)) }
func I32Rotr(a, b uint32) uint32 { return bits.RotateLeft32(a, -int(b&31)) }

func I64Shl(a, b uint64) uint64  { return a << (b & 63) }
func I64ShrS(a, b uint64) uint64 { return uint64(int64(a) >> (b & 63)) }
func I64ShrU(a, b uint64) uint64 { return a >> (b & 63) }
func I64Rotl(a, b uint64) uint64 { return bits.RotateLeft64(a, int(b&63)) }
func I64Rotr(a, b uint64) uint64 { return bits.RotateLeft64(a, -int(b&63)) }

func I32Extend8S(a uint32) uint32  { return uint32(int32(int8(a))) }
func I32Extend16S(a uint32) uint32 { return uint32(int32(int16(a))) }
func I64Extend8S(a uint64) uint64  { return uint64(int64(int8(a))) }
func I64Extend16S(a uint64) uint64 { return uint64(int64(int16(a))) }
func I64Extend32S(a uint64) uint64 { return uint64(int64(int32(a))) }

// Float arithmetic. Values are carried as raw bit patterns; NaN results always have the quiet bit set.

func F32Add(a, b uint32) uint32 { return f32Quiet(math.Float32bits(f32(a) + f32(b))) }
func F32Sub(a, b uint32) uint32 { return f32Quiet(math.Float32bits(f32(a) - f32(b))) }
func F32Mul(a, b uint32) uint32 { return f32Quiet(math.Float32bits(f32(a) * f32(b))) }

func F64Add(a, b uint64) uint64 { return f64Quiet(math.Float64bits(f64(a) + f64(b))) }
func F64Sub(a, b uint64) uint64 { return f64Quiet(math.Float64bits(f64(a) - f64(b))) }
func F64Mul(a, b uint64) uint64 { return f64Quiet(math.Float64bits(f64(a) * f64(b))) }

func F32Div(a, b uint32) uint32 {
	if F32IsZero(b) {
		switch {
		case F32IsNaN(a):
			return a | f32QuietNaNBit
		case F32IsZero(a):
			return f32QuietNaN
		default:
			return ((a ^ b) & f32SignMask) | f32Inf
		}
	}
	return f32Quiet(math.Float32bits(f32(a) / f32(b)))
}

func F64Div(a, b uint64) uint64 {
	if F64IsZero(b) {
		switch {
		case F64IsNaN(a):
			return a | f64QuietNaNBit
		case F64IsZero(a):
			return f64QuietNaN
		default:
			return ((a ^ b) & f64SignMask) | f64Inf
		}
	}
	return f64Quiet(math.Float64bits(f64(a) / f64(b)))
}

func F32Min(a, b uint32) uint32 {
	switch {
	case F32IsNaN(a):
		return a | f32QuietNaNBit
	case F32IsNaN(b):
		return b | f32QuietNaNBit
	case F32IsZero(a) && F32IsZero(b):
		// The sign bit makes -0.0 the larger pattern.
		if a > b {
			return a
		}
		return b
	case f32(a) < f32(b):
		return a
	default:
		return b
	}
}

func F32Max(a, b uint32) uint32 {
	switch {
	case F32IsNaN(a):
		return a | f32QuietNaNBit
	case F32IsNaN(b):
		return b | f32QuietNaNBit
	case F32IsZero(a) && F32IsZero(b):
		if a < b {
			return a
		}
		return b
	case f32(a) > f32(b):
		return a
	default:
		return b
	}
}

func F64Min(a, b uint64) uint64 {
	switch {
	case F64IsNaN(a):
		return a | f64QuietNaNBit
	case F64IsNaN(b):
		return b | f64QuietNaNBit
	case F64IsZero(a) && F64IsZero(b):
		if a > b {
			return a
		}
		return b
	case f64(a) < f64(b):
		return a
	default:
		return b
	}
}

func F64Max(a, b uint64) uint64 {
	switch {
	case F64IsNaN(a):
		return a | f64QuietNaNBit
	case F64IsNaN(b):
		return b | f64QuietNaNBit
	case F64IsZero(a) && F64IsZero(b):
		if a < b {
			return a
		}
		return b
	case f64(a) > f64(b):
		return a
	default:
		return b
	}
}

func F32Copysign(a, b uint32) uint32 { return (a &^ f32SignMask) | (b & f32SignMask) }
func F64Copysign(a, b uint64) uint64 { return (a &^ f64SignMask) | (b & f64SignMask) }

func F32Abs(a uint32) uint32 { return a &^ f32SignMask }
func F32Neg(a uint32) uint32 { return a ^ f32SignMask }
func F64Abs(a uint64) uint64 { return a &^ f64SignMask }
func F64Neg(a uint64) uint64 { return a ^ f64SignMask }

func f32Round(a uint32, round func(float64) float64) uint32 {
	return f32Quiet(math.Float32bits(float32(round(float64(f32(a))))))
}

func f64Round(a uint64, round func(float64) float64) uint64 {
	return f64Quiet(math.Float64bits(round(f64(a))))
}

func F32Ceil(a uint32) uint32    { return f32Round(a, math.Ceil) }
func F32Floor(a uint32) uint32   { return f32Round(a, math.Floor) }
func F32Trunc(a uint32) uint32   { return f32Round(a, math.Trunc) }
func F32Nearest(a uint32) uint32 { return f32Round(a, math.RoundToEven) }
func F32Sqrt(a uint32) uint32    { return f32Round(a, math.Sqrt) }

func F64Ceil(a uint64) uint64    { return f64Round(a, math.Ceil) }
func F64Floor(a uint64) uint64   { return f64Round(a, math.Floor) }
func F64Trunc(a uint64) uint64   { return f64Round(a, math.Trunc) }
func F64Nearest(a uint64) uint64 { return f64Round(a, math.RoundToEven) }
func F64Sqrt(a uint64) uint64    { return f64Round(a, math.Sqrt) }

func F32Eq(a, b uint32) uint32 { return b2i(f32(a) == f32(b)) }
func F32Ne(a, b uint32) uint32 { return b2i(f32(a) != f32(b)) }
func F32Lt(a, b uint32) uint32 { return b2i(f32(a) < f32(b)) }
func F32Le(a, b uint32) uint32 { return b2i(f32(a) <= f32(b)) }
func F32Gt(a, b uint32) uint32 { return b2i(f32(a) > f32(b)) }
func F32Ge(a, b uint32) uint32 { return b2i(f32(a) >= f32(b)) }

func F64Eq(a, b uint64) uint32 { return b2i(f64(a) == f64(b)) }
func F64Ne(a, b uint64) uint32 { return b2i(f64(a) != f64(b)) }
func F64Lt(a, b uint64) uint32 { return b2i(f64(a) < f64(b)) }
func F64Le(a, b uint64) uint32 { return b2i(f64(a) <= f64(b)) }
func F64Gt(a, b uint64) uint32 { return b2i(f64(a) > f64(b)) }
func F64Ge(a, b uint64) uint32 { return b2i(f64(a) >= f64(b)) }

// Conversion ranges are expressed over IEEE bit patterns so that the boundaries are exact.

func i32F32InRange(b uint32) bool {
	return b < 0x4f000000 || (b >= f32NegZero && b <= 0xcf000000)
}

func i64F32InRange(b uint32) bool {
	return b < 0x5f000000 || (b >= f32NegZero && b <= 0xdf000000)
}

func u32F32InRange(b uint32) bool {
	return b < 0x4f800000 || (b >= f32NegZero && b < f32NegOne)
}

func u64F32InRange(b uint32) bool {
	return b < 0x5f800000 || (b >= f32NegZero && b < f32NegOne)
}

func i32F64InRange(b uint64) bool {
	return b <= 0x41dfffffffc00000 || (b >= f64NegZero && b <= 0xc1e0000000000000)
}

func i64F64InRange(b uint64) bool {
	return b < 0x43e0000000000000 || (b >= f64NegZero && b <= 0xc3e0000000000000)
}

func u32F64InRange(b uint64) bool {
	return b <= 0x41efffffffe00000 || (b >= f64NegZero && b < f64NegOne)
}

func u64F64InRange(b uint64) bool {
	return b < 0x43f0000000000000 || (b >= f64NegZero && b < f64NegOne)
}

func f32F64InRange(b uint64) bool {
	return b <= 0x47efffffe0000000 || (b >= f64NegZero && b <= 0xc7efffffe0000000)
}

// Unsigned conversions of values in (-1, -0] truncate to zero.

func f32ToU32(b uint32) uint32 {
	if b&f32SignMask != 0 {
		return 0
	}
	return uint32(f32(b))
}

func f32ToU64(b uint32) uint64 {
	if b&f32SignMask != 0 {
		return 0
	}
	return uint64(f32(b))
}

func f64ToU32(b uint64) uint32 {
	if b&f64SignMask != 0 {
		return 0
	}
	return uint32(f64(b))
}

func f64ToU64(b uint64) uint64 {
	if b&f64SignMask != 0 {
		return 0
	}
	return uint64(f64(b))
}

func I32TruncF32S(b uint32) (uint32, Result) {
	switch {
	case F32IsNaN(b):
		return 0, TrapInvalidConversionToInteger
	case !i32F32InRange(b):
		return 0, TrapIntegerOverflow
	}
	return uint32(int32(f32(b))), Ok
}

func I32TruncF32U(b uint32) (uint32, Result) {
	switch {
	case F32IsNaN(b):
		return 0, TrapInvalidConversionToInteger
	case !u32F32InRange(b):
		return 0, TrapIntegerOverflow
	}
	return f32ToU32(b), Ok
}

func I32TruncF64S(b uint64) (uint32, Result) {
	switch {
	case F64IsNaN(b):
		return 0, TrapInvalidConversionToInteger
	case !i32F64InRange(b):
		return 0, TrapIntegerOverflow
	}
	return uint32(int32(f64(b))), Ok
}

func I32TruncF64U(b uint64) (uint32, Result) {
	switch {
	case F64IsNaN(b):
		return 0, TrapInvalidConversionToInteger
	case !u32F64InRange(b):
		return 0, TrapIntegerOverflow
	}
	return f64ToU32(b), Ok
}

func I64TruncF32S(b uint32) (uint64, Result) {
	switch {
	case F32IsNaN(b):
		return 0, TrapInvalidConversionToInteger
	case !i64F32InRange(b):
		return 0, TrapIntegerOverflow
	}
	return uint64(int64(f32(b))), Ok
}

func I64TruncF32U(b uint32) (uint64, Result) {
	switch {
	case F32IsNaN(b):
		return 0, TrapInvalidConversionToInteger
	case !u64F32InRange(b):
		return 0, TrapIntegerOverflow
	}
	return f32ToU64(b), Ok
}

func I64TruncF64S(b uint64) (uint64, Result) {
	switch {
	case F64IsNaN(b):
		return 0, TrapInvalidConversionToInteger
	case !i64F64InRange(b):
		return 0, TrapIntegerOverflow
	}
	return uint64(int64(f64(b))), Ok
}

func I64TruncF64U(b uint64) (uint64, Result) {
	switch {
	case F64IsNaN(b):
		return 0, TrapInvalidConversionToInteger
	case !u64F64InRange(b):
		return 0, TrapIntegerOverflow
	}
	return f64ToU64(b), Ok
}

func I32TruncSatF32S(b uint32) uint32 {
	switch {
	case F32IsNaN(b):
		return 0
	case !i32F32InRange(b):
		if b&f32SignMask != 0 {
			return 1 << 31
		}
		return math.MaxInt32
	}
	return uint32(int32(f32(b)))
}

func I32TruncSatF32U(b uint32) uint32 {
	switch {
	case F32IsNaN(b):
		return 0
	case !u32F32InRange(b):
		if b&f32SignMask != 0 {
			return 0
		}
		return math.MaxUint32
	}
	return f32ToU32(b)
}

func I32TruncSatF64S(b uint64) uint32 {
	switch {
	case F64IsNaN(b):
		return 0
	case !i32F64InRange(b):
		if b&f64SignMask != 0 {
			return 1 << 31
		}
		return math.MaxInt32
	}
	return uint32(int32(f64(b)))
}

func I32TruncSatF64U(b uint64) uint32 {
	switch {
	case F64IsNaN(b):
		return 0
	case !u32F64InRange(b):
		if b&f64SignMask != 0 {
			return 0
		}
		return math.MaxUint32
	}
	return f64ToU32(b)
}

func I64TruncSatF32S(b uint32) uint64 {
	switch {
	case F32IsNaN(b):
		return 0
	case !i64F32InRange(b):
		if b&f32SignMask != 0 {
			return 1 << 63
		}
		return math.MaxInt64
	}
	return uint64(int64(f32(b)))
}

func I64TruncSatF32U(b uint32) uint64 {
	switch {
	case F32IsNaN(b):
		return 0
	case !u64F32InRange(b):
		if b&f32SignMask != 0 {
			return 0
		}
		return math.MaxUint64
	}
	return f32ToU64(b)
}

func I64TruncSatF64S(b uint64) uint64 {
	switch {
	case F64IsNaN(b):
		return 0
	case !i64F64InRange(b):
		if b&f64SignMask != 0 {
			return 1 << 63
		}
		return math.MaxInt64
	}
	return uint64(int64(f64(b)))
}

func I64TruncSatF64U(b uint64) uint64 {
	switch {
	case F64IsNaN(b):
		return 0
	case !u64F64InRange(b):
		if b&f64SignMask != 0 {
			return 0
		}
		return math.MaxUint64
	}
	return f64ToU64(b)
}

func F32ConvertI32S(a uint32) uint32 { return math.Float32bits(float32(int32(a))) }
func F32ConvertI32U(a uint32) uint32 { return math.Float32bits(float32(a)) }
func F32ConvertI64S(a uint64) uint32 { return math.Float32bits(float32(int64(a))) }
func F32ConvertI64U(a uint64) uint32 { return math.Float32bits(float32(a)) }
func F64ConvertI32S(a uint32) uint64 { return math.Float64bits(float64(int32(a))) }
func F64ConvertI32U(a uint32) uint64 { return math.Float64bits(float64(a)) }
func F64ConvertI64S(a uint64) uint64 { return math.Float64bits(float64(int64(a))) }
func F64ConvertI64U(a uint64) uint64 { return math.Float64bits(float64(a)) }

// F32DemoteF64 narrows an f64. Values just above the largest finite f32 round to it rather than to infinity, and
// NaNs keep the high bits of their payload.
func F32DemoteF64(b uint64) uint32 {
	switch {
	case f32F64InRange(b):
		return math.Float32bits(float32(f64(b)))
	case b > 0x47efffffe0000000 && b < 0x47effffff0000000:
		return f32Max
	case b > 0xc7efffffe0000000 && b < 0xc7effffff0000000:
		return f32NegMax
	}

	sign := uint32(b>>32) & f32SignMask
	tag := uint32(0)
	if F64IsNaN(b) {
		tag = f32QuietNaNBit | uint32(b>>(f64SigBits-f32SigBits))&f32SigMask
	}
	return sign | f32Inf | tag
}

func F64PromoteF32(b uint32) uint64 {
	return f64Quiet(math.Float64bits(float64(f32(b))))
}
