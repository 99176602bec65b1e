package exec

import (
	"fmt"
	"math"

	"github.com/pgavlin/wisp/wasm"
)

// InvalidIndex marks an absent index: an uninitialized table element, a missing start function, or a failed lookup.
const InvalidIndex = ^uint32(0)

// V128 is a 128-bit SIMD value. Lo holds lanes 0-7 of an i8x16 view, Hi holds lanes 8-15.
type V128 struct {
	Lo, Hi uint64
}

// Uint32Lanes returns the value as four 32-bit lanes.
func (v V128) Uint32Lanes() [4]uint32 {
	return [4]uint32{uint32(v.Lo), uint32(v.Lo >> 32), uint32(v.Hi), uint32(v.Hi >> 32)}
}

// Value is an untyped stack slot. Floats are held as raw bit patterns.
type Value struct {
	Lo, Hi uint64
}

func I32(v uint32) Value {
	return Value{Lo: uint64(v)}
}

func I64(v uint64) Value {
	return Value{Lo: v}
}

func F32(bits uint32) Value {
	return Value{Lo: uint64(bits)}
}

func F64(bits uint64) Value {
	return Value{Lo: bits}
}

func FromV128(v V128) Value {
	return Value{Lo: v.Lo, Hi: v.Hi}
}

func (v Value) I32() uint32 {
	return uint32(v.Lo)
}

func (v Value) I64() uint64 {
	return v.Lo
}

func (v Value) F32Bits() uint32 {
	return uint32(v.Lo)
}

func (v Value) F64Bits() uint64 {
	return v.Lo
}

func (v Value) V128() V128 {
	return V128{Lo: v.Lo, Hi: v.Hi}
}

// TypedValue pairs a Value with its type at the embedder boundary.
type TypedValue struct {
	Type wasm.ValueType
	Value
}

func TypedI32(v uint32) TypedValue {
	return TypedValue{Type: wasm.ValueTypeI32, Value: I32(v)}
}

func TypedI64(v uint64) TypedValue {
	return TypedValue{Type: wasm.ValueTypeI64, Value: I64(v)}
}

func TypedF32(f float32) TypedValue {
	return TypedValue{Type: wasm.ValueTypeF32, Value: F32(math.Float32bits(f))}
}

func TypedF32Bits(bits uint32) TypedValue {
	return TypedValue{Type: wasm.ValueTypeF32, Value: F32(bits)}
}

func TypedF64(f float64) TypedValue {
	return TypedValue{Type: wasm.ValueTypeF64, Value: F64(math.Float64bits(f))}
}

func TypedF64Bits(bits uint64) TypedValue {
	return TypedValue{Type: wasm.ValueTypeF64, Value: F64(bits)}
}

func TypedV128(v V128) TypedValue {
	return TypedValue{Type: wasm.ValueTypeV128, Value: FromV128(v)}
}

// ZeroValue returns the zero value of the given type.
func ZeroValue(t wasm.ValueType) TypedValue {
	return TypedValue{Type: t}
}

// Interface returns the value as a Go value: int32, int64, float32, float64 or V128.
func (tv TypedValue) Interface() interface{} {
	switch tv.Type {
	case wasm.ValueTypeI32:
		return int32(tv.I32())
	case wasm.ValueTypeI64:
		return int64(tv.I64())
	case wasm.ValueTypeF32:
		return math.Float32frombits(tv.F32Bits())
	case wasm.ValueTypeF64:
		return math.Float64frombits(tv.F64Bits())
	case wasm.ValueTypeV128:
		return tv.V128()
	default:
		return nil
	}
}

func (tv TypedValue) String() string {
	switch tv.Type {
	case wasm.ValueTypeI32:
		return fmt.Sprintf("i32:%d", tv.I32())
	case wasm.ValueTypeI64:
		return fmt.Sprintf("i64:%d", tv.I64())
	case wasm.ValueTypeF32:
		return fmt.Sprintf("f32:%f", math.Float32frombits(tv.F32Bits()))
	case wasm.ValueTypeF64:
		return fmt.Sprintf("f64:%f", math.Float64frombits(tv.F64Bits()))
	case wasm.ValueTypeV128:
		l := tv.V128().Uint32Lanes()
		return fmt.Sprintf("v128:0x%08x 0x%08x 0x%08x 0x%08x", l[0], l[1], l[2], l[3])
	default:
		return fmt.Sprintf("<unknown type %v>", tv.Type)
	}
}
