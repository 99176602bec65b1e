package exec

import (
	"math"
	"testing"

	"github.com/pgavlin/wisp/wasm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGrow(t *testing.T) {
	m := NewMemory(wasm.LimitsWithMax(1, 3))
	assert.Equal(t, uint32(1), m.Size())
	assert.Equal(t, uint64(PageSize), m.Len())

	m.PutUint32At(0xdeadbeef, 16)

	old, err := m.Grow(2)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), old)
	assert.Equal(t, uint32(3), m.Size())
	assert.Equal(t, uint64(3*PageSize), m.Len())
	assert.Equal(t, uint32(3), m.Limits().Initial)
	assert.Equal(t, uint32(0xdeadbeef), m.Uint32At(16))

	old, err = m.Grow(1)
	assert.Equal(t, ErrLimitExceeded, err)
	assert.Equal(t, uint32(3), old)
	assert.Equal(t, uint32(3), m.Size())

	old, err = m.Grow(0)
	require.NoError(t, err)
	assert.Equal(t, uint32(3), old)
}

func TestMemoryGrowWithoutMaximum(t *testing.T) {
	m := NewMemory(wasm.Limits(0))
	assert.Equal(t, uint64(0), m.Len())

	_, err := m.Grow(MaxPages)
	assert.Equal(t, ErrLimitExceeded, err)

	old, err := m.Grow(1)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), old)
	assert.Equal(t, uint64(PageSize), m.Len())
	assert.Equal(t, uint8(0), m.Uint8At(PageSize-1))
}

func TestMemoryBounds(t *testing.T) {
	m := NewMemory(wasm.Limits(1))

	assert.True(t, m.InBounds(0, 8))
	assert.True(t, m.InBounds(PageSize-8, 8))
	assert.False(t, m.InBounds(PageSize-7, 8))
	assert.False(t, m.InBounds(math.MaxUint32, 4))
	assert.True(t, m.InBounds(PageSize, 0))
}

func TestMemoryAccessors(t *testing.T) {
	m := NewMemory(wasm.Limits(1))

	m.PutUint8At(0xff, 0)
	m.PutUint16At(0x1234, 2)
	m.PutUint64At(0x0102030405060708, 8)
	m.PutV128At(V128{Lo: 1, Hi: 2}, 32)
	m.PutUint32At(math.Float32bits(1.5), 48)
	m.PutUint64At(math.Float64bits(-2.25), 56)

	assert.Equal(t, uint8(0xff), m.Uint8At(0))
	assert.Equal(t, uint16(0x1234), m.Uint16At(2))
	assert.Equal(t, []byte{0x34, 0x12}, m.Bytes()[2:4])
	assert.Equal(t, uint32(0x05060708), m.Uint32At(8))
	assert.Equal(t, uint64(0x0102030405060708), m.Uint64At(8))
	assert.Equal(t, V128{Lo: 1, Hi: 2}, m.V128At(32))
	assert.Equal(t, uint64(2), m.Uint64At(40))
	assert.Equal(t, float32(1.5), m.Float32At(48))
	assert.Equal(t, -2.25, m.Float64At(56))
}

func TestTable(t *testing.T) {
	table := NewTable(wasm.LimitsWithMax(3, 5))

	assert.Equal(t, uint32(3), table.Size())
	assert.Equal(t, uint32(5), table.Limits().Maximum)
	for _, e := range table.Entries() {
		assert.Equal(t, InvalidIndex, e)
	}

	table.Entries()[1] = 7
	assert.Equal(t, []uint32{InvalidIndex, 7, InvalidIndex}, table.Entries())
}

func TestTypedValues(t *testing.T) {
	cases := []struct {
		value TypedValue
		str   string
		iface interface{}
		vtype wasm.ValueType
	}{
		{TypedI32(0xffffffff), "i32:4294967295", int32(-1), wasm.ValueTypeI32},
		{TypedI64(7), "i64:7", int64(7), wasm.ValueTypeI64},
		{TypedF32(1.5), "f32:1.500000", float32(1.5), wasm.ValueTypeF32},
		{TypedF64Bits(math.Float64bits(-0.25)), "f64:-0.250000", -0.25, wasm.ValueTypeF64},
		{TypedV128(V128{Lo: 1, Hi: 2}), "v128:0x00000001 0x00000000 0x00000002 0x00000000", V128{Lo: 1, Hi: 2}, wasm.ValueTypeV128},
	}
	for _, c := range cases {
		t.Run(c.str, func(t *testing.T) {
			assert.Equal(t, c.str, c.value.String())
			assert.Equal(t, c.iface, c.value.Interface())
			assert.Equal(t, c.vtype, c.value.Type)
		})
	}

	assert.Equal(t, TypedValue{Type: wasm.ValueTypeF64}, ZeroValue(wasm.ValueTypeF64))
	assert.Equal(t, [4]uint32{1, 0, 2, 0}, V128{Lo: 1, Hi: 2}.Uint32Lanes())
}

func TestGlobal(t *testing.T) {
	g := NewGlobal(TypedI64(1), true)
	assert.Equal(t, InvalidIndex, g.ImportIndex)
	assert.Equal(t, wasm.GlobalVar{Type: wasm.ValueTypeI64, Mutable: true}, g.Type())

	g.Set(I64(42))
	assert.Equal(t, uint64(42), g.Get().I64())
	assert.Equal(t, int64(42), g.GetValue())
}

func TestResult(t *testing.T) {
	assert.Equal(t, "integer divide by zero", TrapIntegerDivideByZero.Error())
	assert.True(t, TrapCallStackExhausted.IsTrap())
	assert.False(t, Ok.IsTrap())
	assert.False(t, Returned.IsTrap())
	assert.False(t, UnknownExport.IsTrap())

	var err error = TrapUnreachable
	assert.EqualError(t, err, "unreachable executed")
}
