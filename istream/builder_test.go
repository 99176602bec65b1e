package istream

import (
	"encoding/binary"
	"testing"

	"github.com/pgavlin/wisp/exec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderLabels(t *testing.T) {
	b := NewBuilder(100)
	assert.Equal(t, uint32(100), b.Offset())

	forward := b.NewLabel()
	b.Branch(OpBr, forward)
	b.I32Const(7)
	assert.False(t, b.IsBound(forward))
	b.Bind(forward)
	assert.True(t, b.IsBound(forward))
	b.Op(OpReturn)

	code, err := b.Bytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{
		byte(OpBr), 110, 0, 0, 0,
		byte(OpI32Const), 7, 0, 0, 0,
		byte(OpReturn),
	}, code)
	assert.Equal(t, uint32(111), b.Offset())
}

func TestBuilderBackwardBranch(t *testing.T) {
	b := NewBuilder(0)
	loop := b.NewLabel()
	b.Bind(loop)
	b.Op(OpNop)
	b.Branch(OpInterpBrUnless, loop)

	code, err := b.Bytes()
	require.NoError(t, err)
	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(code[2:]))
	assert.Equal(t, byte(OpInterpBrUnless), code[1])
}

func TestBuilderUnboundLabel(t *testing.T) {
	b := NewBuilder(0)
	l := b.NewLabel()
	b.Branch(OpBrIf, l)

	_, err := b.Bytes()
	var unbound *UnboundLabelError
	require.ErrorAs(t, err, &unbound)
	assert.Equal(t, l, unbound.Label)
	assert.EqualError(t, err, "label 0 referenced but never bound")
}

func TestBuilderBindTwice(t *testing.T) {
	b := NewBuilder(0)
	l := b.NewLabel()
	b.Bind(l)
	assert.Panics(t, func() { b.Bind(l) })
}

func TestBuilderImmediates(t *testing.T) {
	b := NewBuilder(0)
	b.I64Const(0x0102030405060708)
	b.F32Const(0x3fc00000)
	b.F64Const(0x3ff8000000000000)
	b.V128Const(exec.V128{Lo: 1, Hi: 2})
	b.Memory(OpI32Load, 0, 16)
	b.DropKeep(3, 1)
	b.Lane(OpI8X16ExtractLaneS, 5)
	b.Shuffle([16]byte{0, 16, 1, 17})
	b.Data([]byte("abc"))
	b.Op(OpI32TruncSatF32S)

	code, err := b.Bytes()
	require.NoError(t, err)

	var ops []Instruction
	for pc := uint32(0); pc < uint32(len(code)); {
		ins, err := Decode(code, pc)
		require.NoError(t, err)
		ops = append(ops, ins)
		pc = ins.Next
	}
	require.Len(t, ops, 10)

	assert.Equal(t, uint64(0x0102030405060708), ops[0].Imm64)
	assert.Equal(t, uint32(0x3fc00000), ops[1].Imm0)
	assert.Equal(t, uint64(0x3ff8000000000000), ops[2].Imm64)
	assert.Equal(t, exec.V128{Lo: 1, Hi: 2}, ops[3].V128)
	assert.Equal(t, OpI32Load, ops[4].Opcode)
	assert.Equal(t, uint32(16), ops[4].Imm1)
	assert.Equal(t, uint32(3), ops[5].Imm0)
	assert.Equal(t, uint8(1), ops[5].Imm8)
	assert.Equal(t, uint8(5), ops[6].Imm8)
	assert.Equal(t, uint64(0x11011000), ops[7].V128.Lo)
	assert.Equal(t, []byte("abc"), ops[8].Data)
	assert.Equal(t, OpI32TruncSatF32S, ops[9].Opcode)
	assert.Equal(t, 2, ops[9].Opcode.Size())
}

func TestBuilderBrTable(t *testing.T) {
	code := brTableCode(t)
	require.Len(t, code, 34)

	ins, err := Decode(code, 0)
	require.NoError(t, err)
	assert.Equal(t, OpBrTable, ins.Opcode)
	assert.Equal(t, uint32(1), ins.Imm0)
	assert.Equal(t, uint32(14), ins.Imm1)
	assert.Equal(t, uint32(9), ins.Next)

	data, err := Decode(code, ins.Next)
	require.NoError(t, err)
	assert.Equal(t, OpInterpData, data.Opcode)
	assert.Len(t, data.Data, 2*BrTableEntrySize)
	assert.Equal(t, uint32(32), data.Next)

	entries, err := BrTableEntries(code, ins)
	require.NoError(t, err)
	assert.Equal(t, []BrTableEntry{{Offset: 32, Drop: 1}, {Offset: 33}}, entries)
}

// brTableCode assembles a one-target br_table whose target is a nop and whose default is a return.
func brTableCode(t *testing.T) []byte {
	b := NewBuilder(0)
	target, def := b.NewLabel(), b.NewLabel()
	b.BrTable([]BrTableTarget{{Label: target, Drop: 1}}, BrTableTarget{Label: def})
	b.Bind(target)
	b.Op(OpNop)
	b.Bind(def)
	b.Op(OpReturn)

	code, err := b.Bytes()
	require.NoError(t, err)
	return code
}
