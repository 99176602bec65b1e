package istream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		name   string
		code   []byte
		reason string
	}{
		{"empty", nil, "0: unexpected end of code"},
		{"truncated opcode", []byte{PrefixSimd}, "0: truncated opcode"},
		{"unknown opcode", []byte{0x06}, "0: unknown opcode 0x6"},
		{"structured opcode", []byte{byte(OpBlock)}, "0: unexpected structured opcode block"},
		{"truncated immediates", []byte{byte(OpI32Const), 1, 2}, "0: truncated immediates for i32.const"},
		{"truncated data", []byte{byte(OpInterpData), 8, 0, 0, 0, 1}, "0: truncated data"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Decode(c.code, 0)
			var decodeErr *DecodeError
			require.ErrorAs(t, err, &decodeErr)
			assert.EqualError(t, err, c.reason)
		})
	}
}

func TestOpcodes(t *testing.T) {
	info, ok := Lookup(OpI32Add)
	require.True(t, ok)
	assert.Equal(t, Info{Name: "i32.add", Immediates: ImmNone, Pops: 2, Pushes: 1}, info)

	info, ok = Lookup(OpCall)
	require.True(t, ok)
	assert.Equal(t, Variable, info.Pops)

	_, ok = Lookup(0x06)
	assert.False(t, ok)
	assert.Equal(t, "<unknown opcode 0x6>", Opcode(0x06).String())

	assert.True(t, OpEnd.IsStructured())
	assert.False(t, OpBr.IsStructured())
	assert.True(t, OpI32AtomicLoad.IsPrefixed())
	assert.Equal(t, 1, OpI32Add.Size())

	for _, op := range Opcodes() {
		buf := appendOpcode(nil, op)
		assert.Len(t, buf, op.Size())
		decoded, next := ReadOpcode(buf, 0)
		assert.Equal(t, op, decoded)
		assert.Equal(t, uint32(op.Size()), next)
	}

	assert.Equal(t, 0, ImmNone.Size())
	assert.Equal(t, 5, ImmDropKeep.Size())
	assert.Equal(t, 16, ImmShuffle.Size())
	assert.Equal(t, 8, ImmMemoryOffset.Size())
}

func TestCheck(t *testing.T) {
	code := brTableCode(t)
	assert.NoError(t, Check(code, 0, uint32(len(code))))

	b := NewBuilder(0)
	b.BranchOffset(OpBr, 1)
	b.BranchOffset(OpBrIf, 100)
	b.Op(OpReturn)
	code, err := b.Bytes()
	require.NoError(t, err)

	err = Check(code, 0, uint32(len(code)))
	errs := multierr.Errors(err)
	require.Len(t, errs, 2)
	assert.Equal(t, &TargetError{Offset: 0, Target: 1}, errs[0])
	assert.Equal(t, &TargetError{Offset: 5, Target: 100}, errs[1])
	assert.EqualError(t, errs[0], "0: branch target 1 is not an instruction boundary")
}

func TestCheckCalls(t *testing.T) {
	b := NewBuilder(0)
	b.BranchOffset(OpCall, 6)
	b.Op(OpReturn)
	b.Op(OpReturn)
	code, err := b.Bytes()
	require.NoError(t, err)

	// Calls may leave the checked range as long as they stay within the code.
	assert.NoError(t, Check(code, 0, 6))

	code[1] = 7
	err = Check(code, 0, 6)
	assert.Equal(t, &TargetError{Offset: 0, Target: 7}, err)
}

func TestCheckRange(t *testing.T) {
	err := Check([]byte{byte(OpNop)}, 0, 2)
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)

	err = Check([]byte{byte(OpNop), 0x06}, 0, 2)
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, uint32(1), decodeErr.Offset)
}

func TestCheckMisplacedBrTable(t *testing.T) {
	b := NewBuilder(0)
	b.OpU32x2(OpBrTable, 0, 9)
	b.Op(OpNop)
	code, err := b.Bytes()
	require.NoError(t, err)

	err = Check(code, 0, uint32(len(code)))
	assert.EqualError(t, err, "0: br_table is not followed by its target table")
}

func TestDisassemble(t *testing.T) {
	code := brTableCode(t)

	text, err := DisassembleString(code, 0, uint32(len(code)))
	require.NoError(t, err)
	assert.Equal(t, "   0| br_table %[-1], $#1, table:$14\n"+
		"   9| data $18\n"+
		"   9|   entry 0: offset: 32 drop: 1 keep: 0\n"+
		"   9|   entry 1: offset: 33 drop: 0 keep: 0\n"+
		"  32| nop\n"+
		"  33| return\n", text)

	b := NewBuilder(0)
	b.I32Const(0xffffffff)
	b.F64Const(0x3ff8000000000000)
	b.Memory(OpI32Load, 0, 4)
	b.DropKeep(2, 1)
	b.Lane(OpI8X16ExtractLaneS, 3)
	code, err = b.Bytes()
	require.NoError(t, err)

	text, err = DisassembleString(code, 0, uint32(len(code)))
	require.NoError(t, err)
	assert.Equal(t, "   0| i32.const 4294967295\n"+
		"   5| f64.const 1.5\n"+
		"  14| i32.load $0:%[-1]+$4\n"+
		"  23| drop_keep $2 $1\n"+
		"  29| i8x16.extract_lane_s : lane 3\n", text)

	_, err = DisassembleString([]byte{0x06}, 0, 1)
	assert.Error(t, err)
}
