package interpreter

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgavlin/wisp/exec"
	"github.com/pgavlin/wisp/istream"
	"github.com/pgavlin/wisp/wasm"
)

var (
	i32  = wasm.ValueTypeI32
	i64  = wasm.ValueTypeI64
	f32  = wasm.ValueTypeF32
	f64  = wasm.ValueTypeF64
	v128 = wasm.ValueTypeV128
)

func types(ts ...wasm.ValueType) []wasm.ValueType {
	return ts
}

// defineFunc emits a function body into env's istream and appends a defined function for it.
func defineFunc(t *testing.T, env *Environment, sig wasm.FunctionSig, emit func(b *istream.Builder)) uint32 {
	b := istream.NewBuilder(env.IstreamSize())
	offset := b.Offset()
	emit(b)
	code, err := b.Bytes()
	require.NoError(t, err)
	env.AppendIstream(code)

	_, sigIndex := env.EmplaceBackFuncSignature(sig)
	return env.EmplaceBackFunc(&DefinedFunc{SigIndex: sigIndex, Offset: offset, ParamAndLocalTypes: sig.ParamTypes})
}

func testFunc(t *testing.T, sig wasm.FunctionSig, args []exec.TypedValue, emit func(b *istream.Builder)) (ExecResult, *Executor) {
	env := NewEnvironment()
	index := defineFunc(t, env, sig, emit)
	e := NewExecutor(env, &ExecutorOptions{Thread: ThreadOptions{ValueStackSize: 64, CallStackSize: 16}})
	return e.RunFunction(index, args), e
}

// ret emits the epilogue of a function with the given number of parameters and locals and at most one result.
func ret(b *istream.Builder, locals uint32, results uint8) {
	b.DropKeep(locals, results)
	b.Op(istream.OpReturn)
}

func TestDivideByZeroTraps(t *testing.T) {
	result, e := testFunc(t, wasm.Sig(nil, types(i32)), nil, func(b *istream.Builder) {
		b.I32Const(1)
		b.I32Const(0)
		b.Op(istream.OpI32DivS)
		ret(b, 0, 1)
	})
	assert.Equal(t, exec.TrapIntegerDivideByZero, result.Result)
	assert.Empty(t, result.Values)
	assert.Equal(t, uint32(0), e.Thread().NumValues())
	assert.EqualError(t, result.Err(), "integer divide by zero")
}

func TestAddParams(t *testing.T) {
	result, _ := testFunc(t, wasm.Sig(types(i32, i32), types(i32)), []exec.TypedValue{exec.TypedI32(2), exec.TypedI32(3)},
		func(b *istream.Builder) {
			b.OpU32(istream.OpLocalGet, 2)
			b.OpU32(istream.OpLocalGet, 2)
			b.Op(istream.OpI32Add)
			ret(b, 2, 1)
		})
	require.NoError(t, result.Err())
	assert.Equal(t, []exec.TypedValue{exec.TypedI32(5)}, result.Values)
}

func TestLocals(t *testing.T) {
	// (param i32) (local i32): local1 = param0 * 3; return (param0 = 1) + local1
	result, _ := testFunc(t, wasm.Sig(types(i32), types(i32)), []exec.TypedValue{exec.TypedI32(7)},
		func(b *istream.Builder) {
			b.OpU32(istream.OpInterpAlloca, 1)
			b.OpU32(istream.OpLocalGet, 2)
			b.I32Const(3)
			b.Op(istream.OpI32Mul)
			b.OpU32(istream.OpLocalSet, 1)
			b.I32Const(1)
			b.OpU32(istream.OpLocalTee, 2)
			b.OpU32(istream.OpLocalGet, 2)
			b.Op(istream.OpI32Add)
			ret(b, 2, 1)
		})
	require.NoError(t, result.Err())
	assert.Equal(t, []exec.TypedValue{exec.TypedI32(22)}, result.Values)
}

func TestSelect(t *testing.T) {
	for _, cond := range []uint32{0, 1} {
		result, _ := testFunc(t, wasm.Sig(nil, types(i64)), nil, func(b *istream.Builder) {
			b.I64Const(10)
			b.I64Const(20)
			b.I32Const(cond)
			b.Op(istream.OpSelect)
			ret(b, 0, 1)
		})
		require.NoError(t, result.Err())
		expected := uint64(20)
		if cond != 0 {
			expected = 10
		}
		assert.Equal(t, []exec.TypedValue{exec.TypedI64(expected)}, result.Values)
	}
}

func TestBrTable(t *testing.T) {
	cases := map[uint32]uint32{0: 100, 1: 101, 2: 102, 3: 102, math.MaxUint32: 102}
	for key, expected := range cases {
		result, _ := testFunc(t, wasm.Sig(types(i32), types(i32)), []exec.TypedValue{exec.TypedI32(key)},
			func(b *istream.Builder) {
				l0, l1, def := b.NewLabel(), b.NewLabel(), b.NewLabel()
				b.OpU32(istream.OpLocalGet, 1)
				b.BrTable([]istream.BrTableTarget{{Label: l0}, {Label: l1}}, istream.BrTableTarget{Label: def})
				for i, l := range []istream.Label{l0, l1, def} {
					b.Bind(l)
					b.I32Const(100 + uint32(i))
					ret(b, 1, 1)
				}
			})
		require.NoError(t, result.Err())
		assert.Equal(t, []exec.TypedValue{exec.TypedI32(expected)}, result.Values, "key %d", key)
	}
}

func TestBranches(t *testing.T) {
	// sum = 0; i = n; loop { sum += i; i--; br_if loop (i != 0) }; return sum
	result, _ := testFunc(t, wasm.Sig(types(i32), types(i32)), []exec.TypedValue{exec.TypedI32(10)},
		func(b *istream.Builder) {
			b.OpU32(istream.OpInterpAlloca, 1)
			loop := b.NewLabel()
			b.Bind(loop)
			b.OpU32(istream.OpLocalGet, 1)
			b.OpU32(istream.OpLocalGet, 3)
			b.Op(istream.OpI32Add)
			b.OpU32(istream.OpLocalSet, 1)
			b.OpU32(istream.OpLocalGet, 2)
			b.I32Const(1)
			b.Op(istream.OpI32Sub)
			b.OpU32(istream.OpLocalTee, 3)
			b.Branch(istream.OpBrIf, loop)

			done := b.NewLabel()
			b.I32Const(0)
			b.Branch(istream.OpInterpBrUnless, done)
			b.Op(istream.OpUnreachable)
			b.Bind(done)
			b.OpU32(istream.OpLocalGet, 1)
			ret(b, 2, 1)
		})
	require.NoError(t, result.Err())
	assert.Equal(t, []exec.TypedValue{exec.TypedI32(55)}, result.Values)
}

func TestNumericTraps(t *testing.T) {
	cases := []struct {
		name   string
		emit   func(b *istream.Builder)
		result exec.Result
	}{
		{"i32.div_s overflow", func(b *istream.Builder) {
			b.I32Const(math.MaxInt32 + 1)
			b.I32Const(math.MaxUint32)
			b.Op(istream.OpI32DivS)
		}, exec.TrapIntegerOverflow},
		{"i64.rem_u zero", func(b *istream.Builder) {
			b.I64Const(5)
			b.I64Const(0)
			b.Op(istream.OpI64RemU)
		}, exec.TrapIntegerDivideByZero},
		{"i32.trunc_f32_s nan", func(b *istream.Builder) {
			b.F32Const(0x7fc00000)
			b.Op(istream.OpI32TruncF32S)
		}, exec.TrapInvalidConversionToInteger},
		{"i64.trunc_f64_u negative", func(b *istream.Builder) {
			b.F64Const(math.Float64bits(-1))
			b.Op(istream.OpI64TruncF64U)
		}, exec.TrapIntegerOverflow},
		{"unreachable", func(b *istream.Builder) {
			b.Op(istream.OpUnreachable)
		}, exec.TrapUnreachable},
		{"wait", func(b *istream.Builder) {
			b.I32Const(0)
			b.I32Const(0)
			b.I64Const(0)
			b.Memory(istream.OpI32AtomicWait, 0, 0)
		}, exec.TrapUnreachable},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			result, e := testFunc(t, wasm.Sig(nil, nil), nil, func(b *istream.Builder) {
				c.emit(b)
				ret(b, 0, 0)
			})
			assert.Equal(t, c.result, result.Result)
			assert.Equal(t, uint32(0), e.Thread().NumValues())
		})
	}
}

func TestRemainderOverflowIsZero(t *testing.T) {
	result, _ := testFunc(t, wasm.Sig(nil, types(i32)), nil, func(b *istream.Builder) {
		b.I32Const(math.MaxInt32 + 1)
		b.I32Const(math.MaxUint32)
		b.Op(istream.OpI32RemS)
		ret(b, 0, 1)
	})
	require.NoError(t, result.Err())
	assert.Equal(t, []exec.TypedValue{exec.TypedI32(0)}, result.Values)
}

func TestStackExhaustion(t *testing.T) {
	t.Run("call", func(t *testing.T) {
		result, _ := testFunc(t, wasm.Sig(nil, nil), nil, func(b *istream.Builder) {
			b.BranchOffset(istream.OpCall, b.Offset())
		})
		assert.Equal(t, exec.TrapCallStackExhausted, result.Result)
	})
	t.Run("value", func(t *testing.T) {
		result, _ := testFunc(t, wasm.Sig(nil, nil), nil, func(b *istream.Builder) {
			start := b.Offset()
			b.I32Const(1)
			b.BranchOffset(istream.OpBr, start)
		})
		assert.Equal(t, exec.TrapValueStackExhausted, result.Result)
	})
	t.Run("alloca", func(t *testing.T) {
		result, _ := testFunc(t, wasm.Sig(nil, nil), nil, func(b *istream.Builder) {
			b.OpU32(istream.OpInterpAlloca, 65)
			ret(b, 65, 0)
		})
		assert.Equal(t, exec.TrapValueStackExhausted, result.Result)
	})
}

func TestMemory(t *testing.T) {
	run := func(t *testing.T, sig wasm.FunctionSig, emit func(b *istream.Builder)) (ExecResult, *exec.Memory) {
		env := NewEnvironment()
		mem, _ := env.EmplaceBackMemory(wasm.LimitsWithMax(1, 2))
		index := defineFunc(t, env, sig, emit)
		return NewExecutor(env, nil).RunFunction(index, nil), mem
	}

	t.Run("load/store", func(t *testing.T) {
		result, mem := run(t, wasm.Sig(nil, types(i64)), func(b *istream.Builder) {
			b.I32Const(8)
			b.I32Const(0xfffffffe)
			b.Memory(istream.OpI32Store16, 0, 4)
			b.I32Const(12)
			b.Memory(istream.OpI64Load16S, 0, 0)
			ret(b, 0, 1)
		})
		require.NoError(t, result.Err())
		assert.Equal(t, []exec.TypedValue{exec.TypedI64(math.MaxUint64 - 1)}, result.Values)
		assert.Equal(t, uint16(0xfffe), mem.Uint16At(12))
	})

	t.Run("out of bounds", func(t *testing.T) {
		result, _ := run(t, wasm.Sig(nil, types(i32)), func(b *istream.Builder) {
			b.I32Const(exec.PageSize - 2)
			b.Memory(istream.OpI32Load, 0, 0)
			ret(b, 0, 1)
		})
		assert.Equal(t, exec.TrapMemoryAccessOutOfBounds, result.Result)
	})

	t.Run("offset overflow", func(t *testing.T) {
		result, _ := run(t, wasm.Sig(nil, types(i32)), func(b *istream.Builder) {
			b.I32Const(math.MaxUint32)
			b.Memory(istream.OpI32Load8U, 0, math.MaxUint32)
			ret(b, 0, 1)
		})
		assert.Equal(t, exec.TrapMemoryAccessOutOfBounds, result.Result)
	})

	t.Run("unaligned atomic", func(t *testing.T) {
		result, _ := run(t, wasm.Sig(nil, types(i32)), func(b *istream.Builder) {
			b.I32Const(2)
			b.Memory(istream.OpI32AtomicLoad, 0, 0)
			ret(b, 0, 1)
		})
		assert.Equal(t, exec.TrapAtomicMemoryAccessUnaligned, result.Result)
	})

	t.Run("grow", func(t *testing.T) {
		result, mem := run(t, wasm.Sig(nil, types(i32)), func(b *istream.Builder) {
			b.I32Const(1)
			b.OpU32(istream.OpMemoryGrow, 0)
			b.I32Const(1)
			b.OpU32(istream.OpMemoryGrow, 0)
			b.Op(istream.OpI32Add)
			b.OpU32(istream.OpMemorySize, 0)
			b.Op(istream.OpI32Add)
			ret(b, 0, 1)
		})
		require.NoError(t, result.Err())
		// 1 (old size) + -1 (failed) + 2 (new size)
		assert.Equal(t, []exec.TypedValue{exec.TypedI32(2)}, result.Values)
		assert.Equal(t, uint32(2), mem.Size())
		assert.Equal(t, uint64(2*exec.PageSize), mem.Len())
	})

	t.Run("atomic rmw", func(t *testing.T) {
		result, mem := run(t, wasm.Sig(nil, types(i32)), func(b *istream.Builder) {
			b.I32Const(16)
			b.I32Const(0x1ff)
			b.Memory(istream.OpI32AtomicRmw8AddU, 0, 0)
			b.Op(istream.OpDrop)
			b.I32Const(16)
			b.I32Const(0x1ff)
			b.Memory(istream.OpI32AtomicRmw8AddU, 0, 0)
			ret(b, 0, 1)
		})
		require.NoError(t, result.Err())
		assert.Equal(t, []exec.TypedValue{exec.TypedI32(0xff)}, result.Values)
		assert.Equal(t, uint8(0xfe), mem.Uint8At(16))
	})

	t.Run("atomic cmpxchg", func(t *testing.T) {
		result, mem := run(t, wasm.Sig(nil, types(i64)), func(b *istream.Builder) {
			b.I32Const(8)
			b.I64Const(0)
			b.I64Const(42)
			b.Memory(istream.OpI64AtomicRmwCmpxchg, 0, 0)
			b.Op(istream.OpDrop)
			b.I32Const(8)
			b.I64Const(0)
			b.I64Const(7)
			b.Memory(istream.OpI64AtomicRmwCmpxchg, 0, 0)
			ret(b, 0, 1)
		})
		require.NoError(t, result.Err())
		assert.Equal(t, []exec.TypedValue{exec.TypedI64(42)}, result.Values)
		assert.Equal(t, uint64(42), mem.Uint64At(8))
	})
}

func TestCallIndirect(t *testing.T) {
	env := NewEnvironment()
	table, tableIndex := env.EmplaceBackTable(wasm.Limits(2))

	callee := defineFunc(t, env, wasm.Sig(nil, types(i32)), func(b *istream.Builder) {
		b.I32Const(42)
		ret(b, 0, 1)
	})
	table.Entries()[0] = callee

	// A distinct but structurally equal signature, and an unrelated one.
	_, sameSig := env.EmplaceBackFuncSignature(wasm.Sig(nil, types(i32)))
	_, otherSig := env.EmplaceBackFuncSignature(wasm.Sig(nil, types(i64)))

	caller := func(sig uint32) uint32 {
		return defineFunc(t, env, wasm.Sig(types(i32), types(i32)), func(b *istream.Builder) {
			b.OpU32(istream.OpLocalGet, 1)
			b.OpU32x2(istream.OpCallIndirect, tableIndex, sig)
			ret(b, 1, 1)
		})
	}
	good, bad := caller(sameSig), caller(otherSig)

	e := NewExecutor(env, nil)
	cases := []struct {
		name   string
		caller uint32
		entry  uint32
		result exec.Result
	}{
		{"ok", good, 0, exec.Ok},
		{"undefined", good, 2, exec.TrapUndefinedTableIndex},
		{"uninitialized", good, 1, exec.TrapUninitializedTableElement},
		{"mismatch", bad, 0, exec.TrapIndirectCallSignatureMismatch},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			result := e.RunFunction(c.caller, []exec.TypedValue{exec.TypedI32(c.entry)})
			assert.Equal(t, c.result, result.Result)
			if c.result == exec.Ok {
				assert.Equal(t, []exec.TypedValue{exec.TypedI32(42)}, result.Values)
			}
		})
	}
}

func TestCallHost(t *testing.T) {
	env := NewEnvironment()
	host := env.AppendHostModule("host")
	var calls []exec.TypedValue
	_, addExport := host.AppendFuncExport("add", wasm.Sig(types(i32, i32), types(i32)),
		func(_ *HostFunc, _ *wasm.FunctionSig, args, results []exec.TypedValue) error {
			calls = append(calls, args...)
			results[0] = exec.TypedI32(args[0].I32() + args[1].I32())
			return nil
		})
	_, failExport := host.AppendFuncExport("fail", wasm.Sig(nil, nil),
		func(*HostFunc, *wasm.FunctionSig, []exec.TypedValue, []exec.TypedValue) error {
			return errors.New("boom")
		})
	_, badExport := host.AppendFuncExport("bad", wasm.Sig(nil, types(i32)),
		func(_ *HostFunc, _ *wasm.FunctionSig, _, results []exec.TypedValue) error {
			results[0] = exec.TypedI64(1)
			return nil
		})

	callHost := func(export uint32, sig wasm.FunctionSig, emit func(b *istream.Builder)) ExecResult {
		index := defineFunc(t, env, sig, func(b *istream.Builder) {
			emit(b)
			b.OpU32(istream.OpInterpCallHost, host.Exports()[export].Index)
			ret(b, 0, uint8(len(sig.ReturnTypes)))
		})
		return NewExecutor(env, nil).RunFunction(index, nil)
	}

	result := callHost(addExport, wasm.Sig(nil, types(i32)), func(b *istream.Builder) {
		b.I32Const(2)
		b.I32Const(3)
	})
	require.NoError(t, result.Err())
	assert.Equal(t, []exec.TypedValue{exec.TypedI32(5)}, result.Values)
	assert.Equal(t, []exec.TypedValue{exec.TypedI32(2), exec.TypedI32(3)}, calls)

	result = callHost(failExport, wasm.Sig(nil, nil), func(*istream.Builder) {})
	assert.Equal(t, exec.TrapHostTrapped, result.Result)

	result = callHost(badExport, wasm.Sig(nil, types(i32)), func(*istream.Builder) {})
	assert.Equal(t, exec.TrapHostResultTypeMismatch, result.Result)
}

func TestSimd(t *testing.T) {
	lanes := func(l0, l1, l2, l3 uint32) exec.V128 {
		return exec.V128{Lo: uint64(l0) | uint64(l1)<<32, Hi: uint64(l2) | uint64(l3)<<32}
	}

	cases := []struct {
		name     string
		emit     func(b *istream.Builder)
		expected exec.V128
	}{
		{"i32x4.add", func(b *istream.Builder) {
			b.V128Const(lanes(1, 2, 3, math.MaxUint32))
			b.V128Const(lanes(10, 20, 30, 1))
			b.Op(istream.OpI32X4Add)
		}, lanes(11, 22, 33, 0)},
		{"i32x4.lt_s", func(b *istream.Builder) {
			b.V128Const(lanes(1, math.MaxUint32, 3, 4))
			b.V128Const(lanes(2, 0, 3, 1))
			b.Op(istream.OpI32X4LtS)
		}, lanes(1, 1, 0, 0)},
		{"i8x16.add_saturate_u", func(b *istream.Builder) {
			b.V128Const(exec.Splat(0xf0, 8))
			b.V128Const(exec.Splat(0x20, 8))
			b.Op(istream.OpI8X16AddSaturateU)
		}, exec.Splat(0xff, 8)},
		{"i16x8.shl", func(b *istream.Builder) {
			b.V128Const(exec.Splat(1, 16))
			b.I32Const(17)
			b.Op(istream.OpI16X8Shl)
		}, exec.Splat(2, 16)},
		{"i32x4.replace_lane", func(b *istream.Builder) {
			b.V128Const(lanes(1, 2, 3, 4))
			b.I32Const(9)
			b.Lane(istream.OpI32X4ReplaceLane, 6)
		}, lanes(1, 2, 9, 4)},
		{"v8x16.shuffle", func(b *istream.Builder) {
			b.V128Const(lanes(0x03020100, 0x07060504, 0x0b0a0908, 0x0f0e0d0c))
			b.V128Const(lanes(0x13121110, 0x17161514, 0x1b1a1918, 0x1f1e1d1c))
			b.Shuffle([16]byte{16, 0, 17, 1, 18, 2, 19, 3, 31, 15, 30, 14, 29, 13, 28, 12})
		}, lanes(0x01110010, 0x03130212, 0x0e1e0f1f, 0x0c1c0d1d)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			result, _ := testFunc(t, wasm.Sig(nil, types(v128)), nil, func(b *istream.Builder) {
				c.emit(b)
				ret(b, 0, 1)
			})
			require.NoError(t, result.Err())
			assert.Equal(t, []exec.TypedValue{exec.TypedV128(c.expected)}, result.Values)
		})
	}

	t.Run("all_true", func(t *testing.T) {
		result, _ := testFunc(t, wasm.Sig(nil, types(i32, i32)), nil, func(b *istream.Builder) {
			b.V128Const(lanes(1, 1, 1, 0))
			b.Op(istream.OpI32X4AllTrue)
			b.V128Const(lanes(0, 0, 0, 1))
			b.Op(istream.OpI32X4AnyTrue)
			b.Op(istream.OpReturn)
		})
		require.NoError(t, result.Err())
		assert.Equal(t, []exec.TypedValue{exec.TypedI32(0), exec.TypedI32(1)}, result.Values)
	})

	t.Run("extract_lane_s", func(t *testing.T) {
		result, _ := testFunc(t, wasm.Sig(nil, types(i32)), nil, func(b *istream.Builder) {
			b.V128Const(exec.Splat(0x80, 8))
			b.Lane(istream.OpI8X16ExtractLaneS, 3)
			ret(b, 0, 1)
		})
		require.NoError(t, result.Err())
		assert.Equal(t, []exec.TypedValue{exec.TypedI32(0xffffff80)}, result.Values)
	})
}

func TestRunStepsAndSavesPC(t *testing.T) {
	env := NewEnvironment()
	index := defineFunc(t, env, wasm.Sig(nil, types(f32)), func(b *istream.Builder) {
		b.F32Const(math.Float32bits(1.5))
		b.F32Const(math.Float32bits(2))
		b.Op(istream.OpF32Mul)
		ret(b, 0, 1)
	})
	offset := env.Func(index).(*DefinedFunc).Offset

	thread := NewThread(env, nil)
	thread.SetPC(offset)
	assert.Equal(t, exec.Ok, thread.Run(1))
	assert.Equal(t, offset+5, thread.PC())
	assert.Equal(t, uint32(1), thread.NumValues())

	var trace strings.Builder
	require.NoError(t, thread.Trace(&trace))
	assert.Equal(t, "#0.    5: V:1  | f32.const 2\n", trace.String())

	assert.Equal(t, exec.Ok, thread.Run(2))
	assert.Equal(t, exec.TypedF32(3).Value, thread.Top())
	assert.Equal(t, exec.Returned, thread.Run(10))
	assert.Equal(t, uint64(5), thread.Steps())

	thread.Reset()
	assert.Equal(t, uint32(0), thread.PC())
	assert.Equal(t, uint32(0), thread.NumValues())
}

func TestGlobals(t *testing.T) {
	env := NewEnvironment()
	g, gi := env.EmplaceBackGlobal(exec.TypedF64(1), true)
	index := defineFunc(t, env, wasm.Sig(nil, types(f64)), func(b *istream.Builder) {
		b.OpU32(istream.OpGlobalGet, gi)
		b.F64Const(math.Float64bits(2))
		b.Op(istream.OpF64Add)
		b.OpU32(istream.OpGlobalSet, gi)
		b.OpU32(istream.OpGlobalGet, gi)
		ret(b, 0, 1)
	})
	result := NewExecutor(env, nil).RunFunction(index, nil)
	require.NoError(t, result.Err())
	assert.Equal(t, []exec.TypedValue{exec.TypedF64(3)}, result.Values)
	assert.Equal(t, float64(3), g.GetValue())
}

// emitWithImmediates emits op with immediates that are valid in the environment built by TestStackEffects.
func emitWithImmediates(b *istream.Builder, op istream.Opcode, info istream.Info, memory, global uint32) {
	switch info.Immediates {
	case istream.ImmNone:
		b.Op(op)
	case istream.ImmOffset:
		b.BranchOffset(op, 0)
	case istream.ImmBrTable:
		l := b.NewLabel()
		b.Bind(l)
		b.BrTable(nil, istream.BrTableTarget{Label: l})
	case istream.ImmDepth:
		b.OpU32(op, 1)
	case istream.ImmGlobal:
		b.OpU32(op, global)
	case istream.ImmMemory:
		b.OpU32(op, memory)
	case istream.ImmMemoryOffset:
		b.Memory(op, memory, 0)
	case istream.ImmI32, istream.ImmF32:
		b.OpU32(op, 8)
	case istream.ImmI64, istream.ImmF64:
		b.OpU64(op, 8)
	case istream.ImmV128:
		b.V128Const(exec.V128{})
	case istream.ImmLane:
		b.Lane(op, 1)
	case istream.ImmShuffle:
		b.Shuffle([16]byte{})
	case istream.ImmData:
		b.Data(nil)
	default:
		panic(fmt.Sprintf("unexpected immediates for %v", op))
	}
}

// TestStackEffects executes each instruction with a fixed stack effect once and checks that the value stack changes
// by exactly the number of values the opcode table says it pops and pushes.
func TestStackEffects(t *testing.T) {
	env := NewEnvironment()
	_, memory := env.EmplaceBackMemory(wasm.Limits(1))
	_, global := env.EmplaceBackGlobal(exec.TypedI64(0), true)

	ops := istream.Opcodes()
	slices.Sort(ops)

	checked := 0
	for _, op := range ops {
		info, ok := istream.Lookup(op)
		require.True(t, ok)
		switch {
		case op.IsStructured(), info.Pops == istream.Variable, info.Pushes == istream.Variable:
			continue
		case op == istream.OpUnreachable, op == istream.OpAtomicNotify, op == istream.OpI32AtomicWait, op == istream.OpI64AtomicWait:
			// These always trap.
			continue
		}

		t.Run(op.String(), func(t *testing.T) {
			b := istream.NewBuilder(env.IstreamSize())
			offset := b.Offset()
			emitWithImmediates(b, op, info, memory, global)
			code, err := b.Bytes()
			require.NoError(t, err)
			env.AppendIstream(code)

			// An operand of 8 is a non-zero divisor and an aligned address.
			thread := NewThread(env, nil)
			for i := 0; i < 4+info.Pops; i++ {
				require.Equal(t, exec.Ok, thread.Push(exec.I64(8)))
			}
			before := int(thread.NumValues())

			thread.SetPC(offset)
			result := thread.Run(1)
			require.Contains(t, []exec.Result{exec.Ok, exec.Returned}, result)
			assert.Equal(t, before-info.Pops+info.Pushes, int(thread.NumValues()))
		})
		checked++
	}
	assert.Greater(t, checked, 300)
}

func BenchmarkFib(b *testing.B) {
	env := NewEnvironment()
	bld := istream.NewBuilder(0)
	fib := bld.Offset()
	recurse := bld.NewLabel()
	// fib(n) = n < 2 ? n : fib(n-1) + fib(n-2)
	bld.OpU32(istream.OpLocalGet, 1)
	bld.I32Const(2)
	bld.Op(istream.OpI32LtU)
	bld.Branch(istream.OpInterpBrUnless, recurse)
	bld.Op(istream.OpReturn)
	bld.Bind(recurse)
	bld.OpU32(istream.OpLocalGet, 1)
	bld.I32Const(1)
	bld.Op(istream.OpI32Sub)
	bld.BranchOffset(istream.OpCall, fib)
	bld.OpU32(istream.OpLocalGet, 2)
	bld.I32Const(2)
	bld.Op(istream.OpI32Sub)
	bld.BranchOffset(istream.OpCall, fib)
	bld.Op(istream.OpI32Add)
	bld.DropKeep(1, 1)
	bld.Op(istream.OpReturn)
	code, err := bld.Bytes()
	require.NoError(b, err)
	env.AppendIstream(code)
	_, sig := env.EmplaceBackFuncSignature(wasm.Sig(types(i32), types(i32)))
	index := env.EmplaceBackFunc(&DefinedFunc{SigIndex: sig, Offset: fib})

	e := NewExecutor(env, nil)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		result := e.RunFunction(index, []exec.TypedValue{exec.TypedI32(20)})
		require.Equal(b, []exec.TypedValue{exec.TypedI32(6765)}, result.Values)
	}
}
