package testing

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgavlin/wisp/exec"
	"github.com/pgavlin/wisp/istream"
	"github.com/pgavlin/wisp/load"
	"github.com/pgavlin/wisp/wasm"
)

var (
	i32 = wasm.ValueTypeI32
	f32 = wasm.ValueTypeF32
)

func types(ts ...wasm.ValueType) []wasm.ValueType {
	return ts
}

func testModule() *load.Module {
	return &load.Module{
		Imports: []load.Import{
			load.ImportFunc("spectest", "print_i32", wasm.Sig(types(i32), nil)),
			load.ImportGlobal("spectest", "global_i32", wasm.GlobalVar{Type: i32}),
			load.ImportMemory("spectest", "memory", wasm.Limits(1)),
		},
		Functions: []load.Function{
			{
				Name: "log",
				Sig:  wasm.Sig(types(i32), nil),
				Body: func(b *load.FunctionBuilder) {
					b.LocalGet(0)
					b.Call(0)
				},
			},
			{
				Name: "div",
				Sig:  wasm.Sig(types(i32, i32), types(i32)),
				Body: func(b *load.FunctionBuilder) {
					b.LocalGet(0)
					b.LocalGet(1)
					b.Op(istream.OpI32DivS)
				},
			},
			{
				Name: "recurse",
				Sig:  wasm.Sig(nil, nil),
				Body: func(b *load.FunctionBuilder) {
					b.Call(3)
				},
			},
			{
				Name: "nan",
				Sig:  wasm.Sig(nil, types(f32)),
				Body: func(b *load.FunctionBuilder) {
					b.F32Const(0)
					b.F32Const(0)
					b.Op(istream.OpF32Div)
				},
			},
		},
		Exports: []load.Export{
			{Name: "log", Kind: wasm.ExternalFunction, Index: 1},
			{Name: "div", Kind: wasm.ExternalFunction, Index: 2},
			{Name: "recurse", Kind: wasm.ExternalFunction, Index: 3},
			{Name: "nan", Kind: wasm.ExternalFunction, Index: 4},
			{Name: "g", Kind: wasm.ExternalGlobal, Index: 0},
		},
	}
}

func TestAssertions(t *testing.T) {
	var output bytes.Buffer
	e := NewEnvironment(&Options{Output: &output})

	m := e.Instantiate(t, "test", testModule())
	require.NotNil(t, m)
	assert.Same(t, m, e.Module(""))

	e.AssertReturn(t, Invoke("", "div", exec.TypedI32(7), exec.TypedI32(2)), exec.TypedI32(3))
	e.AssertReturn(t, Invoke("test", "nan"), CanonicalNaN)
	e.AssertReturn(t, Invoke("test", "nan"), ArithmeticNaN)
	e.AssertReturn(t, Get("test", "g"), exec.TypedI32(666))
	e.AssertTrap(t, Invoke("test", "div", exec.TypedI32(1), exec.TypedI32(0)), "integer divide by zero")
	e.AssertExhaustion(t, Invoke("test", "recurse"), "call stack exhausted")

	e.AssertReturn(t, Invoke("test", "log", exec.TypedI32(42)))
	assert.Equal(t, "called host spectest.print_i32(i32:42) =>\n", output.String())

	// Calls through the environment's executor leave no values behind.
	assert.Equal(t, uint32(0), e.executor.Thread().NumValues())
}

func TestRegister(t *testing.T) {
	e := NewEnvironment(nil)
	e.Instantiate(t, "test", testModule())
	e.Register(t, "math", "test")

	user := &load.Module{
		Imports: []load.Import{
			load.ImportFunc("math", "div", wasm.Sig(types(i32, i32), types(i32))),
		},
		Functions: []load.Function{{
			Name: "half",
			Sig:  wasm.Sig(types(i32), types(i32)),
			Body: func(b *load.FunctionBuilder) {
				b.LocalGet(0)
				b.I32Const(2)
				b.Call(0)
			},
		}},
		Exports: []load.Export{{Name: "half", Kind: wasm.ExternalFunction, Index: 1}},
	}
	e.Instantiate(t, "user", user)
	e.AssertReturn(t, Invoke("user", "half", exec.TypedI32(10)), exec.TypedI32(5))
	e.AssertTrap(t, Invoke("user", "half", exec.TypedI32(10), exec.TypedI32(1)), "argument type mismatch")
}

func TestAssertUnlinkable(t *testing.T) {
	e := NewEnvironment(nil)

	e.AssertUnlinkable(t, &load.Module{
		Imports: []load.Import{load.ImportFunc("spectest", "unknown", wasm.Sig(nil, nil))},
	}, "unknown import")
	e.AssertUnlinkable(t, &load.Module{
		Imports: []load.Import{load.ImportMemory("spectest", "memory", wasm.Limits(2))},
	}, "incompatible import type")
	e.AssertUnlinkable(t, &load.Module{
		Imports: []load.Import{load.ImportFunc("nowhere", "f", wasm.Sig(nil, nil))},
	}, "unknown import module")

	// The print functions are created on demand for any signature, and discarded along with a failed module.
	exports := len(e.SpecTest().Exports())
	e.AssertUnlinkable(t, &load.Module{
		Imports: []load.Import{
			load.ImportFunc("spectest", "print_f64_f64", wasm.Sig(types(wasm.ValueTypeF64, wasm.ValueTypeF64), nil)),
			load.ImportFunc("spectest", "missing", wasm.Sig(nil, nil)),
		},
	}, "unknown import")
	assert.Len(t, e.SpecTest().Exports(), exports)
}

func TestActionErrors(t *testing.T) {
	e := NewEnvironment(nil)

	_, err := Invoke("", "f").Run(e)
	assert.EqualError(t, err, "no module has been instantiated")

	_, err = Get("missing", "g").Run(e)
	assert.EqualError(t, err, `unknown module "missing"`)

	e.Instantiate(t, "test", testModule())
	_, err = Get("test", "div").Run(e)
	assert.Equal(t, exec.ExportKindMismatch, err)
	_, err = Get("test", "h").Run(e)
	assert.Equal(t, exec.UnknownExport, err)
	_, err = Invoke("test", "g").Run(e)
	assert.Equal(t, exec.ExportKindMismatch, err)

	assert.Equal(t, "invoke test.div(i32:1, i32:2)", Invoke("test", "div", exec.TypedI32(1), exec.TypedI32(2)).String())
	assert.Equal(t, "get test.g", Get("test", "g").String())
}

func TestIsEqual(t *testing.T) {
	canonical32 := exec.TypedF32Bits(0x7fc00000)
	negCanonical32 := exec.TypedF32Bits(0xffc00000)
	arithmetic32 := exec.TypedF32Bits(0x7fc00001)
	signaling32 := exec.TypedF32Bits(0x7f800001)
	canonical64 := exec.TypedF64Bits(0x7ff8000000000000)
	arithmetic64 := exec.TypedF64Bits(0x7ff8000000000001)

	assert.True(t, isEqual(CanonicalNaN, canonical32))
	assert.True(t, isEqual(CanonicalNaN, negCanonical32))
	assert.False(t, isEqual(CanonicalNaN, arithmetic32))
	assert.True(t, isEqual(ArithmeticNaN, arithmetic32))
	assert.True(t, isEqual(ArithmeticNaN, canonical32))
	assert.False(t, isEqual(ArithmeticNaN, signaling32))
	assert.True(t, isEqual(CanonicalNaN, canonical64))
	assert.True(t, isEqual(ArithmeticNaN, arithmetic64))
	assert.False(t, isEqual(CanonicalNaN, exec.TypedI32(0x7fc00000)))

	assert.True(t, isEqual(exec.TypedF32(float32(math.Inf(1))), exec.TypedF32(float32(math.Inf(1)))))
	assert.False(t, isEqual(exec.TypedF32(0), exec.TypedF32(float32(math.Copysign(0, -1)))))
	assert.False(t, isEqual(exec.TypedI32(1), exec.TypedI64(1)))
	assert.True(t, isEqual(exec.TypedV128(exec.V128{Lo: 1, Hi: 2}), exec.TypedV128(exec.V128{Lo: 1, Hi: 2})))
	assert.False(t, isEqual(int32(1), exec.TypedI32(1)))
}
