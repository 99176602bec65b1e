package samples

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgavlin/wisp/exec"
	"github.com/pgavlin/wisp/interpreter"
	"github.com/pgavlin/wisp/wasm"
)

func run(t *testing.T, name string, args ...exec.TypedValue) interpreter.ExecResult {
	s, ok := Get(name)
	require.True(t, ok)

	env := interpreter.NewEnvironment()
	m, err := s.Instantiate(env, nil)
	require.NoError(t, err)

	if args == nil {
		args = s.Args
	}
	return interpreter.NewExecutor(env, nil).RunExportByName(m, s.Entry, args)
}

func TestSamples(t *testing.T) {
	cases := []struct {
		name   string
		result exec.Result
		values []exec.TypedValue
	}{
		{name: "fib", values: []exec.TypedValue{exec.TypedI32(6765)}},
		{name: "fac", values: []exec.TypedValue{exec.TypedI64(2432902008176640000)}},
		{name: "add", values: []exec.TypedValue{exec.TypedI32(5)}},
		{name: "divzero", result: exec.TrapIntegerDivideByZero},
		{name: "memsum", values: []exec.TypedValue{exec.TypedI32(55)}},
		{name: "dispatch", values: []exec.TypedValue{exec.TypedI32(49)}},
		{name: "simd", values: []exec.TypedValue{exec.TypedI32(28)}},
		{name: "atomic", values: []exec.TypedValue{exec.TypedI32(10)}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			result := run(t, c.name)
			assert.Equal(t, c.result, result.Result)
			assert.Equal(t, c.values, result.Values)
		})
	}
}

func TestSampleArguments(t *testing.T) {
	assert.Equal(t, []exec.TypedValue{exec.TypedI32(8)}, run(t, "add", exec.TypedI32(10), exec.TypedI32(-2&0xffffffff)).Values)
	assert.Equal(t, []exec.TypedValue{exec.TypedI32(14)}, run(t, "dispatch", exec.TypedI32(0), exec.TypedI32(7)).Values)
	assert.Equal(t, []exec.TypedValue{exec.TypedI32(0xfffffff9)}, run(t, "dispatch", exec.TypedI32(2), exec.TypedI32(7)).Values)
	assert.Equal(t, exec.TrapUninitializedTableElement, run(t, "dispatch", exec.TypedI32(3), exec.TypedI32(7)).Result)
	assert.Equal(t, exec.TrapUndefinedTableIndex, run(t, "dispatch", exec.TypedI32(4), exec.TypedI32(7)).Result)
	assert.Equal(t, exec.TrapMemoryAccessOutOfBounds, run(t, "memsum", exec.TypedI32(1<<14+1)).Result)
}

func TestRegistry(t *testing.T) {
	var names []string
	for _, s := range All() {
		names = append(names, s.Name)
		assert.NotEmpty(t, s.Description)
		assert.Len(t, s.Args, len(s.Signature().ParamTypes), s.Name)
	}
	assert.Equal(t, []string{"add", "atomic", "divzero", "dispatch", "fac", "fib", "memsum", "simd"}, names)

	_, ok := Get("missing")
	assert.False(t, ok)
}

func TestSharedEnvironment(t *testing.T) {
	env := interpreter.NewEnvironment()
	for _, s := range All() {
		_, err := s.Instantiate(env, nil)
		require.NoError(t, err, s.Name)
	}
	assert.NotNil(t, env.FindModule("fib"))
	assert.NotNil(t, env.FindRegisteredModule("env"))
}

func TestParseArgs(t *testing.T) {
	fac, _ := Get("fac")

	args, err := fac.ParseArgs(nil)
	require.NoError(t, err)
	assert.Equal(t, fac.Args, args)

	args, err = fac.ParseArgs([]string{"0x10"})
	require.NoError(t, err)
	assert.Equal(t, []exec.TypedValue{exec.TypedI64(16)}, args)

	_, err = fac.ParseArgs([]string{"1", "2"})
	assert.EqualError(t, err, "fac expects 1 arguments, got 2")

	_, err = fac.ParseArgs([]string{"x"})
	assert.Error(t, err)
}

func TestParseValue(t *testing.T) {
	cases := []struct {
		typ      wasm.ValueType
		text     string
		expected exec.TypedValue
	}{
		{wasm.ValueTypeI32, "-1", exec.TypedI32(0xffffffff)},
		{wasm.ValueTypeI32, "4294967295", exec.TypedI32(0xffffffff)},
		{wasm.ValueTypeI64, "-2", exec.TypedI64(0xfffffffffffffffe)},
		{wasm.ValueTypeF32, "1.5", exec.TypedF32(1.5)},
		{wasm.ValueTypeF64, "-0.25", exec.TypedF64(-0.25)},
	}
	for _, c := range cases {
		v, err := ParseValue(c.typ, c.text)
		require.NoError(t, err, c.text)
		assert.Equal(t, c.expected, v, c.text)
	}

	_, err := ParseValue(wasm.ValueTypeI32, "4294967296")
	assert.Error(t, err)
	_, err = ParseValue(wasm.ValueTypeV128, "0")
	assert.Error(t, err)
}

func TestEnvHost(t *testing.T) {
	env := interpreter.NewEnvironment()
	require.NoError(t, newEnvHost(env))

	m := env.FindRegisteredModule("env")
	require.NotNil(t, m)
	result := interpreter.NewExecutor(env, nil).RunExportByName(m, "max", []exec.TypedValue{exec.TypedI64(3), exec.TypedI64(9)})
	require.NoError(t, result.Err())
	assert.Equal(t, []exec.TypedValue{exec.TypedI64(9)}, result.Values)
}
