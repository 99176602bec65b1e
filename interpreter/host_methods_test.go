package interpreter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgavlin/wisp/exec"
	"github.com/pgavlin/wisp/wasm"
)

type mathHost struct {
	calls int
}

func (h *mathHost) Add(a, b int32) int32 {
	h.calls++
	return a + b
}

func (h *mathHost) Scale(x float64, by float32) float64 {
	return x * float64(by)
}

func (h *mathHost) Check(v uint64) (uint64, error) {
	if v == 0 {
		return 0, errors.New("zero")
	}
	return v - 1, nil
}

func (h *mathHost) Describe(s string) string {
	return s
}

func TestAppendMethodExports(t *testing.T) {
	env := NewEnvironment()
	host := env.AppendHostModule("math")
	h := &mathHost{}

	err := host.AppendMethodExports(h)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "method Describe")
	assert.Nil(t, host.GetExport("describe"))

	e := NewExecutor(env, nil)

	add := host.GetExport("add")
	require.NotNil(t, add)
	assert.Equal(t, "(i32, i32) -> (i32)", env.FuncSignature(env.Func(add.Index).Signature()).String())
	result := e.RunExport(add, []exec.TypedValue{exec.TypedI32(uint32(0xfffffffe)), exec.TypedI32(5)})
	require.NoError(t, result.Err())
	assert.Equal(t, []exec.TypedValue{exec.TypedI32(3)}, result.Values)
	assert.Equal(t, 1, h.calls)

	scale := host.GetExport("scale")
	require.NotNil(t, scale)
	result = e.RunExport(scale, []exec.TypedValue{exec.TypedF64(1.5), exec.TypedF32(4)})
	require.NoError(t, result.Err())
	assert.Equal(t, []exec.TypedValue{exec.TypedF64(6)}, result.Values)

	check := host.GetExport("check")
	require.NotNil(t, check)
	sig := env.FuncSignature(env.Func(check.Index).Signature())
	assert.Equal(t, []wasm.ValueType{wasm.ValueTypeI64}, sig.ReturnTypes)
	result = e.RunExport(check, []exec.TypedValue{exec.TypedI64(10)})
	require.NoError(t, result.Err())
	assert.Equal(t, []exec.TypedValue{exec.TypedI64(9)}, result.Values)
	assert.Equal(t, exec.TrapHostTrapped, e.RunExport(check, []exec.TypedValue{exec.TypedI64(0)}).Result)
}
