package testing

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/pgavlin/wisp/exec"
	"github.com/pgavlin/wisp/interpreter"
	"github.com/pgavlin/wisp/wasm"
)

// SpecTestModuleName is the name under which the spectest host module is registered.
const SpecTestModuleName = "spectest"

// NewSpecTest appends and registers the spectest host module. Any function import whose name begins with "print" is
// satisfied on demand for the requested signature; calls are logged to w.
func NewSpecTest(env *interpreter.Environment, w io.Writer) *interpreter.HostModule {
	m := env.AppendHostModule(SpecTestModuleName)
	m.AppendGlobalExport("global_i32", exec.TypedI32(666), false)
	m.AppendGlobalExport("global_i64", exec.TypedI64(666), false)
	m.AppendGlobalExport("global_f32", exec.TypedF32(666.6), false)
	m.AppendGlobalExport("global_f64", exec.TypedF64(666.6), false)
	m.AppendTableExport("table", wasm.LimitsWithMax(10, 20))
	m.AppendMemoryExport("memory", wasm.LimitsWithMax(1, 2))

	m.OnUnknownFuncExport = func(env *interpreter.Environment, m *interpreter.HostModule, name string, sigIndex uint32) uint32 {
		if !strings.HasPrefix(name, "print") {
			return exec.InvalidIndex
		}
		_, index := m.AppendFuncExportSig(name, sigIndex, printCallback(w))
		return index
	}
	return m
}

// printCallback returns a host callback that logs its call to w and returns zero values.
func printCallback(w io.Writer) interpreter.HostCallback {
	return func(f *interpreter.HostFunc, sig *wasm.FunctionSig, args, results []exec.TypedValue) error {
		for i, t := range sig.ReturnTypes {
			results[i] = exec.ZeroValue(t)
		}
		if w != nil {
			fmt.Fprintf(w, "called host %s", interpreter.FormatCall(f.ModuleName, f.FieldName, args, results, exec.Ok))
		}
		return nil
	}
}

// NaN describes an expected NaN result.
type NaN int

const (
	// CanonicalNaN matches a NaN whose payload is the canonical payload.
	CanonicalNaN NaN = iota
	// ArithmeticNaN matches any NaN with the quiet bit set.
	ArithmeticNaN
)

func (n NaN) String() string {
	if n == CanonicalNaN {
		return "nan:canonical"
	}
	return "nan:arithmetic"
}

// isEqual reports whether an actual result matches an expected value, which must be an exec.TypedValue or a NaN.
func isEqual(expected interface{}, actual exec.TypedValue) bool {
	const (
		nanMask32      = 0x7fffffff
		canonicalNaN32 = 0x7fc00000
		quietNaN32     = 0x00400000
		nanMask64      = 0x7fffffffffffffff
		canonicalNaN64 = 0x7ff8000000000000
		quietNaN64     = 0x0008000000000000
	)

	switch expected := expected.(type) {
	case NaN:
		switch actual.Type {
		case wasm.ValueTypeF32:
			bits := actual.F32Bits()
			if expected == CanonicalNaN {
				return bits&nanMask32 == canonicalNaN32
			}
			return math.IsNaN(float64(math.Float32frombits(bits))) && bits&quietNaN32 != 0
		case wasm.ValueTypeF64:
			bits := actual.F64Bits()
			if expected == CanonicalNaN {
				return bits&nanMask64 == canonicalNaN64
			}
			return math.IsNaN(math.Float64frombits(bits)) && bits&quietNaN64 != 0
		default:
			return false
		}
	case exec.TypedValue:
		if expected.Type != actual.Type {
			return false
		}
		switch expected.Type {
		case wasm.ValueTypeI32, wasm.ValueTypeF32:
			return expected.I32() == actual.I32()
		case wasm.ValueTypeI64, wasm.ValueTypeF64:
			return expected.I64() == actual.I64()
		default:
			return expected.V128() == actual.V128()
		}
	default:
		return false
	}
}
