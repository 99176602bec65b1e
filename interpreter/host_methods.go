package interpreter

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"unicode"
	"unicode/utf8"

	"github.com/pgavlin/wisp/exec"
	"github.com/pgavlin/wisp/wasm"
	"go.uber.org/multierr"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// AppendMethodExports exports each exported method of v as a host function. The export name is the method name with
// its first letter lower-cased. Parameters and results must be 32- or 64-bit integers or floats; a trailing error
// result is permitted, and a non-nil error traps. Methods with unsupported signatures are skipped and reported in the
// returned error.
func (m *HostModule) AppendMethodExports(v interface{}) error {
	rv := reflect.ValueOf(v)
	rt := rv.Type()

	var errs error
	for i := 0; i < rt.NumMethod(); i++ {
		method := rt.Method(i)
		fn := rv.Method(i)

		sig, hasError, err := methodSignature(fn.Type())
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("method %v: %w", method.Name, err))
			continue
		}
		m.AppendFuncExport(exportName(method.Name), sig, methodCallback(fn, hasError))
	}
	return errs
}

func exportName(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToLower(r)) + name[size:]
}

func valueType(t reflect.Type) (wasm.ValueType, bool) {
	switch t.Kind() {
	case reflect.Int32, reflect.Uint32:
		return wasm.ValueTypeI32, true
	case reflect.Int64, reflect.Uint64:
		return wasm.ValueTypeI64, true
	case reflect.Float32:
		return wasm.ValueTypeF32, true
	case reflect.Float64:
		return wasm.ValueTypeF64, true
	default:
		return 0, false
	}
}

func methodSignature(t reflect.Type) (wasm.FunctionSig, bool, error) {
	if t.IsVariadic() {
		return wasm.FunctionSig{}, false, errors.New("variadic methods are not supported")
	}

	var errs error
	params := make([]wasm.ValueType, t.NumIn())
	for i := range params {
		vt, ok := valueType(t.In(i))
		if !ok {
			errs = multierr.Append(errs, fmt.Errorf("unsupported parameter type %v", t.In(i)))
		}
		params[i] = vt
	}

	numOut, hasError := t.NumOut(), false
	if numOut > 0 && t.Out(numOut-1) == errorType {
		numOut, hasError = numOut-1, true
	}
	results := make([]wasm.ValueType, numOut)
	for i := range results {
		vt, ok := valueType(t.Out(i))
		if !ok {
			errs = multierr.Append(errs, fmt.Errorf("unsupported result type %v", t.Out(i)))
		}
		results[i] = vt
	}
	if errs != nil {
		return wasm.FunctionSig{}, false, errs
	}
	return wasm.Sig(params, results), hasError, nil
}

func toReflectValue(v exec.TypedValue, t reflect.Type) reflect.Value {
	rv := reflect.New(t).Elem()
	switch t.Kind() {
	case reflect.Int32:
		rv.SetInt(int64(int32(v.I32())))
	case reflect.Uint32:
		rv.SetUint(uint64(v.I32()))
	case reflect.Int64:
		rv.SetInt(int64(v.I64()))
	case reflect.Uint64:
		rv.SetUint(v.I64())
	case reflect.Float32:
		rv.SetFloat(float64(math.Float32frombits(v.F32Bits())))
	case reflect.Float64:
		rv.SetFloat(math.Float64frombits(v.F64Bits()))
	}
	return rv
}

func fromReflectValue(rv reflect.Value) exec.TypedValue {
	switch rv.Kind() {
	case reflect.Int32:
		return exec.TypedI32(uint32(rv.Int()))
	case reflect.Uint32:
		return exec.TypedI32(uint32(rv.Uint()))
	case reflect.Int64:
		return exec.TypedI64(uint64(rv.Int()))
	case reflect.Uint64:
		return exec.TypedI64(rv.Uint())
	case reflect.Float32:
		return exec.TypedF32Bits(math.Float32bits(float32(rv.Float())))
	default:
		return exec.TypedF64Bits(math.Float64bits(rv.Float()))
	}
}

func methodCallback(fn reflect.Value, hasError bool) HostCallback {
	t := fn.Type()
	return func(_ *HostFunc, _ *wasm.FunctionSig, args, results []exec.TypedValue) error {
		in := make([]reflect.Value, len(args))
		for i, arg := range args {
			in[i] = toReflectValue(arg, t.In(i))
		}

		out := fn.Call(in)
		if hasError {
			if err, _ := out[len(out)-1].Interface().(error); err != nil {
				return err
			}
			out = out[:len(out)-1]
		}
		for i, rv := range out {
			results[i] = fromReflectValue(rv)
		}
		return nil
	}
}
