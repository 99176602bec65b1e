// Package samples contains built-in programs for the interpreter.
package samples

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/pgavlin/wisp/exec"
	"github.com/pgavlin/wisp/interpreter"
	"github.com/pgavlin/wisp/load"
	"github.com/pgavlin/wisp/wasm"
)

// A Sample is a built-in program.
type Sample struct {
	Name        string
	Description string

	// Entry is the name of the function export that runs the sample.
	Entry string
	// Args are the default arguments to Entry.
	Args []exec.TypedValue
	// Hosts names the host modules the sample imports.
	Hosts []string

	build func() *load.Module
}

// Module returns a fresh description of the sample's module.
func (s *Sample) Module() *load.Module {
	return s.build()
}

// Signature returns the signature of the sample's entry function.
func (s *Sample) Signature() wasm.FunctionSig {
	m := s.build()

	imports := uint32(0)
	for _, imp := range m.Imports {
		if imp.Kind == wasm.ExternalFunction {
			imports++
		}
	}
	for _, e := range m.Exports {
		if e.Name == s.Entry && e.Kind == wasm.ExternalFunction {
			if e.Index < imports {
				return m.Imports[e.Index].Sig
			}
			return m.Functions[e.Index-imports].Sig
		}
	}
	panic(fmt.Sprintf("sample %v has no entry %q", s.Name, s.Entry))
}

// Instantiate creates the host modules the sample needs in env, then instantiates the sample under its name.
func (s *Sample) Instantiate(env *interpreter.Environment, options *load.Options) (*interpreter.DefinedModule, error) {
	for _, name := range s.Hosts {
		if env.FindRegisteredModule(name) != nil {
			continue
		}
		host, ok := hosts[name]
		if !ok {
			return nil, fmt.Errorf("sample %v: unknown host module %q", s.Name, name)
		}
		if err := host(env); err != nil {
			return nil, fmt.Errorf("sample %v: creating host module %q: %w", s.Name, name, err)
		}
	}
	return load.InstantiateWithOptions(env, s.Name, s.build(), options)
}

// ParseArgs parses command-line arguments for the sample's entry function. If no arguments are given, the sample's
// default arguments are returned.
func (s *Sample) ParseArgs(args []string) ([]exec.TypedValue, error) {
	if len(args) == 0 {
		return s.Args, nil
	}

	params := s.Signature().ParamTypes
	if len(args) != len(params) {
		return nil, fmt.Errorf("%v expects %d arguments, got %d", s.Entry, len(params), len(args))
	}

	values := make([]exec.TypedValue, len(args))
	for i, arg := range args {
		v, err := ParseValue(params[i], arg)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		values[i] = v
	}
	return values, nil
}

// ParseValue parses a value of the given type. Integers may be signed or unsigned and may carry a base prefix.
func ParseValue(t wasm.ValueType, s string) (exec.TypedValue, error) {
	switch t {
	case wasm.ValueTypeI32:
		v, err := parseInt(s, 32)
		if err != nil {
			return exec.TypedValue{}, err
		}
		return exec.TypedI32(uint32(v)), nil
	case wasm.ValueTypeI64:
		v, err := parseInt(s, 64)
		if err != nil {
			return exec.TypedValue{}, err
		}
		return exec.TypedI64(v), nil
	case wasm.ValueTypeF32:
		v, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return exec.TypedValue{}, err
		}
		return exec.TypedF32Bits(math.Float32bits(float32(v))), nil
	case wasm.ValueTypeF64:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return exec.TypedValue{}, err
		}
		return exec.TypedF64(v), nil
	default:
		return exec.TypedValue{}, fmt.Errorf("cannot parse values of type %v", t)
	}
}

func parseInt(s string, bits int) (uint64, error) {
	if v, err := strconv.ParseInt(s, 0, bits); err == nil {
		return uint64(v), nil
	}
	return strconv.ParseUint(s, 0, bits)
}

var registry = map[string]*Sample{}

func register(s *Sample) {
	if _, ok := registry[s.Name]; ok {
		panic(fmt.Sprintf("duplicate sample %v", s.Name))
	}
	registry[s.Name] = s
}

// Get returns the sample with the given name.
func Get(name string) (*Sample, bool) {
	s, ok := registry[name]
	return s, ok
}

// All returns every sample sorted by name.
func All() []*Sample {
	all := make([]*Sample, 0, len(registry))
	for _, s := range registry {
		all = append(all, s)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all
}
