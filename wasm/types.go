package wasm

import (
	"fmt"
	"strings"
)

// ValueType represents the type of a valid value in Wasm
type ValueType int8

const (
	ValueTypeI32  ValueType = 0x7f
	ValueTypeI64  ValueType = 0x7e
	ValueTypeF32  ValueType = 0x7d
	ValueTypeF64  ValueType = 0x7c
	ValueTypeV128 ValueType = 0x7b
)

var valueTypeStrMap = map[ValueType]string{
	ValueTypeI32:  "i32",
	ValueTypeI64:  "i64",
	ValueTypeF32:  "f32",
	ValueTypeF64:  "f64",
	ValueTypeV128: "v128",
}

func (t ValueType) String() string {
	str, ok := valueTypeStrMap[t]
	if !ok {
		str = fmt.Sprintf("<unknown value_type %d>", int8(t))
	}
	return str
}

// External describes the kind of an import or export.
type External uint8

const (
	ExternalFunction External = 0
	ExternalTable    External = 1
	ExternalMemory   External = 2
	ExternalGlobal   External = 3
)

func (e External) String() string {
	switch e {
	case ExternalFunction:
		return "function"
	case ExternalTable:
		return "table"
	case ExternalMemory:
		return "memory"
	case ExternalGlobal:
		return "global"
	default:
		return fmt.Sprintf("<unknown external_kind %d>", uint8(e))
	}
}

// ResizableLimits describe the size of a table or a linear memory. Flags bit 0 is set if Maximum is present.
type ResizableLimits struct {
	Flags   uint8
	Initial uint32
	Maximum uint32
}

// Limits returns a ResizableLimits with no maximum.
func Limits(initial uint32) ResizableLimits {
	return ResizableLimits{Initial: initial}
}

// LimitsWithMax returns a ResizableLimits with the given maximum.
func LimitsWithMax(initial, max uint32) ResizableLimits {
	return ResizableLimits{Flags: 1, Initial: initial, Maximum: max}
}

// HasMax returns true if the limits carry a maximum.
func (l ResizableLimits) HasMax() bool {
	return l.Flags&0x1 != 0
}

func (l ResizableLimits) String() string {
	if l.HasMax() {
		return fmt.Sprintf("%d..%d", l.Initial, l.Maximum)
	}
	return fmt.Sprintf("%d..", l.Initial)
}

// GlobalVar describes the type and mutability of a global.
type GlobalVar struct {
	Type    ValueType
	Mutable bool
}

func (g GlobalVar) String() string {
	if g.Mutable {
		return fmt.Sprintf("(mut %v)", g.Type)
	}
	return g.Type.String()
}

// FunctionSig describes the signature of a declared function in a WASM module
type FunctionSig struct {
	// value for the 'func` type constructor
	Form        int8
	ParamTypes  []ValueType
	ReturnTypes []ValueType
}

// Sig is a convenience constructor for function signatures.
func Sig(params, results []ValueType) FunctionSig {
	return FunctionSig{Form: 0x60, ParamTypes: params, ReturnTypes: results}
}

// Equals returns true if the two signatures have the same parameter and result types.
func (f FunctionSig) Equals(other FunctionSig) bool {
	return equalTypes(f.ParamTypes, other.ParamTypes) && equalTypes(f.ReturnTypes, other.ReturnTypes)
}

func equalTypes(a, b []ValueType) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (f FunctionSig) String() string {
	var b strings.Builder
	b.WriteString("(")
	for i, t := range f.ParamTypes {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(t.String())
	}
	b.WriteString(") -> (")
	for i, t := range f.ReturnTypes {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(t.String())
	}
	b.WriteString(")")
	return b.String()
}
