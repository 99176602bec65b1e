package load

import (
	"github.com/pgavlin/wisp/exec"
	"github.com/pgavlin/wisp/interpreter"
	"github.com/pgavlin/wisp/wasm"
)

// A Module describes a module to be instantiated. Function and global indices are module indices: imports of each
// kind come first, followed by the module's own definitions in order.
type Module struct {
	Imports   []Import
	Functions []Function
	Table     *wasm.ResizableLimits
	Memory    *wasm.ResizableLimits
	Globals   []Global
	Exports   []Export
	Elements  []ElementSegment
	Data      []DataSegment

	// Start is the module index of the start function, if any.
	Start *uint32
}

// An Import describes one import. Sig applies to function imports, Limits to table and memory imports, and Global to
// global imports.
type Import struct {
	Module string
	Field  string
	Kind   wasm.External

	Sig    wasm.FunctionSig
	Limits wasm.ResizableLimits
	Global wasm.GlobalVar
}

// ImportFunc describes a function import.
func ImportFunc(module, field string, sig wasm.FunctionSig) Import {
	return Import{Module: module, Field: field, Kind: wasm.ExternalFunction, Sig: sig}
}

// ImportTable describes a table import.
func ImportTable(module, field string, limits wasm.ResizableLimits) Import {
	return Import{Module: module, Field: field, Kind: wasm.ExternalTable, Limits: limits}
}

// ImportMemory describes a memory import.
func ImportMemory(module, field string, limits wasm.ResizableLimits) Import {
	return Import{Module: module, Field: field, Kind: wasm.ExternalMemory, Limits: limits}
}

// ImportGlobal describes a global import.
func ImportGlobal(module, field string, typ wasm.GlobalVar) Import {
	return Import{Module: module, Field: field, Kind: wasm.ExternalGlobal, Global: typ}
}

// A Function describes a defined function. Body emits the function's code; the function's implicit block is closed
// after Body returns.
type Function struct {
	Name   string
	Sig    wasm.FunctionSig
	Locals []wasm.ValueType
	Body   func(b *FunctionBuilder)
}

// A Global describes a defined global.
type Global struct {
	Type wasm.GlobalVar
	Init InitExpr
}

// An Export exports a module entity under a name.
type Export struct {
	Name  string
	Kind  wasm.External
	Index uint32
}

// ElementSegment initializes a range of the module's table with module function indices.
type ElementSegment struct {
	Offset    InitExpr
	Functions []uint32
}

// DataSegment initializes a range of the module's memory.
type DataSegment struct {
	Offset InitExpr
	Data   []byte
}

// An InitExpr is a constant initializer: either a constant value or the value of a global.
type InitExpr struct {
	Value exec.TypedValue

	FromGlobal bool
	Global     uint32
}

// Const returns an initializer that evaluates to v.
func Const(v exec.TypedValue) InitExpr {
	return InitExpr{Value: v}
}

// ConstI32 returns an initializer that evaluates to the i32 v.
func ConstI32(v uint32) InitExpr {
	return Const(exec.TypedI32(v))
}

// GlobalGet returns an initializer that evaluates to the value of the global with the given module index.
func GlobalGet(index uint32) InitExpr {
	return InitExpr{FromGlobal: true, Global: index}
}

// eval evaluates the expression against the environment indices of the globals visible to it.
func (e InitExpr) eval(env *interpreter.Environment, globals []uint32) (exec.TypedValue, error) {
	if !e.FromGlobal {
		return e.Value, nil
	}
	if e.Global >= uint32(len(globals)) {
		return exec.TypedValue{}, &IndexError{Space: "global", Index: e.Global}
	}
	return env.Global(globals[e.Global]).Value, nil
}

func (e InitExpr) evalI32(env *interpreter.Environment, globals []uint32) (uint32, error) {
	v, err := e.eval(env, globals)
	if err != nil {
		return 0, err
	}
	if v.Type != wasm.ValueTypeI32 {
		return 0, &InitExprTypeError{Expected: wasm.ValueTypeI32, Actual: v.Type}
	}
	return v.I32(), nil
}
