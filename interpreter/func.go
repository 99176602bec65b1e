package interpreter

import (
	"github.com/pgavlin/wisp/exec"
	"github.com/pgavlin/wisp/wasm"
)

// A Func is either a *DefinedFunc or a *HostFunc.
type Func interface {
	// Signature returns the environment index of the function's signature.
	Signature() uint32

	isFunc()
}

// A DefinedFunc is a function whose body lives in the environment's istream.
type DefinedFunc struct {
	SigIndex uint32
	// Offset is the absolute istream offset of the function's first instruction.
	Offset uint32
	// LocalDeclCount is the number of local declaration groups in the source function.
	LocalDeclCount uint32
	// LocalCount is the number of non-parameter locals.
	LocalCount uint32
	// ParamAndLocalTypes holds the types of the parameters followed by the types of the locals.
	ParamAndLocalTypes []wasm.ValueType
}

func (f *DefinedFunc) Signature() uint32 { return f.SigIndex }

func (*DefinedFunc) isFunc() {}

// A HostCallback implements a host function. Args holds one value per parameter. Results is pre-sized to the number
// of results; the callback must fill in each element with a value of the declared type. A non-nil error traps.
type HostCallback func(f *HostFunc, sig *wasm.FunctionSig, args, results []exec.TypedValue) error

// A HostFunc is a function implemented by the embedder.
type HostFunc struct {
	SigIndex   uint32
	ModuleName string
	FieldName  string
	Callback   HostCallback
}

func (f *HostFunc) Signature() uint32 { return f.SigIndex }

func (*HostFunc) isFunc() {}
