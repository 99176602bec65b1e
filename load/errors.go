package load

import (
	"errors"
	"fmt"

	"github.com/pgavlin/wisp/wasm"
)

var (
	// ErrElementSegmentDoesNotFit is returned by Instantiate if an element segment extends past the end of its table.
	ErrElementSegmentDoesNotFit = errors.New("elements segment does not fit")
	// ErrDataSegmentDoesNotFit is returned by Instantiate if a data segment extends past the end of its memory.
	ErrDataSegmentDoesNotFit = errors.New("data segment does not fit")
	// ErrStartFunctionTrapped is returned by Instantiate if the module's start function traps.
	ErrStartFunctionTrapped = errors.New("start function trapped")

	ErrMultipleTables   = errors.New("only one table allowed")
	ErrMultipleMemories = errors.New("only one memory allowed")
	ErrNoTable          = errors.New("module has no table")
	ErrNoMemory         = errors.New("module has no memory")
)

// UnknownModuleError is returned when an import names a module that has not been registered.
type UnknownModuleError struct {
	ModuleName string
}

func (e *UnknownModuleError) Error() string {
	return fmt.Sprintf("unknown import module %q", e.ModuleName)
}

// UnknownImportError is returned when a registered module has no export matching an import.
type UnknownImportError struct {
	ModuleName string
	FieldName  string
}

func (e *UnknownImportError) Error() string {
	return fmt.Sprintf("unknown import %q.%q", e.ModuleName, e.FieldName)
}

// KindMismatchError is returned when an import resolves to an export of a different kind.
type KindMismatchError struct {
	ModuleName string
	FieldName  string
	Expected   wasm.External
	Actual     wasm.External
}

func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("incompatible import type for %q.%q: expected %v, got %v", e.ModuleName, e.FieldName, e.Expected, e.Actual)
}

// ImportTypeError is returned when an import resolves to an export whose signature, limits or global type do not
// match the import's declaration.
type ImportTypeError struct {
	ModuleName string
	FieldName  string
	Reason     string
}

func (e *ImportTypeError) Error() string {
	return fmt.Sprintf("incompatible import type for %q.%q: %s", e.ModuleName, e.FieldName, e.Reason)
}

// IndexError is returned when a module refers to an entity that does not exist in one of its index spaces.
type IndexError struct {
	Space string
	Index uint32
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("invalid %s index %d", e.Space, e.Index)
}

// InitExprTypeError is returned when an initializer expression produces a value of the wrong type.
type InitExprTypeError struct {
	Expected wasm.ValueType
	Actual   wasm.ValueType
}

func (e *InitExprTypeError) Error() string {
	return fmt.Sprintf("type mismatch in initializer expression: expected %v, got %v", e.Expected, e.Actual)
}
