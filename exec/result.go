package exec

import "fmt"

// A Result is the outcome of executing code. Every value other than Ok and Returned aborts execution.
type Result int

const (
	Ok Result = iota
	// Returned from the entry function.
	Returned
	TrapMemoryAccessOutOfBounds
	TrapAtomicMemoryAccessUnaligned
	TrapIntegerOverflow
	TrapIntegerDivideByZero
	TrapInvalidConversionToInteger
	TrapUndefinedTableIndex
	TrapUninitializedTableElement
	TrapUnreachable
	TrapIndirectCallSignatureMismatch
	TrapCallStackExhausted
	TrapValueStackExhausted
	TrapHostResultTypeMismatch
	TrapHostTrapped
	// The arguments passed to an entry point do not match its signature.
	ArgumentTypeMismatch
	// The named export does not exist.
	UnknownExport
	// The named export is not a function.
	ExportKindMismatch
)

var resultStrings = [...]string{
	Ok:                                "ok",
	Returned:                          "returned",
	TrapMemoryAccessOutOfBounds:       "out of bounds memory access",
	TrapAtomicMemoryAccessUnaligned:   "atomic memory access is unaligned",
	TrapIntegerOverflow:               "integer overflow",
	TrapIntegerDivideByZero:           "integer divide by zero",
	TrapInvalidConversionToInteger:    "invalid conversion to integer",
	TrapUndefinedTableIndex:           "undefined table index",
	TrapUninitializedTableElement:     "uninitialized table element",
	TrapUnreachable:                   "unreachable executed",
	TrapIndirectCallSignatureMismatch: "indirect call signature mismatch",
	TrapCallStackExhausted:            "call stack exhausted",
	TrapValueStackExhausted:           "value stack exhausted",
	TrapHostResultTypeMismatch:        "host result type mismatch",
	TrapHostTrapped:                   "host function trapped",
	ArgumentTypeMismatch:              "argument type mismatch",
	UnknownExport:                     "unknown export",
	ExportKindMismatch:                "export kind mismatch",
}

func (r Result) String() string {
	if r < 0 || int(r) >= len(resultStrings) {
		return fmt.Sprintf("<unknown result %d>", int(r))
	}
	return resultStrings[r]
}

func (r Result) Error() string {
	return r.String()
}

// IsTrap returns true if the result is a runtime trap.
func (r Result) IsTrap() bool {
	return r >= TrapMemoryAccessOutOfBounds && r <= TrapHostTrapped
}
