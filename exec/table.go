package exec

import "github.com/pgavlin/wisp/wasm"

// Table is a WASM table of function indices. Uninitialized entries hold InvalidIndex.
type Table struct {
	limits  wasm.ResizableLimits
	entries []uint32
}

// NewTable creates a new WASM table sized by the limits' initial element count.
func NewTable(limits wasm.ResizableLimits) *Table {
	t := &Table{limits: limits, entries: make([]uint32, limits.Initial)}
	for i := range t.entries {
		t.entries[i] = InvalidIndex
	}
	return t
}

// Limits returns the minimum and maximum size of the table in elements.
func (t *Table) Limits() wasm.ResizableLimits {
	return t.limits
}

// Size returns the number of elements in the table.
func (t *Table) Size() uint32 {
	return uint32(len(t.entries))
}

// Entries returns the table's entries.
func (t *Table) Entries() []uint32 {
	return t.entries
}
