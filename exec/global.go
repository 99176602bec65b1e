package exec

import "github.com/pgavlin/wisp/wasm"

// Global is a WASM global. ImportIndex is InvalidIndex unless the global was imported.
type Global struct {
	Value       TypedValue
	Mutable     bool
	ImportIndex uint32
}

func NewGlobal(value TypedValue, mutable bool) *Global {
	return &Global{Value: value, Mutable: mutable, ImportIndex: InvalidIndex}
}

func (g *Global) Type() wasm.GlobalVar {
	return wasm.GlobalVar{Type: g.Value.Type, Mutable: g.Mutable}
}

func (g *Global) Get() Value {
	return g.Value.Value
}

func (g *Global) Set(v Value) {
	g.Value.Value = v
}

func (g *Global) GetValue() interface{} {
	return g.Value.Interface()
}
