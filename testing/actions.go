package testing

import (
	"fmt"

	"github.com/pgavlin/wisp/exec"
	"github.com/pgavlin/wisp/interpreter"
	"github.com/pgavlin/wisp/load"
	"github.com/pgavlin/wisp/wasm"
)

// An Action is a command whose results may be asserted on.
type Action interface {
	fmt.Stringer

	Run(e *Environment) ([]exec.TypedValue, error)
}

type instantiate struct {
	name string
	m    *load.Module
}

func (i *instantiate) String() string {
	return fmt.Sprintf("module %q", i.name)
}

func (i *instantiate) Run(e *Environment) ([]exec.TypedValue, error) {
	return nil, e.instantiate(i.name, i.m)
}

// Instantiate returns an action that instantiates m under the given name.
func Instantiate(name string, m *load.Module) Action {
	return &instantiate{name: name, m: m}
}

type invoke struct {
	module string
	export string
	args   []exec.TypedValue
}

func (i *invoke) String() string {
	return "invoke " + interpreter.FormatInvocation(i.module, i.export, i.args)
}

func (i *invoke) Run(e *Environment) ([]exec.TypedValue, error) {
	m, err := e.module(i.module)
	if err != nil {
		return nil, err
	}

	result := e.executor.RunExportByName(m, i.export, i.args)
	if e.trace != nil && result.Result != exec.Ok {
		fmt.Fprintf(e.trace, "%s", interpreter.FormatCall(i.module, i.export, i.args, nil, result.Result))
	}
	return result.Values, result.Err()
}

// Invoke returns an action that calls the named function export of a module. An empty module name refers to the
// most recently instantiated module.
func Invoke(module, export string, args ...exec.TypedValue) Action {
	return &invoke{module: module, export: export, args: args}
}

type get struct {
	module string
	export string
}

func (g *get) String() string {
	if g.module == "" {
		return fmt.Sprintf("get %s", g.export)
	}
	return fmt.Sprintf("get %s.%s", g.module, g.export)
}

func (g *get) Run(e *Environment) ([]exec.TypedValue, error) {
	m, err := e.module(g.module)
	if err != nil {
		return nil, err
	}

	export := m.GetExport(g.export)
	switch {
	case export == nil:
		return nil, exec.UnknownExport
	case export.Kind != wasm.ExternalGlobal:
		return nil, exec.ExportKindMismatch
	default:
		return []exec.TypedValue{e.env.Global(export.Index).Value}, nil
	}
}

// Get returns an action that reads the named global export of a module.
func Get(module, export string) Action {
	return &get{module: module, export: export}
}
