package interpreter

import (
	"fmt"
	"maps"

	"github.com/pgavlin/wisp/exec"
	"github.com/pgavlin/wisp/wasm"
	"go.uber.org/zap"
)

// A MarkPoint records the size of each of an environment's tables along with its module bindings.
type MarkPoint struct {
	ModulesSize  uint32
	SigsSize     uint32
	FuncsSize    uint32
	MemoriesSize uint32
	TablesSize   uint32
	GlobalsSize  uint32
	IstreamSize  uint32

	moduleBindings           map[string]uint32
	registeredModuleBindings map[string]uint32
}

// size returns the marked size of the index space of the given kind.
func (mark MarkPoint) size(kind wasm.External) uint32 {
	switch kind {
	case wasm.ExternalFunction:
		return mark.FuncsSize
	case wasm.ExternalTable:
		return mark.TablesSize
	case wasm.ExternalMemory:
		return mark.MemoriesSize
	default:
		return mark.GlobalsSize
	}
}

// An Environment owns every entity visible to a program: modules, signatures, functions, memories, tables, globals
// and the istream that holds the code of every defined function. Entities are only appended; indices and references
// remain valid until the environment is reset to an earlier mark.
type Environment struct {
	modules  []Module
	sigs     []*wasm.FunctionSig
	funcs    []Func
	memories []*exec.Memory
	tables   []*exec.Table
	globals  []*exec.Global
	istream  []byte

	moduleBindings           map[string]uint32
	registeredModuleBindings map[string]uint32

	log *zap.Logger
}

// NewEnvironment creates an empty environment.
func NewEnvironment() *Environment {
	return &Environment{
		moduleBindings:           map[string]uint32{},
		registeredModuleBindings: map[string]uint32{},
		log:                      Logger(),
	}
}

// EmplaceBackFuncSignature appends a signature.
func (env *Environment) EmplaceBackFuncSignature(sig wasm.FunctionSig) (*wasm.FunctionSig, uint32) {
	s := &sig
	env.sigs = append(env.sigs, s)
	return s, uint32(len(env.sigs) - 1)
}

// EmplaceBackFunc appends a function and returns its index.
func (env *Environment) EmplaceBackFunc(f Func) uint32 {
	env.funcs = append(env.funcs, f)
	return uint32(len(env.funcs) - 1)
}

// EmplaceBackMemory appends a memory with the given limits.
func (env *Environment) EmplaceBackMemory(limits wasm.ResizableLimits) (*exec.Memory, uint32) {
	m := exec.NewMemory(limits)
	env.memories = append(env.memories, m)
	return m, uint32(len(env.memories) - 1)
}

// EmplaceBackTable appends a table with the given limits.
func (env *Environment) EmplaceBackTable(limits wasm.ResizableLimits) (*exec.Table, uint32) {
	t := exec.NewTable(limits)
	env.tables = append(env.tables, t)
	return t, uint32(len(env.tables) - 1)
}

// EmplaceBackGlobal appends a global.
func (env *Environment) EmplaceBackGlobal(value exec.TypedValue, mutable bool) (*exec.Global, uint32) {
	g := exec.NewGlobal(value, mutable)
	env.globals = append(env.globals, g)
	return g, uint32(len(env.globals) - 1)
}

// EmplaceBackModule appends a module and returns its index. The module is not bound to a name.
func (env *Environment) EmplaceBackModule(m Module) uint32 {
	env.modules = append(env.modules, m)
	return uint32(len(env.modules) - 1)
}

// AppendIstream appends code to the istream and returns the offset of its first byte.
func (env *Environment) AppendIstream(code []byte) uint32 {
	offset := uint32(len(env.istream))
	env.istream = append(env.istream, code...)
	return offset
}

func (env *Environment) IstreamSize() uint32 { return uint32(len(env.istream)) }

// Istream returns the environment's code. The returned slice must not be modified.
func (env *Environment) Istream() []byte { return env.istream }

func (env *Environment) FuncSignatureCount() uint32 { return uint32(len(env.sigs)) }
func (env *Environment) FuncCount() uint32          { return uint32(len(env.funcs)) }
func (env *Environment) GlobalCount() uint32        { return uint32(len(env.globals)) }
func (env *Environment) MemoryCount() uint32        { return uint32(len(env.memories)) }
func (env *Environment) TableCount() uint32         { return uint32(len(env.tables)) }
func (env *Environment) ModuleCount() uint32        { return uint32(len(env.modules)) }

func (env *Environment) FuncSignature(index uint32) *wasm.FunctionSig { return env.sigs[index] }
func (env *Environment) Func(index uint32) Func                      { return env.funcs[index] }
func (env *Environment) Global(index uint32) *exec.Global            { return env.globals[index] }
func (env *Environment) Memory(index uint32) *exec.Memory            { return env.memories[index] }
func (env *Environment) Table(index uint32) *exec.Table              { return env.tables[index] }
func (env *Environment) Module(index uint32) Module                  { return env.modules[index] }

// LastModule returns the most recently appended module, or nil.
func (env *Environment) LastModule() Module {
	if len(env.modules) == 0 {
		return nil
	}
	return env.modules[len(env.modules)-1]
}

// LastModuleIndex returns the index of the most recently appended module, or exec.InvalidIndex.
func (env *Environment) LastModuleIndex() uint32 {
	if len(env.modules) == 0 {
		return exec.InvalidIndex
	}
	return uint32(len(env.modules) - 1)
}

// BindModule binds a loaded module's name to its index.
func (env *Environment) BindModule(name string, index uint32) {
	env.moduleBindings[name] = index
}

// RegisterModule binds an alias under which the module's exports may be imported.
func (env *Environment) RegisterModule(alias string, index uint32) {
	env.registeredModuleBindings[alias] = index
}

// FindModuleIndex returns the index of the loaded module with the given name, or exec.InvalidIndex.
func (env *Environment) FindModuleIndex(name string) uint32 {
	if index, ok := env.moduleBindings[name]; ok {
		return index
	}
	return exec.InvalidIndex
}

// FindModule returns the loaded module with the given name, or nil.
func (env *Environment) FindModule(name string) Module {
	if index, ok := env.moduleBindings[name]; ok {
		return env.modules[index]
	}
	return nil
}

// FindRegisteredModule returns the module registered under the given alias, or nil.
func (env *Environment) FindRegisteredModule(name string) Module {
	if index, ok := env.registeredModuleBindings[name]; ok {
		return env.modules[index]
	}
	return nil
}

// FuncSignaturesAreEqual returns true if the signatures at the given indices are the same index or structurally
// equal.
func (env *Environment) FuncSignaturesAreEqual(a, b uint32) bool {
	if a == b {
		return true
	}
	return env.sigs[a].Equals(*env.sigs[b])
}

// AppendHostModule creates a host module, appends it, and registers it under name.
func (env *Environment) AppendHostModule(name string) *HostModule {
	m := NewHostModule(env, name)
	env.RegisterModule(name, env.EmplaceBackModule(m))
	return m
}

// Mark captures the current size of the environment.
func (env *Environment) Mark() MarkPoint {
	return MarkPoint{
		ModulesSize:  uint32(len(env.modules)),
		SigsSize:     uint32(len(env.sigs)),
		FuncsSize:    uint32(len(env.funcs)),
		MemoriesSize: uint32(len(env.memories)),
		TablesSize:   uint32(len(env.tables)),
		GlobalsSize:  uint32(len(env.globals)),
		IstreamSize:  uint32(len(env.istream)),

		moduleBindings:           maps.Clone(env.moduleBindings),
		registeredModuleBindings: maps.Clone(env.registeredModuleBindings),
	}
}

// ResetToMarkPoint discards every entity appended after mark was taken along with any host module exports of
// discarded entities, and restores the module bindings that were in place when mark was taken.
func (env *Environment) ResetToMarkPoint(mark MarkPoint) {
	if mark.ModulesSize > uint32(len(env.modules)) || mark.IstreamSize > uint32(len(env.istream)) {
		panic(fmt.Sprintf("mark point %+v is beyond the environment", mark))
	}

	// Bindings made since the mark may have displaced earlier ones, so both tables are restored wholesale.
	env.moduleBindings = restoreBindings(mark.moduleBindings, mark.ModulesSize)
	env.registeredModuleBindings = restoreBindings(mark.registeredModuleBindings, mark.ModulesSize)

	env.log.Debug("resetting environment",
		zap.Uint32("modules", uint32(len(env.modules))-mark.ModulesSize),
		zap.Uint32("sigs", uint32(len(env.sigs))-mark.SigsSize),
		zap.Uint32("funcs", uint32(len(env.funcs))-mark.FuncsSize),
		zap.Uint32("memories", uint32(len(env.memories))-mark.MemoriesSize),
		zap.Uint32("tables", uint32(len(env.tables))-mark.TablesSize),
		zap.Uint32("globals", uint32(len(env.globals))-mark.GlobalsSize),
		zap.Uint32("istream_bytes", uint32(len(env.istream))-mark.IstreamSize))

	for _, m := range env.modules[:mark.ModulesSize] {
		if host, ok := m.(*HostModule); ok {
			host.truncateExports(mark)
		}
	}

	env.modules = truncate(env.modules, mark.ModulesSize)
	env.sigs = truncate(env.sigs, mark.SigsSize)
	env.funcs = truncate(env.funcs, mark.FuncsSize)
	env.memories = truncate(env.memories, mark.MemoriesSize)
	env.tables = truncate(env.tables, mark.TablesSize)
	env.globals = truncate(env.globals, mark.GlobalsSize)
	env.istream = env.istream[:mark.IstreamSize]
}

// restoreBindings copies the bindings captured by a mark. A zero MarkPoint carries no bindings.
func restoreBindings(bindings map[string]uint32, modulesSize uint32) map[string]uint32 {
	restored := make(map[string]uint32, len(bindings))
	for name, index := range bindings {
		if index < modulesSize {
			restored[name] = index
		}
	}
	return restored
}

// truncate shortens s to n elements, clearing the discarded tail so that it can be collected.
func truncate[T any](s []T, n uint32) []T {
	clear(s[n:])
	return s[:n]
}
