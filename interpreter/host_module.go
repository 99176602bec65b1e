package interpreter

import (
	"github.com/pgavlin/wisp/exec"
	"github.com/pgavlin/wisp/wasm"
)

// UnknownFuncExportFunc is called when a function export is requested that a host module does not have. It may
// append a matching export and return its export index, or return exec.InvalidIndex.
type UnknownFuncExportFunc func(env *Environment, m *HostModule, name string, sigIndex uint32) uint32

// A HostModule is a module whose entities are created by the embedder.
type HostModule struct {
	moduleBase

	env *Environment

	OnUnknownFuncExport UnknownFuncExportFunc
}

// NewHostModule creates an empty host module that appends its entities to env.
func NewHostModule(env *Environment, name string) *HostModule {
	return &HostModule{moduleBase: newModuleBase(name), env: env}
}

// GetFuncExport returns the function export with the given name and signature. If there is none, the module's
// OnUnknownFuncExport hook is given a chance to create it.
func (m *HostModule) GetFuncExport(env *Environment, name string, sigIndex uint32) *Export {
	if export := m.findFuncExport(env, name, sigIndex); export != nil {
		return export
	}
	if m.OnUnknownFuncExport == nil {
		return nil
	}
	index := m.OnUnknownFuncExport(env, m, name, sigIndex)
	if index == exec.InvalidIndex {
		return nil
	}
	return m.exports[index]
}

// AppendFuncExport appends a host function with the given signature and exports it.
func (m *HostModule) AppendFuncExport(name string, sig wasm.FunctionSig, callback HostCallback) (*HostFunc, uint32) {
	_, sigIndex := m.env.EmplaceBackFuncSignature(sig)
	return m.AppendFuncExportSig(name, sigIndex, callback)
}

// AppendFuncExportSig appends a host function whose signature is already in the environment and exports it.
func (m *HostModule) AppendFuncExportSig(name string, sigIndex uint32, callback HostCallback) (*HostFunc, uint32) {
	f := &HostFunc{SigIndex: sigIndex, ModuleName: m.name, FieldName: name, Callback: callback}
	funcIndex := m.env.EmplaceBackFunc(f)
	return f, m.AppendExport(wasm.ExternalFunction, funcIndex, name)
}

// AppendTableExport appends a table and exports it. The table becomes the module's table.
func (m *HostModule) AppendTableExport(name string, limits wasm.ResizableLimits) (*exec.Table, uint32) {
	table, tableIndex := m.env.EmplaceBackTable(limits)
	m.tableIndex = tableIndex
	return table, m.AppendExport(wasm.ExternalTable, tableIndex, name)
}

// AppendMemoryExport appends a memory and exports it. The memory becomes the module's memory.
func (m *HostModule) AppendMemoryExport(name string, limits wasm.ResizableLimits) (*exec.Memory, uint32) {
	memory, memoryIndex := m.env.EmplaceBackMemory(limits)
	m.memoryIndex = memoryIndex
	return memory, m.AppendExport(wasm.ExternalMemory, memoryIndex, name)
}

// AppendGlobalExport appends a global and exports it.
func (m *HostModule) AppendGlobalExport(name string, value exec.TypedValue, mutable bool) (*exec.Global, uint32) {
	global, globalIndex := m.env.EmplaceBackGlobal(value, mutable)
	return global, m.AppendExport(wasm.ExternalGlobal, globalIndex, name)
}
