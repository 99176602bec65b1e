package interpreter

import (
	"github.com/pgavlin/wisp/exec"
	"github.com/pgavlin/wisp/wasm"
)

// An Export binds a name to an entity in the environment.
type Export struct {
	Name string
	Kind wasm.External
	// Index is the environment index of the exported entity.
	Index uint32
}

// An Import records one resolved import of a defined module.
type Import struct {
	ModuleName string
	FieldName  string
	Kind       wasm.External
	// Index is the environment index the import resolved to.
	Index uint32
}

// A Module is either a *DefinedModule or a *HostModule.
type Module interface {
	Name() string
	Exports() []*Export
	GetExport(name string) *Export
	GetFuncExport(env *Environment, name string, sigIndex uint32) *Export
	AppendExport(kind wasm.External, itemIndex uint32, name string) uint32

	// MemoryIndex returns the environment index of the module's memory, or exec.InvalidIndex.
	MemoryIndex() uint32
	SetMemoryIndex(index uint32)
	// TableIndex returns the environment index of the module's table, or exec.InvalidIndex.
	TableIndex() uint32
	SetTableIndex(index uint32)

	base() *moduleBase
}

type moduleBase struct {
	name           string
	exports        []*Export
	exportBindings map[string][]uint32
	memoryIndex    uint32
	tableIndex     uint32
}

func newModuleBase(name string) moduleBase {
	return moduleBase{
		name:           name,
		exportBindings: map[string][]uint32{},
		memoryIndex:    exec.InvalidIndex,
		tableIndex:     exec.InvalidIndex,
	}
}

func (m *moduleBase) base() *moduleBase { return m }

func (m *moduleBase) Name() string { return m.name }

func (m *moduleBase) Exports() []*Export { return m.exports }

func (m *moduleBase) MemoryIndex() uint32 { return m.memoryIndex }

func (m *moduleBase) SetMemoryIndex(index uint32) { m.memoryIndex = index }

func (m *moduleBase) TableIndex() uint32 { return m.tableIndex }

func (m *moduleBase) SetTableIndex(index uint32) { m.tableIndex = index }

// GetExport returns the first export bound to name, or nil.
func (m *moduleBase) GetExport(name string) *Export {
	if indices, ok := m.exportBindings[name]; ok {
		return m.exports[indices[0]]
	}
	return nil
}

// AppendExport appends an export and binds its name. Several exports may share a name.
func (m *moduleBase) AppendExport(kind wasm.External, itemIndex uint32, name string) uint32 {
	index := uint32(len(m.exports))
	m.exports = append(m.exports, &Export{Name: name, Kind: kind, Index: itemIndex})
	m.exportBindings[name] = append(m.exportBindings[name], index)
	return index
}

// findFuncExport returns the function export bound to name whose signature matches sigIndex.
func (m *moduleBase) findFuncExport(env *Environment, name string, sigIndex uint32) *Export {
	for _, index := range m.exportBindings[name] {
		export := m.exports[index]
		if export.Kind != wasm.ExternalFunction {
			continue
		}
		if env.FuncSignaturesAreEqual(env.Func(export.Index).Signature(), sigIndex) {
			return export
		}
	}
	return nil
}

// truncateExports removes the trailing exports whose entities were appended after mark was taken.
func (m *moduleBase) truncateExports(mark MarkPoint) {
	for len(m.exports) > 0 {
		last := len(m.exports) - 1
		export := m.exports[last]
		if export.Index < mark.size(export.Kind) {
			break
		}

		m.exports[last], m.exports = nil, m.exports[:last]
		if bindings := m.exportBindings[export.Name]; len(bindings) > 1 {
			m.exportBindings[export.Name] = bindings[:len(bindings)-1]
		} else {
			delete(m.exportBindings, export.Name)
		}
	}
	if m.memoryIndex != exec.InvalidIndex && m.memoryIndex >= mark.MemoriesSize {
		m.memoryIndex = exec.InvalidIndex
	}
	if m.tableIndex != exec.InvalidIndex && m.tableIndex >= mark.TablesSize {
		m.tableIndex = exec.InvalidIndex
	}
}

// A DefinedModule is a module whose functions live in the environment's istream.
type DefinedModule struct {
	moduleBase

	FuncImports   []Import
	TableImports  []Import
	MemoryImports []Import
	GlobalImports []Import

	// StartFuncIndex is the environment index of the start function, or exec.InvalidIndex.
	StartFuncIndex uint32

	// IstreamStart and IstreamEnd bound the module's code in the istream.
	IstreamStart uint32
	IstreamEnd   uint32
}

// NewDefinedModule creates an empty defined module.
func NewDefinedModule(name string) *DefinedModule {
	return &DefinedModule{moduleBase: newModuleBase(name), StartFuncIndex: exec.InvalidIndex}
}

// GetFuncExport returns the function export with the given name and signature, or nil.
func (m *DefinedModule) GetFuncExport(env *Environment, name string, sigIndex uint32) *Export {
	return m.findFuncExport(env, name, sigIndex)
}
