package load

import (
	"fmt"

	"github.com/pgavlin/wisp/exec"
	"github.com/pgavlin/wisp/interpreter"
	"github.com/pgavlin/wisp/wasm"
)

// resolveImports binds each import to an export of a registered module and records the environment index of the
// imported entity in the compiler's index spaces.
func (c *compiler) resolveImports(dm *interpreter.DefinedModule, imports []Import) error {
	for _, imp := range imports {
		m := c.env.FindRegisteredModule(imp.Module)
		if m == nil {
			return &UnknownModuleError{ModuleName: imp.Module}
		}

		switch imp.Kind {
		case wasm.ExternalFunction:
			index, err := c.resolveFunc(m, imp)
			if err != nil {
				return err
			}
			c.funcs, c.numFuncImports = append(c.funcs, index), c.numFuncImports+1
			dm.FuncImports = append(dm.FuncImports, newImport(imp, index))
		case wasm.ExternalTable:
			if c.table != exec.InvalidIndex {
				return ErrMultipleTables
			}
			export, err := findExport(m, imp)
			if err != nil {
				return err
			}
			table := c.env.Table(export.Index)
			if err := checkLimits(imp, table.Size(), table.Limits()); err != nil {
				return err
			}
			c.table = export.Index
			dm.SetTableIndex(export.Index)
			dm.TableImports = append(dm.TableImports, newImport(imp, export.Index))
		case wasm.ExternalMemory:
			if c.memory != exec.InvalidIndex {
				return ErrMultipleMemories
			}
			export, err := findExport(m, imp)
			if err != nil {
				return err
			}
			memory := c.env.Memory(export.Index)
			if err := checkLimits(imp, memory.Size(), memory.Limits()); err != nil {
				return err
			}
			c.memory = export.Index
			dm.SetMemoryIndex(export.Index)
			dm.MemoryImports = append(dm.MemoryImports, newImport(imp, export.Index))
		case wasm.ExternalGlobal:
			export, err := findExport(m, imp)
			if err != nil {
				return err
			}
			if actual := c.env.Global(export.Index).Type(); actual != imp.Global {
				return &ImportTypeError{
					ModuleName: imp.Module,
					FieldName:  imp.Field,
					Reason:     fmt.Sprintf("expected global %v, got %v", imp.Global, actual),
				}
			}
			c.globals = append(c.globals, export.Index)
			dm.GlobalImports = append(dm.GlobalImports, newImport(imp, export.Index))
		default:
			return fmt.Errorf("import %q.%q has unknown kind %v", imp.Module, imp.Field, imp.Kind)
		}
	}
	return nil
}

func newImport(imp Import, index uint32) interpreter.Import {
	return interpreter.Import{ModuleName: imp.Module, FieldName: imp.Field, Kind: imp.Kind, Index: index}
}

// resolveFunc finds the function export that matches the import's name and signature. Host modules may create the
// export on demand.
func (c *compiler) resolveFunc(m interpreter.Module, imp Import) (uint32, error) {
	_, sigIndex := c.env.EmplaceBackFuncSignature(imp.Sig)
	if export := m.GetFuncExport(c.env, imp.Field, sigIndex); export != nil {
		return export.Index, nil
	}

	export, err := findExport(m, imp)
	if err != nil {
		return 0, err
	}
	actual := c.env.FuncSignature(c.env.Func(export.Index).Signature())
	return 0, &ImportTypeError{
		ModuleName: imp.Module,
		FieldName:  imp.Field,
		Reason:     fmt.Sprintf("expected signature %v, got %v", imp.Sig, actual),
	}
}

// findExport returns the export named by the import, which must have the import's kind.
func findExport(m interpreter.Module, imp Import) (*interpreter.Export, error) {
	export := m.GetExport(imp.Field)
	if export == nil {
		return nil, &UnknownImportError{ModuleName: imp.Module, FieldName: imp.Field}
	}
	if export.Kind != imp.Kind {
		return nil, &KindMismatchError{ModuleName: imp.Module, FieldName: imp.Field, Expected: imp.Kind, Actual: export.Kind}
	}
	return export, nil
}

// checkLimits verifies that an imported table or memory of the given current size and limits satisfies the import's
// declared limits.
func checkLimits(imp Import, size uint32, actual wasm.ResizableLimits) error {
	declared := imp.Limits

	var reason string
	switch {
	case size < declared.Initial:
		reason = fmt.Sprintf("actual size (%d) smaller than declared (%d)", size, declared.Initial)
	case declared.HasMax() && !actual.HasMax():
		reason = fmt.Sprintf("max size (unspecified) larger than declared (%d)", declared.Maximum)
	case declared.HasMax() && actual.Maximum > declared.Maximum:
		reason = fmt.Sprintf("max size (%d) larger than declared (%d)", actual.Maximum, declared.Maximum)
	default:
		return nil
	}
	return &ImportTypeError{ModuleName: imp.Module, FieldName: imp.Field, Reason: reason}
}
