package load

import (
	"fmt"

	"github.com/pgavlin/wisp/exec"
	"github.com/pgavlin/wisp/interpreter"
	"github.com/pgavlin/wisp/istream"
	"github.com/pgavlin/wisp/wasm"
	"go.uber.org/zap"
)

// Options configures instantiation.
type Options struct {
	// Executor configures the executor that runs the module's start function.
	Executor interpreter.ExecutorOptions
	// SkipStart suppresses the start function.
	SkipStart bool
	// Logger overrides the package logger.
	Logger *zap.Logger
}

type compiler struct {
	env *interpreter.Environment
	b   *istream.Builder

	// funcs and globals map module indices to environment indices.
	funcs          []uint32
	globals        []uint32
	numFuncImports uint32
	funcLabels     []istream.Label

	table  uint32
	memory uint32

	sigs map[string]uint32
}

// sigIndex returns the environment index of a signature appended for this module.
func (c *compiler) sigIndex(sig wasm.FunctionSig) uint32 {
	key := sig.String()
	if index, ok := c.sigs[key]; ok {
		return index
	}
	_, index := c.env.EmplaceBackFuncSignature(sig)
	c.sigs[key] = index
	return index
}

// Instantiate instantiates a module in env and binds it to name.
func Instantiate(env *interpreter.Environment, name string, m *Module) (*interpreter.DefinedModule, error) {
	return InstantiateWithOptions(env, name, m, nil)
}

// InstantiateWithOptions instantiates a module in env and binds it to name. Instantiation is transactional: if it
// fails, every entity appended to env is discarded.
func InstantiateWithOptions(env *interpreter.Environment, name string, m *Module, options *Options) (*interpreter.DefinedModule, error) {
	if options == nil {
		options = &Options{}
	}
	log := options.Logger
	if log == nil {
		log = Logger()
	}

	mark := env.Mark()
	dm, err := instantiate(env, name, m)
	if err == nil && !options.SkipStart {
		result := interpreter.NewExecutor(env, &options.Executor).RunStartFunction(dm)
		if result.Result != exec.Ok {
			err = fmt.Errorf("%w: %v", ErrStartFunctionTrapped, result.Result)
		}
	}
	if err != nil {
		log.Debug("rolling back module", zap.String("module", name), zap.Error(err))
		env.ResetToMarkPoint(mark)
		return nil, fmt.Errorf("instantiating module %q: %w", name, err)
	}

	log.Debug("instantiated module",
		zap.String("module", name),
		zap.Int("funcs", len(m.Functions)),
		zap.Uint32("istream_bytes", dm.IstreamEnd-dm.IstreamStart))
	return dm, nil
}

func instantiate(env *interpreter.Environment, name string, m *Module) (*interpreter.DefinedModule, error) {
	dm := interpreter.NewDefinedModule(name)
	c := &compiler{
		env:    env,
		b:      istream.NewBuilder(env.IstreamSize()),
		table:  exec.InvalidIndex,
		memory: exec.InvalidIndex,
		sigs:   map[string]uint32{},
	}

	if err := c.resolveImports(dm, m.Imports); err != nil {
		return nil, err
	}

	defined := make([]*interpreter.DefinedFunc, len(m.Functions))
	for i, fn := range m.Functions {
		f := &interpreter.DefinedFunc{SigIndex: c.sigIndex(fn.Sig)}
		defined[i] = f
		c.funcs = append(c.funcs, env.EmplaceBackFunc(f))
		c.funcLabels = append(c.funcLabels, c.b.NewLabel())
	}

	if m.Table != nil {
		if c.table != exec.InvalidIndex {
			return nil, ErrMultipleTables
		}
		_, c.table = env.EmplaceBackTable(*m.Table)
		dm.SetTableIndex(c.table)
	}
	if m.Memory != nil {
		if c.memory != exec.InvalidIndex {
			return nil, ErrMultipleMemories
		}
		_, c.memory = env.EmplaceBackMemory(*m.Memory)
		dm.SetMemoryIndex(c.memory)
	}

	for i, g := range m.Globals {
		// Initializers may only refer to globals that precede them.
		v, err := g.Init.eval(env, c.globals)
		if err != nil {
			return nil, fmt.Errorf("global %d: %w", i, err)
		}
		if v.Type != g.Type.Type {
			return nil, fmt.Errorf("global %d: %w", i, &InitExprTypeError{Expected: g.Type.Type, Actual: v.Type})
		}
		_, index := env.EmplaceBackGlobal(v, g.Type.Mutable)
		c.globals = append(c.globals, index)
	}

	dm.IstreamStart = c.b.Offset()
	for i, fn := range m.Functions {
		if err := c.compileFunction(defined[i], c.funcLabels[i], fn); err != nil {
			return nil, fmt.Errorf("function %d (%s): %w", c.numFuncImports+uint32(i), fn.Name, err)
		}
	}
	code, err := c.b.Bytes()
	if err != nil {
		return nil, err
	}
	env.AppendIstream(code)
	dm.IstreamEnd = env.IstreamSize()
	if err := istream.Check(env.Istream(), dm.IstreamStart, dm.IstreamEnd); err != nil {
		return nil, fmt.Errorf("generated code is malformed: %w", err)
	}

	for _, e := range m.Exports {
		index, err := c.exportIndex(e)
		if err != nil {
			return nil, fmt.Errorf("export %q: %w", e.Name, err)
		}
		dm.AppendExport(e.Kind, index, e.Name)
	}

	if err := c.initSegments(m); err != nil {
		return nil, err
	}

	if m.Start != nil {
		if *m.Start >= uint32(len(c.funcs)) {
			return nil, &IndexError{Space: "function", Index: *m.Start}
		}
		dm.StartFuncIndex = c.funcs[*m.Start]
	}

	env.BindModule(name, env.EmplaceBackModule(dm))
	return dm, nil
}

func (c *compiler) compileFunction(f *interpreter.DefinedFunc, label istream.Label, fn Function) error {
	c.b.Bind(label)
	f.Offset = c.b.Offset()
	f.LocalCount = uint32(len(fn.Locals))
	f.LocalDeclCount = localDeclCount(fn.Locals)
	f.ParamAndLocalTypes = append(append([]wasm.ValueType(nil), fn.Sig.ParamTypes...), fn.Locals...)

	if f.LocalCount > 0 {
		c.b.OpU32(istream.OpInterpAlloca, f.LocalCount)
	}

	sig := c.env.FuncSignature(f.SigIndex)
	b := newFunctionBuilder(c, sig, uint32(len(f.ParamAndLocalTypes)))
	if fn.Body != nil {
		fn.Body(b)
	}
	b.finish()
	return b.Err()
}

// localDeclCount returns the number of declaration groups needed to declare locals, one per run of equal types.
func localDeclCount(locals []wasm.ValueType) uint32 {
	count := uint32(0)
	for i, t := range locals {
		if i == 0 || t != locals[i-1] {
			count++
		}
	}
	return count
}

func (c *compiler) exportIndex(e Export) (uint32, error) {
	switch e.Kind {
	case wasm.ExternalFunction:
		if e.Index >= uint32(len(c.funcs)) {
			return 0, &IndexError{Space: "function", Index: e.Index}
		}
		return c.funcs[e.Index], nil
	case wasm.ExternalGlobal:
		if e.Index >= uint32(len(c.globals)) {
			return 0, &IndexError{Space: "global", Index: e.Index}
		}
		return c.globals[e.Index], nil
	case wasm.ExternalTable:
		if e.Index != 0 || c.table == exec.InvalidIndex {
			return 0, &IndexError{Space: "table", Index: e.Index}
		}
		return c.table, nil
	case wasm.ExternalMemory:
		if e.Index != 0 || c.memory == exec.InvalidIndex {
			return 0, &IndexError{Space: "memory", Index: e.Index}
		}
		return c.memory, nil
	default:
		return 0, fmt.Errorf("unknown export kind %v", e.Kind)
	}
}

// initSegments checks that every segment fits before any of them is applied, so a failure leaves imported tables and
// memories untouched.
func (c *compiler) initSegments(m *Module) error {
	elemOffsets := make([]uint32, len(m.Elements))
	for i, seg := range m.Elements {
		if c.table == exec.InvalidIndex {
			return ErrNoTable
		}
		offset, err := seg.Offset.evalI32(c.env, c.globals)
		if err != nil {
			return fmt.Errorf("element segment %d: %w", i, err)
		}
		if uint64(offset)+uint64(len(seg.Functions)) > uint64(c.env.Table(c.table).Size()) {
			return fmt.Errorf("element segment %d: %w", i, ErrElementSegmentDoesNotFit)
		}
		for _, f := range seg.Functions {
			if f >= uint32(len(c.funcs)) {
				return fmt.Errorf("element segment %d: %w", i, &IndexError{Space: "function", Index: f})
			}
		}
		elemOffsets[i] = offset
	}

	dataOffsets := make([]uint32, len(m.Data))
	for i, seg := range m.Data {
		if c.memory == exec.InvalidIndex {
			return ErrNoMemory
		}
		offset, err := seg.Offset.evalI32(c.env, c.globals)
		if err != nil {
			return fmt.Errorf("data segment %d: %w", i, err)
		}
		if uint64(offset)+uint64(len(seg.Data)) > c.env.Memory(c.memory).Len() {
			return fmt.Errorf("data segment %d: %w", i, ErrDataSegmentDoesNotFit)
		}
		dataOffsets[i] = offset
	}

	for i, seg := range m.Elements {
		entries := c.env.Table(c.table).Entries()
		for j, f := range seg.Functions {
			entries[elemOffsets[i]+uint32(j)] = c.funcs[f]
		}
	}
	for i, seg := range m.Data {
		copy(c.env.Memory(c.memory).Bytes()[dataOffsets[i]:], seg.Data)
	}
	return nil
}
