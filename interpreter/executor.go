package interpreter

import (
	"fmt"
	"io"

	"github.com/pgavlin/wisp/exec"
	"github.com/pgavlin/wisp/wasm"
	"go.uber.org/zap"
)

// ExecResult is the outcome of running a function.
type ExecResult struct {
	Result exec.Result
	// Values holds the function's results if Result is Ok.
	Values []exec.TypedValue
}

// Err returns nil if the function ran to completion and the result otherwise.
func (r ExecResult) Err() error {
	if r.Result == exec.Ok {
		return nil
	}
	return r.Result
}

// ExecutorOptions configures an Executor.
type ExecutorOptions struct {
	Thread ThreadOptions
	// Trace, if set, receives a line for every executed instruction.
	Trace io.Writer
	// Logger overrides the package logger.
	Logger *zap.Logger
}

// An Executor runs functions in an environment on a single thread.
type Executor struct {
	env    *Environment
	thread *Thread
	trace  io.Writer
	log    *zap.Logger
}

// NewExecutor creates an executor for env.
func NewExecutor(env *Environment, options *ExecutorOptions) *Executor {
	if options == nil {
		options = &ExecutorOptions{}
	}
	log := options.Logger
	if log == nil {
		log = Logger()
	}
	return &Executor{
		env:    env,
		thread: NewThread(env, &options.Thread),
		trace:  options.Trace,
		log:    log,
	}
}

// Thread returns the executor's thread.
func (e *Executor) Thread() *Thread {
	return e.thread
}

// An Invocation is a function call in progress.
type Invocation struct {
	e         *Executor
	funcIndex uint32
	sig       *wasm.FunctionSig
	result    exec.Result
	done      bool
}

func checkArgs(sig *wasm.FunctionSig, args []exec.TypedValue) bool {
	if len(args) != len(sig.ParamTypes) {
		return false
	}
	for i, arg := range args {
		if arg.Type != sig.ParamTypes[i] {
			return false
		}
	}
	return true
}

// BeginFunction pushes the arguments for a call to the given function and prepares the thread to run it. Host
// functions run to completion immediately.
func (e *Executor) BeginFunction(funcIndex uint32, args []exec.TypedValue) (*Invocation, exec.Result) {
	f := e.env.Func(funcIndex)
	sig := e.env.FuncSignature(f.Signature())

	e.log.Debug("running function", zap.Uint32("func", funcIndex), zap.Stringers("args", args))

	if !checkArgs(sig, args) {
		return nil, exec.ArgumentTypeMismatch
	}
	for _, arg := range args {
		if res := e.thread.Push(arg.Value); res != exec.Ok {
			e.thread.Reset()
			return nil, res
		}
	}

	inv := &Invocation{e: e, funcIndex: funcIndex, sig: sig}
	switch f := f.(type) {
	case *HostFunc:
		inv.result, inv.done = e.thread.CallHost(f), true
	case *DefinedFunc:
		e.thread.SetPC(f.Offset)
	default:
		panic(fmt.Sprintf("unexpected function type %T", f))
	}
	return inv, exec.Ok
}

// Thread returns the thread running the invocation.
func (inv *Invocation) Thread() *Thread {
	return inv.e.thread
}

// Done returns true once the invocation has returned or trapped.
func (inv *Invocation) Done() bool {
	return inv.done
}

// Step executes up to n instructions and reports whether the invocation has finished. If the executor traces, each
// instruction is traced before it runs.
func (inv *Invocation) Step(n int) bool {
	if inv.done {
		return true
	}

	t := inv.e.thread
	res := exec.Ok
	if inv.e.trace != nil {
		for i := 0; i < n && res == exec.Ok; i++ {
			if err := t.Trace(inv.e.trace); err != nil {
				inv.e.log.Debug("trace failed", zap.Error(err))
			}
			res = t.Run(1)
		}
	} else {
		res = t.Run(n)
	}

	switch res {
	case exec.Ok:
		return false
	case exec.Returned:
		res = exec.Ok
	default:
		inv.e.log.Debug("trapped", zap.Stringer("result", res), zap.Uint32("pc", t.PC()))
	}
	inv.result, inv.done = res, true
	return true
}

func (inv *Invocation) batchSize() int {
	if inv.e.trace != nil {
		return 1
	}
	return 1000
}

// Finish runs the invocation to completion, collects its results, and resets the thread.
func (inv *Invocation) Finish() ExecResult {
	for !inv.Step(inv.batchSize()) {
	}

	t := inv.e.thread
	defer t.Reset()

	result := ExecResult{Result: inv.result}
	if inv.result == exec.Ok {
		result.Values = make([]exec.TypedValue, len(inv.sig.ReturnTypes))
		for i, typ := range inv.sig.ReturnTypes {
			result.Values[i] = exec.TypedValue{Type: typ, Value: t.ValueAt(uint32(i))}
		}
	}

	inv.e.log.Debug("function finished",
		zap.Uint32("func", inv.funcIndex),
		zap.Stringer("result", inv.result),
		zap.Uint64("steps", t.Steps()))
	return result
}

// Cancel abandons the invocation and resets the thread.
func (inv *Invocation) Cancel() {
	inv.done = true
	inv.e.thread.Reset()
}

// RunFunction calls the function with the given environment index.
func (e *Executor) RunFunction(funcIndex uint32, args []exec.TypedValue) ExecResult {
	inv, res := e.BeginFunction(funcIndex, args)
	if res != exec.Ok {
		e.thread.Reset()
		return ExecResult{Result: res}
	}
	return inv.Finish()
}

// RunStartFunction runs the module's start function, if it has one.
func (e *Executor) RunStartFunction(m *DefinedModule) ExecResult {
	if m.StartFuncIndex == exec.InvalidIndex {
		return ExecResult{Result: exec.Ok}
	}
	if e.trace != nil {
		fmt.Fprintf(e.trace, ">>> running start function:\n")
	}
	return e.RunFunction(m.StartFuncIndex, nil)
}

// RunExport calls an exported function.
func (e *Executor) RunExport(export *Export, args []exec.TypedValue) ExecResult {
	if export.Kind != wasm.ExternalFunction {
		return ExecResult{Result: exec.ExportKindMismatch}
	}
	if e.trace != nil {
		fmt.Fprintf(e.trace, ">>> running export %q:\n", export.Name)
	}
	return e.RunFunction(export.Index, args)
}

// RunExportByName calls the module's function export with the given name.
func (e *Executor) RunExportByName(m Module, name string, args []exec.TypedValue) ExecResult {
	export := m.GetExport(name)
	if export == nil {
		return ExecResult{Result: exec.UnknownExport}
	}
	if export.Kind != wasm.ExternalFunction {
		return ExecResult{Result: exec.ExportKindMismatch}
	}
	return e.RunExport(export, args)
}
