// Package program loads samples for the wisp commands.
package program

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/pgavlin/wisp/exec"
	"github.com/pgavlin/wisp/interpreter"
	"github.com/pgavlin/wisp/load"
	"github.com/pgavlin/wisp/samples"
)

// ExitError requests that the process exit with the given status.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// A Program is a sample instantiated in its own environment.
type Program struct {
	Sample   *samples.Sample
	Env      *interpreter.Environment
	Module   *interpreter.DefinedModule
	Executor *interpreter.Executor
}

// Load instantiates the named sample in a new environment.
func Load(name string, options *interpreter.ExecutorOptions) (*Program, error) {
	s, ok := samples.Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown sample %q; run 'wisp list' to see the samples", name)
	}
	if options == nil {
		options = &interpreter.ExecutorOptions{}
	}

	env := interpreter.NewEnvironment()
	m, err := s.Instantiate(env, &load.Options{Executor: *options})
	if err != nil {
		return nil, err
	}
	return &Program{
		Sample:   s,
		Env:      env,
		Module:   m,
		Executor: interpreter.NewExecutor(env, options),
	}, nil
}

// Entry returns the export of the sample's entry function.
func (p *Program) Entry() (*interpreter.Export, error) {
	export := p.Module.GetExport(p.Sample.Entry)
	if export == nil {
		return nil, fmt.Errorf("sample %v does not export %q", p.Sample.Name, p.Sample.Entry)
	}
	return export, nil
}

// Begin parses the arguments and prepares the entry function to run. If args is empty, the sample's default
// arguments are used.
func (p *Program) Begin(args []string) (*interpreter.Invocation, []exec.TypedValue, error) {
	values, err := p.Sample.ParseArgs(args)
	if err != nil {
		return nil, nil, err
	}
	export, err := p.Entry()
	if err != nil {
		return nil, nil, err
	}
	inv, res := p.Executor.BeginFunction(export.Index, values)
	if res != exec.Ok {
		return nil, values, res
	}
	return inv, values, nil
}

// FormatCall renders a call to the entry function and its outcome.
func (p *Program) FormatCall(args []exec.TypedValue, result interpreter.ExecResult) string {
	return interpreter.FormatCall("", p.Sample.Entry, args, result.Values, result.Result)
}

// ThreadFlags registers the stack size flags on cmd.
func ThreadFlags(cmd *cobra.Command, options *interpreter.ThreadOptions) {
	cmd.Flags().Uint32Var(&options.ValueStackSize, "value-stack", interpreter.DefaultValueStackSize, "the size of the value stack, in values")
	cmd.Flags().Uint32Var(&options.CallStackSize, "call-stack", interpreter.DefaultCallStackSize, "the size of the call stack, in frames")
}

// OpenTrace opens the trace destination at path. "-" selects stdout. The returned function flushes and closes the
// destination; the trace is also flushed if the process is interrupted.
func OpenTrace(path string) (io.Writer, func() error, error) {
	if path == "-" {
		return os.Stdout, func() error { return nil }, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	w := bufio.NewWriter(f)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		for range c {
			w.Flush()
			os.Exit(-1)
		}
	}()

	return w, func() error {
		signal.Stop(c)
		if err := w.Flush(); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}, nil
}
