package testing

import (
	"fmt"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/pgavlin/wisp/exec"
	"github.com/pgavlin/wisp/interpreter"
	"github.com/pgavlin/wisp/load"
	"go.uber.org/zap"
)

// Options configures a test Environment.
type Options struct {
	// Output receives the output of the spectest print functions.
	Output io.Writer
	// Trace, if set, receives an instruction trace of every invocation.
	Trace io.Writer
	// Ignore lists failure messages that are logged rather than reported as errors.
	Ignore []string
}

// An Environment runs conformance commands against a single interpreter environment that has the spectest module
// registered.
type Environment struct {
	env      *interpreter.Environment
	executor *interpreter.Executor
	spectest *interpreter.HostModule
	trace    io.Writer

	modules map[string]*interpreter.DefinedModule
	ignore  map[string]bool
	log     *zap.Logger
}

// NewEnvironment creates a new test environment.
func NewEnvironment(options *Options) *Environment {
	if options == nil {
		options = &Options{}
	}

	env := interpreter.NewEnvironment()
	e := &Environment{
		env:      env,
		executor: interpreter.NewExecutor(env, &interpreter.ExecutorOptions{Trace: options.Trace}),
		spectest: NewSpecTest(env, options.Output),
		trace:    options.Trace,
		modules:  map[string]*interpreter.DefinedModule{},
		ignore:   map[string]bool{},
		log:      Logger(),
	}
	for _, msg := range options.Ignore {
		e.ignore[msg] = true
	}
	return e
}

// Interpreter returns the underlying interpreter environment.
func (e *Environment) Interpreter() *interpreter.Environment {
	return e.env
}

// SpecTest returns the spectest host module.
func (e *Environment) SpecTest() *interpreter.HostModule {
	return e.spectest
}

// Module returns the module instantiated under the given name. The empty name refers to the most recently
// instantiated module.
func (e *Environment) Module(name string) *interpreter.DefinedModule {
	return e.modules[name]
}

func (e *Environment) module(name string) (*interpreter.DefinedModule, error) {
	m, ok := e.modules[name]
	if !ok {
		if name == "" {
			return nil, fmt.Errorf("no module has been instantiated")
		}
		return nil, fmt.Errorf("unknown module %q", name)
	}
	return m, nil
}

func (e *Environment) instantiate(name string, def *load.Module) error {
	m, err := load.InstantiateWithOptions(e.env, name, def, &load.Options{
		Executor: interpreter.ExecutorOptions{Trace: e.trace},
	})
	if err != nil {
		return err
	}

	e.modules[""], e.modules[name] = m, m
	return nil
}

func (e *Environment) errorf(t *testing.T, msg string, args ...interface{}) {
	t.Helper()

	msg = fmt.Sprintf(msg, args...)
	if e.ignore[msg] {
		t.Logf("ignored: %s", msg)
	} else {
		t.Error(msg)
	}
}

// Run runs an action and reports an error if it fails.
func (e *Environment) Run(t *testing.T, action Action) []exec.TypedValue {
	t.Helper()

	results, err := action.Run(e)
	if err != nil {
		e.errorf(t, "%v: unexpected error: %v", action, err)
	}
	return results
}

// Instantiate instantiates a module under the given name and reports an error if it fails.
func (e *Environment) Instantiate(t *testing.T, name string, m *load.Module) *interpreter.DefinedModule {
	t.Helper()

	e.Run(t, Instantiate(name, m))
	return e.modules[name]
}

// Register makes the exports of the named module importable under alias.
func (e *Environment) Register(t *testing.T, alias, module string) {
	t.Helper()

	e.log.Debug("register", zap.String("alias", alias), zap.String("module", module))

	m, err := e.module(module)
	if err != nil {
		e.errorf(t, "register %q: %v", alias, err)
		return
	}
	e.env.RegisterModule(alias, e.env.FindModuleIndex(m.Name()))
}

// AssertReturn runs an action and checks its results. Each expected value must be an exec.TypedValue or a NaN.
func (e *Environment) AssertReturn(t *testing.T, action Action, expected ...interface{}) {
	t.Helper()

	e.log.Debug("assert_return", zap.Stringer("action", action))

	results, err := action.Run(e)
	if err != nil {
		e.errorf(t, "assert_return: %v: %v", action, err)
		return
	}
	if len(results) != len(expected) {
		e.errorf(t, "assert_return: %v: expected %v results, got %v", action, len(expected), len(results))
		return
	}
	for i, v := range expected {
		if !isEqual(v, results[i]) {
			e.errorf(t, "assert_return: %v: expected %v, got %v", action, expected, results)
			return
		}
	}
}

// AssertTrap runs an action and checks that it traps with the given message.
func (e *Environment) AssertTrap(t *testing.T, action Action, failure string) {
	t.Helper()

	e.log.Debug("assert_trap", zap.Stringer("action", action), zap.String("failure", failure))

	_, err := action.Run(e)
	switch {
	case err == nil:
		e.errorf(t, "assert_trap: %v: action did not trap", action)
	case err.Error() != failure:
		e.errorf(t, "assert_trap: %v: expected %v, got %v", action, failure, err)
	}
}

// AssertExhaustion runs an action and checks that it exhausts a stack. If failure is not empty, the trap message must
// match it.
func (e *Environment) AssertExhaustion(t *testing.T, action Action, failure string) {
	t.Helper()

	e.log.Debug("assert_exhaustion", zap.Stringer("action", action), zap.String("failure", failure))

	_, err := action.Run(e)
	switch {
	case err == nil:
		e.errorf(t, "assert_exhaustion: %v: action did not trap", action)
	case err != exec.TrapValueStackExhausted && err != exec.TrapCallStackExhausted:
		e.errorf(t, "assert_exhaustion: %v: expected stack exhaustion, got %v", action, err)
	case failure != "" && err.Error() != failure:
		e.errorf(t, "assert_exhaustion: %v: expected %v, got %v", action, failure, err)
	}
}

// AssertUnlinkable checks that a module fails to link with an error containing the given message and that the
// failed instantiation leaves the environment unchanged.
func (e *Environment) AssertUnlinkable(t *testing.T, m *load.Module, failure string) {
	t.Helper()

	e.log.Debug("assert_unlinkable", zap.String("failure", failure))

	before := e.env.Mark()
	_, err := load.Instantiate(e.env, "", m)
	switch {
	case err == nil:
		e.errorf(t, "assert_unlinkable: module linked successfully")
		return
	case !strings.Contains(err.Error(), failure):
		e.errorf(t, "assert_unlinkable: expected %v, got %v", failure, err)
	}
	if after := e.env.Mark(); !reflect.DeepEqual(after, before) {
		e.errorf(t, "assert_unlinkable: environment changed from %+v to %+v", before, after)
	}
}
