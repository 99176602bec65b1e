package run

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgavlin/wisp/cmd/wisp/program"
)

func execute(args ...string) (string, error) {
	var out bytes.Buffer
	cmd := Command()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	cmd.SilenceErrors, cmd.SilenceUsage = true, true
	err := cmd.Execute()
	return out.String(), err
}

func TestRun(t *testing.T) {
	out, err := execute("fib")
	require.NoError(t, err)
	assert.Equal(t, "fib(i32:20) => i32:6765\n", out)

	out, err = execute("fib", "10")
	require.NoError(t, err)
	assert.Equal(t, "fib(i32:10) => i32:55\n", out)

	out, err = execute("add", "40", "2")
	require.NoError(t, err)
	assert.Equal(t, "run(i32:40, i32:2) => i32:42\n", out)
}

func TestRunTrap(t *testing.T) {
	out, err := execute("divzero")
	assert.Equal(t, &program.ExitError{Code: 1}, err)
	assert.Equal(t, "run(i32:1, i32:0) => error: integer divide by zero\n", out)

	out, err = execute("fib", "--call-stack", "8")
	assert.Equal(t, &program.ExitError{Code: 1}, err)
	assert.Equal(t, "fib(i32:20) => error: call stack exhausted\n", out)
}

func TestRunTrace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.txt")
	_, err := execute("fib", "1", "--trace", path)
	require.NoError(t, err)

	trace, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(trace), ">>> running export \"fib\":\n")
	assert.Contains(t, string(trace), "i32.lt_u")
}

func TestRunErrors(t *testing.T) {
	_, err := execute()
	assert.EqualError(t, err, "expected at least one argument")

	_, err = execute("missing")
	assert.EqualError(t, err, `unknown sample "missing"; run 'wisp list' to see the samples`)

	_, err = execute("fib", "1", "2")
	assert.EqualError(t, err, "fib expects 1 arguments, got 2")
}
