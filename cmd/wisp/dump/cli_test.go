package dump

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgavlin/wisp/cmd/wisp/program"
)

func execute(cmd *cobra.Command, args ...string) (string, error) {
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	cmd.SilenceErrors, cmd.SilenceUsage = true, true
	err := cmd.Execute()
	return out.String(), err
}

func TestDump(t *testing.T) {
	out, err := execute(Command(), "dispatch")
	require.NoError(t, err)

	for _, name := range []string{"double", "square", "negate", "run"} {
		assert.Contains(t, out, "] "+name+":\n")
	}
	assert.Contains(t, out, "call_indirect")
	assert.Contains(t, out, "i32.shl")
	assert.Contains(t, out, "return")
}

func TestFunctions(t *testing.T) {
	p, err := program.Load("dispatch", nil)
	require.NoError(t, err)

	fns := functions(p)
	require.Len(t, fns, 4)
	assert.Equal(t, p.Module.IstreamStart, fns[0].start)
	assert.Equal(t, p.Module.IstreamEnd, fns[3].end)
	for i := 1; i < len(fns); i++ {
		assert.Equal(t, fns[i-1].end, fns[i].start)
	}
}

func TestStats(t *testing.T) {
	out, err := execute(StatsCommand(), "fac", "5")
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.NotEmpty(t, records)
	assert.Equal(t, []string{"opcode", "count", "executed"}, records[0])

	rows := map[string][]string{}
	for _, r := range records[1:] {
		rows[r[0]] = r[1:]
	}
	// The loop body runs four times; the multiplication appears once in the code.
	assert.Equal(t, []string{"1", "4"}, rows["i64.mul"])
	assert.Equal(t, []string{"1", "1"}, rows["return"])
}

func TestStatsTrap(t *testing.T) {
	out, err := execute(StatsCommand(), "divzero")
	assert.Equal(t, &program.ExitError{Code: 1}, err)
	assert.Contains(t, out, "run: integer divide by zero\n")
	assert.Contains(t, out, "i32.div_s,1,1\n")
}
