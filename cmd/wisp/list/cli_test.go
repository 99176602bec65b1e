package list

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgavlin/wisp/samples"
)

func TestList(t *testing.T) {
	var out bytes.Buffer
	cmd := Command()
	cmd.SetOut(&out)
	cmd.SetArgs(nil)
	require.NoError(t, cmd.Execute())

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, len(samples.All()))
	assert.True(t, strings.HasPrefix(lines[0], "add "))
	assert.Contains(t, lines[0], "run(i32:2, i32:3)")
	assert.Contains(t, lines[0], "(imports env)")
}
