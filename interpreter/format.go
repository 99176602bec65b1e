package interpreter

import (
	"fmt"
	"strings"

	"github.com/pgavlin/wisp/exec"
)

// FormatInvocation renders a call as module.name(args). The module prefix is omitted if module is empty.
func FormatInvocation(module, name string, args []exec.TypedValue) string {
	var b strings.Builder
	writeInvocation(&b, module, name, args)
	return b.String()
}

// FormatCall renders a call and its outcome as a single line: the invocation followed by its results, or by the
// result string if the call did not succeed.
func FormatCall(module, name string, args, results []exec.TypedValue, result exec.Result) string {
	var b strings.Builder
	writeInvocation(&b, module, name, args)
	b.WriteString(" =>")
	if result != exec.Ok {
		fmt.Fprintf(&b, " error: %v\n", result)
		return b.String()
	}
	if len(results) > 0 {
		b.WriteByte(' ')
		writeValues(&b, results)
	}
	b.WriteByte('\n')
	return b.String()
}

func writeInvocation(b *strings.Builder, module, name string, args []exec.TypedValue) {
	if module != "" {
		b.WriteString(module)
		b.WriteByte('.')
	}
	b.WriteString(name)
	b.WriteByte('(')
	writeValues(b, args)
	b.WriteByte(')')
}

func writeValues(b *strings.Builder, values []exec.TypedValue) {
	for i, v := range values {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(v.String())
	}
}
