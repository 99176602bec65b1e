package step

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pgavlin/wisp/cmd/wisp/program"
	"github.com/pgavlin/wisp/exec"
	"github.com/pgavlin/wisp/interpreter"
)

// stackRows is the number of value stack entries shown.
const stackRows = 12

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	instructionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type model struct {
	p    *program.Program
	inv  *interpreter.Invocation
	args []exec.TypedValue

	result *interpreter.ExecResult
}

func newModel(p *program.Program, inv *interpreter.Invocation, args []exec.TypedValue) *model {
	m := &model{p: p, inv: inv, args: args}
	if inv.Done() {
		m.finish()
	}
	return m
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) finish() {
	result := m.inv.Finish()
	m.result = &result
}

// step executes up to n instructions. A negative n runs the invocation to completion.
func (m *model) step(n int) {
	if m.result != nil {
		return
	}
	if n < 0 {
		m.finish()
		return
	}
	if m.inv.Step(n) {
		m.finish()
	}
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "q":
			if m.result == nil {
				m.inv.Cancel()
			}
			return m, tea.Quit
		case "s", "n":
			m.step(1)
		case "c":
			m.step(-1)
		}
	}
	return m, nil
}

func (m *model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("wisp step"))
	b.WriteString(" ")
	b.WriteString(interpreter.FormatInvocation(m.p.Sample.Name, m.p.Sample.Entry, m.args))
	b.WriteString("\n\n")

	if m.result != nil {
		b.WriteString(labelStyle.Render("result: "))
		if m.result.Result == exec.Ok {
			b.WriteString(resultStyle.Render(strings.TrimSpace(m.p.FormatCall(m.args, *m.result))))
		} else {
			b.WriteString(errorStyle.Render(m.result.Result.String()))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("q quit"))
		return b.String()
	}

	t := m.inv.Thread()
	fmt.Fprintf(&b, "%s %d    %s %d    %s %d\n", labelStyle.Render("pc:"), t.PC(), labelStyle.Render("steps:"), t.Steps(),
		labelStyle.Render("depth:"), t.CallDepth())

	var ins strings.Builder
	if err := t.Trace(&ins); err != nil {
		b.WriteString(errorStyle.Render(err.Error()))
	} else {
		b.WriteString(instructionStyle.Render(strings.TrimRight(ins.String(), "\n")))
	}
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("value stack:"))
	b.WriteString("\n")
	b.WriteString(formatStack(t))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("s/n step • c continue • q quit"))
	return b.String()
}

// formatStack renders the top of the value stack, most recent value first.
func formatStack(t *interpreter.Thread) string {
	n := t.NumValues()
	if n == 0 {
		return "  (empty)\n"
	}

	var b strings.Builder
	for i := uint32(0); i < n && i < stackRows; i++ {
		index := n - 1 - i
		v := t.ValueAt(index)
		if v.Hi != 0 {
			fmt.Fprintf(&b, "  %4d: 0x%016x%016x\n", index, v.Hi, v.Lo)
		} else {
			fmt.Fprintf(&b, "  %4d: 0x%016x (%d)\n", index, v.Lo, int64(v.Lo))
		}
	}
	if n > stackRows {
		fmt.Fprintf(&b, "  ... %d more\n", n-stackRows)
	}
	return b.String()
}
