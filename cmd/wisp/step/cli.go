package step

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pgavlin/wisp/cmd/wisp/program"
	"github.com/pgavlin/wisp/exec"
	"github.com/pgavlin/wisp/interpreter"
)

func Command() *cobra.Command {
	var options interpreter.ExecutorOptions

	command := &cobra.Command{
		Use:   "step [sample] [args...]",
		Short: "Step through a sample",
		Long: "Step through a sample one instruction at a time. If stdout is not a terminal, the sample is run with\n" +
			"tracing enabled instead.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("expected at least one argument")
			}

			interactive := term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stdin.Fd()))
			if !interactive {
				options.Trace = cmd.OutOrStdout()
			}

			p, err := program.Load(args[0], &options)
			if err != nil {
				return err
			}
			inv, values, err := p.Begin(args[1:])
			if err != nil {
				return err
			}

			if !interactive {
				result := inv.Finish()
				fmt.Fprint(cmd.OutOrStdout(), p.FormatCall(values, result))
				if result.Result != exec.Ok {
					return &program.ExitError{Code: 1}
				}
				return nil
			}

			m := newModel(p, inv, values)
			if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
				return err
			}
			if m.result == nil {
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), p.FormatCall(values, *m.result))
			if m.result.Result != exec.Ok {
				return &program.ExitError{Code: 1}
			}
			return nil
		},
	}

	program.ThreadFlags(command, &options.Thread)

	return command
}
