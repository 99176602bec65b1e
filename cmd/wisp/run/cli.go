package run

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pgavlin/wisp/cmd/wisp/program"
	"github.com/pgavlin/wisp/exec"
	"github.com/pgavlin/wisp/interpreter"
)

func Command() *cobra.Command {
	var options interpreter.ExecutorOptions
	var trace string

	command := &cobra.Command{
		Use:   "run [sample] [args...]",
		Short: "Run a sample",
		Long: "Run a sample's entry function and print its results. If no arguments are given, the sample's default\n" +
			"arguments are used. A trap is reported with exit status 1.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("expected at least one argument")
			}

			if trace != "" {
				w, closer, err := program.OpenTrace(trace)
				if err != nil {
					return err
				}
				defer closer()
				options.Trace = w
			}

			p, err := program.Load(args[0], &options)
			if err != nil {
				return err
			}
			values, err := p.Sample.ParseArgs(args[1:])
			if err != nil {
				return err
			}
			export, err := p.Entry()
			if err != nil {
				return err
			}

			result := p.Executor.RunExport(export, values)
			return report(cmd.OutOrStdout(), p, values, result)
		},
	}

	program.ThreadFlags(command, &options.Thread)
	command.Flags().StringVarP(&trace, "trace", "t", "", "write an execution trace to the specified file, or - for stdout")

	return command
}

func report(w io.Writer, p *program.Program, args []exec.TypedValue, result interpreter.ExecResult) error {
	if _, err := fmt.Fprint(w, p.FormatCall(args, result)); err != nil {
		return err
	}
	if result.Result != exec.Ok {
		return &program.ExitError{Code: 1}
	}
	return nil
}
