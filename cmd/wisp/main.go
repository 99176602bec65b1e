package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pgavlin/wisp/cmd/wisp/dump"
	"github.com/pgavlin/wisp/cmd/wisp/list"
	"github.com/pgavlin/wisp/cmd/wisp/program"
	"github.com/pgavlin/wisp/cmd/wisp/run"
	"github.com/pgavlin/wisp/cmd/wisp/step"
	"github.com/pgavlin/wisp/interpreter"
	"github.com/pgavlin/wisp/load"
)

var version = "<unknown>"

func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}

func configureCLI() *cobra.Command {
	var cpuProfile string
	var memProfile string
	var verbose bool
	var logger *zap.Logger

	rootCommand := &cobra.Command{
		Use:           "wisp",
		Short:         "wisp WebAssembly interpreter",
		Long:          "wisp - an istream interpreter for WebAssembly",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLogger(verbose)
			if err != nil {
				return err
			}
			logger = l
			interpreter.SetLogger(logger)
			load.SetLogger(logger)

			if cpuProfile != "" {
				f, err := os.Create(cpuProfile)
				if err != nil {
					return err
				}
				if err := pprof.StartCPUProfile(f); err != nil {
					return err
				}
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if cpuProfile != "" {
				pprof.StopCPUProfile()
			}

			if memProfile != "" {
				f, err := os.Create(memProfile)
				if err != nil {
					return err
				}
				defer f.Close()

				runtime.GC()
				if err := pprof.WriteHeapProfile(f); err != nil {
					return err
				}
			}

			if logger != nil {
				logger.Sync()
			}
			return nil
		},
	}

	rootCommand.AddCommand(dump.Command())
	rootCommand.AddCommand(dump.StatsCommand())
	rootCommand.AddCommand(list.Command())
	rootCommand.AddCommand(run.Command())
	rootCommand.AddCommand(step.Command())

	rootCommand.PersistentFlags().StringVar(&cpuProfile, "cpu", "", "emit Go CPU profile data to this path")
	rootCommand.PersistentFlags().StringVar(&memProfile, "mem", "", "emit Go memory profile data to this path")
	rootCommand.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	rootCommand.PersistentFlags().MarkHidden("cpu")
	rootCommand.PersistentFlags().MarkHidden("mem")

	return rootCommand
}

func main() {
	rootCommand := configureCLI()

	if err := rootCommand.Execute(); err != nil {
		var exit *program.ExitError
		if errors.As(err, &exit) {
			os.Exit(exit.Code)
		}

		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
