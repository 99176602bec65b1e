package dump

import (
	"encoding/csv"
	"errors"
	"io"
	"sort"

	"github.com/jszwec/csvutil"
	"github.com/spf13/cobra"

	"github.com/pgavlin/wisp/cmd/wisp/program"
	"github.com/pgavlin/wisp/exec"
	"github.com/pgavlin/wisp/interpreter"
	"github.com/pgavlin/wisp/istream"
)

type statsRow struct {
	Opcode   string `csv:"opcode"`
	Count    int    `csv:"count"`
	Executed uint64 `csv:"executed"`
}

// staticCounts counts the instructions in the sample's code by opcode.
func staticCounts(p *program.Program) (map[istream.Opcode]int, error) {
	counts := map[istream.Opcode]int{}
	code := p.Env.Istream()
	for pc := p.Module.IstreamStart; pc < p.Module.IstreamEnd; {
		ins, err := istream.Decode(code, pc)
		if err != nil {
			return nil, err
		}
		counts[ins.Opcode]++
		pc = ins.Next
	}
	return counts, nil
}

// executedCounts runs the invocation one instruction at a time and counts the executed instructions by opcode.
func executedCounts(p *program.Program, inv *interpreter.Invocation) (map[istream.Opcode]uint64, interpreter.ExecResult) {
	counts := map[istream.Opcode]uint64{}
	code, t := p.Env.Istream(), inv.Thread()
	for !inv.Done() {
		if t.PC() < uint32(len(code)) {
			op, _ := istream.ReadOpcode(code, t.PC())
			counts[op]++
		}
		inv.Step(1)
	}
	return counts, inv.Finish()
}

func stats(w io.Writer, p *program.Program, args []string) (interpreter.ExecResult, error) {
	static, err := staticCounts(p)
	if err != nil {
		return interpreter.ExecResult{}, err
	}

	inv, _, err := p.Begin(args)
	if err != nil {
		return interpreter.ExecResult{}, err
	}
	executed, result := executedCounts(p, inv)

	rows := make([]statsRow, 0, len(static))
	for op, count := range static {
		rows = append(rows, statsRow{Opcode: op.String(), Count: count, Executed: executed[op]})
	}
	for op, n := range executed {
		if _, ok := static[op]; !ok {
			rows = append(rows, statsRow{Opcode: op.String(), Executed: n})
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Executed != rows[j].Executed {
			return rows[i].Executed > rows[j].Executed
		}
		return rows[i].Opcode < rows[j].Opcode
	})

	csvWriter := csv.NewWriter(w)
	encoder := csvutil.NewEncoder(csvWriter)
	if err := encoder.Encode(rows); err != nil {
		return result, err
	}
	csvWriter.Flush()
	return result, csvWriter.Error()
}

func StatsCommand() *cobra.Command {
	var options interpreter.ExecutorOptions

	command := &cobra.Command{
		Use:   "stats [sample] [args...]",
		Short: "Collect opcode statistics for a sample",
		Long: "Run a sample and write a CSV histogram of its opcodes: the number of times each opcode appears in the\n" +
			"sample's code and the number of times it was executed.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("expected at least one argument")
			}
			p, err := program.Load(args[0], &options)
			if err != nil {
				return err
			}

			result, err := stats(cmd.OutOrStdout(), p, args[1:])
			if err != nil {
				return err
			}
			if result.Result != exec.Ok {
				cmd.PrintErrf("%v: %v\n", p.Sample.Entry, result.Result)
				return &program.ExitError{Code: 1}
			}
			return nil
		},
	}

	program.ThreadFlags(command, &options.Thread)

	return command
}
