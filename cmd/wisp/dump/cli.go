package dump

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/pgavlin/wisp/cmd/wisp/program"
	"github.com/pgavlin/wisp/interpreter"
	"github.com/pgavlin/wisp/istream"
)

// function is a defined function of a sample, in istream order.
type function struct {
	name       string
	index      uint32
	start, end uint32
}

// functions returns the sample's defined functions, each with the istream range of its code.
func functions(p *program.Program) []function {
	names := p.Sample.Module().Functions

	var fns []function
	for i := uint32(0); i < p.Env.FuncCount(); i++ {
		f, ok := p.Env.Func(i).(*interpreter.DefinedFunc)
		if !ok || f.Offset < p.Module.IstreamStart || f.Offset >= p.Module.IstreamEnd {
			continue
		}
		fns = append(fns, function{index: i, start: f.Offset})
	}
	sort.Slice(fns, func(i, j int) bool { return fns[i].start < fns[j].start })

	for i := range fns {
		if i < len(names) {
			fns[i].name = names[i].Name
		}
		if i+1 < len(fns) {
			fns[i].end = fns[i+1].start
		} else {
			fns[i].end = p.Module.IstreamEnd
		}
	}
	return fns
}

func dump(w io.Writer, p *program.Program) error {
	code := p.Env.Istream()
	for i, f := range functions(p) {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "func[%d] %s:\n", f.index, f.name)
		if err := istream.Disassemble(w, code, f.start, f.end); err != nil {
			return err
		}
	}
	return nil
}

func Command() *cobra.Command {
	return &cobra.Command{
		Use:   "dump [sample]",
		Short: "Disassemble a sample",
		Long:  "Disassemble the istream code of each of a sample's functions.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("expected exactly one argument")
			}
			p, err := program.Load(args[0], nil)
			if err != nil {
				return err
			}
			return dump(cmd.OutOrStdout(), p)
		},
	}
}
