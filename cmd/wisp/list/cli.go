package list

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pgavlin/wisp/interpreter"
	"github.com/pgavlin/wisp/samples"
)

func Command() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the samples",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
			for _, s := range samples.All() {
				var hosts string
				if len(s.Hosts) != 0 {
					hosts = " (imports " + strings.Join(s.Hosts, ", ") + ")"
				}
				entry := interpreter.FormatInvocation("", s.Entry, s.Args)
				fmt.Fprintf(w, "%s\t%s\t%s%s\n", s.Name, entry, s.Description, hosts)
			}
			return w.Flush()
		},
	}
}
