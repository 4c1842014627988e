package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hupe1980/fastcrc"
)

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lists the catalog algorithms and their parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printCatalog(cmd, fastcrc.Algorithms())
		},
	}
}

func printCatalog(cmd *cobra.Command, algs []fastcrc.Algorithm) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tWIDTH\tPOLY\tINIT\tREFIN\tREFOUT\tXOROUT\tCHECK\tALIASES")
	for _, a := range algs {
		w := hexWidth(a)
		fmt.Fprintf(tw, "%s\t%d\t0x%0*X\t0x%0*X\t%t\t%t\t0x%0*X\t0x%0*X\t%s\n",
			a.Name, a.Width, w, a.Poly, w, a.Init, a.RefIn, a.RefOut, w, a.XorOut, w, a.Check,
			strings.Join(a.Aliases, ","))
	}
	return tw.Flush()
}
