package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/yourusername/finishline/internal/odds"
)

var parseOddsCmd = &cobra.Command{
	Use:   "parse-odds ODDS...",
	Short: "Show how odds strings are read",
	Long:  `Parses each odds string and prints its notation, decimal price, implied probability and tote fraction.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "RAW\tKIND\tDECIMAL\tIMPLIED\tTOTE")
		for _, raw := range args {
			q, ok := odds.Parse(raw)
			if !ok {
				fmt.Fprintf(tw, "%q\tabsent\t-\t-\t-\n", raw)
				continue
			}
			fmt.Fprintf(tw, "%q\t%s\t%.4f\t%.4f\t%s\n", raw, q.Kind, q.Decimal, q.Implied, odds.FormatFractional(q.Decimal))
		}
		return tw.Flush()
	},
}
