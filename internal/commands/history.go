package benchplot

import (
	"fmt"

	"github.com/mwiater/benchplot/internal/timing"
	"github.com/spf13/cobra"
)

// historyCmd prints the means recorded by every past aggregate run.
var historyCmd = &cobra.Command{
	Use:   "history [summary.csv]",
	Short: "Show the means accumulated in the summary file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := GetConfig().Aggregate.OutputFile
		if len(args) == 1 {
			path = args[0]
		}

		runs, err := timing.ReadSummary(path)
		if err != nil {
			return err
		}
		for i, m := range runs {
			fmt.Fprintf(cmd.OutOrStdout(), "run %d\t1. %s\t2. %s\t3. %s\n", i+1,
				timing.FormatMean(m.Sleep), timing.FormatMean(m.Interrupt), timing.FormatMean(m.Schedule))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
