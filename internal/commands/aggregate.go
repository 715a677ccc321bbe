package benchplot

import (
	"fmt"

	"github.com/mwiater/benchplot/internal/logging"
	"github.com/mwiater/benchplot/internal/timing"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// aggregateCmd averages the latencies of the numbered run files and appends
// the means to the cumulative summary file.
var aggregateCmd = &cobra.Command{
	Use:   "aggregate",
	Short: "Average sleep, interrupt and scheduling latency over run files",
	Long: `Read each run file (five integer timestamps, one per line), compute the
sleep (v5-v1), interrupt (v4-v3) and scheduling (v5-v4) latencies, and average
them over every file that parsed. Missing or malformed files are skipped. The
three means are printed and appended to the summary file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig().Aggregate

		report, err := timing.Aggregate(timing.Options{
			Dir:    cfg.Dir,
			Inputs: cfg.Inputs,
			Out:    cmd.OutOrStdout(),
		})
		if err != nil {
			return fmt.Errorf("aggregate %d inputs in %s: %w", len(cfg.Inputs), cfg.Dir, err)
		}

		if err := timing.AppendMeans(cfg.OutputFile, report.Means); err != nil {
			return err
		}
		logging.LogEvent("[AGGREGATE] appended means of %d/%d runs to %s", report.Count, len(cfg.Inputs), cfg.OutputFile)
		return nil
	},
}

func init() {
	aggregateCmd.Flags().String("dir", ".", "directory holding the run files")
	aggregateCmd.Flags().String("output", "jack_total.csv", "summary file the means are appended to")

	_ = viper.BindPFlag("aggregate.dir", aggregateCmd.Flags().Lookup("dir"))
	_ = viper.BindPFlag("aggregate.output_file", aggregateCmd.Flags().Lookup("output"))

	rootCmd.AddCommand(aggregateCmd)
}
