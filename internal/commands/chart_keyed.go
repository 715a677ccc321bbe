package benchplot

import (
	"github.com/mwiater/benchplot/internal/chart"
	"github.com/spf13/cobra"
)

var chartKeyedCmd = &cobra.Command{
	Use:   "keyed <input.csv>",
	Short: "Chart the mean sample per bracketed integer key of a CSV file",
	Long: `Each CSV record carries a key such as "[100]" in the key field and a
sample in the value field. Samples are averaged per key and drawn in ascending
key order, each label under its own bar.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig().Chart.Keyed

		bars, err := chart.ReadKeyedFile(args[0], chart.KeyedOptions{
			KeyField:       cfg.KeyField,
			ValueField:     cfg.ValueField,
			ExpectedGroups: cfg.ExpectedGroups,
		})
		if err != nil {
			return err
		}
		return presentBars(cmd, bars, cfg.Text)
	},
}

func init() {
	chartCmd.AddCommand(chartKeyedCmd)
}
