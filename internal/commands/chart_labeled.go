package benchplot

import (
	"github.com/mwiater/benchplot/internal/chart"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var chartLabeledCmd = &cobra.Command{
	Use:   "labeled",
	Short: "Chart the mean sample of each configuration's log file",
	Long: `For every configured label, read the file named prefix+label, take the
sample token of each line, average it and draw one bar per label in the
configured order.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig().Chart.Labeled

		bars, err := chart.ReadLabeled(chart.LabeledOptions{
			Dir:          cfg.Dir,
			Prefix:       cfg.Prefix,
			Labels:       cfg.Labels,
			TokenField:   cfg.TokenField,
			TrimLeading:  cfg.TrimLeading,
			TrimTrailing: cfg.TrimTrailing,
		})
		if err != nil {
			return err
		}
		return presentBars(cmd, bars, cfg.Text)
	},
}

func init() {
	chartLabeledCmd.Flags().String("dir", ".", "directory holding the labeled log files")
	chartLabeledCmd.Flags().String("prefix", "mount", "file name prefix placed before each label")

	_ = viper.BindPFlag("chart.labeled.dir", chartLabeledCmd.Flags().Lookup("dir"))
	_ = viper.BindPFlag("chart.labeled.prefix", chartLabeledCmd.Flags().Lookup("prefix"))

	chartCmd.AddCommand(chartLabeledCmd)
}
