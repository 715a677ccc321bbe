// internal/commands/chart.go
package benchplot

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/mwiater/benchplot/internal/appconfig"
	"github.com/mwiater/benchplot/internal/chart"
	"github.com/mwiater/benchplot/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// chartCmd hosts the commands that average grouped samples into bar charts.
var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Render bar charts of averaged benchmark samples",
	Long: `Group numeric samples by key, average each group and draw one bar per
group. The chart is saved under the chart output directory; --interactive also
shows it in the terminal.`,
}

var chartWritten = color.New(color.FgGreen)

// presentBars prints the bar values, saves the chart image and, when
// configured, opens the terminal view.
func presentBars(cmd *cobra.Command, bars chart.Bars, text appconfig.Text) error {
	cfg := GetConfig().Chart
	out := cmd.OutOrStdout()

	for i, label := range bars.Labels {
		fmt.Fprintf(out, "%s\t%g\n", label, bars.Values[i])
	}

	style := chart.Style{
		Title:    text.Title,
		XLabel:   text.XLabel,
		YLabel:   text.YLabel,
		Legend:   text.Legend,
		BarWidth: cfg.BarWidth,
		Width:    cfg.Width,
		Height:   cfg.Height,
	}
	path := cfg.ChartPath(text.Name)
	if err := chart.Render(bars, style, path); err != nil {
		return err
	}
	chartWritten.Fprintf(out, "Chart written to %s\n", path)
	logging.LogEvent("[CHART] %d bars written to %s", bars.Len(), path)

	if cfg.Interactive {
		return chart.View(bars, style)
	}
	return nil
}

func init() {
	chartCmd.PersistentFlags().Bool("interactive", false, "show the chart in the terminal after saving it")
	chartCmd.PersistentFlags().String("format", "png", "image format: png, svg or pdf")
	chartCmd.PersistentFlags().String("output-dir", "charts", "directory the chart image is written to")

	_ = viper.BindPFlag("chart.interactive", chartCmd.PersistentFlags().Lookup("interactive"))
	_ = viper.BindPFlag("chart.format", chartCmd.PersistentFlags().Lookup("format"))
	_ = viper.BindPFlag("chart.output_dir", chartCmd.PersistentFlags().Lookup("output-dir"))

	rootCmd.AddCommand(chartCmd)
}
