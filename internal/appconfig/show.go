package appconfig

import (
	"fmt"
	"io"

	"github.com/k0kubun/pp"
)

// ShowConfig prints where the configuration came from, a short summary and a
// full dump of cfg.
func ShowConfig(out io.Writer, cfg *Config) {
	if cfg == nil {
		fmt.Fprintln(out, "No configuration loaded.")
		return
	}
	if cfg.ConfigPath == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", cfg.ConfigPath)
	}

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintf(out, "  Debug:          %v\n", cfg.Debug)
	fmt.Fprintf(out, "  Log File:       %s\n", cfg.LogFile)
	fmt.Fprintf(out, "  Run Inputs:     %d in %s\n", len(cfg.Aggregate.Inputs), cfg.Aggregate.Dir)
	fmt.Fprintf(out, "  Summary File:   %s\n", cfg.Aggregate.OutputFile)
	fmt.Fprintf(out, "  Chart Output:   %s (%s)\n", cfg.Chart.OutputDir, cfg.Chart.Format)
	fmt.Fprintf(out, "  Mount Labels:   %v\n", cfg.Chart.Labeled.Labels)
	fmt.Fprintln(out)
	pp.Fprintln(out, cfg)
}
