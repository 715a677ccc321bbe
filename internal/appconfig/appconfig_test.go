// internal/appconfig/appconfig_test.go
package appconfig

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func newViper(t *testing.T, content, ext string) *viper.Viper {
	t.Helper()
	v := viper.New()
	SetDefaults(v)
	if content == "" {
		return v
	}
	path := filepath.Join(t.TempDir(), "benchplot."+ext)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("ReadInConfig: %v", err)
	}
	return v
}

// TestLoadDefaults verifies that with no config file the historical file
// names and chart wording are used.
func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(newViper(t, "", ""))
	if err != nil {
		t.Fatalf("Load() with defaults failed: %v", err)
	}
	if len(cfg.Aggregate.Inputs) != 10 || cfg.Aggregate.Inputs[0] != "1" || cfg.Aggregate.Inputs[9] != "10" {
		t.Fatalf("expected inputs 1..10, got %v", cfg.Aggregate.Inputs)
	}
	if cfg.Aggregate.OutputFile != "jack_total.csv" {
		t.Fatalf("expected default output file, got %s", cfg.Aggregate.OutputFile)
	}
	if cfg.Chart.Labeled.Prefix != "mount" || len(cfg.Chart.Labeled.Labels) != 4 {
		t.Fatalf("unexpected labeled defaults: %+v", cfg.Chart.Labeled)
	}
	if cfg.Chart.Labeled.TrimLeading != 2 || cfg.Chart.Labeled.TrimTrailing != 1 {
		t.Fatalf("unexpected trim defaults: %+v", cfg.Chart.Labeled)
	}
	if cfg.Chart.Keyed.Title != "read comparison" || cfg.Chart.Keyed.ValueField != 2 {
		t.Fatalf("unexpected keyed defaults: %+v", cfg.Chart.Keyed)
	}
	if got := cfg.Chart.ChartPath(cfg.Chart.Keyed.Name); got != filepath.Join("charts", "read_comparison.png") {
		t.Fatalf("unexpected chart path %s", got)
	}
}

func TestLoadOverridesFromYAML(t *testing.T) {
	content := `
aggregate:
  dir: runs
  inputs: ["a", "b"]
chart:
  format: svg
  labeled:
    labels: ["1,1", "2,2"]
`
	cfg, err := Load(newViper(t, content, "yaml"))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Aggregate.Dir != "runs" || len(cfg.Aggregate.Inputs) != 2 {
		t.Fatalf("expected aggregate overrides, got %+v", cfg.Aggregate)
	}
	if cfg.Aggregate.OutputFile != "jack_total.csv" {
		t.Fatalf("expected untouched default output file, got %s", cfg.Aggregate.OutputFile)
	}
	if cfg.Chart.Format != "svg" || cfg.Chart.Labeled.Labels[1] != "2,2" {
		t.Fatalf("expected chart overrides, got %+v", cfg.Chart)
	}
	if cfg.ConfigPath == "" {
		t.Fatal("expected ConfigPath to be recorded")
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	_, err := Load(newViper(t, `{"aggregate": {"ouput_file": "x.csv"}}`, "json"))
	if err == nil {
		t.Fatal("Load() with a misspelled key should have failed")
	}
	if !strings.Contains(err.Error(), "schema") {
		t.Fatalf("expected schema error, got %v", err)
	}
}

func TestLoadRejectsWrongTypes(t *testing.T) {
	if _, err := Load(newViper(t, `{"chart": {"labeled": {"token_field": "one"}}}`, "json")); err == nil {
		t.Fatal("Load() with a string token_field should have failed")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"format":           `{"chart": {"format": "gif"}}`,
		"duplicate labels": `{"chart": {"labeled": {"labels": ["10,10", "10,10"]}}}`,
		"empty inputs":     `{"aggregate": {"inputs": []}}`,
		"negative trim":    `{"chart": {"labeled": {"trim_leading": -1}}}`,
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(newViper(t, content, "json"))
			if err == nil {
				t.Fatalf("Load() should have failed for %s", name)
			}
			if !strings.Contains(err.Error(), "invalid configuration") {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestShowConfig(t *testing.T) {
	cfg, err := Load(newViper(t, "", ""))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	ShowConfig(&buf, &cfg)
	out := buf.String()
	if !strings.Contains(out, "No config file loaded") {
		t.Fatalf("expected defaults notice, got %s", out)
	}
	if !strings.Contains(out, "jack_total.csv") {
		t.Fatalf("expected summary file in output, got %s", out)
	}

	buf.Reset()
	ShowConfig(&buf, nil)
	if !strings.Contains(buf.String(), "No configuration loaded") {
		t.Fatalf("expected nil notice, got %s", buf.String())
	}
}
