// internal/appconfig/appconfig.go
// Package appconfig declares the benchplot configuration, its defaults and
// how it is validated.
package appconfig

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mwiater/benchplot/internal/timing"
	"github.com/spf13/viper"
)

// defaultRunCount is how many numbered run files the aggregator expects.
const defaultRunCount = 10

// Config is the merged application configuration.
type Config struct {
	Debug      bool      `mapstructure:"debug"`
	LogFile    string    `mapstructure:"log_file"`
	Aggregate  Aggregate `mapstructure:"aggregate"`
	Chart      Chart     `mapstructure:"chart"`
	ConfigPath string    `mapstructure:"-"`
}

// Aggregate configures the timing aggregator.
type Aggregate struct {
	// Dir is the directory holding the run files.
	Dir string `mapstructure:"dir"`
	// Inputs are the run file names, attempted in order.
	Inputs []string `mapstructure:"inputs" validate:"required,min=1,dive,required"`
	// OutputFile accumulates three rows per invocation and is never truncated.
	OutputFile string `mapstructure:"output_file" validate:"required"`
}

// Chart holds the settings shared by both chart sources.
type Chart struct {
	OutputDir   string  `mapstructure:"output_dir"`
	Format      string  `mapstructure:"format" validate:"oneof=png svg pdf"`
	Interactive bool    `mapstructure:"interactive"`
	Width       float64 `mapstructure:"width" validate:"gt=0"`
	Height      float64 `mapstructure:"height" validate:"gt=0"`
	BarWidth    float64 `mapstructure:"bar_width" validate:"gt=0"`
	Keyed       Keyed   `mapstructure:"keyed"`
	Labeled     Labeled `mapstructure:"labeled"`
}

// Text is the wording of one chart and the base name of its image file.
type Text struct {
	Name   string `mapstructure:"name" validate:"required"`
	Title  string `mapstructure:"title"`
	XLabel string `mapstructure:"x_label"`
	YLabel string `mapstructure:"y_label"`
	Legend string `mapstructure:"legend"`
}

// Keyed configures the chart built from a keyed CSV file.
type Keyed struct {
	Text           `mapstructure:",squash"`
	KeyField       int `mapstructure:"key_field" validate:"min=0"`
	ValueField     int `mapstructure:"value_field" validate:"min=0"`
	ExpectedGroups int `mapstructure:"expected_groups" validate:"min=0"`
}

// Labeled configures the chart built from one log file per label.
type Labeled struct {
	Text         `mapstructure:",squash"`
	Dir          string   `mapstructure:"dir"`
	Prefix       string   `mapstructure:"prefix"`
	Labels       []string `mapstructure:"labels" validate:"required,min=1,unique,dive,required"`
	TokenField   int      `mapstructure:"token_field" validate:"min=0"`
	TrimLeading  int      `mapstructure:"trim_leading" validate:"min=0"`
	TrimTrailing int      `mapstructure:"trim_trailing" validate:"min=0"`
}

// SetDefaults registers the historical file names and chart wording as
// defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("debug", false)
	v.SetDefault("log_file", "")

	v.SetDefault("aggregate.dir", ".")
	v.SetDefault("aggregate.inputs", timing.DefaultInputs(defaultRunCount))
	v.SetDefault("aggregate.output_file", "jack_total.csv")

	v.SetDefault("chart.output_dir", "charts")
	v.SetDefault("chart.format", "png")
	v.SetDefault("chart.interactive", false)
	v.SetDefault("chart.width", 6.0)
	v.SetDefault("chart.height", 4.0)
	v.SetDefault("chart.bar_width", 20.0)

	v.SetDefault("chart.keyed.name", "read_comparison")
	v.SetDefault("chart.keyed.title", "read comparison")
	v.SetDefault("chart.keyed.x_label", "read times")
	v.SetDefault("chart.keyed.y_label", "time(ms)")
	v.SetDefault("chart.keyed.legend", "vanilla")
	v.SetDefault("chart.keyed.key_field", 0)
	v.SetDefault("chart.keyed.value_field", 2)
	v.SetDefault("chart.keyed.expected_groups", 4)

	v.SetDefault("chart.labeled.name", "mount_time_comparison")
	v.SetDefault("chart.labeled.title", "mount time comparison")
	v.SetDefault("chart.labeled.x_label", "partition size")
	v.SetDefault("chart.labeled.y_label", "time(s)")
	v.SetDefault("chart.labeled.legend", "vanilla")
	v.SetDefault("chart.labeled.dir", ".")
	v.SetDefault("chart.labeled.prefix", "mount")
	v.SetDefault("chart.labeled.labels", []string{"10,10", "50,50", "100,100", "1000,1000"})
	v.SetDefault("chart.labeled.token_field", 1)
	v.SetDefault("chart.labeled.trim_leading", 2)
	v.SetDefault("chart.labeled.trim_trailing", 1)
}

// Load checks the merged settings of v against the config schema, decodes
// them and validates the result.
func Load(v *viper.Viper) (Config, error) {
	if err := checkSchema(v.AllSettings()); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.ConfigPath = v.ConfigFileUsed()

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var validate = validator.New()

// Validate applies the struct constraints and reports every violated field.
func Validate(cfg Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("unable to validate config: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fe.Error())
	}
	return fmt.Errorf("invalid configuration:\n\t%s", strings.Join(msgs, "\n\t"))
}

// ChartPath returns the image path for a chart named name.
func (c Chart) ChartPath(name string) string {
	return filepath.Join(c.OutputDir, name+"."+c.Format)
}
