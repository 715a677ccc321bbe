package appconfig

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// configSchema describes the shape of the merged settings. Field constraints
// that depend on each other are left to the validator tags on Config.
const configSchema = `{
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "debug":    {"type": "boolean"},
    "log_file": {"type": "string"},
    "aggregate": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "dir":         {"type": "string"},
        "inputs":      {"type": "array", "items": {"type": "string"}},
        "output_file": {"type": "string"}
      }
    },
    "chart": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "output_dir":  {"type": "string"},
        "format":      {"type": "string"},
        "interactive": {"type": "boolean"},
        "width":       {"type": "number"},
        "height":      {"type": "number"},
        "bar_width":   {"type": "number"},
        "keyed": {
          "type": "object",
          "additionalProperties": false,
          "properties": {
            "name":            {"type": "string"},
            "title":           {"type": "string"},
            "x_label":         {"type": "string"},
            "y_label":         {"type": "string"},
            "legend":          {"type": "string"},
            "key_field":       {"type": "integer"},
            "value_field":     {"type": "integer"},
            "expected_groups": {"type": "integer"}
          }
        },
        "labeled": {
          "type": "object",
          "additionalProperties": false,
          "properties": {
            "name":          {"type": "string"},
            "title":         {"type": "string"},
            "x_label":       {"type": "string"},
            "y_label":       {"type": "string"},
            "legend":        {"type": "string"},
            "dir":           {"type": "string"},
            "prefix":        {"type": "string"},
            "labels":        {"type": "array", "items": {"type": "string"}},
            "token_field":   {"type": "integer"},
            "trim_leading":  {"type": "integer"},
            "trim_trailing": {"type": "integer"}
          }
        }
      }
    }
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(configSchema)

// checkSchema rejects unknown keys and mistyped values before decoding, so a
// typo in the config file is reported instead of silently falling back to a
// default.
func checkSchema(settings map[string]any) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(settings))
	if err != nil {
		return fmt.Errorf("config schema validation failed: %w", err)
	}
	if result.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		msgs = append(msgs, desc.String())
	}
	return fmt.Errorf("config does not match schema:\n\t%s", strings.Join(msgs, "\n\t"))
}
