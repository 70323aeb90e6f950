// Package config loads the arbor.yaml run configuration.
package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/arbor/internal/logging"
	"github.com/aretw0/arbor/pkg/tags"
)

// DefaultPath is read when no --config flag is given.
const DefaultPath = "arbor.yaml"

// Formats accepted by the run command.
const (
	FormatConsole  = "console"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

var formats = []string{FormatConsole, FormatJSON, FormatMarkdown}

// Config is the merged run configuration. Flags override file values.
type Config struct {
	Tags        []string `mapstructure:"tags"`
	ExcludeTags []string `mapstructure:"exclude_tags"`
	SkipPending bool     `mapstructure:"skip_pending"`
	FailFast    bool     `mapstructure:"fail_fast"`
	Trim        bool     `mapstructure:"trim"`
	Format      string   `mapstructure:"format"`
	LogLevel    string   `mapstructure:"log_level"`
	NoColor     bool     `mapstructure:"no_color"`
	// MetricsFile, when set, receives the run metrics in the Prometheus text format.
	MetricsFile string `mapstructure:"metrics_file"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Format:   FormatConsole,
		LogLevel: "warn",
	}
}

// Load reads path over the defaults. A missing file yields the defaults unless
// mustExist is set.
func Load(path string, mustExist bool) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !mustExist {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := Decode(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Decode merges YAML data into cfg. Scalars are weakly typed, so "fail_fast: yes"
// and "tags: fast, db" are both accepted.
func Decode(data []byte, cfg *Config) error {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           cfg,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(raw)
}

// Validate rejects unknown formats and log levels.
func (c Config) Validate() error {
	if !slices.Contains(formats, c.Format) {
		return fmt.Errorf("unknown format %q (want one of %s)", c.Format, strings.Join(formats, ", "))
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Filter builds the tag filter described by the configuration.
func (c Config) Filter() *tags.Filter {
	f := tags.NewFilter(strings.Join(c.Tags, ","), strings.Join(c.ExcludeTags, ","))
	f.SkipPending = c.SkipPending
	return f
}
