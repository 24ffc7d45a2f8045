// Package config loads adate settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/mph-llm-experiments/adate/internal/chrono"
)

// OutputFormat selects how results are printed.
type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Color when stdout is a terminal (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// ErrInvalidWindow is returned when the configured minimum date falls
// after the maximum.
var ErrInvalidWindow = errors.New("window minimum is after maximum")

// Config holds all runtime settings.
type Config struct {
	Window WindowConfig `toml:"window"`
	Output OutputConfig `toml:"output"`
	Fix    FixConfig    `toml:"fix"`
	Log    LogConfig    `toml:"log"`
}

// WindowConfig bounds acceptable dates around the context date. Min and
// Max, when set, replace the relative offsets. They are written as quoted
// "YYYY-MM-DD" strings; the zero Date means unset.
type WindowConfig struct {
	PastYears   int         `toml:"past_years"`
	FutureYears int         `toml:"future_years"`
	Min         chrono.Date `toml:"min"`
	Max         chrono.Date `toml:"max"`
}

type OutputConfig struct {
	Format        OutputFormat      `toml:"format"`
	Color         ColorMode         `toml:"color"`
	MinConfidence chrono.Confidence `toml:"min_confidence"`
}

// FixConfig configures frontmatter normalization.
type FixConfig struct {
	Fields        []string          `toml:"fields"`
	MinConfidence chrono.Confidence `toml:"min_confidence"`
}

type LogConfig struct {
	File    string `toml:"file"`
	Verbose bool   `toml:"verbose"`
}

// DefaultConfig returns the settings used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			PastYears:   100,
			FutureYears: 25,
		},
		Output: OutputConfig{
			Format:        OutputText,
			Color:         ColorAuto,
			MinConfidence: chrono.ConfidenceNone,
		},
		Fix: FixConfig{
			Fields:        []string{"due_date", "start_date", "today_date"},
			MinConfidence: chrono.ConfidenceMedium,
		},
	}
}

// DefaultPath returns $ADATE_CONFIG, or adate/config.toml under the
// user config directory.
func DefaultPath() string {
	if p := os.Getenv("ADATE_CONFIG"); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "adate", "config.toml")
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown config key %q in %s", undecoded[0].String(), path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks settings for consistency.
func (c *Config) Validate() error {
	var errs []error

	switch c.Output.Format {
	case OutputText, OutputJSON, OutputYAML:
	default:
		errs = append(errs, fmt.Errorf("output.format must be text, json or yaml, got %q", c.Output.Format))
	}
	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		errs = append(errs, fmt.Errorf("output.color must be auto, always or never, got %q", c.Output.Color))
	}
	if c.Window.PastYears < 0 || c.Window.FutureYears < 0 {
		errs = append(errs, fmt.Errorf("window year offsets must not be negative"))
	}

	min, max := c.Window.Min, c.Window.Max
	if !min.IsZero() && !max.IsZero() && min.After(max) {
		errs = append(errs, fmt.Errorf("%w: %s > %s", ErrInvalidWindow, min, max))
	}

	return errors.Join(errs...)
}

// Window returns the acceptable range for a given context date.
func (c *Config) Window(context chrono.Date) (chrono.Date, chrono.Date, error) {
	min := chrono.Date{Year: clampYear(context.Year - c.Window.PastYears), Month: time.January, Day: 1}
	max := chrono.Date{Year: clampYear(context.Year + c.Window.FutureYears), Month: time.December, Day: 31}

	if !c.Window.Min.IsZero() {
		min = c.Window.Min
	}
	if !c.Window.Max.IsZero() {
		max = c.Window.Max
	}
	if min.After(max) {
		return chrono.Date{}, chrono.Date{}, fmt.Errorf("%w: %s > %s", ErrInvalidWindow, min, max)
	}
	return min, max, nil
}

// Anchors returns the interpretation anchors for a context date.
func (c *Config) Anchors(context chrono.Date) (chrono.Anchors, error) {
	min, max, err := c.Window(context)
	if err != nil {
		return chrono.Anchors{}, err
	}
	return chrono.Anchors{Context: context, Min: min, Max: max}, nil
}

func clampYear(year int) int {
	return max(chrono.MinDate.Year, min(year, chrono.MaxDate.Year))
}
