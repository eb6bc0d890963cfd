// Package config loads evaluator settings for the dectrig command from a
// YAML or TOML file and turns them into trig options.
//
// Format is chosen from the file extension (.yaml/.yml → YAML, .toml → TOML,
// anything else → TOML). Keys absent from the file keep their defaults.
//
//	precision: 50
//	guard_digits: 2
//	rounding: half_even
//	max_terms: 0
//	domain_check: false
//	log_level: info
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/db47h/decimal"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dectrig/trig"
)

// Format represents the configuration file format.
type Format int

const (
	// FormatTOML represents TOML format (default).
	FormatTOML Format = iota

	// FormatYAML represents YAML format.
	FormatYAML

	// FormatAuto detects the format from the file extension.
	FormatAuto
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// DefaultPrecision is the number of significant digits used when neither the
// file nor the command line sets one.
const DefaultPrecision = 50

var (
	// ErrInvalidConfig wraps every validation failure.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrUnsupportedFormat is returned for Format values other than TOML/YAML.
	ErrUnsupportedFormat = errors.New("config: unsupported format")
)

// roundingModes maps configuration names onto decimal rounding modes.
var roundingModes = map[string]decimal.RoundingMode{
	"half_even": decimal.ToNearestEven,
	"half_away": decimal.ToNearestAway,
	"down":      decimal.ToZero,
	"up":        decimal.AwayFromZero,
	"floor":     decimal.ToNegativeInf,
	"ceiling":   decimal.ToPositiveInf,
}

// logLevels maps configuration names onto slog levels.
var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Config holds the evaluator settings.
type Config struct {
	Precision   int    `yaml:"precision" toml:"precision" json:"precision"`
	GuardDigits int    `yaml:"guard_digits" toml:"guard_digits" json:"guard_digits"`
	Rounding    string `yaml:"rounding" toml:"rounding" json:"rounding"`
	MaxTerms    int    `yaml:"max_terms" toml:"max_terms" json:"max_terms"`
	DomainCheck bool   `yaml:"domain_check" toml:"domain_check" json:"domain_check"`
	LogLevel    string `yaml:"log_level" toml:"log_level" json:"log_level"`
}

// Default returns the built-in configuration; it mirrors trig's defaults.
func Default() *Config {
	return &Config{
		Precision:   DefaultPrecision,
		GuardDigits: trig.DefaultGuardDigits,
		Rounding:    "half_even",
		MaxTerms:    trig.DefaultMaxTerms,
		DomainCheck: trig.DefaultDomainCheck,
		LogLevel:    "info",
	}
}

// Load reads path, overlays it on Default and validates the result.
func Load(path string) (*Config, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("%w: empty config path", ErrInvalidConfig)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := LoadFromString(string(content), detectFormat(path))
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}

	return cfg, nil
}

// LoadFromString parses content in the given format over Default and validates it.
func LoadFromString(content string, format Format) (*Config, error) {
	cfg := Default()
	switch format {
	case FormatTOML:
		if _, err := toml.Decode(content, cfg); err != nil {
			return nil, fmt.Errorf("TOML parse error: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal([]byte(content), cfg); err != nil {
			return nil, fmt.Errorf("YAML parse error: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// detectFormat determines the configuration format from the file extension.
func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Validate checks ranges and names. Errors wrap ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.Precision < 1 {
		return fmt.Errorf("%w: precision must be >= 1, got %d", ErrInvalidConfig, c.Precision)
	}
	if c.GuardDigits < 0 {
		return fmt.Errorf("%w: guard_digits must be >= 0, got %d", ErrInvalidConfig, c.GuardDigits)
	}
	if c.MaxTerms < 0 {
		return fmt.Errorf("%w: max_terms must be >= 0, got %d", ErrInvalidConfig, c.MaxTerms)
	}
	if _, ok := roundingModes[strings.ToLower(c.Rounding)]; !ok {
		return fmt.Errorf("%w: unknown rounding %q", ErrInvalidConfig, c.Rounding)
	}
	if _, ok := logLevels[strings.ToLower(c.LogLevel)]; !ok {
		return fmt.Errorf("%w: unknown log_level %q", ErrInvalidConfig, c.LogLevel)
	}

	return nil
}

// RoundingMode returns the decimal rounding mode named by c.Rounding.
// Unknown names fall back to trig.DefaultRoundingMode; Validate reports them.
func (c *Config) RoundingMode() decimal.RoundingMode {
	if m, ok := roundingModes[strings.ToLower(c.Rounding)]; ok {
		return m
	}

	return trig.DefaultRoundingMode
}

// SlogLevel returns the slog level named by c.LogLevel (Info if unknown).
func (c *Config) SlogLevel() slog.Level {
	if l, ok := logLevels[strings.ToLower(c.LogLevel)]; ok {
		return l
	}

	return slog.LevelInfo
}

// TrigOptions converts c into evaluator options. logger may be nil.
func (c *Config) TrigOptions(logger *slog.Logger) []trig.Option {
	opts := []trig.Option{
		trig.WithGuardDigits(c.GuardDigits),
		trig.WithRoundingMode(c.RoundingMode()),
		trig.WithMaxTerms(c.MaxTerms),
		trig.WithLogger(logger),
	}
	if c.DomainCheck {
		opts = append(opts, trig.WithDomainCheck())
	}

	return opts
}
