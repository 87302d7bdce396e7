// Package config loads plotaid settings from a YAML file, PLOTAID_*
// environment variables and built-in defaults.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"github.com/Sumatoshi-tech/plotaid/pkg/dendrogram"
	"github.com/Sumatoshi-tech/plotaid/pkg/observability"
	"github.com/Sumatoshi-tech/plotaid/pkg/plotpage"
)

// Sentinel validation errors.
var (
	ErrInvalidTheme        = errors.New("invalid output theme")
	ErrInvalidOrientation  = errors.New("invalid dendrogram orientation")
	ErrInvalidTruncateMode = errors.New("invalid dendrogram truncate mode")
	ErrInvalidSort         = errors.New("invalid dendrogram sort order")
	ErrInvalidLogLevel     = errors.New("invalid log level")
	ErrInvalidLogFormat    = errors.New("invalid log format")
	ErrInvalidSampleRatio  = errors.New("sample ratio must be within [0, 1]")
)

// EnvPrefix is the prefix of environment overrides, e.g. PLOTAID_LOGGING_LEVEL.
const EnvPrefix = "PLOTAID"

// none is accepted in files for the unset truncate mode and sort order.
const none = "none"

// Config holds all plotaid configuration.
type Config struct {
	Output     OutputConfig     `mapstructure:"output"`
	Dendrogram DendrogramConfig `mapstructure:"dendrogram"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Tracing    TracingConfig    `mapstructure:"tracing"`
}

// OutputConfig controls generated HTML pages.
type OutputConfig struct {
	Theme  string `mapstructure:"theme"`
	Width  string `mapstructure:"width"`
	Height string `mapstructure:"height"`
}

// DendrogramConfig mirrors dendrogram.Options.
type DendrogramConfig struct {
	Orientation         string   `mapstructure:"orientation"`
	TruncateMode        string   `mapstructure:"truncate_mode"`
	Sort                string   `mapstructure:"sort"`
	AboveThresholdColor string   `mapstructure:"above_threshold_color"`
	LinkColors          []string `mapstructure:"link_colors"`
	P                   int      `mapstructure:"p"`
	ColorThreshold      float64  `mapstructure:"color_threshold"`
	LeafRotation        float64  `mapstructure:"leaf_rotation"`
	LeafFontSize        float64  `mapstructure:"leaf_font_size"`
	ShowLeafCounts      bool     `mapstructure:"show_leaf_counts"`
	NoLabels            bool     `mapstructure:"no_labels"`
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// TracingConfig holds OpenTelemetry export settings.
type TracingConfig struct {
	Endpoint    string  `mapstructure:"endpoint"`
	Headers     string  `mapstructure:"headers"`
	Environment string  `mapstructure:"environment"`
	SampleRatio float64 `mapstructure:"sample_ratio"`
	Insecure    bool    `mapstructure:"insecure"`
}

// LoadConfig loads configuration from configPath, or from plotaid.yaml in
// the working directory, ./config or $HOME/.config/plotaid when configPath
// is empty. A missing default file is not an error.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("plotaid")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/.config/plotaid")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	readErr := v.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var cfg Config

	err := v.Unmarshal(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	err = cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	style := plotpage.DefaultStyle()
	defaults := dendrogram.DefaultOptions()

	v.SetDefault("output.theme", string(plotpage.ThemeLight))
	v.SetDefault("output.width", style.Width)
	v.SetDefault("output.height", style.Height)

	v.SetDefault("dendrogram.orientation", string(defaults.Orientation))
	v.SetDefault("dendrogram.truncate_mode", none)
	v.SetDefault("dendrogram.sort", none)
	v.SetDefault("dendrogram.p", defaults.P)
	v.SetDefault("dendrogram.color_threshold", 0.0)
	v.SetDefault("dendrogram.above_threshold_color", defaults.AboveThresholdColor)
	v.SetDefault("dendrogram.link_colors", defaults.LinkColors)
	v.SetDefault("dendrogram.show_leaf_counts", defaults.ShowLeafCounts)
	v.SetDefault("dendrogram.no_labels", false)
	v.SetDefault("dendrogram.leaf_rotation", float64(dendrogram.AutoRotation))
	v.SetDefault("dendrogram.leaf_font_size", 0.0)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	v.SetDefault("tracing.endpoint", "")
	v.SetDefault("tracing.headers", "")
	v.SetDefault("tracing.environment", "")
	v.SetDefault("tracing.sample_ratio", 0.0)
	v.SetDefault("tracing.insecure", false)
}

// Validate checks every enumerated setting.
func (c *Config) Validate() error {
	_, err := plotpage.ParseTheme(c.Output.Theme)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, c.Output.Theme)
	}

	switch dendrogram.Orientation(c.Dendrogram.Orientation) {
	case dendrogram.OrientTop, dendrogram.OrientBottom, dendrogram.OrientLeft, dendrogram.OrientRight:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidOrientation, c.Dendrogram.Orientation)
	}

	err = c.DendrogramOptions().Validate()
	switch {
	case errors.Is(err, dendrogram.ErrTruncateMode):
		return fmt.Errorf("%w: %q", ErrInvalidTruncateMode, c.Dendrogram.TruncateMode)
	case errors.Is(err, dendrogram.ErrSortOrder):
		return fmt.Errorf("%w: %q", ErrInvalidSort, c.Dendrogram.Sort)
	case err != nil:
		return err
	}

	_, err = ParseLogLevel(c.Logging.Level)
	if err != nil {
		return err
	}

	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.Logging.Format)
	}

	if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidSampleRatio, c.Tracing.SampleRatio)
	}

	return nil
}

// Theme returns the configured page theme.
func (c *Config) Theme() plotpage.Theme {
	return plotpage.Theme(c.Output.Theme)
}

// DendrogramOptions maps the dendrogram section onto layout options.
func (c *Config) DendrogramOptions() dendrogram.Options {
	d := c.Dendrogram

	return dendrogram.Options{
		Orientation:         dendrogram.Orientation(d.Orientation),
		TruncateMode:        dendrogram.TruncateMode(orNone(d.TruncateMode)),
		P:                   d.P,
		ColorThreshold:      d.ColorThreshold,
		AboveThresholdColor: d.AboveThresholdColor,
		LinkColors:          d.LinkColors,
		Sort:                dendrogram.SortOrder(orNone(d.Sort)),
		ShowLeafCounts:      d.ShowLeafCounts,
		NoLabels:            d.NoLabels,
		LeafRotation:        d.LeafRotation,
		LeafFontSize:        d.LeafFontSize,
	}
}

// Observability maps the logging and tracing sections onto an
// observability configuration for command.
func (c *Config) Observability(command, version string) observability.Config {
	level, err := ParseLogLevel(c.Logging.Level)
	if err != nil {
		level = slog.LevelInfo
	}

	cfg := observability.DefaultConfig()
	cfg.ServiceVersion = version
	cfg.Environment = c.Tracing.Environment
	cfg.Command = command
	cfg.OTLPEndpoint = c.Tracing.Endpoint
	cfg.OTLPHeaders = observability.ParseOTLPHeaders(c.Tracing.Headers)
	cfg.OTLPInsecure = c.Tracing.Insecure
	cfg.SampleRatio = c.Tracing.SampleRatio
	cfg.LogLevel = level
	cfg.LogJSON = c.Logging.Format == "json"

	return cfg
}

// ParseLogLevel converts debug, info, warn or error into a slog level.
func ParseLogLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLogLevel, name)
	}
}

func orNone(s string) string {
	if s == none {
		return ""
	}

	return s
}
