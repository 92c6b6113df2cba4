package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vango-dev/statecore/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "statecore.json"

	// DefaultLogLevel is the default log level.
	DefaultLogLevel = "info"

	// DefaultLogFormat is the default log handler format.
	DefaultLogFormat = "text"

	// DefaultNamespace is the default Prometheus namespace.
	DefaultNamespace = "statecore"

	// DefaultTracerName is the default OpenTelemetry tracer name.
	DefaultTracerName = "statecore"

	// DefaultSelectionSize is the default item count of the selection demo.
	DefaultSelectionSize = 100000
)

// Config represents the complete statecore.json configuration.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"logLevel,omitempty"`

	// LogFormat is text or json.
	LogFormat string `json:"logFormat,omitempty"`

	// Metrics contains Prometheus configuration.
	Metrics MetricsConfig `json:"metrics,omitempty"`

	// Tracing contains OpenTelemetry configuration.
	Tracing TracingConfig `json:"tracing,omitempty"`

	// Demo contains settings for the bundled demos.
	Demo DemoConfig `json:"demo,omitempty"`

	configPath string
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	// Enabled turns on store and cache metrics.
	Enabled bool `json:"enabled,omitempty"`

	// Addr is where /metrics is served. Empty means metrics are collected
	// but not served.
	Addr string `json:"addr,omitempty"`

	// Namespace prefixes every metric name.
	Namespace string `json:"namespace,omitempty"`
}

// TracingConfig contains OpenTelemetry settings.
type TracingConfig struct {
	// Enabled wraps every store transition in a span.
	Enabled bool `json:"enabled,omitempty"`

	// TracerName is the instrumentation name of the tracer.
	TracerName string `json:"tracerName,omitempty"`
}

// DemoConfig contains settings for the bundled demos.
type DemoConfig struct {
	// SelectionSize is the number of items scanned by the selection demo.
	SelectionSize int `json:"selectionSize,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
		Metrics: MetricsConfig{
			Namespace: DefaultNamespace,
		},
		Tracing: TracingConfig{
			TracerName: DefaultTracerName,
		},
		Demo: DemoConfig{
			SelectionSize: DefaultSelectionSize,
		},
	}
}

// Load reads statecore.json from dir.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path and validates
// it.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E140").
				WithSubject(path).
				WithDetail("No " + ConfigFileName + " found at " + path).
				Wrap(err)
		}
		return nil, errors.New("E140").WithSubject(path).Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E140").
			WithSubject(path).
			WithDetail("Failed to parse " + ConfigFileName + ": " + err.Error()).
			Wrap(err)
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOptional loads path if given. With an empty path it loads
// statecore.json from dir when present and returns defaults otherwise.
func LoadOptional(path, dir string) (*Config, error) {
	if path != "" {
		return LoadFile(path)
	}
	if !Exists(dir) {
		return New(), nil
	}
	return Load(dir)
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = DefaultLogFormat
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultNamespace
	}
	if c.Tracing.TracerName == "" {
		c.Tracing.TracerName = DefaultTracerName
	}
	if c.Demo.SelectionSize == 0 {
		c.Demo.SelectionSize = DefaultSelectionSize
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return invalid("logLevel", c.LogLevel, "Use one of debug, info, warn, error")
	}

	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return invalid("logFormat", c.LogFormat, "Use text or json")
	}

	if c.Demo.SelectionSize < 0 {
		return invalid("demo.selectionSize", fmt.Sprint(c.Demo.SelectionSize), "Use a positive item count")
	}
	return nil
}

func invalid(field, value, suggestion string) error {
	return errors.New("E141").
		WithSubject(field).
		WithDetail(fmt.Sprintf("%s = %q is not allowed", field, value)).
		WithSuggestion(suggestion)
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}
