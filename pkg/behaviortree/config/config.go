package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// History drivers.
const (
	// DriverNone disables tick history.
	DriverNone = ""
	// DriverMemory keeps tick history in process memory.
	DriverMemory = "memory"
	// DriverSQLite keeps tick history in a SQLite database at History.Path.
	DriverSQLite = "sqlite"
)

// Settings configure how a tree is ticked.
type Settings struct {
	// Name identifies the tree in logs, metrics, spans and history.
	Name string `yaml:"name" json:"name"`

	// LogLevel is one of debug, info, warn, error. Default: info.
	LogLevel string `yaml:"log_level" json:"log_level"`

	// Metrics enables OpenTelemetry metrics.
	Metrics bool `yaml:"metrics" json:"metrics"`

	// Tracing enables OpenTelemetry tracing.
	Tracing bool `yaml:"tracing" json:"tracing"`

	// History selects where tick outcomes are recorded.
	History HistorySettings `yaml:"history" json:"history"`
}

// HistorySettings select the tick history store.
type HistorySettings struct {
	// Driver is "", "memory" or "sqlite".
	Driver string `yaml:"driver" json:"driver"`

	// Path is the SQLite database path. Required for the sqlite driver.
	Path string `yaml:"path" json:"path"`
}

// Default returns settings with logging at info and everything else off.
func Default() Settings {
	return Settings{
		Name:     "tree",
		LogLevel: "info",
	}
}

// Validation errors.
var (
	// ErrNameRequired indicates an empty tree name.
	ErrNameRequired = errors.New("name is required")

	// ErrUnknownLogLevel indicates a log level slog does not know.
	ErrUnknownLogLevel = errors.New("unknown log level")

	// ErrUnknownDriver indicates an unsupported history driver.
	ErrUnknownDriver = errors.New("unknown history driver")

	// ErrPathRequired indicates the sqlite driver without a path.
	ErrPathRequired = errors.New("history path is required for sqlite")
)

// Validate checks the settings for consistency.
func (s Settings) Validate() error {
	var errs []error
	if strings.TrimSpace(s.Name) == "" {
		errs = append(errs, ErrNameRequired)
	}
	if _, err := parseLevel(s.LogLevel); err != nil {
		errs = append(errs, err)
	}
	switch s.History.Driver {
	case DriverNone, DriverMemory:
	case DriverSQLite:
		if s.History.Path == "" {
			errs = append(errs, ErrPathRequired)
		}
	default:
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownDriver, s.History.Driver))
	}
	return errors.Join(errs...)
}

// Level returns the slog level for LogLevel, or slog.LevelInfo if it is
// empty or unknown.
func (s Settings) Level() slog.Level {
	level, err := parseLevel(s.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLevel(name string) (slog.Level, error) {
	if name == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrUnknownLogLevel, name)
	}
	return level, nil
}
