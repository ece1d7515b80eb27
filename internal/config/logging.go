package config

// LoggingConfig configures the zap logger. The TUI owns the terminal, so
// logs always go to a file, never to stderr.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`
}

// DefaultLoggingConfig returns info-level logging to the data directory.
func DefaultLoggingConfig() LoggingConfig {
	return LoggingConfig{Level: "info", File: "kiosk.log"}
}
