package config

import "time"

// UXConfig holds interaction-timing and motion settings.
type UXConfig struct {
	// SearchDebounceMs is the trailing-edge quiet window for search input.
	SearchDebounceMs int `yaml:"search_debounce_ms"`
	// ToastDurationMs is the toast auto-dismiss countdown.
	ToastDurationMs int `yaml:"toast_duration_ms"`
	// ReducedMotion substitutes instant jumps for animated scrolling.
	ReducedMotion bool `yaml:"reduced_motion"`
}

// DefaultUXConfig returns the reference timings.
func DefaultUXConfig() UXConfig {
	return UXConfig{
		SearchDebounceMs: 250,
		ToastDurationMs:  4000,
	}
}

// SearchDebounce returns the debounce window as a duration.
func (u UXConfig) SearchDebounce() time.Duration {
	return time.Duration(u.SearchDebounceMs) * time.Millisecond
}

// ToastDuration returns the toast countdown as a duration.
func (u UXConfig) ToastDuration() time.Duration {
	return time.Duration(u.ToastDurationMs) * time.Millisecond
}
