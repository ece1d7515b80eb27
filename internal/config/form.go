package config

import (
	"os"
	"strconv"
	"time"
)

// FormConfig tunes the simulated submission.
type FormConfig struct {
	// SuccessRate is the probability a submission succeeds, in [0, 1].
	SuccessRate float64 `yaml:"success_rate"`
	// MinDelayMs/MaxDelayMs bound the uniform random resolution delay;
	// the upper bound is exclusive.
	MinDelayMs int `yaml:"min_delay_ms"`
	MaxDelayMs int `yaml:"max_delay_ms"`
}

// DefaultFormConfig returns the reference behavior: 90% success, resolved
// after 800-1500 ms.
func DefaultFormConfig() FormConfig {
	return FormConfig{
		SuccessRate: 0.9,
		MinDelayMs:  800,
		MaxDelayMs:  1500,
	}
}

func (f *FormConfig) applyEnvOverrides() {
	if v := os.Getenv("KIOSK_FORM_SUCCESS_RATE"); v != "" {
		if rate, err := strconv.ParseFloat(v, 64); err == nil && rate >= 0 && rate <= 1 {
			f.SuccessRate = rate
		}
	}
}

// MinDelay returns the lower delay bound.
func (f FormConfig) MinDelay() time.Duration {
	return time.Duration(f.MinDelayMs) * time.Millisecond
}

// MaxDelay returns the exclusive upper delay bound.
func (f FormConfig) MaxDelay() time.Duration {
	return time.Duration(f.MaxDelayMs) * time.Millisecond
}
