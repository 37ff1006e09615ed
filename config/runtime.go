package config

import (
	"fmt"
	"lcr/meta"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Runtime holds the options that shape how an experiment runs, not what it
// simulates.
type Runtime struct {
	Workers  int    `env:"LCR_WORKERS"`
	Seed     uint64 `env:"LCR_SEED"`
	MaxTurns int    `env:"LCR_MAX_TURNS"`
	LogLevel string `env:"LCR_LOG_LEVEL" envDefault:"info"`
	OutDir   string `env:"LCR_OUT_DIR"`
}

// LoadRuntime reads the runtime options from the environment.
func LoadRuntime() (Runtime, error) {
	r := Runtime{
		Workers:  meta.WORKERS,
		MaxTurns: meta.MAX_TURNS,
	}
	if err := env.Parse(&r); err != nil {
		return Runtime{}, fmt.Errorf("parse env: %w", err)
	}
	if r.Workers < 1 {
		return Runtime{}, fmt.Errorf("LCR_WORKERS must be at least 1, got %d", r.Workers)
	}
	if r.MaxTurns < 1 {
		return Runtime{}, fmt.Errorf("LCR_MAX_TURNS must be at least 1, got %d", r.MaxTurns)
	}
	if _, err := r.Level(); err != nil {
		return Runtime{}, err
	}
	return r, nil
}

func (r Runtime) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(r.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", r.LogLevel, err)
	}
	return level, nil
}
