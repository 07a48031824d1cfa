// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config is the environment-level configuration; flags override it per command.
type Config struct {
	LogLevel    string `env:"TEMPCONCAT_LOG_LEVEL" envDefault:"info"`
	Format      string `env:"TEMPCONCAT_FORMAT" envDefault:"yaml"`
	MetricsFile string `env:"TEMPCONCAT_METRICS_FILE"`
	Seed        int64  `env:"TEMPCONCAT_SEED" envDefault:"1"`
	Parallelism int    `env:"TEMPCONCAT_PARALLELISM" envDefault:"4"`
}

// loadConfig parses cfg from environ (KEY=VALUE pairs).
func loadConfig(environ []string) (Config, error) {
	vars := make(map[string]string, len(environ))
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			vars[k] = v
		}
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: vars}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}

// slogLevel maps the configured level name to a slog.Level.
func (c Config) slogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}

	return lvl, nil
}
