package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ModsDir     string // mod folders, symlinks and zips
	ResourceDir string // root for resource claims; empty skips resource checks

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.ModsDir == "" {
		return nil, errors.New("ModsDir is a required configuration field and cannot be empty")
	}

	return &cfg, nil
}
