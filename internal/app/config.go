package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// FlowPath points at the .json/.yaml flow file to build.
	FlowPath string
	// ManifestsPath optionally points at a directory of .hcl vertex
	// manifests merged into the built-in type registry.
	ManifestsPath string

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.FlowPath == "" {
		return nil, errors.New("FlowPath is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
