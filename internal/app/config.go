package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	GraphPath  string // .hcl graph description file or directory
	OutputPath string // destination for the exported snapshot; empty means stdout

	LogFormat string
	LogLevel  string

	// LiveShareURL, when set, attaches the liveshare extension pointed at
	// this socket.io endpoint.
	LiveShareURL string
	// StrictSockets attaches the socketguard extension, vetoing
	// connections between mismatched socket types.
	StrictSockets bool
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.GraphPath == "" {
		return nil, errors.New("GraphPath is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
