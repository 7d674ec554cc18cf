package config

import "time"

const (
	AppName    = "mentoria-engine"
	AppVersion = "1.0.0"
)

const (
	DefaultServerPort        = ":8080"
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "json"
	DefaultMaxRowErrors      = 500
	DefaultIngestWorkers     = 4
	DefaultIndicatorCacheTTL = 15 * time.Minute

	// Competency target on the 0-10 scale; imports normalized to 0-100 use
	// ten times this value.
	DefaultTargetScore = 7.0
)
