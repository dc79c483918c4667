package config

import "errors"

var (
	// ErrInvalidConfig is returned when a profile fails validation.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrConfigPathRequired is returned when Load is called without a path.
	ErrConfigPathRequired = errors.New("config path is required")
)
