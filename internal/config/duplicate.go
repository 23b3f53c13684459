package config

import "io"

// DuplicateConfig holds settings for duplicate game detection.
type DuplicateConfig struct {
	// Suppress drops games whose final position was already output
	Suppress bool `yaml:"suppress"`

	// ExactMatch also requires the same number of moves
	ExactMatch bool `yaml:"exact"`

	// DuplicateFile receives the suppressed games, if set
	DuplicateFile io.Writer `yaml:"-"`
}

// NewDuplicateConfig creates a DuplicateConfig with default values.
func NewDuplicateConfig() *DuplicateConfig {
	return &DuplicateConfig{}
}
