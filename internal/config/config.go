// Package config provides configuration for the fen2pgn and perft tools.
package config

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/jrosengarden/Claude-Chess-sub000/internal/errors"
)

// OutputFormat represents the notation used for moves.
type OutputFormat int

const (
	SAN  OutputFormat = iota // Standard Algebraic Notation
	LALG                     // Long algebraic coordinates (e2e4, e7e8q)
)

var outputFormatNames = map[OutputFormat]string{
	SAN:  "san",
	LALG: "lalg",
}

// String returns the configuration name of the format.
func (f OutputFormat) String() string {
	if name, ok := outputFormatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("OutputFormat(%d)", int(f))
}

// ParseOutputFormat converts a name such as "san" into an OutputFormat.
func ParseOutputFormat(name string) (OutputFormat, error) {
	for f, n := range outputFormatNames {
		if n == name {
			return f, nil
		}
	}
	return SAN, fmt.Errorf("unknown output format %q: %w", name, errors.ErrInvalidConfig)
}

// TagOutputForm specifies which tags to output.
type TagOutputForm int

const (
	AllTags        TagOutputForm = 0
	SevenTagRoster TagOutputForm = 1
	NoTags         TagOutputForm = 2
)

var tagFormNames = map[TagOutputForm]string{
	AllTags:        "all",
	SevenTagRoster: "roster",
	NoTags:         "none",
}

// String returns the configuration name of the tag form.
func (f TagOutputForm) String() string {
	if name, ok := tagFormNames[f]; ok {
		return name
	}
	return fmt.Sprintf("TagOutputForm(%d)", int(f))
}

// ParseTagOutputForm converts a name such as "roster" into a TagOutputForm.
func ParseTagOutputForm(name string) (TagOutputForm, error) {
	for f, n := range tagFormNames {
		if n == name {
			return f, nil
		}
	}
	return AllTags, fmt.Errorf("unknown tag format %q: %w", name, errors.ErrInvalidConfig)
}

// Config holds all program configuration.
type Config struct {
	Verbosity int `yaml:"verbosity"` // 0=nothing, 1=summary, 2=running commentary

	// Workers is the number of logs converted in parallel.
	Workers int `yaml:"workers"`

	Output     *OutputConfig     `yaml:"output"`
	Headers    *HeaderConfig     `yaml:"headers"`
	Duplicate  *DuplicateConfig  `yaml:"duplicates"`
	Filter     *FilterConfig     `yaml:"filter"`
	Annotation *AnnotationConfig `yaml:"annotation"`

	// OutputFilename names the file OutputFile was opened on, if any.
	OutputFilename string `yaml:"output_file"`

	// Output streams
	OutputFile io.Writer `yaml:"-"`
	LogFile    io.Writer `yaml:"-"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Workers:    runtime.NumCPU(),
		Output:     NewOutputConfig(),
		Headers:    NewHeaderConfig(),
		Duplicate:  NewDuplicateConfig(),
		Filter:     NewFilterConfig(),
		Annotation: NewAnnotationConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks the configuration for values the tools cannot use.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity must not be negative: %w", errors.ErrInvalidConfig)
	}
	return c.Filter.Validate()
}

// Logf writes to the log when the verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}
