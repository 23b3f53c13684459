package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithOutputFormat sets the move notation.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithMaxLineLength sets the maximum line length.
func (b *ConfigBuilder) WithMaxLineLength(length uint) *ConfigBuilder {
	b.cfg.Output.MaxLineLength = length
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithTagFormat selects which tags are written.
func (b *ConfigBuilder) WithTagFormat(form TagOutputForm) *ConfigBuilder {
	b.cfg.Output.TagFormat = form
	return b
}

// WithPlayers sets the White and Black header values.
func (b *ConfigBuilder) WithPlayers(white, black string) *ConfigBuilder {
	b.cfg.Headers.White = white
	b.cfg.Headers.Black = black
	return b
}

// WithEvent sets the Event and Site header values.
func (b *ConfigBuilder) WithEvent(event, site string) *ConfigBuilder {
	b.cfg.Headers.Event = event
	b.cfg.Headers.Site = site
	return b
}

// WithDuplicateSuppression enables duplicate suppression.
func (b *ConfigBuilder) WithDuplicateSuppression(enabled bool) *ConfigBuilder {
	b.cfg.Duplicate.Suppress = enabled
	return b
}

// WithPlyBounds keeps only games whose length lies within the bounds.
func (b *ConfigBuilder) WithPlyBounds(lower, upper uint) *ConfigBuilder {
	b.cfg.Filter.CheckPlyBounds = true
	b.cfg.Filter.LowerPlyBound = lower
	b.cfg.Filter.UpperPlyBound = upper
	return b
}

// WithCheckmateFilter enables checkmate-only filtering.
func (b *ConfigBuilder) WithCheckmateFilter(enabled bool) *ConfigBuilder {
	b.cfg.Filter.MatchCheckmate = enabled
	return b
}

// WithFENComments enables FEN comments.
func (b *ConfigBuilder) WithFENComments(enabled bool) *ConfigBuilder {
	b.cfg.Annotation.AddFENComments = enabled
	return b
}

// WithHashTag enables hashcode tags.
func (b *ConfigBuilder) WithHashTag(enabled bool) *ConfigBuilder {
	b.cfg.Annotation.AddHashTag = enabled
	return b
}

// WithWorkers sets the number of parallel conversions.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
