package config

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format specifies the move notation (SAN or LALG)
	Format OutputFormat `yaml:"format"`

	// MaxLineLength is the maximum line length for PGN movetext
	MaxLineLength uint `yaml:"max_line_length"`

	// JSONFormat enables JSON output instead of PGN
	JSONFormat bool `yaml:"json"`

	// KeepMoveNumbers controls whether move numbers are included
	KeepMoveNumbers bool `yaml:"move_numbers"`

	// KeepResults controls whether the result marker ends the movetext
	KeepResults bool `yaml:"results"`

	// KeepChecks controls whether check symbols (+, #) are included
	KeepChecks bool `yaml:"checks"`

	// TagFormat specifies which tags to output (AllTags, SevenTagRoster, NoTags)
	TagFormat TagOutputForm `yaml:"tags"`
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:          SAN,
		MaxLineLength:   80,
		KeepMoveNumbers: true,
		KeepResults:     true,
		KeepChecks:      true,
		TagFormat:       AllTags,
	}
}
