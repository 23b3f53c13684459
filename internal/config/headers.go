package config

// HeaderConfig holds the values written to the seven tag roster of every
// reconstructed game. The Date and Result tags are computed.
type HeaderConfig struct {
	Event string `yaml:"event"`
	Site  string `yaml:"site"`
	Round string `yaml:"round"`
	White string `yaml:"white"`
	Black string `yaml:"black"`

	// Date overrides the current date when set (YYYY.MM.DD).
	Date string `yaml:"date"`
}

// NewHeaderConfig creates a HeaderConfig with default values.
func NewHeaderConfig() *HeaderConfig {
	return &HeaderConfig{
		Event: "Current Game",
		Site:  "?",
		Round: "?",
		White: "Player",
		Black: "AI",
	}
}
