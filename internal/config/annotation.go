package config

// AnnotationConfig holds settings for adding annotations to games.
type AnnotationConfig struct {
	AddFENComments bool `yaml:"fen_comments"` // {FEN} comment after every move
	AddHashTag     bool `yaml:"hash_tag"`     // HashCode tag for the final position
	AddPlyCount    bool `yaml:"ply_count"`    // PlyCount tag
	OutputFEN      bool `yaml:"final_fen"`    // final position in JSON output
}

// NewAnnotationConfig creates an AnnotationConfig with default values.
// All boolean fields default to false (Go zero value).
func NewAnnotationConfig() *AnnotationConfig {
	return &AnnotationConfig{}
}
