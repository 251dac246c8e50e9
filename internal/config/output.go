package config

// OutputConfig holds settings related to report formatting.
type OutputConfig struct {
	// JSONFormat enables JSON output instead of text
	JSONFormat bool

	// ShowBoard prints the final position of each game
	ShowBoard bool

	// ShowMoves lists the normalized move history of each game
	ShowMoves bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{ShowBoard: true}
}
