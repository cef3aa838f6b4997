package config

// Config represents the global packer-inject configuration.
type Config struct {
	// Output configuration for rendering and display.
	Output OutputConfig `json:"output"`
}

// OutputConfig represents output and display settings.
type OutputConfig struct {
	// Color enables colored terminal output. nil means the default.
	Color *bool `json:"color,omitempty"`
	// Indent is the indentation used for rendered JSON.
	Indent string `json:"indent"`
}

// ColorEnabled reports whether colored output is enabled.
func (o OutputConfig) ColorEnabled() bool {
	return o.Color == nil || *o.Color
}
