package text

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for FontSource.
type sourceConfig struct {
	index int
	name  string
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{}
}

// WithFaceIndex selects a face inside a font collection (.ttc/.otc).
// It must be 0 for single-font files.
func WithFaceIndex(i int) SourceOption {
	return func(c *sourceConfig) {
		c.index = i
	}
}

// WithName overrides the name reported by FontSource.Name.
// Useful for logging when the font carries no name table entries.
func WithName(name string) SourceOption {
	return func(c *sourceConfig) {
		c.name = name
	}
}

// FaceOption configures Face creation.
type FaceOption func(*faceConfig)

// faceConfig holds configuration for Face.
type faceConfig struct {
	hinting Hinting
}

// defaultFaceConfig returns the default face configuration.
func defaultFaceConfig() faceConfig {
	return faceConfig{
		hinting: HintingFull,
	}
}

// WithHinting sets the hinting mode for the face.
func WithHinting(h Hinting) FaceOption {
	return func(c *faceConfig) {
		c.hinting = h
	}
}
