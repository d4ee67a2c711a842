// Package config holds uptable run configuration: defaults, an optional
// YAML file and validation.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrInvalidConfig  = errors.New("invalid config")
)

// MaxFileSize limits config input (1MB).
const MaxFileSize = 1 << 20

// Defaults, relative to the working directory.
const (
	DefaultFontDir    = "fonts"
	DefaultSymbolFont = "NotoSansSymbols2-Regular.ttf"
	DefaultSpaceFont  = "NotoSans-Regular.ttf"
	DefaultOutputDir  = "codepoint_images"
	DefaultLogFile    = "logfile"
)

// Config holds all configuration for a run.
type Config struct {
	// Range is the "<hex>-<hex>" codepoint range; empty means all of Unicode.
	Range            string       `yaml:"range"`
	GenerateFontless bool         `yaml:"generateFontless"`
	Fonts            FontsConfig  `yaml:"fonts"`
	Output           OutputConfig `yaml:"output"`
}

// FontsConfig defines where fonts come from.
type FontsConfig struct {
	Dir        string `yaml:"dir"`        // Directory scanned for covering fonts
	PrivateUse string `yaml:"privateUse"` // Font file for private-use codepoints (empty = catalog)
	Symbol     string `yaml:"symbol"`     // Control pictures font, bare names resolve inside Dir
	Space      string `yaml:"space"`      // Space width font, bare names resolve inside Dir
	Label      string `yaml:"label"`      // Label font file (empty = Go Regular)
}

// OutputConfig defines where results go.
type OutputConfig struct {
	Dir     string `yaml:"dir"`     // Card directory, created if absent
	LogFile string `yaml:"logFile"` // Warning log, truncated per run
	Verbose bool   `yaml:"verbose"` // Debug-level logging
}

// Default returns the configuration used without a config file.
func Default() *Config {
	return &Config{
		Fonts: FontsConfig{
			Dir:    DefaultFontDir,
			Symbol: DefaultSymbolFont,
			Space:  DefaultSpaceFont,
		},
		Output: OutputConfig{
			Dir:     DefaultOutputDir,
			LogFile: DefaultLogFile,
		},
	}
}

// Load reads a YAML config file on top of Default. Unknown fields are
// rejected.
func Load(path string) (*Config, error) {
	// #nosec G304 -- config path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	return Parse(data)
}

// Parse decodes YAML config data on top of Default.
func Parse(data []byte) (*Config, error) {
	if len(data) > MaxFileSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrConfigParse, len(data), MaxFileSize)
	}

	cfg := Default()
	if len(data) == 0 {
		return cfg, nil
	}
	if err := yaml.UnmarshalWithOptions(data, cfg, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	return cfg, nil
}

// Validate checks required fields.
func (c *Config) Validate() error {
	if c.Fonts.Dir == "" {
		return fmt.Errorf("%w: fonts.dir is required", ErrInvalidConfig)
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("%w: output.dir is required", ErrInvalidConfig)
	}
	return nil
}

// FontPath resolves a font setting. Bare file names live inside the font
// directory; anything with a directory part is used as given.
func (c *Config) FontPath(name string) string {
	if name == "" {
		return ""
	}
	if filepath.Base(name) != name {
		return name
	}
	return filepath.Join(c.Fonts.Dir, name)
}
