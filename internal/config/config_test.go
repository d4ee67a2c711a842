package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefault(t *testing.T) {
	got := Default()
	want := &Config{
		Fonts: FontsConfig{
			Dir:    "fonts",
			Symbol: "NotoSansSymbols2-Regular.ttf",
			Space:  "NotoSans-Regular.ttf",
		},
		Output: OutputConfig{
			Dir:     "codepoint_images",
			LogFile: "logfile",
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Default() mismatch (-want +got):\n%s", diff)
	}
	if err := got.Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
range: "0-80"
generateFontless: true
fonts:
  dir: /usr/share/fonts/noto
  privateUse: pua.ttf
output:
  dir: out
  verbose: true
`)

	got, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := Default()
	want.Range = "0-80"
	want.GenerateFontless = true
	want.Fonts.Dir = "/usr/share/fonts/noto"
	want.Fonts.PrivateUse = "pua.ttf"
	want.Output.Dir = "out"
	want.Output.Verbose = true
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseEmpty(t *testing.T) {
	got, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) failed: %v", err)
	}
	if diff := cmp.Diff(Default(), got); diff != "" {
		t.Errorf("Parse(nil) mismatch (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown field", "colour: red\n"},
		{"unknown nested field", "fonts:\n  size: 12\n"},
		{"wrong type", "generateFontless: [1, 2]\n"},
		{"too large", strings.Repeat("#", MaxFileSize+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if !errors.Is(err, ErrConfigParse) {
				t.Errorf("Parse() error = %v, want ErrConfigParse", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uptable.yaml")
	if err := os.WriteFile(path, []byte("range: 41-42\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Range != "41-42" {
		t.Errorf("Range = %q, want 41-42", cfg.Range)
	}
	if cfg.Fonts.Dir != DefaultFontDir {
		t.Errorf("Fonts.Dir = %q, want default %q", cfg.Fonts.Dir, DefaultFontDir)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("Load() error = %v, want ErrConfigNotFound", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"default", func(*Config) {}, true},
		{"no font dir", func(c *Config) { c.Fonts.Dir = "" }, false},
		{"no output dir", func(c *Config) { c.Output.Dir = "" }, false},
		{"no symbol font", func(c *Config) { c.Fonts.Symbol = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestFontPath(t *testing.T) {
	cfg := Default()

	tests := []struct {
		name string
		want string
	}{
		{"", ""},
		{"NotoSans-Regular.ttf", filepath.Join("fonts", "NotoSans-Regular.ttf")},
		{filepath.Join("other", "Font.ttf"), filepath.Join("other", "Font.ttf")},
		{"/abs/Font.ttf", "/abs/Font.ttf"},
	}

	for _, tt := range tests {
		if got := cfg.FontPath(tt.name); got != tt.want {
			t.Errorf("FontPath(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
