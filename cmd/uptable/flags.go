package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	"github.com/gogpu/uptable/internal/config"
)

// ErrConflictingFlags is returned when both fontless toggles are given.
var ErrConflictingFlags = errors.New("--generate_fontless and --no-generate_fontless are mutually exclusive")

// cliFlags holds every command line flag.
type cliFlags struct {
	config string

	rangeText          string
	puaFont            string
	generateFontless   bool
	noGenerateFontless bool

	fontDir    string
	symbolFont string
	spaceFont  string
	labelFont  string
	outputDir  string
	logFile    string
	verbose    bool
}

// parseFlags parses args (without the program name).
func parseFlags(args []string, stderr io.Writer) (*cliFlags, *flag.FlagSet, error) {
	f := &cliFlags{}
	fs := flag.NewFlagSet("uptable", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		_, _ = fmt.Fprintln(stderr, "Usage: uptable [flags]")
		_, _ = fmt.Fprintln(stderr, "Renders one card per Unicode codepoint.")
		_, _ = fmt.Fprintln(stderr)
		fs.PrintDefaults()
	}

	fs.StringVarP(&f.config, "config", "c", "", "YAML config file")
	fs.StringVarP(&f.rangeText, "range", "r", "", "codepoint range as [hex]-[hex], end exclusive")
	fs.StringVar(&f.puaFont, "puafont", "", "font to use for private use area characters")
	fs.BoolVar(&f.generateFontless, "generate_fontless", false, "generate cards even if no font has the character")
	fs.BoolVar(&f.noGenerateFontless, "no-generate_fontless", false, "skip characters no font has (default)")

	fs.StringVar(&f.fontDir, "fonts", config.DefaultFontDir, "directory scanned for fonts")
	fs.StringVar(&f.symbolFont, "symbol-font", config.DefaultSymbolFont, "font for control pictures")
	fs.StringVar(&f.spaceFont, "space-font", config.DefaultSpaceFont, "font measuring space widths")
	fs.StringVar(&f.labelFont, "label-font", "", "font for labels (default Go Regular)")
	fs.StringVar(&f.outputDir, "output", config.DefaultOutputDir, "directory cards are written to")
	fs.StringVar(&f.logFile, "logfile", config.DefaultLogFile, "file receiving warnings")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log font catalog diagnostics")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	if fs.NArg() > 0 {
		return nil, nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if fs.Changed("generate_fontless") && fs.Changed("no-generate_fontless") {
		return nil, nil, ErrConflictingFlags
	}
	return f, fs, nil
}

// apply overrides cfg with every flag given on the command line.
func (f *cliFlags) apply(fs *flag.FlagSet, cfg *config.Config) {
	if fs.Changed("range") {
		cfg.Range = f.rangeText
	}
	if fs.Changed("puafont") {
		cfg.Fonts.PrivateUse = f.puaFont
	}
	if fs.Changed("generate_fontless") {
		cfg.GenerateFontless = f.generateFontless
	}
	if fs.Changed("no-generate_fontless") {
		cfg.GenerateFontless = !f.noGenerateFontless
	}
	if fs.Changed("fonts") {
		cfg.Fonts.Dir = f.fontDir
	}
	if fs.Changed("symbol-font") {
		cfg.Fonts.Symbol = f.symbolFont
	}
	if fs.Changed("space-font") {
		cfg.Fonts.Space = f.spaceFont
	}
	if fs.Changed("label-font") {
		cfg.Fonts.Label = f.labelFont
	}
	if fs.Changed("output") {
		cfg.Output.Dir = f.outputDir
	}
	if fs.Changed("logfile") {
		cfg.Output.LogFile = f.logFile
	}
	if fs.Changed("verbose") {
		cfg.Output.Verbose = f.verbose
	}
}

// loadConfig builds the run configuration: defaults, then the config
// file, then flags.
func loadConfig(f *cliFlags, fs *flag.FlagSet) (*config.Config, error) {
	cfg := config.Default()
	if f.config != "" {
		var err error
		if cfg, err = config.Load(f.config); err != nil {
			return nil, err
		}
	}
	f.apply(fs, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
