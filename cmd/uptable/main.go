// Command uptable renders one PNG card per Unicode codepoint: glyph,
// general category, script and codepoint number.
//
// Usage:
//
//	uptable [--range 0-80] [--puafont font.ttf] [--generate_fontless]
//
// Fonts are looked up in ./fonts, cards are written to ./codepoint_images
// as D+<7-digit decimal>.png, and warnings go to stderr and ./logfile.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	flag "github.com/spf13/pflag"

	"github.com/gogpu/uptable"
	"github.com/gogpu/uptable/internal/catalog"
	"github.com/gogpu/uptable/internal/config"
	"github.com/gogpu/uptable/internal/ucd"
	"github.com/gogpu/uptable/text"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one invocation and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	flags, fs, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitUsage
	}

	cfg, err := loadConfig(flags, fs)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return exitCodeFor(err)
	}

	rng, err := uptable.ParseRange(cfg.Range)
	if err != nil {
		_, _ = fmt.Fprintln(stdout, "Range Error")
		_, _ = fmt.Fprintln(stderr, err)
		return exitCodeFor(err)
	}

	if err := generate(ctx, cfg, rng, stdout, stderr); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// generate sets up logging, fonts and the renderer, then writes the cards.
func generate(ctx context.Context, cfg *config.Config, rng uptable.Range, stdout, stderr io.Writer) error {
	// #nosec G304 -- log path is provided by the user
	logFile, err := os.Create(cfg.Output.LogFile)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() {
		_ = logFile.Close()
	}()

	logger := newLogger(io.MultiWriter(stderr, logFile), cfg.Output.Verbose)
	uptable.SetLogger(logger)
	defer uptable.SetLogger(nil)

	cat := catalog.New(cfg.Fonts.Dir, catalog.WithLogger(logger))
	defer func() {
		_ = cat.Close()
	}()

	opts := []uptable.RendererOption{
		uptable.WithSymbolFont(cfg.FontPath(cfg.Fonts.Symbol)),
		uptable.WithSpaceFont(cfg.FontPath(cfg.Fonts.Space)),
		uptable.WithGenerateFontless(cfg.GenerateFontless),
	}
	if cfg.Fonts.PrivateUse != "" {
		opts = append(opts, uptable.WithPrivateUseFont(cfg.Fonts.PrivateUse))
	}
	if cfg.Fonts.Label != "" {
		src, err := text.NewFontSourceFromFile(cfg.Fonts.Label)
		if err != nil {
			return fmt.Errorf("label font: %w", err)
		}
		defer func() {
			_ = src.Close()
		}()
		opts = append(opts, uptable.WithLabelSource(src))
	}

	db := ucd.New()
	logger.Debug("character database loaded", "unicode", db.Version())

	renderer, err := uptable.NewRenderer(cat, db, opts...)
	if err != nil {
		return err
	}
	defer func() {
		_ = renderer.Close()
	}()

	_, err = uptable.NewGenerator(renderer, cfg.Output.Dir, stdout).Run(ctx, rng)
	return err
}

// newLogger returns a text logger at warn level, or debug level when verbose.
// *os.File writes are unbuffered, so every record reaches both streams
// immediately.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
