package main

import (
	"errors"

	flag "github.com/spf13/pflag"

	"github.com/gogpu/uptable"
	"github.com/gogpu/uptable/internal/config"
)

// Exit codes for the uptable CLI.
const (
	ExitSuccess = 0 // All cards written
	ExitFailure = 1 // Range errors and run failures
	ExitUsage   = 2 // Invalid flags or config
)

// exitCodeFor returns the exit code for an error.
func exitCodeFor(err error) int {
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}

	var formatErr *uptable.RangeFormatError
	var validationErr *uptable.RangeValidationError
	if errors.As(err, &formatErr) || errors.As(err, &validationErr) {
		return ExitFailure
	}

	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidConfig) ||
		errors.Is(err, ErrConflictingFlags) {
		return ExitUsage
	}

	return ExitFailure
}
