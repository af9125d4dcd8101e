package main

import (
	"errors"
	"os"

	docres "github.com/alnah/go-docres"
	"github.com/alnah/go-docres/internal/config"
)

// Exit codes for the docres CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful export
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrInvalidBundle) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, docres.ErrNoTemplates) ||
		errors.Is(err, docres.ErrInvalidBaseDir) ||
		errors.Is(err, docres.ErrOutputDirRequired) ||
		errors.Is(err, docres.ErrInvalidFilter) {
		return ExitUsage
	}

	return ExitGeneral
}
