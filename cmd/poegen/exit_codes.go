package main

import (
	"errors"
	"os"

	poegen "github.com/pennz1/poe-workflow"
	"github.com/pennz1/poe-workflow/internal/config"
	"github.com/pennz1/poe-workflow/internal/dateutil"
	"github.com/pennz1/poe-workflow/internal/llm"
)

// Exit codes for the poegen CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess  = 0 // Successful generation
	ExitGeneral  = 1 // General/unexpected error
	ExitUsage    = 2 // Invalid flags, config, or validation
	ExitIO       = 3 // File not found, permission denied
	ExitUpstream = 4 // Azure OpenAI or browser errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Upstream service errors (exit 4)
	if errors.Is(err, llm.ErrCompletion) ||
		errors.Is(err, llm.ErrEmptyCompletion) ||
		errors.Is(err, poegen.ErrNoDiagram) ||
		errors.Is(err, poegen.ErrBrowserConnect) ||
		errors.Is(err, poegen.ErrPageCreate) ||
		errors.Is(err, poegen.ErrPageLoad) ||
		errors.Is(err, poegen.ErrPDFGeneration) {
		return ExitUpstream
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrNoPreviewInput) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, llm.ErrMissingCredentials) ||
		errors.Is(err, dateutil.ErrInvalidDate) ||
		errors.Is(err, poegen.ErrEmptyCustomerName) ||
		errors.Is(err, poegen.ErrEmptyBackground) ||
		errors.Is(err, poegen.ErrEmptyMarkdown) {
		return ExitUsage
	}

	return ExitGeneral
}
