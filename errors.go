package poegen

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyCustomerName = errors.New("customer name cannot be empty")
	ErrEmptyBackground   = errors.New("background cannot be empty")
	ErrNilCompleter      = errors.New("chat completer cannot be nil")
	ErrNoDiagram         = errors.New("diagram response contains no svg element")
	ErrEmptyMarkdown     = errors.New("markdown content cannot be empty")

	// HTML preview and PDF export errors.
	ErrHTMLConversion = errors.New("HTML conversion failed")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
)
