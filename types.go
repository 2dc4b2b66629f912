package poegen

import (
	"context"
	"strings"
	"time"
)

// Request contains generation parameters for one customer engagement.
type Request struct {
	CustomerName string // required
	Budget       string // estimated annual consumption, free-form ("50k+ USD")
	Background   string // required; customer industry, pain points, goals
	POVStart     string // "auto", "" or ISO date (2006-01-02); "" = today
	POVEnd       string // same forms; "" = start + 14 days
	TeamRoster   string // one member per line: role: name (org)

	WithDiagram   bool // also produce an SVG architecture overview
	WithImportCSV bool // also produce a resource import CSV
}

// Validate checks that required fields are present.
func (r Request) Validate() error {
	if strings.TrimSpace(r.CustomerName) == "" {
		return ErrEmptyCustomerName
	}
	if strings.TrimSpace(r.Background) == "" {
		return ErrEmptyBackground
	}
	return nil
}

// Result holds everything one Generate call produced. DiagramSVG and
// ImportCSV are empty unless requested.
type Result struct {
	SolutionTitle    string
	SolutionMarkdown string // body with the title heading stripped
	SolutionDocx     []byte

	POVTitle    string
	POVMarkdown string
	POVDocx     []byte

	Period   string // formatted execution window, e.g. "2026/02/25 - 2026/03/11"
	Workdays int

	DiagramSVG string
	ImportCSV  string
}

// ChatCompleter is the single-call surface the generator needs from a
// chat-completions backend. *llm.Client satisfies it.
type ChatCompleter interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Option configures a Generator.
type Option func(*Generator)

// WithNow overrides the clock used for POV date resolution. Tests use this
// to pin "auto" dates.
func WithNow(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}
