package poegen

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pennz1/poe-workflow/internal/config"
	"github.com/pennz1/poe-workflow/internal/dateutil"
	"github.com/pennz1/poe-workflow/internal/docx"
	"github.com/pennz1/poe-workflow/internal/fileutil"
	"github.com/pennz1/poe-workflow/internal/markdown"
	"github.com/pennz1/poe-workflow/internal/postproc"
	"github.com/pennz1/poe-workflow/internal/prompt"
)

// defaultPOVDays is the execution window applied when no end date is given.
const defaultPOVDays = 14

// Generator orchestrates the prompt -> completion -> document pipeline.
type Generator struct {
	cfg  *config.Config
	chat ChatCompleter
	now  func() time.Time
}

// New creates a Generator. A nil cfg falls back to defaults; the completer
// is required.
func New(cfg *config.Config, chat ChatCompleter, opts ...Option) (*Generator, error) {
	if chat == nil {
		return nil, ErrNilCompleter
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	g := &Generator{
		cfg:  cfg,
		chat: chat,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Generate runs the full workflow: solution document, POV deployment plan,
// and the optional diagram and import CSV. The POV prompt is fed the
// generated solution text so the two documents stay consistent.
func (g *Generator) Generate(ctx context.Context, req Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	start, end, err := g.resolvePOVWindow(req)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Period:   dateutil.FormatPeriod(start, end),
		Workdays: dateutil.Workdays(start, end),
	}

	solutionRaw, err := g.generateSolution(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("generating solution document: %w", err)
	}
	res.SolutionTitle = markdown.ExtractTitle(solutionRaw, req.CustomerName+" - AI 解决方案架构文档")
	res.SolutionMarkdown = markdown.StripFirstHeading(solutionRaw)

	povRaw, err := g.generatePOV(ctx, req, solutionRaw, res.Period, res.Workdays)
	if err != nil {
		return nil, fmt.Errorf("generating POV plan: %w", err)
	}
	res.POVTitle = markdown.ExtractTitle(povRaw, req.CustomerName+" - POV 部署计划")
	res.POVMarkdown = markdown.StripFirstHeading(povRaw)

	res.SolutionDocx, err = g.composeDocx(g.cfg.Templates.Solution, res.SolutionTitle, res.SolutionMarkdown, solutionCover)
	if err != nil {
		return nil, fmt.Errorf("composing solution docx: %w", err)
	}
	res.POVDocx, err = g.composeDocx(g.cfg.Templates.POV, res.POVTitle, res.POVMarkdown, povCover)
	if err != nil {
		return nil, fmt.Errorf("composing POV docx: %w", err)
	}

	if req.WithDiagram {
		res.DiagramSVG, err = g.generateDiagram(ctx, solutionRaw)
		if err != nil {
			return nil, err
		}
	}
	if req.WithImportCSV {
		res.ImportCSV, err = g.generateImportCSV(ctx, solutionRaw)
		if err != nil {
			return nil, err
		}
	}

	return res, nil
}

// resolvePOVWindow turns the request's date strings into a concrete window.
// An empty end date means start plus two weeks.
func (g *Generator) resolvePOVWindow(req Request) (start, end time.Time, err error) {
	start, err = dateutil.ParseDate(req.POVStart, g.now)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("pov start: %w", err)
	}
	if strings.TrimSpace(req.POVEnd) == "" {
		return start, start.AddDate(0, 0, defaultPOVDays), nil
	}
	end, err = dateutil.ParseDate(req.POVEnd, g.now)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("pov end: %w", err)
	}
	return start, end, nil
}

func (g *Generator) generateSolution(ctx context.Context, req Request) (string, error) {
	user := prompt.BuildSolutionUser(prompt.SolutionRequest{
		CustomerName: req.CustomerName,
		Budget:       req.Budget,
		Background:   req.Background,
		TemplateRef:  templateRef(g.cfg.Templates.Solution),
	})
	return g.chat.Complete(ctx, prompt.SolutionSystem, user)
}

func (g *Generator) generatePOV(ctx context.Context, req Request, solutionText, period string, workdays int) (string, error) {
	user := prompt.BuildPOVUser(prompt.POVRequest{
		SolutionText: solutionText,
		CustomerName: req.CustomerName,
		Period:       period,
		Workdays:     workdays,
		TeamRoster:   req.TeamRoster,
		TemplateRef:  templateRef(g.cfg.Templates.POV),
	})
	return g.chat.Complete(ctx, prompt.POVSystem, user)
}

func (g *Generator) generateDiagram(ctx context.Context, solutionText string) (string, error) {
	raw, err := g.chat.Complete(ctx, prompt.DiagramSystem, prompt.BuildDiagramUser(solutionText))
	if err != nil {
		return "", fmt.Errorf("generating diagram: %w", err)
	}
	svg, ok := postproc.ExtractSVG(raw)
	if !ok {
		return "", ErrNoDiagram
	}
	return svg, nil
}

func (g *Generator) generateImportCSV(ctx context.Context, solutionText string) (string, error) {
	raw, err := g.chat.Complete(ctx, prompt.ImportCSVSystem, prompt.BuildImportCSVUser(solutionText))
	if err != nil {
		return "", fmt.Errorf("generating import csv: %w", err)
	}
	return postproc.StripFences(raw), nil
}

// templateRef extracts the text of a reference template for prompt
// injection. Missing or unreadable templates degrade to no reference
// rather than failing the run.
func templateRef(path string) string {
	if path == "" || !fileutil.FileExists(path) {
		return ""
	}
	text, err := docx.ExtractText(path)
	if err != nil {
		return ""
	}
	return text
}
