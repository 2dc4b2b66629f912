package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config string
	quiet  bool
}

// customerFlags holds customer-facing input flags.
type customerFlags struct {
	name           string
	budget         string
	background     string
	backgroundFile string
}

// povFlags holds POV window and team flags.
type povFlags struct {
	start      string
	end        string
	roster     string
	rosterFile string
}

// outputFlags holds output selection flags.
type outputFlags struct {
	dir         string
	withDiagram bool
	withCSV     bool
	markdown    bool // also keep the raw markdown alongside the .docx
}

// generateFlags holds all flags for the generate command.
type generateFlags struct {
	common   commonFlags
	customer customerFlags
	pov      povFlags
	output   outputFlags
}

// previewFlags holds flags for the preview command.
type previewFlags struct {
	common commonFlags
	output string
	title  string
	pdf    bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
}

// addCustomerFlags adds customer input flags to a FlagSet.
func addCustomerFlags(fs *flag.FlagSet, f *customerFlags) {
	fs.StringVarP(&f.name, "customer", "n", "", "customer name (required)")
	fs.StringVar(&f.budget, "budget", "", "estimated annual consumption, free-form")
	fs.StringVarP(&f.background, "background", "b", "", "customer background text")
	fs.StringVar(&f.backgroundFile, "background-file", "", "read customer background from file")
}

// addPOVFlags adds POV window flags to a FlagSet.
func addPOVFlags(fs *flag.FlagSet, f *povFlags) {
	fs.StringVar(&f.start, "pov-start", "auto", "POV start date: \"auto\" or YYYY-MM-DD")
	fs.StringVar(&f.end, "pov-end", "", "POV end date (\"\" = start + 14 days)")
	fs.StringVar(&f.roster, "team", "", "team roster, one member per line")
	fs.StringVar(&f.rosterFile, "team-file", "", "read team roster from file")
}

// addOutputFlags adds output selection flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVarP(&f.dir, "output", "o", "", "output directory (\"\" = current)")
	fs.BoolVar(&f.withDiagram, "diagram", false, "also generate an SVG architecture diagram")
	fs.BoolVar(&f.withCSV, "import-csv", false, "also generate a resource import CSV")
	fs.BoolVar(&f.markdown, "markdown", false, "also write the raw markdown files")
}

// parseGenerateFlags parses generate command flags.
func parseGenerateFlags(args []string) (*generateFlags, error) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	f := &generateFlags{}

	addCommonFlags(fs, &f.common)
	addCustomerFlags(fs, &f.customer)
	addPOVFlags(fs, &f.pov)
	addOutputFlags(fs, &f.output)

	fs.Usage = func() { printGenerateUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}

// parsePreviewFlags parses preview command flags and returns positional args.
func parsePreviewFlags(args []string) (*previewFlags, []string, error) {
	fs := flag.NewFlagSet("preview", flag.ContinueOnError)
	f := &previewFlags{}

	addCommonFlags(fs, &f.common)
	fs.StringVarP(&f.output, "output", "o", "", "output file (\"\" = input name with new extension)")
	fs.StringVar(&f.title, "title", "", "HTML page title (\"\" = first heading)")
	fs.BoolVar(&f.pdf, "pdf", false, "render to PDF via headless Chrome instead of HTML")

	fs.Usage = func() { printPreviewUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
