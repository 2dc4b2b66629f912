package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: poegen <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  generate   Generate solution and POV documents for a customer")
	fmt.Fprintln(w, "  preview    Render a generated markdown file to HTML or PDF")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'poegen help <command>' for details on a specific command.")
}

// printGenerateUsage prints usage for the generate command.
func printGenerateUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: poegen generate -n <customer> -b <background> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate a solution-architecture document and a POV deployment plan.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Customer:")
	fmt.Fprintln(w, "  -n, --customer <s>        Customer name (required)")
	fmt.Fprintln(w, "      --budget <s>          Estimated annual consumption, free-form")
	fmt.Fprintln(w, "  -b, --background <s>      Customer background text")
	fmt.Fprintln(w, "      --background-file <p> Read customer background from file")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "POV window:")
	fmt.Fprintln(w, "      --pov-start <s>       Start date: \"auto\" or YYYY-MM-DD")
	fmt.Fprintln(w, "      --pov-end <s>         End date (\"\" = start + 14 days)")
	fmt.Fprintln(w, "      --team <s>            Team roster, one member per line")
	fmt.Fprintln(w, "      --team-file <p>       Read team roster from file")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (\"\" = current)")
	fmt.Fprintln(w, "      --diagram             Also generate an SVG architecture diagram")
	fmt.Fprintln(w, "      --import-csv          Also generate a resource import CSV")
	fmt.Fprintln(w, "      --markdown            Also write the raw markdown files")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Configuration:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  AZURE_OPENAI_KEY          API key")
	fmt.Fprintln(w, "  AZURE_OPENAI_ENDPOINT     https://<resource>.openai.azure.com/")
	fmt.Fprintln(w, "  AZURE_OPENAI_DEPLOYMENT   Deployment name")
	fmt.Fprintln(w, "  AZURE_OPENAI_API_VERSION  API version (default 2024-06-01)")
}

// printPreviewUsage prints usage for the preview command.
func printPreviewUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: poegen preview <file.md> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render a generated markdown file to a styled HTML page, or to PDF")
	fmt.Fprintln(w, "via headless Chrome.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file (\"\" = input name with new extension)")
	fmt.Fprintln(w, "      --title <s>           HTML page title (\"\" = first heading)")
	fmt.Fprintln(w, "      --pdf                 Render to PDF instead of HTML")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "generate":
		printGenerateUsage(env.Stdout)
	case "preview":
		printPreviewUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: poegen version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: poegen help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
