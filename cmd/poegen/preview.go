package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	poegen "github.com/pennz1/poe-workflow"
	"github.com/pennz1/poe-workflow/internal/markdown"
)

// ErrNoPreviewInput is returned when the preview command gets no file.
var ErrNoPreviewInput = errors.New("usage: poegen preview <file.md> [flags]")

// runPreview renders a generated markdown file to HTML, or to PDF when
// --pdf is set.
func runPreview(ctx context.Context, positional []string, flags *previewFlags, env *Environment) error {
	if len(positional) == 0 {
		return ErrNoPreviewInput
	}
	inputPath := positional[0]

	data, err := os.ReadFile(inputPath) // #nosec G304 -- path is user-provided
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadInput, err)
	}
	content := string(data)

	title := flags.title
	if title == "" {
		fallback := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
		title = markdown.ExtractTitle(content, fallback)
	}

	html, err := poegen.NewPreviewer().Render(ctx, title, content)
	if err != nil {
		return err
	}

	if !flags.pdf {
		outputPath := resolvePreviewOutput(flags.output, inputPath, ".html")
		if err := os.WriteFile(outputPath, []byte(html), filePermissions); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		report(flags.common.quiet, env, outputPath)
		return nil
	}

	exporter := poegen.NewPDFExporter(0)
	defer func() { _ = exporter.Close() }()

	pdf, err := exporter.Export(ctx, html)
	if err != nil {
		return err
	}
	outputPath := resolvePreviewOutput(flags.output, inputPath, ".pdf")
	if err := os.WriteFile(outputPath, pdf, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	report(flags.common.quiet, env, outputPath)
	return nil
}

// resolvePreviewOutput picks the output path: explicit flag, or the input
// name with the target extension.
func resolvePreviewOutput(flagOutput, inputPath, ext string) string {
	if flagOutput != "" {
		return flagOutput
	}
	return strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ext
}

func report(quiet bool, env *Environment, path string) {
	if !quiet {
		fmt.Fprintf(env.Stdout, "Created %s\n", path)
	}
}
