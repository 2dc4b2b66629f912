package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	poegen "github.com/pennz1/poe-workflow"
	"github.com/pennz1/poe-workflow/internal/config"
	"github.com/pennz1/poe-workflow/internal/llm"
)

// Sentinel errors for CLI operations.
var (
	ErrReadInput   = errors.New("failed to read input file")
	ErrWriteOutput = errors.New("failed to write output file")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Output file name suffixes appended to the sanitized customer name.
const (
	solutionDocxSuffix = "_解决方案架构文档.docx"
	povDocxSuffix      = "_POV部署计划.docx"
	solutionMDSuffix   = "_解决方案架构文档.md"
	povMDSuffix        = "_POV部署计划.md"

	diagramFileName = "architecture_diagram.svg"
	csvFileName     = "resource_import.csv"
)

// runGenerate loads configuration, runs the generation workflow, and writes
// all requested artifacts to the output directory.
func runGenerate(ctx context.Context, flags *generateFlags, env *Environment) error {
	warnUnknownEnvVars(env.Stderr)
	envCfg := loadEnvConfig()

	cfg, err := loadConfigFor(flags.common.config, envCfg, env)
	if err != nil {
		return err
	}

	background, err := resolveText(flags.customer.background, flags.customer.backgroundFile)
	if err != nil {
		return err
	}
	roster, err := resolveText(flags.pov.roster, flags.pov.rosterFile)
	if err != nil {
		return err
	}

	client, err := llm.NewClient(llm.Config{
		APIKey:      cfg.Azure.Key,
		Endpoint:    cfg.Azure.Endpoint,
		Deployment:  cfg.Azure.Deployment,
		APIVersion:  cfg.Azure.APIVersion,
		Temperature: cfg.Generation.Temperature,
		MaxTokens:   cfg.Generation.MaxTokens,
		Timeout:     cfg.GenerationTimeout(),
	})
	if err != nil {
		return err
	}

	gen, err := poegen.New(cfg, client, poegen.WithNow(env.Now))
	if err != nil {
		return err
	}

	if !flags.common.quiet {
		fmt.Fprintln(env.Stderr, "Generating documents, this can take a few minutes...")
	}

	res, err := gen.Generate(ctx, poegen.Request{
		CustomerName:  flags.customer.name,
		Budget:        flags.customer.budget,
		Background:    background,
		POVStart:      flags.pov.start,
		POVEnd:        flags.pov.end,
		TeamRoster:    roster,
		WithDiagram:   flags.output.withDiagram,
		WithImportCSV: flags.output.withCSV,
	})
	if err != nil {
		return err
	}

	outDir := resolveOutputDir(flags.output.dir, cfg)
	if err := os.MkdirAll(outDir, dirPermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	base := sanitizeFileName(flags.customer.name)
	outputs := []struct {
		name string
		data []byte
		keep bool
	}{
		{base + solutionDocxSuffix, res.SolutionDocx, true},
		{base + povDocxSuffix, res.POVDocx, true},
		{base + solutionMDSuffix, []byte("# " + res.SolutionTitle + "\n\n" + res.SolutionMarkdown), flags.output.markdown},
		{base + povMDSuffix, []byte("# " + res.POVTitle + "\n\n" + res.POVMarkdown), flags.output.markdown},
		{diagramFileName, []byte(res.DiagramSVG), flags.output.withDiagram},
		{csvFileName, []byte(res.ImportCSV), flags.output.withCSV},
	}

	for _, out := range outputs {
		if !out.keep {
			continue
		}
		path := filepath.Join(outDir, out.name)
		if err := os.WriteFile(path, out.data, filePermissions); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		if !flags.common.quiet {
			fmt.Fprintf(env.Stdout, "Created %s\n", path)
		}
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "POV window: %s (%d workdays)\n", res.Period, res.Workdays)
	}
	return nil
}

// loadConfigFor resolves the config source: explicit flag, then POEGEN_CONFIG,
// then the environment defaults. Env-var credential overlays apply last.
func loadConfigFor(flagPath string, envCfg *envConfig, env *Environment) (*config.Config, error) {
	configPath := flagPath
	if configPath == "" {
		configPath = envCfg.ConfigPath
	}

	cfg := env.Config
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	applyEnvConfig(envCfg, cfg)
	return cfg, nil
}

// resolveText returns inline text, or the content of the given file when the
// inline form is empty.
func resolveText(inline, fromFile string) (string, error) {
	if inline != "" || fromFile == "" {
		return inline, nil
	}
	data, err := os.ReadFile(fromFile) // #nosec G304 -- path is user-provided
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadInput, err)
	}
	return string(data), nil
}

// resolveOutputDir picks the output directory: CLI flag, then config, then
// the current directory.
func resolveOutputDir(flagDir string, cfg *config.Config) string {
	if flagDir != "" {
		return flagDir
	}
	if cfg.Output.Dir != "" {
		return cfg.Output.Dir
	}
	return "."
}

// sanitizeFileName strips characters that are unsafe in file names across
// platforms. CJK characters pass through untouched.
func sanitizeFileName(name string) string {
	replacer := strings.NewReplacer(
		"/", "_", "\\", "_", ":", "_", "*", "_",
		"?", "_", `"`, "_", "<", "_", ">", "_", "|", "_",
	)
	cleaned := strings.TrimSpace(replacer.Replace(name))
	if cleaned == "" {
		return "output"
	}
	return cleaned
}
