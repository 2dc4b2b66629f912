package main

import "testing"

func TestParseGenerateFlags(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		f, err := parseGenerateFlags(nil)
		if err != nil {
			t.Fatalf("parseGenerateFlags() error = %v", err)
		}
		if f.pov.start != "auto" {
			t.Errorf("pov.start = %q, want auto", f.pov.start)
		}
		if f.output.withDiagram || f.output.withCSV || f.output.markdown {
			t.Error("optional outputs enabled by default")
		}
	})

	t.Run("full invocation", func(t *testing.T) {
		t.Parallel()
		f, err := parseGenerateFlags([]string{
			"-n", "Contoso",
			"--budget", "50k+",
			"-b", "零售行业背景",
			"--pov-start", "2026-03-02",
			"--pov-end", "2026-03-13",
			"--team", "项目经理: 张伟 (甲方)",
			"-o", "out",
			"--diagram", "--import-csv", "--markdown",
			"-c", "team.yaml", "-q",
		})
		if err != nil {
			t.Fatalf("parseGenerateFlags() error = %v", err)
		}
		if f.customer.name != "Contoso" || f.customer.budget != "50k+" {
			t.Errorf("customer flags = %+v", f.customer)
		}
		if f.pov.start != "2026-03-02" || f.pov.end != "2026-03-13" {
			t.Errorf("pov flags = %+v", f.pov)
		}
		if f.output.dir != "out" || !f.output.withDiagram || !f.output.withCSV || !f.output.markdown {
			t.Errorf("output flags = %+v", f.output)
		}
		if f.common.config != "team.yaml" || !f.common.quiet {
			t.Errorf("common flags = %+v", f.common)
		}
	})

	t.Run("unknown flag", func(t *testing.T) {
		t.Parallel()
		if _, err := parseGenerateFlags([]string{"--no-such-flag"}); err == nil {
			t.Error("parseGenerateFlags() accepted unknown flag")
		}
	})
}

func TestParsePreviewFlags(t *testing.T) {
	t.Parallel()

	f, positional, err := parsePreviewFlags([]string{"doc.md", "--pdf", "-o", "doc-out.pdf", "--title", "预览"})
	if err != nil {
		t.Fatalf("parsePreviewFlags() error = %v", err)
	}
	if len(positional) != 1 || positional[0] != "doc.md" {
		t.Errorf("positional = %v", positional)
	}
	if !f.pdf || f.output != "doc-out.pdf" || f.title != "预览" {
		t.Errorf("flags = %+v", f)
	}
}
