package poegen

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pennz1/poe-workflow/internal/config"
	"github.com/pennz1/poe-workflow/internal/docx"
)

func TestComposeDocx_CoverSpacers(t *testing.T) {
	t.Parallel()

	g := newTestGenerator(t, &fakeCompleter{})
	pkg, err := g.composeDocx("", "封面标题", "正文段落。", povCover)
	if err != nil {
		t.Fatalf("composeDocx() error = %v", err)
	}

	doc := docPart(t, pkg)
	if got := strings.Count(doc, "<w:p></w:p>"); got < coverSpacerCount {
		t.Errorf("empty spacer paragraphs = %d, want at least %d", got, coverSpacerCount)
	}
	if !strings.Contains(doc, `<w:jc w:val="center"/>`) {
		t.Error("cover title is not centered")
	}
	if !strings.Contains(doc, `<w:br w:type="page"/>`) {
		t.Error("no page break after the cover")
	}
}

func TestComposeDocx_MissingTemplateFallsBack(t *testing.T) {
	t.Parallel()

	g := newTestGenerator(t, &fakeCompleter{})
	pkg, err := g.composeDocx(filepath.Join(t.TempDir(), "absent.docx"), "标题", "正文。", solutionCover)
	if err != nil {
		t.Fatalf("composeDocx() with missing template error = %v", err)
	}
	if !strings.Contains(docPart(t, pkg), "标题") {
		t.Error("fallback document missing cover title")
	}
}

func TestComposeDocx_BodyOptionsFromConfig(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Document.Font = "宋体"
	cfg.Document.BodySizePt = 10.5
	g, err := New(cfg, &fakeCompleter{}, WithNow(fixedNow))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	pkg, err := g.composeDocx("", "标题", "正文段落。", povCover)
	if err != nil {
		t.Fatalf("composeDocx() error = %v", err)
	}
	doc := docPart(t, pkg)
	if !strings.Contains(doc, `w:eastAsia="宋体"`) {
		t.Error("configured body font not applied")
	}
	if !strings.Contains(doc, `<w:sz w:val="21"/>`) {
		t.Error("configured body size not applied")
	}
}

func TestGenerate_TemplateReferenceInjected(t *testing.T) {
	t.Parallel()

	// Build a small reference template on disk.
	tmpl := docx.NewDocument()
	tmpl.AddParagraph().AddRun("模板章节：交付物清单", docx.RunFormat{})
	data, err := tmpl.Bytes()
	if err != nil {
		t.Fatalf("building template: %v", err)
	}
	path := filepath.Join(t.TempDir(), "solution.docx")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("writing template: %v", err)
	}

	cfg := config.DefaultConfig()
	cfg.Templates.Solution = path
	chat := &fakeCompleter{}
	g, err := New(cfg, chat, WithNow(fixedNow))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if _, err := g.Generate(context.Background(), testRequest()); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if !strings.Contains(chat.calls[0], "参考模板文档") {
		t.Error("solution prompt missing the template reference section")
	}
	if !strings.Contains(chat.calls[0], "模板章节：交付物清单") {
		t.Error("solution prompt missing the extracted template text")
	}
	// No POV template was configured.
	if strings.Contains(chat.calls[1], "参考模板文档") {
		t.Error("POV prompt has a template reference without a configured template")
	}
}
