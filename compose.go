package poegen

import (
	"github.com/pennz1/poe-workflow/internal/docx"
	"github.com/pennz1/poe-workflow/internal/fileutil"
)

// Document composition constants. The cover colors and sizes follow the
// established house style for the two document kinds.
const (
	coverSpacerCount = 8
	coverFont        = "Microsoft YaHei UI"

	defaultBodyFont   = "微软雅黑"
	defaultBodySizePt = 9

	tocTitleSizePt = 16

	tableHeaderFill  = "156082"
	tableHeaderColor = "FFFFFF"
)

// coverStyle describes the cover page of one document kind.
type coverStyle struct {
	sizePt  float64
	color   string
	withTOC bool
}

var (
	solutionCover = coverStyle{sizePt: 18, color: "4874CB", withTOC: true}
	povCover      = coverStyle{sizePt: 22, color: "156082", withTOC: false}
)

// composeDocx builds the final document package: template styling, cover
// page, optional TOC field, rendered markdown body. A missing template file
// falls back to a blank A4 document.
func (g *Generator) composeDocx(templatePath, title, body string, style coverStyle) ([]byte, error) {
	doc, err := loadDocument(templatePath)
	if err != nil {
		return nil, err
	}

	// Push the cover title toward the vertical center of the page.
	for range coverSpacerCount {
		doc.AddParagraph()
	}
	doc.AddParagraph().
		SetAlignment(docx.AlignCenter).
		AddRun(title, docx.RunFormat{Font: coverFont, SizePt: style.sizePt, Bold: true, Color: style.color})
	doc.AddPageBreak()

	if style.withTOC {
		doc.AddTOC("目录", docx.RunFormat{Font: coverFont, SizePt: tocTitleSizePt, Bold: true})
		doc.AddPageBreak()
	}

	docx.RenderMarkdown(doc, body, g.renderOptions())
	return doc.Bytes()
}

func loadDocument(templatePath string) (*docx.Document, error) {
	if templatePath == "" || !fileutil.FileExists(templatePath) {
		return docx.NewDocument(), nil
	}
	return docx.LoadTemplate(templatePath)
}

func (g *Generator) renderOptions() docx.RenderOptions {
	opts := docx.RenderOptions{
		Font:            defaultBodyFont,
		BodySizePt:      defaultBodySizePt,
		FirstLineIndent: g.cfg.Document.FirstLineIndent,
		HeaderFill:      tableHeaderFill,
		HeaderColor:     tableHeaderColor,
	}
	if g.cfg.Document.Font != "" {
		opts.Font = g.cfg.Document.Font
	}
	if g.cfg.Document.BodySizePt > 0 {
		opts.BodySizePt = g.cfg.Document.BodySizePt
	}
	return opts
}
