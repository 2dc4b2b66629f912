package docx

import (
	"iter"
	"strconv"

	"github.com/pennz1/poe-workflow/internal/markdown"
)

// bulletPrefix replaces the source "- " / "* " marker on unordered items.
const bulletPrefix = "•  "

// RenderOptions controls body styling for rendered markdown blocks.
type RenderOptions struct {
	Font            string  // applied to Latin and eastAsia fields alike
	BodySizePt      float64 // body and table text size
	FirstLineIndent bool    // indent paragraphs without explicit alignment
	HeaderFill      string  // table header shading, "RRGGBB"
	HeaderColor     string  // table header text color, "RRGGBB"
}

// headingSizePt maps heading level to font size. Level 4 reuses level 3.
func headingSizePt(level int) float64 {
	switch level {
	case 1:
		return 18
	case 2:
		return 14
	default:
		return 12
	}
}

// RenderMarkdown parses content and renders the resulting blocks into doc.
func RenderMarkdown(doc *Document, content string, opts RenderOptions) {
	RenderBlocks(doc, markdown.Blocks(content), opts)
}

// RenderBlocks appends each block to doc as a styled element, in order.
// The document is mutated in place; any cover pages or page breaks already
// appended stay ahead of the rendered body.
func RenderBlocks(doc *Document, blocks iter.Seq[markdown.Block], opts RenderOptions) {
	for block := range blocks {
		switch b := block.(type) {
		case markdown.Heading:
			p := doc.AddParagraph().SetStyle("Heading" + strconv.Itoa(b.Level))
			p.AddRun(b.Text, RunFormat{
				Font:   opts.Font,
				SizePt: headingSizePt(b.Level),
				Bold:   true,
			})

		case markdown.Paragraph:
			renderSpans(doc, b.Spans, opts)

		case markdown.ListItem:
			text := b.Text
			if !b.Ordered {
				text = bulletPrefix + text
			}
			// List items carry inline bold markers too.
			renderSpans(doc, markdown.InlineSpans(text), opts)

		case markdown.Table:
			doc.AddTable(b.Rows, TableFormat{
				Font:        opts.Font,
				SizePt:      opts.BodySizePt,
				HeaderFill:  opts.HeaderFill,
				HeaderColor: opts.HeaderColor,
			})
			doc.AddParagraph() // spacer after the grid
		}
	}
}

func renderSpans(doc *Document, spans []markdown.Span, opts RenderOptions) {
	p := doc.AddParagraph()
	if opts.FirstLineIndent {
		p.SetFirstLineIndent()
	}
	for _, span := range spans {
		p.AddRun(span.Text, RunFormat{
			Font:   opts.Font,
			SizePt: opts.BodySizePt,
			Bold:   span.Bold,
		})
	}
}
