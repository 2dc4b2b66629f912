package docx

import (
	"strconv"
	"strings"
)

// xmlWriter builds WordprocessingML with text escaping.
type xmlWriter struct {
	b strings.Builder
}

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func (w *xmlWriter) raw(s string)  { w.b.WriteString(s) }
func (w *xmlWriter) text(s string) { textEscaper.WriteString(&w.b, s) }

func (w *xmlWriter) String() string { return w.b.String() }

// writeRunProps emits the rPr block for a run. The font face goes to all
// four rFonts fields; leaving eastAsia unset makes Word substitute a
// fallback face for CJK characters.
func (w *xmlWriter) writeRunProps(f RunFormat) {
	if f.Font == "" && f.SizePt == 0 && !f.Bold && f.Color == "" {
		return
	}
	w.raw("<w:rPr>")
	if f.Font != "" {
		face := textEscaper.Replace(f.Font)
		w.raw(`<w:rFonts w:ascii="` + face + `" w:hAnsi="` + face +
			`" w:eastAsia="` + face + `" w:cs="` + face + `"/>`)
	}
	if f.Bold {
		w.raw("<w:b/>")
	}
	if f.Color != "" {
		w.raw(`<w:color w:val="` + textEscaper.Replace(f.Color) + `"/>`)
	}
	if f.SizePt > 0 {
		half := strconv.Itoa(int(f.SizePt*2 + 0.5))
		w.raw(`<w:sz w:val="` + half + `"/><w:szCs w:val="` + half + `"/>`)
	}
	w.raw("</w:rPr>")
}

func (p *Paragraph) writeXML(w *xmlWriter) {
	w.raw("<w:p>")
	if p.style != "" || p.align != "" || p.firstLineIndent {
		w.raw("<w:pPr>")
		if p.style != "" {
			w.raw(`<w:pStyle w:val="` + textEscaper.Replace(p.style) + `"/>`)
		}
		if p.align != "" {
			w.raw(`<w:jc w:val="` + string(p.align) + `"/>`)
		}
		// Indent only when no explicit alignment was requested.
		if p.firstLineIndent && p.align == "" {
			w.raw(`<w:ind w:firstLine="` + strconv.Itoa(firstLineIndentTwips) + `"/>`)
		}
		w.raw("</w:pPr>")
	}
	for _, r := range p.runs {
		if r.pageBreak {
			w.raw(`<w:r><w:br w:type="page"/></w:r>`)
			continue
		}
		w.raw("<w:r>")
		w.writeRunProps(r.format)
		w.raw(`<w:t xml:space="preserve">`)
		w.text(r.text)
		w.raw("</w:t></w:r>")
	}
	w.raw("</w:p>")
}

// tocInstruction selects heading levels 1-3, hyperlinked entries, and
// hidden tab leaders in web view.
const tocInstruction = ` TOC \o "1-3" \h \z \u `

func (t *tocField) writeXML(w *xmlWriter) {
	w.raw("<w:p>")
	w.raw(`<w:r><w:fldChar w:fldCharType="begin"/></w:r>`)
	w.raw(`<w:r><w:instrText xml:space="preserve">`)
	w.text(tocInstruction)
	w.raw(`</w:instrText></w:r>`)
	w.raw(`<w:r><w:fldChar w:fldCharType="separate"/></w:r>`)
	w.raw(`<w:r><w:t>`)
	w.text(tocPlaceholder)
	w.raw(`</w:t></w:r>`)
	w.raw(`<w:r><w:fldChar w:fldCharType="end"/></w:r>`)
	w.raw("</w:p>")
}

// singleBorders draws a plain grid around every cell.
const singleBorders = `<w:tblBorders>` +
	`<w:top w:val="single" w:sz="4" w:space="0" w:color="auto"/>` +
	`<w:left w:val="single" w:sz="4" w:space="0" w:color="auto"/>` +
	`<w:bottom w:val="single" w:sz="4" w:space="0" w:color="auto"/>` +
	`<w:right w:val="single" w:sz="4" w:space="0" w:color="auto"/>` +
	`<w:insideH w:val="single" w:sz="4" w:space="0" w:color="auto"/>` +
	`<w:insideV w:val="single" w:sz="4" w:space="0" w:color="auto"/>` +
	`</w:tblBorders>`

func (t *table) writeXML(w *xmlWriter) {
	w.raw("<w:tbl><w:tblPr>")
	w.raw(`<w:tblW w:w="0" w:type="auto"/>`)
	w.raw(singleBorders)
	w.raw("</w:tblPr><w:tblGrid>")
	for range t.cols {
		w.raw("<w:gridCol/>")
	}
	w.raw("</w:tblGrid>")

	for ri, row := range t.rows {
		header := ri == 0
		w.raw("<w:tr>")
		// Column iteration is bounded by the declared grid width: short rows
		// pad with empty cells, long rows truncate.
		for ci := 0; ci < t.cols; ci++ {
			text := ""
			if ci < len(row) {
				text = row[ci]
			}
			w.raw("<w:tc><w:tcPr>")
			if header && t.format.HeaderFill != "" {
				w.raw(`<w:shd w:val="clear" w:fill="` + textEscaper.Replace(t.format.HeaderFill) + `"/>`)
			}
			w.raw("</w:tcPr><w:p><w:r>")
			cellFormat := RunFormat{Font: t.format.Font, SizePt: t.format.SizePt}
			if header {
				cellFormat.Bold = true
				cellFormat.Color = t.format.HeaderColor
			}
			w.writeRunProps(cellFormat)
			w.raw(`<w:t xml:space="preserve">`)
			w.text(text)
			w.raw("</w:t></w:r></w:p></w:tc>")
		}
		w.raw("</w:tr>")
	}
	w.raw("</w:tbl>")
}
