package docx

// Alignment values map to the w:jc paragraph property.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// firstLineIndentTwips is a two-character first-line indent for 9pt CJK body
// text (1 twip = 1/20pt).
const firstLineIndentTwips = 420

// RunFormat holds character formatting for a run. The font face is applied
// to the Latin, hAnsi, eastAsia, and complex-script fields together.
type RunFormat struct {
	Font   string
	SizePt float64 // 0 = inherit from style
	Bold   bool
	Color  string // "RRGGBB", empty = inherit
}

// TableFormat holds formatting for a rendered table.
type TableFormat struct {
	Font        string
	SizePt      float64
	HeaderFill  string // shading fill for the header row, "RRGGBB"
	HeaderColor string // text color for the header row, "RRGGBB"
}

// element is one body-level unit serialized into word/document.xml.
type element interface {
	writeXML(w *xmlWriter)
}

// Document accumulates body elements and the template parts they are
// packaged with. The zero value is not usable; construct with NewDocument
// or LoadTemplate.
type Document struct {
	elements []element
	tmpl     *templateParts
}

// NewDocument returns a blank document with built-in minimal package parts.
func NewDocument() *Document {
	return &Document{tmpl: blankParts()}
}

type run struct {
	text      string
	format    RunFormat
	pageBreak bool
}

// Paragraph is a body paragraph under construction. Mutations affect the
// owning document directly.
type Paragraph struct {
	runs            []run
	align           Alignment
	style           string
	firstLineIndent bool
}

// AddParagraph appends and returns an empty paragraph.
func (d *Document) AddParagraph() *Paragraph {
	p := &Paragraph{}
	d.elements = append(d.elements, p)
	return p
}

// SetAlignment sets explicit paragraph alignment.
func (p *Paragraph) SetAlignment(a Alignment) *Paragraph {
	p.align = a
	return p
}

// SetStyle sets the paragraph style ID (e.g. "Heading1").
func (p *Paragraph) SetStyle(id string) *Paragraph {
	p.style = id
	return p
}

// SetFirstLineIndent enables a first-line indent. Ignored at serialization
// time when explicit alignment is set.
func (p *Paragraph) SetFirstLineIndent() *Paragraph {
	p.firstLineIndent = true
	return p
}

// AddRun appends a formatted text run to the paragraph.
func (p *Paragraph) AddRun(text string, f RunFormat) *Paragraph {
	p.runs = append(p.runs, run{text: text, format: f})
	return p
}

// AddPageBreak appends a paragraph holding a single page-break run.
func (d *Document) AddPageBreak() {
	p := &Paragraph{}
	p.runs = append(p.runs, run{pageBreak: true})
	d.elements = append(d.elements, p)
}

// tocPlaceholder shows until Word refreshes the field.
const tocPlaceholder = "（请右键点击此处 → 更新域，生成目录）"

// tocField is a TOC field code paragraph. Word fills it in when the user
// updates fields; until then the placeholder text is shown.
type tocField struct{}

// AddTOC appends a centered TOC title in the given format, followed by the
// TOC field itself. Heading styles 1-3 feed the generated entries.
func (d *Document) AddTOC(title string, f RunFormat) {
	d.AddParagraph().SetAlignment(AlignCenter).AddRun(title, f)
	d.AddParagraph()
	d.elements = append(d.elements, &tocField{})
}

// table is a grid of plain-text cells with a shaded header row.
type table struct {
	rows   [][]string
	cols   int
	format TableFormat
}

// AddTable appends a table. The grid width is the maximum row width; short
// rows are padded with empty cells and long rows truncated at write time.
func (d *Document) AddTable(rows [][]string, f TableFormat) {
	if len(rows) == 0 {
		return
	}
	cols := 0
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	if cols == 0 {
		return
	}
	d.elements = append(d.elements, &table{rows: rows, cols: cols, format: f})
}
