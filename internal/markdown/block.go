package markdown

// Block is one structural unit of parsed output. Implementations are
// Heading, Paragraph, Table, and ListItem.
type Block interface {
	block()
}

// Heading is an ATX heading (level 1-4) or a bold line promoted to level 3.
type Heading struct {
	Level int // 1-4
	Text  string
}

// Span is a contiguous piece of paragraph text with a single weight.
type Span struct {
	Text string
	Bold bool
}

// Paragraph is a run of inline spans rendered as one paragraph.
type Paragraph struct {
	Spans []Span
}

// Table holds pipe-table rows. The first row is the header. Rows are kept
// as parsed; width normalization happens at render time.
type Table struct {
	Rows [][]string
}

// ListItem is a single-level list entry. Ordered items keep their source
// numbering embedded in Text; unordered items carry the bare item text.
type ListItem struct {
	Ordered bool
	Text    string
}

func (Heading) block()   {}
func (Paragraph) block() {}
func (Table) block()     {}
func (ListItem) block()  {}
