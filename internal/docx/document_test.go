package docx

import (
	"strings"
	"testing"
)

func TestDocumentXML_Runs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		build        func(d *Document)
		wantContains []string
		wantNot      []string
	}{
		{
			name: "run fonts cover latin and east asian fields",
			build: func(d *Document) {
				d.AddParagraph().AddRun("架构", RunFormat{Font: "微软雅黑", SizePt: 9})
			},
			wantContains: []string{
				`w:ascii="微软雅黑"`,
				`w:hAnsi="微软雅黑"`,
				`w:eastAsia="微软雅黑"`,
				`w:cs="微软雅黑"`,
				`<w:sz w:val="18"/>`,
				`<w:szCs w:val="18"/>`,
				`<w:t xml:space="preserve">架构</w:t>`,
			},
		},
		{
			name: "bold colored run",
			build: func(d *Document) {
				d.AddParagraph().AddRun("Title", RunFormat{SizePt: 18, Bold: true, Color: "4874CB"})
			},
			wantContains: []string{
				`<w:b/>`,
				`<w:color w:val="4874CB"/>`,
				`<w:sz w:val="36"/>`,
			},
		},
		{
			name: "text is escaped",
			build: func(d *Document) {
				d.AddParagraph().AddRun(`a < b & "c"`, RunFormat{})
			},
			wantContains: []string{`a &lt; b &amp; &quot;c&quot;`},
			wantNot:      []string{`a < b`},
		},
		{
			name: "centered paragraph",
			build: func(d *Document) {
				d.AddParagraph().SetAlignment(AlignCenter).AddRun("x", RunFormat{})
			},
			wantContains: []string{`<w:jc w:val="center"/>`},
		},
		{
			name: "first line indent suppressed by explicit alignment",
			build: func(d *Document) {
				d.AddParagraph().SetAlignment(AlignCenter).SetFirstLineIndent().AddRun("x", RunFormat{})
			},
			wantNot: []string{`w:firstLine`},
		},
		{
			name: "first line indent without alignment",
			build: func(d *Document) {
				d.AddParagraph().SetFirstLineIndent().AddRun("x", RunFormat{})
			},
			wantContains: []string{`<w:ind w:firstLine="420"/>`},
		},
		{
			name: "page break",
			build: func(d *Document) {
				d.AddPageBreak()
			},
			wantContains: []string{`<w:br w:type="page"/>`},
		},
		{
			name: "heading style",
			build: func(d *Document) {
				d.AddParagraph().SetStyle("Heading2").AddRun("Sec", RunFormat{})
			},
			wantContains: []string{`<w:pStyle w:val="Heading2"/>`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d := NewDocument()
			tt.build(d)
			got := d.documentXML()
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("document.xml missing %q\nxml: %s", want, got)
				}
			}
			for _, not := range tt.wantNot {
				if strings.Contains(got, not) {
					t.Errorf("document.xml should not contain %q\nxml: %s", not, got)
				}
			}
		})
	}
}

func TestDocumentXML_TOCField(t *testing.T) {
	t.Parallel()

	d := NewDocument()
	d.AddTOC("目录", RunFormat{Font: "微软雅黑", SizePt: 16, Bold: true})
	got := d.documentXML()

	for _, want := range []string{
		`<w:fldChar w:fldCharType="begin"/>`,
		`TOC \o &quot;1-3&quot; \h \z \u`,
		`<w:fldChar w:fldCharType="separate"/>`,
		`<w:fldChar w:fldCharType="end"/>`,
		`<w:sz w:val="32"/>`, // 16pt title
		"<w:b/>",
		"目录",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("TOC xml missing %q\nxml: %s", want, got)
		}
	}
}

func TestDocumentXML_TOCTitleFormatHonored(t *testing.T) {
	t.Parallel()

	d := NewDocument()
	d.AddTOC("目录", RunFormat{Font: "宋体", SizePt: 14})
	got := d.documentXML()

	if !strings.Contains(got, `<w:sz w:val="28"/>`) {
		t.Errorf("TOC title size not taken from format\nxml: %s", got)
	}
	if strings.Contains(got, `<w:sz w:val="32"/>`) {
		t.Errorf("TOC title stuck at 16pt despite format\nxml: %s", got)
	}
	if strings.Contains(got, "<w:b/>") {
		t.Errorf("TOC title bold despite plain format\nxml: %s", got)
	}
}

func TestDocumentXML_Table(t *testing.T) {
	t.Parallel()

	d := NewDocument()
	d.AddTable([][]string{
		{"角色", "所属方", "姓名"},
		{"架构师", "乙方"}, // short row pads to grid width
		{"业务员", "甲方", "张伟", "备注"}, // widest row sets the grid
	}, TableFormat{Font: "微软雅黑", SizePt: 9, HeaderFill: "156082", HeaderColor: "FFFFFF"})

	got := d.documentXML()

	if n := strings.Count(got, "<w:gridCol/>"); n != 4 {
		t.Errorf("grid declares %d columns, want 4 (max row width)", n)
	}
	if n := strings.Count(got, "<w:tr>"); n != 3 {
		t.Errorf("table has %d rows, want 3", n)
	}
	if n := strings.Count(got, "<w:tc>"); n != 12 {
		t.Errorf("table has %d cells, want 12 (3 rows x 4 bounded columns)", n)
	}
	if n := strings.Count(got, `<w:shd w:val="clear" w:fill="156082"/>`); n != 4 {
		t.Errorf("header shading on %d cells, want 4", n)
	}
	if n := strings.Count(got, `<w:color w:val="FFFFFF"/>`); n != 4 {
		t.Errorf("white header text on %d cells, want 4", n)
	}
	if !strings.Contains(got, "张伟") {
		t.Errorf("table xml missing cell text\nxml: %s", got)
	}
}

func TestAddTable_EmptyInputs(t *testing.T) {
	t.Parallel()

	d := NewDocument()
	d.AddTable(nil, TableFormat{})
	d.AddTable([][]string{}, TableFormat{})
	if len(d.elements) != 0 {
		t.Errorf("empty tables appended %d elements, want 0", len(d.elements))
	}
}
