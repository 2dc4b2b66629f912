package docx

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ExtractText reads a .docx file and returns its visible text: one line per
// paragraph, tables flattened into pipe-delimited markdown rows with a
// separator line after the header. The result feeds the prompt builders as
// reference material.
func ExtractText(path string) (string, error) {
	doc, err := LoadTemplate(path)
	if err != nil {
		return "", err
	}
	return doc.TemplateText()
}

// TemplateText returns the extracted text of the template the document was
// loaded from. Blank documents have none.
func (d *Document) TemplateText() (string, error) {
	if len(d.tmpl.body) == 0 {
		return "", nil
	}
	return extractDocText(d.tmpl.body)
}

// extractDocText walks the document part token stream, collecting w:t text
// grouped by paragraph and by table cell.
func extractDocText(data []byte) (string, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	var (
		lines     []string
		para      strings.Builder
		cell      strings.Builder
		row       []string
		tableRows [][]string
		tblDepth  int
		inText    bool
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrTemplateInvalid, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tbl":
				tblDepth++
			case "tc":
				cell.Reset()
			case "p":
				if tblDepth == 0 {
					para.Reset()
				}
			case "t":
				inText = true
			}
		case xml.CharData:
			if !inText {
				continue
			}
			if tblDepth > 0 {
				cell.Write(t)
			} else {
				para.Write(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if tblDepth == 0 {
					if text := strings.TrimSpace(para.String()); text != "" {
						lines = append(lines, text)
					}
				}
			case "tc":
				text := strings.ReplaceAll(cell.String(), "\n", " ")
				row = append(row, strings.TrimSpace(text))
			case "tr":
				tableRows = append(tableRows, row)
				row = nil
			case "tbl":
				tblDepth--
				if tblDepth == 0 && len(tableRows) > 0 {
					lines = append(lines, flattenTable(tableRows)...)
					tableRows = nil
				}
			}
		}
	}

	return strings.Join(lines, "\n"), nil
}

// flattenTable renders extracted rows as markdown pipe rows: header,
// separator, data rows, then a blank spacer line.
func flattenTable(rows [][]string) []string {
	out := make([]string, 0, len(rows)+2)
	out = append(out, "| "+strings.Join(rows[0], " | ")+" |")

	sep := make([]string, len(rows[0]))
	for i := range sep {
		sep[i] = "---"
	}
	out = append(out, "| "+strings.Join(sep, " | ")+" |")

	for _, row := range rows[1:] {
		out = append(out, "| "+strings.Join(row, " | ")+" |")
	}
	return append(out, "")
}
