package docx

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// documentPartName is the main document part inside the docx package.
const documentPartName = "word/document.xml"

// templateParts holds everything from a source .docx package except the body
// content: all sibling parts verbatim, the original w:document opening tag
// (with its namespace declarations), and the section properties.
type templateParts struct {
	names  []string          // part names in original order, minus document.xml
	parts  map[string][]byte // part name -> raw bytes
	docTag string            // opening <w:document ...> tag
	sectPr string            // raw <w:sectPr>...</w:sectPr>, "" if absent
	body   []byte            // original document.xml, kept for text extraction
}

var documentTagPattern = regexp.MustCompile(`<w:document[^>]*>`)

// LoadTemplate opens a .docx template and returns a document with the
// template's styling intact and the body content cleared.
func LoadTemplate(path string) (*Document, error) {
	f, err := os.Open(path) // #nosec G304 -- template path is user-provided
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateOpen, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateOpen, err)
	}
	tmpl, err := readParts(f, info.Size())
	if err != nil {
		return nil, err
	}
	return &Document{tmpl: tmpl}, nil
}

// LoadTemplateReader is LoadTemplate over an in-memory or already-open
// package (used by tests and future upload paths).
func LoadTemplateReader(r io.ReaderAt, size int64) (*Document, error) {
	tmpl, err := readParts(r, size)
	if err != nil {
		return nil, err
	}
	return &Document{tmpl: tmpl}, nil
}

func readParts(r io.ReaderAt, size int64) (*templateParts, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateInvalid, err)
	}

	tmpl := &templateParts{parts: make(map[string][]byte)}
	for _, zf := range zr.File {
		rc, err := zf.Open()
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrTemplateInvalid, zf.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrTemplateInvalid, zf.Name, err)
		}
		if zf.Name == documentPartName {
			tmpl.body = data
			continue
		}
		tmpl.names = append(tmpl.names, zf.Name)
		tmpl.parts[zf.Name] = data
	}
	if tmpl.body == nil {
		return nil, ErrNoDocumentPart
	}

	doc := string(tmpl.body)
	if tag := documentTagPattern.FindString(doc); tag != "" {
		tmpl.docTag = tag
	} else {
		tmpl.docTag = defaultDocumentTag
	}
	tmpl.sectPr = extractSectPr(doc)
	return tmpl, nil
}

// extractSectPr pulls the body-level section properties out of document.xml
// so page size, margins, and header/footer references carry over.
func extractSectPr(doc string) string {
	start := strings.LastIndex(doc, "<w:sectPr")
	if start < 0 {
		return ""
	}
	end := strings.Index(doc[start:], "</w:sectPr>")
	if end < 0 {
		// Self-closing or malformed; drop it rather than emit broken XML.
		return ""
	}
	return doc[start : start+end+len("</w:sectPr>")]
}

// defaultDocumentTag declares the namespaces the writer emits.
const defaultDocumentTag = `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">`

// defaultSectPr is an A4 page with standard margins, used for blank documents.
const defaultSectPr = `<w:sectPr><w:pgSz w:w="11906" w:h="16838"/><w:pgMar w:top="1440" w:right="1800" w:bottom="1440" w:left="1800" w:header="851" w:footer="992" w:gutter="0"/></w:sectPr>`

const blankContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/><Default Extension="xml" ContentType="application/xml"/><Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/><Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/></Types>`

const blankRootRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/></Relationships>`

const blankDocumentRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/></Relationships>`

// blankStyles defines Normal plus Heading1-4 with outline levels so the TOC
// field and Word's navigation pane pick the headings up.
const blankStyles = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/></w:style><w:style w:type="paragraph" w:styleId="Heading1"><w:name w:val="heading 1"/><w:basedOn w:val="Normal"/><w:pPr><w:outlineLvl w:val="0"/></w:pPr></w:style><w:style w:type="paragraph" w:styleId="Heading2"><w:name w:val="heading 2"/><w:basedOn w:val="Normal"/><w:pPr><w:outlineLvl w:val="1"/></w:pPr></w:style><w:style w:type="paragraph" w:styleId="Heading3"><w:name w:val="heading 3"/><w:basedOn w:val="Normal"/><w:pPr><w:outlineLvl w:val="2"/></w:pPr></w:style><w:style w:type="paragraph" w:styleId="Heading4"><w:name w:val="heading 4"/><w:basedOn w:val="Normal"/><w:pPr><w:outlineLvl w:val="3"/></w:pPr></w:style></w:styles>`

// blankParts builds a minimal valid docx package skeleton.
func blankParts() *templateParts {
	return &templateParts{
		names: []string{
			"[Content_Types].xml",
			"_rels/.rels",
			"word/_rels/document.xml.rels",
			"word/styles.xml",
		},
		parts: map[string][]byte{
			"[Content_Types].xml":          []byte(blankContentTypes),
			"_rels/.rels":                  []byte(blankRootRels),
			"word/_rels/document.xml.rels": []byte(blankDocumentRels),
			"word/styles.xml":              []byte(blankStyles),
		},
		docTag: defaultDocumentTag,
		sectPr: defaultSectPr,
	}
}
