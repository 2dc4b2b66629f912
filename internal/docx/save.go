package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// documentXML serializes the accumulated body elements into the main
// document part, reusing the template's document tag and section properties.
func (d *Document) documentXML() string {
	w := &xmlWriter{}
	w.raw(xmlHeader)
	w.raw(d.tmpl.docTag)
	w.raw("<w:body>")
	for _, el := range d.elements {
		el.writeXML(w)
	}
	if d.tmpl.sectPr != "" {
		w.raw(d.tmpl.sectPr)
	}
	w.raw("</w:body></w:document>")
	return w.String()
}

// Save writes the complete .docx package to w.
func (d *Document) Save(w io.Writer) error {
	zw := zip.NewWriter(w)
	for _, name := range d.tmpl.names {
		f, err := zw.Create(name)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrSave, name, err)
		}
		if _, err := f.Write(d.tmpl.parts[name]); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrSave, name, err)
		}
	}
	f, err := zw.Create(documentPartName)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSave, documentPartName, err)
	}
	if _, err := f.Write([]byte(d.documentXML())); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSave, documentPartName, err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrSave, err)
	}
	return nil
}

// Bytes returns the .docx package as an in-memory byte slice.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.Save(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
