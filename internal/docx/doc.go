// Package docx builds Word documents (WordprocessingML) without external
// tooling. A Document accumulates body elements (paragraphs, tables, page
// breaks, a TOC field) and serializes them into word/document.xml inside a
// .docx zip archive.
//
// Documents can start blank or from a customer .docx template. Template
// loading keeps every package part (styles, numbering, headers, footers,
// page setup) and replaces only the body content, so the generated output
// inherits the template's look.
//
// Chinese text renders correctly only when the eastAsia font field is set
// alongside the Latin fields on every run; all run-writing paths here set
// both to the same face.
package docx
