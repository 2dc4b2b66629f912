package docx

import "errors"

// Sentinel errors for document operations.
var (
	ErrTemplateOpen    = errors.New("failed to open template")
	ErrTemplateInvalid = errors.New("template is not a valid docx package")
	ErrNoDocumentPart  = errors.New("template has no word/document.xml part")
	ErrSave            = errors.New("failed to write docx package")
)
