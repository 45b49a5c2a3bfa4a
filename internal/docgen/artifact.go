// Package docgen renders a resolved Job (with its customer and line items)
// into a downloadable binary artifact: a PDF drawn from scratch, or a DOCX
// produced by filling a stored template. It performs no I/O of its own; the
// caller hands in a snapshot and receives bytes plus a safe file name.
package docgen

import "errors"

// MIME types of the produced artifacts.
const (
	MIMEPDF  = "application/pdf"
	MIMEDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// Conservative input limits. The upstream data entry imposes none, so they are
// enforced here before any heavy processing.
const (
	MaxTemplateBytes = 10 << 20 // decoded template size
	MaxNotesChars    = 20000
	MaxLineItems     = 200
)

// ErrTemplateContent indicates the template content is missing or not decodable base64.
var ErrTemplateContent = errors.New("template content is missing or not valid base64")

// ErrTemplateTooLarge indicates the decoded template exceeds MaxTemplateBytes.
var ErrTemplateTooLarge = errors.New("template content exceeds the size limit")

// ErrNotesTooLong indicates the job notes exceed MaxNotesChars.
var ErrNotesTooLong = errors.New("job notes exceed the length limit")

// ErrTooManyLineItems indicates the job carries more than MaxLineItems line items.
var ErrTooManyLineItems = errors.New("job has too many line items")

// Artifact is a generated document ready for delivery.
type Artifact struct {
	FileName string
	MIME     string
	Bytes    []byte
}
