package domain

// DocTemplate is a pre-authored office-document (DOCX) template.
// Content is the template binary encoded as text: either raw base64 or a
// data-URI ("data:...;base64,<payload>"). The document generation core
// consumes it read-only.
type DocTemplate struct {
	TemplateID string `json:"templateID"` // Primary Key (e.g., UUID)
	Name       string `json:"name"`
	Content    string `json:"-"`
	AuditFields
}
