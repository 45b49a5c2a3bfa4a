package models

// DocTemplate represents a row in the doc_templates table.
// Content holds the base64/data-URI encoded template binary.
type DocTemplate struct {
	TemplateID string `db:"template_id"`
	Name       string `db:"name"`
	Content    string `db:"content"`
	AuditFields
}
