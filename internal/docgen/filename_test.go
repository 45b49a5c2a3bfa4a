package docgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizePart(t *testing.T) {
	assert.Equal(t, "O_Brien___Sons_", sanitizePart("O'Brien & Sons!"))
	assert.Equal(t, "Acme", sanitizePart("Acme"))
	assert.Equal(t, "___", sanitizePart("../"))
	assert.Equal(t, "", sanitizePart(""))
}

func TestSanitizeFileName(t *testing.T) {
	assert.Equal(t, "1042_Quote_Template.docx", SanitizeFileName("1042_Quote Template.docx"))
	assert.Equal(t, ".._.._etc_passwd", SanitizeFileName("../../etc/passwd"))
	assert.Equal(t, "report-v2.pdf", SanitizeFileName("report-v2.pdf"))
	assert.Equal(t, "a_b", SanitizeFileName("a\x00b"))
}
