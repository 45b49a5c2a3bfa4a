package docgen

import (
	"archive/zip"
	"bytes"
	"encoding/base64"
	"io"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowpro-systems/field_service_app/internal/core/domain"
)

const templateXML = `<?xml version="1.0"?><w:document>` +
	`<w:t>{title} #{job_number}</w:t>` +
	`<w:t>Revenue {revenue} Costs {costs} Date {current_date}</w:t>` +
	`<w:t>{name} {email} {phone} {address}</w:t>` +
	`<w:t>{notes}</w:t>` +
	`</w:document>`

// buildTemplate assembles a minimal DOCX-shaped zip and returns it base64 encoded.
func buildTemplate(t *testing.T) string {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	w, err := zw.Create("[Content_Types].xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(`<?xml version="1.0"?><Types/>`))
	require.NoError(t, err)

	w, err = zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(templateXML))
	require.NoError(t, err)

	require.NoError(t, zw.Close())
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

// extractEntry reads one entry out of the produced artifact.
func extractEntry(t *testing.T, artifact *Artifact, name string) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(artifact.Bytes), int64(len(artifact.Bytes)))
	require.NoError(t, err)
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(data)
	}
	t.Fatalf("entry %s not found in artifact", name)
	return ""
}

func TestComposeFromTemplateSubstitutesAllTokens(t *testing.T) {
	tpl := domain.DocTemplate{TemplateID: "t1", Name: "Quote Template.docx", Content: buildTemplate(t)}
	job := testJob()
	job.Notes = "Rear access only"

	artifact, err := ComposeFromTemplate(tpl, job)
	require.NoError(t, err)
	assert.Equal(t, MIMEDocx, artifact.MIME)
	assert.Equal(t, "1042_Quote_Template.docx", artifact.FileName)

	doc := extractEntry(t, artifact, "word/document.xml")
	for _, key := range placeholderKeys {
		assert.NotContains(t, doc, "{"+key+"}", "placeholder %s must be resolved", key)
	}
	assert.Contains(t, doc, "Replace hot water system #1042")
	assert.Contains(t, doc, "Revenue 1850.50 Costs 640.00")
	assert.Contains(t, doc, "O&apos;Brien &amp; Sons! info@obrien.example")
	assert.Contains(t, doc, "Rear access only")
}

func TestComposeFromTemplateEmptyOptionalFields(t *testing.T) {
	tpl := domain.DocTemplate{TemplateID: "t1", Name: "blank.docx", Content: buildTemplate(t)}
	job := domain.Job{JobNumber: 7, Revenue: decimal.Zero, Costs: decimal.Zero}

	artifact, err := ComposeFromTemplate(tpl, job)
	require.NoError(t, err)

	doc := extractEntry(t, artifact, "word/document.xml")
	for _, key := range placeholderKeys {
		assert.NotContains(t, doc, "{"+key+"}", "missing values substitute empty strings, not literal tokens")
	}
}

func TestComposeFromTemplateDataURIPrefix(t *testing.T) {
	content := "data:application/vnd.openxmlformats-officedocument.wordprocessingml.document;base64," + buildTemplate(t)
	tpl := domain.DocTemplate{TemplateID: "t1", Name: "prefixed.docx", Content: content}

	artifact, err := ComposeFromTemplate(tpl, testJob())
	require.NoError(t, err)
	assert.NotEmpty(t, artifact.Bytes)
}

func TestComposeFromTemplateBadContent(t *testing.T) {
	_, err := ComposeFromTemplate(domain.DocTemplate{Name: "x"}, testJob())
	assert.ErrorIs(t, err, ErrTemplateContent, "missing content is rejected before processing")

	_, err = ComposeFromTemplate(domain.DocTemplate{Name: "x", Content: "%%% not base64 %%%"}, testJob())
	assert.ErrorIs(t, err, ErrTemplateContent)

	notAZip := base64.StdEncoding.EncodeToString([]byte("plain text"))
	_, err = ComposeFromTemplate(domain.DocTemplate{Name: "x", Content: notAZip}, testJob())
	assert.Error(t, err, "a non-archive payload fails the package open step")
	assert.NotErrorIs(t, err, ErrTemplateContent)
}
