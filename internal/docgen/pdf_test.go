package docgen

import (
	"bytes"
	"compress/zlib"
	"io"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowpro-systems/field_service_app/internal/core/domain"
)

func testJob() domain.Job {
	return domain.Job{
		JobID:     "job-1",
		JobNumber: 1042,
		Title:     "Replace hot water system",
		Status:    domain.JobStatusQuote,
		Revenue:   decimal.NewFromFloat(1850.50),
		Costs:     decimal.NewFromFloat(640),
		Customer: &domain.Customer{
			Name:    "O'Brien & Sons!",
			Phone:   "0400 111 222",
			Email:   "info@obrien.example",
			Address: "12 Harbour Rd, Newcastle",
		},
		LineItems: []domain.LineItem{
			{Description: "Premium valve", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromFloat(125.25)},
			{Description: "Labour", Quantity: decimal.NewFromInt(4), UnitPrice: decimal.NewFromFloat(400)},
		},
	}
}

// pdfPageCount counts page objects in the raw PDF output.
func pdfPageCount(data []byte) int {
	return bytes.Count(data, []byte("/Type /Page")) - bytes.Count(data, []byte("/Type /Pages"))
}

// inflatedStreams decodes every FlateDecode stream in the PDF so tests can
// assert on the text operators of each page's content.
func inflatedStreams(t *testing.T, data []byte) []string {
	t.Helper()
	var streams []string
	rest := data
	for {
		i := bytes.Index(rest, []byte("stream"))
		if i < 0 {
			break
		}
		if i >= 3 && bytes.Equal(rest[i-3:i], []byte("end")) {
			rest = rest[i+len("stream"):]
			continue
		}
		body := bytes.TrimPrefix(rest[i+len("stream"):], []byte("\r"))
		body = bytes.TrimPrefix(body, []byte("\n"))
		end := bytes.Index(body, []byte("endstream"))
		require.GreaterOrEqual(t, end, 0, "stream without endstream terminator")
		if r, err := zlib.NewReader(bytes.NewReader(body[:end])); err == nil {
			inflated, err := io.ReadAll(r)
			require.NoError(t, err)
			streams = append(streams, string(inflated))
		}
		rest = body[end:]
	}
	return streams
}

func TestComposePDFProducesArtifact(t *testing.T) {
	artifact, err := ComposePDF(testJob(), DocTypeInvoice)
	require.NoError(t, err)
	require.NotNil(t, artifact)

	assert.True(t, bytes.HasPrefix(artifact.Bytes, []byte("%PDF")), "output should be a PDF document")
	assert.Equal(t, MIMEPDF, artifact.MIME)
	assert.Equal(t, "TAX_INVOICE_1042_O_Brien___Sons_.pdf", artifact.FileName)
}

func TestComposePDFUnknownTypeUsesFallback(t *testing.T) {
	artifact, err := ComposePDF(testJob(), "mystery")
	require.NoError(t, err)
	assert.NotEmpty(t, artifact.Bytes, "unknown type must still produce a document")
	assert.True(t, strings.HasPrefix(artifact.FileName, "WORK_ORDER_"), "fallback config supplies the title")
}

func TestComposePDFMissingCustomer(t *testing.T) {
	job := testJob()
	job.Customer = nil

	artifact, err := ComposePDF(job, DocTypeQuote)
	require.NoError(t, err)
	assert.Equal(t, "QUOTE_1042_Private_Client.pdf", artifact.FileName)
}

func TestClientLinesOmitEmptyFields(t *testing.T) {
	lines := clientLines("Private Client", nil)
	assert.Equal(t, []string{"Private Client"}, lines)

	lines = clientLines("Acme", &domain.Customer{Name: "Acme", Phone: "123", Email: "  "})
	assert.Equal(t, []string{"Acme", "123"}, lines, "blank fields must not render as empty lines")
}

func TestLineItemRowsSyntheticFallback(t *testing.T) {
	withItems := testJob()
	withItems.LineItems = []domain.LineItem{{
		Description: withItems.Title,
		Quantity:    decimal.NewFromInt(1),
		UnitPrice:   withItems.Revenue,
	}}

	empty := testJob()
	empty.LineItems = nil

	assert.Equal(t,
		lineItemRows(withItems, true),
		lineItemRows(empty, true),
		"empty line-item list must render like one synthetic item built from title and revenue")

	rows := lineItemRows(empty, true)
	require.Len(t, rows, 1)
	assert.Equal(t, "1x Replace hot water system", rows[0].description)
	assert.Equal(t, "$1,850.50", rows[0].value)
}

func TestLineItemRowsColumnSelection(t *testing.T) {
	job := testJob()
	job.Status = domain.JobStatusWorkOrder

	financial := lineItemRows(job, true)
	assert.Equal(t, "$250.50", financial[0].value, "financial documents show line subtotals")

	operational := lineItemRows(job, false)
	assert.Equal(t, "WORK_ORDER", operational[0].value, "operational documents show the job status")

	job.Status = ""
	operational = lineItemRows(job, false)
	assert.Equal(t, "Pending", operational[0].value, "blank status degrades to Pending")
}

func TestComposePDFLongNotesInsertsPage(t *testing.T) {
	job := testJob()
	job.Notes = strings.Repeat("The access hatch must remain clear during works. ", 200)

	artifact, err := ComposePDF(job, DocTypeInvoice)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, pdfPageCount(artifact.Bytes), 2,
		"overflowing notes must push content onto an inserted page instead of clipping")
}

func TestComposePDFFooterOnEveryPage(t *testing.T) {
	job := testJob()
	job.Notes = strings.Repeat("The access hatch must remain clear during works. ", 200)

	artifact, err := ComposePDF(job, DocTypeInvoice)
	require.NoError(t, err)

	pages := pdfPageCount(artifact.Bytes)
	require.GreaterOrEqual(t, pages, 2, "long notes must spill onto additional pages")

	footerHits := 0
	for _, content := range inflatedStreams(t, artifact.Bytes) {
		footerHits += strings.Count(content, footerText)
	}
	assert.Equal(t, pages, footerHits, "each page carries exactly one footer line")
}

func TestComposePDFInputLimits(t *testing.T) {
	job := testJob()
	job.Notes = strings.Repeat("x", MaxNotesChars+1)
	_, err := ComposePDF(job, DocTypeQuote)
	assert.ErrorIs(t, err, ErrNotesTooLong)

	job = testJob()
	job.LineItems = make([]domain.LineItem, MaxLineItems+1)
	for i := range job.LineItems {
		job.LineItems[i] = domain.LineItem{Description: "part", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(1)}
	}
	_, err = ComposePDF(job, DocTypeQuote)
	assert.ErrorIs(t, err, ErrTooManyLineItems)
}
