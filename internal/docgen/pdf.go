package docgen

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/flowpro-systems/field_service_app/internal/core/domain"
)

var oneQuantity = decimal.NewFromInt(1)

// Page geometry in mm on A4 portrait.
const (
	pageWidth    = 210.0
	leftMargin   = 14.0
	rightEdge    = 196.0
	contentWidth = 182.0

	headerBandHeight = 40.0
	tableStartY      = 85.0

	// Blocks starting below these thresholds are pushed to a fresh page so
	// they are never clipped off the bottom.
	notesBreakY = 250.0
	totalBreakY = 260.0
	rowBreakY   = 270.0

	footerY    = 285.0
	footerText = "Generated via FlowPro Systems. Valid for 30 days from date of issue."

	fallbackClientName = "Private Client"
	fallbackJobTitle   = "General Service"
	fallbackStatus     = "Pending"
)

// ComposePDF renders the job into a paginated PDF using the visual
// configuration of the given document type. Missing customer, line items or
// notes degrade to fallbacks; an unknown document type resolves to the
// work-order configuration. The returned artifact carries a sanitized file
// name of the form <Title>_<JobNumber>_<Client>.pdf.
func ComposePDF(job domain.Job, docType DocumentType) (*Artifact, error) {
	if len(job.Notes) > MaxNotesChars {
		return nil, ErrNotesTooLong
	}
	if len(job.LineItems) > MaxLineItems {
		return nil, ErrTooManyLineItems
	}

	cfg := ConfigFor(docType)
	clientName := fallbackClientName
	if job.Customer != nil && strings.TrimSpace(job.Customer.Name) != "" {
		clientName = job.Customer.Name
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(cfg.Title, false)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	// Header band
	pdf.SetFillColor(cfg.Fill.R, cfg.Fill.G, cfg.Fill.B)
	pdf.Rect(0, 0, pageWidth, headerBandHeight, "F")
	pdf.SetTextColor(cfg.Text.R, cfg.Text.G, cfg.Text.B)
	pdf.SetFont("Helvetica", "B", 28)
	pdf.Text(leftMargin, 24, "FLOWPRO")
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(leftMargin, 32, "Field Service Management")
	pdf.SetFont("Helvetica", "B", 22)
	pdf.Text(rightEdge-pdf.GetStringWidth(cfg.Title), 26, cfg.Title)

	// Metadata block, right aligned
	pdf.SetTextColor(40, 40, 40)
	pdf.SetFont("Helvetica", "", 10)
	issued := "Date Issued: " + time.Now().Format("02/01/2006")
	pdf.Text(rightEdge-pdf.GetStringWidth(issued), 55, issued)
	pdf.SetFont("Helvetica", "B", 10)
	ref := fmt.Sprintf("Job Reference: #%d", job.JobNumber)
	pdf.Text(rightEdge-pdf.GetStringWidth(ref), 62, ref)

	// Client block, left aligned; blank fields are omitted entirely.
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetTextColor(100, 100, 100)
	pdf.Text(leftMargin, 55, "BILLED TO / CLIENT:")
	pdf.SetTextColor(40, 40, 40)
	pdf.SetFont("Helvetica", "", 10)
	y := 62.0
	for _, line := range clientLines(clientName, job.Customer) {
		pdf.Text(leftMargin, y, line)
		y += 5
	}

	y = drawLineItemTable(pdf, cfg, job)
	finalY := y + 15

	// Notes block
	if strings.TrimSpace(job.Notes) != "" {
		if finalY > notesBreakY {
			pdf.AddPage()
			finalY = 20
		}
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.Text(leftMargin, finalY, "SCOPE & NOTES:")
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(40, 40, 40)
		ty := finalY + 7
		for _, line := range pdf.SplitText(job.Notes, contentWidth) {
			if ty > rowBreakY+8 {
				pdf.AddPage()
				ty = 20
			}
			pdf.Text(leftMargin, ty, line)
			ty += 5
		}
		finalY = ty + 10
	}

	// Total block, financial documents only
	if cfg.Financial {
		if finalY > totalBreakY {
			pdf.AddPage()
			finalY = 20
		}
		pdf.SetFillColor(250, 250, 250)
		pdf.Rect(130, finalY-8, 66, 20, "F")
		pdf.SetDrawColor(cfg.Fill.R, cfg.Fill.G, cfg.Fill.B)
		pdf.SetLineWidth(1)
		pdf.Line(130, finalY-8, rightEdge, finalY-8)
		pdf.SetFont("Helvetica", "B", 14)
		pdf.SetTextColor(40, 40, 40)
		pdf.Text(135, finalY+5, "TOTAL DUE:")
		amount := "$" + FormatAmount(job.Revenue)
		pdf.Text(191-pdf.GetStringWidth(amount), finalY+5, amount)
	}

	// Footer on every page, including pages inserted by break protection.
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(150, 150, 150)
	for i := 1; i <= pdf.PageCount(); i++ {
		pdf.SetPage(i)
		pdf.Text((pageWidth-pdf.GetStringWidth(footerText))/2, footerY, footerText)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("compose pdf for job %d: %w", job.JobNumber, err)
	}

	fileName := fmt.Sprintf("%s_%d_%s.pdf", sanitizePart(cfg.Title), job.JobNumber, sanitizePart(clientName))
	return &Artifact{FileName: fileName, MIME: MIMEPDF, Bytes: buf.Bytes()}, nil
}

// clientLines stacks the client block: name first, then each contact field
// that is present. Never emits blank lines.
func clientLines(clientName string, customer *domain.Customer) []string {
	lines := []string{clientName}
	if customer == nil {
		return lines
	}
	for _, s := range []string{customer.Address, customer.Phone, customer.Email} {
		if strings.TrimSpace(s) != "" {
			lines = append(lines, s)
		}
	}
	return lines
}

// tableRow is one rendered line of the item table.
type tableRow struct {
	description string
	value       string
}

// lineItemRows maps the job's line items to table rows. A job without line
// items gets exactly one synthetic item built from its title and revenue, so
// the empty case renders identically to a job carrying that one item.
func lineItemRows(job domain.Job, financial bool) []tableRow {
	status := string(job.Status)
	if status == "" {
		status = fallbackStatus
	}

	items := job.LineItems
	if len(items) == 0 {
		items = []domain.LineItem{syntheticLineItem(job)}
	}

	rows := make([]tableRow, 0, len(items))
	for _, item := range items {
		value := status
		if financial {
			value = "$" + FormatAmount(item.Subtotal())
		}
		rows = append(rows, tableRow{
			description: fmt.Sprintf("%sx %s", item.Quantity.String(), item.Description),
			value:       value,
		})
	}
	return rows
}

// syntheticLineItem is the fallback row for a job with no line items.
func syntheticLineItem(job domain.Job) domain.LineItem {
	title := job.Title
	if strings.TrimSpace(title) == "" {
		title = fallbackJobTitle
	}
	return domain.LineItem{
		Description: title,
		Quantity:    oneQuantity,
		UnitPrice:   job.Revenue,
	}
}

// drawLineItemTable renders the two-column item table starting at tableStartY
// and returns the y cursor below the last row. Rows that would run off the
// page push a new page and repeat the header row.
func drawLineItemTable(pdf *gofpdf.Fpdf, cfg DocTypeConfig, job domain.Job) float64 {
	const (
		descWidth  = 142.0
		valueWidth = 40.0
		cellPad    = 3.0
		lineHeight = 5.0
	)

	valueHeader := "Status"
	if cfg.Financial {
		valueHeader = "Amount"
	}

	drawHeader := func(y float64) float64 {
		pdf.SetFillColor(cfg.Fill.R, cfg.Fill.G, cfg.Fill.B)
		pdf.SetTextColor(cfg.Text.R, cfg.Text.G, cfg.Text.B)
		pdf.SetDrawColor(180, 180, 180)
		pdf.SetLineWidth(0.2)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetXY(leftMargin, y)
		pdf.CellFormat(descWidth, 10, "Description", "1", 0, "L", true, 0, "")
		pdf.CellFormat(valueWidth, 10, valueHeader, "1", 1, "L", true, 0, "")
		return y + 10
	}

	y := drawHeader(tableStartY)
	pdf.SetTextColor(40, 40, 40)
	pdf.SetFont("Helvetica", "", 10)

	for _, row := range lineItemRows(job, cfg.Financial) {
		lines := pdf.SplitText(row.description, descWidth-2*cellPad)
		rowHeight := float64(len(lines))*lineHeight + 2*cellPad

		if y+rowHeight > rowBreakY {
			pdf.AddPage()
			y = drawHeader(20)
			pdf.SetTextColor(40, 40, 40)
			pdf.SetFont("Helvetica", "", 10)
		}

		pdf.Rect(leftMargin, y, descWidth, rowHeight, "D")
		pdf.Rect(leftMargin+descWidth, y, valueWidth, rowHeight, "D")

		ty := y + cellPad + lineHeight - 1
		for _, line := range lines {
			pdf.Text(leftMargin+cellPad, ty, line)
			ty += lineHeight
		}
		pdf.Text(leftMargin+descWidth+valueWidth-cellPad-pdf.GetStringWidth(row.value), y+cellPad+lineHeight-1, row.value)

		y += rowHeight
	}
	return y
}
