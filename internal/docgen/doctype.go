package docgen

// DocumentType is the logical kind of document to generate for a job.
type DocumentType string

const (
	DocTypeQuote     DocumentType = "quote"
	DocTypeWorkOrder DocumentType = "work_order"
	DocTypeInvoice   DocumentType = "invoice"
	DocTypeReport    DocumentType = "report"
)

// RGB is a color in 0-255 components.
type RGB struct {
	R, G, B int
}

// DocTypeConfig is the visual configuration of one document type.
// Financial documents show monetary amounts per line and a total-due block;
// operational documents show the job status instead.
type DocTypeConfig struct {
	Title     string
	Fill      RGB // header band / table header background
	Text      RGB // text color on the fill
	Financial bool
}

// Colors are synced with the app theme.
var docConfigs = map[DocumentType]DocTypeConfig{
	DocTypeQuote:     {Title: "QUOTE", Fill: RGB{239, 68, 68}, Text: RGB{255, 255, 255}, Financial: true},
	DocTypeWorkOrder: {Title: "WORK ORDER", Fill: RGB{250, 204, 21}, Text: RGB{0, 0, 0}, Financial: false},
	DocTypeInvoice:   {Title: "TAX INVOICE", Fill: RGB{59, 130, 246}, Text: RGB{255, 255, 255}, Financial: true},
	DocTypeReport:    {Title: "SERVICE REPORT", Fill: RGB{34, 197, 94}, Text: RGB{255, 255, 255}, Financial: false},
}

// ConfigFor resolves the configuration for a document type. Unknown tags fall
// back to the work-order configuration so generation is always attempted.
func ConfigFor(t DocumentType) DocTypeConfig {
	if cfg, ok := docConfigs[t]; ok {
		return cfg
	}
	return docConfigs[DocTypeWorkOrder]
}

// KnownDocumentTypes lists the recognized document type tags.
func KnownDocumentTypes() []DocumentType {
	return []DocumentType{DocTypeQuote, DocTypeWorkOrder, DocTypeInvoice, DocTypeReport}
}
