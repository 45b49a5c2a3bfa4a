package docgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigForKnownTypes(t *testing.T) {
	assert.Equal(t, "QUOTE", ConfigFor(DocTypeQuote).Title)
	assert.Equal(t, "WORK ORDER", ConfigFor(DocTypeWorkOrder).Title)
	assert.Equal(t, "TAX INVOICE", ConfigFor(DocTypeInvoice).Title)
	assert.Equal(t, "SERVICE REPORT", ConfigFor(DocTypeReport).Title)
}

func TestConfigForFinancialFlag(t *testing.T) {
	assert.True(t, ConfigFor(DocTypeQuote).Financial, "quotes show amounts")
	assert.True(t, ConfigFor(DocTypeInvoice).Financial, "invoices show amounts")
	assert.False(t, ConfigFor(DocTypeWorkOrder).Financial, "work orders show status")
	assert.False(t, ConfigFor(DocTypeReport).Financial, "reports show status")
}

func TestConfigForUnknownFallsBackToWorkOrder(t *testing.T) {
	for _, tag := range []DocumentType{"", "receipt", "QUOTE", "Invoice"} {
		cfg := ConfigFor(tag)
		assert.Equal(t, ConfigFor(DocTypeWorkOrder), cfg, "unknown tag %q should resolve to the work-order config", tag)
	}
}
