package docgen

import (
	"regexp"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var amountPattern = regexp.MustCompile(`\d{1,3}(,\d{3})*\.\d{2}`)

func TestFormatAmount(t *testing.T) {
	cases := map[string]string{
		"0":           "0.00",
		"7":           "7.00",
		"1234.5":      "1,234.50",
		"999":         "999.00",
		"1000":        "1,000.00",
		"1234567.891": "1,234,567.89",
		"-1234.5":     "-1,234.50",
		"0.005":       "0.01",
	}
	for in, want := range cases {
		d, err := decimal.NewFromString(in)
		assert.NoError(t, err)
		assert.Equal(t, want, FormatAmount(d), "formatting %s", in)
	}
}

func TestFormatAmountAlwaysMatchesPattern(t *testing.T) {
	inputs := []string{"0", "-0.001", "99999999999.99", "-42", "0.009", "123456"}
	for _, in := range inputs {
		d, err := decimal.NewFromString(in)
		assert.NoError(t, err)
		out := FormatAmount(d)
		assert.Regexp(t, amountPattern, out, "output for %s should contain a grouped two-decimal amount", in)
	}
}

func TestFormatOptionalAmount(t *testing.T) {
	assert.Equal(t, "0.00", FormatOptionalAmount(nil), "absent amount should degrade to zero")

	d := decimal.NewFromFloat(2500.75)
	assert.Equal(t, "2,500.75", FormatOptionalAmount(&d))
}
