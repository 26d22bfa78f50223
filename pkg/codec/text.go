package codec

import (
	"fmt"
	"strings"

	"github.com/pigeonworks-llc/company-manager/pkg/company"
)

// placeholder marks fields that still need a real value in the plain
// text summary.
const placeholder = "[To be filled]"

// TextCodec writes the human-readable plain text summary. Text is
// export-only; Decode always fails with ErrUnsupported.
type TextCodec struct{}

// Format returns FormatText.
func (c *TextCodec) Format() Format {
	return FormatText
}

// Encode renders the record as indented headed sections. Empty VAT
// number and tax reference fields are shown as "[To be filled]"; the
// website and swift_code fields are not part of the summary.
func (c *TextCodec) Encode(rec *company.Record) ([]byte, error) {
	sections := []string{
		formatSection("Company Name", rec.Name),
		formatSection("Registration Number", rec.RegistrationNumber),
		formatSection("Company Type", rec.Type),
		formatSection("Address",
			rec.Street,
			rec.Suburb,
			rec.Province,
			rec.PostalCode,
			rec.Country),
		formatSection("Contact Details",
			"Email: "+rec.Email,
			"Phone: "+rec.Phone,
			"WhatsApp: "+rec.WhatsApp),
		formatSection("Banking Details",
			"Account Name: "+rec.AccountName,
			"Bank: "+rec.Bank,
			"Branch Code: "+rec.BranchCode,
			"Account Number: "+rec.AccountNumber,
			"Account Type: "+rec.AccountType),
		formatSection("Tax Information",
			"VAT Number: "+orPlaceholder(rec.VATNumber),
			"Tax Reference: "+orPlaceholder(rec.TaxReference),
			fmt.Sprintf("Default Tax Rate: %s%%", rec.DefaultTaxRate)),
		formatSection("Business Information",
			"Industry: "+rec.Industry,
			"Established: "+rec.EstablishedYear,
			"Description: "+rec.Description),
	}
	return []byte(strings.Join(sections, "\n\n")), nil
}

// Decode is not available for plain text.
func (c *TextCodec) Decode(data []byte) (*company.Record, error) {
	return nil, fmt.Errorf("%w: text profiles are export-only", ErrUnsupported)
}

// Helper functions

func formatSection(heading string, lines ...string) string {
	var sb strings.Builder
	sb.WriteString(heading)
	for _, line := range lines {
		sb.WriteString("\n    ")
		sb.WriteString(line)
	}
	return sb.String()
}

func orPlaceholder(value string) string {
	if value == "" {
		return placeholder
	}
	return value
}
