package codec

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/pigeonworks-llc/company-manager/pkg/company"
)

// csvColumns is the fixed header row. The spreadsheet export flattens
// the record into one row and does not carry the swift_code field.
var csvColumns = []string{
	"company_name",
	"registration_number",
	"company_type",
	"street_address",
	"suburb",
	"province",
	"postal_code",
	"country",
	"email",
	"phone",
	"whatsapp",
	"website",
	"account_name",
	"bank",
	"branch_code",
	"account_number",
	"account_type",
	"vat_number",
	"tax_reference",
	"default_tax_rate",
	"industry",
	"established_year",
	"description",
}

// CSVCodec writes the single-row spreadsheet export. CSV is
// export-only; Decode always fails with ErrUnsupported.
type CSVCodec struct{}

// Format returns FormatCSV.
func (c *CSVCodec) Format() Format {
	return FormatCSV
}

// Encode renders a header row and one value row in the fixed column
// order.
func (c *CSVCodec) Encode(rec *company.Record) ([]byte, error) {
	row := []string{
		rec.Name,
		rec.RegistrationNumber,
		rec.Type,
		rec.Street,
		rec.Suburb,
		rec.Province,
		rec.PostalCode,
		rec.Country,
		rec.Email,
		rec.Phone,
		rec.WhatsApp,
		rec.Website,
		rec.AccountName,
		rec.Bank,
		rec.BranchCode,
		rec.AccountNumber,
		rec.AccountType,
		rec.VATNumber,
		rec.TaxReference,
		rec.DefaultTaxRate.String(),
		rec.Industry,
		rec.EstablishedYear,
		rec.Description,
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvColumns); err != nil {
		return nil, fmt.Errorf("failed to encode csv header: %w", err)
	}
	if err := w.Write(row); err != nil {
		return nil, fmt.Errorf("failed to encode csv row: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to encode csv: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode is not available for CSV.
func (c *CSVCodec) Decode(data []byte) (*company.Record, error) {
	return nil, fmt.Errorf("%w: csv profiles are export-only", ErrUnsupported)
}
