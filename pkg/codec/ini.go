package codec

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/ini.v1"

	"github.com/pigeonworks-llc/company-manager/pkg/company"
)

// INICodec reads and writes the sectioned INI profile. Sections and
// keys are emitted in a fixed order so repeated encodes of the same
// record are byte-identical.
type INICodec struct{}

type iniKV struct {
	key   string
	value string
}

// Format returns FormatINI.
func (c *INICodec) Format() Format {
	return FormatINI
}

// Encode renders the record as six sections: company, address, contact,
// banking, tax and business. The derived full_address is written into
// the address section.
func (c *INICodec) Encode(rec *company.Record) ([]byte, error) {
	sections := []struct {
		name string
		keys []iniKV
	}{
		{"company", []iniKV{
			{"name", rec.Name},
			{"registration_number", rec.RegistrationNumber},
			{"type", rec.Type},
		}},
		{"address", []iniKV{
			{"street", rec.Street},
			{"suburb", rec.Suburb},
			{"province", rec.Province},
			{"postal_code", rec.PostalCode},
			{"country", rec.Country},
			{"full_address", rec.FullAddress()},
		}},
		{"contact", []iniKV{
			{"email", rec.Email},
			{"phone", rec.Phone},
			{"whatsapp", rec.WhatsApp},
			{"website", rec.Website},
		}},
		{"banking", []iniKV{
			{"account_name", rec.AccountName},
			{"bank", rec.Bank},
			{"branch_code", rec.BranchCode},
			{"account_number", rec.AccountNumber},
			{"account_type", rec.AccountType},
			{"swift_code", rec.SwiftCode},
		}},
		{"tax", []iniKV{
			{"vat_number", rec.VATNumber},
			{"tax_reference", rec.TaxReference},
			{"default_tax_rate", rec.DefaultTaxRate.String()},
		}},
		{"business", []iniKV{
			{"industry", rec.Industry},
			{"established_year", rec.EstablishedYear},
			{"description", rec.Description},
		}},
	}

	f := ini.Empty()
	for _, s := range sections {
		sec, err := f.NewSection(s.name)
		if err != nil {
			return nil, fmt.Errorf("failed to build ini section %q: %w", s.name, err)
		}
		for _, kv := range s.keys {
			if _, err := sec.NewKey(kv.key, kv.value); err != nil {
				return nil, fmt.Errorf("failed to set ini key %s.%s: %w", s.name, kv.key, err)
			}
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode ini: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode parses an INI profile. Keys are matched by name regardless of
// which section they appear in; unknown keys are skipped and absent
// keys keep their default values.
func (c *INICodec) Decode(data []byte) (*company.Record, error) {
	f, err := ini.Load(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}

	rec := company.NewRecord()
	for _, sec := range f.Sections() {
		for _, key := range sec.Keys() {
			switch name := key.Name(); name {
			case "full_address":
				// Derived on encode; the address parts are authoritative.
			case "default_tax_rate":
				rate, err := decimal.NewFromString(key.String())
				if err != nil {
					return nil, fmt.Errorf("%w: default_tax_rate %q", ErrFormat, key.String())
				}
				rec.DefaultTaxRate = rate
			default:
				if err := rec.Set(name, key.String()); err != nil {
					if errors.Is(err, company.ErrUnknownField) {
						continue
					}
					return nil, err
				}
			}
		}
	}
	return rec, nil
}
