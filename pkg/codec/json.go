package codec

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/pigeonworks-llc/company-manager/pkg/company"
)

// JSONCodec reads and writes the nested JSON profile document. Output
// is indented with two spaces unless Compact is set.
type JSONCodec struct {
	Compact bool
}

// jsonDocument is the top-level wrapper; the profile always lives under
// the "company" key.
type jsonDocument struct {
	Company *jsonCompany `json:"company"`
}

type jsonCompany struct {
	Name               string        `json:"name"`
	RegistrationNumber string        `json:"registration_number"`
	Type               string        `json:"type"`
	Address            *jsonAddress  `json:"address,omitempty"`
	Contact            *jsonContact  `json:"contact,omitempty"`
	Banking            *jsonBanking  `json:"banking,omitempty"`
	Tax                *jsonTax      `json:"tax,omitempty"`
	Business           *jsonBusiness `json:"business,omitempty"`
}

type jsonAddress struct {
	Street      string `json:"street"`
	Suburb      string `json:"suburb"`
	Province    string `json:"province"`
	PostalCode  string `json:"postal_code"`
	Country     string `json:"country"`
	FullAddress string `json:"full_address"`
}

type jsonContact struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	WhatsApp string `json:"whatsapp"`
	Website  string `json:"website"`
}

type jsonBanking struct {
	AccountName   string `json:"account_name"`
	Bank          string `json:"bank"`
	BranchCode    string `json:"branch_code"`
	AccountNumber string `json:"account_number"`
	AccountType   string `json:"account_type"`
	SwiftCode     string `json:"swift_code"`
}

type jsonTax struct {
	VATNumber    string `json:"vat_number"`
	TaxReference string `json:"tax_reference"`
	// json.Number keeps the tax rate a bare JSON number, not a string.
	DefaultTaxRate json.Number `json:"default_tax_rate"`
}

type jsonBusiness struct {
	Industry        string `json:"industry"`
	EstablishedYear string `json:"established_year"`
	Description     string `json:"description"`
}

// Format returns FormatJSON.
func (c *JSONCodec) Format() Format {
	return FormatJSON
}

// Encode renders the record as the nested JSON document, including the
// derived full_address.
func (c *JSONCodec) Encode(rec *company.Record) ([]byte, error) {
	doc := jsonDocument{
		Company: &jsonCompany{
			Name:               rec.Name,
			RegistrationNumber: rec.RegistrationNumber,
			Type:               rec.Type,
			Address: &jsonAddress{
				Street:      rec.Street,
				Suburb:      rec.Suburb,
				Province:    rec.Province,
				PostalCode:  rec.PostalCode,
				Country:     rec.Country,
				FullAddress: rec.FullAddress(),
			},
			Contact: &jsonContact{
				Email:    rec.Email,
				Phone:    rec.Phone,
				WhatsApp: rec.WhatsApp,
				Website:  rec.Website,
			},
			Banking: &jsonBanking{
				AccountName:   rec.AccountName,
				Bank:          rec.Bank,
				BranchCode:    rec.BranchCode,
				AccountNumber: rec.AccountNumber,
				AccountType:   rec.AccountType,
				SwiftCode:     rec.SwiftCode,
			},
			Tax: &jsonTax{
				VATNumber:      rec.VATNumber,
				TaxReference:   rec.TaxReference,
				DefaultTaxRate: json.Number(rec.DefaultTaxRate.String()),
			},
			Business: &jsonBusiness{
				Industry:        rec.Industry,
				EstablishedYear: rec.EstablishedYear,
				Description:     rec.Description,
			},
		},
	}

	if c.Compact {
		out, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to encode json: %w", err)
		}
		return out, nil
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode json: %w", err)
	}
	return out, nil
}

// Decode parses a JSON profile document. Unknown keys are ignored and
// missing groups keep their default values; a document without the
// "company" object is rejected.
func (c *JSONCodec) Decode(data []byte) (*company.Record, error) {
	var doc jsonDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if doc.Company == nil {
		return nil, fmt.Errorf("%w: missing \"company\" object", ErrFormat)
	}

	cd := doc.Company
	rec := company.NewRecord()
	rec.Name = cd.Name
	rec.RegistrationNumber = cd.RegistrationNumber
	rec.Type = cd.Type
	if a := cd.Address; a != nil {
		// full_address is derived from the parts and never read back.
		rec.Street = a.Street
		rec.Suburb = a.Suburb
		rec.Province = a.Province
		rec.PostalCode = a.PostalCode
		rec.Country = a.Country
	}
	if ct := cd.Contact; ct != nil {
		rec.Email = ct.Email
		rec.Phone = ct.Phone
		rec.WhatsApp = ct.WhatsApp
		rec.Website = ct.Website
	}
	if b := cd.Banking; b != nil {
		rec.AccountName = b.AccountName
		rec.Bank = b.Bank
		rec.BranchCode = b.BranchCode
		rec.AccountNumber = b.AccountNumber
		rec.AccountType = b.AccountType
		rec.SwiftCode = b.SwiftCode
	}
	if tx := cd.Tax; tx != nil {
		rec.VATNumber = tx.VATNumber
		rec.TaxReference = tx.TaxReference
		if tx.DefaultTaxRate != "" {
			rate, err := decimal.NewFromString(tx.DefaultTaxRate.String())
			if err != nil {
				return nil, fmt.Errorf("%w: default_tax_rate %q", ErrFormat, tx.DefaultTaxRate)
			}
			rec.DefaultTaxRate = rate
		}
	}
	if bz := cd.Business; bz != nil {
		rec.Industry = bz.Industry
		rec.EstablishedYear = bz.EstablishedYear
		rec.Description = bz.Description
	}
	return rec, nil
}
