package codec

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/pigeonworks-llc/company-manager/pkg/company"
)

// YAMLCodec reads and writes the YAML profile document. It mirrors the
// JSON structure: the profile nests under a top-level "company" key.
type YAMLCodec struct{}

type yamlDocument struct {
	Company *yamlCompany `yaml:"company"`
}

type yamlCompany struct {
	Name               string        `yaml:"name"`
	RegistrationNumber string        `yaml:"registration_number"`
	Type               string        `yaml:"type"`
	Address            *yamlAddress  `yaml:"address,omitempty"`
	Contact            *yamlContact  `yaml:"contact,omitempty"`
	Banking            *yamlBanking  `yaml:"banking,omitempty"`
	Tax                *yamlTax      `yaml:"tax,omitempty"`
	Business           *yamlBusiness `yaml:"business,omitempty"`
}

type yamlAddress struct {
	Street      string `yaml:"street"`
	Suburb      string `yaml:"suburb"`
	Province    string `yaml:"province"`
	PostalCode  string `yaml:"postal_code"`
	Country     string `yaml:"country"`
	FullAddress string `yaml:"full_address"`
}

type yamlContact struct {
	Email    string `yaml:"email"`
	Phone    string `yaml:"phone"`
	WhatsApp string `yaml:"whatsapp"`
	Website  string `yaml:"website"`
}

type yamlBanking struct {
	AccountName   string `yaml:"account_name"`
	Bank          string `yaml:"bank"`
	BranchCode    string `yaml:"branch_code"`
	AccountNumber string `yaml:"account_number"`
	AccountType   string `yaml:"account_type"`
	SwiftCode     string `yaml:"swift_code"`
}

type yamlTax struct {
	VATNumber    string `yaml:"vat_number"`
	TaxReference string `yaml:"tax_reference"`
	// Pointer so an absent key can be told apart from an explicit 0.
	DefaultTaxRate *float64 `yaml:"default_tax_rate"`
}

type yamlBusiness struct {
	Industry        string `yaml:"industry"`
	EstablishedYear string `yaml:"established_year"`
	Description     string `yaml:"description"`
}

// Format returns FormatYAML.
func (c *YAMLCodec) Format() Format {
	return FormatYAML
}

// Encode renders the record as the nested YAML document.
func (c *YAMLCodec) Encode(rec *company.Record) ([]byte, error) {
	rate := rec.DefaultTaxRate.InexactFloat64()
	doc := yamlDocument{
		Company: &yamlCompany{
			Name:               rec.Name,
			RegistrationNumber: rec.RegistrationNumber,
			Type:               rec.Type,
			Address: &yamlAddress{
				Street:      rec.Street,
				Suburb:      rec.Suburb,
				Province:    rec.Province,
				PostalCode:  rec.PostalCode,
				Country:     rec.Country,
				FullAddress: rec.FullAddress(),
			},
			Contact: &yamlContact{
				Email:    rec.Email,
				Phone:    rec.Phone,
				WhatsApp: rec.WhatsApp,
				Website:  rec.Website,
			},
			Banking: &yamlBanking{
				AccountName:   rec.AccountName,
				Bank:          rec.Bank,
				BranchCode:    rec.BranchCode,
				AccountNumber: rec.AccountNumber,
				AccountType:   rec.AccountType,
				SwiftCode:     rec.SwiftCode,
			},
			Tax: &yamlTax{
				VATNumber:      rec.VATNumber,
				TaxReference:   rec.TaxReference,
				DefaultTaxRate: &rate,
			},
			Business: &yamlBusiness{
				Industry:        rec.Industry,
				EstablishedYear: rec.EstablishedYear,
				Description:     rec.Description,
			},
		},
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode yaml: %w", err)
	}
	return out, nil
}

// Decode parses a YAML profile document with the same tolerance rules
// as JSON: unknown keys are ignored, missing groups keep defaults, and
// the top-level "company" mapping is required.
func (c *YAMLCodec) Decode(data []byte) (*company.Record, error) {
	var doc yamlDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if doc.Company == nil {
		return nil, fmt.Errorf("%w: missing \"company\" mapping", ErrFormat)
	}

	cd := doc.Company
	rec := company.NewRecord()
	rec.Name = cd.Name
	rec.RegistrationNumber = cd.RegistrationNumber
	rec.Type = cd.Type
	if a := cd.Address; a != nil {
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
		if tx.DefaultTaxRate != nil {
			rec.DefaultTaxRate = decimal.NewFromFloat(*tx.DefaultTaxRate)
		}
	}
	if bz := cd.Business; bz != nil {
		rec.Industry = bz.Industry
		rec.EstablishedYear = bz.EstablishedYear
		rec.Description = bz.Description
	}
	return rec, nil
}
