// Package company defines the company profile record and field-level
// access to it.
package company

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrValidation is returned by Set when a value fails field validation.
	ErrValidation = errors.New("invalid field value")

	// ErrUnknownField is returned by Get and Set for keys that are not
	// part of the record.
	ErrUnknownField = errors.New("unknown field")
)

// Record holds the company profile. All fields are free-form strings
// except DefaultTaxRate, which is a decimal percentage.
type Record struct {
	Name               string
	RegistrationNumber string
	Type               string

	Street     string
	Suburb     string
	Province   string
	PostalCode string
	Country    string

	Email    string
	Phone    string
	WhatsApp string
	Website  string

	AccountName   string
	Bank          string
	BranchCode    string
	AccountNumber string
	AccountType   string
	SwiftCode     string

	VATNumber    string
	TaxReference string
	// DefaultTaxRate is a percentage, e.g. 15.0 for 15% VAT.
	DefaultTaxRate decimal.Decimal

	Industry        string
	EstablishedYear string
	Description     string
}

// NewRecord returns a record populated with the JK Winners Investment
// company profile.
func NewRecord() *Record {
	return &Record{
		Name:               "JK WINNERS INVESTMENT(PTY)Ltd",
		RegistrationNumber: "2013/047375/07",
		Type:               "Private Company",
		Street:             "22 Sloane Street",
		Suburb:             "Bryanston",
		Province:           "GAUTENG",
		PostalCode:         "1619",
		Country:            "South Africa",
		Email:              "info@jkwinnersinvestment.co.za",
		Phone:              "010 085 3553",
		WhatsApp:           "0839887569",
		Website:            "",
		AccountName:        "JK Winners Investment (Pty)Ltd",
		Bank:               "FNB",
		BranchCode:         "250655",
		AccountNumber:      "63151527133",
		AccountType:        "Business",
		SwiftCode:          "",
		VATNumber:          "",
		TaxReference:       "",
		DefaultTaxRate:     decimal.NewFromFloat(15.0),
		Industry:           "Investment",
		EstablishedYear:    "2013",
		Description:        "Investment Company",
	}
}

// fieldKeys lists the settable field keys in canonical order.
var fieldKeys = []string{
	"name",
	"registration_number",
	"type",
	"street",
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
	"swift_code",
	"vat_number",
	"tax_reference",
	"default_tax_rate",
	"industry",
	"established_year",
	"description",
}

// FieldKeys returns the settable field keys in canonical order.
func FieldKeys() []string {
	keys := make([]string, len(fieldKeys))
	copy(keys, fieldKeys)
	return keys
}

// FullAddress renders the single-line postal address derived from the
// address fields, e.g. "22 Sloane Street, Bryanston, GAUTENG 1619".
func (r *Record) FullAddress() string {
	return fmt.Sprintf("%s, %s, %s %s", r.Street, r.Suburb, r.Province, r.PostalCode)
}

// Get returns the value of the field identified by key as a string.
// DefaultTaxRate is rendered in its decimal notation.
func (r *Record) Get(key string) (string, error) {
	switch key {
	case "name":
		return r.Name, nil
	case "registration_number":
		return r.RegistrationNumber, nil
	case "type":
		return r.Type, nil
	case "street":
		return r.Street, nil
	case "suburb":
		return r.Suburb, nil
	case "province":
		return r.Province, nil
	case "postal_code":
		return r.PostalCode, nil
	case "country":
		return r.Country, nil
	case "email":
		return r.Email, nil
	case "phone":
		return r.Phone, nil
	case "whatsapp":
		return r.WhatsApp, nil
	case "website":
		return r.Website, nil
	case "account_name":
		return r.AccountName, nil
	case "bank":
		return r.Bank, nil
	case "branch_code":
		return r.BranchCode, nil
	case "account_number":
		return r.AccountNumber, nil
	case "account_type":
		return r.AccountType, nil
	case "swift_code":
		return r.SwiftCode, nil
	case "vat_number":
		return r.VATNumber, nil
	case "tax_reference":
		return r.TaxReference, nil
	case "default_tax_rate":
		return r.DefaultTaxRate.String(), nil
	case "industry":
		return r.Industry, nil
	case "established_year":
		return r.EstablishedYear, nil
	case "description":
		return r.Description, nil
	default:
		return "", fmt.Errorf("field %q: %w", key, ErrUnknownField)
	}
}

// Set assigns value to the field identified by key. Only
// default_tax_rate is validated: the value must parse as a non-negative
// decimal, otherwise the field keeps its previous value and Set returns
// an error wrapping ErrValidation. Every other field accepts any
// string, including the empty string.
func (r *Record) Set(key, value string) error {
	switch key {
	case "name":
		r.Name = value
	case "registration_number":
		r.RegistrationNumber = value
	case "type":
		r.Type = value
	case "street":
		r.Street = value
	case "suburb":
		r.Suburb = value
	case "province":
		r.Province = value
	case "postal_code":
		r.PostalCode = value
	case "country":
		r.Country = value
	case "email":
		r.Email = value
	case "phone":
		r.Phone = value
	case "whatsapp":
		r.WhatsApp = value
	case "website":
		r.Website = value
	case "account_name":
		r.AccountName = value
	case "bank":
		r.Bank = value
	case "branch_code":
		r.BranchCode = value
	case "account_number":
		r.AccountNumber = value
	case "account_type":
		r.AccountType = value
	case "swift_code":
		r.SwiftCode = value
	case "vat_number":
		r.VATNumber = value
	case "tax_reference":
		r.TaxReference = value
	case "default_tax_rate":
		rate, err := decimal.NewFromString(value)
		if err != nil || rate.IsNegative() {
			return fmt.Errorf("default_tax_rate %q: %w", value, ErrValidation)
		}
		r.DefaultTaxRate = rate
	case "industry":
		r.Industry = value
	case "established_year":
		r.EstablishedYear = value
	case "description":
		r.Description = value
	default:
		return fmt.Errorf("field %q: %w", key, ErrUnknownField)
	}
	return nil
}

// Clone returns a copy of the record that can be modified without
// affecting the original.
func (r *Record) Clone() *Record {
	c := *r
	return &c
}

// Equal reports whether two records hold the same profile. Tax rates
// compare numerically, so 15 and 15.0 are equal.
func (r *Record) Equal(o *Record) bool {
	if r == nil || o == nil {
		return r == o
	}
	if !r.DefaultTaxRate.Equal(o.DefaultTaxRate) {
		return false
	}
	a, b := *r, *o
	a.DefaultTaxRate = decimal.Decimal{}
	b.DefaultTaxRate = decimal.Decimal{}
	return a == b
}
