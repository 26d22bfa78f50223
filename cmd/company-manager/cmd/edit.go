package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pigeonworks-llc/company-manager/pkg/company"
	"github.com/pigeonworks-llc/company-manager/pkg/profile"
)

// editCmd represents the edit command.
var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the company profile interactively",
	Long: `Edit the company profile through a group menu.

Each field is prompted with its current value; pressing enter keeps it.
The tax rate must be a non-negative number, any other input keeps the
current value. Saving rewrites every file format.

Example:
  company-manager edit`,
	Run: runEdit,
}

func runEdit(cmd *cobra.Command, args []string) {
	pathResolver := loadPathResolver()
	repo := profile.NewFileSystemRepository(pathResolver)
	rec := loadRecord(repo)

	reader := bufio.NewReader(os.Stdin)

	fmt.Println("=== Company Details Editor ===")
	fmt.Println("Current company details:")
	printProfile(rec)

	for {
		fmt.Println("\nWhat would you like to edit?")
		fmt.Println("1. Company Information")
		fmt.Println("2. Address")
		fmt.Println("3. Contact Details")
		fmt.Println("4. Banking Information")
		fmt.Println("5. Tax Information")
		fmt.Println("6. Business Information")
		fmt.Println("7. Save and Exit")

		choice := prompt(reader, "Enter your choice (1-7): ")
		if choice == "7" {
			break
		}

		switch choice {
		case "1":
			editCompanyInfo(reader, rec)
		case "2":
			editAddress(reader, rec)
		case "3":
			editContact(reader, rec)
		case "4":
			editBanking(reader, rec)
		case "5":
			editTax(reader, rec)
		case "6":
			editBusiness(reader, rec)
		default:
			fmt.Println("Invalid choice")
		}

		if !strings.EqualFold(prompt(reader, "Continue editing? (y/n): "), "y") {
			break
		}
	}

	updateAllFormats(repo, pathResolver, rec)
}

// Helper functions

// prompt prints a label and reads one line of input.
func prompt(reader *bufio.Reader, label string) string {
	fmt.Print(label)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}

// editString prompts for a field; empty input keeps the current value.
func editString(reader *bufio.Reader, label, current string) string {
	value := prompt(reader, fmt.Sprintf("%s [%s]: ", label, current))
	if value == "" {
		return current
	}
	return value
}

func editCompanyInfo(reader *bufio.Reader, rec *company.Record) {
	fmt.Println("\n--- Company Information ---")
	rec.Name = editString(reader, "Company Name", rec.Name)
	rec.RegistrationNumber = editString(reader, "Registration Number", rec.RegistrationNumber)
	rec.Type = editString(reader, "Company Type", rec.Type)
}

func editAddress(reader *bufio.Reader, rec *company.Record) {
	fmt.Println("\n--- Address Information ---")
	rec.Street = editString(reader, "Street Address", rec.Street)
	rec.Suburb = editString(reader, "Suburb", rec.Suburb)
	rec.Province = editString(reader, "Province", rec.Province)
	rec.PostalCode = editString(reader, "Postal Code", rec.PostalCode)
	rec.Country = editString(reader, "Country", rec.Country)
}

func editContact(reader *bufio.Reader, rec *company.Record) {
	fmt.Println("\n--- Contact Information ---")
	rec.Email = editString(reader, "Email", rec.Email)
	rec.Phone = editString(reader, "Phone", rec.Phone)
	rec.WhatsApp = editString(reader, "WhatsApp", rec.WhatsApp)
	rec.Website = editString(reader, "Website", rec.Website)
}

func editBanking(reader *bufio.Reader, rec *company.Record) {
	fmt.Println("\n--- Banking Information ---")
	rec.AccountName = editString(reader, "Account Name", rec.AccountName)
	rec.Bank = editString(reader, "Bank", rec.Bank)
	rec.BranchCode = editString(reader, "Branch Code", rec.BranchCode)
	rec.AccountNumber = editString(reader, "Account Number", rec.AccountNumber)
	rec.AccountType = editString(reader, "Account Type", rec.AccountType)
	rec.SwiftCode = editString(reader, "SWIFT Code", rec.SwiftCode)
}

func editTax(reader *bufio.Reader, rec *company.Record) {
	fmt.Println("\n--- Tax Information ---")
	rec.VATNumber = editString(reader, "VAT Number", rec.VATNumber)
	rec.TaxReference = editString(reader, "Tax Reference", rec.TaxReference)

	value := prompt(reader, fmt.Sprintf("Default Tax Rate [%s]: ", rec.DefaultTaxRate.String()))
	if value == "" {
		return
	}
	if err := rec.Set("default_tax_rate", value); err != nil {
		if errors.Is(err, company.ErrValidation) {
			fmt.Println("Invalid tax rate, keeping current value")
			return
		}
		exitOnError(err, "failed to update tax rate")
	}
}

func editBusiness(reader *bufio.Reader, rec *company.Record) {
	fmt.Println("\n--- Business Information ---")
	rec.Industry = editString(reader, "Industry", rec.Industry)
	rec.EstablishedYear = editString(reader, "Established Year", rec.EstablishedYear)
	rec.Description = editString(reader, "Description", rec.Description)
}
