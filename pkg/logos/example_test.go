package logos_test

import (
	"fmt"

	"github.com/pigeonworks-llc/company-manager/pkg/logos"
)

func ExampleRegistry_CompanyLogo() {
	registry := logos.NewRegistry()

	logo, _ := registry.CompanyLogo("main")
	fmt.Println(logo.Name)
	fmt.Println(logo.URL)
	// Output:
	// jk_winners_investment_main
	// https://raw.githubusercontent.com/jkwinnersinvestment/JKWI-WEB/main/JKWI%20LOGO%20PNG/JK%20WINNERS%20INVESTMENT%20LOGO.png
}

func ExampleRegistry_Search() {
	registry := logos.NewRegistry()

	for _, logo := range registry.Search("foundation") {
		fmt.Println(logo.Name)
	}
	// Output:
	// jkwi_foundation
	// jkwi_foundation_white
}

func ExampleRegistry_ByCategory() {
	registry := logos.NewRegistry()

	for _, logo := range registry.ByCategory(logos.CategoryDivision) {
		if logo.ColorVariant == "" {
			fmt.Println(logo.Name)
		}
	}
	// Output:
	// jkwi_foundation
	// jkwi_innovation_hub
	// jkwi_properties
	// jkwi_ventures
}
