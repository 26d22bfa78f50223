package logos_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pigeonworks-llc/company-manager/pkg/logos"
)

func TestNewRegistry_Catalog(t *testing.T) {
	r := logos.NewRegistry()

	assert.Equal(t, 38, r.Len())
	assert.Len(t, r.ByCategory(logos.CategoryCompany), 2)
	assert.Len(t, r.ByCategory(logos.CategoryDivision), 8)
	assert.Len(t, r.ByCategory(logos.CategoryPartners), 12)
	assert.Len(t, r.ByCategory(logos.CategoryInvestors), 16)

	// Every entry carries a derived download URL.
	for _, logo := range r.All() {
		assert.True(t, strings.HasPrefix(logo.URL, logos.BaseURL+"/"), "logo %s has no catalog URL", logo.Name)
		assert.NotContains(t, logo.URL, " ")
	}
}

func TestRegistry_ByName(t *testing.T) {
	r := logos.NewRegistry()

	logo, ok := r.ByName("jk_winners_investment_main")
	require.True(t, ok)
	assert.Equal(t, logos.CategoryCompany, logo.Category)
	assert.Equal(t, "JK WINNERS INVESTMENT LOGO.png", logo.Filename)
	assert.Equal(t, logos.FormatPNG, logo.Format())
	assert.Equal(t, "full_color", logo.ColorVariant)
	assert.Equal(t,
		"https://raw.githubusercontent.com/jkwinnersinvestment/JKWI-WEB/main/JKWI%20LOGO%20PNG/JK%20WINNERS%20INVESTMENT%20LOGO.png",
		logo.URL)

	_, ok = r.ByName("nonexistent_logo")
	assert.False(t, ok)
}

func TestRegistry_ByCategory(t *testing.T) {
	r := logos.NewRegistry()

	division := r.ByCategory(logos.CategoryDivision)
	require.Len(t, division, 8)
	assert.Equal(t, "jkwi_foundation", division[0].Name)

	// Category matching is case-insensitive.
	assert.Len(t, r.ByCategory(logos.Category("DIVISION")), 8)

	// Unknown categories yield an empty list, not an error.
	assert.Empty(t, r.ByCategory(logos.Category("subsidiaries")))
}

func TestRegistry_CompanyLogo(t *testing.T) {
	r := logos.NewRegistry()

	main, ok := r.CompanyLogo("main")
	require.True(t, ok)
	assert.Equal(t, "jk_winners_investment_main", main.Name)

	white, ok := r.CompanyLogo("white")
	require.True(t, ok)
	assert.Equal(t, "jk_winners_investment_white", white.Name)

	// Any variant other than "main" falls back to the white logo.
	fallback, ok := r.CompanyLogo("dark")
	require.True(t, ok)
	assert.Equal(t, "jk_winners_investment_white", fallback.Name)
}

func TestRegistry_Search(t *testing.T) {
	r := logos.NewRegistry()

	tests := []struct {
		name  string
		query string
		count int
	}{
		{name: "white variants", query: "white", count: 19},
		{name: "by name fragment", query: "foundation", count: 2},
		{name: "case insensitive", query: "FOUNDATION", count: 2},
		{name: "by filename fragment", query: "EXPO", count: 2},
		{name: "no match", query: "zebra", count: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, r.Search(tt.query), tt.count)
		})
	}
}

func TestRegistry_AllReturnsCopy(t *testing.T) {
	r := logos.NewRegistry()

	all := r.All()
	require.Len(t, all, 38)
	all[0].Name = "mutated"

	fresh := r.All()
	assert.Equal(t, "jk_winners_investment_main", fresh[0].Name)
}

func TestRegistry_URL(t *testing.T) {
	r := logos.NewRegistry()

	url, ok := r.URL("jkwi_seed_fund")
	require.True(t, ok)
	assert.Equal(t,
		"https://raw.githubusercontent.com/jkwinnersinvestment/JKWI-WEB/main/JKWI%20LOGO%20PNG/JKWI%20SEED%20FUND%20LOGO.png",
		url)

	_, ok = r.URL("nonexistent_logo")
	assert.False(t, ok)
}

func TestCategories(t *testing.T) {
	want := []logos.Category{
		logos.CategoryCompany,
		logos.CategoryDivision,
		logos.CategoryPartners,
		logos.CategoryInvestors,
	}
	assert.Equal(t, want, logos.Categories())
}

func TestRegistry_ExportJSON(t *testing.T) {
	r := logos.NewRegistry()

	out, err := r.ExportJSON(true)
	require.NoError(t, err)

	var doc struct {
		Metadata struct {
			Version    string   `json:"version"`
			Repository string   `json:"repository"`
			BaseURL    string   `json:"base_url"`
			TotalLogos int      `json:"total_logos"`
			Categories []string `json:"categories"`
		} `json:"metadata"`
		Logos []struct {
			Name     string `json:"name"`
			Category string `json:"category"`
			URL      string `json:"url"`
		} `json:"logos"`
	}
	require.NoError(t, json.Unmarshal(out, &doc))

	assert.Equal(t, "1.0.0", doc.Metadata.Version)
	assert.Equal(t, "https://github.com/jkwinnersinvestment/JKWI-WEB", doc.Metadata.Repository)
	assert.Equal(t, logos.BaseURL, doc.Metadata.BaseURL)
	assert.Equal(t, 38, doc.Metadata.TotalLogos)
	assert.Equal(t, []string{"company", "division", "partners", "investors"}, doc.Metadata.Categories)

	require.Len(t, doc.Logos, 38)
	assert.Equal(t, "jk_winners_investment_main", doc.Logos[0].Name)
	assert.Equal(t, "company", doc.Logos[0].Category)

	// Unset optional attributes are omitted from the export.
	assert.NotContains(t, string(out), `"size_hint"`)

	compact, err := r.ExportJSON(false)
	require.NoError(t, err)
	assert.NotContains(t, string(compact), "\n")
	assert.Less(t, len(compact), len(out))
}

func TestRegistry_Gallery(t *testing.T) {
	r := logos.NewRegistry()

	out, err := r.Gallery()
	require.NoError(t, err)
	html := string(out)

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	for _, heading := range []string{"Company Logos", "Division Logos", "Partners Logos", "Investors Logos"} {
		assert.Contains(t, html, "<h2>"+heading+"</h2>")
	}
	assert.Equal(t, 38, strings.Count(html, `<div class="logo-card">`))
	assert.Contains(t, html, `loading="lazy"`)
	assert.Contains(t, html, "JK%20WINNERS%20INVESTMENT%20LOGO.png")
}
