package logos

import "strings"

// Registry indexes the logo catalog for lookup by name and category.
// It is built once and never mutated; every accessor hands out copies.
type Registry struct {
	logos      []Logo
	byName     map[string]Logo
	byCategory map[Category][]Logo
}

// NewRegistry builds the registry from the static catalog and fills in
// the download URL of every entry.
func NewRegistry() *Registry {
	r := &Registry{
		logos:      make([]Logo, 0, len(catalog)),
		byName:     make(map[string]Logo, len(catalog)),
		byCategory: make(map[Category][]Logo),
	}
	for _, logo := range catalog {
		logo.URL = logoURL(logo.Filename)
		r.logos = append(r.logos, logo)
		r.byName[logo.Name] = logo
		r.byCategory[logo.Category] = append(r.byCategory[logo.Category], logo)
	}
	return r
}

// Len returns the number of logos in the registry.
func (r *Registry) Len() int {
	return len(r.logos)
}

// ByName looks up a logo by its registry name, e.g.
// "jk_winners_investment_main".
func (r *Registry) ByName(name string) (Logo, bool) {
	logo, ok := r.byName[name]
	return logo, ok
}

// ByCategory returns the logos of one category in catalog order. The
// category is matched case-insensitively; an unknown category yields an
// empty list.
func (r *Registry) ByCategory(category Category) []Logo {
	normalized := Category(strings.ToLower(string(category)))
	logos := r.byCategory[normalized]
	out := make([]Logo, len(logos))
	copy(out, logos)
	return out
}

// CompanyLogo returns the company logo. The "main" variant is the full
// color logo; any other variant selects the white one.
func (r *Registry) CompanyLogo(variant string) (Logo, bool) {
	name := "jk_winners_investment_white"
	if variant == "main" {
		name = "jk_winners_investment_main"
	}
	return r.ByName(name)
}

// Search returns the logos whose name, description or filename contains
// the query, compared case-insensitively.
func (r *Registry) Search(query string) []Logo {
	q := strings.ToLower(query)
	var results []Logo
	for _, logo := range r.logos {
		if strings.Contains(strings.ToLower(logo.Name), q) ||
			strings.Contains(strings.ToLower(logo.Description), q) ||
			strings.Contains(strings.ToLower(logo.Filename), q) {
			results = append(results, logo)
		}
	}
	return results
}

// All returns every logo in catalog order.
func (r *Registry) All() []Logo {
	out := make([]Logo, len(r.logos))
	copy(out, r.logos)
	return out
}

// URL returns the download URL for a logo name.
func (r *Registry) URL(name string) (string, bool) {
	logo, ok := r.byName[name]
	if !ok {
		return "", false
	}
	return logo.URL, true
}
