// Package logos provides the static registry of JKWI brand assets and
// their GitHub-hosted download URLs.
package logos

import (
	"path/filepath"
	"strings"
)

// Category groups logos by the kind of entity they represent.
type Category string

const (
	CategoryCompany   Category = "company"
	CategoryDivision  Category = "division"
	CategoryPartners  Category = "partners"
	CategoryInvestors Category = "investors"
)

// Categories returns the closed category set in display order.
func Categories() []Category {
	return []Category{CategoryCompany, CategoryDivision, CategoryPartners, CategoryInvestors}
}

// Format identifies the image format of a logo file.
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPG  Format = "jpg"
	FormatJPEG Format = "jpeg"
	FormatSVG  Format = "svg"
	FormatWebP Format = "webp"
)

// Logo describes one brand asset in the registry.
type Logo struct {
	Name         string   `json:"name"`
	Category     Category `json:"category"`
	Filename     string   `json:"filename"`
	URL          string   `json:"url"`
	Description  string   `json:"description"`
	SizeHint     string   `json:"size_hint,omitempty"`
	ColorVariant string   `json:"color_variant,omitempty"`
}

// Format derives the image format from the logo's filename extension.
func (l Logo) Format() Format {
	ext := strings.TrimPrefix(filepath.Ext(l.Filename), ".")
	return Format(strings.ToLower(ext))
}
