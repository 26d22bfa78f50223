package logos

import (
	"encoding/json"
	"fmt"
)

// exportMetadata heads the machine-readable catalog export.
type exportMetadata struct {
	Version    string     `json:"version"`
	Repository string     `json:"repository"`
	BaseURL    string     `json:"base_url"`
	TotalLogos int        `json:"total_logos"`
	Categories []Category `json:"categories"`
}

type exportDocument struct {
	Metadata exportMetadata `json:"metadata"`
	Logos    []Logo         `json:"logos"`
}

// ExportJSON renders the whole catalog as a JSON document with a
// metadata header and the flat logo list. Pretty output is indented
// with two spaces.
func (r *Registry) ExportJSON(pretty bool) ([]byte, error) {
	doc := exportDocument{
		Metadata: exportMetadata{
			Version:    Version,
			Repository: RepositoryURL,
			BaseURL:    BaseURL,
			TotalLogos: r.Len(),
			Categories: Categories(),
		},
		Logos: r.All(),
	}

	var (
		out []byte
		err error
	)
	if pretty {
		out, err = json.MarshalIndent(doc, "", "  ")
	} else {
		out, err = json.Marshal(doc)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to export logo catalog: %w", err)
	}
	return out, nil
}
