package logos

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
)

const galleryTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>JKWI Logo Gallery</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 20px; background: #f5f5f5; }
        .header { text-align: center; margin-bottom: 30px; }
        .category { margin-bottom: 40px; }
        .category h2 { color: #333; border-bottom: 2px solid #007acc; padding-bottom: 10px; }
        .logo-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(300px, 1fr)); gap: 20px; }
        .logo-card { background: white; border-radius: 8px; padding: 20px; box-shadow: 0 2px 4px rgba(0,0,0,0.1); }
        .logo-card img { max-width: 100%; height: auto; margin-bottom: 10px; }
        .logo-name { font-weight: bold; color: #333; }
        .logo-description { color: #666; font-size: 14px; margin-top: 5px; }
        .logo-url { font-size: 12px; color: #007acc; word-break: break-all; }
    </style>
</head>
<body>
    <div class="header">
        <h1>JK Winners Investment Logo Gallery</h1>
        <p>Complete collection of JKWI logos organized by category</p>
    </div>
{{- range .Sections}}
    <div class="category">
        <h2>{{.Title}} Logos</h2>
        <div class="logo-grid">
{{- range .Logos}}
            <div class="logo-card">
                <img src="{{.URL}}" alt="{{.Description}}" loading="lazy">
                <div class="logo-name">{{.Name}}</div>
                <div class="logo-description">{{.Description}}</div>
                <div class="logo-url">{{.URL}}</div>
            </div>
{{- end}}
        </div>
    </div>
{{- end}}
</body>
</html>
`

var galleryTmpl = template.Must(template.New("gallery").Parse(galleryTemplate))

type gallerySection struct {
	Title string
	Logos []Logo
}

// Gallery renders a static HTML page of every logo grouped by category,
// with images loaded lazily from the raw-content URLs.
func (r *Registry) Gallery() ([]byte, error) {
	var sections []gallerySection
	for _, category := range Categories() {
		logos := r.ByCategory(category)
		if len(logos) == 0 {
			continue
		}
		sections = append(sections, gallerySection{
			Title: titleCase(string(category)),
			Logos: logos,
		})
	}

	var buf bytes.Buffer
	data := struct{ Sections []gallerySection }{Sections: sections}
	if err := galleryTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render logo gallery: %w", err)
	}
	return buf.Bytes(), nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
