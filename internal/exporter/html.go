package exporter

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/janvogt/fcat/internal/model"
)

// DefaultExportPath returns the default export file path.
// Format: ~/Downloads/fruits-export-YYYY-MM-DD.html
func DefaultExportPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("fruits-export-%s.html", time.Now().Format("2006-01-02"))
	return filepath.Join(home, "Downloads", filename), nil
}

// ExportHTML renders the catalogue as an HTML table. Dimensions are
// carried in data attributes so the importer can read them back exactly.
func ExportHTML(c *model.Catalogue) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString("<meta charset=\"UTF-8\">\n")
	b.WriteString("<title>Fruit Catalogue</title>\n")
	b.WriteString("<h1>Fruit Catalogue</h1>\n")
	b.WriteString("<table>\n")
	b.WriteString("    <tr><th>Name</th><th>Length</th><th>Width</th><th>Height</th><th>Volume</th></tr>\n")

	for _, f := range c.Fruits {
		fmt.Fprintf(&b,
			"    <tr class=\"fruit\" data-length=\"%s\" data-width=\"%s\" data-height=\"%s\"><td>%s</td><td>%g</td><td>%g</td><td>%g</td><td>%.2f</td></tr>\n",
			formatDim(f.Length),
			formatDim(f.Width),
			formatDim(f.Height),
			html.EscapeString(f.Name),
			f.Length, f.Width, f.Height,
			f.Volume(),
		)
	}

	b.WriteString("</table>\n")

	return b.String()
}

// formatDim formats a dimension with full precision for round-tripping.
func formatDim(v float64) string {
	return strings.TrimSpace(fmt.Sprintf("%v", v))
}
