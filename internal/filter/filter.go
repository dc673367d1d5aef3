// Package filter computes the filtered view of a catalogue: the ordered
// catalogue indices whose fruit name matches a live query.
package filter

import (
	"strings"

	"github.com/janvogt/fcat/internal/model"
)

// Indices returns the catalogue indices whose fruit name contains the
// query as a case-insensitive substring, in catalogue order. An empty
// query yields every index. Pure function of (catalogue, query);
// callers recompute whenever either input changes.
func Indices(c *model.Catalogue, query string) []int {
	indices := make([]int, 0, c.Len())
	q := strings.ToLower(query)
	for i, f := range c.Fruits {
		if q == "" || strings.Contains(strings.ToLower(f.Name), q) {
			indices = append(indices, i)
		}
	}
	return indices
}
