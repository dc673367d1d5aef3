package search

import (
	"github.com/sahilm/fuzzy"

	"github.com/janvogt/fcat/internal/model"
)

// SearchResult represents a fuzzy search match.
type SearchResult struct {
	Fruit          *model.Fruit
	MatchedIndexes []int
	Score          int
}

// fruitNames implements fuzzy.Source for a fruit slice.
type fruitNames []*model.Fruit

func (fn fruitNames) String(i int) string {
	return fn[i].Name
}

func (fn fruitNames) Len() int {
	return len(fn)
}

// FuzzySearchFruits searches the catalogue by fruit name using fuzzy matching.
// Returns results sorted by match score (best first).
func FuzzySearchFruits(c *model.Catalogue, query string) []SearchResult {
	if query == "" {
		return nil
	}

	fruits := make(fruitNames, c.Len())
	for i := range c.Fruits {
		fruits[i] = &c.Fruits[i]
	}

	matches := fuzzy.FindFrom(query, fruits)

	results := make([]SearchResult, len(matches))
	for i, m := range matches {
		results[i] = SearchResult{
			Fruit:          fruits[m.Index],
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}

	return results
}
