package model

import (
	"fmt"
	"strings"
)

// Catalogue holds the ordered list of fruits. Insertion order is
// significant and preserved across persistence round trips.
type Catalogue struct {
	Fruits []Fruit `json:"fruits"`
}

// NewCatalogue creates an empty Catalogue with an initialized slice.
func NewCatalogue() *Catalogue {
	return &Catalogue{Fruits: []Fruit{}}
}

// Len returns the number of fruits in the catalogue.
func (c *Catalogue) Len() int {
	return len(c.Fruits)
}

// Add appends a fruit to the end of the catalogue.
func (c *Catalogue) Add(f Fruit) {
	c.Fruits = append(c.Fruits, f)
}

// Update replaces the fruit at the given index wholesale.
func (c *Catalogue) Update(index int, f Fruit) error {
	if index < 0 || index >= len(c.Fruits) {
		return fmt.Errorf("invalid fruit index %d", index)
	}
	c.Fruits[index] = f
	return nil
}

// Delete removes the fruit at the given index, preserving order.
func (c *Catalogue) Delete(index int) error {
	if index < 0 || index >= len(c.Fruits) {
		return fmt.Errorf("invalid fruit index %d", index)
	}
	c.Fruits = append(c.Fruits[:index], c.Fruits[index+1:]...)
	return nil
}

// Get returns the fruit at the given index, or nil if out of range.
func (c *Catalogue) Get(index int) *Fruit {
	if index < 0 || index >= len(c.Fruits) {
		return nil
	}
	return &c.Fruits[index]
}

// Merge appends fruits whose names are not yet in the catalogue.
// Name comparison is case-insensitive. Returns counts of fruits added
// and skipped as duplicates.
func (c *Catalogue) Merge(fruits []Fruit) (added, skipped int) {
	existing := make(map[string]bool, len(c.Fruits))
	for _, f := range c.Fruits {
		existing[strings.ToLower(f.Name)] = true
	}

	for _, f := range fruits {
		key := strings.ToLower(f.Name)
		if existing[key] {
			skipped++
			continue
		}
		c.Fruits = append(c.Fruits, f)
		existing[key] = true
		added++
	}

	return added, skipped
}

// DefaultCatalogue returns the built-in starter catalogue. Pure, no I/O;
// used when the user has no persisted catalogue yet.
func DefaultCatalogue() *Catalogue {
	return &Catalogue{
		Fruits: []Fruit{
			{Name: "Apple", Length: 8.0, Width: 7.5, Height: 7.8},
			{Name: "Banana", Length: 19.0, Width: 3.5, Height: 3.2},
			{Name: "Mango", Length: 10.5, Width: 8.0, Height: 7.0},
			{Name: "Orange", Length: 7.2, Width: 7.2, Height: 7.0},
			{Name: "Watermelon", Length: 30.0, Width: 22.0, Height: 21.0},
		},
	}
}
