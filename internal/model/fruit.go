package model

// Fruit represents a catalogued fruit with its bounding dimensions.
// Values are validated before construction; a Fruit in a Catalogue
// always has a non-empty name and strictly positive dimensions.
type Fruit struct {
	Name   string  `json:"name"`
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Volume returns the derived volume (length × width × height).
func (f Fruit) Volume() float64 {
	return f.Length * f.Width * f.Height
}
