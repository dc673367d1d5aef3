package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/janvogt/fcat/internal/model"
)

// DefaultCatalogueFile is the canonical catalogue resource name, offered
// by the startup negotiator when no catalogue exists yet.
const DefaultCatalogueFile = "fruits.json"

// ErrNotFound is returned by Load when the catalogue resource does not exist.
var ErrNotFound = errors.New("catalogue not found")

// ParseError is returned by Load when the resource exists but is malformed.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Storage defines the interface for persisting a catalogue.
type Storage interface {
	Load() (*model.Catalogue, error)
	Save(c *model.Catalogue) error
	Path() string
}

// Open returns the storage backend for the given path, chosen by
// extension: .db/.sqlite use SQLite, everything else JSON.
func Open(path string) (Storage, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite":
		return NewSQLiteStorage(path)
	default:
		return NewJSONStorage(path), nil
	}
}

// JSONStorage implements Storage using a JSON file holding an ordered
// array of fruit records.
type JSONStorage struct {
	path string
}

// NewJSONStorage creates a new JSONStorage with the given file path.
func NewJSONStorage(path string) *JSONStorage {
	return &JSONStorage{path: path}
}

// Path returns the storage file path.
func (s *JSONStorage) Path() string {
	return s.path
}

// fruitRecord is the wire shape of a single record. Pointer fields let
// Load distinguish absent fields (a parse error) from zero values.
// Unknown fields in the file are ignored.
type fruitRecord struct {
	Name   *string  `json:"name"`
	Length *float64 `json:"length"`
	Width  *float64 `json:"width"`
	Height *float64 `json:"height"`
}

// Load reads the catalogue from the JSON file.
// Returns ErrNotFound if the file does not exist and a *ParseError if
// it exists but is malformed or has records with missing fields.
func (s *JSONStorage) Load() (*model.Catalogue, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var records []fruitRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &ParseError{Path: s.path, Err: err}
	}

	cat := model.NewCatalogue()
	for i, r := range records {
		if r.Name == nil || r.Length == nil || r.Width == nil || r.Height == nil {
			return nil, &ParseError{
				Path: s.path,
				Err:  fmt.Errorf("record %d is missing required fields", i),
			}
		}
		cat.Add(model.Fruit{
			Name:   *r.Name,
			Length: *r.Length,
			Width:  *r.Width,
			Height: *r.Height,
		})
	}

	return cat, nil
}

// Save writes the catalogue to the JSON file as an ordered array.
// Creates the directory if it doesn't exist.
func (s *JSONStorage) Save(c *model.Catalogue) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c.Fruits, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0644)
}
