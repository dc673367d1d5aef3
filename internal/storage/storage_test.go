package storage_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/janvogt/fcat/internal/model"
	"github.com/janvogt/fcat/internal/storage"
)

func testCatalogue() *model.Catalogue {
	return &model.Catalogue{
		Fruits: []model.Fruit{
			{Name: "Apple", Length: 8.0, Width: 7.5, Height: 7.8},
			{Name: "Banana", Length: 19.0, Width: 3.5, Height: 3.2},
		},
	}
}

func TestJSONStorage_SaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "fruits.json")

	s := storage.NewJSONStorage(path)
	if err := s.Save(testCatalogue()); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}

	// Save then load yields the same ordered sequence of records
	assert.DeepEqual(t, testCatalogue().Fruits, loaded.Fruits)
}

func TestJSONStorage_LoadNonexistent(t *testing.T) {
	tmpDir := t.TempDir()
	s := storage.NewJSONStorage(filepath.Join(tmpDir, "missing.json"))

	_, err := s.Load()
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound for missing file, got: %v", err)
	}
}

func TestJSONStorage_LoadMalformed(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "fruits.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	s := storage.NewJSONStorage(path)
	_, err := s.Load()

	var parseErr *storage.ParseError
	if !errors.As(err, &parseErr) {
		t.Errorf("expected *ParseError for malformed file, got: %v", err)
	}
}

func TestJSONStorage_LoadIgnoresUnknownFields(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "fruits.json")
	data := `[{"name":"Apple","length":8,"width":7.5,"height":7.8,"color":"red"}]`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	s := storage.NewJSONStorage(path)
	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("unknown fields should be ignored, got: %v", err)
	}
	if loaded.Len() != 1 || loaded.Fruits[0].Name != "Apple" {
		t.Errorf("unexpected catalogue: %+v", loaded.Fruits)
	}
}

func TestJSONStorage_LoadMissingFieldIsParseError(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"missing name", `[{"length":8,"width":7.5,"height":7.8}]`},
		{"missing length", `[{"name":"Apple","width":7.5,"height":7.8}]`},
		{"missing width", `[{"name":"Apple","length":8,"height":7.8}]`},
		{"missing height", `[{"name":"Apple","length":8,"width":7.5}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			path := filepath.Join(tmpDir, "fruits.json")
			if err := os.WriteFile(path, []byte(tt.data), 0644); err != nil {
				t.Fatal(err)
			}

			s := storage.NewJSONStorage(path)
			_, err := s.Load()

			var parseErr *storage.ParseError
			if !errors.As(err, &parseErr) {
				t.Errorf("expected *ParseError, got: %v", err)
			}
		})
	}
}

func TestJSONStorage_SaveCreatesDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "dir", "fruits.json")

	s := storage.NewJSONStorage(path)
	if err := s.Save(model.NewCatalogue()); err != nil {
		t.Fatalf("failed to save into nested dir: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("catalogue file was not created")
	}
}

func TestOpen_ChoosesBackendByExtension(t *testing.T) {
	tmpDir := t.TempDir()

	jsonStore, err := storage.Open(filepath.Join(tmpDir, "fruits.json"))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := jsonStore.(*storage.JSONStorage); !ok {
		t.Errorf("expected JSONStorage for .json, got %T", jsonStore)
	}

	dbStore, err := storage.Open(filepath.Join(tmpDir, "fruits.db"))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := dbStore.(*storage.SQLiteStorage); !ok {
		t.Errorf("expected SQLiteStorage for .db, got %T", dbStore)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.json")

	config, err := storage.LoadConfig(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if config.CatalogueFile != storage.DefaultCatalogueFile {
		t.Errorf("expected default catalogue file, got %q", config.CatalogueFile)
	}

	// File should have been created with defaults
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("config file was not created")
	}
}

func TestLoadConfig_AppliesDefaultsForMissingFields(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.json")
	if err := os.WriteFile(path, []byte(`{}`), 0644); err != nil {
		t.Fatal(err)
	}

	config, err := storage.LoadConfig(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if config.CatalogueFile != storage.DefaultCatalogueFile {
		t.Errorf("expected default catalogue file, got %q", config.CatalogueFile)
	}
}
