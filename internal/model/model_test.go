package model_test

import (
	"math"
	"testing"

	"github.com/janvogt/fcat/internal/model"
)

func TestFruit_Volume(t *testing.T) {
	tests := []struct {
		name  string
		fruit model.Fruit
		want  float64
	}{
		{
			name:  "unit cube",
			fruit: model.Fruit{Name: "Cube", Length: 1, Width: 1, Height: 1},
			want:  1,
		},
		{
			name:  "mango",
			fruit: model.Fruit{Name: "Mango", Length: 10.0, Width: 8.0, Height: 7.0},
			want:  560,
		},
		{
			name:  "fractional dimensions",
			fruit: model.Fruit{Name: "Berry", Length: 1.5, Width: 2.5, Height: 0.5},
			want:  1.875,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.fruit.Volume()
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Volume() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCatalogue_Add(t *testing.T) {
	c := model.NewCatalogue()
	c.Add(model.Fruit{Name: "Apple", Length: 8, Width: 7.5, Height: 7.8})

	if c.Len() != 1 {
		t.Fatalf("expected 1 fruit, got %d", c.Len())
	}
	if c.Fruits[0].Name != "Apple" {
		t.Errorf("expected Apple, got %q", c.Fruits[0].Name)
	}
}

func TestCatalogue_Add_PreservesOrder(t *testing.T) {
	c := model.NewCatalogue()
	names := []string{"Banana", "Apple", "Cherry"}
	for _, n := range names {
		c.Add(model.Fruit{Name: n, Length: 1, Width: 1, Height: 1})
	}

	for i, n := range names {
		if c.Fruits[i].Name != n {
			t.Errorf("index %d: expected %q, got %q", i, n, c.Fruits[i].Name)
		}
	}
}

func TestCatalogue_Update(t *testing.T) {
	c := model.NewCatalogue()
	c.Add(model.Fruit{Name: "Apple", Length: 8, Width: 7.5, Height: 7.8})

	err := c.Update(0, model.Fruit{Name: "Green Apple", Length: 7, Width: 7, Height: 7})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Fruits[0].Name != "Green Apple" {
		t.Errorf("expected Green Apple, got %q", c.Fruits[0].Name)
	}
}

func TestCatalogue_Update_InvalidIndex(t *testing.T) {
	c := model.NewCatalogue()

	if err := c.Update(0, model.Fruit{Name: "X", Length: 1, Width: 1, Height: 1}); err == nil {
		t.Error("expected error for out-of-range update")
	}
	if err := c.Update(-1, model.Fruit{Name: "X", Length: 1, Width: 1, Height: 1}); err == nil {
		t.Error("expected error for negative index")
	}
}

func TestCatalogue_Delete(t *testing.T) {
	c := model.NewCatalogue()
	c.Add(model.Fruit{Name: "A", Length: 1, Width: 1, Height: 1})
	c.Add(model.Fruit{Name: "B", Length: 1, Width: 1, Height: 1})
	c.Add(model.Fruit{Name: "C", Length: 1, Width: 1, Height: 1})

	if err := c.Delete(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.Len() != 2 {
		t.Fatalf("expected 2 fruits, got %d", c.Len())
	}
	if c.Fruits[0].Name != "A" || c.Fruits[1].Name != "C" {
		t.Errorf("expected [A C], got [%s %s]", c.Fruits[0].Name, c.Fruits[1].Name)
	}
}

func TestCatalogue_Delete_InvalidIndex(t *testing.T) {
	c := model.NewCatalogue()
	if err := c.Delete(0); err == nil {
		t.Error("expected error deleting from empty catalogue")
	}
}

func TestCatalogue_Get(t *testing.T) {
	c := model.NewCatalogue()
	c.Add(model.Fruit{Name: "Apple", Length: 8, Width: 7.5, Height: 7.8})

	if f := c.Get(0); f == nil || f.Name != "Apple" {
		t.Error("expected to get Apple at index 0")
	}
	if f := c.Get(1); f != nil {
		t.Error("expected nil for out-of-range index")
	}
	if f := c.Get(-1); f != nil {
		t.Error("expected nil for negative index")
	}
}

func TestCatalogue_Merge(t *testing.T) {
	c := model.NewCatalogue()
	c.Add(model.Fruit{Name: "Apple", Length: 8, Width: 7.5, Height: 7.8})

	added, skipped := c.Merge([]model.Fruit{
		{Name: "apple", Length: 1, Width: 1, Height: 1}, // duplicate, case-insensitive
		{Name: "Kiwi", Length: 6, Width: 5, Height: 5},
		{Name: "Kiwi", Length: 6, Width: 5, Height: 5}, // duplicate within batch
	})

	if added != 1 || skipped != 2 {
		t.Errorf("expected (1 added, 2 skipped), got (%d, %d)", added, skipped)
	}
	if c.Len() != 2 {
		t.Fatalf("expected 2 fruits, got %d", c.Len())
	}
	if c.Fruits[1].Name != "Kiwi" {
		t.Errorf("expected Kiwi appended, got %q", c.Fruits[1].Name)
	}
}

func TestDefaultCatalogue_NonEmpty(t *testing.T) {
	c := model.DefaultCatalogue()
	if c.Len() == 0 {
		t.Fatal("default catalogue should not be empty")
	}
	for _, f := range c.Fruits {
		if f.Name == "" {
			t.Error("default fruit has empty name")
		}
		if f.Length <= 0 || f.Width <= 0 || f.Height <= 0 {
			t.Errorf("default fruit %q has non-positive dimension", f.Name)
		}
	}
}
