package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/janvogt/fcat/internal/exporter"
	"github.com/janvogt/fcat/internal/importer"
	"github.com/janvogt/fcat/internal/model"
	"github.com/janvogt/fcat/internal/picker"
	"github.com/janvogt/fcat/internal/search"
	"github.com/janvogt/fcat/internal/storage"
	"github.com/janvogt/fcat/internal/tui"
)

func main() {
	if len(os.Args) >= 2 {
		switch os.Args[1] {
		case "help", "--help", "-h":
			printHelp()
			return
		case "import":
			if len(os.Args) < 3 {
				fmt.Fprintf(os.Stderr, "Usage: fcat import <file.html>\n")
				os.Exit(1)
			}
			runImport(os.Args[2])
			return
		case "export":
			// Export with optional path
			var outputPath string
			if len(os.Args) >= 3 {
				outputPath = os.Args[2]
			}
			runExport(outputPath)
			return
		default:
			// Treat as search query (join all remaining args)
			query := strings.Join(os.Args[1:], " ")
			runQuickSearch(query)
			return
		}
	}

	// No args - run full TUI
	runTUI()
}

func printHelp() {
	help := `fcat - vim-style fruit catalogue

Usage:
  fcat                  Open interactive TUI
  fcat <query>          Quick search -> show fruit details
  fcat import <file>    Import fruits from HTML
  fcat export [path]    Export catalogue to HTML
  fcat help             Show this help

TUI Keybindings:
  Navigation:
    j/k         Move down/up
    g/G         Jump to top/bottom

  Actions:
    /           Filter by name
    Y           Copy fruit details to clipboard
    ctrl+s      Save catalogue

  Editing:
    a           Add fruit
    e           Edit selected fruit
    d           Delete selected fruit

  Other:
    q           Quit

Data Storage:
  ~/.config/fcat/config.json points at the catalogue file
  (JSON by default, .db/.sqlite for SQLite)
`
	fmt.Print(help)
}

// openStorage resolves the configured catalogue path and returns its
// storage backend.
func openStorage() storage.Storage {
	configPath, err := storage.DefaultConfigFilePath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting config path: %v\n", err)
		os.Exit(1)
	}

	config, err := storage.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	cataloguePath := config.CatalogueFile
	if !filepath.IsAbs(cataloguePath) {
		cataloguePath = filepath.Join(filepath.Dir(configPath), cataloguePath)
	}

	store, err := storage.Open(cataloguePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening catalogue: %v\n", err)
		os.Exit(1)
	}
	return store
}

// loadCatalogue loads the catalogue for the non-interactive commands,
// exiting on anything but a missing file. Corrupt data is never
// silently replaced.
func loadCatalogue(store storage.Storage) (*model.Catalogue, bool) {
	catalogue, err := store.Load()
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, false
		}
		fmt.Fprintf(os.Stderr, "Error loading catalogue: %v\n", err)
		os.Exit(1)
	}
	return catalogue, true
}

// runTUI runs the full interactive TUI. Any load failure, missing or
// unreadable alike, drops into the catalogue-creation dialog instead of
// aborting; an unreadable catalogue is surfaced there.
func runTUI() {
	store := openStorage()

	params := tui.AppParams{Store: store}
	catalogue, err := store.Load()
	switch {
	case err == nil:
		params.Catalogue = catalogue
	case errors.Is(err, storage.ErrNotFound):
		params.StartNegotiation = true
	default:
		params.StartNegotiation = true
		params.LoadWarning = fmt.Sprintf("Could not load existing catalogue: %v", err)
	}

	app := tui.NewApp(params)

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		os.Exit(1)
	}
}

// runQuickSearch performs a fuzzy search and prints the selected fruit.
func runQuickSearch(query string) {
	store := openStorage()

	catalogue, found := loadCatalogue(store)
	if !found {
		fmt.Println("No catalogue yet. Run fcat to create one.")
		os.Exit(0)
	}

	results := search.FuzzySearchFruits(catalogue, query)

	if len(results) == 0 {
		fmt.Printf("No fruits found for '%s'\n", query)
		os.Exit(0)
	}

	var selected *model.Fruit

	if len(results) == 1 {
		// Single result - select it directly
		selected = results[0].Fruit
	} else {
		// Multiple results - show picker
		p := picker.New(results, query)
		program := tea.NewProgram(p)
		finalModel, err := program.Run()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running picker: %v\n", err)
			os.Exit(1)
		}

		finalPicker := finalModel.(picker.Picker)
		if finalPicker.Cancelled() {
			os.Exit(0)
		}
		selected = finalPicker.SelectedFruit()
	}

	if selected == nil {
		os.Exit(0)
	}

	fmt.Printf("%s: %g × %g × %g (volume %.2f)\n",
		selected.Name, selected.Length, selected.Width, selected.Height, selected.Volume())
}

// runImport handles the import subcommand.
func runImport(filePath string) {
	store := openStorage()

	catalogue, found := loadCatalogue(store)
	if !found {
		catalogue = model.NewCatalogue()
	}

	file, err := os.Open(filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	fruits, err := importer.ParseHTMLCatalogue(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing HTML: %v\n", err)
		os.Exit(1)
	}

	added, skipped := catalogue.Merge(fruits)

	if err := store.Save(catalogue); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving catalogue: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Imported %d fruits", added)
	if skipped > 0 {
		fmt.Printf(" (%d duplicates skipped)", skipped)
	}
	fmt.Println()
}

// runExport handles the export subcommand.
func runExport(outputPath string) {
	if outputPath == "" {
		var err error
		outputPath, err = exporter.DefaultExportPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting default export path: %v\n", err)
			os.Exit(1)
		}
	}

	store := openStorage()

	catalogue, found := loadCatalogue(store)
	if !found {
		fmt.Println("No catalogue yet. Run fcat to create one.")
		os.Exit(0)
	}

	html := exporter.ExportHTML(catalogue)

	if err := os.WriteFile(outputPath, []byte(html), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Exported %d fruits to %s\n", catalogue.Len(), outputPath)
}
