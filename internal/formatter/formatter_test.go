package formatter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/moviemaster/mvx/internal/models"
)

func sampleMovies() []models.Movie {
	return []models.Movie{
		{
			ID:          "m1",
			Title:       "Alien",
			Genre:       "sci-fi",
			ReleaseDate: "1979-05-25",
			Rating:      9,
			OwnerID:     "u1",
		},
		{
			ID:          "m2",
			Title:       "Heat",
			Genre:       "crime",
			ReleaseDate: "1995-12-15",
			Rating:      8,
			OwnerID:     "u2",
		},
	}
}

func TestExporters(t *testing.T) {
	t.Run("MoviesToCSV", func(t *testing.T) {
		data, err := MoviesToCSV(sampleMovies())
		if err != nil {
			t.Fatalf("MoviesToCSV failed: %v", err)
		}

		output := string(data)

		if !strings.Contains(output, "ID,Title,Genre,ReleaseDate,Rating,Owner") {
			t.Errorf("CSV missing headers, got: %s", output)
		}
		if !strings.Contains(output, "m1") {
			t.Error("CSV missing first movie ID")
		}
		if !strings.Contains(output, "Alien") {
			t.Error("CSV missing first movie title")
		}
		if !strings.Contains(output, "1995-12-15") {
			t.Error("CSV missing second movie release date")
		}

		lines := strings.Split(strings.TrimSpace(output), "\n")
		if len(lines) != 3 {
			t.Errorf("expected header plus 2 records, got %d lines", len(lines))
		}
	})

	t.Run("MoviesToCSV With Empty Listing", func(t *testing.T) {
		data, err := MoviesToCSV(nil)
		if err != nil {
			t.Fatalf("MoviesToCSV failed: %v", err)
		}

		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		if len(lines) != 1 {
			t.Errorf("expected only the header row, got %d lines", len(lines))
		}
	})

	t.Run("MoviesToMarkdown", func(t *testing.T) {
		data, err := MoviesToMarkdown("My Collection", sampleMovies())
		if err != nil {
			t.Fatalf("MoviesToMarkdown failed: %v", err)
		}

		output := string(data)

		if !strings.Contains(output, "# My Collection") {
			t.Error("Markdown missing title heading")
		}
		if !strings.Contains(output, "**Movies**: 2") {
			t.Error("Markdown missing movie count")
		}
		if !strings.Contains(output, "1. Alien (sci-fi)") {
			t.Errorf("Markdown missing numbered entry, got: %s", output)
		}
	})

	t.Run("MoviesToText", func(t *testing.T) {
		data, err := MoviesToText("Catalog", sampleMovies())
		if err != nil {
			t.Fatalf("MoviesToText failed: %v", err)
		}

		output := string(data)

		if !strings.Contains(output, "Catalog") {
			t.Error("text missing title")
		}
		if !strings.Contains(output, "1. Alien [9/10]") {
			t.Errorf("text missing rated entry, got: %s", output)
		}
	})

	t.Run("WatchlistToText", func(t *testing.T) {
		entries := []models.WatchlistEntry{
			{ID: "e1", MovieTitle: "Alien", MovieGenre: "sci-fi"},
			{ID: "e2", MovieTitle: "Heat"},
		}

		data, err := WatchlistToText(entries)
		if err != nil {
			t.Fatalf("WatchlistToText failed: %v", err)
		}

		output := string(data)

		if !strings.Contains(output, "2 movies in queue") {
			t.Error("text missing queue count")
		}
		if !strings.Contains(output, "1. Alien (sci-fi)") {
			t.Errorf("text missing genre suffix, got: %s", output)
		}
		if !strings.Contains(output, "2. Heat\n") {
			t.Errorf("entry without genre should have no suffix, got: %s", output)
		}
	})

	t.Run("ToMetadataJSON", func(t *testing.T) {
		data, err := ToMetadataJSON(sampleMovies()[0])
		if err != nil {
			t.Fatalf("ToMetadataJSON failed: %v", err)
		}

		if !strings.Contains(string(data), `"title": "Alien"`) {
			t.Errorf("JSON missing title field, got: %s", data)
		}
	})
}

func TestFileExports(t *testing.T) {
	t.Run("WriteCSVExport", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "movies.csv")

		written, err := WriteCSVExport(sampleMovies(), path)
		if err != nil {
			t.Fatalf("WriteCSVExport failed: %v", err)
		}
		if written != path {
			t.Errorf("expected path %s, got %s", path, written)
		}

		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read export: %v", err)
		}
		if !strings.Contains(string(content), "Alien") {
			t.Error("exported CSV missing movie data")
		}
	})

	t.Run("WriteTextExport", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "movies.txt")

		if _, err := WriteTextExport("Catalog", sampleMovies(), path); err != nil {
			t.Fatalf("WriteTextExport failed: %v", err)
		}

		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read export: %v", err)
		}
		if !strings.Contains(string(content), "Heat") {
			t.Error("exported text missing movie data")
		}
	})
}
