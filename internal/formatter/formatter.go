// package formatter provides functions to export catalog data to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/moviemaster/mvx/internal/models"
	"github.com/moviemaster/mvx/internal/shared"
)

// MoviesToCSV converts a movie listing to CSV format with columns: ID, Title, Genre, ReleaseDate, Rating, Owner
func MoviesToCSV(movies []models.Movie) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Title", "Genre", "ReleaseDate", "Rating", "Owner"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, movie := range movies {
		record := []string{
			movie.ID,
			movie.Title,
			movie.Genre,
			movie.ReleaseDate,
			strconv.Itoa(movie.Rating),
			movie.OwnerID,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// MoviesToMarkdown converts a movie listing to a Markdown document.
func MoviesToMarkdown(title string, movies []models.Movie) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", title))
	buf.WriteString(fmt.Sprintf("**Movies**: %d\n\n", len(movies)))

	for i, movie := range movies {
		genrePart := ""
		if movie.Genre != "" {
			genrePart = fmt.Sprintf(" (%s)", movie.Genre)
		}
		buf.WriteString(fmt.Sprintf("%d. %s%s — %d/10, %s\n", i+1, movie.Title, genrePart, movie.Rating, movie.ReleaseDate))
	}

	return buf.Bytes(), nil
}

// MoviesToText converts a movie listing to plain text format.
func MoviesToText(title string, movies []models.Movie) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("%s\n", title))
	buf.WriteString(fmt.Sprintf("Movies: %d\n\n", len(movies)))

	for i, movie := range movies {
		buf.WriteString(fmt.Sprintf("%d. %s [%d/10]\n", i+1, movie.Title, movie.Rating))
	}

	return buf.Bytes(), nil
}

// WatchlistToText converts watchlist entries to plain text, in display order.
func WatchlistToText(entries []models.WatchlistEntry) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Watchlist: %d movies in queue\n\n", len(entries)))

	for i, entry := range entries {
		genrePart := ""
		if entry.MovieGenre != "" {
			genrePart = fmt.Sprintf(" (%s)", entry.MovieGenre)
		}
		buf.WriteString(fmt.Sprintf("%d. %s%s\n", i+1, entry.MovieTitle, genrePart))
	}

	return buf.Bytes(), nil
}

// ToMetadataJSON generates a JSON representation of a single movie.
func ToMetadataJSON(movie models.Movie) ([]byte, error) {
	return shared.MarshalJSON(movie, true)
}

// WriteCSVExport exports a movie listing to a CSV file.
//
// Defaults to movies.csv when no path is given.
func WriteCSVExport(movies []models.Movie, filepath string) (string, error) {
	if filepath == "" {
		filepath = "movies.csv"
	}

	csvData, err := MoviesToCSV(movies)
	if err != nil {
		return "", fmt.Errorf("failed to generate CSV: %w", err)
	}

	if err := os.WriteFile(filepath, csvData, 0644); err != nil {
		return "", fmt.Errorf("failed to write CSV file: %w", err)
	}

	return filepath, nil
}

// WriteTextExport exports a movie listing to a plain text file.
//
// Defaults to movies.txt when no path is given.
func WriteTextExport(title string, movies []models.Movie, filepath string) (string, error) {
	if filepath == "" {
		filepath = "movies.txt"
	}

	textData, err := MoviesToText(title, movies)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if err := os.WriteFile(filepath, textData, 0644); err != nil {
		return "", fmt.Errorf("failed to write text file: %w", err)
	}

	return filepath, nil
}
