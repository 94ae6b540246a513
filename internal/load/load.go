// Package load reads the two tabular inputs: the class roster and the
// rating message table. Both are plain two-column CSV files authored by the
// teacher, so every rejection carries the source name and row number.
package load

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abhisek/classpick/internal/rating"
	"github.com/abhisek/classpick/internal/roster"
)

// LoadError reports a problem in an external data file with enough context
// for the operator to fix it. Row is 1-based; 0 means the whole file.
type LoadError struct {
	Source string
	Row    int
	Err    error
}

func (e *LoadError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("%s: row %d: %v", e.Source, e.Row, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Roster reads class,student records. A header row is detected and skipped.
// Short, blank, or duplicate rows are ignored; an empty input yields zero
// classes, not an error. Class order and per-class student order follow the
// file.
func Roster(r io.Reader, source string) ([]roster.Class, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	var order []string
	students := make(map[string][]string)
	seen := make(map[string]map[string]bool)

	row := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &LoadError{Source: source, Row: row + 1, Err: err}
		}
		row++

		if len(record) < 2 {
			continue
		}
		if row == 1 && isRosterHeader(record) {
			continue
		}

		class := strings.TrimSpace(record[0])
		student := strings.TrimSpace(record[1])
		if class == "" || student == "" {
			continue
		}

		if seen[class] == nil {
			seen[class] = make(map[string]bool)
			order = append(order, class)
		}
		if seen[class][student] {
			continue
		}
		seen[class][student] = true
		students[class] = append(students[class], student)
	}

	classes := make([]roster.Class, 0, len(order))
	for _, name := range order {
		classes = append(classes, roster.Class{Name: name, Students: students[name]})
	}
	return classes, nil
}

// RosterFile loads the roster from a file path.
func RosterFile(path string) ([]roster.Class, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	defer f.Close()
	return Roster(f, path)
}

// isRosterHeader detects a "class,student" style header row.
func isRosterHeader(record []string) bool {
	joined := strings.ToLower(strings.Join(record, ","))
	return strings.Contains(joined, "class") &&
		(strings.Contains(joined, "student") || strings.Contains(joined, "name"))
}

// Messages reads rating,message records into a complete catalog. The header
// row is required. A label outside {A*, A, B, C}, a duplicate rating, or a
// missing rating all fail loudly: a partial catalog must never reach a
// session.
func Messages(r io.Reader, source string) (*rating.Catalog, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	messages := make(map[rating.Rating]string)

	row := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &LoadError{Source: source, Row: row + 1, Err: err}
		}
		row++

		if row == 1 {
			if !isMessagesHeader(record) {
				return nil, &LoadError{Source: source, Row: 1,
					Err: fmt.Errorf("expected header row with Rating and Message columns")}
			}
			continue
		}
		if len(record) < 2 {
			continue
		}

		label := strings.TrimSpace(record[0])
		msg := strings.TrimSpace(record[1])
		if label == "" && msg == "" {
			continue
		}

		rt, err := rating.Parse(label)
		if err != nil {
			return nil, &LoadError{Source: source, Row: row, Err: err}
		}
		if _, dup := messages[rt]; dup {
			return nil, &LoadError{Source: source, Row: row,
				Err: fmt.Errorf("duplicate message for rating %s", rt)}
		}
		messages[rt] = msg
	}

	catalog, err := rating.NewCatalog(messages)
	if err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}
	return catalog, nil
}

// MessagesFile loads the rating catalog from a file path.
func MessagesFile(path string) (*rating.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	defer f.Close()
	return Messages(f, path)
}

// isMessagesHeader detects the required "Rating,Message" header row.
func isMessagesHeader(record []string) bool {
	if len(record) < 2 {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(record[0]), "rating") &&
		strings.EqualFold(strings.TrimSpace(record[1]), "message")
}
