package portfolio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Column headers of a portfolio CSV file.
const (
	ColumnTechstack = "Techstack"
	ColumnLinks     = "Links"
)

// ReadCSV parses a portfolio file with a Techstack and a Links column. Column order
// is taken from the header; extra columns are ignored.
func ReadCSV(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("portfolio csv is empty")
		}
		return nil, fmt.Errorf("failed to read portfolio header: %w", err)
	}

	stackCol, linkCol := -1, -1
	for i, h := range header {
		switch strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")) {
		case ColumnTechstack:
			stackCol = i
		case ColumnLinks:
			linkCol = i
		}
	}
	if stackCol < 0 || linkCol < 0 {
		return nil, fmt.Errorf("portfolio csv must have %q and %q columns", ColumnTechstack, ColumnLinks)
	}

	var entries []Entry
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read portfolio line %d: %w", line, err)
		}
		if stackCol >= len(rec) || linkCol >= len(rec) {
			continue
		}
		e := Entry{Techstack: strings.TrimSpace(rec[stackCol]), Link: strings.TrimSpace(rec[linkCol])}
		if e.Techstack == "" || e.Link == "" {
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// LoadCSV reads a portfolio file from disk into a MemoryStore.
func LoadCSV(path string) (*MemoryStore, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open portfolio %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	entries, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return NewMemoryStore(entries), nil
}
