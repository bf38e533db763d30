package testing

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/bgrewell/attr-kit/pkg/validation"
)

// GoldenEntry is a single decode case from a golden JSON table.
type GoldenEntry struct {
	Name       string   `json:"name"`
	Raw        uint32   `json:"raw"`
	Kind       string   `json:"kind"`
	Rendered   string   `json:"rendered"`
	Attributes []string `json:"attributes"`
	Encoded    uint32   `json:"encoded"`
}

// LoadGolden reads the JSON from a file and unmarshals it into a slice.
func LoadGolden(filePath string) ([]GoldenEntry, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var entries []GoldenEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	for _, e := range entries {
		if !validation.ValidAttributeColumn(e.Rendered) {
			return nil, fmt.Errorf("golden entry %q: malformed rendering %q", e.Name, e.Rendered)
		}
	}
	return entries, nil
}

// CountKinds returns the number of directory and file entries in the table.
func CountKinds(entries []GoldenEntry) (int, int) {
	var dirCount, fileCount int
	for _, e := range entries {
		if e.Kind == "directory" {
			dirCount++
		} else {
			fileCount++
		}
	}
	return dirCount, fileCount
}
