package importer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"result-checker/core/results"
)

// Format is a batch encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// DetectFormat picks the format from a file or object name.
func DetectFormat(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return FormatJSON, nil
	case ".csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("unsupported batch file %q: expected .json or .csv", name)
	}
}

// Parse reads a batch in the given format.
func Parse(format Format, r io.Reader) ([]results.UploadItem, error) {
	switch format {
	case FormatJSON:
		return ParseJSON(r)
	case FormatCSV:
		return ParseCSV(r)
	default:
		return nil, fmt.Errorf("unsupported batch format %q", format)
	}
}

// ParseFile opens path and parses it according to its extension.
func ParseFile(path string) ([]results.UploadItem, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open batch file: %w", err)
	}
	defer file.Close()

	return Parse(format, file)
}

// ForceMode tags every item with mode, overriding any per-item tag.
func ForceMode(items []results.UploadItem, mode results.UploadMode) {
	for _, item := range items {
		delete(item, results.FieldLegacyUploadMode)
		item[results.FieldUploadMode] = string(mode)
	}
}
