package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"result-checker/core/results"

	"github.com/jszwec/csvutil"
)

type csvRow struct {
	Roll *string `csv:"roll"`
	CGPA *string `csv:"c"`
	G1   *string `csv:"g1"`
	G2   *string `csv:"g2"`
	G3   *string `csv:"g3"`
	G4   *string `csv:"g4"`
	G5   *string `csv:"g5"`
	G6   *string `csv:"g6"`
	G7   *string `csv:"g7"`
	G8   *string `csv:"g8"`
	S    *string `csv:"s"`
	Mode *string `csv:"uploadMode"`
}

func (r csvRow) item() results.UploadItem {
	item := results.UploadItem{}
	set := func(key string, v *string) {
		if v != nil && *v != "" {
			item[key] = *v
		}
	}

	set(results.FieldRoll, r.Roll)
	set(results.FieldCGPA, r.CGPA)
	for i, g := range []*string{r.G1, r.G2, r.G3, r.G4, r.G5, r.G6, r.G7, r.G8} {
		set(results.GradeFields[i], g)
	}
	set(results.FieldUploadMode, r.Mode)
	if r.S != nil && *r.S != "" {
		item[results.FieldSubjects] = SplitSubjects(*r.S)
	}
	return item
}

// SplitSubjects splits a subject cell on semicolons, commas or spaces.
func SplitSubjects(cell string) []any {
	codes := strings.FieldsFunc(cell, func(r rune) bool {
		return r == ';' || r == ',' || r == ' ' || r == '\t'
	})
	out := make([]any, len(codes))
	for i, c := range codes {
		out[i] = c
	}
	return out
}

// ParseCSV reads a batch from a CSV document with a header row.
func ParseCSV(r io.Reader) ([]results.UploadItem, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	decoder, err := csvutil.NewDecoder(reader)
	if errors.Is(err, io.EOF) {
		return nil, results.NewValidationError(ReasonNoResults)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create CSV decoder: %w", err)
	}
	header := decoder.Header()

	var items []results.UploadItem
	for {
		var row csvRow
		err := decoder.Decode(&row)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, results.NewValidationError(fmt.Sprintf("%s: %v", ReasonInvalidData, err))
		}

		item := row.item()
		record := decoder.Record()
		for _, i := range decoder.Unused() {
			if record[i] != "" {
				item[header[i]] = record[i]
			}
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil, results.NewValidationError(ReasonNoResults)
	}
	return items, nil
}
