package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"result-checker/core/results"
)

// Batch validation reasons.
const (
	ReasonInvalidData = "Invalid data"
	ReasonNoResults   = "No results"
)

// ParseJSON reads a batch from r.
func ParseJSON(r io.Reader) ([]results.UploadItem, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read batch: %w", err)
	}
	return DecodeJSON(raw)
}

// DecodeJSON decodes a batch body. Elements that are not objects become
// empty items and fail later as invalid rolls. Numbers are kept as
// json.Number so passthrough values keep their exact digits.
func DecodeJSON(raw []byte) ([]results.UploadItem, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err == nil {
		if elems == nil {
			return nil, results.NewValidationError(ReasonInvalidData)
		}
	} else {
		var envelope struct {
			Results json.RawMessage `json:"results"`
		}
		if err := json.Unmarshal(raw, &envelope); err != nil || len(envelope.Results) == 0 {
			return nil, results.NewValidationError(ReasonInvalidData)
		}
		if err := json.Unmarshal(envelope.Results, &elems); err != nil || elems == nil {
			return nil, results.NewValidationError(ReasonInvalidData)
		}
	}
	return toItems(elems)
}

func toItems(elems []json.RawMessage) ([]results.UploadItem, error) {
	if len(elems) == 0 {
		return nil, results.NewValidationError(ReasonNoResults)
	}

	items := make([]results.UploadItem, len(elems))
	for i, elem := range elems {
		obj, err := decodeObject(elem)
		if err != nil || obj == nil {
			items[i] = results.UploadItem{}
			continue
		}
		items[i] = results.UploadItem(obj)
	}
	return items, nil
}

func decodeObject(elem json.RawMessage) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(elem))
	dec.UseNumber()
	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		return nil, err
	}
	return obj, nil
}
