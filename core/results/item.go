package results

import "result-checker/core/utils"

// Upload mode tag fields. Both are transient and never persisted.
const (
	FieldUploadMode       = "uploadMode"
	FieldLegacyUploadMode = "_uploadMode"
)

// UploadMode selects how an incoming record is applied to the store.
type UploadMode string

const (
	// ModeMerge overwrites only the known fields present in the incoming record.
	ModeMerge UploadMode = "merge"
	// ModeReplace discards the stored record and writes the incoming one verbatim.
	ModeReplace UploadMode = "replace"
)

// UploadItem is one incoming record plus its transient upload mode tag.
type UploadItem map[string]any

// RawRoll returns the roll value exactly as submitted.
func (u UploadItem) RawRoll() any {
	return u[FieldRoll]
}

// Mode returns the requested upload mode. Anything other than "replace" merges.
func (u UploadItem) Mode() UploadMode {
	for _, key := range []string{FieldUploadMode, FieldLegacyUploadMode} {
		if v, ok := u[key]; ok && v != nil {
			if UploadMode(utils.ToString(v)) == ModeReplace {
				return ModeReplace
			}
			return ModeMerge
		}
	}
	return ModeMerge
}

// Clean returns a copy of the item with the mode tags stripped.
func (u UploadItem) Clean() Record {
	clean := Record(u).Clone()
	delete(clean, FieldUploadMode)
	delete(clean, FieldLegacyUploadMode)
	return clean
}
