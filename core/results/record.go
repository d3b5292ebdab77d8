package results

import (
	"math"
	"regexp"

	"result-checker/core/utils"
)

// Known record fields.
const (
	FieldRoll     = "roll"
	FieldCGPA     = "c"
	FieldSubjects = "s"
)

// Sentinel field values.
const (
	// CGPANotApplicable marks a record whose CGPA is not applicable.
	CGPANotApplicable = "n"
	// GradeReferred marks a referred (failed) grade point.
	GradeReferred = "r"
)

// GradeFields lists the per-semester grade point fields in order.
var GradeFields = [...]string{"g1", "g2", "g3", "g4", "g5", "g6", "g7", "g8"}

var rollPattern = regexp.MustCompile(`^[0-9]{6}$`)

// ValidRoll reports whether roll is exactly six ASCII digits.
func ValidRoll(roll string) bool {
	return rollPattern.MatchString(roll)
}

// Record is one student's result document.
type Record map[string]any

// Roll returns the roll field when it is a string.
func (r Record) Roll() (string, bool) {
	roll, ok := r[FieldRoll].(string)
	return roll, ok
}

// Has reports whether field is present, even if its value is null.
func (r Record) Has(field string) bool {
	_, ok := r[field]
	return ok
}

// CGPA returns the CGPA when it is present, not "n", and a positive finite number.
func (r Record) CGPA() (float64, bool) {
	raw, ok := r[FieldCGPA]
	if !ok || raw == nil {
		return 0, false
	}
	if s, isStr := raw.(string); isStr && (s == "" || s == CGPANotApplicable) {
		return 0, false
	}
	c, ok := utils.ToFloat(raw)
	if !ok || math.IsNaN(c) || math.IsInf(c, 0) || c <= 0 {
		return 0, false
	}
	return c, true
}

// Subjects returns the referred subject codes in stored order.
// Null and empty entries are dropped; non-string codes are stringified.
func (r Record) Subjects() []string {
	list, ok := utils.ToSlice(r[FieldSubjects])
	if !ok {
		return nil
	}
	codes := make([]string, 0, len(list))
	for _, v := range list {
		if v == nil {
			continue
		}
		code := utils.ToString(v)
		if code == "" {
			continue
		}
		codes = append(codes, code)
	}
	return codes
}

// IsReferred reports whether the record counts as failed: a non-empty
// subject list or any grade field equal to "r".
func (r Record) IsReferred() bool {
	switch s := r[FieldSubjects].(type) {
	case string:
		if s != "" {
			return true
		}
	default:
		if list, ok := utils.ToSlice(s); ok && len(list) > 0 {
			return true
		}
	}
	for _, g := range GradeFields {
		if v, ok := r[g].(string); ok && v == GradeReferred {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the record.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return map[string]any(Record(t).Clone())
	case Record:
		return t.Clone()
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	case []string:
		return append([]string(nil), t...)
	default:
		return v
	}
}
