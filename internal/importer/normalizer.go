package importer

import (
	"strconv"
	"strings"

	"courseboard/internal/schema"
)

// Normalizer converts raw records into canonical rows against a resolved
// column map and the store's current category set. It accumulates the
// unmapped-category tally across rows for the run summary.
type Normalizer struct {
	cols       *ColumnMap
	categories map[string]bool

	// Unmapped counts rows remapped to the default category, keyed by the
	// original (possibly blank) source value.
	Unmapped map[string]int
}

// NewNormalizer builds a Normalizer. categories is the store's current
// category set; when it is empty (store missing or unseeded) non-blank
// categories are accepted verbatim, since there is nothing to check
// against.
func NewNormalizer(cols *ColumnMap, categories []string) *Normalizer {
	set := make(map[string]bool, len(categories))
	for _, c := range categories {
		set[c] = true
	}
	return &Normalizer{
		cols:       cols,
		categories: set,
		Unmapped:   make(map[string]int),
	}
}

// Row normalizes one record. line is the 1-based source line for error
// reporting. Bad optional data never fails a row; only an empty
// course_name or teacher_name does, via *RequiredFieldEmptyError.
func (n *Normalizer) Row(line int, record []string) (schema.CanonicalRow, error) {
	get := func(col string) string {
		return strings.TrimSpace(n.cols.value(record, col))
	}

	courseName := get(schema.ColCourseName)
	if courseName == "" {
		return schema.CanonicalRow{}, &RequiredFieldEmptyError{Line: line, Column: schema.ColCourseName}
	}
	teacherName := get(schema.ColTeacherName)
	if teacherName == "" {
		return schema.CanonicalRow{}, &RequiredFieldEmptyError{Line: line, Column: schema.ColTeacherName}
	}

	return schema.CanonicalRow{
		CourseName:      courseName,
		TeacherName:     teacherName,
		IntendedFor:     get(schema.ColIntendedFor), // empty string kept, column is NOT NULL
		CourseInfo:      optional(get(schema.ColCourseInfo)),
		Requirments:     optional(get(schema.ColRequirments)),
		Category:        n.category(get(schema.ColCategory)),
		AllowValenteres: truthy(get(schema.ColAllowValenteres)),
		ValentieresAge:  optional(get(schema.ColValentieresAge)),
		MaxValetires:    optionalInt(get(schema.ColMaxValetires)),
		AdditionalInfo:  optional(get(schema.ColAdditionalInfo)),
	}, nil
}

// category validates a trimmed source category against the known set.
// Blank or unknown values fall back to the default category and are
// tallied under their original value for the summary.
func (n *Normalizer) category(raw string) string {
	if raw == "" {
		n.Unmapped[raw]++
		return schema.DefaultCategory
	}
	if len(n.categories) > 0 && !n.categories[raw] {
		n.Unmapped[raw]++
		return schema.DefaultCategory
	}
	return raw
}

// truthy reports whether a trimmed cell is one of the accepted truthy
// tokens. Matching is exact-token after case folding, never substring.
func truthy(raw string) bool {
	s := strings.ToLower(raw)
	for _, tok := range schema.TruthyTokens {
		if s == tok {
			return true
		}
	}
	return false
}

// optional maps an empty trimmed cell to nil.
func optional(raw string) *string {
	if raw == "" {
		return nil
	}
	return &raw
}

// optionalInt parses a trimmed cell as an integer; empty or non-numeric
// cells become nil. Negative values pass through unvalidated.
func optionalInt(raw string) *int64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}
