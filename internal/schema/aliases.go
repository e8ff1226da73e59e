package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AliasTable maps a canonical column name to the source-header spellings
// accepted for it. Matching is performed by the importer after trimming,
// NFC normalization, and case folding; the entries here are stored in
// their natural spelling.
type AliasTable map[string][]string

// DefaultAliases returns the built-in alias table covering the English and
// Hebrew header variants seen in real exports. The canonical name itself is
// always an accepted spelling.
func DefaultAliases() AliasTable {
	return AliasTable{
		ColCourseName:      {ColCourseName, "corese_name", "course", "course title", "שם קורס", "שם שיעור"},
		ColTeacherName:     {ColTeacherName, "teacher", "מורה", "שם מורה"},
		ColIntendedFor:     {ColIntendedFor, "target", "מיועד ל"},
		ColCourseInfo:      {ColCourseInfo, "description", "about", "תיאור", "מידע על הקורס"},
		ColRequirments:     {ColRequirments, "requirements", "דרישות"},
		ColCategory:        {ColCategory, "קטגוריה"},
		ColAllowValenteres: {ColAllowValenteres, "allow_volunteers", "מתנדבים"},
		ColValentieresAge:  {ColValentieresAge, "volunteers_age", "גיל מתנדבים"},
		ColMaxValetires:    {ColMaxValetires, "max_volunteers", "מקס מתנדבים", "כמות מתנדבים מקס"},
		ColAdditionalInfo:  {ColAdditionalInfo, "notes", "מידע נוסף"},
	}
}

// LoadAliasOverrides reads a YAML file mapping canonical column names to
// extra accepted spellings and merges it over the given table. Keys that
// are not canonical column names are rejected so typos don't silently
// create dead mappings.
//
// File format:
//
//	teacher_name:
//	  - "lecturer"
//	  - "מרצה"
func LoadAliasOverrides(path string, base AliasTable) (AliasTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read alias overrides: %w", err)
	}

	var overrides map[string][]string
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("parse alias overrides %s: %w", path, err)
	}

	known := make(map[string]bool, len(Columns))
	for _, col := range Columns {
		known[col] = true
	}

	merged := make(AliasTable, len(base))
	for col, aliases := range base {
		merged[col] = append([]string(nil), aliases...)
	}
	for col, extra := range overrides {
		if !known[col] {
			return nil, fmt.Errorf("alias overrides %s: %q is not a canonical column", path, col)
		}
		merged[col] = append(merged[col], extra...)
	}

	return merged, nil
}
