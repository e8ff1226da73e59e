package importer

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"courseboard/internal/schema"
)

// ColumnMap is the result of header resolution: canonical column name →
// index of the source column carrying it, plus the headers nothing matched.
type ColumnMap struct {
	Index        map[string]int
	Unrecognized []string // raw header text, in source order
}

// requiredColumns are the columns that must resolve for the import to
// proceed at all.
var requiredColumns = []string{schema.ColCourseName, schema.ColTeacherName}

// normalizeHeader prepares a header cell or alias for comparison: trim,
// NFC-normalize (so composed and decomposed Hebrew collide), case-fold.
// Hebrew has no case, so folding only affects Latin-script headers.
func normalizeHeader(s string) string {
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(s)))
}

// ResolveHeaders maps the source file's header row to canonical column
// names. For each raw header the first canonical column whose alias set
// contains the normalized header wins; headers matching nothing are
// recorded as unrecognized, not rejected. When two source columns resolve
// to the same canonical column, the earlier one wins.
//
// Returns *SchemaMismatchError if any required column has no source column.
func ResolveHeaders(headers []string, aliases schema.AliasTable) (*ColumnMap, error) {
	// Pre-normalize the alias table once per run.
	normalized := make(map[string]map[string]bool, len(aliases))
	for col, list := range aliases {
		set := make(map[string]bool, len(list))
		for _, a := range list {
			set[normalizeHeader(a)] = true
		}
		normalized[col] = set
	}

	cm := &ColumnMap{Index: make(map[string]int)}
	for i, raw := range headers {
		h := normalizeHeader(raw)
		if h == "" {
			continue
		}
		matched := false
		for _, col := range schema.Columns {
			if normalized[col][h] {
				if _, taken := cm.Index[col]; !taken {
					cm.Index[col] = i
				}
				matched = true
				break
			}
		}
		if !matched {
			cm.Unrecognized = append(cm.Unrecognized, strings.TrimSpace(raw))
		}
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := cm.Index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaMismatchError{Missing: missing}
	}

	return cm, nil
}

// value returns the cell for a canonical column in the given record, or ""
// when the column is unmapped or the record is short.
func (cm *ColumnMap) value(record []string, col string) string {
	i, ok := cm.Index[col]
	if !ok || i >= len(record) {
		return ""
	}
	return record[i]
}
