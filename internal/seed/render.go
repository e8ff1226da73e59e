package seed

import (
	"strconv"
	"strings"

	"courseboard/internal/schema"
)

// Marker line delimiters. A marker is the table name between two fixed
// asterisk runs, e.g. "-- ******** docs ********".
const (
	markerPrefix = "-- ******** "
	markerSuffix = " ********"
)

// MarkerLine returns the marker comment line for a table, without a
// trailing newline.
func MarkerLine(table string) string {
	return markerPrefix + table + markerSuffix
}

// markerName extracts the table name from a marker line, or "" if the line
// is not a marker.
func markerName(line string) string {
	if strings.HasPrefix(line, markerPrefix) && strings.HasSuffix(line, markerSuffix) {
		name := line[len(markerPrefix) : len(line)-len(markerSuffix)]
		if name != "" && !strings.ContainsAny(name, " *") {
			return name
		}
	}
	return ""
}

// RenderBlock produces the full replacement block for a table: the marker
// line followed by one INSERT statement covering all rows, with the column
// list explicit in canonical order. An empty row set renders the marker
// line alone, since an empty tab is valid. The block always ends with a
// blank separator line so output is byte-stable across runs.
func RenderBlock(table string, rows []schema.CanonicalRow) string {
	var b strings.Builder
	b.WriteString(MarkerLine(table))
	b.WriteString("\n")

	if len(rows) > 0 {
		b.WriteString("INSERT INTO ")
		b.WriteString(table)
		b.WriteString("(")
		b.WriteString(strings.Join(schema.Columns, ","))
		b.WriteString(") VALUES\n")
		for i, row := range rows {
			b.WriteString("(")
			b.WriteString(strings.Join(renderValues(row), ", "))
			if i < len(rows)-1 {
				b.WriteString("),\n")
			} else {
				b.WriteString(");\n")
			}
		}
	}

	b.WriteString("\n")
	return b.String()
}

// renderValues renders one row's values in canonical column order.
func renderValues(row schema.CanonicalRow) []string {
	return []string{
		quote(row.CourseName),
		quote(row.TeacherName),
		quote(row.IntendedFor), // may render as '', never NULL
		quoteOrNull(row.CourseInfo),
		quoteOrNull(row.Requirments),
		quote(row.Category),
		bool01(row.AllowValenteres),
		quoteOrNull(row.ValentieresAge),
		intOrNull(row.MaxValetires),
		quoteOrNull(row.AdditionalInfo),
	}
}

// quote renders a string as a single-quoted SQL literal, doubling embedded
// quotes.
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func quoteOrNull(s *string) string {
	if s == nil {
		return "NULL"
	}
	return quote(*s)
}

func bool01(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

func intOrNull(v *int64) string {
	if v == nil {
		return "NULL"
	}
	return strconv.FormatInt(*v, 10)
}
