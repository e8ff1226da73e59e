package seed

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"

	"courseboard/internal/schema"
)

func strp(s string) *string { return &s }
func intp(v int64) *int64   { return &v }

// sampleRows covers quoting, Hebrew text, nulls, booleans, and a negative
// count in one pair of rows.
func sampleRows() []schema.CanonicalRow {
	return []schema.CanonicalRow{
		{
			CourseName:      "חוג יצירה",
			TeacherName:     "רות לוי",
			IntendedFor:     "גן",
			CourseInfo:      strp("יצירה בחומרים"),
			Category:        "אומנות",
			AllowValenteres: true,
			ValentieresAge:  strp("16+"),
			MaxValetires:    intp(2),
		},
		{
			CourseName:   "Bob's Lab",
			TeacherName:  "O'Brien",
			IntendedFor:  "",
			Category:     "כללי",
			MaxValetires: intp(-3),
		},
	}
}

func TestRenderBlockGolden(t *testing.T) {
	g := goldie.New(t)
	g.Assert(t, "block_rows", []byte(RenderBlock("docs", sampleRows())))
}

func TestRenderBlockEmptyGolden(t *testing.T) {
	g := goldie.New(t)
	g.Assert(t, "block_empty", []byte(RenderBlock("docs", nil)))
}

func TestRenderBlockDeterministic(t *testing.T) {
	rows := sampleRows()
	assert.Equal(t, RenderBlock("tasks", rows), RenderBlock("tasks", rows))
}

func TestMarkerLine(t *testing.T) {
	assert.Equal(t, "-- ******** highschool ********", MarkerLine("highschool"))
}

func TestMarkerName(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"-- ******** docs ********", "docs"},
		{"-- ******** home_items ********", "home_items"},
		{"-- ******** docs ******** trailing", ""},
		{"--- ******** docs ********", ""},
		{"-- ********  ********", ""},
		{"INSERT INTO docs(...)", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, markerName(tt.line), "line %q", tt.line)
	}
}

func TestQuoteEscaping(t *testing.T) {
	assert.Equal(t, "'it''s'", quote("it's"))
	assert.Equal(t, "''", quote(""))
}
