package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courseboard/internal/schema"
)

func TestResolveHeadersEveryAliasResolves(t *testing.T) {
	// Every configured alias must land on its own canonical column:
	// alias → canonical is many-to-one and total over the configured set.
	aliases := schema.DefaultAliases()
	for col, spellings := range aliases {
		for _, spelling := range spellings {
			headers := []string{"course_name", "teacher_name", spelling}
			cm, err := ResolveHeaders(headers, aliases)
			require.NoError(t, err, "alias %q", spelling)
			got, ok := cm.Index[col]
			require.True(t, ok, "alias %q did not resolve to %s", spelling, col)
			if col != schema.ColCourseName && col != schema.ColTeacherName {
				assert.Equal(t, 2, got)
			}
		}
	}
}

func TestResolveHeadersHebrew(t *testing.T) {
	cm, err := ResolveHeaders([]string{"שם קורס", "מורה", "קטגוריה"}, schema.DefaultAliases())
	require.NoError(t, err)
	assert.Equal(t, 0, cm.Index[schema.ColCourseName])
	assert.Equal(t, 1, cm.Index[schema.ColTeacherName])
	assert.Equal(t, 2, cm.Index[schema.ColCategory])
}

func TestResolveHeadersCaseAndWhitespace(t *testing.T) {
	cm, err := ResolveHeaders([]string{" Course Title ", "TEACHER"}, schema.DefaultAliases())
	require.NoError(t, err)
	assert.Equal(t, 0, cm.Index[schema.ColCourseName])
	assert.Equal(t, 1, cm.Index[schema.ColTeacherName])
}

func TestResolveHeadersUnrecognizedIgnored(t *testing.T) {
	cm, err := ResolveHeaders([]string{"course", "teacher", "mystery", "עמודה"}, schema.DefaultAliases())
	require.NoError(t, err)
	assert.Equal(t, []string{"mystery", "עמודה"}, cm.Unrecognized)
}

func TestResolveHeadersDuplicateEarlierWins(t *testing.T) {
	cm, err := ResolveHeaders([]string{"teacher", "מורה", "course"}, schema.DefaultAliases())
	require.NoError(t, err)
	assert.Equal(t, 0, cm.Index[schema.ColTeacherName])
}

func TestResolveHeadersMissingRequired(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
		missing string
	}{
		{"no teacher column", []string{"course", "category"}, schema.ColTeacherName},
		{"no course column", []string{"teacher", "category"}, schema.ColCourseName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveHeaders(tt.headers, schema.DefaultAliases())
			var mismatch *SchemaMismatchError
			require.ErrorAs(t, err, &mismatch)
			assert.Contains(t, mismatch.Missing, tt.missing)
		})
	}
}

func TestNormalizeHeaderNFC(t *testing.T) {
	// Composed and decomposed forms of the same text must collide after
	// normalization, or visually identical headers would fail to resolve.
	composed := "caf\u00e9"
	decomposed := "cafe\u0301"
	assert.Equal(t, normalizeHeader(composed), normalizeHeader(decomposed))
}
