package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultAliasesCoverAllColumns(t *testing.T) {
	aliases := DefaultAliases()
	for _, col := range Columns {
		require.Contains(t, aliases, col)
		assert.Contains(t, aliases[col], col, "canonical name must be an accepted spelling of itself")
	}
}

func TestLoadAliasOverridesMerges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aliases.yaml")
	content := "teacher_name:\n  - \"lecturer\"\n  - \"מרצה\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	merged, err := LoadAliasOverrides(path, DefaultAliases())
	require.NoError(t, err)

	assert.Contains(t, merged[ColTeacherName], "lecturer")
	assert.Contains(t, merged[ColTeacherName], "מרצה")
	assert.Contains(t, merged[ColTeacherName], "מורה", "built-in aliases survive the merge")
}

func TestLoadAliasOverridesRejectsUnknownColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aliases.yaml")
	require.NoError(t, os.WriteFile(path, []byte("not_a_column:\n  - x\n"), 0o644))

	_, err := LoadAliasOverrides(path, DefaultAliases())
	assert.ErrorContains(t, err, "not_a_column")
}

func TestLoadAliasOverridesDoesNotMutateBase(t *testing.T) {
	base := DefaultAliases()
	before := len(base[ColCategory])

	path := filepath.Join(t.TempDir(), "aliases.yaml")
	require.NoError(t, os.WriteFile(path, []byte("category:\n  - \"sug\"\n"), 0o644))

	merged, err := LoadAliasOverrides(path, base)
	require.NoError(t, err)
	assert.Len(t, base[ColCategory], before)
	assert.Len(t, merged[ColCategory], before+1)
}
