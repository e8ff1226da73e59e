package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTabByID(t *testing.T) {
	tab, err := TabByID("hs")
	require.NoError(t, err)
	assert.Equal(t, "highschool", tab.Table)
	assert.Equal(t, "תיכון", tab.LabelHe)

	_, err = TabByID("home")
	assert.Error(t, err, "home is served but not importable")

	_, err = TabByID("nope")
	assert.Error(t, err)
}

func TestTabByNumber(t *testing.T) {
	for _, tab := range Tabs {
		got, err := TabByNumber(tab.Number)
		require.NoError(t, err)
		assert.Equal(t, tab.ID, got.ID)
	}

	_, err := TabByNumber(0)
	assert.Error(t, err)
	_, err = TabByNumber(len(Tabs) + 1)
	assert.Error(t, err)
}

func TestServingTables(t *testing.T) {
	tables := ServingTables()
	assert.Len(t, tables, len(Tabs)+1)
	assert.Equal(t, "home_items", tables["home"])
	assert.Equal(t, "highschool", tables["hs"])
	assert.Equal(t, "docs", tables["docs"])
}
