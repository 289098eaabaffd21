package catalog

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deidexdd-hash/mysticbot/internal/numerology"
)

func TestDefault(t *testing.T) {
	tables, err := Default()
	require.NoError(t, err)

	t.Run("every key shape for every digit", func(t *testing.T) {
		for digit := 1; digit <= 9; digit++ {
			for count := 0; count <= 5; count++ {
				key := numerology.KeyForCount(digit, count, numerology.OverflowSubtract)
				_, ok := tables.Interpretations[key]
				assert.True(t, ok, "missing interpretation for %q", key)
			}
		}
		assert.Len(t, tables.Interpretations, 54)
	})

	t.Run("gendered entries are structured", func(t *testing.T) {
		entry := tables.Interpretations["111"]
		assert.True(t, entry.Gendered())
		assert.NotEqual(t, entry.Male, entry.Female)
	})

	t.Run("legacy marker split at load", func(t *testing.T) {
		entry := tables.Interpretations["11111"]
		require.True(t, entry.Gendered())
		assert.NotContains(t, entry.Male, LegacyGenderMarker)
		assert.NotContains(t, entry.Female, LegacyGenderMarker)
	})

	t.Run("forecasts cover 1..9", func(t *testing.T) {
		for n := 1; n <= 9; n++ {
			assert.NotEmpty(t, tables.Forecasts[n], "forecast %d", n)
		}
	})

	t.Run("tasks cover single pass soul numbers", func(t *testing.T) {
		for n := 1; n <= 15; n++ {
			assert.NotEmpty(t, tables.Tasks[n], "task %d", n)
		}
	})
}

func TestParseLegacyText(t *testing.T) {
	assert.Equal(t, numerology.NeutralEntry("plain"), ParseLegacyText("  plain "))
	assert.Equal(t,
		numerology.GenderedEntry("for him", "for her"),
		ParseLegacyText("for him ||female|| for her"))
}

func TestLoad_Errors(t *testing.T) {
	valid := func() fstest.MapFS {
		return fstest.MapFS{
			"matrix.yaml":    {Data: []byte(`"1": "one"`)},
			"tasks.yaml":     {Data: []byte(`1: "task"`)},
			"forecasts.yaml": {Data: []byte(`1: "forecast"`)},
		}
	}

	t.Run("valid minimal tables", func(t *testing.T) {
		tables, err := Load(valid())
		require.NoError(t, err)
		assert.Equal(t, "one", tables.Interpretations["1"].Text)
		assert.Equal(t, "task", tables.Tasks[1])
		assert.Equal(t, "forecast", tables.Forecasts[1])
	})

	t.Run("invalid key", func(t *testing.T) {
		fsys := valid()
		fsys["matrix.yaml"] = &fstest.MapFile{Data: []byte(`"12": "mixed"`)}
		_, err := Load(fsys)
		assert.ErrorContains(t, err, "invalid key")
	})

	t.Run("half a gendered entry", func(t *testing.T) {
		fsys := valid()
		fsys["matrix.yaml"] = &fstest.MapFile{Data: []byte("\"2\":\n  male: only him\n")}
		_, err := Load(fsys)
		assert.ErrorContains(t, err, "both male and female")
	})

	t.Run("list entry", func(t *testing.T) {
		fsys := valid()
		fsys["matrix.yaml"] = &fstest.MapFile{Data: []byte("\"2\": [a, b]\n")}
		_, err := Load(fsys)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		fsys := valid()
		delete(fsys, "tasks.yaml")
		_, err := Load(fsys)
		assert.ErrorContains(t, err, "tasks.yaml")
	})

	t.Run("non positive number", func(t *testing.T) {
		fsys := valid()
		fsys["forecasts.yaml"] = &fstest.MapFile{Data: []byte(`0: "zero"`)}
		_, err := Load(fsys)
		assert.ErrorContains(t, err, "must be positive")
	})
}

func TestLoadDir(t *testing.T) {
	tables, err := LoadDir("tables")
	require.NoError(t, err)
	assert.Len(t, tables.Interpretations, 54)
}
