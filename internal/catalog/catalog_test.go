package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	t.Parallel()
	c := Default()
	require.NotEmpty(t, c.List())

	bench, ok := c.Get("bench-press")
	require.True(t, ok)
	assert.Equal(t, "Bench Press", bench.Name)
	assert.Equal(t, "Chest", bench.Category)

	_, ok = c.Get("zercher-squat")
	assert.False(t, ok)
}

func TestSearchMatchesNameAndCategory(t *testing.T) {
	t.Parallel()
	c := Default()

	byName := c.Search("press")
	ids := make([]string, 0, len(byName))
	for _, ex := range byName {
		ids = append(ids, ex.ID)
	}
	assert.ElementsMatch(t, []string{"bench-press", "overhead-press"}, ids)

	byCategory := c.Search("BACK")
	assert.Len(t, byCategory, 3)

	assert.Len(t, c.Search(""), len(c.List()))
	assert.Empty(t, c.Search("swimming"))
}

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "exercises.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	t.Parallel()
	path := writeCatalogFile(t, `
exercises:
  - id: front-squat
    name: Front Squat
    category: Legs
  - id: dip
    name: Dip
    category: Chest
`)
	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, c.List(), 2)

	dip, ok := c.Get("dip")
	require.True(t, ok)
	assert.Equal(t, "Dip", dip.Name)
}

func TestLoadFileRejectsBadCatalogs(t *testing.T) {
	t.Parallel()

	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = LoadFile(writeCatalogFile(t, "exercises: []\n"))
	require.Error(t, err)

	_, err = LoadFile(writeCatalogFile(t, `
exercises:
  - id: dip
    name: ""
`))
	require.Error(t, err)

	_, err = LoadFile(writeCatalogFile(t, `
exercises:
  - id: dip
    name: Dip
  - id: dip
    name: Dip Again
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}
