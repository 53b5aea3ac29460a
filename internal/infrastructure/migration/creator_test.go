package migration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateWritesPair(t *testing.T) {
	dir := t.TempDir()

	f, err := Create(dir, "Add Beers Table")
	require.NoError(t, err)

	assert.FileExists(t, f.UpPath)
	assert.FileExists(t, f.DownPath)
	assert.Contains(t, filepath.Base(f.UpPath), "add_beers_table.up.sql")
	assert.Contains(t, filepath.Base(f.DownPath), "add_beers_table.down.sql")

	content, err := os.ReadFile(f.UpPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Add Beers Table")
}

func TestListSortsSQLFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"002_b.up.sql", "001_a.up.sql", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}

	names, err := List(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"001_a.up.sql", "002_b.up.sql"}, names)
}

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "add_beers_table", sanitizeName("Add Beers Table"))
	assert.Equal(t, "fix_upc_index", sanitizeName("fix-UPC--index"))
	assert.Equal(t, "v2_schema", sanitizeName("  v2 schema  "))
}
