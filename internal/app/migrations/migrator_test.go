package migrations

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlfiles "github.com/yigit/jobtracker/migrations"
)

func TestFilesSortedAndFiltered(t *testing.T) {
	fsys := fstest.MapFS{
		"002_more.sql": {Data: []byte("SELECT 2;")},
		"001_init.sql": {Data: []byte("SELECT 1;")},
		"README.md":    {Data: []byte("notes")},
	}

	files, err := Files(fsys)
	require.NoError(t, err)
	assert.Equal(t, []string{"001_init.sql", "002_more.sql"}, files)
}

func TestVersion(t *testing.T) {
	assert.Equal(t, "001", Version("001_init.sql"))
	assert.Equal(t, "010", Version("dir/010_add_index.sql"))
}

func TestEmbeddedMigrationsPresent(t *testing.T) {
	files, err := Files(sqlfiles.Files)
	require.NoError(t, err)
	require.NotEmpty(t, files)
	assert.Equal(t, "001_init.sql", files[0])
}
