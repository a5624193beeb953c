package filestorage

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/jobtracker/internal/pkg/apperrors"
)

func newTestStorage(t *testing.T) (*LocalStorage, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "static")
	ls, err := NewLocalStorage(dir, "/static", zerolog.Nop())
	require.NoError(t, err)
	return ls, dir
}

func TestSaveOverwrites(t *testing.T) {
	ls, dir := newTestStorage(t)

	url, err := ls.Save("map_1.png", []byte("first"))
	require.NoError(t, err)
	assert.Equal(t, "/static/map_1.png", url)

	_, err = ls.Save("map_1.png", []byte("second"))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "map_1.png"))
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files left behind")
}

func TestDeleteStaysInsideBasePath(t *testing.T) {
	ls, dir := newTestStorage(t)

	outside := filepath.Join(filepath.Dir(dir), "secret.txt")
	require.NoError(t, os.WriteFile(outside, []byte("keep"), 0o644))

	err := ls.Delete("../secret.txt")
	assert.ErrorIs(t, err, apperrors.ErrFileNotFound)
	_, statErr := os.Stat(outside)
	assert.NoError(t, statErr)
}

func TestDelete(t *testing.T) {
	ls, dir := newTestStorage(t)

	_, err := ls.Save("map_2.png", []byte("png"))
	require.NoError(t, err)

	require.NoError(t, ls.Delete("map_2.png"))
	_, err = os.Stat(filepath.Join(dir, "map_2.png"))
	assert.True(t, os.IsNotExist(err))

	assert.ErrorIs(t, ls.Delete("map_2.png"), apperrors.ErrFileNotFound)
	assert.Error(t, ls.Delete(""))
}


func TestLogsGoToInjectedLogger(t *testing.T) {
	var buf bytes.Buffer
	ls, err := NewLocalStorage(t.TempDir(), "/static", zerolog.New(&buf))
	require.NoError(t, err)

	assert.ErrorIs(t, ls.Delete("map_9.png"), apperrors.ErrFileNotFound)
	assert.Contains(t, buf.String(), "File to delete does not exist")
}
