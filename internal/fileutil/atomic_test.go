package fileutil

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeString(s string) func(io.Writer) error {
	return func(w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	}
}

func TestWriteAtomic(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "winnings.toml")

	require.NoError(t, WriteAtomic(path, 0644, writeString("winnings = 6440\n")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "winnings = 6440\n", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files should not remain")
}

func TestWriteAtomicOverwrite(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "winnings.toml")

	require.NoError(t, WriteAtomic(path, 0600, writeString("initial")))
	require.NoError(t, WriteAtomic(path, 0644, writeString("updated")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "updated", string(data))
}

func TestWriteAtomicFailedWriteKeepsOldFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "winnings.toml")
	require.NoError(t, os.WriteFile(path, []byte("previous"), 0644))

	boom := errors.New("encode failed")
	err := WriteAtomic(path, 0644, func(w io.Writer) error {
		io.WriteString(w, "half")
		return boom
	})
	assert.ErrorIs(t, err, boom)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files should not remain")
}

func TestWriteAtomicInvalidDir(t *testing.T) {
	t.Parallel()
	err := WriteAtomic("/nonexistent/dir/winnings.toml", 0644, writeString("data"))
	assert.Error(t, err)
}
