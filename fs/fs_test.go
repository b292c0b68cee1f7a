package fs_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/charcheck/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigDir(t *testing.T) {
	t.Run("uses XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

		assert.Equal(t, "/tmp/xdg/charcheck", fs.DefaultConfigDir())
		assert.Equal(t, "/tmp/xdg/charcheck/config.json", fs.DefaultConfigFile())
	})

	t.Run("falls back to home", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		t.Setenv("HOME", "/home/tester")

		assert.Equal(t, "/home/tester/.config/charcheck", fs.DefaultConfigDir())
	})
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestExpand(t *testing.T) {
	t.Parallel()

	t.Run("walks directories and skips hidden entries", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "b.txt"), "b")
		writeFile(t, filepath.Join(dir, "sub", "a.txt"), "a")
		writeFile(t, filepath.Join(dir, ".git", "config"), "x")
		writeFile(t, filepath.Join(dir, ".hidden.txt"), "x")

		files, err := fs.Expand([]string{dir})

		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(dir, "b.txt"),
			filepath.Join(dir, "sub", "a.txt"),
		}, files)
	})

	t.Run("keeps explicit files and removes duplicates", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		file := filepath.Join(dir, ".env")
		writeFile(t, file, "x")

		files, err := fs.Expand([]string{file, dir, file})

		require.NoError(t, err)
		assert.Equal(t, []string{file}, files)
	})

	t.Run("returns error for missing path", func(t *testing.T) {
		t.Parallel()

		_, err := fs.Expand([]string{"/nonexistent/path"})

		require.Error(t, err)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})
}

func TestReadText(t *testing.T) {
	t.Parallel()

	t.Run("reads text file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "a.txt")
		writeFile(t, path, "café\r\n")

		text, err := fs.ReadText(path)

		require.NoError(t, err)
		assert.Equal(t, "café\r\n", text)
	})

	t.Run("rejects binary file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "a.bin")
		writeFile(t, path, "PK\x03\x04\x00\x00")

		_, err := fs.ReadText(path)

		assert.ErrorIs(t, err, fs.ErrBinary)
	})

	t.Run("returns error for missing file", func(t *testing.T) {
		t.Parallel()

		_, err := fs.ReadText("/nonexistent/a.txt")

		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestReadAll(t *testing.T) {
	t.Parallel()

	text, err := fs.ReadAll(strings.NewReader("ok\nЖ"))

	require.NoError(t, err)
	assert.Equal(t, "ok\nЖ", text)
}
