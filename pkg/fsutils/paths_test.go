package fsutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestExpandHome(t *testing.T) {
	home, _ := os.UserHomeDir()
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "", ExpandHome(""))
	})
	t.Run("no_tilde", func(t *testing.T) {
		assert.Equal(t, "/some/path", ExpandHome("/some/path"))
	})
	t.Run("only_tilde", func(t *testing.T) {
		assert.Equal(t, home, ExpandHome("~"))
	})
	t.Run("tilde_with_path", func(t *testing.T) {
		assert.Equal(t, filepath.Join(home, "abc"), ExpandHome("~/abc"))
	})
	t.Run("tilde_inside_name", func(t *testing.T) {
		assert.Equal(t, "/a/~b", ExpandHome("/a/~b"))
	})
}

func TestDirExists(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("exists", func(t *testing.T) {
		exists, err := DirExists(tmpDir)
		assert.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("not_exists", func(t *testing.T) {
		exists, err := DirExists(filepath.Join(tmpDir, "nope"))
		assert.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("is_file", func(t *testing.T) {
		filePath := filepath.Join(tmpDir, "file.txt")
		assert.NoError(t, os.WriteFile(filePath, []byte("x"), 0644))
		exists, err := DirExists(filePath)
		assert.NoError(t, err)
		assert.False(t, exists)
	})
}
