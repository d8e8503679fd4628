package filemap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLines(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "go.mod", "module x\n")
	writeFile(t, root, "internal/a.go", "package a")
	writeFile(t, root, ".git/HEAD", "ref")
	writeFile(t, root, "build/out.bin", "xx")
	writeFile(t, root, "docs/dist/skip.txt", "s")

	lines, err := New(Options{Root: root}).Lines()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"go.mod (9 bytes)",
		"internal/a.go (9 bytes)",
	}, lines)
}

func TestCustomExclude(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "keep.txt", "k")
	writeFile(t, root, "vendor/x.go", "x")
	writeFile(t, root, "build/y.txt", "y")

	lines, err := New(Options{Root: root, Exclude: []string{"vendor"}}).Lines()
	require.NoError(t, err)
	assert.Equal(t, []string{"build/y.txt (1 bytes)", "keep.txt (1 bytes)"}, lines)
}

func TestMissingRoot(t *testing.T) {
	_, err := New(Options{Root: filepath.Join(t.TempDir(), "nope")}).Lines()
	assert.Error(t, err)
}
