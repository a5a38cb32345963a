package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedLibrary(t *testing.T, names ...string) *Library {
	t.Helper()
	root := t.TempDir()
	for _, name := range names {
		full := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte("x"), 0o644))
	}
	return NewLibrary(root)
}

func TestListFiltersByImageAllowlist(t *testing.T) {
	lib := seedLibrary(t, "a.jpg", "b.PNG", "c.webp", "notes.txt", "clip.mp4")

	names, err := lib.List(false)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.jpg", "b.PNG", "c.webp"}, names)
}

func TestListIncludeAllEscapeHatch(t *testing.T) {
	lib := seedLibrary(t, "a.jpg", "notes.txt")

	names, err := lib.List(true)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.jpg", "notes.txt"}, names)
}

func TestListWalksSubdirectories(t *testing.T) {
	lib := seedLibrary(t, filepath.Join("season", "winter.gif"), "top.bmp")

	names, err := lib.List(false)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join("season", "winter.gif"), "top.bmp"}, names)
}

func TestListMissingRootIsEmpty(t *testing.T) {
	lib := NewLibrary(filepath.Join(t.TempDir(), "does-not-exist"))

	names, err := lib.List(false)
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestResolveStaysInsideRoot(t *testing.T) {
	lib := seedLibrary(t, "a.jpg")

	full, err := lib.Resolve("a.jpg")
	require.NoError(t, err)
	assert.FileExists(t, full)

	// Traversal attempts are confined to the root and miss.
	_, err = lib.Resolve("../../etc/passwd")
	assert.Error(t, err)

	_, err = lib.Resolve("missing.png")
	assert.Error(t, err)
}

func TestNormalizeFilename(t *testing.T) {
	name := normalizeFilename("My Holiday Pic!.JPG")
	assert.Regexp(t, `^My_Holiday_Pic_\d{8}_\d{6}\.jpg$`, name)

	name = normalizeFilename("???.png")
	assert.Regexp(t, `^file_\d{8}_\d{6}\.png$`, name)
}
