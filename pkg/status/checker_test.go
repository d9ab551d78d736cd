package status

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/relink/pkg/filesystem"
	"github.com/arthur-debert/relink/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckLink_Missing(t *testing.T) {
	dir := t.TempDir()

	st, err := CheckLink(filesystem.NewOS(), types.ExpandedLink{
		Source:      filepath.Join(dir, "src"),
		Destination: filepath.Join(dir, "dst"),
	})

	require.NoError(t, err)
	assert.Equal(t, StatusMissing, st)
}

func TestCheckLink_OK(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "dst")
	require.NoError(t, os.WriteFile(src, []byte("content"), 0644))
	require.NoError(t, os.Symlink(src, dst))

	st, err := CheckLink(filesystem.NewOS(), types.ExpandedLink{Source: src, Destination: dst})

	require.NoError(t, err)
	assert.Equal(t, StatusOK, st)
}

func TestCheckLink_WrongTarget(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	other := filepath.Join(dir, "other")
	dst := filepath.Join(dir, "dst")
	require.NoError(t, os.WriteFile(src, []byte(""), 0644))
	require.NoError(t, os.WriteFile(other, []byte(""), 0644))
	require.NoError(t, os.Symlink(other, dst))

	st, err := CheckLink(filesystem.NewOS(), types.ExpandedLink{Source: src, Destination: dst})

	require.NoError(t, err)
	// wrong-target wins even though the actual target exists
	assert.Equal(t, StatusWrongTarget, st)
}

func TestCheckLink_Broken(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "missing-src")
	dst := filepath.Join(dir, "dst")
	require.NoError(t, os.Symlink(src, dst))

	st, err := CheckLink(filesystem.NewOS(), types.ExpandedLink{Source: src, Destination: dst})

	require.NoError(t, err)
	assert.Equal(t, StatusBroken, st)
}

func TestCheckLink_NotASymlink(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "dst")
	require.NoError(t, os.WriteFile(dst, []byte("regular file"), 0644))

	st, err := CheckLink(filesystem.NewOS(), types.ExpandedLink{Source: src, Destination: dst})

	require.NoError(t, err)
	assert.Equal(t, StatusNotSymlink, st)
}

func TestCheckLink_DirectoryIsNotASymlink(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "dst")
	require.NoError(t, os.Mkdir(dst, 0755))

	st, err := CheckLink(filesystem.NewOS(), types.ExpandedLink{
		Source:      filepath.Join(dir, "src"),
		Destination: dst,
	})

	require.NoError(t, err)
	assert.Equal(t, StatusNotSymlink, st)
}

func TestCheckLink_SymlinkToSymlinkUsesRecordedTarget(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	mid := filepath.Join(dir, "mid")
	dst := filepath.Join(dir, "dst")
	require.NoError(t, os.WriteFile(src, []byte(""), 0644))
	require.NoError(t, os.Symlink(src, mid))
	require.NoError(t, os.Symlink(mid, dst))

	// The recorded target is mid, not src: classification must not
	// dereference the chain.
	st, err := CheckLink(filesystem.NewOS(), types.ExpandedLink{Source: src, Destination: dst})

	require.NoError(t, err)
	assert.Equal(t, StatusWrongTarget, st)
}
