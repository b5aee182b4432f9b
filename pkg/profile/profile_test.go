package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContent_NotEmpty(t *testing.T) {
	content := string(Content())
	assert.NotEmpty(t, content)
	assert.Contains(t, content, "oh-my-posh")
}

func TestWriteDefault_CreatesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "proflink")

	path, err := WriteDefault(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Profile.ps1"), path)

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Content(), written)
}

func TestWriteDefault_NeverOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Profile.ps1")
	require.NoError(t, os.WriteFile(path, []byte("# customized\n"), 0644))

	got, err := WriteDefault(dir)
	require.NoError(t, err)
	assert.Equal(t, path, got)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# customized\n", string(content))
}
