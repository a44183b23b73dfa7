//go:build unit

package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManagerAdapter(t *testing.T) {
	adapter := NewManagerAdapter()
	assert.NotNil(t, adapter)
}

func TestManagerAdapter_WriteAndReadFile(t *testing.T) {
	adapter := NewManagerAdapter()

	tempDir := t.TempDir()
	testFile := filepath.Join(tempDir, "ifcfg-eth0")
	testContent := []byte("HWADDR=AA:BB:CC:DD:EE:FF\nDEVICE=eth0\n")

	t.Run("WriteFile", func(t *testing.T) {
		err := adapter.WriteFile(testFile, testContent, 0644)
		assert.NoError(t, err)
	})

	t.Run("ReadFile", func(t *testing.T) {
		data, err := adapter.ReadFile(testFile)
		require.NoError(t, err)
		assert.Equal(t, testContent, data)
	})

	t.Run("ReadMissingFile", func(t *testing.T) {
		_, err := adapter.ReadFile(filepath.Join(tempDir, "missing"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read file")
	})
}

func TestManagerAdapter_Glob(t *testing.T) {
	adapter := NewManagerAdapter()

	tempDir := t.TempDir()
	for _, name := range []string{"ifcfg-eth0", "ifcfg-eth1", "ifcfg-eth0:1", "ifcfg-lo"} {
		err := os.WriteFile(filepath.Join(tempDir, name), []byte{}, 0644)
		require.NoError(t, err)
	}

	matches, err := adapter.Glob(filepath.Join(tempDir, "ifcfg-eth*"))
	require.NoError(t, err)
	assert.Len(t, matches, 3)
	assert.NotContains(t, matches, filepath.Join(tempDir, "ifcfg-lo"))
}

func TestManagerAdapter_CopyFile(t *testing.T) {
	adapter := NewManagerAdapter()

	tempDir := t.TempDir()
	src := filepath.Join(tempDir, "src")
	dst := filepath.Join(tempDir, "dst")
	content := []byte("binary payload")
	require.NoError(t, os.WriteFile(src, content, 0644))

	t.Run("CopiesContent", func(t *testing.T) {
		err := adapter.CopyFile(src, dst, 0755)
		require.NoError(t, err)

		data, err := os.ReadFile(dst)
		require.NoError(t, err)
		assert.Equal(t, content, data)

		info, err := os.Stat(dst)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
	})

	t.Run("MissingSource", func(t *testing.T) {
		err := adapter.CopyFile(filepath.Join(tempDir, "missing"), dst, 0755)
		assert.Error(t, err)
	})
}

func TestManagerAdapter_FileExists(t *testing.T) {
	adapter := NewManagerAdapter()

	tempDir := t.TempDir()
	testFile := filepath.Join(tempDir, "exists")
	require.NoError(t, os.WriteFile(testFile, []byte{}, 0644))

	assert.True(t, adapter.FileExists(testFile))
	assert.False(t, adapter.FileExists(filepath.Join(tempDir, "missing")))
}
