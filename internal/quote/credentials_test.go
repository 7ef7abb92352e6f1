package quote

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("QOD_API_KEY", "")
	return home
}

func TestLoadKeyNoneConfigured(t *testing.T) {
	isolateHome(t)
	ki, err := LoadKey()
	require.NoError(t, err)
	assert.Nil(t, ki)
}

func TestLoadKeyEnvOverride(t *testing.T) {
	isolateHome(t)
	t.Setenv("QOD_API_KEY", "  from-env  ")

	ki, err := LoadKey()
	require.NoError(t, err)
	require.NotNil(t, ki)
	assert.Equal(t, "from-env", ki.Key)
	assert.Equal(t, "env", ki.Source)
}

func TestSaveLoadDeleteRoundTrip(t *testing.T) {
	home := isolateHome(t)

	require.NoError(t, SaveKey("abc123"))

	ki, err := LoadKey()
	require.NoError(t, err)
	require.NotNil(t, ki)
	assert.Equal(t, "abc123", ki.Key)
	assert.Equal(t, "file", ki.Source)
	assert.False(t, ki.CreatedAt.IsZero())

	fi, err := os.Stat(filepath.Join(home, ".dailydo", "credentials.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), fi.Mode().Perm())

	require.NoError(t, DeleteKey())
	ki, err = LoadKey()
	require.NoError(t, err)
	assert.Nil(t, ki)
}

func TestLoadKeyCorruptFile(t *testing.T) {
	home := isolateHome(t)
	dir := filepath.Join(home, ".dailydo")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "credentials.json"), []byte("{oops"), 0o600))

	_, err := LoadKey()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse credentials")
}

func TestSaveKeyRejectsEmpty(t *testing.T) {
	isolateHome(t)
	assert.Error(t, SaveKey("   "))
}

func TestDeleteKeyMissingIsFine(t *testing.T) {
	isolateHome(t)
	assert.NoError(t, DeleteKey())
}

func TestEnvWinsOverFile(t *testing.T) {
	isolateHome(t)
	require.NoError(t, SaveKey("from-file"))
	t.Setenv("QOD_API_KEY", "from-env")

	ki, err := LoadKey()
	require.NoError(t, err)
	require.NotNil(t, ki)
	assert.Equal(t, "from-env", ki.Key)
}
