package preferences_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/limbo/ascent/pkg/preferences"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.yaml")
	valid := func(theme string) bool { return theme == "sunrise" || theme == preferences.DefaultTheme }

	store, err := preferences.Open(path, valid)
	require.NoError(t, err)
	assert.Equal(t, preferences.DefaultTheme, store.Theme())

	t.Run("persists change", func(t *testing.T) {
		require.NoError(t, store.SetTheme("sunrise"))
		assert.Equal(t, "sunrise", store.Theme())
		reopened, err := preferences.Open(path, valid)
		require.NoError(t, err)
		assert.Equal(t, "sunrise", reopened.Theme())
	})
	t.Run("rejects unknown theme", func(t *testing.T) {
		assert.Error(t, store.SetTheme("neon"))
		assert.Equal(t, "sunrise", store.Theme())
	})
}

func TestOpenCorruptedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: [unclosed"), 0644))
	_, err := preferences.Open(path, nil)
	assert.Error(t, err)
}
