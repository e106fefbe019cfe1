package markers

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreSetAndExists(t *testing.T) {
	store, err := NewStore(filepath.Join(t.TempDir(), "markers", "reset.db"))
	require.NoError(t, err)

	exists, err := store.Exists("2025-03-12")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, store.Set("2025-03-12"))

	exists, err = store.Exists("2025-03-12")
	require.NoError(t, err)
	assert.True(t, exists)

	// Markers are per-day.
	exists, err = store.Exists("2025-03-19")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestStoreSetIsIdempotent(t *testing.T) {
	store, err := NewStore(filepath.Join(t.TempDir(), "reset.db"))
	require.NoError(t, err)

	require.NoError(t, store.Set("2025-03-12"))
	require.NoError(t, store.Set("2025-03-12"))

	exists, err := store.Exists("2025-03-12")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reset.db")

	store, err := NewStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Set("2025-03-12"))

	reopened, err := NewStore(path)
	require.NoError(t, err)
	exists, err := reopened.Exists("2025-03-12")
	require.NoError(t, err)
	assert.True(t, exists)
}
