package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thomas-vilte/tickety/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	t.Setenv("TICKETY_USER", "")
	t.Setenv("TICKETY_TOKEN", "")
	return NewStore(filepath.Join(t.TempDir(), ".tickety"))
}

func TestStore_Load(t *testing.T) {
	t.Run("should return nil when nobody logged in", func(t *testing.T) {
		store := newTestStore(t)

		creds, err := store.Load()

		require.NoError(t, err)
		assert.Nil(t, creds)
	})

	t.Run("should fail on a corrupted file", func(t *testing.T) {
		store := newTestStore(t)
		require.NoError(t, os.MkdirAll(filepath.Dir(store.Path()), 0700))
		require.NoError(t, os.WriteFile(store.Path(), []byte("not json"), 0600))

		_, err := store.Load()

		assert.Error(t, err)
	})

	t.Run("should prefer environment credentials", func(t *testing.T) {
		store := newTestStore(t)
		require.NoError(t, store.Save(&models.Credentials{Name: "stored", Token: "t1"}))
		t.Setenv("TICKETY_USER", "octocat")
		t.Setenv("TICKETY_TOKEN", "t2")

		creds, err := store.Load()

		require.NoError(t, err)
		assert.Equal(t, &models.Credentials{Name: "octocat", Token: "t2"}, creds)
	})

	t.Run("should ignore a partial environment", func(t *testing.T) {
		store := newTestStore(t)
		t.Setenv("TICKETY_USER", "octocat")

		creds, err := store.Load()

		require.NoError(t, err)
		assert.Nil(t, creds)
	})
}

func TestStore_Save(t *testing.T) {
	t.Run("should round trip credentials", func(t *testing.T) {
		store := newTestStore(t)
		want := &models.Credentials{Name: "octocat", Token: "ghp_secret"}

		require.NoError(t, store.Save(want))
		got, err := store.Load()

		require.NoError(t, err)
		assert.Equal(t, want, got)

		info, err := os.Stat(store.Path())
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	})

	t.Run("should remove credentials on nil", func(t *testing.T) {
		store := newTestStore(t)
		require.NoError(t, store.Save(&models.Credentials{Name: "octocat", Token: "t"}))

		require.NoError(t, store.Save(nil))
		got, err := store.Load()

		require.NoError(t, err)
		assert.Nil(t, got)
		assert.NoFileExists(t, store.Path())
	})

	t.Run("should accept logout when already logged out", func(t *testing.T) {
		store := newTestStore(t)

		assert.NoError(t, store.Save(nil))
	})
}
