package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leoking9009/notion-working/internal/model"
)

func TestFileStore(t *testing.T) {
	t.Run("missing file means no session", func(t *testing.T) {
		store := NewFileStore(filepath.Join(t.TempDir(), "session.json"))
		sess, err := store.Load()
		require.NoError(t, err)
		assert.Nil(t, sess)
	})

	t.Run("save then load round trip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "session.json")
		store := NewFileStore(path)

		saved := &Session{
			User: model.User{
				ID:     "u-1",
				Name:   "Alice",
				Email:  "alice@example.com",
				Role:   model.RoleUser,
				Status: model.StatusApproved,
			},
			SignedInAt: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC),
		}
		require.NoError(t, store.Save(saved))

		loaded, err := store.Load()
		require.NoError(t, err)
		require.NotNil(t, loaded)
		assert.Equal(t, saved.User, loaded.User)
		assert.True(t, saved.SignedInAt.Equal(loaded.SignedInAt))
	})

	t.Run("corrupt file reads as no session", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "session.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

		sess, err := NewFileStore(path).Load()
		require.NoError(t, err)
		assert.Nil(t, sess)
	})

	t.Run("clear removes the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "session.json")
		store := NewFileStore(path)
		require.NoError(t, store.Save(&Session{}))
		require.NoError(t, store.Clear())

		sess, err := store.Load()
		require.NoError(t, err)
		assert.Nil(t, sess)
	})

	t.Run("clearing an empty store succeeds", func(t *testing.T) {
		store := NewFileStore(filepath.Join(t.TempDir(), "session.json"))
		assert.NoError(t, store.Clear())
	})
}
