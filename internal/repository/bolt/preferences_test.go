package bolt

import (
	"context"
	"path/filepath"
	"testing"

	"alcyxob/student-portal/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) repository.PreferenceStore {
	t.Helper()
	store, err := OpenPreferenceStore(filepath.Join(t.TempDir(), "nested", "prefs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close(context.Background()) })
	return store
}

func TestPreferenceStore_SetGet(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	_, err := store.Get(ctx, "s1", "theme")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, store.Set(ctx, "s1", "theme", "dark"))
	v, err := store.Get(ctx, "s1", "theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", v)

	_, err = store.Get(ctx, "s2", "theme")
	assert.ErrorIs(t, err, repository.ErrNotFound, "sessions must not share keys")
}

func TestPreferenceStore_DeleteAndClear(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "s1", "theme", "dark"))
	require.NoError(t, store.Set(ctx, "s1", "welcomeShown", "true"))

	require.NoError(t, store.Delete(ctx, "s1", "theme"))
	_, err := store.Get(ctx, "s1", "theme")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, store.Clear(ctx, "s1"))
	_, err = store.Get(ctx, "s1", "welcomeShown")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	assert.NoError(t, store.Clear(ctx, "never-seen"))
	assert.NoError(t, store.Delete(ctx, "never-seen", "theme"))
}

func TestPreferenceStore_RequiresSession(t *testing.T) {
	store := openTestStore(t)
	assert.Error(t, store.Set(context.Background(), "", "theme", "dark"))
}
