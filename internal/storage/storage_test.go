package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// eachStore runs the shared Store contract tests against every tier.
func eachStore(t *testing.T, fn func(t *testing.T, store Store)) {
	t.Helper()

	t.Run("sqlite", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "fare.db")
		store, err := NewSQLiteStore(dbPath)
		require.NoError(t, err)
		defer func() {
			require.NoError(t, store.Close())
		}()
		fn(t, store)
	})

	t.Run("memory", func(t *testing.T) {
		store := NewMemoryStore()
		fn(t, store)
	})
}

func TestStoreLoadMissingKey(t *testing.T) {
	eachStore(t, func(t *testing.T, store Store) {
		ctx := context.Background()

		var out []record
		found, err := store.Load(ctx, "transactions", &out)
		require.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, out)
	})
}

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	eachStore(t, func(t *testing.T, store Store) {
		ctx := context.Background()

		in := []record{{Name: "fuel", Count: 3}, {Name: "food", Count: 1}}
		require.NoError(t, store.Save(ctx, "categories", in))

		var out []record
		found, err := store.Load(ctx, "categories", &out)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, in, out)
	})
}

func TestStoreSaveOverwrites(t *testing.T) {
	eachStore(t, func(t *testing.T, store Store) {
		ctx := context.Background()

		require.NoError(t, store.Save(ctx, "settings", record{Name: "first"}))
		require.NoError(t, store.Save(ctx, "settings", record{Name: "second"}))

		var out record
		found, err := store.Load(ctx, "settings", &out)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "second", out.Name)
	})
}

func TestStoreDelete(t *testing.T) {
	eachStore(t, func(t *testing.T, store Store) {
		ctx := context.Background()

		require.NoError(t, store.Save(ctx, "payables", []record{{Name: "x"}}))
		require.NoError(t, store.Delete(ctx, "payables"))

		var out []record
		found, err := store.Load(ctx, "payables", &out)
		require.NoError(t, err)
		assert.False(t, found)

		// Deleting a missing key is a no-op.
		require.NoError(t, store.Delete(ctx, "payables"))
	})
}

func TestStoreValidation(t *testing.T) {
	eachStore(t, func(t *testing.T, store Store) {
		ctx := context.Background()

		_, err := store.Load(ctx, "", &record{})
		assert.ErrorIs(t, err, ErrEmptyString)

		err = store.Save(ctx, "  ", record{})
		assert.ErrorIs(t, err, ErrEmptyString)

		_, err = store.Load(ctx, "settings", nil)
		assert.ErrorIs(t, err, ErrNilValue)
	})
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "fare.db")

	store, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, "transactions", []record{{Name: "trip", Count: 2}}))
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, reopened.Close())
	}()

	var out []record
	found, err := reopened.Load(ctx, "transactions", &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []record{{Name: "trip", Count: 2}}, out)
}

func TestNewSQLiteStoreEmptyPath(t *testing.T) {
	_, err := NewSQLiteStore("")
	assert.ErrorIs(t, err, ErrEmptyString)
}
