package stores_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/colonyops/taskline/internal/data/db"
	"github.com/colonyops/taskline/internal/data/stores"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *db.DB {
	t.Helper()
	database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func TestKVStore_SetAndGet(t *testing.T) {
	ctx := context.Background()
	store := stores.NewKVStore(newTestDB(t))

	type snapshot struct {
		Items []string `json:"items"`
	}

	require.NoError(t, store.Set(ctx, "snap", snapshot{Items: []string{"a", "b"}}))

	var got snapshot
	require.NoError(t, store.Get(ctx, "snap", &got))
	assert.Equal(t, []string{"a", "b"}, got.Items)
}

func TestKVStore_SetOverwrites(t *testing.T) {
	ctx := context.Background()
	store := stores.NewKVStore(newTestDB(t))

	require.NoError(t, store.Set(ctx, "k", "first"))
	require.NoError(t, store.Set(ctx, "k", "second"))

	var got string
	require.NoError(t, store.Get(ctx, "k", &got))
	assert.Equal(t, "second", got)
}

func TestKVStore_GetMissing(t *testing.T) {
	ctx := context.Background()
	store := stores.NewKVStore(newTestDB(t))

	var got string
	err := store.Get(ctx, "missing", &got)

	require.Error(t, err)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.True(t, stores.IsNotFoundError(err))
}

func TestKVStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := stores.NewKVStore(newTestDB(t))

	require.NoError(t, store.Set(ctx, "k", 1))
	require.NoError(t, store.Delete(ctx, "k"))

	has, err := store.Has(ctx, "k")
	require.NoError(t, err)
	assert.False(t, has)

	// Deleting again is not an error.
	require.NoError(t, store.Delete(ctx, "k"))
}

func TestKVStore_Has(t *testing.T) {
	ctx := context.Background()
	store := stores.NewKVStore(newTestDB(t))

	has, err := store.Has(ctx, "k")
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, store.Set(ctx, "k", true))

	has, err = store.Has(ctx, "k")
	require.NoError(t, err)
	assert.True(t, has)
}

func TestKVStore_ListKeys(t *testing.T) {
	ctx := context.Background()
	store := stores.NewKVStore(newTestDB(t))

	require.NoError(t, store.Set(ctx, "b", 2))
	require.NoError(t, store.Set(ctx, "a", 1))
	require.NoError(t, store.Set(ctx, "c", 3))

	keys, err := store.ListKeys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, keys)
}

func TestKVStore_RoundTripPreservesStructure(t *testing.T) {
	ctx := context.Background()
	store := stores.NewKVStore(newTestDB(t))

	type record struct {
		ID        string `json:"id"`
		Text      string `json:"text"`
		Completed bool   `json:"completed"`
		Order     int64  `json:"order"`
	}

	in := []record{
		{ID: "x", Text: "first", Completed: true, Order: 10},
		{ID: "y", Text: "second", Completed: false, Order: 20},
	}
	require.NoError(t, store.Set(ctx, "records", in))

	var out []record
	require.NoError(t, store.Get(ctx, "records", &out))
	assert.Equal(t, in, out)
}
