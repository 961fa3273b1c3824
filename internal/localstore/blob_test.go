package localstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swipehome/api/internal/domain"
)

func TestFileStore_RoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	_, ok, err := store.Get(ctx, "listings")
	require.NoError(t, err)
	assert.False(t, ok, "absent table must not be an error")

	require.NoError(t, store.Put(ctx, "listings", []byte(`[{"id":"l1"}]`)))

	data, ok, err := store.Get(ctx, "listings")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[{"id":"l1"}]`, string(data))

	require.NoError(t, store.Delete(ctx, "listings"))
	_, ok, err = store.Get(ctx, "listings")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting an absent table is a no-op.
	require.NoError(t, store.Delete(ctx, "listings"))
}

func TestFileStore_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.Put(ctx, "matches", []byte(`[]`)))

	second, err := NewFileStore(dir)
	require.NoError(t, err)
	data, ok, err := second.Get(ctx, "matches")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "[]", string(data))
}

func TestFileStore_CancelledContext(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err = store.Get(ctx, "listings")
	assert.ErrorIs(t, err, domain.ErrUnavailable)
	assert.ErrorIs(t, store.Put(ctx, "listings", []byte(`[]`)), domain.ErrUnavailable)
}

func TestMemoryStore_CopiesData(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	payload := []byte(`[1,2,3]`)
	require.NoError(t, store.Put(ctx, "t", payload))
	payload[1] = 'x'

	data, ok, err := store.Get(ctx, "t")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "[1,2,3]", string(data), "store must not alias caller buffers")
}

func TestReadTable_FallbackOnAbsent(t *testing.T) {
	store := NewMemoryStore()
	got, err := readTable(context.Background(), store, "matches", []domain.Match{})
	require.NoError(t, err)
	assert.Empty(t, got)
}
