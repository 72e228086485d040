package store_test

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sghaida/kompo/store"
)

// newTestStore opens a file-backed store under t.TempDir and closes it with
// the test.
func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	s, err := store.Open(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, s.Close()) })
	return s
}

//
// -----------------------------------------------------------------------------
// Open / AddItem / Count / Total / Items
// -----------------------------------------------------------------------------

// TestStore_EmptyReads verifies a fresh ledger reads as empty.
func TestStore_EmptyReads(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	n, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	total, err := s.Total()
	require.NoError(t, err)
	assert.Zero(t, total)

	items, err := s.Items()
	require.NoError(t, err)
	assert.Empty(t, items)
}

// TestStore_AddCountTotal mirrors the capsule anchor values against the
// persistent ledger.
func TestStore_AddCountTotal(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	bread, err := s.AddItem("bread", 0.5)
	require.NoError(t, err)
	_, err = s.AddItem("butter", 0.3)
	require.NoError(t, err)

	// Row ids are real uuids.
	_, err = uuid.Parse(bread.ID)
	require.NoError(t, err)

	n, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	total, err := s.Total()
	require.NoError(t, err)
	assert.InDelta(t, 0.8, total, 1e-9)

	items, err := s.Items()
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "bread", items[0].Name)
	assert.Equal(t, "butter", items[1].Name)
}

// TestStore_ReadsAreIdempotent verifies reads do not mutate the ledger.
func TestStore_ReadsAreIdempotent(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	_, err := s.AddItem("milk", 1.2)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		n, err := s.Count()
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		total, err := s.Total()
		require.NoError(t, err)
		assert.InDelta(t, 1.2, total, 1e-9)
	}
}

//
// -----------------------------------------------------------------------------
// Shared
// -----------------------------------------------------------------------------

// TestShared_IdentityStable verifies the process-wide ledger is constructed
// once and shared.
func TestShared_IdentityStable(t *testing.T) {
	t.Parallel()

	a := store.Shared()
	b := store.Shared()

	require.NotNil(t, a)
	assert.Same(t, a, b)
}
