package capsule_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sghaida/kompo/capsule"
)

//
// -----------------------------------------------------------------------------
// Basket
// -----------------------------------------------------------------------------

// TestNewBasket_Empty verifies a fresh basket reads as empty.
func TestNewBasket_Empty(t *testing.T) {
	t.Parallel()

	b := capsule.NewBasket()
	require.NotNil(t, b)
	assert.Equal(t, 0, b.Count())
	assert.Zero(t, b.Total())
}

// TestBasket_AddItemCountTotal verifies the documented anchor values:
// bread 0.5 + butter 0.3 -> count 2, total 0.8.
func TestBasket_AddItemCountTotal(t *testing.T) {
	t.Parallel()

	b := capsule.NewBasket()
	b.AddItem("bread", 0.5)
	b.AddItem("butter", 0.3)

	assert.Equal(t, 2, b.Count())
	assert.InDelta(t, 0.8, b.Total(), 1e-9)
}

// TestBasket_ReadsAreIdempotent verifies Count and Total do not mutate state.
func TestBasket_ReadsAreIdempotent(t *testing.T) {
	t.Parallel()

	b := capsule.NewBasket()
	b.AddItem("milk", 1.2)

	assert.Equal(t, b.Count(), b.Count())
	assert.Equal(t, b.Total(), b.Total())
	assert.Equal(t, 1, b.Count())
}

// TestBasket_TotalOrderIndependent verifies the reduction ignores insertion
// order.
func TestBasket_TotalOrderIndependent(t *testing.T) {
	t.Parallel()

	forward := capsule.NewBasket()
	forward.AddItem("a", 0.1)
	forward.AddItem("b", 0.2)
	forward.AddItem("c", 0.3)

	backward := capsule.NewBasket()
	backward.AddItem("c", 0.3)
	backward.AddItem("b", 0.2)
	backward.AddItem("a", 0.1)

	assert.InDelta(t, forward.Total(), backward.Total(), 1e-9)
}

// TestBasket_StateIsHidden verifies the item sequence is not reachable
// through any exported name: the exported surface is exactly the operation
// set plus the constructor's type.
func TestBasket_StateIsHidden(t *testing.T) {
	t.Parallel()

	typ := reflect.TypeOf(capsule.Basket{})
	for i := 0; i < typ.NumField(); i++ {
		assert.False(t, typ.Field(i).IsExported(),
			"field %q must stay unexported", typ.Field(i).Name)
	}
}

//
// -----------------------------------------------------------------------------
// Counter
// -----------------------------------------------------------------------------

// TestCounter_IncrementValueReset walks the whole counter operation set.
func TestCounter_IncrementValueReset(t *testing.T) {
	t.Parallel()

	c := capsule.NewCounter()
	assert.Equal(t, 0, c.Value())

	assert.Equal(t, 1, c.Increment())
	assert.Equal(t, 2, c.Increment())
	assert.Equal(t, 2, c.Value())
	assert.Equal(t, 2, c.Value())

	c.Reset()
	assert.Equal(t, 0, c.Value())
}

// TestCounter_StateIsHidden mirrors the basket visibility check.
func TestCounter_StateIsHidden(t *testing.T) {
	t.Parallel()

	typ := reflect.TypeOf(capsule.Counter{})
	for i := 0; i < typ.NumField(); i++ {
		assert.False(t, typ.Field(i).IsExported(),
			"field %q must stay unexported", typ.Field(i).Name)
	}
}
