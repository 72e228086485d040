package store

import (
	"fmt"

	"github.com/sghaida/kompo/single"
)

var shared = single.NewLazy(func() *Store {
	s, err := Open(":memory:")
	if err != nil {
		// Opening an in-memory database fails only if the driver itself is
		// broken; fail fast like a missing registry key would.
		panic(fmt.Errorf("store: shared init: %w", err))
	}
	return s
})

// Shared returns the process-wide in-memory store, constructing it on first
// access.
//
// Every call returns the identical instance; the store lives for the process
// lifetime and is never closed.
func Shared() *Store {
	return shared.Get()
}
