package single

import (
	"time"

	"github.com/google/uuid"
)

// Resource is an opaque process-wide handle.
//
// Its ID makes instance identity observable without comparing pointers: two
// accesses returning the same ID saw the same construction.
type Resource struct {
	ID        uuid.UUID
	CreatedAt time.Time
}

var defaultResource = NewLazy(func() *Resource {
	return &Resource{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
	}
})

// DefaultResource returns the process-wide resource handle, constructing it
// on first access.
//
// Every call returns the identical instance.
func DefaultResource() *Resource {
	return defaultResource.Get()
}
