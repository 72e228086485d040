package single

import (
	"sync"
	"sync/atomic"
)

// Lazy guards one-time construction of a shared instance of T.
//
// The zero value is not usable; build one with NewLazy. A Lazy never tears
// its instance down: once constructed, the instance lives for the lifetime of
// the Lazy.
type Lazy[T any] struct {
	once sync.Once
	ctor func() *T
	val  *T
	done atomic.Bool
}

// NewLazy returns a Lazy that will construct its instance by calling ctor on
// the first Get.
//
// ctor runs at most once. A nil ctor makes the first Get panic, the same way
// calling a nil function directly would.
func NewLazy[T any](ctor func() *T) *Lazy[T] {
	return &Lazy[T]{ctor: ctor}
}

// Get returns the shared instance, constructing it exactly once.
//
// Get is safe for concurrent use; all callers observe the identical pointer.
func (l *Lazy[T]) Get() *T {
	l.once.Do(func() {
		l.val = l.ctor()
		l.ctor = nil
		l.done.Store(true)
	})
	return l.val
}

// Initialized reports whether construction has already happened.
//
// It never triggers construction itself.
func (l *Lazy[T]) Initialized() bool {
	return l.done.Load()
}
