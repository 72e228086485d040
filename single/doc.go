// Package single provides a generic one-time-initialization container.
//
// Lazy[T] owns exactly one shared instance of T. The first Get constructs it;
// every later Get, from any goroutine, returns the identical pointer.
// Construction is serialized with sync.Once, so concurrent first access can
// never construct more than one instance.
//
// DefaultResource is a package-level example of the idiom: a process-wide
// opaque handle whose identity (a uuid) makes "same instance" observable.
package single
