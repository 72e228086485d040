// Package capsule provides encapsulated-state containers.
//
// The containers hide their state behind unexported fields and expose a fixed
// operation set; nothing outside the package can read or mutate the state
// except through that set.
//
// Two export styles are provided for the same contract:
//
//   - Basket / Counter: the operation set is written as methods on the
//     exported type (module idiom).
//   - Reveal: the operation set is assembled at construction time by binding
//     public names directly to the internal routines (revealing variant).
//
// Both styles guarantee the same thing; they differ only in how the public
// binding is put together.
//
// Containers in this package are not safe for concurrent use; guard them
// externally if shared across goroutines.
package capsule
