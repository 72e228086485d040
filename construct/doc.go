// Package construct provides parameterized object initializers.
//
// An initializer takes an Options record, substitutes documented defaults for
// absent fields, and returns a fresh, independently-owned instance. Two calls
// with the same inputs produce two distinct instances that never share
// mutable state.
//
// The presentation behavior comes in two forms:
//
//   - Car carries Describe as a method, so exactly one copy of the behavior
//     exists program-wide and is shared by every instance.
//   - SelfContained carries Describe as a per-instance bound closure, the
//     shape you get when each object packages its own behavior.
//
// Both forms produce identical output; the difference is how many copies of
// the behavior exist.
package construct
