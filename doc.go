// Package kompo packages a small catalogue of object-composition idioms as
// real, importable Go packages.
//
// Each idiom lives in its own package and stands alone:
//
//   - capsule: encapsulated-state containers (module idiom), plus a revealing
//     variant whose public surface is assembled from bound function values.
//   - construct: parameterized object initializers with documented defaults,
//     in both a shared-method and a per-instance closure form.
//   - single: a generic one-time-initialization container (Lazy) that
//     guarantees exactly one construction even under concurrent first access.
//   - factory: discriminator-driven construction with a designated default
//     builder for unrecognized tags.
//   - store: a SQLite-backed ledger whose process-wide handle is owned by a
//     single.Lazy, showing the singleton idiom guarding a real resource.
//
// The goal is to keep each pattern explicit and dependency-light: no
// reflection-driven containers, no hidden wiring, small API surfaces that are
// easy to lift into other repos.
//
// Start with the examples directory for end-to-end usage, or cmd/kompo for a
// CLI walkthrough of every package.
package kompo
