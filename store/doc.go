// Package store persists priced line items in SQLite.
//
// It is the durable counterpart of capsule.Basket: the same operation set
// (add item, count, total), backed by a database/sql handle over
// modernc.org/sqlite instead of hidden in-memory state.
//
// Shared returns a process-wide in-memory store constructed exactly once via
// single.Lazy, which is the usual way this package is consumed in demos and
// tests.
package store
