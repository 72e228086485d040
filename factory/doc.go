// Package factory provides discriminator-driven construction.
//
// A Registry maps a Kind (a string tag) to a Builder. Build selects a builder
// by exact match on the request's Kind; a request with an unrecognized Kind
// silently falls back to the registry's designated default builder instead of
// failing. Callers who prefer an error for unknown tags can use BuildStrict.
//
// Every product reports its own Kind, so results are distinguishable by tag
// rather than by reflection on type names.
package factory
