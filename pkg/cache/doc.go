// Package cache memoizes parsed API responses under a closed set of
// typed keys.
//
// Two policies share one mechanism:
//
//   - Permanent: slowly-changing reference data (the banner type
//     catalog, the transaction reason dictionary) is keyed by language
//     only. Results are memoized for the cache lifetime, and calls
//     differing only in parameters outside the key projection return
//     the same cached value. This is intentional, not an oversight.
//   - Session: per-account record data is keyed by uid (and language)
//     and can be invalidated or overwritten wholesale.
//
// Keys are a closed set of struct variants rather than free-form
// tuples, so two call sites cannot collide by accident. Each variant
// renders deterministically via String().
//
// GetOrCompute guarantees at most one stored value per key and
// serializes concurrent computes for an identical key through
// singleflight, so parallel paginators never duplicate a network call.
//
// Storage is pluggable: MemoryStore is the per-client default,
// RedisStore shares entries between processes. Store failures on reads
// degrade to a fresh compute instead of failing the call.
//
// Caches are constructed per client, never shared process-wide, so
// independent clients cannot observe each other's entries.
package cache
