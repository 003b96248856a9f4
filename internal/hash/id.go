// Package hash provides the identifier hashing used to index decoded time
// series for O(1) lookup by identifier string.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given identifier string.
func ID(identifier string) uint64 {
	return xxhash.Sum64String(identifier)
}
