// Package hashing provides the deterministic hash function used throughout the
// offer engine, both as a pseudo-random selector and as the content-identity
// fingerprint for generated entities.
//
// The algorithm is 32-bit FNV-1a and is frozen: content hashes computed with it
// are stored durably, so changing the algorithm would orphan every existing row.
package hashing

import (
	"hash/fnv"
	"strings"
)

// Sum returns the 32-bit FNV-1a hash of the given string.
func Sum(s string) uint32 {
	h := fnv.New32a()
	// fnv.Write never returns an error.
	_, _ = h.Write([]byte(s))
	return h.Sum32()
}

// SumParts hashes the given parts joined by a '|' separator. Joining with a
// separator keeps ("ab","c") and ("a","bc") distinct.
func SumParts(parts ...string) uint32 {
	return Sum(strings.Join(parts, "|"))
}

// Pick selects an index in [0, n) from the hash of seed.
// It returns 0 when n <= 0 so that selection never panics.
func Pick(seed string, n int) int {
	if n <= 0 {
		return 0
	}
	return int(Sum(seed) % uint32(n))
}
