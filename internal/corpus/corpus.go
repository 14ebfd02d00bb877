// Package corpus builds deterministic byte streams for exercising the
// dictionary search subsystem's match-finding paths: highly repetitive
// (long matches, deep chains), pseudo-random (only short chance matches),
// and pathological (many short matches colliding in the same hash
// bucket). Generalized from this module's existing random/compressible test
// data generators, switched from crypto/rand to a seeded math/rand so a
// corpus name plus a seed reproduces the exact same bytes across runs and
// machines, required for fingerprinted golden files and stable benchmark
// comparisons.
package corpus

import (
	"math/rand"

	"github.com/cespare/xxhash/v2"
)

// Random returns size pseudo-random bytes from a generator seeded with
// seed, reproducible across runs.
func Random(size int, seed int64) []byte {
	data := make([]byte, size)
	rand.New(rand.NewSource(seed)).Read(data)
	return data
}

// Repetitive returns size bytes built by tiling pattern, the most
// compressible shape a match finder sees: after the first `len(pattern)`
// bytes, every position is a match candidate at distance len(pattern).
func Repetitive(size int, pattern []byte) []byte {
	if len(pattern) == 0 {
		pattern = []byte("abcdefghijklmnopqrstuvwxyz0123456789")
	}
	data := make([]byte, size)
	for i := 0; i < size; i += len(pattern) {
		n := copy(data[i:], pattern)
		if n < len(pattern) {
			break
		}
	}
	return data
}

// HashCollisions returns size bytes built from a small alphabet so that
// many distinct positions hash to the same H2/H3/H4 bucket, forcing deep
// chain walks and cutValue exhaustion without ever producing a long match.
func HashCollisions(size int, seed int64) []byte {
	const alphabet = "ab"
	r := rand.New(rand.NewSource(seed))
	data := make([]byte, size)
	for i := range data {
		data[i] = alphabet[r.Intn(len(alphabet))]
	}
	return data
}

// Mixed concatenates a repetitive run, a pseudo-random run, and a
// hash-collision run, each sized roughly size/3, to exercise a match
// finder's behavior as it crosses from one regime into another within a
// single window.
func Mixed(size int, seed int64) []byte {
	third := size / 3
	out := make([]byte, 0, size)
	out = append(out, Repetitive(third, nil)...)
	out = append(out, Random(third, seed)...)
	out = append(out, HashCollisions(size-2*third, seed+1)...)
	return out
}

// Fingerprint hashes data with xxhash64, for naming golden files and
// correlating benchmark runs across commits without storing the data
// itself.
func Fingerprint(data []byte) uint64 {
	return xxhash.Sum64(data)
}
