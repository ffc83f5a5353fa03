// internal/bench/data.go
package bench

import (
	"math/rand"

	"github.com/dolthub/maphash"

	"github.com/lattice-tree/obtree/internal/obtree"
)

// hashKey is the (seed, index) pair hashed into a pseudo-random Key by the
// hashed-pseudorandom generator below. Hashing a struct of two comparable
// fields, rather than reseeding a global RNG, makes the sequence
// reproducible for a given (seed, count) - see SPEC_FULL.md §4.6.
type hashKey struct {
	seed  uint64
	index uint64
}

// Dataset is a fixed sequence of keys to feed into a Tree or a linear
// baseline, mirroring original_source/sqlite-btree-analysis/src/benchmark.c's
// test_data_t.
type Dataset struct {
	Name string
	Keys []obtree.Key
}

// GenerateSequential produces the keys 1..count in order.
func GenerateSequential(count int) Dataset {
	keys := make([]obtree.Key, count)
	for i := range keys {
		keys[i] = obtree.Key(i + 1)
	}
	return Dataset{Name: "sequential", Keys: keys}
}

// GenerateHashedPseudorandom produces count keys derived by hashing
// (seed, index) through a 64-bit hash. Unlike the original benchmark's
// rand()*rand()+i (which depends on process-global RNG state and so differs
// run to run), the same (seed, count) always yields the same sequence.
// Collisions remain possible, exactly as in the original generator, and are
// accepted as upserts by Tree.Insert (SPEC_FULL.md §9's "Unique-key random
// data" open question).
func GenerateHashedPseudorandom(count int, seed uint64) Dataset {
	hasher := maphash.NewHasher[hashKey]()
	keys := make([]obtree.Key, count)
	for i := range keys {
		h := hasher.Hash(hashKey{seed: seed, index: uint64(i)})
		// Shift right by one so the value fits a non-negative signed 64-bit
		// Key; the hash's lowest bit is dropped.
		keys[i] = obtree.Key(int64(h >> 1))
	}
	return Dataset{Name: "hashed-pseudorandom", Keys: keys}
}

// Shuffle returns a copy of d with its keys permuted by a seeded
// Fisher-Yates shuffle, mirroring shuffle_data in the original benchmark.
func Shuffle(d Dataset, seed int64) Dataset {
	keys := make([]obtree.Key, len(d.Keys))
	copy(keys, d.Keys)

	r := rand.New(rand.NewSource(seed))
	for i := len(keys) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		keys[i], keys[j] = keys[j], keys[i]
	}
	return Dataset{Name: d.Name + "-shuffled", Keys: keys}
}
