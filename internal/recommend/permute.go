package recommend

import (
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"
)

// PermuteFunc returns a reproducible ordering of the indices 0..poolSize-1 for a seed.
type PermuteFunc func(poolSize int, seed string) []int

// Permute is a seeded Fisher-Yates shuffle of 0..poolSize-1. The seed string is hashed
// with xxhash64 into a PCG source, so the same seed always yields the same order.
func Permute(poolSize int, seed string) []int {
	if poolSize <= 0 {
		return nil
	}

	order := make([]int, poolSize)
	for i := range order {
		order[i] = i
	}

	h := xxhash.Sum64String(seed)
	rng := rand.New(rand.NewPCG(h, h^0x9e3779b97f4a7c15)) //nolint:gosec // phrase selection, not security
	for i := poolSize - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		order[i], order[j] = order[j], order[i]
	}
	return order
}

// sequence builds the per-rank phrase order for one pool. A permutation shorter than
// MaxRecommendations is extended once with an independently seeded second permutation.
func sequence(permute PermuteFunc, poolSize int, seed string) []int {
	seq := permute(poolSize, seed)
	if len(seq) > 0 && len(seq) < MaxRecommendations {
		seq = append(seq, permute(poolSize, seed+"_ext")...)
	}
	return seq
}
