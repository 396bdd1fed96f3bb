// SPDX-License-Identifier: MIT
//
// random.go — uniform sampling of node indices.

package seeding

import (
	"fmt"
	"math/rand"
	"strconv"
)

// SampleIndices draws k distinct indices from [0, n) uniformly at random using
// a partial Fisher–Yates shuffle over r. The result order is the draw order.
//
// Errors:
//   - ErrConfiguration if r is nil or k <= 0.
//   - ErrInsufficientNodes if k > n.
//
// Complexity: O(n) memory, O(n + k) time.
func SampleIndices(r *rand.Rand, n, k int) ([]int, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: random strategy needs an injected random source", ErrConfiguration)
	}
	if k <= 0 {
		return nil, fmt.Errorf("%w: seed budget must be positive (%d)", ErrConfiguration, k)
	}
	if k > n {
		return nil, fmt.Errorf("%w: %d requested, graph has %d", ErrInsufficientNodes, k, n)
	}

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + r.Intn(n-i)
		perm[i], perm[j] = perm[j], perm[i]
	}

	return perm[:k:k], nil
}

// randomRound renders one sample as decimal strings. The random strategy
// submits node positions, not node IDs; for games whose IDs are 0..n-1 the
// two coincide.
func randomRound(r *rand.Rand, n, k int) (SeedRound, error) {
	idx, err := SampleIndices(r, n, k)
	if err != nil {
		return nil, err
	}
	round := make(SeedRound, k)
	for i, v := range idx {
		round[i] = strconv.Itoa(v)
	}

	return round, nil
}
