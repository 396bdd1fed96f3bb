// SPDX-License-Identifier: MIT
//
// completion.go — padding an under-sized candidate set to the seed budget.

package seeding

import "fmt"

// SeedRound is the seed set submitted for one round: exactly k distinct IDs.
type SeedRound []string

// Complete pads partial to exactly k distinct nodes.
//
// Contract:
//   - partial is copied first, in order, dropping repeated IDs.
//   - fallback is then scanned in order; each node not yet present is
//     appended until the round holds k nodes.
//   - The inputs are not modified.
//
// Complete is deterministic and idempotent:
// Complete(Complete(p, k, f), k, f) == Complete(p, k, f).
//
// Errors:
//   - ErrConfiguration if k <= 0.
//   - ErrCandidateOverflow if partial holds more than k distinct nodes.
//   - ErrFallbackExhausted if fallback runs out before k is reached.
//
// Complexity: O(len(partial) + len(fallback)) with set membership.
func Complete(partial []string, k int, fallback []string) (SeedRound, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: seed budget must be positive (%d)", ErrConfiguration, k)
	}

	round := make(SeedRound, 0, k)
	present := make(map[string]struct{}, k)
	for _, id := range partial {
		if _, dup := present[id]; dup {
			continue
		}
		if len(round) == k {
			return nil, fmt.Errorf("%w: more than %d distinct candidates", ErrCandidateOverflow, k)
		}
		present[id] = struct{}{}
		round = append(round, id)
	}

	for _, id := range fallback {
		if len(round) == k {
			break
		}
		if _, dup := present[id]; dup {
			continue
		}
		present[id] = struct{}{}
		round = append(round, id)
	}
	if len(round) < k {
		return nil, fmt.Errorf("%w: reached %d of %d seeds", ErrFallbackExhausted, len(round), k)
	}

	return round, nil
}
