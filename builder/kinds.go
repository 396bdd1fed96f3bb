// SPDX-License-Identifier: MIT
// Package: pandemaniac/builder
//
// kinds.go - name-based constructor lookup for the generate command.

package builder

import (
	"fmt"
	"sort"
	"strings"
)

// Topology kinds accepted by ByName.
const (
	KindComplete = "complete"
	KindPath     = "path"
	KindCycle    = "cycle"
	KindStar     = "star"
	KindWheel    = "wheel"
	KindGrid     = "grid"
	KindRandom   = "random"
)

// byName maps each kind to a constructor factory over (n, p). Only
// KindRandom reads p; KindGrid builds an n×n lattice.
var byName = map[string]func(n int, p float64) Constructor{
	KindComplete: func(n int, _ float64) Constructor { return Complete(n) },
	KindPath:     func(n int, _ float64) Constructor { return Path(n) },
	KindCycle:    func(n int, _ float64) Constructor { return Cycle(n) },
	KindStar:     func(n int, _ float64) Constructor { return Star(n) },
	KindWheel:    func(n int, _ float64) Constructor { return Wheel(n) },
	KindGrid:     func(n int, _ float64) Constructor { return Grid(n, n) },
	KindRandom:   RandomSparse,
}

// Kinds returns the accepted kind names, sorted.
func Kinds() []string {
	out := make([]string, 0, len(byName))
	for k := range byName {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// ByName returns the constructor for kind (case-insensitive).
// Parameter validation is deferred to the constructor itself.
func ByName(kind string, n int, p float64) (Constructor, error) {
	mk, ok := byName[strings.ToLower(strings.TrimSpace(kind))]
	if !ok {
		return nil, fmt.Errorf("ByName: %q (want one of %s): %w",
			kind, strings.Join(Kinds(), ", "), ErrUnknownKind)
	}

	return mk(n, p), nil
}
