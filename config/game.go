// SPDX-License-Identifier: MIT
//
// File: game.go
// Role: Game parameters encoded in the graph file name.

package config

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/pandemaniac/seeding"
)

// Game is what the tournament encodes in a graph name
// "<players>.<seeds>.<graph-id>".
type Game struct {
	Players int
	Seeds   int
	ID      string
}

// String renders the game back to its name.
func (g Game) String() string {
	return fmt.Sprintf("%d.%d.%s", g.Players, g.Seeds, g.ID)
}

// ParseGameName parses a graph name. Directories and a trailing ".json" are
// ignored. Players and seeds must be positive integers; the ID is whatever
// follows the second dot and must not be empty.
//
// Errors wrap seeding.ErrConfiguration.
func ParseGameName(name string) (Game, error) {
	base := strings.TrimSuffix(filepath.Base(strings.TrimSpace(name)), ".json")
	parts := strings.SplitN(base, ".", 3)
	if len(parts) != 3 || parts[2] == "" {
		return Game{}, fmt.Errorf("%w: graph name %q is not <players>.<seeds>.<id>", seeding.ErrConfiguration, name)
	}
	players, err := strconv.Atoi(parts[0])
	if err != nil || players <= 0 {
		return Game{}, fmt.Errorf("%w: graph name %q: bad player count %q", seeding.ErrConfiguration, name, parts[0])
	}
	seeds, err := strconv.Atoi(parts[1])
	if err != nil || seeds <= 0 {
		return Game{}, fmt.Errorf("%w: graph name %q: bad seed count %q", seeding.ErrConfiguration, name, parts[1])
	}

	return Game{Players: players, Seeds: seeds, ID: parts[2]}, nil
}
