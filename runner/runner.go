// SPDX-License-Identifier: MIT
//
// File: runner.go
// Role: One game run: load the graph, execute every requested strategy
//       independently, write one schedule file per strategy.

package runner

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/katalvlaran/pandemaniac/bfs"
	"github.com/katalvlaran/pandemaniac/config"
	"github.com/katalvlaran/pandemaniac/graphio"
	"github.com/katalvlaran/pandemaniac/seeding"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// ErrStrategyFailed is returned by Summary when at least one strategy of a
// run did not produce its file.
var ErrStrategyFailed = errors.New("runner: strategy failed")

// Result reports the outcome of one strategy.
type Result struct {
	// Tag is the lower-cased tag as requested.
	Tag      string
	Strategy seeding.Strategy
	// Path is the schedule file; empty when the strategy failed.
	Path    string
	Seeds   int
	Elapsed time.Duration
	Err     error
}

// Runner executes strategies for a configuration.
type Runner struct {
	cfg    *config.Config
	logger *log.Entry
	clock  func() time.Time
}

// New returns a Runner logging through logger.
func New(cfg *config.Config, logger *log.Logger) *Runner {
	return &Runner{
		cfg:    cfg,
		logger: logger.WithField("component", "runner"),
		clock:  time.Now,
	}
}

// Run plays graphPath with the given strategy tags.
//
// A malformed graph name, an unreadable graph or an unusable seed budget
// aborts the run with an error. Anything that goes wrong inside a single
// strategy, including an unknown tag, is recorded in that strategy's Result
// and the remaining strategies still run. Cancelling ctx stops the run
// before the next strategy.
func (r *Runner) Run(ctx context.Context, graphPath string, tags []string) ([]Result, error) {
	if len(tags) == 0 {
		return nil, fmt.Errorf("%w: no strategies requested", seeding.ErrConfiguration)
	}
	game, err := config.ParseGameName(graphPath)
	if err != nil {
		return nil, err
	}
	file := graphio.GraphPath(graphPath)
	g, err := graphio.LoadGraph(file)
	if err != nil {
		return nil, err
	}

	stats, err := bfs.Summarize(g)
	if err != nil {
		return nil, err
	}

	seed := r.cfg.Seed
	if seed == 0 {
		seed = r.clock().UnixNano()
	}
	runLog := r.logger.WithFields(log.Fields{
		"graph":      file,
		"nodes":      g.VertexCount(),
		"edges":      g.EdgeCount(),
		"components": stats.Components,
		"largest":    stats.Largest,
		"seeds":      game.Seeds,
		"iterations": r.cfg.Iterations,
		"rand_seed":  seed,
	})
	runLog.Info("graph loaded")

	opts := append(r.cfg.EngineOptions(), seeding.WithRand(rand.New(rand.NewSource(seed))))
	engine, err := seeding.NewEngine(g, game.Seeds, r.cfg.Iterations, opts...)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(r.cfg.OutputDir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create output dir %s", r.cfg.OutputDir)
	}

	results := make([]Result, 0, len(tags))
	for _, tag := range tags {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		res := r.runOne(engine, file, tag)
		entry := runLog.WithFields(log.Fields{"strategy": res.Tag, "elapsed": res.Elapsed})
		if res.Err != nil {
			entry.WithError(res.Err).Error("strategy failed")
		} else {
			entry.WithField("path", res.Path).Infof("%s successfully generated.", res.Tag)
		}
		results = append(results, res)
	}

	return results, nil
}

// runOne executes a single strategy and writes its file.
func (r *Runner) runOne(engine *seeding.Engine, graphFile, tag string) (res Result) {
	start := r.clock()
	res = Result{Tag: strings.ToLower(strings.TrimSpace(tag)), Seeds: engine.K()}
	defer func() { res.Elapsed = r.clock().Sub(start) }()

	s, err := seeding.ParseStrategy(tag)
	if err != nil {
		res.Err = err
		return res
	}
	res.Strategy = s

	sched, err := engine.Schedule(s)
	if err != nil {
		res.Err = err
		return res
	}
	path := graphio.OutputPath(r.cfg.OutputDir, graphFile, s.Tag())
	if err := graphio.SaveSchedule(path, sched); err != nil {
		res.Err = err
		return res
	}
	res.Path = path

	return res
}

// Summary returns nil when every strategy succeeded and an error wrapping
// ErrStrategyFailed naming the failed tags otherwise.
func Summary(results []Result) error {
	var failed []string
	for _, res := range results {
		if res.Err != nil {
			failed = append(failed, res.Tag)
		}
	}
	if len(failed) == 0 {
		return nil
	}

	return errors.Wrapf(ErrStrategyFailed, "%d of %d (%s)", len(failed), len(results), strings.Join(failed, " "))
}
