// Package centrality provides tunable options, score containers and error
// definitions for the node ranking functions.
package centrality

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/pandemaniac/core"
)

// Sentinel errors for centrality computation.
var (
	// ErrInsufficientNodes is returned by Rank when the graph has fewer
	// vertices than the requested number of seeds. Rankers never pad.
	ErrInsufficientNodes = errors.New("centrality: fewer nodes than requested seeds")

	// ErrNoConvergence is returned when a power iteration does not meet its
	// tolerance within the iteration budget.
	ErrNoConvergence = errors.New("centrality: power iteration did not converge")

	// ErrEmptyGraph is returned by measures that are undefined on a graph
	// without vertices (eigenvector centrality).
	ErrEmptyGraph = errors.New("centrality: graph has no vertices")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("centrality: invalid option supplied")
)

// Score is the centrality value of one node.
type Score struct {
	ID    string
	Value float64
}

// Scores holds one Score per vertex in score-computation order, which is the
// vertex order of the graph the scores were computed on.
type Scores []Score

// Map returns the scores as a plain node -> value mapping.
func (s Scores) Map() map[string]float64 {
	m := make(map[string]float64, len(s))
	for _, sc := range s {
		m[sc.ID] = sc.Value
	}

	return m
}

// IDs returns the node IDs in score-computation order.
func (s Scores) IDs() []string {
	ids := make([]string, len(s))
	for i, sc := range s {
		ids[i] = sc.ID
	}

	return ids
}

// Func computes a centrality score for every vertex of g.
type Func func(g *core.Graph, opts ...Option) (Scores, error)

// Option configures the iterative measures via functional arguments.
// If an Option is invalid (e.g. negative tolerance), it is recorded
// internally and surfaced as ErrOptionViolation when the measure runs.
type Option func(*Options)

// Options holds the numeric parameters of the iterative measures.
// Measures that are not iterative ignore them.
type Options struct {
	// Tolerance is the per-node convergence tolerance; the iteration stops
	// once the L1 change is below n·Tolerance.
	Tolerance float64

	// MaxIter bounds the number of power iterations.
	MaxIter int

	// Alpha is the Katz attenuation factor; it must be below 1/λmax.
	Alpha float64

	// Beta is the Katz exogenous weight given to every node.
	Beta float64

	// internal error recorded during option parsing
	err error
}

// Defaults of the iterative measures.
const (
	DefaultTolerance          = 1e-6
	DefaultEigenvectorMaxIter = 100
	DefaultKatzMaxIter        = 1000
	DefaultKatzAlpha          = 0.1
	DefaultKatzBeta           = 1.0
)

// WithTolerance sets the convergence tolerance (must be > 0).
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if !(tol > 0) || math.IsInf(tol, 0) {
			o.err = fmt.Errorf("%w: tolerance must be positive and finite (%g)", ErrOptionViolation, tol)
			return
		}
		o.Tolerance = tol
	}
}

// WithMaxIter sets the iteration budget (must be > 0).
func WithMaxIter(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: max iterations must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIter = n
	}
}

// WithAlpha sets the Katz attenuation factor (must be > 0).
func WithAlpha(alpha float64) Option {
	return func(o *Options) {
		if !(alpha > 0) || math.IsInf(alpha, 0) {
			o.err = fmt.Errorf("%w: alpha must be positive and finite (%g)", ErrOptionViolation, alpha)
			return
		}
		o.Alpha = alpha
	}
}

// WithBeta sets the Katz exogenous weight (must be finite).
func WithBeta(beta float64) Option {
	return func(o *Options) {
		if math.IsNaN(beta) || math.IsInf(beta, 0) {
			o.err = fmt.Errorf("%w: beta must be finite (%g)", ErrOptionViolation, beta)
			return
		}
		o.Beta = beta
	}
}

// resolve applies opts over base and returns the first recorded violation.
func resolve(base Options, opts []Option) (Options, error) {
	o := base
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
		if o.err != nil {
			return o, o.err
		}
	}

	return o, nil
}
