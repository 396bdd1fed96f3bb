// Package prim_kruskal defines configuration options and sentinel errors for
// spanning tree / spanning forest computation over a *core.Graph.
package prim_kruskal

import (
	"errors"

	"github.com/katalvlaran/pandemaniac/core"
)

// ErrInvalidGraph indicates a nil graph or an unknown method name.
var ErrInvalidGraph = errors.New("prim_kruskal: invalid graph or method")

// ErrEmptyRoot indicates that no start vertex was specified for Prim.
// Prim cannot run without a valid root string.
var ErrEmptyRoot = errors.New("prim_kruskal: empty root vertex")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// UnitWeight is the weight every edge carries under the default WeightFn.
const UnitWeight int64 = 1

// WeightFn assigns a cost to the undirected edge {from, to}.
// It must be symmetric: fn(u,v) == fn(v,u).
type WeightFn func(from, to string) int64

// Unit is the default WeightFn: every edge costs UnitWeight, so any spanning
// forest is minimal and the edge enumeration order alone decides which one
// is returned.
func Unit(string, string) int64 { return UnitWeight }

// MSTOptions configures which algorithm to run, Prim's starting vertex and
// the edge weights.
//
// Fields:
//
//	Method string   — one of MethodPrim or MethodKruskal.
//	Root   string   — start vertex ID for Prim; ignored by Kruskal and Forest.
//	Weight WeightFn — edge cost; nil means Unit.
//
// Complexity: O(E log V) for Prim, O(E log E + α(V)·E) for Kruskal.
type MSTOptions struct {
	Method string
	Root   string
	Weight WeightFn
}

// Option configures MSTOptions. All Option functions should modify the pointed MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm.
func WithRoot(root string) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// WithWeight returns an Option that installs a custom edge cost.
func WithWeight(fn WeightFn) Option {
	return func(opts *MSTOptions) {
		opts.Weight = fn
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal with unit weights.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   "",
		Weight: Unit,
	}
}

// NewOptions applies opts on top of DefaultOptions.
func NewOptions(opts ...Option) MSTOptions {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Weight == nil {
		o.Weight = Unit
	}

	return o
}

// Compute selects and runs the algorithm based on opts.Method.
//
//	– MethodKruskal: Kruskal(graph, opts.Weight) — a spanning forest.
//	– MethodPrim:    Prim(graph, opts.Root, opts.Weight) — the tree of Root's component.
//	– Otherwise:     ErrInvalidGraph.
func Compute(graph *core.Graph, opts MSTOptions) ([]core.Edge, int64, error) {
	w := opts.Weight
	if w == nil {
		w = Unit
	}
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(graph, w)
	case MethodPrim:
		return Prim(graph, opts.Root, w)
	default:
		return nil, 0, ErrInvalidGraph
	}
}
