// SPDX-License-Identifier: MIT
// Package: incarcnet/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - RateDifference and Similarity are thin wrappers over BuildGraph with the
//     graph flags each variant needs.
//   - Determinism: same records, same order, same options ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/incarcnet/core"
	"github.com/katalvlaran/incarcnet/record"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate early, return sentinel errors and
// never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for _, c := range cons {
		if err := c(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// RateDifference builds the directed rate-difference multigraph over the
// distinct jurisdictions of records.
//
// Complexity: O(n²) time, O(V+E) space.
func RateDifference(records []record.Record, opts ...BuilderOption) (*core.Graph, error) {
	return BuildGraph(
		[]core.GraphOption{core.WithDirected(true), core.WithMultiEdges()},
		opts,
		RateDifferenceEdges(records),
	)
}

// Similarity builds the undirected similarity graph with one vertex per record.
//
// Complexity: O(n²) time, O(V+E) space.
func Similarity(records []record.Record, opts ...BuilderOption) (*core.Graph, error) {
	return BuildGraph(
		[]core.GraphOption{core.WithDirected(false)},
		opts,
		SimilarityEdges(records),
	)
}
