// SPDX-License-Identifier: MIT
// Package: incarcnet/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Builders themselves never panic.

package builder

import (
	"fmt"
	"math"
)

// BuilderOption customizes a constructor by mutating builderConfig before
// construction begins.
type BuilderOption func(*builderConfig)

// WithRateGapThreshold replaces the 50-unit gap bound of RateDifference.
// Panics unless t is finite and > 0.
func WithRateGapThreshold(t float64) BuilderOption {
	if !(t > 0) || math.IsInf(t, 0) {
		panic(fmt.Sprintf("builder: WithRateGapThreshold(%v): must be finite and > 0", t))
	}
	return func(c *builderConfig) { c.rateGap = t }
}

// WithSimilarityThreshold replaces the 0.7 score bound of Similarity.
// Panics unless 0 <= t < 1.
func WithSimilarityThreshold(t float64) BuilderOption {
	if !(t >= 0 && t < 1) {
		panic(fmt.Sprintf("builder: WithSimilarityThreshold(%v): must be in [0,1)", t))
	}
	return func(c *builderConfig) { c.simThreshold = t }
}

// WithScoreFn overrides SimilarityScore. Panics on nil.
func WithScoreFn(fn ScoreFn) BuilderOption {
	if fn == nil {
		panic("builder: WithScoreFn(nil)")
	}
	return func(c *builderConfig) { c.scoreFn = fn }
}
