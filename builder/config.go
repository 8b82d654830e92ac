// SPDX-License-Identifier: MIT
// Package: incarcnet/builder
//
// config.go — resolved builder configuration.

package builder

import "github.com/katalvlaran/incarcnet/record"

// ScoreFn scores the closeness of two records; higher is closer.
type ScoreFn func(a, b record.Record) float64

// builderConfig holds every knob a constructor may read.
// It is resolved once per build from BuilderOption values.
type builderConfig struct {
	rateGap      float64 // exclusive upper bound for rate-difference edges
	simThreshold float64 // exclusive lower bound for similarity edges
	scoreFn      ScoreFn // similarity scoring
}

// newBuilderConfig applies opts over the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rateGap:      RateGapThreshold,
		simThreshold: SimilarityThreshold,
		scoreFn:      SimilarityScore,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
