// SPDX-License-Identifier: MIT
// Package: incarcnet/builder
//
// constants.go — canonical method names and default thresholds.

package builder

// Builder method name constants, used as error context.
const (
	// MethodRateDifference is the canonical name for the RateDifference constructor.
	MethodRateDifference = "RateDifference"
	// MethodSimilarity is the canonical name for the Similarity constructor.
	MethodSimilarity = "Similarity"
)

// Default thresholds.
const (
	// RateGapThreshold is the exclusive upper bound on the incarceration-rate
	// gap (per 100 000) for a rate-difference edge.
	RateGapThreshold = 50.0

	// SimilarityThreshold is the exclusive lower bound on SimilarityScore
	// for a similarity edge.
	SimilarityThreshold = 0.7

	// minScoreDenominator keeps SimilarityScore finite for all-zero rates.
	minScoreDenominator = 1.0
)
