// SPDX-License-Identifier: MIT
// Package: incarcnet/builder
//
// impl_similarity.go — undirected similarity constructor and score.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/incarcnet/core"
	"github.com/katalvlaran/incarcnet/record"
)

// SimilarityScore is
//
//	1 − (|crime_a − crime_b| + |inc_a − inc_b|) / max(1, crime_a+crime_b+inc_a+inc_b)
//
// Identical rate profiles score 1. For non-negative rates the score lies in [0,1].
func SimilarityScore(a, b record.Record) float64 {
	diff := math.Abs(a.CrimeRate-b.CrimeRate) + math.Abs(a.IncarcerationRate-b.IncarcerationRate)
	total := a.CrimeRate + b.CrimeRate + a.IncarcerationRate + b.IncarcerationRate

	return 1 - diff/math.Max(minScoreDenominator, total)
}

// SimilarityEdges returns a Constructor that adds one vertex per record
// (labels may repeat) and an undirected edge {i,j}, i<j, whenever
// cfg.scoreFn(records[i], records[j]) > cfg.simThreshold.
func SimilarityEdges(records []record.Record) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateRecords(MethodSimilarity, records); err != nil {
			return err
		}

		handles := make([]core.Handle, len(records))
		for i, r := range records {
			h, err := g.AddVertex(r.Jurisdiction)
			if err != nil {
				return wrapf(MethodSimilarity, fmt.Sprintf("AddVertex(%q): %v", r.Jurisdiction, err), ErrConstructFailed)
			}
			handles[i] = h
		}

		for i := 0; i < len(records); i++ {
			for j := i + 1; j < len(records); j++ {
				score := cfg.scoreFn(records[i], records[j])
				if !(score > cfg.simThreshold) {
					continue
				}
				if _, err := g.AddEdge(handles[i], handles[j], score); err != nil {
					return builderErrorf(MethodSimilarity, "AddEdge(%d,%d): %w", i, j, err)
				}
			}
		}

		return nil
	}
}
