// SPDX-License-Identifier: MIT
// Package: incarcnet/builder
//
// impl_rate_difference.go — directed rate-difference constructor.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/incarcnet/core"
	"github.com/katalvlaran/incarcnet/record"
)

// RateDifferenceEdges returns a Constructor that adds one vertex per distinct
// jurisdiction (first-seen order) and, for every record pair i<j of distinct
// jurisdictions with |inc_i − inc_j| < cfg.rateGap, an edge from i's vertex
// to j's vertex weighted by the gap.
//
// The target graph must be directed and allow multi-edges.
func RateDifferenceEdges(records []record.Record) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateRecords(MethodRateDifference, records); err != nil {
			return err
		}

		handles := make(map[string]core.Handle, len(records))
		byRecord := make([]core.Handle, len(records))
		for i, r := range records {
			h, seen := handles[r.Jurisdiction]
			if !seen {
				var err error
				if h, err = g.AddVertex(r.Jurisdiction); err != nil {
					return wrapf(MethodRateDifference, fmt.Sprintf("AddVertex(%q): %v", r.Jurisdiction, err), ErrConstructFailed)
				}
				handles[r.Jurisdiction] = h
			}
			byRecord[i] = h
		}

		var i, j int
		for i = 0; i < len(records); i++ {
			for j = i + 1; j < len(records); j++ {
				if byRecord[i] == byRecord[j] {
					continue
				}
				gap := math.Abs(records[i].IncarcerationRate - records[j].IncarcerationRate)
				if gap >= cfg.rateGap {
					continue
				}
				if _, err := g.AddEdge(byRecord[i], byRecord[j], gap); err != nil {
					return builderErrorf(MethodRateDifference, "AddEdge(%d,%d): %w", i, j, err)
				}
			}
		}

		return nil
	}
}
