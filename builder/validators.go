// SPDX-License-Identifier: MIT
// Package: incarcnet/builder
//
// validators.go — input checks run before any vertex is created.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/incarcnet/record"
)

// validateRecords reports the first record the builders cannot use.
// Only jurisdiction and the two rates matter here; raw counts are ignored
// so callers may hand in rate-only records.
func validateRecords(method string, records []record.Record) error {
	for i, r := range records {
		switch {
		case r.Jurisdiction == "":
			return wrapf(method, fmt.Sprintf("record %d: empty jurisdiction", i), ErrInvalidRecord)
		case !validRate(r.IncarcerationRate):
			return wrapf(method, fmt.Sprintf("record %d (%s): incarceration rate %v", i, r.Jurisdiction, r.IncarcerationRate), ErrInvalidRecord)
		case !validRate(r.CrimeRate):
			return wrapf(method, fmt.Sprintf("record %d (%s): crime rate %v", i, r.Jurisdiction, r.CrimeRate), ErrInvalidRecord)
		}
	}

	return nil
}

func validRate(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0)
}
