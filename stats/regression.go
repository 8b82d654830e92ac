// SPDX-License-Identifier: MIT
//
// File: regression.go
// Role: least-squares fits of crime rate (y) on incarceration rate (x).

package stats

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/incarcnet/record"
)

var (
	// ErrInsufficientData indicates too few observations for a fit or test.
	ErrInsufficientData = errors.New("stats: insufficient data")

	// ErrSingular indicates a rank-deficient least-squares system.
	ErrSingular = errors.New("stats: singular system")
)

// LinearFit is y = Slope*x + Intercept.
type LinearFit struct {
	Slope     float64
	Intercept float64
	RSquared  float64
	N         int
}

// Predict evaluates the fit at x.
func (f LinearFit) Predict(x float64) float64 { return f.Slope*x + f.Intercept }

func (f LinearFit) String() string {
	return fmt.Sprintf("y = %.4fx + %.4f (R²=%.4f, n=%d)", f.Slope, f.Intercept, f.RSquared, f.N)
}

// QuadraticFit is y = A*x² + B*x + C.
type QuadraticFit struct {
	A, B, C float64
	N       int
}

// Predict evaluates the fit at x.
func (f QuadraticFit) Predict(x float64) float64 { return f.A*x*x + f.B*x + f.C }

func (f QuadraticFit) String() string {
	return fmt.Sprintf("y = %.4fx² + %.4fx + %.4f (n=%d)", f.A, f.B, f.C, f.N)
}

// LogFit is y = A + B*ln(x+1). The +1 keeps zero incarceration rates finite.
type LogFit struct {
	A, B     float64
	RSquared float64
	N        int
}

// Predict evaluates the fit at x.
func (f LogFit) Predict(x float64) float64 { return f.A + f.B*math.Log(x+1) }

func (f LogFit) String() string {
	return fmt.Sprintf("y = %.4f + %.4f·ln(x+1) (R²=%.4f, n=%d)", f.A, f.B, f.RSquared, f.N)
}

// Linear fits crime rate on incarceration rate by ordinary least squares.
// At least two records with distinct incarceration rates are required.
func Linear(records []record.Record) (LinearFit, error) {
	x := record.IncarcerationRates(records)
	y := record.CrimeRates(records)
	alpha, beta, r2, err := simpleOLS(x, y)
	if err != nil {
		return LinearFit{}, fmt.Errorf("stats: linear: %w", err)
	}

	return LinearFit{Slope: beta, Intercept: alpha, RSquared: r2, N: len(x)}, nil
}

// Logarithmic fits y = a + b*ln(x+1) by regressing y on the transformed x.
func Logarithmic(records []record.Record) (LogFit, error) {
	x := record.IncarcerationRates(records)
	for i := range x {
		x[i] = math.Log(x[i] + 1)
	}
	alpha, beta, r2, err := simpleOLS(x, record.CrimeRates(records))
	if err != nil {
		return LogFit{}, fmt.Errorf("stats: logarithmic: %w", err)
	}

	return LogFit{A: alpha, B: beta, RSquared: r2, N: len(x)}, nil
}

// Quadratic fits y = a x² + b x + c by least squares over the design matrix
// [x² x 1]. Fewer than three records yields ErrInsufficientData; fewer than
// three distinct x values yields ErrSingular.
func Quadratic(records []record.Record) (QuadraticFit, error) {
	n := len(records)
	if n < 3 {
		return QuadraticFit{}, fmt.Errorf("stats: quadratic: %w: need 3 records, have %d", ErrInsufficientData, n)
	}

	design := mat.NewDense(n, 3, nil)
	y := mat.NewVecDense(n, nil)
	distinct := make(map[float64]struct{}, 3)
	for i, r := range records {
		x := r.IncarcerationRate
		design.Set(i, 0, x*x)
		design.Set(i, 1, x)
		design.Set(i, 2, 1)
		y.SetVec(i, r.CrimeRate)
		distinct[x] = struct{}{}
	}
	if len(distinct) < 3 {
		return QuadraticFit{}, fmt.Errorf("stats: quadratic: %w: %d distinct incarceration rates", ErrSingular, len(distinct))
	}

	var coef mat.VecDense
	if err := coef.SolveVec(design, y); err != nil {
		var cond mat.Condition
		if errors.As(err, &cond) {
			return QuadraticFit{}, fmt.Errorf("stats: quadratic: %w: %v", ErrSingular, err)
		}
		return QuadraticFit{}, fmt.Errorf("stats: quadratic: %w", err)
	}

	return QuadraticFit{A: coef.AtVec(0), B: coef.AtVec(1), C: coef.AtVec(2), N: n}, nil
}

// simpleOLS wraps stat.LinearRegression with the preconditions it leaves to
// the caller.
func simpleOLS(x, y []float64) (alpha, beta, r2 float64, err error) {
	if len(x) < 2 {
		return 0, 0, 0, fmt.Errorf("%w: need 2 observations, have %d", ErrInsufficientData, len(x))
	}
	if _, variance := stat.MeanVariance(x, nil); variance == 0 {
		return 0, 0, 0, fmt.Errorf("%w: regressor has zero variance", ErrInsufficientData)
	}

	alpha, beta = stat.LinearRegression(x, y, nil, false)
	r2 = stat.RSquared(x, y, nil, alpha, beta)

	return alpha, beta, r2, nil
}
