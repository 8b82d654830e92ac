package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// TTestResult is the outcome of a pooled two-sample Student t-test.
type TTestResult struct {
	T      float64
	P      float64
	DF     float64
	MeanX  float64
	MeanY  float64
	NX, NY int
}

// Significant reports whether P < alpha.
func (r TTestResult) Significant(alpha float64) bool { return r.P < alpha }

// TTest compares the means of x and y assuming equal variances and returns
// the two-sided p-value. Each sample needs at least two observations.
//
// When both samples have zero variance T is ±Inf (P = 0) for different means
// and 0 (P = 1) for equal means.
func TTest(x, y []float64) (TTestResult, error) {
	nx, ny := len(x), len(y)
	if nx < 2 || ny < 2 {
		return TTestResult{}, fmt.Errorf("stats: t-test: %w: sample sizes %d and %d", ErrInsufficientData, nx, ny)
	}

	mx, vx := stat.MeanVariance(x, nil)
	my, vy := stat.MeanVariance(y, nil)
	df := float64(nx + ny - 2)
	pooled := (float64(nx-1)*vx + float64(ny-1)*vy) / df
	se := math.Sqrt(pooled * (1/float64(nx) + 1/float64(ny)))

	res := TTestResult{DF: df, MeanX: mx, MeanY: my, NX: nx, NY: ny}
	switch {
	case se > 0:
		res.T = (mx - my) / se
	case mx == my:
		res.T = 0
	default:
		res.T = math.Copysign(math.Inf(1), mx-my)
	}

	if math.IsInf(res.T, 0) {
		return res, nil
	}
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	res.P = math.Min(1, 2*dist.Survival(math.Abs(res.T)))

	return res, nil
}
