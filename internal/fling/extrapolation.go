// SPDX-License-Identifier: Unlicense OR MIT

package fling

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Extrapolation computes a 1-dimensional velocity estimate
// for a set of timestamped points using the least squares
// fit of a 2nd order polynomial. The same method is used
// by Android.
type Extrapolation struct {
	// Index into points.
	idx int
	// Circular buffer of samples.
	samples   []sample
	lastValue float32
	// Pre-allocated cache for samples.
	cache [historySize]sample

	// Filtered values and times
	values [historySize]float32
	times  [historySize]float32
}

type sample struct {
	t time.Duration
	v float32
}

// matrix is a row-major matrix.
type matrix struct {
	rows, cols int
	data       []float32
}

// Estimate is the result of an Extrapolation.
type Estimate struct {
	// Velocity is the estimated velocity in units per second.
	Velocity float32
	// Distance is the distance covered by the samples used
	// for the estimate.
	Distance float32
}

// coefficients of a polynomial, lowest degree first.
type coefficients [degree + 1]float32

const (
	degree       = 2
	historySize  = 20
	maxAge       = 100 * time.Millisecond
	maxSampleGap = 40 * time.Millisecond
)

// SampleDelta adds a relative sample to the estimation.
func (e *Extrapolation) SampleDelta(t time.Duration, delta float32) {
	val := delta + e.lastValue
	e.Sample(t, val)
}

// Sample adds an absolute sample to the estimation.
func (e *Extrapolation) Sample(t time.Duration, val float32) {
	e.lastValue = val
	if e.samples == nil {
		e.samples = e.cache[:0]
	}
	s := sample{
		t: t,
		v: val,
	}
	if e.idx == len(e.samples) && e.idx < cap(e.samples) {
		e.samples = append(e.samples, s)
	} else {
		e.samples[e.idx] = s
	}
	e.idx++
	if e.idx == cap(e.samples) {
		e.idx = 0
	}
}

// Estimate returns an estimate of the implied velocity and
// distance for the points sampled, or the zero Estimate if the
// estimation method failed.
func (e *Extrapolation) Estimate() Estimate {
	if len(e.samples) == 0 {
		return Estimate{}
	}
	values := e.values[:0]
	times := e.times[:0]
	first := e.get(0)
	t := first.t
	// Walk backwards collecting samples.
	for i := 0; i < len(e.samples); i++ {
		p := e.get(-i)
		age := first.t - p.t
		if age >= maxAge || t-p.t >= maxSampleGap {
			// If the samples are too old or
			// too much time passed between samples
			// assume they're not part of the fling.
			break
		}
		t = p.t
		values = append(values, p.v-first.v)
		times = append(times, float32((p.t - first.t).Seconds()))
	}
	coef, ok := polyFit(times, values)
	if !ok {
		return Estimate{}
	}
	dist := values[0] - values[len(values)-1]
	return Estimate{
		Velocity: coef[1],
		Distance: dist,
	}
}

func (e *Extrapolation) get(i int) sample {
	idx := (e.idx + i - 1 + len(e.samples)) % len(e.samples)
	return e.samples[idx]
}

// polyFit computes the least squares polynomial fit for
// the set of points in X, Y. If the fitting fails
// because of contradicting or insufficient data,
// polyFit returns false.
func polyFit(X, Y []float32) (coefficients, bool) {
	if len(X) != len(Y) {
		panic("X and Y lengths differ")
	}
	if len(X) <= degree {
		// Not enough points to fit a curve.
		return coefficients{}, false
	}

	// Use a method of least squares algorithm
	// fitting a curve by minimizing the sum of the squared residuals.
	A := newMatrix(len(X), degree+1)
	// Initialize Vandermonde matrix A.
	for i, x := range X {
		A.set(i, 0, 1)
		for j := 1; j < A.cols; j++ {
			A.set(i, j, A.get(i, j-1)*x)
		}
	}

	Q, R, ok := decomposeQR(A)
	if !ok {
		return coefficients{}, false
	}
	// Solve R*B = Qt*Y for B, which is then the polynomial coefficients.
	// Since R is upper triangular, we can proceed from bottom right to
	// upper left.
	// https://en.wikipedia.org/wiki/Non-linear_least_squares
	var B coefficients
	for i := R.rows - 1; i >= 0; i-- {
		var qty float32
		for k := 0; k < Q.rows; k++ {
			qty += Q.get(k, i) * Y[k]
		}
		for j := R.cols - 1; j > i; j-- {
			qty -= R.get(i, j) * B[j]
		}
		B[i] = qty / R.get(i, i)
	}
	return B, true
}

// decomposeQR computes and returns Q, R where Q*R = A, if
// possible. Q has orthonormal columns and R is square and upper
// triangular.
func decomposeQR(A *matrix) (*matrix, *matrix, bool) {
	// Modified Gram-Schmidt QR decompose A where Q*R = A.
	// https://en.wikipedia.org/wiki/Gram–Schmidt_process
	Q := newMatrix(A.rows, A.cols)
	R := newMatrix(A.cols, A.cols)
	copy(Q.data, A.data)
	for i := 0; i < Q.cols; i++ {
		// Normalize column i.
		n := Q.colNorm(i)
		if n < 0.000001 {
			// Degenerate data, no solution.
			return nil, nil, false
		}
		R.set(i, i, n)
		invNorm := 1 / n
		for k := 0; k < Q.rows; k++ {
			Q.set(k, i, Q.get(k, i)*invNorm)
		}
		// Subtract the projection onto column i from the
		// remaining columns.
		for j := i + 1; j < Q.cols; j++ {
			var d float32
			for k := 0; k < Q.rows; k++ {
				d += Q.get(k, i) * Q.get(k, j)
			}
			R.set(i, j, d)
			for k := 0; k < Q.rows; k++ {
				Q.set(k, j, Q.get(k, j)-d*Q.get(k, i))
			}
		}
	}
	return Q, R, true
}

func newMatrix(rows, cols int) *matrix {
	return &matrix{
		rows: rows,
		cols: cols,
		data: make([]float32, rows*cols),
	}
}

func (m *matrix) set(row, col int, v float32) {
	if row < 0 || row >= m.rows {
		panic("row out of range")
	}
	if col < 0 || col >= m.cols {
		panic("col out of range")
	}
	m.data[row*m.cols+col] = v
}

func (m *matrix) get(row, col int) float32 {
	if row < 0 || row >= m.rows {
		panic("row out of range")
	}
	if col < 0 || col >= m.cols {
		panic("col out of range")
	}
	return m.data[row*m.cols+col]
}

func (m *matrix) colNorm(col int) float32 {
	var sum float32
	for r := 0; r < m.rows; r++ {
		v := m.get(r, col)
		sum += v * v
	}
	return float32(math.Sqrt(float64(sum)))
}

func (m *matrix) mul(m2 *matrix) *matrix {
	if m.cols != m2.rows {
		panic("mismatched matrices")
	}
	mm := newMatrix(m.rows, m2.cols)
	for i := 0; i < mm.rows; i++ {
		for j := 0; j < mm.cols; j++ {
			var v float32
			for k := 0; k < m.cols; k++ {
				v += m.get(i, k) * m2.get(k, j)
			}
			mm.set(i, j, v)
		}
	}
	return mm
}

func (m *matrix) approxEqual(m2 *matrix) bool {
	if m.rows != m2.rows || m.cols != m2.cols {
		return false
	}
	const epsilon = 0.001
	for i, v := range m.data {
		d := m2.data[i] - v
		if d < -epsilon || d > epsilon {
			return false
		}
	}
	return true
}

func (m *matrix) String() string {
	var b strings.Builder
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			v := m.get(r, c)
			b.WriteString(strconv.FormatFloat(float64(v), 'g', -1, 32))
			b.WriteString(", ")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (c coefficients) approxEqual(c2 coefficients) bool {
	const epsilon = 0.0001
	for i, v := range c {
		d := v - c2[i]
		if d < -epsilon || d > epsilon {
			return false
		}
	}
	return true
}
