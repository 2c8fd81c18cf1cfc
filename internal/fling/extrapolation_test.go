// SPDX-License-Identifier: Unlicense OR MIT

package fling

import (
	"testing"
	"time"

	"gioui.org/pageview/unit"
)

func TestDecomposeQR(t *testing.T) {
	A := &matrix{
		rows: 3, cols: 3,
		data: []float32{
			12, -51, 4,
			6, 167, -68,
			-4, 24, -41,
		},
	}
	Q, R, ok := decomposeQR(A)
	if !ok {
		t.Fatal("decomposeQR failed")
	}
	for i := 1; i < R.rows; i++ {
		for j := 0; j < i; j++ {
			if v := R.get(i, j); v != 0 {
				t.Errorf("R is not upper triangular: R[%d][%d] = %v", i, j, v)
			}
		}
	}
	QR := Q.mul(R)
	if !A.approxEqual(QR) {
		t.Log("A\n", A)
		t.Log("Q\n", Q)
		t.Log("R\n", R)
		t.Log("QR\n", QR)
		t.Fatal("Q*R not approximately equal to A")
	}
}

func TestFit(t *testing.T) {
	X := []float32{-1, 0, 1}
	Y := []float32{2, 0, 2}

	got, ok := polyFit(X, Y)
	if !ok {
		t.Fatal("polyFit failed")
	}
	want := coefficients{0, 0, 2}
	if !got.approxEqual(want) {
		t.Fatalf("polyFit: got %v want %v", got, want)
	}
}

func TestFitInsufficientData(t *testing.T) {
	if _, ok := polyFit([]float32{0, 1}, []float32{0, 1}); ok {
		t.Error("polyFit succeeded with two points")
	}
}

func TestEstimateConstantVelocity(t *testing.T) {
	var e Extrapolation
	// 1000 px/s sampled every 10ms.
	for i := 0; i < 8; i++ {
		ts := time.Duration(i) * 10 * time.Millisecond
		e.Sample(ts, float32(i)*10)
	}
	est := e.Estimate()
	if d := est.Velocity - 1000; d < -1 || d > 1 {
		t.Errorf("got velocity %v, want 1000", est.Velocity)
	}
	// Only the samples younger than maxAge contribute.
	if d := est.Distance - 70; d < -0.01 || d > 0.01 {
		t.Errorf("got distance %v, want 70", est.Distance)
	}
}

func TestEstimateStaleSamples(t *testing.T) {
	var e Extrapolation
	e.Sample(0, 0)
	e.Sample(10*time.Millisecond, 10)
	e.Sample(200*time.Millisecond, 20)
	if est := e.Estimate(); est != (Estimate{}) {
		t.Errorf("got %+v from a single recent sample, want zero estimate", est)
	}
}

func TestAnimation(t *testing.T) {
	var m unit.Metric
	var a Animation
	if a.Start(m, 0, 20) {
		t.Error("fling started below the minimum velocity")
	}
	if !a.Start(m, 0, 2000) {
		t.Fatal("fling did not start")
	}
	var total float32
	now := time.Duration(0)
	for a.Active() && now < 10*time.Second {
		now += 16 * time.Millisecond
		d := a.Tick(now)
		if d < 0 {
			t.Fatalf("fling reversed direction at %v", now)
		}
		total += d
	}
	if a.Active() {
		t.Fatal("fling did not come to rest")
	}
	// x(inf) = -v0/k.
	if want := float32(2000 / 4.2); total < want-1 || total > want {
		t.Errorf("got fling distance %v, want about %v", total, want)
	}
}
