// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package evidence

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/num"
)

func TestBuildA(tst *testing.T) {
	chk.PrintTitle("BuildA")

	a := BuildA(5)
	for k := 0; k < 5; k++ {
		chk.Scalar(tst, "diag", 1e-15, a[k][k], 1)
	}
	chk.Scalar(tst, "A[0][1] zeroed", 1e-15, a[0][1], 0)
	chk.Scalar(tst, "A[4][3] zeroed", 1e-15, a[4][3], 0)
	chk.Scalar(tst, "A[1][2]", 1e-15, a[1][2], -0.5)
	chk.Scalar(tst, "A[2][1]", 1e-15, a[2][1], -0.5)
}

func TestLogDetIdentity(tst *testing.T) {
	chk.PrintTitle("LogDetIdentity")

	n := 6
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
		m[i][i] = 1
	}
	sign, logAbs := LogDet(m)
	chk.Scalar(tst, "sign", 1e-15, sign, 1)
	chk.Scalar(tst, "log|det|", 1e-12, logAbs, 0)
}

func TestLogDetDiagonal(tst *testing.T) {
	chk.PrintTitle("LogDetDiagonal")

	diag := []float64{2, 4, 0.5, -3}
	n := len(diag)
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
		m[i][i] = diag[i]
	}
	sign, logAbs := LogDet(m)
	prod := 1.0
	for _, d := range diag {
		prod *= d
	}
	expectedSign := 1.0
	if prod < 0 {
		expectedSign = -1.0
	}
	chk.Scalar(tst, "sign", 1e-15, sign, expectedSign)
	chk.Scalar(tst, "log|det|", 1e-9, logAbs, math.Log(math.Abs(prod)))
}

func TestNegLogEvidenceFinite(tst *testing.T) {
	chk.PrintTitle("NegLogEvidenceFinite")

	n := 8
	b := make([][]float64, n)
	for i := range b {
		b[i] = make([]float64, n)
		b[i][i] = 10.0
	}
	negE := NegLogEvidence(Input{Alpha: 100, Dmax: 100, S: -1.0, Chi2: 50, B: b, N: n})
	if math.IsNaN(negE) || math.IsInf(negE, 0) {
		tst.Errorf("expected finite -E, got %v", negE)
	}
}

// cross-checks a hand-rolled relative-step difference of d(-E)/dα against
// num.DerivCen's central-difference estimate; both are numerical.
func TestNegLogEvidenceDerivAlpha(tst *testing.T) {
	chk.PrintTitle("NegLogEvidenceDerivAlpha")

	n := 6
	b := make([][]float64, n)
	for i := range b {
		b[i] = make([]float64, n)
		b[i][i] = 5.0
		if i+1 < n {
			b[i][i+1] = 0.3
			b[i+1][i] = 0.3
		}
	}
	s, chi2, dmax := -2.0, 30.0, 80.0
	alpha0 := 200.0

	f := func(x float64, args ...interface{}) float64 {
		return NegLogEvidence(Input{Alpha: x, Dmax: dmax, S: s, Chi2: chi2, B: b, N: n})
	}
	dAna := (f(alpha0*1.0001) - f(alpha0*0.9999)) / (alpha0 * 0.0002)
	dNum := num.DerivCen(f, alpha0)
	chk.AnaNum(tst, io.Sf("d(-E)/dalpha"), 1e-3, dAna, dNum, false)
}
