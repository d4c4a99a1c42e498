// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package evidence

import "math"

// Input bundles the evidence functional's inputs.
type Input struct {
	Alpha float64
	Dmax  float64 // unused by the formula itself but kept for traceability
	S     float64 // smoothness term from the inner solve
	Chi2  float64 // χ² from the inner solve
	B     [][]float64
	N     int
}

// NegLogEvidence computes -E, the quantity the search minimizes. A
// non-positive LU sign on det(B/α+A) indicates a numerical artifact; this
// is surfaced as a non-finite result rather than silently flipped.
func NegLogEvidence(in Input) float64 {
	n := in.N
	a := BuildA(n)
	c := BuildBOverAlphaPlusA(in.B, in.Alpha, a)
	sign, logAbsDetAB := LogDet(c)
	if sign <= 0 {
		return math.NaN()
	}

	logDetA := math.Log(float64(n)+1) - float64(n)*math.Log(2)
	q := in.Alpha*in.S - 0.5*in.Chi2
	alphaPrior := 1 / in.Alpha
	logE := 0.5*logDetA + q - 0.5*logAbsDetAB - math.Log(alphaPrior)
	return -logE
}
