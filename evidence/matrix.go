// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package evidence computes the Bayesian log-evidence functional from an
// inner solve's outputs, including the smoothness-prior matrix A and the
// log-determinant of B/α + A.
package evidence

import "github.com/cpmech/gosl/la"

// BuildA builds the N×N tri-diagonal smoothness-prior matrix: 1 on the
// main diagonal, -0.5 on both adjacent diagonals, with the (0,1) and
// (N-1,N-2) entries zeroed. The zeroed corners are an artifact of a
// circular-shift construction upstream and are reproduced exactly here.
func BuildA(n int) [][]float64 {
	a := la.MatAlloc(n, n)
	for k := 0; k < n; k++ {
		a[k][k] = 1
		if k+1 < n {
			a[k][k+1] = -0.5
			a[k+1][k] = -0.5
		}
	}
	if n > 1 {
		a[0][1] = 0
		a[n-1][n-2] = 0
	}
	return a
}

// BuildBOverAlphaPlusA returns B/α + A as a fresh N×N matrix.
func BuildBOverAlphaPlusA(b [][]float64, alpha float64, a [][]float64) [][]float64 {
	n := len(a)
	c := la.MatAlloc(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			c[i][j] = b[i][j]/alpha + a[i][j]
		}
	}
	return c
}
