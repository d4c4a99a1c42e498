// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solver implements the inner regularized inverse-transform
// solver: the iterative gradient-descent routine that, for a fixed
// (α, D_max), produces P(r) from the transform matrix and the measured
// curve. This is the numerical hot path of the engine.
package solver

import "github.com/cpmech/gosl/la"

// Tensors holds the precomputed, per-evaluation data-fit quantities that
// depend only on (T, I_exp, σ) and are reused across every outer iteration
// of a single inner solve.
type Tensors struct {
	F      []float64   // f_k = Σ_i T[i,k]·I_exp[i]/σ[i]²
	B      [][]float64 // B[k,j] = Σ_i T[i,k]·T[i,j]/σ[i]² (the data-fit Hessian)
	BOff   [][]float64 // B with its diagonal zeroed
	Bkk    []float64   // diagonal of B
	BkkMax float64     // 10·max(Bkk); overshoot guard for backtracking
}

// BuildTensors computes Tensors from the transform matrix t (shape
// len(q) x N) and the windowed measurement (iExp, sigma).
func BuildTensors(t [][]float64, iExp, sigma []float64) *Tensors {
	m := len(t)
	n := 0
	if m > 0 {
		n = len(t[0])
	}
	w := make([]float64, m)
	for i := 0; i < m; i++ {
		w[i] = 1.0 / (sigma[i] * sigma[i])
	}

	f := make([]float64, n)
	for i := 0; i < m; i++ {
		for k := 0; k < n; k++ {
			f[k] += t[i][k] * iExp[i] * w[i]
		}
	}

	b := la.MatAlloc(n, n)
	for k := 0; k < n; k++ {
		for j := k; j < n; j++ {
			sum := 0.0
			for i := 0; i < m; i++ {
				sum += t[i][k] * t[i][j] * w[i]
			}
			b[k][j] = sum
			b[j][k] = sum
		}
	}

	bkk := make([]float64, n)
	bOff := la.MatAlloc(n, n)
	bkkMax := 0.0
	for k := 0; k < n; k++ {
		bkk[k] = b[k][k]
		if bkk[k] > bkkMax {
			bkkMax = bkk[k]
		}
		for j := 0; j < n; j++ {
			if j != k {
				bOff[k][j] = b[k][j]
			}
		}
	}

	return &Tensors{F: f, B: b, BOff: bOff, Bkk: bkk, BkkMax: 10 * bkkMax}
}
