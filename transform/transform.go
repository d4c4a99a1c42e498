// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package transform builds the dense sin(qr)/qr kernel matrix relating a
// P(r) distribution to a model scattering intensity. The 4π·Δr scaling
// factor is deliberately absorbed into P downstream and must not be
// applied here.
package transform

import (
	"math"

	"github.com/cpmech/gosl/la"
)

// Build constructs T of shape (len(q), len(r)), with
//
//	T[i][j] = sin(q_i·r_j) / (q_i·r_j)
//
// and the removable singularity at q_i·r_j = 0 (or wherever the sinc
// evaluates to NaN) replaced by 1, so that no entry of T is ever NaN or
// infinite.
func Build(q, r []float64) (t [][]float64) {
	t = la.MatAlloc(len(q), len(r))
	for i, qi := range q {
		for j, rj := range r {
			u := qi * rj
			if u == 0 {
				t[i][j] = 1
				continue
			}
			v := math.Sin(u) / u
			if math.IsNaN(v) {
				t[i][j] = 1
				continue
			}
			t[i][j] = v
		}
	}
	return
}
