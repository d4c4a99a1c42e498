// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package evidence

import (
	"math"

	"github.com/cpmech/gosl/la"
)

// LogDet computes (sign, log|det(m)|) of the square matrix m via LU
// decomposition with partial pivoting. For the sizes this engine deals
// with (N up to a few hundred), this avoids the overflow a raw
// determinant would hit and lets the caller consume log(det) directly.
// m is not modified; a working copy is decomposed in place.
//
// gosl's dense-matrix package (this era) exposes MatInv's determinant as
// a raw float64, which overflows well before N reaches the sizes this
// engine uses; there is no sign+log-magnitude LU primitive in the pack to
// reuse, so the decomposition is written directly here, using la.MatAlloc
// for the working copy to stay consistent with the rest of the ambient
// stack (see DESIGN.md).
func LogDet(m [][]float64) (sign float64, logAbsDet float64) {
	n := len(m)
	if n == 0 {
		return 1, 0
	}
	a := la.MatAlloc(n, n)
	for i := range a {
		copy(a[i], m[i])
	}

	sign = 1
	logAbsDet = 0
	for col := 0; col < n; col++ {
		// partial pivot
		piv := col
		maxAbs := math.Abs(a[col][col])
		for r := col + 1; r < n; r++ {
			if v := math.Abs(a[r][col]); v > maxAbs {
				maxAbs = v
				piv = r
			}
		}
		if maxAbs == 0 {
			return 0, math.Inf(-1)
		}
		if piv != col {
			a[col], a[piv] = a[piv], a[col]
			sign = -sign
		}
		pivot := a[col][col]
		if pivot < 0 {
			sign = -sign
		}
		logAbsDet += math.Log(math.Abs(pivot))
		for r := col + 1; r < n; r++ {
			factor := a[r][col] / pivot
			if factor == 0 {
				continue
			}
			for c := col; c < n; c++ {
				a[r][c] -= factor * a[col][c]
			}
		}
	}
	return
}
