// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package search

import (
	"math"

	"github.com/cpmech/bift/measurement"
	"github.com/cpmech/bift/solver"
)

// FineSearch refines the grid optimum with a Nelder-Mead simplex over
// (log α, D_max), seeded at (seedLogAlpha, seedDmax). Returns the winning
// linear α and D_max, or canceled=true if the cancellation flag was
// observed mid-simplex.
func FineSearch(meas measurement.Measurement, n int, prm solver.Params, seedLogAlpha, seedDmax float64, cancel *Cancel) (alpha, dmax float64, canceled bool, err error) {
	var evalErr error
	objective := func(x []float64) float64 {
		a, d := math.Exp(x[0]), x[1]
		if d <= 0 || a <= 0 || evalErr != nil {
			return math.Inf(1)
		}
		cell, e := evaluateCell(meas, n, a, d, prm)
		if e != nil {
			evalErr = e
			return math.Inf(1)
		}
		return cell.negE
	}

	res := NelderMead(objective, []float64{seedLogAlpha, seedDmax}, cancel)
	if evalErr != nil {
		return 0, 0, false, evalErr
	}
	if res.Canceled {
		return 0, 0, true, nil
	}
	return math.Exp(res.X[0]), res.X[1], false, nil
}
