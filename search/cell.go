// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package search

import (
	"github.com/cpmech/bift/evidence"
	"github.com/cpmech/bift/measurement"
	"github.com/cpmech/bift/prior"
	"github.com/cpmech/bift/solver"
	"github.com/cpmech/bift/transform"
)

// cellResult bundles everything one inner solve at fixed (α, D_max)
// produces, before the result package's final zero-padded normalization.
type cellResult struct {
	r     []float64
	t     [][]float64
	solve solver.Result
	chi2  float64
	negE  float64
}

// evaluateCell runs prior -> transform -> inner solver -> χ² -> evidence
// for one (N, α, D_max) point.
func evaluateCell(meas measurement.Measurement, n int, alpha, dmax float64, prm solver.Params) (cellResult, error) {
	q := measurement.WindowQ(meas)
	iExp := measurement.WindowI(meas)
	sigma := measurement.WindowErr(meas)

	r, err := prior.RGrid(n, dmax)
	if err != nil {
		return cellResult{}, err
	}
	t := transform.Build(q, r)
	p0, _, err := prior.Sphere(n, iExp[0], dmax)
	if err != nil {
		return cellResult{}, err
	}

	tensors := solver.BuildTensors(t, iExp, sigma)
	res := solver.Solve(tensors, p0, alpha, prm)
	chi2 := chiSquared(res.P, t, iExp, sigma)
	negE := evidence.NegLogEvidence(evidence.Input{
		Alpha: alpha,
		Dmax:  dmax,
		S:     res.S,
		Chi2:  chi2,
		B:     tensors.B,
		N:     n,
	})

	return cellResult{r: r, t: t, solve: res, chi2: chi2, negE: negE}, nil
}

// chiSquared computes Σ((I_exp - I_model)/σ)² with I_model = P·Tᵀ.
func chiSquared(p []float64, t [][]float64, iExp, sigma []float64) float64 {
	sum := 0.0
	for i := range t {
		model := 0.0
		for k, pk := range p {
			model += pk * t[i][k]
		}
		d := (iExp[i] - model) / sigma[i]
		sum += d * d
	}
	return sum
}
