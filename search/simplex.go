// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package search

import (
	"math"
	"sort"
)

// Objective is a derivative-free scalar function of n variables.
type Objective func(x []float64) float64

// SimplexResult is the outcome of one NelderMead run.
type SimplexResult struct {
	X        []float64
	F        float64
	Canceled bool
}

// NelderMead minimizes f starting from x0 using the downhill simplex
// method, with fixed reflection/expansion/contraction/shrink coefficients
// and tolerances. Cancellation is checked once per iteration, after the
// simplex has been ranked; a cancellation mid-run returns
// SimplexResult{Canceled: true} rather than a partial minimum.
//
// This is a direct port of scipy.optimize.fmin's downhill simplex
// routine, since gosl's num package offers a Newton-type nonlinear solver
// but no derivative-free simplex minimizer (DESIGN.md).
func NelderMead(f Objective, x0 []float64, cancel *Cancel) SimplexResult {
	n := len(x0)
	const rho, chi, psi, sigma = 1.0, 2.0, 0.5, 0.5
	const xtol, ftol = 1e-4, 1e-4
	maxiter := 200 * n
	maxfun := 200 * n

	sim := make([][]float64, n+1)
	fsim := make([]float64, n+1)
	sim[0] = append([]float64(nil), x0...)
	fsim[0] = f(sim[0])
	nfev := 1

	const nonzdelt = 0.05
	const zdelt = 0.00025
	for k := 0; k < n; k++ {
		y := append([]float64(nil), x0...)
		if y[k] != 0 {
			y[k] = (1 + nonzdelt) * y[k]
		} else {
			y[k] = zdelt
		}
		sim[k+1] = y
		fsim[k+1] = f(y)
		nfev++
	}
	sortSimplex(sim, fsim)

	iterations := 1
	for nfev < maxfun && iterations < maxiter {
		if cancel.IsSet() {
			return SimplexResult{Canceled: true}
		}

		if simplexConverged(sim, fsim, xtol, ftol) {
			break
		}

		xbar := centroid(sim[:n])
		xr := combine(1+rho, xbar, -rho, sim[n])
		fxr := f(xr)
		nfev++
		doshrink := false

		switch {
		case fxr < fsim[0]:
			xe := combine(1+rho*chi, xbar, -rho*chi, sim[n])
			fxe := f(xe)
			nfev++
			if fxe < fxr {
				sim[n], fsim[n] = xe, fxe
			} else {
				sim[n], fsim[n] = xr, fxr
			}

		case fxr < fsim[n-1]:
			sim[n], fsim[n] = xr, fxr

		case fxr < fsim[n]:
			xc := combine(1+psi*rho, xbar, -psi*rho, sim[n])
			fxc := f(xc)
			nfev++
			if fxc <= fxr {
				sim[n], fsim[n] = xc, fxc
			} else {
				doshrink = true
			}

		default:
			xcc := combine(1-psi, xbar, psi, sim[n])
			fxcc := f(xcc)
			nfev++
			if fxcc < fsim[n] {
				sim[n], fsim[n] = xcc, fxcc
			} else {
				doshrink = true
			}
		}

		if doshrink {
			for j := 1; j <= n; j++ {
				for k := 0; k < n; k++ {
					sim[j][k] = sim[0][k] + sigma*(sim[j][k]-sim[0][k])
				}
				fsim[j] = f(sim[j])
				nfev++
			}
		}

		sortSimplex(sim, fsim)
		iterations++
	}

	return SimplexResult{X: sim[0], F: fsim[0]}
}

func simplexConverged(sim [][]float64, fsim []float64, xtol, ftol float64) bool {
	n := len(sim) - 1
	spread := 0.0
	for j := 1; j <= n; j++ {
		for k := 0; k < n; k++ {
			d := math.Abs(sim[j][k] - sim[0][k])
			if d > spread {
				spread = d
			}
		}
	}
	fspread := 0.0
	for j := 1; j <= n; j++ {
		d := math.Abs(fsim[0] - fsim[j])
		if d > fspread {
			fspread = d
		}
	}
	return spread <= xtol && fspread <= ftol
}

func centroid(pts [][]float64) []float64 {
	n := len(pts)
	dim := len(pts[0])
	out := make([]float64, dim)
	for _, p := range pts {
		for k := 0; k < dim; k++ {
			out[k] += p[k]
		}
	}
	for k := range out {
		out[k] /= float64(n)
	}
	return out
}

func combine(a float64, x []float64, b float64, y []float64) []float64 {
	out := make([]float64, len(x))
	for i := range x {
		out[i] = a*x[i] + b*y[i]
	}
	return out
}

func sortSimplex(sim [][]float64, fsim []float64) {
	idx := make([]int, len(fsim))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool { return fsim[idx[i]] < fsim[idx[j]] })
	newSim := make([][]float64, len(sim))
	newFsim := make([]float64, len(fsim))
	for pos, old := range idx {
		newSim[pos] = sim[old]
		newFsim[pos] = fsim[old]
	}
	copy(sim, newSim)
	copy(fsim, newFsim)
}
