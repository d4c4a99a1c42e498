// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Params collects the solver's fixed numerical constants. Default returns
// the values that work well in practice; callers rarely need to override
// them, but the CLI driver exposes them through its parameter bag for
// experimentation.
type Params struct {
	OmegaMin    float64 // ω_min
	OmegaReduce float64 // ω_reduce
	OmegaInit   float64 // ω_init
	Minit       int     // minimum number of outer iterations
	Maxit       int     // maximum number of outer iterations
	DotspTol    float64 // convergence tolerance on |1-dotsp|
}

// Default returns the solver's standard constants.
func Default() Params {
	return Params{
		OmegaMin:    0.001,
		OmegaReduce: 2.0,
		OmegaInit:   0.5,
		Minit:       10,
		Maxit:       1000,
		DotspTol:    0.001,
	}
}

// Override applies named parameter overrides on top of Default, following
// the same prms-keyed initialization gofem's material models use
// (e.g. mdl/retention.VanGen.Init): unknown names are rejected rather than
// silently ignored.
func (prm *Params) Override(prms dbf.Params) error {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "omegamin":
			prm.OmegaMin = p.V
		case "omegareduce":
			prm.OmegaReduce = p.V
		case "omegainit":
			prm.OmegaInit = p.V
		case "minit":
			prm.Minit = int(p.V)
		case "maxit":
			prm.Maxit = int(p.V)
		case "dotsptol":
			prm.DotspTol = p.V
		default:
			return chk.Err("solver: parameter named %q is incorrect", p.N)
		}
	}
	return nil
}

// Result is the outcome of one inner solve: the converged P(r), the
// smoothness term and the diagnostics that justified termination.
type Result struct {
	P          []float64 // converged P(r); caller owns this slice
	S          float64   // smoothness term at convergence
	Omega      float64   // relaxation factor at termination
	Dotsp      float64   // cosine between smoothness/data-fit gradients
	Iterations int       // number of outer iterations performed
}

// Solve runs the inner regularized inverse-transform solver for fixed
// (α, tensors) starting from the prior m, used both as the initial guess
// and as the smoothness anchor for the first iteration. It never returns
// an error: divergence is absorbed by backtracking, and NaN/Inf values are
// propagated rather than rejected.
func Solve(tensors *Tensors, m []float64, alpha float64, prm Params) Result {
	n := len(m)
	p := make([]float64, n)
	copy(p, m)
	mTarget := make([]float64, n)
	copy(mTarget, m)
	pOld := make([]float64, n)
	dP := make([]float64, n)
	psi := make([]float64, n)
	gradS := make([]float64, n)
	gradC := make([]float64, n)

	omega := prm.OmegaInit
	var s, dotsp, dotspRaw float64

	computeGradients := func() {
		s = 0
		for k := 0; k < n; k++ {
			d := p[k] - mTarget[k]
			gradS[k] = -2 * d
			s -= d * d
		}
		for k := 0; k < n; k++ {
			acc := 0.0
			for j := 0; j < n; j++ {
				acc += p[j] * tensors.B[j][k]
			}
			gradC[k] = 2*acc - 2*tensors.F[k]
		}
		dotspRaw = 0
		for k := 0; k < n; k++ {
			dotspRaw += gradC[k] * gradS[k]
		}
	}

	for ite := 0; ; ite++ {
		if ite > 0 {
			runningMean(mTarget, p)
			for j := 0; j < n; j++ {
				acc := 0.0
				for k := 0; k < n; k++ {
					acc += p[k] * tensors.BOff[k][j]
				}
				psi[j] = acc
			}
			for k := 0; k < n; k++ {
				dP[k] = (alpha*mTarget[k] + tensors.F[k] - psi[k]) / (tensors.Bkk[k] + alpha)
			}
			copy(pOld, p)
			for k := 0; k < n; k++ {
				p[k] = (1-omega)*pOld[k] + omega*dP[k]
			}
		}

		computeGradients()

		for dotspRaw < 0 && alpha < tensors.BkkMax && ite > 1 && omega > prm.OmegaMin {
			omega /= prm.OmegaReduce
			for k := 0; k < n; k++ {
				p[k] = (1-omega)*pOld[k] + omega*dP[k]
			}
			computeGradients()
		}

		normS, normC := 0.0, 0.0
		for k := 0; k < n; k++ {
			normS += gradS[k] * gradS[k]
			normC += gradC[k] * gradC[k]
		}
		normS, normC = math.Sqrt(normS), math.Sqrt(normC)
		if normS == 0 || normC == 0 {
			dotsp = 1
		} else {
			dotsp = dotspRaw / (normS * normC)
		}

		stop := ite >= prm.Minit && (ite >= prm.Maxit || omega <= prm.OmegaMin || math.Abs(1-dotsp) <= prm.DotspTol)
		if stop {
			return Result{P: p, S: s, Omega: omega, Dotsp: dotsp, Iterations: ite + 1}
		}
	}
}

// runningMean overwrites m with the 3-point running mean of p, applying
// the boundary rule m[0]=p[1]/2, m[N-1]=p[N-2]/2.
func runningMean(m, p []float64) {
	n := len(p)
	if n == 0 {
		return
	}
	if n == 1 {
		m[0] = 0
		return
	}
	for k := 1; k < n-1; k++ {
		m[k] = (p[k-1] + p[k] + p[k+1]) / 3
	}
	m[0] = p[1] / 2
	m[n-1] = p[n-2] / 2
}
