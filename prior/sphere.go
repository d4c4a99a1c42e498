// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package prior builds the initial P(r) distribution handed to the inner
// solver, and enforces the non-zero-bin floor every prior must satisfy.
package prior

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Pmin is the minimum fraction of max(P) every prior bin must retain.
const Pmin = 0.005

// RGrid returns the length-N uniform grid r_k = k·dmax/(N-1), k=0..N-1.
func RGrid(n int, dmax float64) (r []float64, err error) {
	if n < 4 {
		return nil, chk.Err("N must be >= 4; got %d", n)
	}
	if dmax <= 0 {
		return nil, chk.Err("dmax must be positive; got %v", dmax)
	}
	r = io.LinSpace(0, dmax, n)
	return
}

// Sphere builds the sphere prior P(r) over N points on [0, dmax], scaled
// by scaleFactor (= I_exp[0] in the caller). Returns P and the r-grid it
// was evaluated on.
//
// Formula: with Δr = dmax/(N-1), ψ = dmax³/24, norm = scaleFactor·Δr/ψ,
//
//	P_k = r_k² (1 - 1.5(r_k/dmax) + 0.5(r_k/dmax)³) norm
//
// followed by the floor-and-rescale in Floor.
func Sphere(n int, scaleFactor, dmax float64) (p, r []float64, err error) {
	r, err = RGrid(n, dmax)
	if err != nil {
		return
	}
	dr := r[1] - r[0]
	psi := dmax * dmax * dmax / 24.0
	norm := scaleFactor * dr / psi
	p = make([]float64, n)
	for k, rk := range r {
		x := rk / dmax
		p[k] = rk * rk * (1 - 1.5*x + 0.5*x*x*x) * norm
	}
	Floor(p)
	return
}

// Floor enforces the pmin-fraction-of-max floor on p in place, rescaling
// afterwards to preserve the pre-floor sum.
//
//	S1 = Σ P; avm = Pmin·max(P); P_k ← max(P_k, avm); S2 = Σ P; P ← P·S1/S2
func Floor(p []float64) {
	if len(p) == 0 {
		return
	}
	s1 := 0.0
	pmax := p[0]
	for _, v := range p {
		s1 += v
		if v > pmax {
			pmax = v
		}
	}
	avm := Pmin * pmax
	for k, v := range p {
		if v <= avm {
			p[k] = avm
		}
	}
	s2 := 0.0
	for _, v := range p {
		s2 += v
	}
	if s2 == 0 {
		return
	}
	scale := s1 / s2
	for k := range p {
		p[k] *= scale
	}
}
