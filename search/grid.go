// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package search

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/bift/measurement"
	"github.com/cpmech/bift/solver"
)

// GridConfig bounds the (log α, D_max) grid.
type GridConfig struct {
	N                  int     // P(r) resolution
	AlphaMin, AlphaMax float64 // linear α bounds, AlphaMin < AlphaMax
	NAlpha             int
	DmaxMin, DmaxMax   float64 // D_max bounds, DmaxMin < DmaxMax
	NDmax              int
}

// Validate rejects preconditions the grid search itself cannot recover
// from.
func (c GridConfig) Validate() error {
	if c.N < 4 {
		return chk.Err("N must be >= 4; got %d", c.N)
	}
	if c.AlphaMin <= 0 || c.AlphaMax <= c.AlphaMin {
		return chk.Err("invalid alpha bounds [%v, %v]", c.AlphaMin, c.AlphaMax)
	}
	if c.DmaxMin <= 0 || c.DmaxMax <= c.DmaxMin {
		return chk.Err("invalid dmax bounds [%v, %v]", c.DmaxMin, c.DmaxMax)
	}
	if c.NAlpha < 1 || c.NDmax < 1 {
		return chk.Err("NAlpha and NDmax must be >= 1; got %d, %d", c.NAlpha, c.NDmax)
	}
	return nil
}

// GridOutcome is the result of one full grid traversal.
type GridOutcome struct {
	BestNegE      float64
	BestAlpha     float64 // linear
	BestDmax      float64
	BestChi2      float64
	AllPosteriors [][]float64 // NDmax x NAlpha, -E per cell
	AlphaPointsLg []float64   // log alpha axis
	DmaxPoints    []float64
	SpointsDone   int
	Canceled      bool
	Failed        bool
}

// RunGrid sweeps the (log α x D_max) grid outer-D_max/inner-α, streaming
// one Update record per cell and honoring cancellation at each cell
// boundary.
func RunGrid(meas measurement.Measurement, cfg GridConfig, prm solver.Params, cancel *Cancel, sink Sink) (GridOutcome, error) {
	if err := cfg.Validate(); err != nil {
		return GridOutcome{}, err
	}

	alphaPoints := io.LinSpace(math.Log(cfg.AlphaMin), math.Log(cfg.AlphaMax), cfg.NAlpha)
	dmaxPoints := io.LinSpace(cfg.DmaxMin, cfg.DmaxMax, cfg.NDmax)
	allPost := la.MatAlloc(cfg.NDmax, cfg.NAlpha)
	total := cfg.NDmax * cfg.NAlpha
	current := 0

	bestNegE := math.Inf(1)
	bestChi2 := math.Inf(1)
	var bestAlpha, bestDmax float64 = -1, -1
	found := false

	for di, dmax := range dmaxPoints {
		for ai, logAlpha := range alphaPoints {
			if cancel.IsSet() {
				sink.Emit(Record{Kind: Canceled})
				return GridOutcome{Canceled: true, SpointsDone: current}, nil
			}

			alpha := math.Exp(logAlpha)
			cell, err := evaluateCell(meas, cfg.N, alpha, dmax, prm)
			if err != nil {
				return GridOutcome{}, err
			}
			allPost[di][ai] = cell.negE

			sink.Emit(Record{
				Kind: Update, Alpha: logAlpha, Evidence: cell.negE, Chi2: cell.chi2,
				Dmax: dmax, Spoint: current, Tpoint: total,
			})

			if isFiniteMin(cell.negE, bestNegE) {
				bestNegE, bestAlpha, bestDmax, found = cell.negE, alpha, dmax, true
			}
			if cell.chi2 < bestChi2 {
				bestChi2 = cell.chi2
			}
			current++
		}
	}

	if !found {
		sink.Emit(Record{Kind: Failed})
		return GridOutcome{Failed: true, SpointsDone: current}, nil
	}

	return GridOutcome{
		BestNegE: bestNegE, BestAlpha: bestAlpha, BestDmax: bestDmax, BestChi2: bestChi2,
		AllPosteriors: allPost, AlphaPointsLg: alphaPoints, DmaxPoints: dmaxPoints,
		SpointsDone: current,
	}, nil
}

func isFiniteMin(candidate, currentBest float64) bool {
	if math.IsNaN(candidate) || math.IsInf(candidate, 0) {
		return false
	}
	return candidate < currentBest
}
