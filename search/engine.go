// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package search

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/bift/measurement"
	"github.com/cpmech/bift/result"
	"github.com/cpmech/bift/solver"
)

// DoBift runs the full two-stage (D_max, α) search: a grid sweep followed
// by a Nelder-Mead fine search seeded at the grid optimum, then a final
// inner solve at the winning hyperparameters assembled into the IFT
// artifact.
//
// Returns (artifact, nil) on success, (nil, nil) on cancellation or an
// empty search outcome (both surfaced only through sink records), and
// (nil, err) only for a precondition failure distinguishable from those
// soft outcomes.
func DoBift(meas measurement.Measurement, sink Sink, cfg GridConfig, prm solver.Params, cancel *Cancel) (*result.Artifact, error) {
	if meas == nil {
		return nil, chk.Err("measurement must not be nil")
	}
	if sink == nil {
		sink = NopSink{}
	}
	if cancel == nil {
		cancel = &Cancel{}
	}

	grid, err := RunGrid(meas, cfg, prm, cancel, sink)
	if err != nil {
		return nil, err
	}
	if grid.Canceled || grid.Failed {
		return nil, nil
	}

	sink.Emit(Record{
		Kind: Update, Alpha: grid.BestAlpha, Evidence: grid.BestNegE, Chi2: grid.BestChi2,
		Dmax: grid.BestDmax, Spoint: grid.SpointsDone, Tpoint: grid.SpointsDone,
		Status: "running fine search",
	})

	alphaFin, dmaxFin, canceled, err := FineSearch(meas, cfg.N, prm, math.Log(grid.BestAlpha), grid.BestDmax, cancel)
	if err != nil {
		return nil, err
	}
	if canceled {
		sink.Emit(Record{Kind: Canceled})
		return nil, nil
	}

	cell, err := evaluateCell(meas, cfg.N, alphaFin, dmaxFin, prm)
	if err != nil {
		return nil, err
	}

	artifact, err := result.Assemble(cell.solve.P, cell.t, alphaFin, dmaxFin, cell.chi2, meas)
	if err != nil {
		return nil, err
	}
	artifact.Meta.DmaxPoints = grid.DmaxPoints
	artifact.Meta.AlphaPoints = grid.AlphaPointsLg
	artifact.Meta.AllPosteriors = grid.AllPosteriors

	sink.Emit(Record{
		Kind: Update, Alpha: alphaFin, Evidence: cell.negE, Chi2: cell.chi2,
		Dmax: dmaxFin, Spoint: grid.SpointsDone, Tpoint: grid.SpointsDone,
	})

	return artifact, nil
}

// SingleSolve runs one inner solve at a fixed (α, D_max) and returns the
// resulting IFT artifact, with no progress reporting and no cancellation.
func SingleSolve(alpha, dmax float64, meas measurement.Measurement, n int, prm solver.Params) (*result.Artifact, error) {
	if meas == nil {
		return nil, chk.Err("measurement must not be nil")
	}
	if alpha <= 0 {
		return nil, chk.Err("alpha must be positive; got %v", alpha)
	}
	if dmax <= 0 {
		return nil, chk.Err("dmax must be positive; got %v", dmax)
	}
	if n < 4 {
		return nil, chk.Err("N must be >= 4; got %d", n)
	}

	cell, err := evaluateCell(meas, n, alpha, dmax, prm)
	if err != nil {
		return nil, err
	}
	return result.Assemble(cell.solve.P, cell.t, alpha, dmax, cell.chi2, meas)
}
