// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package result assembles the final IFT artifact from a converged inner
// solve: normalizes P(r), pins its endpoints to zero, integrates for I(0)
// and R_g, and packages everything the artifact schema requires.
package result

import (
	"math"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/bift/measurement"
)

// Metadata is the artifact's free-form result bag.
type Metadata struct {
	Alpha         float64 // linear α
	Dmax          float64
	I0            float64
	ChiSquared    float64
	Rg            float64
	Filename      string // basename with .ift extension
	Algorithm     string // always "BIFT"
	DmaxPoints    []float64
	AlphaPoints   []float64 // log α, grid path only
	AllPosteriors [][]float64
}

// Artifact is the IFT result.
type Artifact struct {
	P       []float64 // length N+2, P[0]=P[len-1]=0
	R       []float64 // length N+2, strictly increasing from 0 to Dmax
	ErrP    []float64 // length N+2, all ones
	IOrig   []float64 // windowed measured intensity
	QOrig   []float64 // windowed q
	ErrOrig []float64 // windowed σ
	Fit     []float64 // model intensity on QOrig
	Meta    Metadata
}

// Assemble builds the IFT artifact from one converged inner solve.
// pSolved is the solver's output (length N, with the 4π·Δr factor still
// absorbed); t is the (len(q) x N) transform matrix it was solved
// against; alpha/dmax/chi2 are the winning hyperparameters and χ².
func Assemble(pSolved []float64, t [][]float64, alpha, dmax, chi2 float64, meas measurement.Measurement) (*Artifact, error) {
	n := len(pSolved)
	if n < 1 {
		return nil, chk.Err("pSolved must be non-empty")
	}

	rReport := io.LinSpace(0, dmax, n+2)
	dr := rReport[2] - rReport[1]

	pReport := make([]float64, n+2)
	scale := 1.0 / (4 * math.Pi * dr)
	for k, v := range pSolved {
		pReport[k+1] = v * scale
	}
	// pReport[0] and pReport[n+1] stay zero: endpoint pinning.

	fit := make([]float64, len(t))
	for i := range t {
		sum := 0.0
		for k, pk := range pSolved {
			sum += pk * t[i][k]
		}
		fit[i] = sum
	}

	area := trapz(pReport, rReport)
	area2 := trapz(weightedBySquare(pReport, rReport), rReport)
	rgSq := area2 / (2 * area)
	rg := math.Sqrt(math.Abs(rgSq))
	i0 := 4 * math.Pi * area

	errP := make([]float64, n+2)
	for k := range errP {
		errP[k] = 1
	}

	filename, err := deriveFilename(meas)
	if err != nil {
		return nil, err
	}

	return &Artifact{
		P:       pReport,
		R:       rReport,
		ErrP:    errP,
		IOrig:   measurement.WindowI(meas),
		QOrig:   measurement.WindowQ(meas),
		ErrOrig: measurement.WindowErr(meas),
		Fit:     fit,
		Meta: Metadata{
			Alpha:      alpha,
			Dmax:       dmax,
			I0:         i0,
			ChiSquared: chi2,
			Rg:         rg,
			Filename:   filename,
			Algorithm:  "BIFT",
		},
	}, nil
}

func deriveFilename(meas measurement.Measurement) (string, error) {
	v, ok := meas.GetParameter("filename")
	if !ok {
		return "", chk.Err("measurement has no \"filename\" parameter")
	}
	name, ok := v.(string)
	if !ok {
		return "", chk.Err("\"filename\" parameter is not a string: %v", v)
	}
	base := filepath.Base(name)
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + ".ift", nil
}

func trapz(y, x []float64) float64 {
	sum := 0.0
	for k := 0; k < len(y)-1; k++ {
		sum += (y[k] + y[k+1]) / 2 * (x[k+1] - x[k])
	}
	return sum
}

func weightedBySquare(y, x []float64) []float64 {
	out := make([]float64, len(y))
	for k := range y {
		out[k] = y[k] * x[k] * x[k]
	}
	return out
}
