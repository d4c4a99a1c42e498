// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command bift runs the Bayesian Indirect Fourier Transform search on a
// whitespace-separated q/I/σ text file and prints the winning (α, D_max)
// and derived I(0)/R_g/χ². Curve loading here is a minimal harness, not a
// full preprocessing suite: it does no binning, zinger removal, or
// q-calibration.
package main

import (
	"bufio"
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/mpi"

	"github.com/cpmech/bift/measurement"
	"github.com/cpmech/bift/search"
	"github.com/cpmech/bift/solver"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			if mpi.Rank() == 0 {
				io.PfRed("ERROR: %v\n", err)
			}
		}
		mpi.Stop(false)
	}()
	mpi.Start(false)

	n := flag.Int("n", 50, "number of points in P(r)")
	alphaMin := flag.Float64("amin", 1, "lower α bound")
	alphaMax := flag.Float64("amax", 1e10, "upper α bound")
	nAlpha := flag.Int("na", 20, "number of α grid points")
	dmaxMin := flag.Float64("dmin", 10, "lower D_max bound")
	dmaxMax := flag.Float64("dmax", 400, "upper D_max bound")
	nDmax := flag.Int("nd", 20, "number of D_max grid points")
	prmsFlag := flag.String("prms", "", "comma-separated solver overrides, e.g. omegaInit=0.3,dotspTol=1e-4")
	flag.Parse()

	if mpi.Rank() == 0 {
		io.PfWhite("\nbift -- Bayesian Indirect Fourier Transform\n\n")
	}

	if len(flag.Args()) < 1 {
		chk.Panic("Please, provide a q/I/err text file. Ex.: bift curve.dat")
	}
	fnamepath := flag.Arg(0)

	meas, err := loadMeasurement(fnamepath)
	if err != nil {
		chk.Panic("%v", err)
	}

	cfg := search.GridConfig{
		N: *n, AlphaMin: *alphaMin, AlphaMax: *alphaMax, NAlpha: *nAlpha,
		DmaxMin: *dmaxMin, DmaxMax: *dmaxMax, NDmax: *nDmax,
	}
	prm := solver.Default()
	if *prmsFlag != "" {
		prms, err := parsePrms(*prmsFlag)
		if err != nil {
			chk.Panic("%v", err)
		}
		if err := prm.Override(prms); err != nil {
			chk.Panic("%v", err)
		}
	}
	cancel := &search.Cancel{}
	sink := make(search.ChanSink, 64)

	done := make(chan struct{})
	go func() {
		for rec := range sink {
			reportRecord(rec)
		}
		close(done)
	}()

	art, err := search.DoBift(meas, sink, cfg, prm, cancel)
	close(sink)
	<-done
	if err != nil {
		chk.Panic("%v", err)
	}
	if art == nil {
		io.PfRed("search produced no result (canceled or failed)\n")
		return
	}

	io.PfGreen("\nalpha=%g  dmax=%g  I0=%g  chi2=%g  Rg=%g  filename=%s\n",
		art.Meta.Alpha, art.Meta.Dmax, art.Meta.I0, art.Meta.ChiSquared, art.Meta.Rg, art.Meta.Filename)
}

func reportRecord(rec search.Record) {
	switch rec.Kind {
	case search.Update:
		// grid records carry log(α); the fine-search and best records, the
		// only ones with Spoint == Tpoint, carry linear α.
		label := "logAlpha"
		if rec.Spoint == rec.Tpoint {
			label = "alpha"
		}
		io.Pf("  [%d/%d] %s=%g dmax=%g -E=%g chi2=%g %s\n",
			rec.Spoint, rec.Tpoint, label, rec.Alpha, rec.Dmax, rec.Evidence, rec.Chi2, rec.Status)
	case search.Canceled:
		io.PfYel("canceled\n")
	case search.Failed:
		io.PfRed("failed: no finite evidence found on the grid\n")
	}
}

// parsePrms turns "name=value,name=value" into a dbf.Params list, the same
// shape gofem's material models take through their Init(prms dbf.Params).
func parsePrms(s string) (dbf.Params, error) {
	var prms dbf.Params
	for _, kv := range strings.Split(s, ",") {
		kv = strings.TrimSpace(kv)
		if kv == "" {
			continue
		}
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			return nil, chk.Err("invalid -prms entry %q, want name=value", kv)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, chk.Err("invalid -prms value in %q: %v", kv, err)
		}
		prms = append(prms, &fun.P{N: strings.TrimSpace(parts[0]), V: v})
	}
	return prms, nil
}

// loadMeasurement parses a whitespace-separated "q i err" text file.
func loadMeasurement(fnamepath string) (measurement.Measurement, error) {
	f, err := os.Open(fnamepath)
	if err != nil {
		return nil, chk.Err("cannot open %q: %v", fnamepath, err)
	}
	defer f.Close()

	var q, i, e []float64
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		qv, err1 := strconv.ParseFloat(fields[0], 64)
		iv, err2 := strconv.ParseFloat(fields[1], 64)
		ev, err3 := strconv.ParseFloat(fields[2], 64)
		if err1 != nil || err2 != nil || err3 != nil {
			continue
		}
		q = append(q, qv)
		i = append(i, iv)
		e = append(e, ev)
	}
	if err := sc.Err(); err != nil {
		return nil, chk.Err("error reading %q: %v", fnamepath, err)
	}

	params := map[string]interface{}{"filename": fnamepath}
	return measurement.NewInMemory(q, i, e, 0, len(q), params)
}
