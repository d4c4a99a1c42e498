// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package result

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/bift/measurement"
)

func buildMeas(tst *testing.T, n int) measurement.Measurement {
	q := make([]float64, n)
	i := make([]float64, n)
	e := make([]float64, n)
	for k := range q {
		q[k] = 0.01 + 0.001*float64(k)
		i[k] = 1
		e[k] = 0.01
	}
	m, err := measurement.NewInMemory(q, i, e, 0, n, map[string]interface{}{"filename": "data/sample.dat"})
	if err != nil {
		tst.Fatalf("NewInMemory failed: %v", err)
	}
	return m
}

// the assembler must pin P's endpoints to zero and keep r strictly increasing.
func TestAssemblePinsEndpoints(tst *testing.T) {
	chk.PrintTitle("AssemblePinsEndpoints")

	n := 10
	meas := buildMeas(tst, 20)
	p := make([]float64, n)
	for k := range p {
		p[k] = float64(k + 1)
	}
	t := make([][]float64, 20)
	for i := range t {
		t[i] = make([]float64, n)
		for k := range t[i] {
			t[i][k] = 0.5
		}
	}

	art, err := Assemble(p, t, 1e4, 100, 42.0, meas)
	if err != nil {
		tst.Fatalf("Assemble failed: %v", err)
	}
	if len(art.P) != n+2 || len(art.R) != n+2 {
		tst.Fatalf("expected length %d, got p=%d r=%d", n+2, len(art.P), len(art.R))
	}
	chk.Scalar(tst, "p[0]", 1e-15, art.P[0], 0)
	chk.Scalar(tst, "p[last]", 1e-15, art.P[len(art.P)-1], 0)
	if art.R[0] != 0 {
		tst.Errorf("r[0] should be 0, got %v", art.R[0])
	}
	for k := 1; k < len(art.R); k++ {
		if art.R[k] <= art.R[k-1] {
			tst.Errorf("r not strictly increasing at %d", k)
		}
	}
	if art.Meta.Filename != "sample.ift" {
		tst.Errorf("expected filename sample.ift, got %q", art.Meta.Filename)
	}
	if len(art.Fit) != len(art.QOrig) {
		tst.Errorf("fit length %d != q length %d", len(art.Fit), len(art.QOrig))
	}
}

func TestTrapzLinear(tst *testing.T) {
	chk.PrintTitle("TrapzLinear")

	x := []float64{0, 1, 2, 3}
	y := []float64{0, 1, 2, 3}
	chk.Scalar(tst, "area under y=x on [0,3]", 1e-12, trapz(y, x), 4.5)
}
