// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestBuildSmallCase(tst *testing.T) {
	chk.PrintTitle("BuildSmallCase")

	q := []float64{0, 0.1, 0.2}
	r := []float64{0, 10, 20}
	t := Build(q, r)

	chk.Vector(tst, "row 0 (q=0)", 1e-15, t[0], []float64{1, 1, 1})
	chk.Scalar(tst, "T[1][0] (r=0)", 1e-15, t[1][0], 1)
	chk.Scalar(tst, "T[2][0] (r=0)", 1e-15, t[2][0], 1)
	chk.Scalar(tst, "T[1][1]", 1e-7, t[1][1], math.Sin(1)/1)
}

func TestBuildNoNaN(tst *testing.T) {
	chk.PrintTitle("BuildNoNaN")

	q := []float64{0, 1e-300, 1e10}
	r := []float64{0, 1e10, 1e-300}
	t := Build(q, r)
	for i := range t {
		for j := range t[i] {
			v := t[i][j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				tst.Errorf("T[%d][%d]=%v is not finite", i, j, v)
			}
			if v < -1-1e-9 || v > 1+1e-9 {
				tst.Errorf("T[%d][%d]=%v out of [-1,1]", i, j, v)
			}
		}
	}
}
