// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package search

import (
	"math"
	"testing"

	"github.com/cpmech/bift/measurement"
)

// sphereMeasurement builds a synthetic scattering curve for a homogeneous
// sphere of radius R, so the search can be checked against a known answer
// (D_max = 2R, R_g = sqrt(3/5)·R).
func sphereMeasurement(tst *testing.T, npts int, rad float64) measurement.Measurement {
	q := make([]float64, npts)
	i := make([]float64, npts)
	e := make([]float64, npts)
	qmin, qmax := 0.01, 0.2
	for k := 0; k < npts; k++ {
		q[k] = qmin + float64(k)*(qmax-qmin)/float64(npts-1)
		qr := q[k] * rad
		amp := 4.0 / 3.0 * math.Pi * rad * rad * rad * 3 * (math.Sin(qr) - qr*math.Cos(qr)) / (qr * qr * qr)
		i[k] = amp * amp
	}
	i0 := i[0]
	for k := range e {
		e[k] = 0.001 * i0
	}
	m, err := measurement.NewInMemory(q, i, e, 0, npts, map[string]interface{}{"filename": "sphere.dat"})
	if err != nil {
		tst.Fatalf("NewInMemory failed: %v", err)
	}
	return m
}
