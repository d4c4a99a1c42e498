// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package measurement defines the read-only contract the BIFT engine needs
// from a scattering measurement, and a minimal in-memory implementation of
// it. Preprocessing (binning, zinger removal, q-calibration, curve
// averaging) lives outside this package and outside this module.
package measurement

import "github.com/cpmech/gosl/chk"

// Measurement is the read-only contract a scattering curve must satisfy to
// be usable by the search and single-solve entry points. Implementations
// are expected to be immutable for the duration of a search.
type Measurement interface {

	// QRange returns the half-open index window [qmin, qmax) selected for
	// this measurement.
	QRange() (qmin, qmax int)

	// Q returns the scattering vector magnitude at index k.
	Q(k int) float64

	// I returns the measured intensity at index k.
	I(k int) float64

	// Err returns the measured standard deviation at index k; always > 0.
	Err(k int) float64

	// Len returns the length of the underlying q/I/err sequences.
	Len() int

	// GetParameter returns a free-form parameter by name and whether it
	// was found. "filename" must always be present.
	GetParameter(name string) (value interface{}, found bool)
}

// InMemory is a minimal Measurement backed by plain slices.
type InMemory struct {
	q, i, err  []float64
	qmin, qmax int
	params     map[string]interface{}
}

// NewInMemory builds an InMemory measurement over q, i, err (identical
// length) windowed to [qmin, qmax). params must contain "filename".
func NewInMemory(q, i, err []float64, qmin, qmax int, params map[string]interface{}) (o *InMemory, e error) {
	if len(q) != len(i) || len(q) != len(err) {
		return nil, chk.Err("q, i and err must have the same length: %d, %d, %d", len(q), len(i), len(err))
	}
	if qmin < 0 || qmax > len(q) || qmin >= qmax {
		return nil, chk.Err("invalid q-range [%d, %d) for length %d", qmin, qmax, len(q))
	}
	for k := range err {
		if err[k] <= 0 {
			return nil, chk.Err("err[%d]=%v must be positive", k, err[k])
		}
	}
	if params == nil {
		params = make(map[string]interface{})
	}
	if _, ok := params["filename"]; !ok {
		return nil, chk.Err("params must contain \"filename\"")
	}
	return &InMemory{q: q, i: i, err: err, qmin: qmin, qmax: qmax, params: params}, nil
}

// QRange implements Measurement.
func (o *InMemory) QRange() (qmin, qmax int) { return o.qmin, o.qmax }

// Q implements Measurement.
func (o *InMemory) Q(k int) float64 { return o.q[k] }

// I implements Measurement.
func (o *InMemory) I(k int) float64 { return o.i[k] }

// Err implements Measurement.
func (o *InMemory) Err(k int) float64 { return o.err[k] }

// Len implements Measurement.
func (o *InMemory) Len() int { return len(o.q) }

// GetParameter implements Measurement.
func (o *InMemory) GetParameter(name string) (value interface{}, found bool) {
	value, found = o.params[name]
	return
}

// WindowQ returns the windowed q-slice [qmin, qmax).
func WindowQ(m Measurement) []float64 { return window(m, m.Q) }

// WindowI returns the windowed I-slice [qmin, qmax).
func WindowI(m Measurement) []float64 { return window(m, m.I) }

// WindowErr returns the windowed err-slice [qmin, qmax).
func WindowErr(m Measurement) []float64 { return window(m, m.Err) }

func window(m Measurement, at func(int) float64) []float64 {
	qmin, qmax := m.QRange()
	out := make([]float64, qmax-qmin)
	for k := qmin; k < qmax; k++ {
		out[k-qmin] = at(k)
	}
	return out
}
