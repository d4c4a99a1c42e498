// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package measurement

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestNewInMemoryWindow(tst *testing.T) {
	chk.PrintTitle("NewInMemoryWindow")

	q := []float64{0, 0.1, 0.2, 0.3, 0.4}
	i := []float64{10, 9, 8, 7, 6}
	e := []float64{1, 1, 1, 1, 1}
	m, err := NewInMemory(q, i, e, 1, 4, map[string]interface{}{"filename": "x.dat"})
	if err != nil {
		tst.Fatalf("NewInMemory failed: %v", err)
	}
	chk.Vector(tst, "WindowQ", 1e-15, WindowQ(m), []float64{0.1, 0.2, 0.3})
	chk.Vector(tst, "WindowI", 1e-15, WindowI(m), []float64{9, 8, 7})
	v, ok := m.GetParameter("filename")
	if !ok || v.(string) != "x.dat" {
		tst.Errorf("expected filename=x.dat, got %v (ok=%v)", v, ok)
	}
}

func TestNewInMemoryRejectsBadInput(tst *testing.T) {
	chk.PrintTitle("NewInMemoryRejectsBadInput")

	good := map[string]interface{}{"filename": "x.dat"}
	if _, err := NewInMemory([]float64{1, 2}, []float64{1}, []float64{1}, 0, 1, good); err == nil {
		tst.Errorf("expected length-mismatch error")
	}
	if _, err := NewInMemory([]float64{1, 2}, []float64{1, 2}, []float64{1, -1}, 0, 2, good); err == nil {
		tst.Errorf("expected non-positive sigma error")
	}
	if _, err := NewInMemory([]float64{1, 2}, []float64{1, 2}, []float64{1, 1}, 0, 2, nil); err == nil {
		tst.Errorf("expected missing filename error")
	}
}
