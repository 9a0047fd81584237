// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package nxplot draws Nx curves.
package nxplot

import (
	"errors"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/biogo/fxstats/metrics"
)

// ErrNoData is returned when there is nothing to plot.
var ErrNoData = errors.New("nxplot: no aggregates")

// Size of the saved figure.
var (
	Width  = 6 * vg.Inch
	Height = 4 * vg.Inch
)

// Points returns the Nx curve of a as x percent against length.
func Points(a *metrics.Aggregate) plotter.XYs {
	curve := a.Curve()
	xys := make(plotter.XYs, len(curve))
	for i, b := range curve {
		xys[i].X = float64(i + 1)
		xys[i].Y = float64(b.N)
	}
	return xys
}

// New returns a plot holding one Nx line per aggregate.
func New(aggs []*metrics.Aggregate) (*plot.Plot, error) {
	if len(aggs) == 0 {
		return nil, ErrNoData
	}
	p := plot.New()
	p.Title.Text = "Nx"
	p.X.Label.Text = "x (%)"
	p.Y.Label.Text = "Nx (bp)"
	p.X.Min = 0
	p.X.Max = 100
	p.Legend.Top = true

	var lines []interface{}
	for _, a := range aggs {
		lines = append(lines, a.Name(), Points(a))
	}
	if err := plotutil.AddLines(p, lines...); err != nil {
		return nil, err
	}
	return p, nil
}

// Save writes the Nx plot of aggs to path. The image format is
// chosen by the file extension.
func Save(path string, aggs []*metrics.Aggregate) error {
	p, err := New(aggs)
	if err != nil {
		return err
	}
	return p.Save(Width, Height, path)
}
