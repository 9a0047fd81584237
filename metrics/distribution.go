// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics

import (
	"errors"
	"sort"
)

// ErrEmptyInput is returned when there are no sequences, or no
// sequence data, to compute a distribution from.
var ErrEmptyInput = errors.New("no sequences")

// Fractions are the breakpoints reported as N50, N80 and N90.
var Fractions = [3]float64{0.5, 0.8, 0.9}

// Breakpoint is an Nx/Lx pair.
type Breakpoint struct {
	N int // Length of the sequence reaching the threshold.
	L int // Number of sequences needed to reach it.
}

// Distribution holds the length distribution metrics of a set of
// sequences.
type Distribution struct {
	Total int
	Count int
	Min   int
	Max   int
	Avg   int
	AUN   int

	// Nx holds N50, N80 and N90 against the observed total and
	// NGx the same breakpoints against the genome size. NGx is
	// all zero when no genome size was given.
	Nx  [len(Fractions)]Breakpoint
	NGx [len(Fractions)]Breakpoint

	// Curve holds N1 through N100.
	Curve [100]Breakpoint
}

// cursor walks a list of ascending thresholds, recording the
// breakpoint at which each is first reached.
type cursor struct {
	thresholds []int
	points     []Breakpoint
	next       int
}

func newCursor(points []Breakpoint, thresholds []int) *cursor {
	return &cursor{thresholds: thresholds, points: points}
}

// step records every threshold reached by cumul.
func (c *cursor) step(length, rank, cumul int) {
	for c.next < len(c.thresholds) && cumul >= c.thresholds[c.next] {
		c.points[c.next] = Breakpoint{N: length, L: rank}
		c.next++
	}
}

func (c *cursor) done() bool { return c.next == len(c.thresholds) }

// thresholds returns the truncated products of each fraction and target.
func thresholds(fractions []float64, target int64) []int {
	t := make([]int, len(fractions))
	for i, f := range fractions {
		t[i] = int(f * float64(target))
	}
	return t
}

var curveFractions = func() []float64 {
	f := make([]float64, 100)
	for i := range f {
		f[i] = float64(i+1) / 100
	}
	return f
}()

// Distribute computes the length distribution metrics of lengths.
// NGx values are computed against genomeSize when it is positive.
// lengths is sorted in place into descending order.
func Distribute(lengths []int, genomeSize int64) (Distribution, error) {
	if len(lengths) == 0 {
		return Distribution{}, ErrEmptyInput
	}
	sort.Sort(sort.Reverse(sort.IntSlice(lengths)))

	var total int
	for _, l := range lengths {
		total += l
	}
	if total == 0 {
		return Distribution{}, ErrEmptyInput
	}

	d := Distribution{
		Total: total,
		Count: len(lengths),
		Max:   lengths[0],
		Min:   lengths[len(lengths)-1],
		Avg:   total / len(lengths),
	}

	observed := newCursor(d.Nx[:], thresholds(Fractions[:], int64(total)))
	curve := newCursor(d.Curve[:], thresholds(curveFractions, int64(total)))
	var genome *cursor
	if genomeSize > 0 {
		genome = newCursor(d.NGx[:], thresholds(Fractions[:], genomeSize))
	}

	var cumul, squares int
	for i, l := range lengths {
		cumul += l
		squares += l * l
		observed.step(l, i+1, cumul)
		curve.step(l, i+1, cumul)
		if genome != nil {
			genome.step(l, i+1, cumul)
		}
	}
	if !observed.done() || !curve.done() {
		panic("metrics: cumulative length did not reach total")
	}
	d.AUN = squares / total

	return d, nil
}
