// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package summary computes one metrics.Aggregate per sequence file.
package summary

import (
	"errors"
	"fmt"
	"time"

	"github.com/biogo/fxstats/fastx"
	"github.com/biogo/fxstats/logging"
	"github.com/biogo/fxstats/metrics"
)

// ErrNames is returned when the number of display names does not
// match the number of files.
var ErrNames = errors.New("name count does not match file count")

// Seq holds the metrics of a single kept record.
type Seq struct {
	ID          string
	Length      int
	GC          float64 // Percent of G and C bases, either case.
	MeanQuality float64 // Zero when the record has no qualities.
}

// SeqWriter receives per-record metrics.
type SeqWriter interface {
	WriteSeq(Seq) error
}

// Options control how files are summarised.
type Options struct {
	// MinSize is the length below which records are skipped.
	MinSize int

	// GenomeSize is the target for NGx/LGx, ignored if not positive.
	GenomeSize int64

	// QualityOffset is the Phred offset of quality bytes.
	QualityOffset byte

	// PerSeq, if not nil, is sent every kept record.
	PerSeq SeqWriter
}

// Runner summarises files one at a time, reusing its working state.
type Runner struct {
	opts  Options
	tally *metrics.Tally
}

// NewRunner returns a Runner using opts.
func NewRunner(opts Options) *Runner {
	return &Runner{opts: opts, tally: metrics.NewTally(opts.QualityOffset)}
}

// File summarises the records at path, labelling the result with
// name. It returns an error wrapping metrics.ErrEmptyInput if no
// record passes the minimum size.
func (r *Runner) File(path, name string) (*metrics.Aggregate, error) {
	log := logging.WithFile(path)
	start := time.Now()

	in, err := fastx.Open(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	var skipped int
	for in.Next() {
		rec := in.Record()
		if len(rec.Seq) < r.opts.MinSize {
			skipped++
			log.Debug().Str("id", rec.ID).Int("length", len(rec.Seq)).Msg("record below minimum size")
			continue
		}
		mean, _ := r.tally.Add(rec.Seq, rec.Qual)
		if r.opts.PerSeq != nil {
			s := Seq{ID: rec.ID, Length: len(rec.Seq), MeanQuality: mean}
			if len(rec.Seq) != 0 {
				s.GC = float64(metrics.GCOf(rec.Seq)) * 100 / float64(len(rec.Seq))
			}
			if err := r.opts.PerSeq.WriteSeq(s); err != nil {
				r.tally.Reset()
				return nil, fmt.Errorf("write per-sequence metrics: %w", err)
			}
		}
	}
	if err := in.Err(); err != nil {
		r.tally.Reset()
		return nil, err
	}

	kept := r.tally.Len()
	agg, err := metrics.Finalize(r.tally, name, r.opts.GenomeSize)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	log.Info().
		Str("format", in.Format().String()).
		Int("records", kept).
		Int("skipped", skipped).
		Dur("elapsed", time.Since(start)).
		Msg("summarised")
	return agg, nil
}

// Files summarises each path in order. names, if not nil, gives the
// display name of each file; otherwise names are derived from paths.
// The first error stops the run and no aggregates are returned.
func Files(paths, names []string, opts Options) ([]*metrics.Aggregate, error) {
	if names != nil && len(names) != len(paths) {
		return nil, fmt.Errorf("%w: %d names for %d files", ErrNames, len(names), len(paths))
	}
	r := NewRunner(opts)
	aggs := make([]*metrics.Aggregate, 0, len(paths))
	for i, p := range paths {
		name := fastx.BaseName(p)
		if names != nil {
			name = names[i]
		}
		a, err := r.File(p, name)
		if err != nil {
			return nil, err
		}
		aggs = append(aggs, a)
	}
	return aggs, nil
}
