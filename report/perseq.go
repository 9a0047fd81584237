// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/biogo/fxstats/summary"
)

// PerSeq writes per-record metrics as tab-separated lines of
// id, length, GC percent and mean quality.
type PerSeq struct {
	w *bufio.Writer
}

// NewPerSeq returns a PerSeq writing to w. Flush must be called
// once all records are written.
func NewPerSeq(w io.Writer) *PerSeq {
	return &PerSeq{w: bufio.NewWriter(w)}
}

// WriteSeq writes one record line.
func (p *PerSeq) WriteSeq(s summary.Seq) error {
	_, err := fmt.Fprintf(p.w, "%s\t%d\t%.2f\t%.2f\n", s.ID, s.Length, s.GC, s.MeanQuality)
	return err
}

// Flush writes any buffered lines.
func (p *PerSeq) Flush() error {
	return p.w.Flush()
}
