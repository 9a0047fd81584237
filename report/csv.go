// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"encoding/csv"
	"io"

	"github.com/biogo/fxstats/metrics"
)

// CSV writes every field with one row per field and one column
// per aggregate.
func CSV(w io.Writer, aggs []*metrics.Aggregate) error {
	cw := csv.NewWriter(w)
	rec := make([]string, 0, len(aggs)+1)

	rec = append(rec, "filename")
	for _, a := range aggs {
		rec = append(rec, a.Name())
	}
	cw.Write(rec)

	for _, f := range metrics.Fields() {
		rec = append(rec[:0], f.String())
		for _, a := range aggs {
			rec = append(rec, a.Value(f).String())
		}
		cw.Write(rec)
	}

	cw.Flush()
	return cw.Error()
}

// Parsable writes one row per aggregate restricted to fields, preceded
// by a header row unless noHeader is set.
func Parsable(w io.Writer, aggs []*metrics.Aggregate, fields []metrics.Field, noHeader bool) error {
	cw := csv.NewWriter(w)
	rec := make([]string, 0, len(fields)+1)

	if !noHeader {
		rec = append(rec, "filename")
		for _, f := range fields {
			rec = append(rec, f.String())
		}
		cw.Write(rec)
	}

	for _, a := range aggs {
		rec = append(rec[:0], a.Name())
		for _, f := range fields {
			rec = append(rec, a.Value(f).String())
		}
		cw.Write(rec)
	}

	cw.Flush()
	return cw.Error()
}
