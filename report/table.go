// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report renders metrics aggregates as a table, as CSV or as
// a column-selected parsable stream.
package report

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/biogo/fxstats/metrics"
)

// row is one line of the summary table.
type row struct {
	label  string
	format func(*metrics.Aggregate) string
	// genome and quality rows are hidden when the first
	// aggregate has no such data.
	genome, quality bool
}

func count(f metrics.Field) func(*metrics.Aggregate) string {
	return func(a *metrics.Aggregate) string { return comma(a.Value(f)) }
}

func pair(n, l metrics.Field) func(*metrics.Aggregate) string {
	return func(a *metrics.Aggregate) string {
		return fmt.Sprintf("%s (%s)", comma(a.Value(n)), comma(a.Value(l)))
	}
}

func share(n, p metrics.Field) func(*metrics.Aggregate) string {
	return func(a *metrics.Aggregate) string {
		return fmt.Sprintf("%s (%.2f%%)", comma(a.Value(n)), a.Value(p).Float())
	}
}

func comma(v metrics.Value) string {
	if v.IsFloat() {
		return humanize.Commaf(v.Float())
	}
	return humanize.Comma(int64(v.Int()))
}

var rows = []row{
	{label: "Cumul. size", format: count(metrics.Cumul)},
	{label: "Seq. number", format: count(metrics.Number)},
	{label: "N50 (L50)", format: pair(metrics.N50, metrics.L50)},
	{label: "N80 (L80)", format: pair(metrics.N80, metrics.L80)},
	{label: "N90 (L90)", format: pair(metrics.N90, metrics.L90)},
	{label: "Min. size", format: count(metrics.MinSize)},
	{label: "Max. size", format: count(metrics.MaxSize)},
	{label: "Avg. size", format: count(metrics.AvgSize)},
	{label: "auN", format: count(metrics.AUN)},
	{label: "Ns Number", format: share(metrics.NumberN, metrics.PercentN)},
	{label: "GC Number", format: share(metrics.NumberGC, metrics.PercentGC)},
	{label: "NG50 (LG50)", format: pair(metrics.NG50, metrics.LG50), genome: true},
	{label: "NG80 (LG80)", format: pair(metrics.NG80, metrics.LG80), genome: true},
	{label: "NG90 (LG90)", format: pair(metrics.NG90, metrics.LG90), genome: true},
	{label: "Mean quality", format: count(metrics.MeanQuality), quality: true},
}

// Table writes a table with one column per aggregate.
func Table(w io.Writer, aggs []*metrics.Aggregate) error {
	if len(aggs) == 0 {
		return nil
	}
	first := aggs[0]
	showGenome := first.Value(metrics.NG50).Int() != 0 || first.Value(metrics.LG50).Int() != 0
	showQuality := first.Value(metrics.MeanQuality).Int() != 0

	t := table.NewWriter()
	style := table.StyleLight
	style.Format.Header = text.FormatDefault
	t.SetStyle(style)

	header := table.Row{""}
	configs := []table.ColumnConfig{{Number: 1, Align: text.AlignLeft}}
	for i, a := range aggs {
		header = append(header, a.Name())
		configs = append(configs, table.ColumnConfig{
			Number:      i + 2,
			Align:       text.AlignRight,
			AlignHeader: text.AlignRight,
		})
	}
	t.AppendHeader(header)
	t.SetColumnConfigs(configs)

	for _, r := range rows {
		if (r.genome && !showGenome) || (r.quality && !showQuality) {
			continue
		}
		line := table.Row{r.label}
		for _, a := range aggs {
			line = append(line, r.format(a))
		}
		t.AppendRow(line)
	}

	_, err := fmt.Fprintln(w, t.Render())
	return err
}
