// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biogo/fxstats/metrics"
	"github.com/biogo/fxstats/summary"
)

func aggregate(t *testing.T, name string, genome int64, quals bool, seqs ...string) *metrics.Aggregate {
	t.Helper()
	tally := metrics.NewTally(33)
	for _, s := range seqs {
		var q []byte
		if quals {
			q = bytes.Repeat([]byte("5"), len(s))
		}
		tally.Add([]byte(s), q)
	}
	a, err := metrics.Finalize(tally, name, genome)
	require.NoError(t, err)
	return a
}

func TestTable(t *testing.T) {
	big := strings.Repeat("GC", 600) + strings.Repeat("AT", 400)
	a := aggregate(t, "asm", 0, false, big, "NNAC")
	b := aggregate(t, "reads", 0, false, "ACGT")

	var buf bytes.Buffer
	require.NoError(t, Table(&buf, []*metrics.Aggregate{a, b}))
	out := buf.String()

	assert.Contains(t, out, "asm")
	assert.Contains(t, out, "reads")
	assert.Contains(t, out, "2,004")
	assert.Contains(t, out, "2,000 (1)")
	assert.Contains(t, out, "2 (0.10%)")
	assert.NotContains(t, out, "NG50")
	assert.NotContains(t, out, "Mean quality")
}

func TestTableKeepsNameCase(t *testing.T) {
	a := aggregate(t, "myAsm", 0, false, "ACGT")

	var buf bytes.Buffer
	require.NoError(t, Table(&buf, []*metrics.Aggregate{a}))
	assert.Contains(t, buf.String(), "myAsm")
	assert.NotContains(t, buf.String(), "MYASM")
}

func TestTableOptionalRows(t *testing.T) {
	a := aggregate(t, "reads", 10, true, "ACGTACGT", "ACGT")

	var buf bytes.Buffer
	require.NoError(t, Table(&buf, []*metrics.Aggregate{a}))
	out := buf.String()

	assert.Contains(t, out, "NG50 (LG50)")
	assert.Contains(t, out, "Mean quality")
	assert.Contains(t, out, "20")
}

func TestTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Table(&buf, nil))
	assert.Empty(t, buf.String())
}

func TestCSV(t *testing.T) {
	a := aggregate(t, "a", 0, false, "GGCC", "AT")
	b := aggregate(t, "b", 0, false, "ACGT")

	var buf bytes.Buffer
	require.NoError(t, CSV(&buf, []*metrics.Aggregate{a, b}))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 24)
	assert.Equal(t, "filename,a,b", lines[0])
	assert.Equal(t, "cumul,6,4", lines[1])
	assert.Equal(t, "number,2,1", lines[2])
	assert.Equal(t, "percent_n,0,0", lines[8])
	assert.Equal(t, "number_gc,4,2", lines[9])
	assert.Equal(t, "percent_gc,66.66666666666666,50", lines[10])
	assert.Equal(t, "mean_quality,0,0", lines[23])
}

func TestParsable(t *testing.T) {
	a := aggregate(t, "a", 0, false, "GGCC", "AT")
	fields := []metrics.Field{metrics.N50, metrics.L50, metrics.PercentGC}

	var buf bytes.Buffer
	require.NoError(t, Parsable(&buf, []*metrics.Aggregate{a}, fields, false))
	assert.Equal(t, "filename,n50,l50,percent_gc\na,4,1,66.66666666666666\n", buf.String())

	buf.Reset()
	require.NoError(t, Parsable(&buf, []*metrics.Aggregate{a}, fields, true))
	assert.Equal(t, "a,4,1,66.66666666666666\n", buf.String())
}

func TestPerSeq(t *testing.T) {
	var buf bytes.Buffer
	p := NewPerSeq(&buf)

	var w summary.SeqWriter = p
	require.NoError(t, w.WriteSeq(summary.Seq{ID: "r1", Length: 12, GC: 41.666666, MeanQuality: 30.5}))
	require.NoError(t, w.WriteSeq(summary.Seq{ID: "ctg", Length: 4, GC: 50}))
	require.NoError(t, p.Flush())

	assert.Equal(t, "r1\t12\t41.67\t30.50\nctg\t4\t50.00\t0.00\n", buf.String())
}
