// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nxplot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biogo/fxstats/metrics"
)

func aggregate(t *testing.T, name string, lengths ...int) *metrics.Aggregate {
	t.Helper()
	tally := metrics.NewTally(33)
	for _, l := range lengths {
		tally.Add(make([]byte, l), nil)
	}
	a, err := metrics.Finalize(tally, name, 0)
	require.NoError(t, err)
	return a
}

func TestPoints(t *testing.T) {
	a := aggregate(t, "a", 60, 30, 10)
	xys := Points(a)
	require.Len(t, xys, 100)

	assert.Equal(t, 1.0, xys[0].X)
	assert.Equal(t, 60.0, xys[0].Y)
	assert.Equal(t, 60.0, xys[59].Y)
	assert.Equal(t, 30.0, xys[60].Y)
	assert.Equal(t, 10.0, xys[99].Y)
	assert.Equal(t, 100.0, xys[99].X)
	for i := 1; i < len(xys); i++ {
		assert.LessOrEqual(t, xys[i].Y, xys[i-1].Y)
	}
}

func TestSave(t *testing.T) {
	aggs := []*metrics.Aggregate{
		aggregate(t, "a", 60, 30, 10),
		aggregate(t, "b", 5, 5, 5, 5),
	}
	for _, name := range []string{"nx.png", "nx.svg"} {
		path := filepath.Join(t.TempDir(), name)
		require.NoError(t, Save(path, aggs))
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}

func TestSaveNoData(t *testing.T) {
	err := Save(filepath.Join(t.TempDir(), "nx.png"), nil)
	assert.ErrorIs(t, err, ErrNoData)
}
