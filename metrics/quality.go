// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics

import "gonum.org/v1/gonum/stat"

// QualityAccumulator collects per-record mean base qualities.
type QualityAccumulator struct {
	// Offset is the Phred encoding offset subtracted
	// from each quality byte, usually 33 or 64.
	Offset byte

	means []float64
}

// RecordMean returns the mean quality of qual decoded with offset.
// It returns false if qual is empty.
func RecordMean(qual []byte, offset byte) (float64, bool) {
	if len(qual) == 0 {
		return 0, false
	}
	var sum int
	for _, q := range qual {
		sum += int(q) - int(offset)
	}
	return float64(sum) / float64(len(qual)), true
}

// Add records the mean quality of qual. Records without quality
// data are ignored and do not contribute to the run mean.
func (q *QualityAccumulator) Add(qual []byte) (mean float64, ok bool) {
	mean, ok = RecordMean(qual, q.Offset)
	if ok {
		q.means = append(q.means, mean)
	}
	return mean, ok
}

// Len returns the number of records that carried quality data.
func (q *QualityAccumulator) Len() int { return len(q.means) }

// Mean returns the unweighted mean of the per-record means, or zero
// if no record carried quality data. Records are not weighted by
// length.
func (q *QualityAccumulator) Mean() float64 {
	if len(q.means) == 0 {
		return 0
	}
	return stat.Mean(q.means, nil)
}

// Reset discards all collected means.
func (q *QualityAccumulator) Reset() {
	q.means = nil
}
