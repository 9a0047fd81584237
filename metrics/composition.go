// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics

// Composition is a table of byte occurrence counts.
type Composition [256]int

// Count adds the bytes of seq to the table.
func (c *Composition) Count(seq []byte) {
	for _, b := range seq {
		c[b]++
	}
}

// Ambiguous returns the number of N and n bytes counted.
func (c *Composition) Ambiguous() int {
	return c['N'] + c['n']
}

// GC returns the number of G, g, C and c bytes counted.
func (c *Composition) GC() int {
	return c['G'] + c['g'] + c['C'] + c['c']
}

// GCOf returns the number of upper case G and C bytes in seq.
// Soft-masked bases are not counted.
func GCOf(seq []byte) int {
	var n int
	for _, b := range seq {
		if b == 'G' || b == 'C' {
			n++
		}
	}
	return n
}

// percent returns n as a percentage of total.
func percent(n, total int) float64 {
	return float64(n) / float64(total) * 100
}
