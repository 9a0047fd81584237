// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// fxstats computes summary statistics of FASTA and FASTQ files,
// optionally gzip or lz4 compressed. For each file it reports the
// total length, number of sequences, N50/L50, N80/L80, N90/L90,
// min, max and average sequence size, auN, N and GC content and,
// for FASTQ, the mean read quality. Given a genome size it also
// reports NG50/LG50, NG80/LG80 and NG90/LG90.
package main

import (
	"os"

	"github.com/fatih/color"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v.\n", err)
		os.Exit(1)
	}
}
