// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fastx

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/pgzip"
	"github.com/pierrec/lz4/v4"
)

// Stdin is the path that names standard input.
const Stdin = "-"

// Open opens the sequence file at path. Files ending in .gz are
// gunzipped and files ending in .lz4 are lz4 decompressed.
func Open(path string) (*Reader, error) {
	var (
		src     io.Reader
		closers []io.Closer
	)
	if path == Stdin {
		src = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, &Error{Path: path, Err: err}
		}
		src = f
		closers = append(closers, f)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		gz, err := pgzip.NewReader(src)
		if err != nil {
			closeAll(closers)
			return nil, &Error{Path: path, Err: err}
		}
		src = gz
		closers = append(closers, gz)
	case ".lz4":
		src = lz4.NewReader(src)
	}

	r, err := NewReader(src)
	if err != nil {
		closeAll(closers)
		return nil, &Error{Path: path, Err: err}
	}
	r.path = path
	r.closers = closers
	return r, nil
}

func closeAll(c []io.Closer) {
	for i := len(c) - 1; i >= 0; i-- {
		c[i].Close()
	}
}

var (
	compressionExts = []string{".gz", ".lz4"}
	formatExts      = []string{".fasta", ".fastq", ".fa", ".fq"}
)

// BaseName returns the name used to label results for path: the
// final path element without compression and format extensions.
func BaseName(path string) string {
	if path == Stdin {
		return "stdin"
	}
	name := filepath.Base(path)
	name = trimAny(name, compressionExts)
	return trimAny(name, formatExts)
}

func trimAny(name string, exts []string) string {
	for _, ext := range exts {
		if len(name) > len(ext) && strings.EqualFold(name[len(name)-len(ext):], ext) {
			return name[:len(name)-len(ext)]
		}
	}
	return name
}
