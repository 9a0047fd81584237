// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fastx reads FASTA and FASTQ records, optionally compressed,
// as raw bytes. Spaces within FASTA sequence lines are dropped and do
// not count toward record length.
package fastx

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/io/seqio/fastq"
	"github.com/biogo/biogo/seq/linear"
)

// ErrFormat is returned when a stream is neither FASTA nor FASTQ.
var ErrFormat = errors.New("not a FASTA or FASTQ stream")

// Format is a sequence file format.
type Format int

const (
	Unknown Format = iota
	FASTA
	FASTQ
)

func (f Format) String() string {
	switch f {
	case FASTA:
		return "fasta"
	case FASTQ:
		return "fastq"
	default:
		return "unknown"
	}
}

// Record is a single sequence record. Qual is nil for FASTA records
// and holds the encoded quality bytes for FASTQ records.
type Record struct {
	ID   string
	Seq  []byte
	Qual []byte
}

// Error is an error encountered while reading a named input.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return e.Err.Error()
	}
	return e.Path + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// Reader is a forward-only reader of sequence records.
type Reader struct {
	path   string
	format Format
	sc     *seqio.Scanner
	rec    Record
	err    error

	closers []io.Closer
}

// NewReader returns a Reader for the FASTA or FASTQ data in r. The
// format is taken from the first non-blank byte. An empty stream is
// valid and holds no records.
func NewReader(r io.Reader) (*Reader, error) {
	br := bufio.NewReader(r)
	format, err := detect(br)
	if err != nil {
		return nil, err
	}

	fr := &Reader{format: format}
	switch format {
	case FASTA:
		fr.sc = seqio.NewScanner(fasta.NewReader(br, linear.NewSeq("", nil, alphabet.DNA)))
	case FASTQ:
		// Sanger decoding is lossless for printable quality bytes, so
		// the raw bytes are recovered by encoding with it again.
		fr.sc = seqio.NewScanner(fastq.NewReader(br, linear.NewQSeq("", nil, alphabet.DNA, alphabet.Sanger)))
	}
	return fr, nil
}

func detect(br *bufio.Reader) (Format, error) {
	for {
		b, err := br.Peek(1)
		if err == io.EOF {
			return Unknown, nil
		}
		if err != nil {
			return Unknown, err
		}
		switch b[0] {
		case ' ', '\t', '\r', '\n':
			br.ReadByte()
		case '>':
			return FASTA, nil
		case '@':
			return FASTQ, nil
		default:
			return Unknown, fmt.Errorf("%w: leading byte %q", ErrFormat, b[0])
		}
	}
}

// Format returns the detected format, Unknown for an empty stream.
func (r *Reader) Format() Format { return r.format }

// Next advances to the next record. It returns false at the end of
// the input or on error.
func (r *Reader) Next() bool {
	if r.sc == nil || r.err != nil {
		return false
	}
	if !r.sc.Next() {
		r.err = r.sc.Error()
		return false
	}

	switch s := r.sc.Seq().(type) {
	case *linear.Seq:
		r.rec = Record{
			ID:  s.Name(),
			Seq: alphabet.LettersToBytes(s.Seq),
		}
	case *linear.QSeq:
		seq := make([]byte, len(s.Seq))
		qual := make([]byte, len(s.Seq))
		for i, ql := range s.Seq {
			seq[i] = byte(ql.L)
			qual[i] = ql.Q.Encode(alphabet.Sanger)
		}
		r.rec = Record{ID: s.Name(), Seq: seq, Qual: qual}
	default:
		r.err = fmt.Errorf("fastx: unexpected sequence type %T", s)
		return false
	}
	return true
}

// Record returns the current record. The returned slices are not
// reused by later calls to Next.
func (r *Reader) Record() Record { return r.rec }

// Err returns the first error encountered, or nil at a clean end
// of input.
func (r *Reader) Err() error {
	if r.err == nil {
		return nil
	}
	return &Error{Path: r.path, Err: r.err}
}

// Close releases any decompressor and file held by the Reader.
func (r *Reader) Close() error {
	var err error
	for i := len(r.closers) - 1; i >= 0; i-- {
		if cerr := r.closers[i].Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	r.closers = nil
	return err
}
