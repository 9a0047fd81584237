// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fastx

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/pgzip"
	"github.com/pierrec/lz4/v4"
	"gopkg.in/check.v1"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

const (
	fastaData = ">r1 first read\nACGT\nACnn\n>r2\nGGCC\n"
	fastqData = "@q1\nACGTN\n+\nII#+!\n@q2 desc\nGG\n+\n~5\n"
)

func readAll(c *check.C, r *Reader) []Record {
	var recs []Record
	for r.Next() {
		recs = append(recs, r.Record())
	}
	c.Assert(r.Err(), check.Equals, nil)
	return recs
}

func (s *S) TestReadFasta(c *check.C) {
	r, err := NewReader(strings.NewReader("\n\n" + fastaData))
	c.Assert(err, check.Equals, nil)
	c.Check(r.Format(), check.Equals, FASTA)
	c.Check(readAll(c, r), check.DeepEquals, []Record{
		{ID: "r1", Seq: []byte("ACGTACnn")},
		{ID: "r2", Seq: []byte("GGCC")},
	})
}

func (s *S) TestReadFastaDropsSpaces(c *check.C) {
	r, err := NewReader(strings.NewReader(">a\nAC GT\n"))
	c.Assert(err, check.Equals, nil)
	c.Check(readAll(c, r), check.DeepEquals, []Record{{ID: "a", Seq: []byte("ACGT")}})
}

func (s *S) TestReadFastq(c *check.C) {
	r, err := NewReader(strings.NewReader(fastqData))
	c.Assert(err, check.Equals, nil)
	c.Check(r.Format(), check.Equals, FASTQ)
	c.Check(readAll(c, r), check.DeepEquals, []Record{
		{ID: "q1", Seq: []byte("ACGTN"), Qual: []byte("II#+!")},
		{ID: "q2", Seq: []byte("GG"), Qual: []byte("~5")},
	})
}

func (s *S) TestReadEmpty(c *check.C) {
	for i, in := range []string{"", "\n \n"} {
		r, err := NewReader(strings.NewReader(in))
		c.Assert(err, check.Equals, nil, check.Commentf("Test %d", i))
		c.Check(r.Format(), check.Equals, Unknown)
		c.Check(r.Next(), check.Equals, false)
		c.Check(r.Err(), check.Equals, nil)
	}
}

func (s *S) TestReadUnknownFormat(c *check.C) {
	_, err := NewReader(strings.NewReader("ACGT\n"))
	c.Check(errors.Is(err, ErrFormat), check.Equals, true)
}

func writeFile(c *check.C, name string, wrap func(io.Writer) io.WriteCloser, data string) string {
	path := filepath.Join(c.MkDir(), name)
	f, err := os.Create(path)
	c.Assert(err, check.Equals, nil)
	defer f.Close()
	w := wrap(f)
	_, err = io.WriteString(w, data)
	c.Assert(err, check.Equals, nil)
	c.Assert(w.Close(), check.Equals, nil)
	return path
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func (s *S) TestOpen(c *check.C) {
	for i, t := range []struct {
		name string
		wrap func(io.Writer) io.WriteCloser
	}{
		{name: "plain.fq", wrap: func(w io.Writer) io.WriteCloser { return nopWriteCloser{w} }},
		{name: "reads.fastq.gz", wrap: func(w io.Writer) io.WriteCloser { return pgzip.NewWriter(w) }},
		{name: "reads.fq.lz4", wrap: func(w io.Writer) io.WriteCloser { return lz4.NewWriter(w) }},
	} {
		path := writeFile(c, t.name, t.wrap, fastqData)
		r, err := Open(path)
		c.Assert(err, check.Equals, nil, check.Commentf("Test %d", i))
		recs := readAll(c, r)
		c.Check(recs, check.HasLen, 2, check.Commentf("Test %d", i))
		c.Check(string(recs[0].Qual), check.Equals, "II#+!", check.Commentf("Test %d", i))
		c.Check(r.Close(), check.Equals, nil)
	}
}

func (s *S) TestOpenMissing(c *check.C) {
	path := filepath.Join(c.MkDir(), "missing.fa")
	_, err := Open(path)
	var ferr *Error
	c.Assert(errors.As(err, &ferr), check.Equals, true)
	c.Check(ferr.Path, check.Equals, path)
	c.Check(errors.Is(err, os.ErrNotExist), check.Equals, true)
}

func (s *S) TestOpenBadGzip(c *check.C) {
	path := writeFile(c, "bad.fa.gz", func(w io.Writer) io.WriteCloser { return nopWriteCloser{w} }, fastaData)
	_, err := Open(path)
	var ferr *Error
	c.Check(errors.As(err, &ferr), check.Equals, true)
}

func (s *S) TestBaseName(c *check.C) {
	for _, t := range []struct {
		path, want string
	}{
		{"data/reads.fastq.gz", "reads"},
		{"/abs/asm.fasta", "asm"},
		{"asm.fa", "asm"},
		{"reads.fq.lz4", "reads"},
		{"contigs.fna", "contigs.fna"},
		{"sample.v2.FASTA.GZ", "sample.v2"},
		{"-", "stdin"},
	} {
		c.Check(BaseName(t.path), check.Equals, t.want, check.Commentf("%s", t.path))
	}
}
