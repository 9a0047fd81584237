// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metrics computes assembly and sequencing run summary
// statistics: Nx/Lx and NGx/LGx breakpoints, auN, size range, base
// composition and mean quality.
package metrics

import "fmt"

// Tally is the working state collected while reading one file.
// The zero value is ready to use with a quality offset of zero.
type Tally struct {
	lengths []int
	comp    Composition
	qual    QualityAccumulator
}

// NewTally returns a Tally decoding qualities with the given
// Phred offset.
func NewTally(offset byte) *Tally {
	return &Tally{qual: QualityAccumulator{Offset: offset}}
}

// Add records one sequence and its optional quality string. It
// returns the record's mean quality and whether qual was present.
func (t *Tally) Add(seq, qual []byte) (float64, bool) {
	t.lengths = append(t.lengths, len(seq))
	t.comp.Count(seq)
	return t.qual.Add(qual)
}

// Len returns the number of sequences recorded.
func (t *Tally) Len() int { return len(t.lengths) }

// Reset releases all collected state. The quality offset is kept.
func (t *Tally) Reset() {
	t.lengths = nil
	t.comp = Composition{}
	t.qual.Reset()
}

// counts holds the composition and quality results of a Tally.
type counts struct {
	numberN     int
	numberGC    int
	meanQuality float64
}

func count(t *Tally) counts {
	return counts{
		numberN:     t.comp.Ambiguous(),
		numberGC:    t.comp.GC(),
		meanQuality: t.qual.Mean(),
	}
}

// Aggregate is the finished set of metrics for one file.
type Aggregate struct {
	name       string
	genomeSize int64

	dist Distribution

	numberN   int
	percentN  float64
	numberGC  int
	percentGC float64

	meanQuality int
}

func assemble(name string, genomeSize int64, c counts, d Distribution) *Aggregate {
	return &Aggregate{
		name:        name,
		genomeSize:  genomeSize,
		dist:        d,
		numberN:     c.numberN,
		percentN:    percent(c.numberN, d.Total),
		numberGC:    c.numberGC,
		percentGC:   percent(c.numberGC, d.Total),
		meanQuality: int(c.meanQuality),
	}
}

// Finalize computes the Aggregate for the sequences recorded in t
// and resets t, whether or not it succeeds. It returns ErrEmptyInput
// if t holds no sequence data.
func Finalize(t *Tally, name string, genomeSize int64) (*Aggregate, error) {
	defer t.Reset()

	c := count(t)
	d, err := Distribute(t.lengths, genomeSize)
	if err != nil {
		return nil, err
	}
	return assemble(name, genomeSize, c, d), nil
}

// Name returns the display name of the aggregate.
func (a *Aggregate) Name() string { return a.name }

// GenomeSize returns the genome size NGx values were computed against,
// zero or negative if none was given.
func (a *Aggregate) GenomeSize() int64 { return a.genomeSize }

// Curve returns N1 through N100.
func (a *Aggregate) Curve() []Breakpoint {
	c := a.dist.Curve
	return c[:]
}

// Value returns the value of field f. It panics if f is not
// a catalog field.
func (a *Aggregate) Value(f Field) Value {
	d := &a.dist
	switch f {
	case Cumul:
		return Int(d.Total)
	case Number:
		return Int(d.Count)
	case MinSize:
		return Int(d.Min)
	case MaxSize:
		return Int(d.Max)
	case AvgSize:
		return Int(d.Avg)
	case AUN:
		return Int(d.AUN)
	case NumberN:
		return Int(a.numberN)
	case PercentN:
		return Float(a.percentN)
	case NumberGC:
		return Int(a.numberGC)
	case PercentGC:
		return Float(a.percentGC)
	case N50:
		return Int(d.Nx[0].N)
	case L50:
		return Int(d.Nx[0].L)
	case N80:
		return Int(d.Nx[1].N)
	case L80:
		return Int(d.Nx[1].L)
	case N90:
		return Int(d.Nx[2].N)
	case L90:
		return Int(d.Nx[2].L)
	case NG50:
		return Int(d.NGx[0].N)
	case LG50:
		return Int(d.NGx[0].L)
	case NG80:
		return Int(d.NGx[1].N)
	case LG80:
		return Int(d.NGx[1].L)
	case NG90:
		return Int(d.NGx[2].N)
	case LG90:
		return Int(d.NGx[2].L)
	case MeanQuality:
		return Int(a.meanQuality)
	default:
		panic(fmt.Sprintf("metrics: unknown field %v", f))
	}
}
