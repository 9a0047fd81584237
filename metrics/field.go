// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Field identifies one of the named scalars held by an Aggregate.
type Field int

const (
	Cumul Field = iota
	Number
	MinSize
	MaxSize
	AvgSize
	AUN
	NumberN
	PercentN
	NumberGC
	PercentGC
	N50
	L50
	N80
	L80
	N90
	L90
	NG50
	LG50
	NG80
	LG80
	NG90
	LG90
	MeanQuality

	numFields
)

var fieldNames = [numFields]string{
	Cumul:       "cumul",
	Number:      "number",
	MinSize:     "min_size",
	MaxSize:     "max_size",
	AvgSize:     "avg_size",
	AUN:         "aun",
	NumberN:     "number_n",
	PercentN:    "percent_n",
	NumberGC:    "number_gc",
	PercentGC:   "percent_gc",
	N50:         "n50",
	L50:         "l50",
	N80:         "n80",
	L80:         "l80",
	N90:         "n90",
	L90:         "l90",
	NG50:        "ng50",
	LG50:        "lg50",
	NG80:        "ng80",
	LG80:        "lg80",
	NG90:        "ng90",
	LG90:        "lg90",
	MeanQuality: "mean_quality",
}

var (
	// ErrUnknownField is returned when a field name is not in the catalog.
	ErrUnknownField = errors.New("unknown field")

	// ErrNoFields is returned when a field list names no fields.
	ErrNoFields = errors.New("no fields requested")
)

// String returns the catalog name of f.
func (f Field) String() string {
	if f < 0 || f >= numFields {
		return "Field(" + strconv.Itoa(int(f)) + ")"
	}
	return fieldNames[f]
}

// Fields returns every field in catalog order.
func Fields() []Field {
	f := make([]Field, numFields)
	for i := range f {
		f[i] = Field(i)
	}
	return f
}

// ParseField returns the field with the given catalog name.
func ParseField(name string) (Field, error) {
	for i, n := range fieldNames {
		if n == name {
			return Field(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// ParseFields parses a comma-separated list of field names. Every name
// must be in the catalog and at least one name must be given.
func ParseFields(list string) ([]Field, error) {
	if strings.TrimSpace(list) == "" {
		return nil, ErrNoFields
	}
	names := strings.Split(list, ",")
	fields := make([]Field, 0, len(names))
	for _, n := range names {
		f, err := ParseField(strings.TrimSpace(n))
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	return fields, nil
}

// Value is a field value, either an integer or a float.
type Value struct {
	float bool
	i     int
	f     float64
}

// Int returns an integer Value.
func Int(v int) Value { return Value{i: v} }

// Float returns a floating point Value.
func Float(v float64) Value { return Value{float: true, f: v} }

// IsFloat reports whether v holds a float.
func (v Value) IsFloat() bool { return v.float }

// Int returns v as an int, truncating a float.
func (v Value) Int() int {
	if v.float {
		return int(v.f)
	}
	return v.i
}

// Float returns v as a float64.
func (v Value) Float() float64 {
	if v.float {
		return v.f
	}
	return float64(v.i)
}

// String formats integers in decimal and floats in the shortest
// representation that round-trips.
func (v Value) String() string {
	if v.float {
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	}
	return strconv.Itoa(v.i)
}
