package fuse

import "github.com/pkg/errors"

// A Row is a fuse table row. FuseRefs returns the row's fuse references,
// without its keys.
//
type Row interface {
	FuseRefs() []int
}

// ShortvalRow is a row of a shortval table: two keys, then fuse references.
//
type ShortvalRow struct {
	A, B  int
	Fuses []int
}

// FuseRefs implements Row.
func (r ShortvalRow) FuseRefs() []int { return r.Fuses }

// WireRow is a row of a wire table. Src and Dest are wire ids from the
// wirenames table. A negative Src marks an exclusion of the -Src -> Dest
// connection.
//
type WireRow struct {
	Src, Dest int
	Fuses     []int
}

// FuseRefs implements Row.
func (r WireRow) FuseRefs() []int { return r.Fuses }

// LongvalRow is a row of a longval table: sixteen keys, then fuse references.
//
type LongvalRow struct {
	Keys  [16]int
	Fuses []int
}

// FuseRefs implements Row.
func (r LongvalRow) FuseRefs() []int { return r.Fuses }

// LongfuseRow is a row of a longfuse table: one key, then fuse references.
//
type LongfuseRow struct {
	Key   int
	Fuses []int
}

// FuseRefs implements Row.
func (r LongfuseRow) FuseRefs() []int { return r.Fuses }

// ConstRow is a row of a const table. It has no key.
//
type ConstRow struct {
	Fuses []int
}

// FuseRefs implements Row.
func (r ConstRow) FuseRefs() []int { return r.Fuses }

func tuple(v []int, keys int) ([]int, error) {
	if len(v) < keys {
		return nil, errors.Errorf("row %v has %d values, need at least %d keys", v, len(v), keys)
	}
	return append([]int(nil), v[keys:]...), nil
}

// NewShortvalRow converts a positional tuple (a, b, fuses...).
//
func NewShortvalRow(v []int) (ShortvalRow, error) {
	fs, err := tuple(v, 2)
	if err != nil {
		return ShortvalRow{}, err
	}
	return ShortvalRow{A: v[0], B: v[1], Fuses: fs}, nil
}

// NewWireRow converts a positional tuple (src, dest, fuses...).
//
func NewWireRow(v []int) (WireRow, error) {
	fs, err := tuple(v, 2)
	if err != nil {
		return WireRow{}, err
	}
	return WireRow{Src: v[0], Dest: v[1], Fuses: fs}, nil
}

// NewLongvalRow converts a positional tuple (k0, ..., k15, fuses...).
//
func NewLongvalRow(v []int) (LongvalRow, error) {
	fs, err := tuple(v, 16)
	if err != nil {
		return LongvalRow{}, err
	}
	r := LongvalRow{Fuses: fs}
	copy(r.Keys[:], v)
	return r, nil
}

// NewLongfuseRow converts a positional tuple (key, fuses...).
//
func NewLongfuseRow(v []int) (LongfuseRow, error) {
	fs, err := tuple(v, 1)
	if err != nil {
		return LongfuseRow{}, err
	}
	return LongfuseRow{Key: v[0], Fuses: fs}, nil
}

// NewConstRow converts a positional tuple (fuses...).
//
func NewConstRow(v []int) (ConstRow, error) {
	fs, _ := tuple(v, 0)
	return ConstRow{Fuses: fs}, nil
}
