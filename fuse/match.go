package fuse

import (
	"sort"

	"github.com/pkg/errors"
)

// Bits is the configuration bitmap of a single tile.
//
type Bits interface {
	Width() int
	Height() int
	Get(row, col int) bool
}

// Matched holds the rows of each fuse table of a tile whose fuses are all set.
// Tables are keyed by sub-table key, as in TileType.
//
type Matched struct {
	Shortval map[int][]ShortvalRow
	Wire     map[int][]WireRow
	Longval  map[int][]LongvalRow
	Longfuse map[int][]LongfuseRow
	Const    map[int][]ConstRow
}

// Len returns the total number of matched rows.
//
func (m *Matched) Len() int {
	n := 0
	for _, rs := range m.Shortval {
		n += len(rs)
	}
	for _, rs := range m.Wire {
		n += len(rs)
	}
	for _, rs := range m.Longval {
		n += len(rs)
	}
	for _, rs := range m.Longfuse {
		n += len(rs)
	}
	for _, rs := range m.Const {
		n += len(rs)
	}
	return n
}

// Match matches all fuse tables of tile type ttyp against the tile bits.
// A row matches when every fuse reference that applies to ttyp points to a set
// bit. References that do not apply are skipped, so a row without any
// applicable reference always matches.
//
// A fuse whose coordinate falls outside the tile type's geometry is reported as
// an error.
//
func (db *Database) Match(ttyp int, bits Bits) (*Matched, error) {
	tt, err := db.TileType(ttyp)
	if err != nil {
		return nil, err
	}
	if bits.Width() != tt.Width || bits.Height() != tt.Height {
		return nil, errors.Errorf("tile bits %dx%d do not match tile type %d geometry %dx%d",
			bits.Width(), bits.Height(), ttyp, tt.Width, tt.Height)
	}
	mt := matcher{fi: db.Fuses, ttyp: ttyp, bits: bits}
	m := new(Matched)
	if m.Shortval, err = matchTable(&mt, TableShortval, tt.Shortval); err != nil {
		return nil, err
	}
	if m.Wire, err = matchTable(&mt, TableWire, tt.Wire); err != nil {
		return nil, err
	}
	if m.Longval, err = matchTable(&mt, TableLongval, tt.Longval); err != nil {
		return nil, err
	}
	if m.Longfuse, err = matchTable(&mt, TableLongfuse, tt.Longfuse); err != nil {
		return nil, err
	}
	if m.Const, err = matchTable(&mt, TableConst, tt.Const); err != nil {
		return nil, err
	}
	return m, nil
}

type matcher struct {
	fi   FuseIndex
	ttyp int
	bits Bits
}

func (mt *matcher) match(fuses []int) (bool, error) {
	for _, f := range fuses {
		row, col, ok := mt.fi.Lookup(f, mt.ttyp)
		if !ok {
			continue
		}
		if row >= mt.bits.Height() || col >= mt.bits.Width() {
			return false, errors.Errorf("fuse %d at %d,%d is outside tile type %d", f, row, col, mt.ttyp)
		}
		if !mt.bits.Get(row, col) {
			return false, nil
		}
	}
	return true, nil
}

// matchTable returns the matching rows of every sub-table. Sub-tables are
// visited in key order and rows keep their table order. Sub-tables without any
// match are omitted.
//
func matchTable[R Row](mt *matcher, name string, table map[int][]R) (map[int][]R, error) {
	if len(table) == 0 {
		return nil, nil
	}
	keys := make([]int, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	var res map[int][]R
	for _, k := range keys {
		for _, r := range table[k] {
			ok, err := mt.match(r.FuseRefs())
			if err != nil {
				return nil, errors.Wrapf(err, "%s(%d)", name, k)
			}
			if !ok {
				continue
			}
			if res == nil {
				res = make(map[int][]R)
			}
			res[k] = append(res[k], r)
		}
	}
	return res, nil
}
