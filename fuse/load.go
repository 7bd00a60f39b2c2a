package fuse

import (
	"encoding/json"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

type jsonTile struct {
	Width    int                `json:"width"`
	Height   int                `json:"height"`
	Shortval map[string][][]int `json:"shortval"`
	Wire     map[string][][]int `json:"wire"`
	Longval  map[string][][]int `json:"longval"`
	Longfuse map[string][][]int `json:"longfuse"`
	Const    map[string][][]int `json:"const"`
}

type jsonDatabase struct {
	Grid  [][]int                   `json:"grid"`
	Tiles map[string]jsonTile       `json:"tiles"`
	Fuses map[string]map[string]int `json:"fuses"`
}

// Load reads a fuse database from its JSON form:
//
//	{
//		"grid": [[ttyp, ...], ...],
//		"tiles": {"ttyp": {"width": w, "height": h,
//			"shortval": {"key": [[a, b, fuse, ...], ...]},
//			"wire": {...}, "longval": {...}, "longfuse": {...}, "const": {...}}},
//		"fuses": {"fuse": {"ttyp": row*100+col}}
//	}
//
func Load(r io.Reader) (*Database, error) {
	var jd jsonDatabase
	if err := json.NewDecoder(r).Decode(&jd); err != nil {
		return nil, errors.Wrap(err, "decode fuse database")
	}

	db := &Database{
		Grid:  jd.Grid,
		Tiles: make(map[int]*TileType, len(jd.Tiles)),
		Fuses: make(FuseIndex, len(jd.Fuses)),
	}
	for k, jt := range jd.Tiles {
		ttyp, err := strconv.Atoi(k)
		if err != nil {
			return nil, errors.Wrapf(err, "tile type %q", k)
		}
		tt := &TileType{Width: jt.Width, Height: jt.Height}
		if tt.Shortval, err = loadTable(jt.Shortval, NewShortvalRow); err != nil {
			return nil, errors.Wrapf(err, "tile type %d: %s", ttyp, TableShortval)
		}
		if tt.Wire, err = loadTable(jt.Wire, NewWireRow); err != nil {
			return nil, errors.Wrapf(err, "tile type %d: %s", ttyp, TableWire)
		}
		if tt.Longval, err = loadTable(jt.Longval, NewLongvalRow); err != nil {
			return nil, errors.Wrapf(err, "tile type %d: %s", ttyp, TableLongval)
		}
		if tt.Longfuse, err = loadTable(jt.Longfuse, NewLongfuseRow); err != nil {
			return nil, errors.Wrapf(err, "tile type %d: %s", ttyp, TableLongfuse)
		}
		if tt.Const, err = loadTable(jt.Const, NewConstRow); err != nil {
			return nil, errors.Wrapf(err, "tile type %d: %s", ttyp, TableConst)
		}
		db.Tiles[ttyp] = tt
	}
	for k, m := range jd.Fuses {
		f, err := strconv.Atoi(k)
		if err != nil {
			return nil, errors.Wrapf(err, "fuse %q", k)
		}
		pos := make(map[int]int, len(m))
		for tk, num := range m {
			ttyp, err := strconv.Atoi(tk)
			if err != nil {
				return nil, errors.Wrapf(err, "fuse %d: tile type %q", f, tk)
			}
			pos[ttyp] = num
		}
		db.Fuses[f] = pos
	}
	return db, nil
}

func loadTable[R Row](in map[string][][]int, newRow func([]int) (R, error)) (map[int][]R, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make(map[int][]R, len(in))
	for k, rows := range in {
		key, err := strconv.Atoi(k)
		if err != nil {
			return nil, errors.Wrapf(err, "key %q", k)
		}
		rs := make([]R, 0, len(rows))
		for _, v := range rows {
			r, err := newRow(v)
			if err != nil {
				return nil, errors.Wrapf(err, "key %d", key)
			}
			rs = append(rs, r)
		}
		out[key] = rs
	}
	return out, nil
}
