// Copyright 2026 The apicula Authors
// Licensed under the MIT license. See license text in the LICENSE file.

package apicula

import (
	"github.com/chiplet/apicula/bitmap"
	"github.com/chiplet/apicula/fuse"
	"github.com/pkg/errors"
)

// A Tile is a non-empty tile of the chip. Row and Col are 0-based grid
// indices.
//
type Tile struct {
	Row, Col int
	Type     int
	Bits     bitmap.View
}

// Partition cuts bm into tiles following the database grid and returns the
// tiles with at least one bit set, in row-major order.
//
// Row heights are those of the first tile type of each grid row and column
// widths those of the tile types of the first grid row. A tile type whose
// geometry does not fit its grid cell, or a grid that does not cover bm
// exactly, is an error.
//
func Partition(db *fuse.Database, bm *bitmap.Bitmap) ([]Tile, error) {
	if len(db.Grid) == 0 {
		if bm.Width() != 0 || bm.Height() != 0 {
			return nil, errors.Errorf("empty grid, bitmap is %dx%d", bm.Width(), bm.Height())
		}
		return nil, nil
	}
	cols := len(db.Grid[0])
	if cols == 0 {
		return nil, errors.New("grid row 0 is empty")
	}
	widths := make([]int, cols)
	for j, ttyp := range db.Grid[0] {
		tt, err := db.TileType(ttyp)
		if err != nil {
			return nil, errors.Wrapf(err, "grid column %d", j)
		}
		widths[j] = tt.Width
	}

	var tiles []Tile
	x, y := 0, 0
	for i, row := range db.Grid {
		if len(row) != cols {
			return nil, errors.Errorf("grid row %d has %d tiles, expected %d", i, len(row), cols)
		}
		first, err := db.TileType(row[0])
		if err != nil {
			return nil, errors.Wrapf(err, "grid row %d", i)
		}
		h := first.Height
		x = 0
		for j, ttyp := range row {
			tt, err := db.TileType(ttyp)
			if err != nil {
				return nil, errors.Wrapf(err, "tile %d,%d", i, j)
			}
			w := widths[j]
			if tt.Width != w || tt.Height != h {
				return nil, errors.Errorf("tile %d,%d: type %d is %dx%d, grid cell is %dx%d",
					i, j, ttyp, tt.Width, tt.Height, w, h)
			}
			v, err := bm.View(x, y, w, h)
			if err != nil {
				return nil, errors.Wrapf(err, "tile %d,%d", i, j)
			}
			if v.Any() {
				tiles = append(tiles, Tile{Row: i, Col: j, Type: ttyp, Bits: v})
			}
			x += w
		}
		y += h
	}
	if x != bm.Width() || y != bm.Height() {
		return nil, errors.Errorf("grid covers %dx%d, bitmap is %dx%d", x, y, bm.Width(), bm.Height())
	}
	return tiles, nil
}
