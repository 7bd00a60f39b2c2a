// Copyright 2026 The apicula Authors
// Licensed under the MIT license. See license text in the LICENSE file.

// Package unpacktest provides utility functions for testing the decoder: a
// builder for small synthetic chips and netlist comparison helpers.
//
package unpacktest

import (
	"bytes"
	"testing"

	"github.com/chiplet/apicula/bitmap"
	"github.com/chiplet/apicula/fuse"
	"github.com/chiplet/apicula/netlist"
)

// Chip is a synthetic fuse database together with a matching, zeroed,
// configuration bitmap.
//
type Chip struct {
	DB   *fuse.Database
	Bits *bitmap.Bitmap
}

// NewChip returns a chip with the given grid. sizes maps every tile type used
// in grid to its width and height. Tile types get empty fuse tables.
//
func NewChip(grid [][]int, sizes map[int][2]int) *Chip {
	db := &fuse.Database{
		Grid:  grid,
		Tiles: make(map[int]*fuse.TileType, len(sizes)),
		Fuses: make(fuse.FuseIndex),
	}
	for ttyp, sz := range sizes {
		db.Tiles[ttyp] = &fuse.TileType{Width: sz[0], Height: sz[1]}
	}
	w, h := 0, 0
	if len(grid) > 0 && len(grid[0]) > 0 {
		for _, ttyp := range grid[0] {
			w += sizes[ttyp][0]
		}
		for _, row := range grid {
			if len(row) > 0 {
				h += sizes[row[0]][1]
			}
		}
	}
	return &Chip{DB: db, Bits: bitmap.New(w, h)}
}

// Type returns the description of tile type ttyp.
//
func (c *Chip) Type(ttyp int) *fuse.TileType {
	tt, err := c.DB.TileType(ttyp)
	if err != nil {
		panic(err)
	}
	return tt
}

// Place sets the coordinate of fuse in tile type ttyp to row, col.
//
func (c *Chip) Place(fuse, ttyp, row, col int) {
	pos := c.DB.Fuses[fuse]
	if pos == nil {
		pos = make(map[int]int)
		c.DB.Fuses[fuse] = pos
	}
	pos[ttyp] = row*100 + col
}

// origin returns the position in the bitmap of the tile at grid position i, j.
func (c *Chip) origin(i, j int) (x, y int) {
	for k := 0; k < j; k++ {
		x += c.Type(c.DB.Grid[0][k]).Width
	}
	for k := 0; k < i; k++ {
		y += c.Type(c.DB.Grid[k][0]).Height
	}
	return x, y
}

// Blow sets the bits of the given fuses in the tile at grid position i, j
// (0-based). Fuses must have been placed for the tile's type.
//
func (c *Chip) Blow(i, j int, fuses ...int) {
	ttyp := c.DB.Grid[i][j]
	x, y := c.origin(i, j)
	for _, f := range fuses {
		row, col, ok := c.DB.Fuses.Lookup(f, ttyp)
		if !ok {
			panic("fuse not placed for tile type")
		}
		c.Bits.Set(y+row, x+col, true)
	}
}

// Verilog returns the Verilog text of m.
//
func Verilog(t *testing.T, m *netlist.Module) string {
	t.Helper()
	var b bytes.Buffer
	if err := m.WriteVerilog(&b); err != nil {
		t.Fatal(err)
	}
	return b.String()
}

// CompareModules fails t if a and b do not produce the same Verilog text.
//
func CompareModules(t *testing.T, a, b *netlist.Module) {
	t.Helper()
	va, vb := Verilog(t, a), Verilog(t, b)
	if va != vb {
		t.Errorf("netlists differ:\n%s\n----\n%s", va, vb)
	}
}
