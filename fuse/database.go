// Copyright 2026 The apicula Authors
// Licensed under the MIT license. See license text in the LICENSE file.

// Package fuse models the vendor fuse database and matches its fuse tables
// against the configuration bits of a tile.
//
// A database describes the chip as a grid of tile types. Each tile type has a
// geometry (its size in configuration bits) and a set of fuse tables. A fuse
// table is a group of rows; a row carries a few table specific keys followed by
// fuse references. A fuse reference is resolved to a bit coordinate within the
// tile through the FuseIndex.
//
package fuse

import "github.com/pkg/errors"

// Table names.
//
const (
	TableShortval = "shortval"
	TableWire     = "wire"
	TableLongval  = "longval"
	TableLongfuse = "longfuse"
	TableConst    = "const"
)

// Database is a read-only fuse database.
//
type Database struct {
	// Grid holds the tile type of every tile, row by row.
	Grid [][]int
	// Tiles maps tile type identifiers to their description.
	Tiles map[int]*TileType
	// Fuses maps fuse references to bit coordinates.
	Fuses FuseIndex
}

// TileType describes the geometry and fuse tables of a tile type.
// Tables are keyed by sub-table key.
//
type TileType struct {
	Width    int
	Height   int
	Shortval map[int][]ShortvalRow
	Wire     map[int][]WireRow
	Longval  map[int][]LongvalRow
	Longfuse map[int][]LongfuseRow
	Const    map[int][]ConstRow
}

// TileType returns the description of tile type ttyp.
//
func (db *Database) TileType(ttyp int) (*TileType, error) {
	tt, ok := db.Tiles[ttyp]
	if !ok || tt == nil {
		return nil, errors.Errorf("unknown tile type %d", ttyp)
	}
	return tt, nil
}

// FuseIndex maps a fuse reference and a tile type to the fuse's bit coordinate
// in that tile type, encoded as row*100+col.
//
type FuseIndex map[int]map[int]int

// Lookup returns the bit coordinate of fuse within a tile of type ttyp.
// ok is false when the fuse does not apply to that tile type: negative
// fuse references, unknown fuses and negative coordinates.
//
func (fi FuseIndex) Lookup(fuse, ttyp int) (row, col int, ok bool) {
	if fuse < 0 {
		return 0, 0, false
	}
	num, ok := fi[fuse][ttyp]
	if !ok || num < 0 {
		return 0, 0, false
	}
	return num / 100, num % 100, true
}
