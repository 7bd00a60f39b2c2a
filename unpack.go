// Copyright 2026 The apicula Authors
// Licensed under the MIT license. See license text in the LICENSE file.

package apicula

import (
	"sync"

	"github.com/chiplet/apicula/bitmap"
	"github.com/chiplet/apicula/decode"
	"github.com/chiplet/apicula/fuse"
	"github.com/chiplet/apicula/netlist"
	"github.com/pkg/errors"
)

// DecodeTile matches the fuse tables of t and decodes its features.
//
func DecodeTile(db *fuse.Database, t Tile) (*decode.Features, error) {
	m, err := db.Match(t.Type, t.Bits)
	if err != nil {
		return nil, errors.Wrap(err, tileName(t.Row+1, t.Col+1))
	}
	return decode.Decode(m), nil
}

// tileResult is the decoded contribution of a single tile.
type tileResult struct {
	f   *decode.Features
	m   *netlist.Module
	err error
}

func unpackTile(db *fuse.Database, t Tile) (r tileResult) {
	if r.f, r.err = DecodeTile(db, t); r.err != nil {
		return r
	}
	r.m = netlist.New()
	r.err = EmitTile(r.m, t.Row, t.Col, r.f)
	return r
}

// Unpack decodes the configuration bitmap bm into a netlist.
//
// Tiles are processed in grid order. With more than one worker (see
// WithWorkers), each tile is decoded into its own partial netlist and the
// partial netlists are merged in grid order, which yields the same netlist as a
// sequential run.
//
// Malformed geometry, fuses outside their tile and unwired I/O buffer ports
// abort the decode; no netlist is returned in that case.
//
func Unpack(db *fuse.Database, bm *bitmap.Bitmap, opts ...Option) (*netlist.Module, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	tiles, err := Partition(db, bm)
	if err != nil {
		cfg.logError("partition failed", "err", err)
		return nil, errors.Wrap(err, "partition")
	}
	cfg.logDebug("partitioned bitmap", "width", bm.Width(), "height", bm.Height(), "tiles", len(tiles))

	m := netlist.New()
	if cfg.workers <= 1 || len(tiles) < 2 {
		for _, t := range tiles {
			f, err := DecodeTile(db, t)
			if err != nil {
				cfg.logError("decode failed", "err", err)
				return nil, err
			}
			logTile(&cfg, t, f)
			if err = EmitTile(m, t.Row, t.Col, f); err != nil {
				cfg.logError("emit failed", "err", err)
				return nil, err
			}
		}
	} else {
		results := unpackParallel(db, tiles, cfg.workers)
		for i, r := range results {
			if r.err != nil {
				cfg.logError("unpack failed", "err", r.err)
				return nil, r.err
			}
			logTile(&cfg, tiles[i], r.f)
			if err = m.Merge(r.m); err != nil {
				return nil, errors.Wrap(err, tileName(tiles[i].Row+1, tiles[i].Col+1))
			}
		}
	}

	cfg.logInfo("unpacked bitstream", "tiles", len(tiles), "wires", len(m.Wires),
		"assigns", len(m.Assigns), "primitives", len(m.Primitives))
	return m, nil
}

func logTile(cfg *config, t Tile, f *decode.Features) {
	cfg.logDebug("tile", "row", t.Row+1, "col", t.Col+1, "type", t.Type,
		"wires", len(f.Wires), "luts", len(f.LUTs), "dff", f.DFFs, "iob", f.IOBs)
}

// unpackParallel splits tiles into one contiguous chunk per worker.
func unpackParallel(db *fuse.Database, tiles []Tile, workers int) []tileResult {
	results := make([]tileResult, len(tiles))
	size := len(tiles) / workers
	if size*workers < len(tiles) {
		size++
	}
	var wg sync.WaitGroup
	for lo := 0; lo < len(tiles); lo += size {
		hi := lo + size
		if hi > len(tiles) {
			hi = len(tiles)
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				results[i] = unpackTile(db, tiles[i])
			}
		}(lo, hi)
	}
	wg.Wait()
	return results
}
