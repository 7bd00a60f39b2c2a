// Copyright 2026 The apicula Authors
// Licensed under the MIT license. See license text in the LICENSE file.

// Package decode translates the matched fuse rows of a tile into its
// configuration: routing connections, LUT truth tables, flip-flop and I/O
// buffer variants.
//
// A feature whose table is absent from a tile decodes to its empty value.
//
package decode

import "github.com/chiplet/apicula/fuse"

// Fuse table keys of each feature.
//
const (
	keyWire = 2  // wire
	keyLUT  = 5  // shortval
	keyDFF  = 25 // shortval, one key per slot: 25, 26, 27
	keyIOB  = 23 // longval, one key per slot: 23, 24
)

// Slot counts.
//
const (
	DFFSlots = 3
	IOBSlots = 2
)

// Features is the decoded configuration of a tile.
//
type Features struct {
	Wires []WirePair
	LUTs  map[int]uint16
	DFFs  [DFFSlots]DFFKind
	IOBs  [IOBSlots]IOBKind
}

// Decode runs all feature decoders over m.
//
func Decode(m *fuse.Matched) *Features {
	return &Features{
		Wires: Wires(m),
		LUTs:  LUTs(m),
		DFFs:  DFFs(m),
		IOBs:  IOBs(m),
	}
}

// Empty reports whether f configures nothing.
//
func (f *Features) Empty() bool {
	if len(f.Wires) > 0 || len(f.LUTs) > 0 {
		return false
	}
	for _, k := range f.DFFs {
		if k != NoDFF {
			return false
		}
	}
	for _, k := range f.IOBs {
		if k != NoIOB {
			return false
		}
	}
	return true
}
