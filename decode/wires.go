package decode

import (
	"sort"

	"github.com/chiplet/apicula/fuse"
	"github.com/chiplet/apicula/wirenames"
)

// WirePair is a routing connection: Dest is driven by Src.
// Names are tile-local.
//
type WirePair struct {
	Src, Dest string
}

type wireKey struct {
	src, dest int
}

func enabled(fuses []int) int {
	n := 0
	for _, f := range fuses {
		if f > 0 {
			n++
		}
	}
	return n
}

// Wires decodes the connections of wire table 2.
//
// Rows are applied from the least to the most specific (by count of enabled
// fuses). A row with a negative source excludes the connection between its
// wires, and any later row for the same pair is dropped.
//
func Wires(m *fuse.Matched) []WirePair {
	wires, _ := decodeWires(m)
	return wires
}

// Excluded returns the connections excluded by wire table 2, in the order
// Wires records them.
//
func Excluded(m *fuse.Matched) []WirePair {
	_, excl := decodeWires(m)
	return excl
}

func decodeWires(m *fuse.Matched) (wires, excluded []WirePair) {
	rows := m.Wire[keyWire]
	if len(rows) == 0 {
		return nil, nil
	}
	rows = append([]fuse.WireRow(nil), rows...)
	sort.SliceStable(rows, func(i, j int) bool {
		return enabled(rows[i].Fuses) < enabled(rows[j].Fuses)
	})

	excl := make(map[wireKey]bool)
	for _, r := range rows {
		if r.Src < 0 {
			k := wireKey{-r.Src, r.Dest}
			if !excl[k] {
				excl[k] = true
				excluded = append(excluded, WirePair{Src: wirenames.Name(k.src), Dest: wirenames.Name(k.dest)})
			}
			continue
		}
		if excl[wireKey{r.Src, r.Dest}] {
			continue
		}
		wires = append(wires, WirePair{Src: wirenames.Name(r.Src), Dest: wirenames.Name(r.Dest)})
	}
	return wires, excluded
}
