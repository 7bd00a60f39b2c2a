package apicula

import (
	"strconv"
	"strings"
)

// Chip-wide power nets.
//
const (
	VCC = "VCC"
	VSS = "VSS"
)

// globalPrefix starts the names of global clock wires.
const globalPrefix = "GB"

// isDigit reports whether c is a decimal digit.
func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// span splits an inter-tile wire name d, class, segment where d is one of
// N, E, S, W, class is two digits starting with 1, 2 or 8 and segment a single
// digit. Trailing characters are ignored.
func span(name string) (dir byte, class string, seg int, ok bool) {
	if len(name) < 4 || strings.IndexByte("NESW", name[0]) < 0 {
		return 0, "", 0, false
	}
	if c := name[1]; c != '1' && c != '2' && c != '8' || !isDigit(name[2]) || !isDigit(name[3]) {
		return 0, "", 0, false
	}
	return name[0], name[1:3], int(name[3] - '0'), true
}

func tileName(row, col int) string {
	return "R" + strconv.Itoa(row) + "C" + strconv.Itoa(col)
}

// GlobalWireName returns the chip-wide name of the wire named name in the tile
// at row, col (1-based).
//
// Global clock wires and power nets keep their name. An inter-tile wire is
// named after the tile it originates from: a wire reaching this tile from the
// north after seg hops started seg rows further south, so N moves south, S
// north, E west and W east. Other wires are local to the tile.
//
func GlobalWireName(row, col int, name string) string {
	if strings.HasPrefix(name, globalPrefix) || name == VCC || name == VSS {
		return name
	}
	dir, class, seg, ok := span(name)
	if !ok {
		return tileName(row, col) + "_" + name
	}
	switch dir {
	case 'N':
		row += seg
	case 'S':
		row -= seg
	case 'E':
		col -= seg
	case 'W':
		col += seg
	}
	return strings.Replace(tileName(row, col)+"_"+string(dir)+class, "-", "_", -1)
}
