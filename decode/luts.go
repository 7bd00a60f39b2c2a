package decode

import "github.com/chiplet/apicula/fuse"

// LUTInit is the truth table of a LUT with no bit cleared.
//
const LUTInit uint16 = 0xffff

// LUTs decodes the LUT truth tables of shortval table 5. Each matched row
// (lut, bit, fuses...) clears one bit of its LUT's table; LUTs without any
// matched row are not reported.
//
func LUTs(m *fuse.Matched) map[int]uint16 {
	rows := m.Shortval[keyLUT]
	if len(rows) == 0 {
		return nil
	}
	luts := make(map[int]uint16)
	for _, r := range rows {
		v, ok := luts[r.A]
		if !ok {
			v = LUTInit
		}
		if r.B >= 0 && r.B < 16 {
			v &^= 1 << uint(r.B)
		}
		luts[r.A] = v
	}
	return luts
}
