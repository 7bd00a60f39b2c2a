// Package wirenames maps the numeric wire ids used in wire fuse tables to
// tile-local wire names.
//
package wirenames

import "strconv"

var names = build()

var ids = func() map[string]int {
	m := make(map[string]int, len(names))
	for i, n := range names {
		m[n] = i
	}
	return m
}()

func seq(prefix string, from, to int, suffix string) []string {
	var out []string
	for i := from; i <= to; i++ {
		out = append(out, prefix+strconv.Itoa(i)+suffix)
	}
	return out
}

// spans returns direction wires for each direction: d+class+segment.
func spans(dirs string, classes []string, seg string) []string {
	var out []string
	for _, d := range dirs {
		for _, c := range classes {
			out = append(out, string(d)+c+seg)
		}
	}
	return out
}

func build() []string {
	var w []string
	// LUT inputs
	for i := 0; i < 8; i++ {
		for _, p := range "ABCD" {
			w = append(w, string(p)+strconv.Itoa(i))
		}
	}
	w = append(w, seq("F", 0, 7, "")...)
	w = append(w, seq("Q", 0, 7, "")...)
	w = append(w, seq("OF", 0, 7, "")...)
	w = append(w, seq("X0", 1, 8, "")...)

	// single hops
	w = append(w, "N100", "SN10", "SN20", "N130", "S100", "S130",
		"E100", "EW10", "EW20", "E130", "W100", "W130")
	// double hops
	x2 := []string{"20", "21", "22", "23", "24", "25", "26", "27"}
	w = append(w, spans("NSEW", x2, "0")...)
	// octal hops
	x8 := []string{"80", "81", "82", "83"}
	w = append(w, spans("NSEW", x8, "0")...)

	w = append(w, seq("CLK", 0, 2, "")...)
	w = append(w, seq("LSR", 0, 2, "")...)
	w = append(w, seq("CE", 0, 2, "")...)
	w = append(w, seq("SEL", 0, 7, "")...)

	w = append(w, spans("NSEW", []string{"10", "13"}, "1")...)
	w = append(w, spans("NSEW", x2, "1")...)
	w = append(w, spans("NSEW", x2, "2")...)
	w = append(w, spans("NSEW", x8, "4")...)
	w = append(w, spans("NSEW", x8, "8")...)

	w = append(w, "E110", "W110", "E120", "W120", "S110", "N110", "S120", "N120",
		"E111", "W111", "E121", "W121", "S111", "N111", "S121", "N121")
	w = append(w, seq("LB", 0, 7, "1")...)
	w = append(w, seq("GB", 0, 7, "0")...)
	w = append(w, "VCC", "VSS",
		"LT00", "LT10", "LT20", "LT30", "LT02", "LT13", "LT01", "LT04",
		"LBO0", "LBO1", "SS00", "SS40", "GT00", "GT10", "GBO0", "GBO1")
	w = append(w, seq("DI", 0, 7, "")...)
	w = append(w, seq("CIN", 0, 4, "")...)
	w = append(w, seq("COUT", 0, 4, "")...)
	return w
}

// Name returns the local name of wire id. Unknown ids are named "W<id>".
//
func Name(id int) string {
	if id >= 0 && id < len(names) {
		return names[id]
	}
	return "W" + strconv.Itoa(id)
}

// ID returns the id of the named wire.
//
func ID(name string) (int, bool) {
	id, ok := ids[name]
	return id, ok
}

// Len returns the number of named wires.
//
func Len() int { return len(names) }
