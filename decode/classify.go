package decode

import (
	"sort"
	"strconv"

	"github.com/chiplet/apicula/fuse"
)

// A Signature is a set of first keys collected across the matched rows of a
// classifier table. It is kept sorted and free of duplicates.
//
type Signature []int

// NewSignature returns the signature holding keys.
//
func NewSignature(keys ...int) Signature {
	if len(keys) == 0 {
		return nil
	}
	s := append(Signature(nil), keys...)
	sort.Ints(s)
	n := 1
	for i := 1; i < len(s); i++ {
		if s[i] != s[n-1] {
			s[n] = s[i]
			n++
		}
	}
	return s[:n]
}

// Equal reports whether s and o hold the same keys.
//
func (s Signature) Equal(o Signature) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

// DFFKind is a flip-flop variant.
//
type DFFKind int

// Flip-flop variants. The N variants clock on the falling edge.
//
const (
	NoDFF DFFKind = iota
	DFF
	DFFS
	DFFR
	DFFP
	DFFC
	DFFN
	DFFNS
	DFFNR
	DFFNP
	DFFNC
)

var dffNames = [...]string{"", "DFF", "DFFS", "DFFR", "DFFP", "DFFC", "DFFN", "DFFNS", "DFFNR", "DFFNP", "DFFNC"}

func (k DFFKind) String() string {
	if k < 0 || int(k) >= len(dffNames) {
		return "DFFKind(" + strconv.Itoa(int(k)) + ")"
	}
	return dffNames[k]
}

// ControlPort returns the name of the port driven by the slot's LSR wire, or
// an empty string for variants without set or reset.
//
func (k DFFKind) ControlPort() string {
	switch k {
	case DFFS, DFFNS:
		return "SET"
	case DFFR, DFFNR:
		return "RESET"
	case DFFP, DFFNP:
		return "PRESET"
	case DFFC, DFFNC:
		return "CLEAR"
	}
	return ""
}

var dffSignatures = []struct {
	kind DFFKind
	sig  Signature
}{
	{DFF, NewSignature(-7, 20, 21)},
	{DFFS, NewSignature(21)},
	{DFFR, NewSignature(20, 21)},
	{DFFP, NewSignature(5, 21)},
	{DFFC, NewSignature(5, 20, 21)},
	{DFFN, NewSignature(3, 4, -7, 20, 21)},
	{DFFNS, NewSignature(3, 4, 21)},
	{DFFNR, NewSignature(3, 4, 20, 21)},
	{DFFNP, NewSignature(3, 4, 5, 21)},
	{DFFNC, NewSignature(3, 4, 5, 20, 21)},
}

// Signature returns the fuse signature of k, or nil for NoDFF.
//
func (k DFFKind) Signature() Signature {
	for _, e := range dffSignatures {
		if e.kind == k {
			return e.sig
		}
	}
	return nil
}

// ClassifyDFF returns the variant whose signature is sig, or NoDFF.
//
func ClassifyDFF(sig Signature) DFFKind {
	if len(sig) == 0 {
		return NoDFF
	}
	for _, e := range dffSignatures {
		if e.sig.Equal(sig) {
			return e.kind
		}
	}
	return NoDFF
}

// DFFs classifies the flip-flop of each slot from shortval tables 25 to 27.
//
func DFFs(m *fuse.Matched) [DFFSlots]DFFKind {
	var out [DFFSlots]DFFKind
	for i := range out {
		rows := m.Shortval[keyDFF+i]
		keys := make([]int, len(rows))
		for j, r := range rows {
			keys[j] = r.A
		}
		out[i] = ClassifyDFF(NewSignature(keys...))
	}
	return out
}

// IOBKind is an I/O buffer variant.
//
type IOBKind int

// I/O buffer variants.
//
const (
	NoIOB IOBKind = iota
	IBUF
	OBUF
	TBUF
	IOBUF
)

var iobNames = [...]string{"", "IBUF", "OBUF", "TBUF", "IOBUF"}

func (k IOBKind) String() string {
	if k < 0 || int(k) >= len(iobNames) {
		return "IOBKind(" + strconv.Itoa(int(k)) + ")"
	}
	return iobNames[k]
}

// TBUF has no known signature yet and is never returned by ClassifyIOB.
var iobSignatures = []struct {
	kind IOBKind
	sig  Signature
}{
	{IBUF, NewSignature(-62, 47, 48, 49, 30)},
	{OBUF, NewSignature(3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 26, 30,
		47, 48, 49, 61, 63, -62, 66, 67, 68, 81)},
	{IOBUF, NewSignature(-62, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 47, 48, 49, 26, 30)},
}

// Signature returns the fuse signature of k, or nil if it has none.
//
func (k IOBKind) Signature() Signature {
	for _, e := range iobSignatures {
		if e.kind == k {
			return e.sig
		}
	}
	return nil
}

// ClassifyIOB returns the variant whose signature is sig, or NoIOB.
//
func ClassifyIOB(sig Signature) IOBKind {
	if len(sig) == 0 {
		return NoIOB
	}
	for _, e := range iobSignatures {
		if e.sig.Equal(sig) {
			return e.kind
		}
	}
	return NoIOB
}

// IOBs classifies the I/O buffer of each slot from longval tables 23 and 24.
//
func IOBs(m *fuse.Matched) [IOBSlots]IOBKind {
	var out [IOBSlots]IOBKind
	for i := range out {
		rows := m.Longval[keyIOB+i]
		keys := make([]int, len(rows))
		for j, r := range rows {
			keys[j] = r.Keys[0]
		}
		out[i] = ClassifyIOB(NewSignature(keys...))
	}
	return out
}
