package apicula

import (
	"testing"

	"github.com/chiplet/apicula/decode"
	"github.com/chiplet/apicula/netlist"
)

func TestEmitIOB_unwired(t *testing.T) {
	m := netlist.New()
	err := emitIOB(m, "R1C1_", 2, decode.IBUF)
	if err == nil || err.Error() != "IBUF slot 2: no wire for port O" {
		t.Errorf("Got error %q, expected %q", err, "IBUF slot 2: no wire for port O")
	}
	if len(m.Primitives) != 0 || len(m.Inputs) != 0 {
		t.Errorf("module modified on error: %+v", m)
	}

	f := &decode.Features{IOBs: [decode.IOBSlots]decode.IOBKind{decode.NoIOB, decode.IOBKind(42)}}
	err = EmitTile(m, 0, 0, f)
	if err == nil || err.Error() != "R1C1: no port layout for IOBKind(42)" {
		t.Errorf("unexpected error %q", err)
	}
}

// TBUF has no fuse signature, but its layout is complete for both slots.
func TestEmitIOB_tbuf(t *testing.T) {
	m := netlist.New()
	for slot := 0; slot < decode.IOBSlots; slot++ {
		if err := emitIOB(m, "R1C1_", slot, decode.TBUF); err != nil {
			t.Fatal(err)
		}
	}
	p := m.Primitives["R1C1_TBUF_1"]
	if p == nil || p.Ports["I"] != "R1C1_D1" || p.Ports["OEN"] != "R1C1_D5" || p.Ports["O"] != "R1C1_O1" {
		t.Errorf("TBUF slot 1: %+v", p)
	}
	if !m.Outputs.Has("R1C1_O0") || !m.Outputs.Has("R1C1_O1") {
		t.Errorf("outputs: %v", m.Outputs.Sorted())
	}
}
