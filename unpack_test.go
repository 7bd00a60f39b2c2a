package apicula_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/chiplet/apicula"
	"github.com/chiplet/apicula/fuse"
	"github.com/chiplet/apicula/netlist"
	"github.com/chiplet/apicula/unpacktest"
	"github.com/chiplet/apicula/wirenames"
)

const (
	typeLogic = 12
	typeIO    = 53
)

func wire(name string) int {
	id, ok := wirenames.ID(name)
	if !ok {
		panic("unknown wire " + name)
	}
	return id
}

// testChip returns a 2x2 chip with a configured logic tile at R1C1 and an
// input buffer at R2C1. Fuse n of both tile types sits at row n/8, col n%8.
func testChip() *unpacktest.Chip {
	c := unpacktest.NewChip([][]int{{typeLogic, typeLogic}, {typeIO, typeLogic}},
		map[int][2]int{typeLogic: {8, 4}, typeIO: {8, 4}})
	for f := 0; f < 32; f++ {
		c.Place(f, typeLogic, f/8, f%8)
		c.Place(f, typeIO, f/8, f%8)
	}

	lt := c.Type(typeLogic)
	lt.Wire = map[int][]fuse.WireRow{2: {
		{Src: wire("F0"), Dest: wire("B0"), Fuses: []int{1}},
		{Src: wire("N101"), Dest: wire("A0"), Fuses: []int{2}},
		{Src: -wire("B0"), Dest: wire("C0"), Fuses: []int{3}},
		{Src: wire("B0"), Dest: wire("C0"), Fuses: []int{3, 4}},
		{Src: wire("VCC"), Dest: wire("D0"), Fuses: []int{5}},
		{Src: wire("GB00"), Dest: wire("CLK0"), Fuses: []int{30}},
	}}
	lt.Shortval = map[int][]fuse.ShortvalRow{
		5: {
			{A: 0, B: 0, Fuses: []int{6}},
			{A: 0, B: 3, Fuses: []int{7}},
			{A: 0, B: 5, Fuses: []int{8}},
			{A: 1, B: 15, Fuses: []int{9}},
		},
		25: {
			{A: 20, B: 0, Fuses: []int{10}},
			{A: 21, B: 0, Fuses: []int{10, -1}},
		},
	}

	it := c.Type(typeIO)
	var rows []fuse.LongvalRow
	for _, k := range []int{-62, 47, 48, 49, 30} {
		r := fuse.LongvalRow{Fuses: []int{1}}
		r.Keys[0] = k
		rows = append(rows, r)
	}
	it.Longval = map[int][]fuse.LongvalRow{23: rows}

	c.Blow(0, 0, 1, 2, 3, 4, 5, 6, 7, 8, 10)
	c.Blow(1, 0, 1)
	return c
}

func TestUnpack(t *testing.T) {
	c := testChip()
	m, err := apicula.Unpack(c.DB, c.Bits)
	if err != nil {
		trace(t, err)
		t.Fatal(err)
	}

	assigns := []netlist.Assign{
		{Dest: "R1C1_B0", Src: "R1C1_F0"},
		{Dest: "R1C1_A0", Src: "R2C1_N10"},
		{Dest: "R1C1_D0", Src: "VCC"},
	}
	if !reflect.DeepEqual(m.Assigns, assigns) {
		t.Errorf("assigns: %v\nexpected %v", m.Assigns, assigns)
	}

	wires := []string{
		"R1C1_A0", "R1C1_B0", "R1C1_C0", "R1C1_CE0", "R1C1_CLK0", "R1C1_D0",
		"R1C1_F0", "R1C1_F1", "R1C1_LSR0", "R1C1_Q0", "R1C1_Q1",
		"R2C1_F6", "R2C1_N10", "VCC",
	}
	if w := m.Wires.Sorted(); !reflect.DeepEqual(w, wires) {
		t.Errorf("wires: %v\nexpected %v", w, wires)
	}

	lut := m.Primitives["R1C1_LUT4_0"]
	if lut == nil || lut.Type != "LUT4" || lut.Params["INIT"] != "16'b1111111111010110" {
		t.Fatalf("LUT4_0: %+v", lut)
	}
	for port, w := range map[string]string{"F": "R1C1_F0", "I0": "R1C1_A0", "I1": "R1C1_B0", "I2": "R1C1_C0", "I3": "R1C1_D0"} {
		if lut.Ports[port] != w {
			t.Errorf("LUT4_0.%s = %q, expected %q", port, lut.Ports[port], w)
		}
	}
	if m.Primitives["R1C1_LUT4_1"] != nil {
		t.Error("LUT4_1 without matched rows")
	}

	for _, d := range []struct {
		name, d, q string
	}{{"R1C1_DFFRE_0_A", "R1C1_F0", "R1C1_Q0"}, {"R1C1_DFFRE_0_B", "R1C1_F1", "R1C1_Q1"}} {
		p := m.Primitives[d.name]
		if p == nil {
			t.Errorf("missing %s", d.name)
			continue
		}
		expected := map[string]string{
			"CLK": "R1C1_CLK0", "D": d.d, "Q": d.q, "CE": "R1C1_CE0", "RESET": "R1C1_LSR0",
		}
		if p.Type != "DFFRE" || !reflect.DeepEqual(p.Ports, expected) {
			t.Errorf("%s: %+v", d.name, p)
		}
	}

	ibuf := m.Primitives["R2C1_IBUF_0"]
	if ibuf == nil || ibuf.Type != "IBUF" ||
		!reflect.DeepEqual(ibuf.Ports, map[string]string{"O": "R2C1_F6", "I": "R2C1_I0"}) {
		t.Errorf("IBUF: %+v", ibuf)
	}
	if !reflect.DeepEqual(m.Inputs.Sorted(), []string{"R2C1_I0"}) || len(m.Outputs) != 0 || len(m.Inouts) != 0 {
		t.Errorf("ports: in %v out %v inout %v", m.Inputs.Sorted(), m.Outputs.Sorted(), m.Inouts.Sorted())
	}
	if len(m.Primitives) != 4 {
		t.Errorf("got %d primitives, expected 4", len(m.Primitives))
	}
}

func TestUnpack_plain_dff(t *testing.T) {
	c := testChip()
	lt := c.Type(typeLogic)
	lt.Shortval[27] = []fuse.ShortvalRow{
		{A: -7, Fuses: []int{11}}, {A: 20, Fuses: []int{11}}, {A: 21, Fuses: []int{11}},
	}
	c.Blow(0, 1, 11)

	m, err := apicula.Unpack(c.DB, c.Bits)
	if err != nil {
		t.Fatal(err)
	}
	p := m.Primitives["R1C2_DFFE_2_B"]
	expected := map[string]string{"CLK": "R1C2_CLK2", "D": "R1C2_F5", "Q": "R1C2_Q5", "CE": "R1C2_CE2"}
	if p == nil || p.Type != "DFFE" || !reflect.DeepEqual(p.Ports, expected) {
		t.Errorf("R1C2_DFFE_2_B: %+v", p)
	}
}

func TestUnpack_idempotent(t *testing.T) {
	c := testChip()
	c.Blow(1, 1, 1, 2, 30)
	c.Blow(0, 1, 6, 9)

	m1, err := apicula.Unpack(c.DB, c.Bits)
	if err != nil {
		t.Fatal(err)
	}
	m2, err := apicula.Unpack(c.DB, c.Bits)
	if err != nil {
		t.Fatal(err)
	}
	unpacktest.CompareModules(t, m1, m2)

	for _, n := range []int{0, 2, 3, 8} {
		mp, err := apicula.Unpack(c.DB, c.Bits, apicula.WithWorkers(n))
		if err != nil {
			t.Fatal(err)
		}
		unpacktest.CompareModules(t, m1, mp)
		if !reflect.DeepEqual(m1.Assigns, mp.Assigns) {
			t.Errorf("%d workers: assigns %v", n, mp.Assigns)
		}
	}

	v := unpacktest.Verilog(t, m1)
	if !strings.Contains(v, "assign R2C2_CLK0 = GB00;\n") {
		t.Errorf("missing global clock assignment in:\n%s", v)
	}
}

type testLogger struct {
	msgs []string
}

func (l *testLogger) Debug(msg string, _ ...interface{}) { l.msgs = append(l.msgs, "D:"+msg) }
func (l *testLogger) Info(msg string, _ ...interface{})  { l.msgs = append(l.msgs, "I:"+msg) }
func (l *testLogger) Error(msg string, _ ...interface{}) { l.msgs = append(l.msgs, "E:"+msg) }

func TestUnpack_logger(t *testing.T) {
	c := testChip()
	l := new(testLogger)
	if _, err := apicula.Unpack(c.DB, c.Bits, apicula.WithLogger(l), apicula.WithWorkers(2)); err != nil {
		t.Fatal(err)
	}
	expected := []string{"D:partitioned bitmap", "D:tile", "D:tile", "I:unpacked bitstream"}
	if !reflect.DeepEqual(l.msgs, expected) {
		t.Errorf("log: %v, expected %v", l.msgs, expected)
	}
}

func TestUnpack_errors(t *testing.T) {
	c := testChip()
	c.Place(40, typeLogic, 5, 0)
	c.Type(typeLogic).Const = map[int][]fuse.ConstRow{0: {{Fuses: []int{40}}}}
	for _, n := range []int{1, 4} {
		m, err := apicula.Unpack(c.DB, c.Bits, apicula.WithWorkers(n))
		expected := "R1C1: const(0): fuse 40 at 5,0 is outside tile type 12"
		if err == nil || err.Error() != expected {
			t.Errorf("Got error %q, expected %q", err, expected)
		}
		if m != nil {
			t.Error("partial netlist returned on error")
		}
	}

	c = testChip()
	c.DB.Grid = append(c.DB.Grid, []int{typeIO, typeLogic})
	l := new(testLogger)
	_, err := apicula.Unpack(c.DB, c.Bits, apicula.WithLogger(l))
	expected := "partition: tile 2,0: rectangle 8x4 at 0,8 exceeds 16x8 bitmap"
	if err == nil || err.Error() != expected {
		t.Errorf("Got error %q, expected %q", err, expected)
	}
	if !reflect.DeepEqual(l.msgs, []string{"E:partition failed"}) {
		t.Errorf("log: %v", l.msgs)
	}
}
