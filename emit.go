// Copyright 2026 The apicula Authors
// Licensed under the MIT license. See license text in the LICENSE file.

package apicula

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/chiplet/apicula/decode"
	"github.com/chiplet/apicula/netlist"
	"github.com/pkg/errors"
)

// I/O buffer port names.
//
const (
	portI   = "I"
	portO   = "O"
	portOEN = "OEN"
	portIO  = "IO"
)

// iobPin identifies a buffer port of an I/O slot.
type iobPin struct {
	port string
	slot int
}

// iobWires maps the internal ports of I/O buffers to tile wires.
var iobWires = map[iobPin]string{
	{portI, 0}:   "A0",
	{portOEN, 0}: "B0",
	{portO, 0}:   "F6",
	{portI, 1}:   "D1",
	{portOEN, 1}: "D5",
	{portO, 1}:   "Q6",
}

// iobPorts describes the ports of an I/O buffer variant. wires are connected to
// tile wires; the others are top level ports of the module.
type iobPorts struct {
	wires   []string
	inputs  []string
	outputs []string
	inouts  []string
}

var iobLayout = map[decode.IOBKind]iobPorts{
	decode.IBUF:  {wires: []string{portO}, inputs: []string{portI}},
	decode.OBUF:  {wires: []string{portI}, outputs: []string{portO}},
	decode.TBUF:  {wires: []string{portI, portOEN}, outputs: []string{portO}},
	decode.IOBUF: {wires: []string{portI, portO, portOEN}, inouts: []string{portIO}},
}

// EmitTile registers the decoded features f of the tile at grid position row,
// col (0-based) into m.
//
func EmitTile(m *netlist.Module, row, col int, f *decode.Features) error {
	// the grid is 0-based, chip coordinates are 1-based.
	row++
	col++
	tn := tileName(row, col) + "_"

	for _, w := range f.Wires {
		m.Assign(GlobalWireName(row, col, w.Dest), GlobalWireName(row, col, w.Src))
	}

	idx := make([]int, 0, len(f.LUTs))
	for i := range f.LUTs {
		idx = append(idx, i)
	}
	sort.Ints(idx)
	for _, i := range idx {
		n := strconv.Itoa(i)
		lut := netlist.NewPrimitive("LUT4", tn+"LUT4_"+n)
		lut.Params["INIT"] = fmt.Sprintf("16'b%016b", f.LUTs[i])
		lut.Ports["F"] = tn + "F" + n
		lut.Ports["I0"] = tn + "A" + n
		lut.Ports["I1"] = tn + "B" + n
		lut.Ports["I2"] = tn + "C" + n
		lut.Ports["I3"] = tn + "D" + n
		if err := add(m, lut); err != nil {
			return err
		}
	}

	for slot, k := range f.DFFs {
		if k == decode.NoDFF {
			continue
		}
		s := strconv.Itoa(slot)
		typ := k.String() + "E"
		// each slot drives the flip-flops of two LUT outputs
		for half, suffix := range []string{"_A", "_B"} {
			lutIdx := strconv.Itoa(slot*2 + half)
			dff := netlist.NewPrimitive(typ, tn+typ+"_"+s+suffix)
			dff.Ports["CLK"] = tn + "CLK" + s
			dff.Ports["D"] = tn + "F" + lutIdx
			dff.Ports["Q"] = tn + "Q" + lutIdx
			dff.Ports["CE"] = tn + "CE" + s
			if p := k.ControlPort(); p != "" {
				dff.Ports[p] = tn + "LSR" + s
			}
			if err := add(m, dff); err != nil {
				return err
			}
		}
	}

	for slot, k := range f.IOBs {
		if k == decode.NoIOB {
			continue
		}
		if err := emitIOB(m, tn, slot, k); err != nil {
			return errors.Wrap(err, tileName(row, col))
		}
	}
	return nil
}

// add adds p to m and declares the wires connected to its ports.
func add(m *netlist.Module, p *netlist.Primitive) error {
	if err := m.AddPrimitive(p); err != nil {
		return err
	}
	m.Wires.Add(p.Wires()...)
	return nil
}

func emitIOB(m *netlist.Module, tn string, slot int, k decode.IOBKind) error {
	layout, ok := iobLayout[k]
	if !ok {
		return errors.Errorf("no port layout for %v", k)
	}
	s := strconv.Itoa(slot)
	iob := netlist.NewPrimitive(k.String(), tn+k.String()+"_"+s)
	var wires []string
	for _, port := range layout.wires {
		w, ok := iobWires[iobPin{port, slot}]
		if !ok {
			return errors.Errorf("%v slot %d: no wire for port %s", k, slot, port)
		}
		iob.Ports[port] = tn + w
		wires = append(wires, tn+w)
	}
	for _, d := range []struct {
		ports []string
		set   netlist.Set
	}{{layout.inputs, m.Inputs}, {layout.outputs, m.Outputs}, {layout.inouts, m.Inouts}} {
		for _, port := range d.ports {
			iob.Ports[port] = tn + port + s
			d.set.Add(tn + port + s)
		}
	}
	if err := m.AddPrimitive(iob); err != nil {
		return err
	}
	m.Wires.Add(wires...)
	return nil
}
