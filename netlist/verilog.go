package netlist

import (
	"bufio"
	"io"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// WriteVerilog writes m as a structural Verilog module named top.
// Ports, wires, primitives, ports maps and parameters are written in lexical
// order; assignments keep their order.
//
func (m *Module) WriteVerilog(w io.Writer) error {
	bw := bufio.NewWriter(w)
	ins, outs, inouts := m.Inputs.Sorted(), m.Outputs.Sorted(), m.Inouts.Sorted()

	var ports []string
	ports = append(ports, ins...)
	ports = append(ports, outs...)
	ports = append(ports, inouts...)
	bw.WriteString("module top(" + strings.Join(ports, ", ") + ");\n")
	for _, d := range []struct {
		kw    string
		names []string
	}{{"input", ins}, {"output", outs}, {"inout", inouts}, {"wire", m.Wires.Sorted()}} {
		for _, n := range d.names {
			bw.WriteString(d.kw + " " + n + ";\n")
		}
	}
	for _, a := range m.Assigns {
		bw.WriteString("assign " + a.Dest + " = " + a.Src + ";\n")
	}

	names := make([]string, 0, len(m.Primitives))
	for n := range m.Primitives {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		p := m.Primitives[n]
		bw.WriteString(p.Type + " " + p.Name + " (")
		for i, k := range sortedKeys(p.Ports) {
			if i > 0 {
				bw.WriteString(",")
			}
			bw.WriteString("\n\t." + k + "(" + p.Ports[k] + ")")
		}
		bw.WriteString("\n);\n")
		for _, k := range sortedKeys(p.Params) {
			bw.WriteString("defparam " + p.Name + "." + k + " = " + p.Params[k] + ";\n")
		}
	}
	bw.WriteString("endmodule\n")
	return errors.Wrap(bw.Flush(), "write verilog")
}
