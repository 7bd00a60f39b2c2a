// Copyright 2026 The apicula Authors
// Licensed under the MIT license. See license text in the LICENSE file.

// Package netlist implements the structural netlist built from a decoded
// bitstream: wires, direct assignments, primitive instances and top level
// ports.
//
// A Module only grows: nothing is ever removed from it.
//
package netlist

import (
	"sort"

	"github.com/pkg/errors"
)

// Set is a set of names.
//
type Set map[string]struct{}

// Add adds names to s.
//
func (s Set) Add(names ...string) {
	for _, n := range names {
		s[n] = struct{}{}
	}
}

// Has reports whether name is in s.
//
func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Sorted returns the names in s in lexical order.
//
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Assign is a direct assignment: Dest is driven by Src.
//
type Assign struct {
	Dest, Src string
}

// Primitive is an instance of a vendor primitive (LUT4, DFFE, IBUF...).
//
type Primitive struct {
	Type string
	Name string
	// Params maps parameter names to their literal value.
	Params map[string]string
	// Ports maps port names to wire names.
	Ports map[string]string
}

// NewPrimitive returns a primitive instance with no parameters or ports.
//
func NewPrimitive(typ, name string) *Primitive {
	return &Primitive{
		Type:   typ,
		Name:   name,
		Params: make(map[string]string),
		Ports:  make(map[string]string),
	}
}

// Wires returns the wire names connected to p's ports, ordered by port name.
//
func (p *Primitive) Wires() []string {
	ports := make([]string, 0, len(p.Ports))
	for k := range p.Ports {
		ports = append(ports, k)
	}
	sort.Strings(ports)
	out := make([]string, len(ports))
	for i, k := range ports {
		out[i] = p.Ports[k]
	}
	return out
}

// Module is a netlist under construction.
//
type Module struct {
	Wires      Set
	Assigns    []Assign
	Primitives map[string]*Primitive
	Inputs     Set
	Outputs    Set
	Inouts     Set
}

// New returns an empty module.
//
func New() *Module {
	return &Module{
		Wires:      make(Set),
		Primitives: make(map[string]*Primitive),
		Inputs:     make(Set),
		Outputs:    make(Set),
		Inouts:     make(Set),
	}
}

// Assign adds a direct assignment and declares both wires.
//
func (m *Module) Assign(dest, src string) {
	m.Wires.Add(dest, src)
	m.Assigns = append(m.Assigns, Assign{Dest: dest, Src: src})
}

// AddPrimitive adds primitive p. It fails if another primitive with the same
// name exists.
//
func (m *Module) AddPrimitive(p *Primitive) error {
	if _, ok := m.Primitives[p.Name]; ok {
		return errors.New("duplicate primitive " + p.Name)
	}
	m.Primitives[p.Name] = p
	return nil
}

// Merge adds everything in o to m. Assignments of o are appended after those of
// m, so merging partial modules in a fixed order yields the same module as
// building it in one pass.
//
func (m *Module) Merge(o *Module) error {
	m.Wires.Add(o.Wires.Sorted()...)
	m.Inputs.Add(o.Inputs.Sorted()...)
	m.Outputs.Add(o.Outputs.Sorted()...)
	m.Inouts.Add(o.Inouts.Sorted()...)
	m.Assigns = append(m.Assigns, o.Assigns...)
	names := make([]string, 0, len(o.Primitives))
	for n := range o.Primitives {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		if err := m.AddPrimitive(o.Primitives[n]); err != nil {
			return err
		}
	}
	return nil
}
