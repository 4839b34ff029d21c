// Copyright 2026 The ashparse Authors.

package ashparse

import (
	"fmt"
	"sort"
	"strings"
)

// valueType records the declared shape of one namespace entry.
type valueType struct {
	typ   Type
	list  bool // multi-value argument: []interface{} of typ
	group bool // recurring group: []*Namespace
}

// Namespace is the typed result of a parse. Every entry carries its declared
// type, checked eagerly on insertion and on Set. A Namespace is created per
// Parse call and owned by the caller afterwards; the declaration tree holds
// no parsed values.
type Namespace struct {
	values map[string]interface{}
	types  map[string]valueType
}

// newNamespace creates an empty namespace with g's declared types, pre-seeded
// with defaults and with an empty instance list for every recurring group.
func (g *Group) newNamespace() *Namespace {
	ns := &Namespace{
		values: map[string]interface{}{},
		types:  map[string]valueType{},
	}
	g.declareInto(ns)
	return ns
}

func (g *Group) declareInto(ns *Namespace) {
	for _, c := range g.children {
		switch n := c.(type) {
		case *argNode:
			ns.types[n.name] = valueType{typ: n.typ, list: n.arity.Max > 1}
			if n.def != nil {
				ns.values[n.name] = n.def
			}
		case *Group:
			if n.kind == Recurring {
				ns.types[n.name] = valueType{group: true}
				ns.values[n.name] = []*Namespace{}
			} else {
				n.declareInto(ns)
			}
		}
	}
}

// nodeByName maps declared names to nodes, looking through every group kind
// except recurring groups, which map to themselves.
func (g *Group) nodeByName() map[string]node {
	m := map[string]node{}
	var walk func(*Group)
	walk = func(gr *Group) {
		for _, c := range gr.children {
			switch n := c.(type) {
			case *argNode:
				m[n.name] = n
			case *Group:
				if n.kind == Recurring {
					m[n.name] = n
				} else {
					walk(n)
				}
			}
		}
	}
	walk(g)
	return m
}

// fillNamespace copies the flattened parse result into ns. Arguments with an
// arity maximum of one become scalars; all others become slices. Recurring
// groups become lists of child namespaces.
func (g *Group) fillNamespace(ns *Namespace, flat map[string]interface{}) error {
	lookup := g.nodeByName()
	for name, v := range flat {
		switch n := lookup[name].(type) {
		case *argNode:
			vals, ok := v.([]interface{})
			if !ok {
				return &ArgumentTypeError{Name: name, Value: v}
			}
			if n.arity.Max == 1 {
				var single interface{}
				switch {
				case len(vals) == 1:
					single = vals[0]
				case n.def != nil:
					single = n.def
				default:
					single = zeroValue(n.typ)
				}
				if err := ns.Set(name, single); err != nil {
					return err
				}
			} else if err := ns.Set(name, vals); err != nil {
				return err
			}
		case *Group:
			insts, ok := v.([]map[string]interface{})
			if !ok {
				return &ArgumentTypeError{Name: name, Value: v}
			}
			subs := make([]*Namespace, 0, len(insts))
			for _, inst := range insts {
				sub := n.newNamespace()
				if err := n.fillNamespace(sub, flatten(inst)); err != nil {
					return err
				}
				subs = append(subs, sub)
			}
			if err := ns.Set(name, subs); err != nil {
				return err
			}
		}
	}
	return nil
}

// Set assigns a value to a declared name, checking it against the declared
// type. Assigning a value of the wrong type is an ArgumentTypeError.
func (ns *Namespace) Set(name string, v interface{}) error {
	vt, ok := ns.types[name]
	if !ok {
		return &UnknownArgumentError{Token: name}
	}
	switch {
	case vt.group:
		if _, ok := v.([]*Namespace); !ok {
			return &ArgumentTypeError{Name: name, Value: v}
		}
	case vt.list:
		vals, ok := v.([]interface{})
		if !ok {
			return &ArgumentTypeError{Name: name, Value: v, Type: vt.typ}
		}
		for _, el := range vals {
			if t, _ := typeOf(el); t != vt.typ {
				return &ArgumentTypeError{Name: name, Value: el, Type: vt.typ}
			}
		}
	default:
		if t, _ := typeOf(v); t != vt.typ {
			return &ArgumentTypeError{Name: name, Value: v, Type: vt.typ}
		}
	}
	ns.values[name] = v
	return nil
}

// Has reports whether a value is recorded for name.
func (ns *Namespace) Has(name string) bool {
	_, ok := ns.values[name]
	return ok
}

// Get returns the value recorded for name.
func (ns *Namespace) Get(name string) (interface{}, error) {
	v, ok := ns.values[name]
	if !ok {
		return nil, &UnknownArgumentError{Token: name}
	}
	return v, nil
}

// GetString returns a string-typed scalar value.
func (ns *Namespace) GetString(name string) (string, error) {
	v, err := ns.Get(name)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", &ArgumentTypeError{Name: name, Value: v, Type: TypeString}
	}
	return s, nil
}

// GetInt returns an int-typed scalar value.
func (ns *Namespace) GetInt(name string) (int, error) {
	v, err := ns.Get(name)
	if err != nil {
		return 0, err
	}
	n, ok := v.(int)
	if !ok {
		return 0, &ArgumentTypeError{Name: name, Value: v, Type: TypeInt}
	}
	return n, nil
}

// GetFloat returns a float-typed scalar value.
func (ns *Namespace) GetFloat(name string) (float64, error) {
	v, err := ns.Get(name)
	if err != nil {
		return 0, err
	}
	f, ok := v.(float64)
	if !ok {
		return 0, &ArgumentTypeError{Name: name, Value: v, Type: TypeFloat}
	}
	return f, nil
}

// GetBool returns a bool-typed scalar value.
func (ns *Namespace) GetBool(name string) (bool, error) {
	v, err := ns.Get(name)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, &ArgumentTypeError{Name: name, Value: v, Type: TypeBool}
	}
	return b, nil
}

// GetStrings returns a multi-value string argument.
func (ns *Namespace) GetStrings(name string) ([]string, error) {
	vals, err := ns.getList(name, TypeString)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = v.(string)
	}
	return out, nil
}

// GetInts returns a multi-value int argument.
func (ns *Namespace) GetInts(name string) ([]int, error) {
	vals, err := ns.getList(name, TypeInt)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(vals))
	for i, v := range vals {
		out[i] = v.(int)
	}
	return out, nil
}

// GetFloats returns a multi-value float argument.
func (ns *Namespace) GetFloats(name string) ([]float64, error) {
	vals, err := ns.getList(name, TypeFloat)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = v.(float64)
	}
	return out, nil
}

func (ns *Namespace) getList(name string, want Type) ([]interface{}, error) {
	v, err := ns.Get(name)
	if err != nil {
		return nil, err
	}
	vals, ok := v.([]interface{})
	if !ok {
		return nil, &ArgumentTypeError{Name: name, Value: v, Type: want}
	}
	for _, el := range vals {
		if t, _ := typeOf(el); t != want {
			return nil, &ArgumentTypeError{Name: name, Value: el, Type: want}
		}
	}
	return vals, nil
}

// GetGroups returns the per-occurrence namespaces of a recurring group. The
// list is always present for a declared recurring group, empty when the
// group never appeared.
func (ns *Namespace) GetGroups(name string) ([]*Namespace, error) {
	v, err := ns.Get(name)
	if err != nil {
		return nil, err
	}
	subs, ok := v.([]*Namespace)
	if !ok {
		return nil, &ArgumentTypeError{Name: name, Value: v}
	}
	return subs, nil
}

// Names returns every recorded name in sorted order.
func (ns *Namespace) Names() []string {
	names := make([]string, 0, len(ns.values))
	for n := range ns.values {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (ns *Namespace) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, name := range ns.Names() {
		if i > 0 {
			b.WriteString(", ")
		}
		v := ns.values[name]
		if subs, ok := v.([]*Namespace); ok {
			parts := make([]string, len(subs))
			for j, s := range subs {
				parts[j] = s.String()
			}
			fmt.Fprintf(&b, "%s=[%s]", name, strings.Join(parts, " "))
		} else {
			fmt.Fprintf(&b, "%s=%v", name, v)
		}
	}
	b.WriteString("}")
	return b.String()
}
