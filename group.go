// Copyright 2026 The ashparse Authors.

package ashparse

import (
	"strings"

	"github.com/hashicorp/go-multierror"
)

// GroupKind tags a group with its matching and validation behavior.
type GroupKind int

const (
	// Plain groups are organizational: they are entered by their own name
	// token and their children are promoted to the top level of the result.
	Plain GroupKind = iota
	// MutuallyExclusive groups allow at most one descendant argument to
	// appear. Their children are matched as if declared in the parent.
	MutuallyExclusive
	// Recurring groups may be matched any number of times, producing a list
	// of per-occurrence results.
	Recurring
	// Conditional groups relate the presence of their first child to the
	// presence of each remaining child.
	Conditional
)

// Relation is the dependency rule of a conditional group, applied between
// the first child (the condition) and each subsequent child (a dependent).
type Relation int

const (
	// FirstPresentRestRequired: if the condition appears, every dependent
	// must appear too.
	FirstPresentRestRequired Relation = iota
	// FirstAbsentRestForbidden: if the condition does not appear, no
	// dependent may appear.
	FirstAbsentRestForbidden
)

func (r Relation) symbol() string {
	if r == FirstAbsentRestForbidden {
		return "&|"
	}
	return "&"
}

// node is a declared entry in the tree: an argument or a nested group.
type node interface {
	nodeName() string
	nodeAlias() string
	nodeHelp() string
}

// Group is a composite declaration holding ordered child nodes. The root
// group, created with New, is the parser: build the tree with Arg and the
// group methods, then call Parse.
type Group struct {
	name     string
	alias    string
	help     string
	required bool
	kind     GroupKind
	relation Relation
	children []node

	root     *Group
	showHelp bool            // root only
	declared map[string]bool // root only: every name and alias in the tree
	errs     *multierror.Error
}

// New creates the root group of a new argument tree.
func New(name string) *Group {
	g := &Group{
		name:     name,
		kind:     Plain,
		showHelp: true,
		declared: map[string]bool{},
	}
	g.root = g
	return g
}

func (g *Group) nodeName() string  { return g.name }
func (g *Group) nodeAlias() string { return g.alias }
func (g *Group) nodeHelp() string  { return g.help }

// Name returns the group's declared name.
func (g *Group) Name() string { return g.name }

// Kind returns the group's kind.
func (g *Group) Kind() GroupKind { return g.kind }

// DisableHelp turns off the built-in handling of -h and --help.
func (g *Group) DisableHelp() *Group {
	g.root.showHelp = false
	return g
}

// Err returns every error recorded while building the tree, or nil. Parse
// returns the same aggregate before looking at any token.
func (g *Group) Err() error {
	return g.root.errs.ErrorOrNil()
}

func (g *Group) saveErr(err error) {
	if err != nil {
		g.root.errs = multierror.Append(g.root.errs, err)
	}
}

func (g *Group) registerName(name, alias string) error {
	root := g.root
	if root.declared[name] {
		return &InvalidValueError{Name: name, Value: name, Reason: "declared more than once"}
	}
	root.declared[name] = true
	if alias != "" {
		if root.declared[alias] {
			return &InvalidValueError{Name: name, Value: alias, Reason: "alias declared more than once"}
		}
		root.declared[alias] = true
	}
	return nil
}

// Arg adds an argument to the group. Declaration errors are recorded and
// surfaced by Err or the first Parse call, so calls can be chained.
func (g *Group) Arg(a *Arg) *Group {
	n, err := newArgNode(a)
	if err != nil {
		g.saveErr(err)
		return g
	}
	if err := g.registerName(n.name, n.alias); err != nil {
		g.saveErr(err)
		return g
	}
	g.children = append(g.children, n)
	return g
}

// ArgGroup adds a plain group. Plain groups are pure organization: after
// parsing, their children appear at the top level of the result.
func (g *Group) ArgGroup(name, help string) *Group {
	return g.addGroup(name, help, Plain, 0)
}

// RecurringGroup adds a group that may be matched any number of times. The
// parse result always holds a list for it, empty when it never appears.
func (g *Group) RecurringGroup(name, help string) *Group {
	return g.addGroup(name, help, Recurring, 0)
}

// MutexGroup adds a group whose descendant arguments are mutually exclusive.
// Its children are matched as if they were declared directly in g.
func (g *Group) MutexGroup(name, help string) *Group {
	return g.addGroup(name, help, MutuallyExclusive, 0)
}

// ConditionalGroup adds a group whose first child conditions the rest under
// the given relation. Its children are matched as if declared directly in g.
func (g *Group) ConditionalGroup(name, help string, rel Relation) *Group {
	return g.addGroup(name, help, Conditional, rel)
}

func (g *Group) addGroup(name, help string, kind GroupKind, rel Relation) *Group {
	child := &Group{
		name:     name,
		help:     help,
		kind:     kind,
		relation: rel,
		root:     g.root,
	}
	if name == "" {
		g.saveErr(&InvalidValueError{Name: name, Value: name, Reason: "group name cannot be empty"})
	} else if strings.HasPrefix(name, "-") && !isFlag(name) {
		g.saveErr(&InvalidValueError{Name: name, Value: name, Reason: "group names must start with two or zero dashes"})
	} else if err := g.registerName(name, ""); err != nil {
		g.saveErr(err)
	}
	g.children = append(g.children, child)
	return child
}

// WithAlias sets a single-letter alias for a flag-named group.
func (g *Group) WithAlias(alias string) *Group {
	a, err := validateAlias(g.name, alias)
	if err != nil {
		g.saveErr(err)
		return g
	}
	if err := g.registerName(a, ""); err != nil {
		g.saveErr(err)
		return g
	}
	g.alias = a
	return g
}

// Require marks the group as required: it must be matched at least once.
func (g *Group) Require() *Group {
	g.required = true
	return g
}
