// Copyright 2026 The ashparse Authors.

package ashparse

import (
	"fmt"
	"io"
	"strings"
)

// Usage rendering. The usage line uses one bracket form per group kind:
// plain groups show their name followed by their children, mutually
// exclusive groups are parenthesized, recurring groups are bracketed with a
// trailing ellipsis, and conditional groups show the relation symbol between
// the condition and its dependents.

// Usage writes the usage line and per-argument help to w.
func (g *Group) Usage(w io.Writer) {
	fmt.Fprintf(w, "Usage: %s", strings.ToUpper(g.name))
	for _, c := range g.children {
		fmt.Fprintf(w, " %s", usagePart(c))
	}
	fmt.Fprintln(w)
	lines := g.helpLines(0)
	if len(lines) > 0 {
		fmt.Fprintln(w)
		for _, l := range lines {
			fmt.Fprintln(w, l)
		}
	}
}

// UsageString returns what Usage writes.
func (g *Group) UsageString() string {
	var b strings.Builder
	g.Usage(&b)
	return b.String()
}

func usagePart(n node) string {
	switch x := n.(type) {
	case *argNode:
		var disp string
		if isFlag(x.name) {
			disp = x.name
			if x.alias != "" {
				disp = x.alias + ", " + x.name
			}
			if !x.required {
				disp = "[" + disp + "]"
			}
		} else {
			disp = "<" + strings.ToUpper(x.name) + ">"
		}
		if x.arity.Max > 1 {
			disp += "..."
		}
		return disp
	case *Group:
		parts := make([]string, 0, len(x.children)+1)
		if x.kind == Plain || x.kind == Recurring {
			parts = append(parts, groupToken(x))
		}
		for _, c := range x.children {
			parts = append(parts, usagePart(c))
		}
		switch x.kind {
		case MutuallyExclusive:
			return "(" + strings.Join(parts, " ") + ")"
		case Recurring:
			return "[" + strings.Join(parts, " ") + "]..."
		case Conditional:
			if len(parts) > 1 {
				parts = append(parts[:1], append([]string{x.relation.symbol()}, parts[1:]...)...)
			}
			return "<" + strings.Join(parts, " ") + ">"
		default:
			return strings.Join(parts, " ")
		}
	}
	return ""
}

func groupToken(g *Group) string {
	if isFlag(g.name) {
		if g.alias != "" {
			return g.alias + ", " + g.name
		}
		return g.name
	}
	return "<" + strings.ToUpper(g.name) + ">"
}

func (g *Group) helpLines(depth int) []string {
	indent := strings.Repeat("    ", depth)
	var lines []string
	for _, c := range g.children {
		switch n := c.(type) {
		case *argNode:
			if n.help == "" && n.descriptor == "" {
				continue
			}
			doc := n.help
			if n.descriptor != "" && doc == "" {
				doc = n.descriptor
			}
			if allowed := n.allowed(); allowed != nil {
				doc += fmt.Sprintf(" (one of %s)", strings.Join(allowed, ", "))
			}
			if n.def != nil {
				doc += fmt.Sprintf(" (default %v)", n.def)
			}
			lines = append(lines, fmt.Sprintf("%s  %-14s %s", indent, displayName(n), doc))
		case *Group:
			header := groupToken(n)
			if n.help != "" {
				header += "  " + n.help
			}
			lines = append(lines, fmt.Sprintf("%s  %s", indent, header))
			lines = append(lines, n.helpLines(depth+1)...)
		}
	}
	return lines
}

func displayName(a *argNode) string {
	if isFlag(a.name) {
		if a.alias != "" {
			return a.alias + ", " + a.name
		}
		return a.name
	}
	return strings.ToUpper(a.name)
}
