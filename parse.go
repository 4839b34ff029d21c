// Copyright 2026 The ashparse Authors.

package ashparse

import (
	"os"
	"strings"
)

// Parsing is a single left-to-right pass: each token is dispatched to the
// declared node it names, or to the next expected positional slot. Matched
// nodes are removed from further matching unless they belong to a recurring
// group. There is no backtracking.

// matchEntry is one declared node in a matching scope, with its declaration
// ordinal. Ordinals are what make positional-vs-named ordering queryable.
type matchEntry struct {
	n       node
	ordinal int
}

// matchIndex is the per-call lookup state. Every recursive call owns a fresh
// index, so concurrent and sequential parses never share matching state.
type matchIndex struct {
	order       []*matchEntry
	byName      map[string]*matchEntry
	positionals []*matchEntry
	pos         int // cursor into positionals
}

// buildIndex flattens g's children into a matching scope. Mutually exclusive
// and conditional groups are transparent: their descendants are spliced in
// and matched as if declared directly in g. Plain and recurring groups are
// matched by their own name.
func buildIndex(g *Group) *matchIndex {
	ix := &matchIndex{byName: map[string]*matchEntry{}}
	var add func(children []node)
	add = func(children []node) {
		for _, c := range children {
			if sub, ok := c.(*Group); ok && (sub.kind == MutuallyExclusive || sub.kind == Conditional) {
				add(sub.children)
				continue
			}
			e := &matchEntry{n: c, ordinal: len(ix.order)}
			ix.order = append(ix.order, e)
			if isFlag(c.nodeName()) {
				ix.byName[c.nodeName()] = e
				if al := c.nodeAlias(); al != "" {
					ix.byName[al] = e
				}
			} else {
				ix.positionals = append(ix.positionals, e)
			}
		}
	}
	add(g.children)
	return ix
}

// match walks tokens against g's children and returns the raw result map and
// the number of tokens consumed. At the root an unmatchable token is an
// error; in a nested call it ends the call, returning control to the parent.
func (g *Group) match(tokens []string, root bool) (map[string]interface{}, int, error) {
	ix := buildIndex(g)
	result := map[string]interface{}{}
	acc := map[string][]map[string]interface{}{}
	for _, e := range ix.order {
		if sub, ok := e.n.(*Group); ok && sub.kind == Recurring {
			acc[sub.name] = []map[string]interface{}{}
			result[sub.name] = acc[sub.name]
		}
	}

	i := 0
	lastNamed := -1 // ordinal of the most recently name-matched entry
	spent := map[*matchEntry]bool{}
	for i < len(tokens) {
		tok := tokens[i]
		var e *matchEntry
		var start int
		if ent, ok := ix.byName[tok]; ok && !spent[ent] {
			e = ent
			lastNamed = ent.ordinal
			start = i + 1
		} else {
			if root && g.root.showHelp && (tok == "-h" || tok == "--help") {
				return nil, 0, ErrHelp
			}
			// A token that names nothing must fit the next positional slot,
			// and only if no named argument declared after that slot has
			// already been matched.
			if ix.pos >= len(ix.positionals) || lastNamed > ix.positionals[ix.pos].ordinal {
				if root {
					return nil, 0, &UnknownArgumentError{Token: tok}
				}
				return result, i, nil
			}
			e = ix.positionals[ix.pos]
			ix.pos++
			start = i
		}

		switch n := e.n.(type) {
		case *argNode:
			vals, next, err := collectValues(n, tokens, start)
			if err != nil {
				return nil, 0, err
			}
			result[n.name] = vals
			i = next
		case *Group:
			sub, consumed, err := n.match(tokens[start:], false)
			if err != nil {
				return nil, 0, err
			}
			if n.kind == Recurring {
				acc[n.name] = append(acc[n.name], sub)
				result[n.name] = acc[n.name]
			} else {
				result[n.name] = sub
			}
			i = start + consumed
		}

		if sub, ok := e.n.(*Group); !ok || sub.kind != Recurring {
			spent[e] = true
		}
	}
	return result, i, nil
}

// collectValues greedily consumes adjacent value tokens for an argument,
// bounded by its arity. Dash-prefixed tokens end collection unless the
// argument is numeric and the token looks like a negative number.
func collectValues(a *argNode, tokens []string, start int) ([]interface{}, int, error) {
	i := start
	var raw []string
	for i < len(tokens) && len(raw) < a.arity.Max {
		t := tokens[i]
		if strings.HasPrefix(t, "-") && !(a.typ.numeric() && looksNumeric(t)) {
			break
		}
		raw = append(raw, t)
		i++
	}
	if len(raw) < a.arity.Min {
		return nil, 0, &TooFewArgumentsError{Name: a.name, Min: a.arity.Min, Got: len(raw)}
	}
	if len(raw) > a.arity.Max {
		return nil, 0, &TooManyArgumentsError{Name: a.name, Max: a.arity.Max, Got: len(raw)}
	}
	vals := make([]interface{}, 0, len(raw))
	var bad []interface{}
	for _, r := range raw {
		v, err := convertValue(a.typ, a.name, r)
		if err != nil {
			return nil, 0, err
		}
		if !a.allows(v) {
			bad = append(bad, v)
		}
		vals = append(vals, v)
	}
	if len(bad) > 0 {
		return nil, 0, &InvalidChoiceError{Name: a.name, Values: bad, Choices: a.allowed()}
	}
	return vals, i, nil
}

// looksNumeric reports whether a dash-prefixed token could be a negative
// number, e.g. "-5" or "-.5".
func looksNumeric(t string) bool {
	if len(t) < 2 || t[0] != '-' {
		return false
	}
	c := t[1]
	return (c >= '0' && c <= '9') || c == '.'
}

// flatten promotes the entries of every nested plain-group map to the top
// level. Argument value lists and recurring-group instance lists pass
// through unchanged, so plain groups are invisible in the final namespace
// while recurring groups remain nested.
func flatten(result map[string]interface{}) map[string]interface{} {
	flat := make(map[string]interface{}, len(result))
	var splice func(m map[string]interface{})
	splice = func(m map[string]interface{}) {
		for k, v := range m {
			if nested, ok := v.(map[string]interface{}); ok {
				splice(nested)
				continue
			}
			flat[k] = v
		}
	}
	splice(result)
	return flat
}

// Parse matches tokens against the declared tree, validates cross-argument
// constraints, and returns the typed namespace. The first failure aborts the
// call; no partial result is returned. Errors recorded while building the
// tree are returned before any token is read.
func (g *Group) Parse(tokens []string) (*Namespace, error) {
	if err := g.Err(); err != nil {
		return nil, err
	}
	raw, _, err := g.match(tokens, true)
	if err != nil {
		return nil, err
	}
	flat := flatten(raw)
	if err := g.validateResult(raw, flat); err != nil {
		return nil, err
	}
	ns := g.newNamespace()
	if err := g.fillNamespace(ns, flat); err != nil {
		return nil, err
	}
	return ns, nil
}

// ParseArgs parses the process's own argument vector.
func (g *Group) ParseArgs() (*Namespace, error) {
	return g.Parse(os.Args[1:])
}
