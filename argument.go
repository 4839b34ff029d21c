// Copyright 2026 The ashparse Authors.

package ashparse

import (
	"fmt"
	"math"
	"strings"
	"unicode"
)

// Arg declares a single argument. A name starting with "--" is matched by
// that name (and optionally by Alias); any other name is positional and
// matched by declaration order.
type Arg struct {
	Name       string
	Alias      string // single letter, canonicalized to "-x"; flags only
	Type       Type   // inferred from Default when unset, else string
	Help       string
	Descriptor string // display name for the value in usage text
	NArgs      string // arity specifier: "", "?", "*", "+", or an integer
	Required   bool
	Default    interface{}
	Choices    []interface{}
	Min, Max   *int // numeric range; exclusive with Choices
}

// argNode is the validated, normalized form of an Arg. The node tree is
// immutable once built; parsing never mutates it.
type argNode struct {
	name       string
	alias      string // canonical "-x" form, or ""
	typ        Type
	help       string
	descriptor string
	arity      Arity
	required   bool
	def        interface{}
	choices    []interface{}
	min, max   int
	hasRange   bool
}

func (a *argNode) nodeName() string  { return a.name }
func (a *argNode) nodeAlias() string { return a.alias }
func (a *argNode) nodeHelp() string  { return a.help }

func isFlag(name string) bool { return strings.HasPrefix(name, "--") }

func newArgNode(a *Arg) (*argNode, error) {
	if a.Name == "" {
		return nil, &InvalidValueError{Name: a.Name, Value: a.Name, Reason: "argument name cannot be empty"}
	}
	if strings.HasPrefix(a.Name, "-") && !isFlag(a.Name) {
		return nil, &InvalidValueError{Name: a.Name, Value: a.Name, Reason: "argument names must start with two or zero dashes"}
	}
	arity, err := parseArity(a.Name, a.NArgs)
	if err != nil {
		return nil, err
	}
	typ := a.Type
	if typ == typeUnset {
		typ = TypeString
		if a.Default != nil {
			t, ok := typeOf(a.Default)
			if !ok {
				return nil, &ArgumentTypeError{Name: a.Name, Value: a.Default, Type: typ}
			}
			typ = t
		}
	} else if a.Default != nil {
		if t, _ := typeOf(a.Default); t != typ {
			return nil, &ArgumentTypeError{Name: a.Name, Value: a.Default, Type: typ}
		}
	}
	if a.Required && a.Default != nil {
		return nil, &InvalidValueError{Name: a.Name, Value: a.Default, Reason: "cannot combine required with a default value"}
	}
	alias, err := validateAlias(a.Name, a.Alias)
	if err != nil {
		return nil, err
	}
	n := &argNode{
		name:       a.Name,
		alias:      alias,
		typ:        typ,
		help:       a.Help,
		descriptor: a.Descriptor,
		arity:      arity,
		required:   a.Required,
		def:        a.Default,
	}
	if len(a.Choices) > 0 {
		for _, c := range a.Choices {
			if t, _ := typeOf(c); t != typ {
				return nil, &ArgumentTypeError{Name: a.Name, Value: c, Type: typ}
			}
		}
		n.choices = a.Choices
	}
	if a.Min != nil || a.Max != nil {
		if !typ.numeric() {
			return nil, &InvalidValueError{Name: a.Name, Value: a.Name, Reason: "min and max require a numeric type"}
		}
		if n.choices != nil {
			return nil, &MutuallyExclusiveArgumentsError{Names: []string{"range", "choices"}}
		}
		n.min, n.max = math.MinInt, math.MaxInt
		if a.Min != nil {
			n.min = *a.Min
		}
		if a.Max != nil {
			n.max = *a.Max
		}
		if n.min > n.max {
			return nil, &InvalidValueError{Name: a.Name, Value: n.min, Reason: "min must not exceed max"}
		}
		n.hasRange = true
	}
	return n, nil
}

// validateAlias checks the alias format rules and returns the canonical
// single-dash form. Aliases are only legal on flag-named nodes.
func validateAlias(name, alias string) (string, error) {
	if alias == "" {
		return "", nil
	}
	if !isFlag(name) {
		return "", &InvalidAliasError{Alias: alias, Reason: "positional arguments cannot have aliases"}
	}
	if len(alias) > 2 || (len(alias) == 2 && alias[0] != '-') {
		return "", &InvalidAliasError{Alias: alias, Reason: "must be a single letter"}
	}
	if !unicode.IsLetter(rune(alias[len(alias)-1])) {
		return "", &InvalidAliasError{Alias: alias, Reason: "must be a single letter"}
	}
	if len(alias) == 1 {
		return "-" + alias, nil
	}
	return alias, nil
}

// allows reports whether a converted value satisfies the choice set or the
// numeric range. Nodes with neither allow everything.
func (a *argNode) allows(v interface{}) bool {
	if a.choices != nil {
		for _, c := range a.choices {
			if c == v {
				return true
			}
		}
		return false
	}
	if a.hasRange {
		switch x := v.(type) {
		case int:
			return x >= a.min && x <= a.max
		case float64:
			return x >= float64(a.min) && x <= float64(a.max)
		}
	}
	return true
}

// allowed renders the permitted values for error and help text.
func (a *argNode) allowed() []string {
	if a.choices != nil {
		out := make([]string, len(a.choices))
		for i, c := range a.choices {
			out[i] = fmt.Sprintf("%v", c)
		}
		return out
	}
	if a.hasRange {
		return []string{fmt.Sprintf("%d..%d", a.min, a.max)}
	}
	return nil
}
