// Copyright 2026 The ashparse Authors.

/*
Package ashparse parses command-line arguments against a declarative tree of
typed arguments and nested groups.

An argument is declared with a name, a value type, and an arity. Names
starting with "--" are matched by name (and optionally a single-letter
alias); any other name is positional and matched by declaration order:

	p := ashparse.New("copy")
	p.Arg(&ashparse.Arg{Name: "src", Required: true, Help: "source file"})
	p.Arg(&ashparse.Arg{Name: "--count", Alias: "c", Type: ashparse.TypeInt, Default: 1})

	ns, err := p.Parse(os.Args[1:])

Parse walks the token list left to right in a single greedy pass. Each
argument consumes as many adjacent value tokens as its arity allows; the
arity is given in NArgs as "?" (zero or one), "*" (zero or more), "+" (one
or more), an integer, or left empty for exactly one. Numeric arguments
accept tokens that look like negative numbers as values.

The result is a typed Namespace. Every entry carries its declared type, and
both parsing and later Set calls check values against it:

	src, err := ns.GetString("src")
	count, err := ns.GetInt("--count")

# Groups

Arguments can be organized into groups, each with distinct semantics.

A plain group (ArgGroup) is entered by its own name token and is otherwise
pure organization: after parsing, its children appear at the top level of
the namespace.

A mutually exclusive group (MutexGroup) is transparent during matching, but
at most one of its members may appear:

	m := p.MutexGroup("format", "output format")
	m.Arg(&ashparse.Arg{Name: "--json", Type: ashparse.TypeBool})
	m.Arg(&ashparse.Arg{Name: "--xml", Type: ashparse.TypeBool})

A conditional group (ConditionalGroup) relates the presence of its first
child to the presence of the rest: with FirstPresentRestRequired the
remaining children must appear whenever the first does, and with
FirstAbsentRestForbidden they may not appear unless the first does.

A recurring group (RecurringGroup) may be matched any number of times, each
occurrence parsed against its children and collected into a list:

	j := p.RecurringGroup("--job", "a job to run")
	j.Arg(&ashparse.Arg{Name: "name"})
	j.Arg(&ashparse.Arg{Name: "duration", Type: ashparse.TypeInt})

	jobs, err := ns.GetGroups("--job") // one Namespace per occurrence

# Errors

Declaration mistakes (bad aliases, negative arities, a required argument
with a default, choices combined with a numeric range) are collected while
the tree is built and returned by Err or by the first Parse call. Parse-time
failures are returned as distinct types carrying structured fields
(UnknownArgumentError, TooFewArgumentsError, InvalidChoiceError,
MissingRequiredArgumentError, MutuallyExclusiveArgumentsError,
ConditionalDependencyError and friends) so callers can inspect or re-render
them. The first failure aborts the parse; no partial result is returned.

Parse returns ErrHelp when it sees -h or --help, unless DisableHelp was
called; Usage renders the help text.
*/
package ashparse
