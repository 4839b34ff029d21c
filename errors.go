// Copyright 2026 The ashparse Authors.

package ashparse

import (
	"errors"
	"fmt"
	"strings"
)

// ErrHelp is returned by Parse when -h or --help is seen and help handling
// has not been disabled.
var ErrHelp = errors.New("help requested")

// ArgumentTypeError reports a value that could not be converted to, or does
// not match, an argument's declared type.
type ArgumentTypeError struct {
	Name  string
	Value interface{}
	Type  Type
}

func (e *ArgumentTypeError) Error() string {
	if e.Type == typeUnset {
		return fmt.Sprintf("argument %q: invalid value %v", e.Name, e.Value)
	}
	return fmt.Sprintf("argument %q: cannot convert %v to %s", e.Name, e.Value, e.Type)
}

// InvalidValueError reports a non-type-related invalid value, such as a
// negative arity specifier or a required argument that also has a default.
type InvalidValueError struct {
	Name   string
	Value  interface{}
	Reason string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value %v for %q: %s", e.Value, e.Name, e.Reason)
}

// InvalidChoiceError reports converted values outside an argument's declared
// choice set or numeric range.
type InvalidChoiceError struct {
	Name    string
	Values  []interface{}
	Choices []string
}

func (e *InvalidChoiceError) Error() string {
	vals := make([]string, len(e.Values))
	for i, v := range e.Values {
		vals[i] = fmt.Sprintf("%v", v)
	}
	return fmt.Sprintf("invalid choice %s for %q (choose from %s)",
		strings.Join(vals, ", "), e.Name, strings.Join(e.Choices, ", "))
}

// InvalidAliasError reports an alias that fails the format rules.
type InvalidAliasError struct {
	Alias  string
	Reason string
}

func (e *InvalidAliasError) Error() string {
	return fmt.Sprintf("invalid alias %q: %s", e.Alias, e.Reason)
}

// TooFewArgumentsError reports fewer collected values than the arity minimum.
type TooFewArgumentsError struct {
	Name string
	Min  int
	Got  int
}

func (e *TooFewArgumentsError) Error() string {
	return fmt.Sprintf("too few arguments for %q: expected at least %d, got %d", e.Name, e.Min, e.Got)
}

// TooManyArgumentsError reports more collected values than the arity maximum.
type TooManyArgumentsError struct {
	Name string
	Max  int
	Got  int
}

func (e *TooManyArgumentsError) Error() string {
	return fmt.Sprintf("too many arguments for %q: expected at most %d, got %d", e.Name, e.Max, e.Got)
}

// UnknownArgumentError reports a token that matches neither a declared
// name/alias nor the next expected positional slot.
type UnknownArgumentError struct {
	Token string
}

func (e *UnknownArgumentError) Error() string {
	return fmt.Sprintf("unknown argument %q", e.Token)
}

// MissingRequiredArgumentError reports a required argument or group that is
// absent from the parsed result.
type MissingRequiredArgumentError struct {
	Name string
}

func (e *MissingRequiredArgumentError) Error() string {
	return fmt.Sprintf("required argument %q is missing", e.Name)
}

// MutuallyExclusiveArgumentsError reports more than one member of a
// mutually exclusive group appearing together.
type MutuallyExclusiveArgumentsError struct {
	Names []string
}

func (e *MutuallyExclusiveArgumentsError) Error() string {
	quoted := make([]string, len(e.Names))
	for i, n := range e.Names {
		quoted[i] = fmt.Sprintf("%q", n)
	}
	return fmt.Sprintf("arguments %s are mutually exclusive", strings.Join(quoted, ", "))
}

// ConditionalDependencyError reports a violated conditional-group relation.
// Effect is "required" when the dependent must appear because the condition
// did, and "forbidden" when the dependent may not appear because the
// condition did not.
type ConditionalDependencyError struct {
	Dependent string
	Condition string
	Effect    string
}

func (e *ConditionalDependencyError) Error() string {
	if e.Effect == "forbidden" {
		return fmt.Sprintf("argument %q is not allowed unless %q is present", e.Dependent, e.Condition)
	}
	return fmt.Sprintf("argument %q is required when %q is present", e.Dependent, e.Condition)
}
