// Copyright 2026 The ashparse Authors.

package ashparse

import (
	"math"
	"strconv"
)

// Unbounded is the Max of an arity with no upper bound ("*" or "+").
const Unbounded = math.MaxInt

// Arity is the inclusive (Min, Max) bound on how many value tokens an
// argument consumes.
type Arity struct {
	Min, Max int
}

// parseArity derives an Arity from a specifier: "" means exactly one value,
// "?" zero or one, "*" zero or more, "+" one or more, and an integer k
// exactly k. Anything else, including a negative integer, is invalid.
func parseArity(name, spec string) (Arity, error) {
	switch spec {
	case "":
		return Arity{1, 1}, nil
	case "?":
		return Arity{0, 1}, nil
	case "*":
		return Arity{0, Unbounded}, nil
	case "+":
		return Arity{1, Unbounded}, nil
	}
	k, err := strconv.Atoi(spec)
	if err != nil {
		return Arity{}, &InvalidValueError{Name: name, Value: spec, Reason: "not a valid arity specifier"}
	}
	if k < 0 {
		return Arity{}, &InvalidValueError{Name: name, Value: spec, Reason: "cannot be negative"}
	}
	return Arity{k, k}, nil
}
