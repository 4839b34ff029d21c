// Copyright 2026 The ashparse Authors.

package ashparse

import (
	"fmt"
	"strconv"
)

// Type is the declared value type of an argument. It determines how raw
// command-line tokens are converted and how the arity collector treats
// dash-prefixed tokens (numeric types accept negative numbers as values).
type Type int

const (
	typeUnset Type = iota // zero value: inferred from Default, else string
	TypeString
	TypeInt
	TypeFloat
	TypeBool
)

func (t Type) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeBool:
		return "bool"
	default:
		return "unset"
	}
}

func (t Type) numeric() bool {
	return t == TypeInt || t == TypeFloat
}

// typeOf reports the Type corresponding to a converted Go value.
func typeOf(v interface{}) (Type, bool) {
	switch v.(type) {
	case string:
		return TypeString, true
	case int:
		return TypeInt, true
	case float64:
		return TypeFloat, true
	case bool:
		return TypeBool, true
	}
	return typeUnset, false
}

func zeroValue(t Type) interface{} {
	switch t {
	case TypeInt:
		return 0
	case TypeFloat:
		return 0.0
	case TypeBool:
		return false
	default:
		return ""
	}
}

// convertValue converts a raw token to the declared type of the named
// argument. Ints are represented as int, floats as float64.
func convertValue(t Type, name, s string) (interface{}, error) {
	switch t {
	case TypeString:
		return s, nil
	case TypeInt:
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, &ArgumentTypeError{Name: name, Value: s, Type: t}
		}
		return n, nil
	case TypeFloat:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, &ArgumentTypeError{Name: name, Value: s, Type: t}
		}
		return f, nil
	case TypeBool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return nil, &ArgumentTypeError{Name: name, Value: s, Type: t}
		}
		return b, nil
	}
	return nil, fmt.Errorf("%s: no conversion for type %s", name, t)
}
