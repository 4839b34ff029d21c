// Copyright 2026 The ashparse Authors.

package ashparse

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseArity(t *testing.T) {
	for _, test := range []struct {
		spec string
		want Arity
	}{
		{"", Arity{1, 1}},
		{"?", Arity{0, 1}},
		{"*", Arity{0, Unbounded}},
		{"+", Arity{1, Unbounded}},
		{"0", Arity{0, 0}},
		{"3", Arity{3, 3}},
	} {
		got, err := parseArity("x", test.spec)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", test.spec, err)
		}
		if !cmp.Equal(got, test.want) {
			t.Errorf("%q: got %+v, want %+v", test.spec, got, test.want)
		}
	}
}

func TestParseArityInvalid(t *testing.T) {
	for _, spec := range []string{"-1", "-3", "x", "1.5", "++"} {
		_, err := parseArity("x", spec)
		var iv *InvalidValueError
		if !errors.As(err, &iv) {
			t.Errorf("%q: got %v, want InvalidValueError", spec, err)
		}
	}
}
