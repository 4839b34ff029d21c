// Copyright 2026 The ashparse Authors.

package ashparse

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNamespaceSetTypeChecked(t *testing.T) {
	ns, err := copyParser().Parse([]string{"file.txt"})
	if err != nil {
		t.Fatal(err)
	}
	if err := ns.Set("--count", 7); err != nil {
		t.Fatal(err)
	}
	if got, _ := ns.GetInt("--count"); got != 7 {
		t.Errorf("count: got %d, want 7", got)
	}

	err = ns.Set("--count", "seven")
	var typeErr *ArgumentTypeError
	if !errors.As(err, &typeErr) {
		t.Fatalf("got %v, want ArgumentTypeError", err)
	}
	// The bad assignment must not stick.
	if got, _ := ns.GetInt("--count"); got != 7 {
		t.Errorf("count after failed Set: got %d, want 7", got)
	}
}

func TestNamespaceSetUnknown(t *testing.T) {
	ns, err := copyParser().Parse([]string{"file.txt"})
	if err != nil {
		t.Fatal(err)
	}
	var unknown *UnknownArgumentError
	if err := ns.Set("--nope", 1); !errors.As(err, &unknown) {
		t.Errorf("Set: got %v, want UnknownArgumentError", err)
	}
	if _, err := ns.Get("--nope"); !errors.As(err, &unknown) {
		t.Errorf("Get: got %v, want UnknownArgumentError", err)
	}
}

func TestNamespaceAccessorTypeMismatch(t *testing.T) {
	ns, err := copyParser().Parse([]string{"file.txt"})
	if err != nil {
		t.Fatal(err)
	}
	var typeErr *ArgumentTypeError
	if _, err := ns.GetString("--count"); !errors.As(err, &typeErr) {
		t.Errorf("GetString: got %v, want ArgumentTypeError", err)
	}
	if _, err := ns.GetInts("--count"); !errors.As(err, &typeErr) {
		t.Errorf("GetInts: got %v, want ArgumentTypeError", err)
	}
}

func TestNamespaceNames(t *testing.T) {
	ns, err := copyParser().Parse([]string{"file.txt"})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"--count", "input"}, ns.Names()); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestNamespaceString(t *testing.T) {
	ns, err := copyParser().Parse([]string{"file.txt", "-c", "3"})
	if err != nil {
		t.Fatal(err)
	}
	want := "{--count=3, input=file.txt}"
	if got := ns.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
