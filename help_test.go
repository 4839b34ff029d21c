// Copyright 2026 The ashparse Authors.

package ashparse

import (
	"strings"
	"testing"
)

func helpParser() *Group {
	p := New("invoke")
	p.Arg(&Arg{Name: "script", Required: true, Help: "script to run"})
	p.Arg(&Arg{Name: "--count", Alias: "c", Type: TypeInt, Default: 1, Help: "number of runs"})
	m := p.MutexGroup("format", "output format")
	m.Arg(&Arg{Name: "--json", Type: TypeBool, Help: "JSON output"})
	m.Arg(&Arg{Name: "--xml", Type: TypeBool, Help: "XML output"})
	j := p.RecurringGroup("--job", "a job to run")
	j.Arg(&Arg{Name: "name", Help: "job name"})
	j.Arg(&Arg{Name: "duration", Type: TypeInt, Help: "seconds"})
	c := p.ConditionalGroup("db", "", FirstPresentRestRequired)
	c.Arg(&Arg{Name: "--use-db", Type: TypeBool})
	c.Arg(&Arg{Name: "--db-name"})
	return p
}

func TestUsageLine(t *testing.T) {
	got := strings.SplitN(helpParser().UsageString(), "\n", 2)[0]
	want := "Usage: INVOKE <SCRIPT> [-c, --count] ([--json] [--xml]) " +
		"[--job <NAME> <DURATION>]... <[--use-db] & [--db-name]>"
	if got != want {
		t.Errorf("usage line:\ngot  %q\nwant %q", got, want)
	}
}

func TestUsageHelpLines(t *testing.T) {
	out := helpParser().UsageString()
	for _, want := range []string{
		"SCRIPT         script to run",
		"-c, --count    number of runs (default 1)",
		"format  output format",
		"--json         JSON output",
		"--job  a job to run",
		"DURATION       seconds",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("usage output missing %q:\n%s", want, out)
		}
	}
}

func TestUsageShowsChoices(t *testing.T) {
	p := New("t")
	p.Arg(&Arg{Name: "--level", Type: TypeInt, Choices: []interface{}{1, 2, 3}, Help: "verbosity"})
	if out := p.UsageString(); !strings.Contains(out, "verbosity (one of 1, 2, 3)") {
		t.Errorf("usage output missing choices:\n%s", out)
	}
}
