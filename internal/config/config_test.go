package config

import (
	"strings"
	"testing"
)

func TestParseDefaultsStackLimit(t *testing.T) {
	cfg, err := Parse([]byte("eval_limit: 1000\ntrace_function: true\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.EvalLimit != 1000 {
		t.Fatalf("got %+v", cfg)
	}
	if cfg.StackLimit <= 0 {
		t.Fatalf("expected default stack limit, got %+v", cfg)
	}
	if cfg.TraceFlags == 0 {
		t.Fatalf("expected trace_function flag set, got %+v", cfg)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg, err := Parse([]byte("boot_phase: 2\nstack_limit: 4096\n"))
	if err != nil {
		t.Fatal(err)
	}
	out, err := Marshal(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), "boot_phase: 2") {
		t.Fatalf("got %s", out)
	}
}
