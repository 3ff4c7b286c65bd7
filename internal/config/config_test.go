package config

import "testing"

func TestDefaults(t *testing.T) {
	c := New()
	if c.ParamA() != 0.0015 {
		t.Fatalf("ParamA() = %v, want 0.0015", c.ParamA())
	}
	if c.CountWidth() != "64" {
		t.Fatalf("CountWidth() = %q, want %q", c.CountWidth(), "64")
	}
	if c.ForceStrategy() != "" {
		t.Fatalf("ForceStrategy() = %q, want empty", c.ForceStrategy())
	}
}

func TestSetOverridesDefault(t *testing.T) {
	c := New()
	c.Set("count.width", "128")
	if c.CountWidth() != "128" {
		t.Fatalf("CountWidth() = %q, want %q", c.CountWidth(), "128")
	}
}

func TestOrderingOptionsForceStrategy(t *testing.T) {
	c := New()
	c.Set("ordering.force_strategy", "core")
	opt := c.OrderingOptions()
	if !opt.ForceCore || opt.ForceDegree {
		t.Fatalf("OrderingOptions() = %+v, want ForceCore=true", opt)
	}
}

func TestCreateLoggerDoesNotPanic(t *testing.T) {
	c := New()
	_ = c.CreateLogger()
}
