package cli

import (
	"os"
	"testing"

	"github.com/ardnew/cykscope/log"
)

func TestScanBool(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    string
		assigned bool
		negated  bool
		want     bool
		ok       bool
	}{
		{name: "bare", want: true, ok: true},
		{name: "bare_negated", negated: true, want: false, ok: true},
		{name: "assigned_true", value: "true", assigned: true, want: true, ok: true},
		{name: "assigned_false", value: "0", assigned: true, want: false, ok: true},
		{name: "negated_false", value: "false", assigned: true, negated: true, want: true, ok: true},
		{name: "invalid", value: "maybe", assigned: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := scanBool(tt.value, tt.assigned, tt.negated)
			if ok != tt.ok || got != tt.want {
				t.Errorf("expected (%v, %v), got (%v, %v)", tt.want, tt.ok, got, ok)
			}
		})
	}
}

// TestLogConfigScan modifies the package-level logger and cannot run in
// parallel.
func TestLogConfigScan(t *testing.T) {
	t.Cleanup(func() { log.Config(log.WithDefaults(os.Stderr)) })

	f := logConfig{Level: "info", Format: "text", Pretty: true}

	f.scan([]string{
		"run",
		"--log-level", "debug",
		"--log-format=json",
		"--no-log-pretty",
		"--log-caller",
		"--jobs", "4",
	})

	if f.Level != "debug" {
		t.Errorf("expected level %q, got %q", "debug", f.Level)
	}

	if f.Format != "json" {
		t.Errorf("expected format %q, got %q", "json", f.Format)
	}

	if f.Pretty {
		t.Error("expected pretty disabled")
	}

	if !f.Caller {
		t.Error("expected caller enabled")
	}

	if got := log.Default().Level(); got != log.LevelDebug {
		t.Errorf("expected default logger level %v, got %v", log.LevelDebug, got)
	}
}

func TestLogConfigScanMissingValue(t *testing.T) {
	t.Cleanup(func() { log.Config(log.WithDefaults(os.Stderr)) })

	f := logConfig{Level: "info"}

	// A following flag is not consumed as the level value.
	f.scan([]string{"--log-level", "--log-caller"})

	if f.Level != "" {
		t.Errorf("expected empty level, got %q", f.Level)
	}

	if !f.Caller {
		t.Error("expected caller enabled")
	}
}
