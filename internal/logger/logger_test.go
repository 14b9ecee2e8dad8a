package logger

import (
	"testing"

	"go.uber.org/zap"
)

func TestNew_ReplacesGlobal(t *testing.T) {
	prev := zap.L()
	t.Cleanup(func() { zap.ReplaceGlobals(prev) })

	for _, mode := range []string{"debug", "release", "test"} {
		l, err := New(mode)
		if err != nil {
			t.Fatalf("New(%q) failed: %v", mode, err)
		}
		if zap.L() != l {
			t.Fatalf("mode %q: expected global logger to be replaced", mode)
		}
	}
}
