package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/baditaflorin/l"
)

func TestCustomStdLoggerWritesMessages(t *testing.T) {
	var buf bytes.Buffer
	lg, err := NewCustomStdLogger(l.Config{
		Output:     &buf,
		JsonFormat: true,
		AsyncWrite: false,
	})
	if err != nil {
		t.Fatalf("NewCustomStdLogger: %v", err)
	}

	lg.Info("Scored utterance", "score", 84)
	lg.Warn("Empty target")
	if err := lg.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Scored utterance", "Empty target"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q: %s", want, out)
		}
	}
}

func TestDiscardLogger(t *testing.T) {
	lg, err := NewDiscardLogger()
	if err != nil {
		t.Fatalf("NewDiscardLogger: %v", err)
	}
	lg.Debug("dropped")
	if err := lg.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}
