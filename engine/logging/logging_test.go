package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestStdLog(t *testing.T) {
	var buf bytes.Buffer
	l := NewStd(&buf)
	l.Log("core", "hello")
	if got := buf.String(); !strings.Contains(got, "core: hello") {
		t.Errorf("output %q should contain %q", got, "core: hello")
	}
}

func TestStdLogError(t *testing.T) {
	var buf bytes.Buffer
	l := NewStd(&buf)
	l.LogError("prefs", "flush failed", errors.New("disk full"))
	got := buf.String()
	if !strings.Contains(got, "prefs: flush failed: disk full") {
		t.Errorf("output %q missing error line", got)
	}
	if !strings.Contains(got, "Stack trace:") {
		t.Errorf("output %q missing stack trace", got)
	}
}

func TestStdLogErrorWithoutTrace(t *testing.T) {
	var buf bytes.Buffer
	l := NewStd(&buf)
	l.Trace = false
	l.LogError("prefs", "flush failed", errors.New("disk full"))
	if strings.Contains(buf.String(), "Stack trace:") {
		t.Error("trace should be omitted when Trace is false")
	}
}

func TestStdLogErrorNil(t *testing.T) {
	var buf bytes.Buffer
	l := NewStd(&buf)
	l.LogError("core", "nothing wrong", nil)
	if strings.Contains(buf.String(), "<nil>") {
		t.Errorf("nil error should not be printed: %q", buf.String())
	}
}
