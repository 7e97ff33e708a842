package files

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestResolve(t *testing.T) {
	f := &Files{internalRoot: "assets", localRoot: ".", externalRoot: "/home/u"}
	tests := []struct {
		h    Handle
		want string
	}{
		{f.Internal("shaders/a.vert"), filepath.Join("assets", "shaders", "a.vert")},
		{f.Local("save.dat"), "save.dat"},
		{f.External(".prefs/x"), filepath.Join("/home/u", ".prefs", "x")},
		{f.Absolute("/tmp/y"), "/tmp/y"},
	}
	for _, tt := range tests {
		if got := tt.h.Resolve(); got != tt.want {
			t.Errorf("%s %q: Resolve() = %q, want %q", tt.h.Type, tt.h.Path, got, tt.want)
		}
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	f := New(dir)
	h := f.Absolute(filepath.Join(dir, "nested", "file.txt"))
	if err := h.WriteBytes([]byte("hello")); err != nil {
		t.Fatalf("WriteBytes: %v", err)
	}
	if !h.Exists() {
		t.Fatal("file should exist after write")
	}
	got, err := h.ReadString()
	if err != nil {
		t.Fatalf("ReadString: %v", err)
	}
	if got != "hello" {
		t.Errorf("ReadString = %q, want %q", got, "hello")
	}
}

func TestInternalIsReadOnly(t *testing.T) {
	f := New(t.TempDir())
	if err := f.Internal("x").WriteBytes(nil); !errors.Is(err, ErrReadOnly) {
		t.Errorf("WriteBytes on internal = %v, want ErrReadOnly", err)
	}
}

func TestReadMissing(t *testing.T) {
	f := New(t.TempDir())
	if _, err := f.Internal("missing.png").ReadBytes(); err == nil {
		t.Error("expected error for missing file")
	}
}
