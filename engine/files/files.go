package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileType selects the root a relative path is resolved against.
type FileType int

const (
	Internal FileType = iota // bundled, read-only assets
	Local                    // application working directory
	External                 // user home directory
	Absolute                 // path used as given
)

func (t FileType) String() string {
	switch t {
	case Internal:
		return "internal"
	case Local:
		return "local"
	case External:
		return "external"
	case Absolute:
		return "absolute"
	}
	return "unknown"
}

var ErrReadOnly = errors.New("files: internal files are read-only")

// Files resolves paths for each FileType.
type Files struct {
	internalRoot string
	localRoot    string
	externalRoot string
}

// New returns a Files rooted at assetsDir for internal files.
// External files resolve against the user's home directory when it is known.
func New(assetsDir string) *Files {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return &Files{internalRoot: assetsDir, localRoot: ".", externalRoot: home}
}

// ExternalRoot is the directory External paths resolve against.
func (f *Files) ExternalRoot() string { return f.externalRoot }

func (f *Files) Internal(path string) Handle { return Handle{f: f, Path: path, Type: Internal} }
func (f *Files) Local(path string) Handle    { return Handle{f: f, Path: path, Type: Local} }
func (f *Files) External(path string) Handle { return Handle{f: f, Path: path, Type: External} }
func (f *Files) Absolute(path string) Handle { return Handle{f: f, Path: path, Type: Absolute} }

// Handle names a file without opening it.
type Handle struct {
	f    *Files
	Path string
	Type FileType
}

// Resolve returns the OS path for the handle.
func (h Handle) Resolve() string {
	switch h.Type {
	case Internal:
		return filepath.Join(h.f.internalRoot, h.Path)
	case Local:
		return filepath.Join(h.f.localRoot, h.Path)
	case External:
		return filepath.Join(h.f.externalRoot, h.Path)
	}
	return h.Path
}

func (h Handle) Exists() bool {
	_, err := os.Stat(h.Resolve())
	return err == nil
}

func (h Handle) ReadBytes() ([]byte, error) {
	path := h.Resolve()
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s file %q: %w", h.Type, path, err)
	}
	return b, nil
}

func (h Handle) ReadString() (string, error) {
	b, err := h.ReadBytes()
	return string(b), err
}

// WriteBytes replaces the file contents, creating parent directories.
func (h Handle) WriteBytes(data []byte) error {
	if h.Type == Internal {
		return ErrReadOnly
	}
	path := h.Resolve()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create dir for %q: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %q: %w", path, err)
	}
	return nil
}
