package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/hubastard/esloop/engine/logging"
	"gopkg.in/yaml.v3"
)

// Store hands out one Preferences object per name for the life of the process.
type Store struct {
	dir    string
	logger logging.Logger

	mu    sync.Mutex
	cache map[string]*Preferences
}

// NewStore returns a store persisting under dir. A nil logger discards diagnostics.
func NewStore(dir string, logger logging.Logger) *Store {
	if logger == nil {
		logger = logging.Noop{}
	}
	return &Store{dir: dir, logger: logger, cache: map[string]*Preferences{}}
}

// Get returns the preferences for name, loading them on first request.
// Concurrent callers asking for the same name receive the same instance.
func (s *Store) Get(name string) *Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.cache[name]; ok {
		return p
	}
	p := newPreferences(name, filepath.Join(s.dir, name+".yaml"))
	if err := p.load(); err != nil {
		s.logger.LogError("prefs", fmt.Sprintf("could not load %q, starting empty", name), err)
	}
	s.cache[name] = p
	return p
}

// Preferences is a named key/value set flushed to a yaml file.
// Values are kept in memory until Flush.
type Preferences struct {
	name string
	path string

	mu     sync.RWMutex
	values map[string]any
}

func newPreferences(name, path string) *Preferences {
	return &Preferences{name: name, path: path, values: map[string]any{}}
}

func (p *Preferences) Name() string { return p.name }
func (p *Preferences) Path() string { return p.path }

func (p *Preferences) load() error {
	data, err := os.ReadFile(p.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %q: %w", p.path, err)
	}
	values := map[string]any{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("parse %q: %w", p.path, err)
	}
	p.mu.Lock()
	p.values = values
	p.mu.Unlock()
	return nil
}

// Flush writes the current values to disk, replacing the previous file atomically.
func (p *Preferences) Flush() error {
	p.mu.RLock()
	data, err := yaml.Marshal(p.values)
	p.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("encode preferences %q: %w", p.name, err)
	}
	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return fmt.Errorf("create preferences dir: %w", err)
	}
	tmp := p.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %q: %w", tmp, err)
	}
	if err := os.Rename(tmp, p.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace %q: %w", p.path, err)
	}
	return nil
}

func (p *Preferences) put(key string, v any) {
	p.mu.Lock()
	p.values[key] = v
	p.mu.Unlock()
}

func (p *Preferences) get(key string) (any, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	v, ok := p.values[key]
	return v, ok
}

func (p *Preferences) PutString(key, v string)        { p.put(key, v) }
func (p *Preferences) PutInt(key string, v int)       { p.put(key, v) }
func (p *Preferences) PutBool(key string, v bool)     { p.put(key, v) }
func (p *Preferences) PutFloat(key string, v float64) { p.put(key, v) }

// GetString returns the value for key, or def if missing or not a string.
func (p *Preferences) GetString(key, def string) string {
	if v, ok := p.get(key); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return def
}

func (p *Preferences) GetInt(key string, def int) int {
	v, ok := p.get(key)
	if !ok {
		return def
	}
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case uint64:
		return int(n)
	case float64:
		return int(n)
	}
	return def
}

func (p *Preferences) GetFloat(key string, def float64) float64 {
	v, ok := p.get(key)
	if !ok {
		return def
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}
	return def
}

func (p *Preferences) GetBool(key string, def bool) bool {
	if v, ok := p.get(key); ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return def
}

func (p *Preferences) Contains(key string) bool {
	_, ok := p.get(key)
	return ok
}

func (p *Preferences) Remove(key string) {
	p.mu.Lock()
	delete(p.values, key)
	p.mu.Unlock()
}

func (p *Preferences) Clear() {
	p.mu.Lock()
	p.values = map[string]any{}
	p.mu.Unlock()
}

// Keys returns the stored keys in sorted order.
func (p *Preferences) Keys() []string {
	p.mu.RLock()
	keys := make([]string, 0, len(p.values))
	for k := range p.values {
		keys = append(keys, k)
	}
	p.mu.RUnlock()
	sort.Strings(keys)
	return keys
}
