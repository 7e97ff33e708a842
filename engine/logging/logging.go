package logging

import (
	"io"
	"log"
	"os"
	"runtime/debug"
)

// Logger is the diagnostic sink handed to the engine and to applications.
// Messages carry a tag naming the component that produced them.
type Logger interface {
	Log(tag, message string)
	LogError(tag, message string, err error)
}

// Noop discards everything.
type Noop struct{}

func (Noop) Log(tag, message string)                 {}
func (Noop) LogError(tag, message string, err error) {}

// Std writes through a stdlib *log.Logger.
type Std struct {
	l *log.Logger
	// Trace appends the calling goroutine's stack to LogError output.
	Trace bool
}

// NewStd returns a logger writing to w, or to stderr if w is nil.
func NewStd(w io.Writer) *Std {
	if w == nil {
		w = os.Stderr
	}
	return &Std{l: log.New(w, "", log.LstdFlags), Trace: true}
}

func (s *Std) Log(tag, message string) {
	s.l.Printf("%s: %s", tag, message)
}

func (s *Std) LogError(tag, message string, err error) {
	if err == nil {
		s.l.Printf("%s: %s", tag, message)
		return
	}
	s.l.Printf("%s: %s: %v", tag, message, err)
	if s.Trace {
		s.l.Printf("Stack trace:\n%s", debug.Stack())
	}
}
