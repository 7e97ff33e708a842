package core

import (
	"errors"
	"sync"
)

// ErrAlreadyInstalled is returned when a second Application tries to become active.
var ErrAlreadyInstalled = errors.New("core: an application is already active")

// The active application slot. Install happens in New and Uninstall when
// Run returns, both on the loop goroutine; that goroutine is the only writer.
var (
	activeMu sync.RWMutex
	active   *Application
)

// Install makes app the process-wide active application.
func Install(app *Application) error {
	activeMu.Lock()
	defer activeMu.Unlock()
	if active != nil && active != app {
		return ErrAlreadyInstalled
	}
	active = app
	return nil
}

// Uninstall clears the slot if app is the active application.
func Uninstall(app *Application) {
	activeMu.Lock()
	if active == app {
		active = nil
	}
	activeMu.Unlock()
}

// Current returns the active application, or nil.
// Prefer the *Application passed to Listener.Create where it is in reach.
func Current() *Application {
	activeMu.RLock()
	defer activeMu.RUnlock()
	return active
}
