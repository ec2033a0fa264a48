// Package gst adapts the GStreamer bindings to the domain pipeline interfaces.
// The bindings need cgo and the GStreamer development files, so they are only
// compiled in with the "gst" build tag.
package gst

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// ErrUnavailable is returned by every constructor when the bindings are not compiled in
var ErrUnavailable = errors.New("gstreamer support not compiled in (build with -tags gst)")

// guard reference counts framework initialization for the whole process
type guard struct {
	mu    sync.Mutex
	refs  int
	start func() error
	stop  func()
}

func (g *guard) acquire() (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.refs > 0 {
		g.refs++
		return false, nil
	}
	if err := g.start(); err != nil {
		return false, err
	}
	g.refs = 1
	return true, nil
}

func (g *guard) release() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.refs == 0 {
		return false
	}
	g.refs--
	if g.refs > 0 {
		return false
	}
	g.stop()
	return true
}

var framework = &guard{start: startFramework, stop: stopFramework}

// Init initializes the framework on first use. Every successful call must be
// paired with Deinit.
func Init(logger *zap.Logger) error {
	started, err := framework.acquire()
	if err != nil {
		return fmt.Errorf("failed to initialize gstreamer: %w", err)
	}
	if started {
		logger.Info("GStreamer initialized")
	}
	return nil
}

// Deinit drops one reference and shuts the framework down with the last one
func Deinit(logger *zap.Logger) {
	if framework.release() {
		logger.Info("GStreamer deinitialized")
	}
}
