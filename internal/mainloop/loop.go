// Package mainloop provides the single-threaded event loop that hosts player
// backends. Every backend callback, bus message and timer tick runs on it.
package mainloop

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/genricoloni/gtplayer/internal/domain"
	"go.uber.org/zap"
)

// ErrStopped is returned by InvokeSync once the loop has quit
var ErrStopped = errors.New("main loop stopped")

type source struct {
	fn   func() bool
	stop chan struct{}
}

// Loop serializes callbacks onto the goroutine running Run
type Loop struct {
	logger *zap.Logger
	wake   chan struct{}
	quit   chan struct{}
	once   sync.Once

	// pending is unbounded so Invoke never blocks, including from the loop itself
	queueMu sync.Mutex
	pending []func()

	mu      sync.Mutex
	nextID  domain.SourceID
	sources map[domain.SourceID]*source
}

// NewLoop creates a loop; callbacks queue up until Run is called
func NewLoop(logger *zap.Logger) *Loop {
	return &Loop{
		logger:  logger,
		wake:    make(chan struct{}, 1),
		quit:    make(chan struct{}),
		sources: make(map[domain.SourceID]*source),
	}
}

// Run dispatches queued callbacks until ctx is cancelled or Quit is called.
// It blocks the calling goroutine, which becomes the loop thread.
func (l *Loop) Run(ctx context.Context) error {
	l.logger.Info("Main loop running")
	for {
		select {
		case <-ctx.Done():
			l.Quit()
			return ctx.Err()
		case <-l.quit:
			l.logger.Info("Main loop stopped")
			return nil
		case <-l.wake:
			l.drain()
		}
	}
}

// drain runs everything queued so far; calls queued meanwhile wait for the next wake
func (l *Loop) drain() {
	l.queueMu.Lock()
	batch := l.pending
	l.pending = nil
	l.queueMu.Unlock()

	for _, fn := range batch {
		select {
		case <-l.quit:
			return
		default:
		}
		fn()
	}
}

// Quit stops Run and every timeout source. It is idempotent.
func (l *Loop) Quit() {
	l.once.Do(func() {
		close(l.quit)

		l.mu.Lock()
		defer l.mu.Unlock()
		for id, src := range l.sources {
			close(src.stop)
			delete(l.sources, id)
		}
	})
}

// Invoke queues fn on the loop without blocking. Calls made after Quit are dropped.
func (l *Loop) Invoke(fn func()) {
	select {
	case <-l.quit:
		return
	default:
	}

	l.queueMu.Lock()
	l.pending = append(l.pending, fn)
	l.queueMu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// InvokeSync runs fn on the loop and waits for it to return
func (l *Loop) InvokeSync(ctx context.Context, fn func()) error {
	done := make(chan struct{})
	l.Invoke(func() {
		defer close(done)
		fn()
	})

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-l.quit:
		return ErrStopped
	}
}

// AddTimeout calls fn on the loop every interval until fn returns false or
// the source is removed
func (l *Loop) AddTimeout(interval time.Duration, fn func() bool) domain.SourceID {
	l.mu.Lock()
	l.nextID++
	id := l.nextID
	src := &source{fn: fn, stop: make(chan struct{})}
	l.sources[id] = src
	l.mu.Unlock()

	go l.tick(id, src, interval)

	return id
}

// RemoveSource cancels a timeout. Once it returns on the loop thread the
// callback is never invoked again.
func (l *Loop) RemoveSource(id domain.SourceID) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	src, ok := l.sources[id]
	if !ok {
		return false
	}
	close(src.stop)
	delete(l.sources, id)
	return true
}

// Sources returns the number of active timeout sources
func (l *Loop) Sources() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.sources)
}

func (l *Loop) tick(id domain.SourceID, src *source, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-src.stop:
			return
		case <-l.quit:
			return
		case <-ticker.C:
			l.Invoke(func() { l.dispatch(id) })
		}
	}
}

// dispatch runs on the loop thread
func (l *Loop) dispatch(id domain.SourceID) {
	l.mu.Lock()
	src, ok := l.sources[id]
	l.mu.Unlock()

	// Removed while the tick was queued
	if !ok {
		return
	}

	if !src.fn() {
		l.RemoveSource(id)
	}
}
