package domain

import "time"

// PlayerBackend is the capability interface every playback backend implements.
// All methods must be called from the host loop.
type PlayerBackend interface {
	// Widget returns the display surface rendered into by the video sink
	Widget() Widget

	// Play requests playback; State becomes StateLoading until confirmed
	Play()
	// Pause requests the pipeline to pause
	Pause()
	// Stop tears the pipeline down to its null state
	Stop()
	// SetURI replaces the media source
	SetURI(uri string)
	// SetPosition seeks to the given offset in seconds (best effort)
	SetPosition(seconds int64)

	Volume() float64
	SetVolume(volume float64)
	BufferFill() float64
	Duration() int64
	Position() int64
	Seekable() bool
	State() BackendState

	// URI returns the configured source, if any
	URI() (string, bool)
	// Err returns the last error reported by the pipeline
	Err() error

	// Connect registers fn to be called on every property change
	Connect(fn func(Property)) HandlerID
	// Disconnect removes an observer registered with Connect
	Disconnect(id HandlerID)

	// Close stops playback and releases the pipeline
	Close() error
}

// Widget is an opaque, reference counted display surface owned by a video sink
type Widget interface {
	Unref()
}

// Element is a node of the external pipeline graph
type Element interface {
	Name() string
	// Property reads a named property of the element
	Property(name string) (any, error)
}

// Bin is a container element that owns its children
type Bin interface {
	Element
	// Add transfers ownership of elems to the bin
	Add(elems ...Element) error
	// Link connects elems in sequence
	Link(elems ...Element) error
	// AddGhostPad exposes targetPad of target as an activated pad named name
	AddGhostPad(name string, target Element, targetPad string) error
}

// Pipeline is the top-level playback element (a playbin)
//
//go:generate mockgen -destination=mocks/pipeline_mock.go -package=mocks github.com/genricoloni/gtplayer/internal/domain Pipeline
type Pipeline interface {
	Element

	// SetState requests an asynchronous state change
	SetState(state PipelineState) error
	// CurrentState queries the live state of the pipeline
	CurrentState() PipelineState
	QueryPosition() (time.Duration, bool)
	QueryDuration() (time.Duration, bool)
	// SeekSimple issues a time based seek and reports whether it was accepted
	SeekSimple(position time.Duration, flags SeekFlags) bool

	SetURI(uri string) error
	// SetVideoSink installs sink as the video output; the pipeline takes ownership
	SetVideoSink(sink Element) error

	Volume() float64
	SetVolume(volume float64) error
	// OnVolumeChanged calls fn whenever the pipeline's own volume changes.
	// fn may be called from any goroutine.
	OnVolumeChanged(fn func(volume float64)) (disconnect func())

	// AddWatch registers fn for every message posted on the pipeline bus.
	// fn may be called from any goroutine and is kept while it returns true.
	AddWatch(fn func(msg Message) bool) (remove func())

	// Release drops the owning reference, and with it every child element
	Release()
}

// ElementFactory creates framework elements by kind name
//
//go:generate mockgen -destination=mocks/element_factory_mock.go -package=mocks github.com/genricoloni/gtplayer/internal/domain ElementFactory,Bin,Element
type ElementFactory interface {
	NewPipeline(kind, name string) (Pipeline, error)
	NewElement(kind string) (Element, error)
	NewBin(name string) (Bin, error)
}

// Scheduler is the host event loop all backend callbacks run on
type Scheduler interface {
	// Invoke queues fn to run on the loop; safe from any goroutine
	Invoke(fn func())
	// AddTimeout runs fn on the loop every interval until it returns false or is removed
	AddTimeout(interval time.Duration, fn func() bool) SourceID
	// RemoveSource cancels a timeout; it reports whether the source existed
	RemoveSource(id SourceID) bool
}

// Config defines the interface for application configuration
type Config interface {
	// GetBackend returns the registry name of the backend to instantiate
	GetBackend() string

	// GetBackendOptions returns the tunables passed to the backend factory
	GetBackendOptions() BackendOptions

	// GetGLAPI returns the requested GL API ("auto", "opengl", "gles2", ...)
	GetGLAPI() string

	// IsMPRISEnabled reports whether the backend is exported on the session bus
	IsMPRISEnabled() bool

	// GetMPRISName returns the bus name suffix used for the MPRIS export
	GetMPRISName() string
}
