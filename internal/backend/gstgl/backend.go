// Package gstgl implements the "gstreamer-opengl" player backend: a playbin
// whose video output is an OpenGL sink chain rendering into a GTK widget.
package gstgl

import (
	"errors"
	"fmt"
	"time"

	"github.com/genricoloni/gtplayer/internal/domain"
	"github.com/genricoloni/gtplayer/internal/observe"
	"github.com/genricoloni/gtplayer/internal/registry"
	"github.com/samber/mo"
	"go.uber.org/zap"
)

// Name is the registry name of this backend
const Name = "gstreamer-opengl"

const (
	defaultVolume       = 0.3
	defaultPollInterval = 200 * time.Millisecond

	videoBinName  = "video_bin"
	ghostPadName  = "sink"
	uploadPadName = "sink"
	widgetProp    = "widget"
)

var errNoWidget = errors.New("video sink does not expose a widget")

// DefaultOptions returns the options used when nothing is configured
func DefaultOptions() domain.BackendOptions {
	return domain.BackendOptions{
		Volume:       defaultVolume,
		PollInterval: defaultPollInterval,
		Elements: domain.ElementNames{
			Pipeline:  "playbin",
			VideoSink: "gtkglsink",
			Upload:    "glupload",
		},
	}
}

// RegisterTypes advertises this backend on the registry
func RegisterTypes(r *registry.Registry) {
	r.Register(Name, func(deps registry.Deps) (domain.PlayerBackend, error) {
		b, err := New(deps)
		if err != nil {
			return nil, err
		}
		return b, nil
	})
}

// Backend drives a playbin from the host loop. It is not safe for concurrent
// use; pipeline callbacks are marshalled onto the loop before touching state.
type Backend struct {
	logger   *zap.Logger
	loop     domain.Scheduler
	opts     domain.BackendOptions
	notifier *observe.Notifier

	// pipeline owns the video bin and every element inside it
	pipeline     domain.Pipeline
	pipelineName string
	widget       domain.Widget
	removeWatch  func()
	unbindVolume func()

	uri        mo.Option[string]
	state      domain.BackendState
	volume     float64
	bufferFill float64
	seekable   bool
	duration   int64
	position   int64
	lastErr    error

	pollSource    domain.SourceID
	syncingVolume bool
	closed        bool
}

// New builds the pipeline and returns a stopped backend
func New(deps registry.Deps) (*Backend, error) {
	opts := withDefaults(deps.Options)

	b := &Backend{
		logger:   deps.Logger.Named("gstgl"),
		loop:     deps.Loop,
		opts:     opts,
		notifier: observe.NewNotifier(),
		uri:      mo.None[string](),
		state:    domain.StateStopped,
		volume:   clampVolume(opts.Volume),
	}

	b.logger.Info("Initializing player backend",
		zap.String("pipeline", opts.Elements.Pipeline),
		zap.String("videoSink", opts.Elements.VideoSink),
		zap.String("upload", opts.Elements.Upload))

	if err := b.build(deps.Elements); err != nil {
		return nil, err
	}
	return b, nil
}

func withDefaults(opts domain.BackendOptions) domain.BackendOptions {
	def := DefaultOptions()
	if opts.PollInterval <= 0 {
		opts.PollInterval = def.PollInterval
	}
	if opts.Elements.Pipeline == "" {
		opts.Elements.Pipeline = def.Elements.Pipeline
	}
	if opts.Elements.VideoSink == "" {
		opts.Elements.VideoSink = def.Elements.VideoSink
	}
	if opts.Elements.Upload == "" {
		opts.Elements.Upload = def.Elements.Upload
	}
	return opts
}

// build creates the playbin, installs the GL video bin and hooks the bus
func (b *Backend) build(elements domain.ElementFactory) error {
	pipeline, err := elements.NewPipeline(b.opts.Elements.Pipeline, "")
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", b.opts.Elements.Pipeline, err)
	}

	widget, err := b.buildVideoOutput(elements, pipeline)
	if err != nil {
		pipeline.Release()
		return err
	}

	b.pipeline = pipeline
	b.pipelineName = pipeline.Name()
	b.widget = widget

	b.bindVolume()
	b.removeWatch = pipeline.AddWatch(b.onBusMessage)

	return nil
}

// buildVideoOutput wires upload -> sink inside a bin exposing a ghost sink pad.
// Elements not yet parented are floating and die with their wrappers on failure.
func (b *Backend) buildVideoOutput(elements domain.ElementFactory, pipeline domain.Pipeline) (domain.Widget, error) {
	sink, err := elements.NewElement(b.opts.Elements.VideoSink)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", b.opts.Elements.VideoSink, err)
	}

	upload, err := elements.NewElement(b.opts.Elements.Upload)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", b.opts.Elements.Upload, err)
	}

	bin, err := elements.NewBin(videoBinName)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", videoBinName, err)
	}

	if err := bin.Add(upload, sink); err != nil {
		return nil, fmt.Errorf("failed to add elements to %s: %w", videoBinName, err)
	}
	if err := bin.Link(upload, sink); err != nil {
		return nil, fmt.Errorf("failed to link %s to %s: %w", upload.Name(), sink.Name(), err)
	}
	if err := bin.AddGhostPad(ghostPadName, upload, uploadPadName); err != nil {
		return nil, fmt.Errorf("failed to expose ghost pad: %w", err)
	}

	value, err := sink.Property(widgetProp)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s widget: %w", b.opts.Elements.VideoSink, err)
	}
	widget, ok := value.(domain.Widget)
	if !ok || widget == nil {
		return nil, fmt.Errorf("%s: %w", b.opts.Elements.VideoSink, errNoWidget)
	}

	if err := pipeline.SetVideoSink(bin); err != nil {
		widget.Unref()
		return nil, fmt.Errorf("failed to install video sink: %w", err)
	}

	return widget, nil
}

// Widget returns the display surface; it is the same value for the backend's lifetime
func (b *Backend) Widget() domain.Widget {
	return b.widget
}

func (b *Backend) Volume() float64 {
	return b.volume
}

func (b *Backend) BufferFill() float64 {
	return b.bufferFill
}

// Duration returns the media duration in seconds
func (b *Backend) Duration() int64 {
	return b.duration
}

// Position returns the last polled position in seconds
func (b *Backend) Position() int64 {
	return b.position
}

func (b *Backend) Seekable() bool {
	return b.seekable
}

func (b *Backend) State() domain.BackendState {
	return b.state
}

func (b *Backend) URI() (string, bool) {
	return b.uri.Get()
}

// Err returns the last error posted by the pipeline, nil once playback restarts
func (b *Backend) Err() error {
	return b.lastErr
}

func (b *Backend) Connect(fn func(domain.Property)) domain.HandlerID {
	return b.notifier.Connect(fn)
}

func (b *Backend) Disconnect(id domain.HandlerID) {
	b.notifier.Disconnect(id)
}

// Close stops the pipeline and releases it. The backend is unusable afterwards.
func (b *Backend) Close() error {
	if b.closed {
		return nil
	}
	b.logger.Info("Finalizing player backend")

	b.reconfigurePositionTick(false)
	err := b.pipeline.SetState(domain.PipelineNull)
	if err != nil {
		err = fmt.Errorf("failed to stop pipeline: %w", err)
	}

	b.closed = true
	if b.removeWatch != nil {
		b.removeWatch()
	}
	if b.unbindVolume != nil {
		b.unbindVolume()
	}

	b.pipeline.Release()
	b.widget.Unref()
	b.uri = mo.None[string]()

	return err
}

func (b *Backend) setState(state domain.BackendState) {
	b.state = state
	b.notifier.Notify(domain.PropState)
}
