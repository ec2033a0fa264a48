//go:build gst
// +build gst

package gst

import (
	"fmt"
	"time"

	"github.com/genricoloni/gtplayer/internal/domain"
	"github.com/go-gst/go-glib/glib"
	gstreamer "github.com/go-gst/go-gst/gst"
	"go.uber.org/zap"
)

// mainLoop dispatches bus watches; it is owned by the framework guard
var mainLoop *glib.MainLoop

func startFramework() error {
	gstreamer.Init(nil)
	mainLoop = glib.NewMainLoop(glib.MainContextDefault(), false)
	go mainLoop.Run()
	return nil
}

func stopFramework() {
	if mainLoop != nil {
		mainLoop.Quit()
		mainLoop = nil
	}
	gstreamer.Deinit()
}

// ElementFactory creates GStreamer elements by factory name
type ElementFactory struct {
	logger *zap.Logger
}

// NewElementFactory creates a factory. Init must have been called before any element is created.
func NewElementFactory(logger *zap.Logger) *ElementFactory {
	return &ElementFactory{logger: logger.Named("gst")}
}

// NewPipeline creates a playbin-like top-level element
func (f *ElementFactory) NewPipeline(kind, name string) (domain.Pipeline, error) {
	elem, err := newElement(kind, name)
	if err != nil {
		return nil, err
	}
	return &pipeline{
		element: element{elem: elem},
		logger:  f.logger.With(zap.String("pipeline", elem.GetName())),
	}, nil
}

// NewElement creates a single element with a generated name
func (f *ElementFactory) NewElement(kind string) (domain.Element, error) {
	elem, err := newElement(kind, "")
	if err != nil {
		return nil, err
	}
	return &element{elem: elem}, nil
}

// NewBin creates an empty bin
func (f *ElementFactory) NewBin(name string) (domain.Bin, error) {
	b := gstreamer.NewBin(name)
	if b == nil {
		return nil, fmt.Errorf("failed to create bin %q", name)
	}
	return &bin{element: element{elem: b.Element}, bin: b}, nil
}

func newElement(kind, name string) (*gstreamer.Element, error) {
	var (
		elem *gstreamer.Element
		err  error
	)
	if name == "" {
		elem, err = gstreamer.NewElement(kind)
	} else {
		elem, err = gstreamer.NewElementWithName(kind, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create %s element: %w", kind, err)
	}
	return elem, nil
}

type gstElement interface {
	gstElement() *gstreamer.Element
}

func unwrap(e domain.Element) (*gstreamer.Element, error) {
	w, ok := e.(gstElement)
	if !ok {
		return nil, fmt.Errorf("element %s was not created by this factory", e.Name())
	}
	return w.gstElement(), nil
}

type element struct {
	elem *gstreamer.Element
}

func (e *element) gstElement() *gstreamer.Element { return e.elem }

func (e *element) Name() string { return e.elem.GetName() }

// Property reads name; object values are wrapped as widgets
func (e *element) Property(name string) (any, error) {
	value, err := e.elem.GetProperty(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s.%s: %w", e.Name(), name, err)
	}
	if obj, ok := value.(*glib.Object); ok {
		return &Widget{obj: obj}, nil
	}
	return value, nil
}

type bin struct {
	element
	bin *gstreamer.Bin
}

func (b *bin) Add(elems ...domain.Element) error {
	raw, err := unwrapAll(elems)
	if err != nil {
		return err
	}
	return b.bin.AddMany(raw...)
}

func (b *bin) Link(elems ...domain.Element) error {
	raw, err := unwrapAll(elems)
	if err != nil {
		return err
	}
	return gstreamer.ElementLinkMany(raw...)
}

func (b *bin) AddGhostPad(name string, target domain.Element, targetPad string) error {
	t, err := unwrap(target)
	if err != nil {
		return err
	}

	pad := t.GetStaticPad(targetPad)
	if pad == nil {
		return fmt.Errorf("%s has no pad %q", target.Name(), targetPad)
	}

	ghost := gstreamer.NewGhostPad(name, pad)
	if ghost == nil {
		return fmt.Errorf("failed to create ghost pad %q", name)
	}
	if !ghost.SetActive(true) {
		return fmt.Errorf("failed to activate ghost pad %q", name)
	}
	if !b.bin.AddPad(ghost.Pad) {
		return fmt.Errorf("failed to add ghost pad %q to %s", name, b.Name())
	}
	return nil
}

func unwrapAll(elems []domain.Element) ([]*gstreamer.Element, error) {
	raw := make([]*gstreamer.Element, 0, len(elems))
	for _, e := range elems {
		g, err := unwrap(e)
		if err != nil {
			return nil, err
		}
		raw = append(raw, g)
	}
	return raw, nil
}

// Widget is the GTK widget exposed by a GL video sink
type Widget struct {
	obj *glib.Object
}

// Object returns the underlying GObject, or nil once released
func (w *Widget) Object() *glib.Object { return w.obj }

// Unref drops this reference; the binding releases the GObject once unreachable
func (w *Widget) Unref() { w.obj = nil }

type pipeline struct {
	element
	logger *zap.Logger
}

func (p *pipeline) SetState(state domain.PipelineState) error {
	if err := p.elem.SetState(toGstState(state)); err != nil {
		return fmt.Errorf("failed to set state %s: %w", state, err)
	}
	return nil
}

func (p *pipeline) CurrentState() domain.PipelineState {
	return fromGstState(p.elem.GetCurrentState())
}

func (p *pipeline) QueryPosition() (time.Duration, bool) {
	ok, ns := p.elem.QueryPosition(gstreamer.FormatTime)
	if !ok || ns < 0 {
		return 0, false
	}
	return time.Duration(ns), true
}

func (p *pipeline) QueryDuration() (time.Duration, bool) {
	ok, ns := p.elem.QueryDuration(gstreamer.FormatTime)
	if !ok || ns < 0 {
		return 0, false
	}
	return time.Duration(ns), true
}

func (p *pipeline) SeekSimple(position time.Duration, flags domain.SeekFlags) bool {
	return p.elem.SeekSimple(int64(position), gstreamer.FormatTime, toGstSeekFlags(flags))
}

func (p *pipeline) SetURI(uri string) error {
	return p.elem.SetProperty("uri", uri)
}

func (p *pipeline) SetVideoSink(sink domain.Element) error {
	s, err := unwrap(sink)
	if err != nil {
		return err
	}
	return p.elem.SetProperty("video-sink", s)
}

func (p *pipeline) Volume() float64 {
	value, err := p.elem.GetProperty("volume")
	if err != nil {
		p.logger.Debug("Failed to read volume", zap.Error(err))
		return 0
	}
	v, _ := value.(float64)
	return v
}

func (p *pipeline) SetVolume(volume float64) error {
	return p.elem.SetProperty("volume", volume)
}

func (p *pipeline) OnVolumeChanged(fn func(volume float64)) func() {
	handle, err := p.elem.Connect("notify::volume", func() {
		fn(p.Volume())
	})
	if err != nil {
		p.logger.Warn("Failed to watch volume", zap.Error(err))
		return func() {}
	}
	return func() { p.elem.HandlerDisconnect(handle) }
}

func (p *pipeline) AddWatch(fn func(msg domain.Message) bool) func() {
	bus := p.elem.GetBus()
	if bus == nil || !bus.AddWatch(func(msg *gstreamer.Message) bool {
		return fn(translate(msg))
	}) {
		p.logger.Warn("Failed to add bus watch")
		return func() {}
	}
	return func() { bus.RemoveWatch() }
}

// Release drops the owning reference; the binding unrefs once unreachable
func (p *pipeline) Release() {
	p.elem = nil
}

func translate(msg *gstreamer.Message) domain.Message {
	out := domain.Message{Source: msg.Source()}

	switch msg.Type() {
	case gstreamer.MessageBuffering:
		out.Kind = domain.MessageBuffering
		out.Percent = msg.ParseBuffering()
	case gstreamer.MessageStateChanged:
		out.Kind = domain.MessageStateChanged
		old, current := msg.ParseStateChanged()
		out.OldState = fromGstState(old)
		out.NewState = fromGstState(current)
	case gstreamer.MessageDurationChanged:
		out.Kind = domain.MessageDurationChanged
	case gstreamer.MessageWarning:
		out.Kind = domain.MessageWarning
		if gerr := msg.ParseWarning(); gerr != nil {
			out.Err = gerr
			out.Debug = gerr.DebugString()
		}
	case gstreamer.MessageError:
		out.Kind = domain.MessageError
		if gerr := msg.ParseError(); gerr != nil {
			out.Err = gerr
			out.Debug = gerr.DebugString()
		}
	case gstreamer.MessageEOS:
		out.Kind = domain.MessageEOS
	}

	return out
}

func toGstState(s domain.PipelineState) gstreamer.State {
	switch s {
	case domain.PipelineNull:
		return gstreamer.StateNull
	case domain.PipelineReady:
		return gstreamer.StateReady
	case domain.PipelinePaused:
		return gstreamer.StatePaused
	case domain.PipelinePlaying:
		return gstreamer.StatePlaying
	default:
		return gstreamer.VoidPending
	}
}

func fromGstState(s gstreamer.State) domain.PipelineState {
	switch s {
	case gstreamer.StateNull:
		return domain.PipelineNull
	case gstreamer.StateReady:
		return domain.PipelineReady
	case gstreamer.StatePaused:
		return domain.PipelinePaused
	case gstreamer.StatePlaying:
		return domain.PipelinePlaying
	default:
		return domain.PipelineVoidPending
	}
}

func toGstSeekFlags(flags domain.SeekFlags) gstreamer.SeekFlags {
	out := gstreamer.SeekFlagNone
	if flags&domain.SeekFlagFlush != 0 {
		out |= gstreamer.SeekFlagFlush
	}
	if flags&domain.SeekFlagKeyUnit != 0 {
		out |= gstreamer.SeekFlagKeyUnit
	}
	return out
}
