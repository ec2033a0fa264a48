package gstgl

import (
	"fmt"
	"time"

	"github.com/genricoloni/gtplayer/internal/domain"
)

// fakeLoop runs invocations inline and fires timeouts on demand
type fakeLoop struct {
	next    domain.SourceID
	sources map[domain.SourceID]func() bool
	added   int
}

func newFakeLoop() *fakeLoop {
	return &fakeLoop{sources: make(map[domain.SourceID]func() bool)}
}

func (l *fakeLoop) Invoke(fn func()) { fn() }

func (l *fakeLoop) AddTimeout(_ time.Duration, fn func() bool) domain.SourceID {
	l.next++
	l.added++
	l.sources[l.next] = fn
	return l.next
}

func (l *fakeLoop) RemoveSource(id domain.SourceID) bool {
	_, ok := l.sources[id]
	delete(l.sources, id)
	return ok
}

// tickAll fires every active source once and returns how many ran
func (l *fakeLoop) tickAll() int {
	ran := 0
	for id, fn := range l.sources {
		ran++
		if !fn() {
			delete(l.sources, id)
		}
	}
	return ran
}

type fakeWidget struct {
	unrefs int
}

func (w *fakeWidget) Unref() { w.unrefs++ }

type fakeElement struct {
	name  string
	props map[string]any
}

func (e *fakeElement) Name() string { return e.name }

func (e *fakeElement) Property(name string) (any, error) {
	v, ok := e.props[name]
	if !ok {
		return nil, fmt.Errorf("no property %q", name)
	}
	return v, nil
}

type fakeBin struct {
	fakeElement
	children []domain.Element
	links    []string
	ghost    string
}

func (b *fakeBin) Add(elems ...domain.Element) error {
	b.children = append(b.children, elems...)
	return nil
}

func (b *fakeBin) Link(elems ...domain.Element) error {
	for i := 1; i < len(elems); i++ {
		b.links = append(b.links, elems[i-1].Name()+"->"+elems[i].Name())
	}
	return nil
}

func (b *fakeBin) AddGhostPad(name string, target domain.Element, targetPad string) error {
	b.ghost = fmt.Sprintf("%s=%s.%s", name, target.Name(), targetPad)
	return nil
}

// fakePipeline records every request in calls and behaves like a playbin
// whose volume property notifies on change
type fakePipeline struct {
	name      string
	calls     []string
	current   domain.PipelineState
	position  time.Duration
	posOK     bool
	duration  time.Duration
	durOK     bool
	volume    float64
	volumeFns []func(float64)
	watch     func(domain.Message) bool
	videoSink domain.Element
	uri       string
	released  bool
	stateErr  error
}

func newFakePipeline() *fakePipeline {
	return &fakePipeline{name: "playbin0", current: domain.PipelineNull, posOK: true}
}

func (p *fakePipeline) Name() string { return p.name }

func (p *fakePipeline) Property(name string) (any, error) {
	return nil, fmt.Errorf("no property %q", name)
}

func (p *fakePipeline) SetState(state domain.PipelineState) error {
	p.calls = append(p.calls, "state:"+state.String())
	return p.stateErr
}

func (p *fakePipeline) CurrentState() domain.PipelineState { return p.current }

func (p *fakePipeline) QueryPosition() (time.Duration, bool) { return p.position, p.posOK }

func (p *fakePipeline) QueryDuration() (time.Duration, bool) { return p.duration, p.durOK }

func (p *fakePipeline) SeekSimple(position time.Duration, flags domain.SeekFlags) bool {
	p.calls = append(p.calls, fmt.Sprintf("seek:%s:%d", position, flags))
	return true
}

func (p *fakePipeline) SetURI(uri string) error {
	p.calls = append(p.calls, "uri:"+uri)
	p.uri = uri
	return nil
}

func (p *fakePipeline) SetVideoSink(sink domain.Element) error {
	p.videoSink = sink
	return nil
}

func (p *fakePipeline) Volume() float64 { return p.volume }

func (p *fakePipeline) SetVolume(volume float64) error {
	p.calls = append(p.calls, fmt.Sprintf("volume:%.2f", volume))
	p.changeVolume(volume)
	return nil
}

// changeVolume mimics a change made by the pipeline itself (e.g. a mixer)
func (p *fakePipeline) changeVolume(volume float64) {
	if p.volume == volume {
		return
	}
	p.volume = volume
	for _, fn := range p.volumeFns {
		fn(volume)
	}
}

func (p *fakePipeline) OnVolumeChanged(fn func(float64)) func() {
	p.volumeFns = append(p.volumeFns, fn)
	return func() { p.volumeFns = nil }
}

func (p *fakePipeline) AddWatch(fn func(domain.Message) bool) func() {
	p.watch = fn
	return func() {
		p.calls = append(p.calls, "unwatch")
		p.watch = nil
	}
}

func (p *fakePipeline) Release() {
	p.calls = append(p.calls, "release")
	p.released = true
}

func (p *fakePipeline) post(msg domain.Message) {
	if p.watch != nil {
		p.watch(msg)
	}
}

func (p *fakePipeline) resetCalls() { p.calls = nil }

type fakeFactory struct {
	pipeline *fakePipeline
	widget   *fakeWidget
	sink     *fakeElement
	upload   *fakeElement
	bin      *fakeBin
	kinds    []string
}

func newFakeFactory() *fakeFactory {
	w := &fakeWidget{}
	return &fakeFactory{
		pipeline: newFakePipeline(),
		widget:   w,
		sink:     &fakeElement{name: "gtkglsink0", props: map[string]any{"widget": w}},
		upload:   &fakeElement{name: "glupload0"},
		bin:      &fakeBin{fakeElement: fakeElement{name: "video_bin"}},
	}
}

func (f *fakeFactory) NewPipeline(kind, _ string) (domain.Pipeline, error) {
	f.kinds = append(f.kinds, kind)
	return f.pipeline, nil
}

func (f *fakeFactory) NewElement(kind string) (domain.Element, error) {
	f.kinds = append(f.kinds, kind)
	switch kind {
	case "gtkglsink":
		return f.sink, nil
	case "glupload":
		return f.upload, nil
	}
	return nil, fmt.Errorf("no such element %q", kind)
}

func (f *fakeFactory) NewBin(name string) (domain.Bin, error) {
	f.kinds = append(f.kinds, "bin:"+name)
	return f.bin, nil
}

// recorder collects property notifications in order
type recorder struct {
	props []domain.Property
}

func (r *recorder) record(p domain.Property) { r.props = append(r.props, p) }

func (r *recorder) count(p domain.Property) int {
	n := 0
	for _, got := range r.props {
		if got == p {
			n++
		}
	}
	return n
}
