package mpris

import (
	"context"
	"errors"
	"fmt"

	"github.com/genricoloni/gtplayer/internal/domain"
	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/introspect"
	"github.com/godbus/dbus/v5/prop"
)

type inlineLoop struct {
	stopped bool
}

func (l *inlineLoop) Invoke(fn func()) { fn() }

func (l *inlineLoop) InvokeSync(_ context.Context, fn func()) error {
	if l.stopped {
		return errors.New("loop stopped")
	}
	fn()
	return nil
}

type signal struct {
	name   string
	values []any
}

type fakeConn struct {
	reply     dbus.RequestNameReply
	requested string
	released  string
	closed    bool
	exported  map[string]any
	sink      *fakeSink
	signals   []signal
}

func newFakeConn() *fakeConn {
	return &fakeConn{
		reply:    dbus.RequestNameReplyPrimaryOwner,
		exported: make(map[string]any),
	}
}

func (c *fakeConn) Close() error {
	c.closed = true
	return nil
}

func (c *fakeConn) RequestName(name string, _ dbus.RequestNameFlags) (dbus.RequestNameReply, error) {
	c.requested = name
	return c.reply, nil
}

func (c *fakeConn) ReleaseName(name string) (dbus.ReleaseNameReply, error) {
	c.released = name
	return dbus.ReleaseNameReplyReleased, nil
}

func (c *fakeConn) Export(v any, _ dbus.ObjectPath, iface string) error {
	c.exported[iface] = v
	return nil
}

func (c *fakeConn) ExportProperties(_ dbus.ObjectPath, props prop.Map) (PropertySink, error) {
	c.sink = &fakeSink{props: props}
	return c.sink, nil
}

func (c *fakeConn) Emit(_ dbus.ObjectPath, name string, values ...any) error {
	c.signals = append(c.signals, signal{name: name, values: values})
	return nil
}

// fakeSink stores values in the exported table like prop.Properties does
type fakeSink struct {
	props prop.Map
	sets  int
}

func (s *fakeSink) SetMust(iface, property string, v any) {
	s.sets++
	s.props[iface][property].Value = v
}

func (s *fakeSink) Introspection(string) []introspect.Property { return nil }

func (s *fakeSink) get(property string) any {
	return s.props[playerIface][property].Value
}

// fakeBackend records transport calls and lets tests fire notifications
type fakeBackend struct {
	state    domain.BackendState
	volume   float64
	position int64
	duration int64
	seekable bool
	uri      string
	calls    []string
	observer func(domain.Property)
	nextID   domain.HandlerID
}

func (b *fakeBackend) emit(p domain.Property) {
	if b.observer != nil {
		b.observer(p)
	}
}

func (b *fakeBackend) Widget() domain.Widget { return nil }
func (b *fakeBackend) Play() { b.calls = append(b.calls, "play") }
func (b *fakeBackend) Pause() { b.calls = append(b.calls, "pause") }
func (b *fakeBackend) Stop() { b.calls = append(b.calls, "stop") }

func (b *fakeBackend) SetURI(uri string) {
	b.calls = append(b.calls, "uri:"+uri)
	b.uri = uri
	b.emit(domain.PropURI)
}

func (b *fakeBackend) SetPosition(seconds int64) {
	b.calls = append(b.calls, fmt.Sprintf("seek:%d", seconds))
}

func (b *fakeBackend) Volume() float64 { return b.volume }

func (b *fakeBackend) SetVolume(volume float64) {
	b.volume = volume
	b.emit(domain.PropVolume)
}

func (b *fakeBackend) BufferFill() float64 { return 0 }
func (b *fakeBackend) Duration() int64 { return b.duration }
func (b *fakeBackend) Position() int64 { return b.position }
func (b *fakeBackend) Seekable() bool { return b.seekable }
func (b *fakeBackend) State() domain.BackendState { return b.state }
func (b *fakeBackend) Err() error { return nil }
func (b *fakeBackend) Close() error { return nil }
func (b *fakeBackend) URI() (string, bool) { return b.uri, b.uri != "" }

func (b *fakeBackend) Connect(fn func(domain.Property)) domain.HandlerID {
	b.nextID++
	b.observer = fn
	return b.nextID
}

func (b *fakeBackend) Disconnect(domain.HandlerID) { b.observer = nil }
