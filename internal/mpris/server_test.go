package mpris

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/genricoloni/gtplayer/internal/domain"
	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/prop"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T, backend *fakeBackend) (*Server, *fakeConn) {
	t.Helper()

	conn := newFakeConn()
	s := NewServer(zap.NewNop(), &inlineLoop{}, backend, "gtplayer")
	s.dial = func() (BusConn, error) { return conn, nil }

	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	return s, conn
}

func TestPlaybackStatus(t *testing.T) {
	tests := []struct {
		state domain.BackendState
		want  string
	}{
		{domain.StatePlaying, "Playing"},
		{domain.StatePaused, "Paused"},
		{domain.StateBuffering, "Paused"},
		{domain.StateLoading, "Paused"},
		{domain.StateStopped, "Stopped"},
		{domain.StateError, "Stopped"},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			if got := PlaybackStatus(tt.state); got != tt.want {
				t.Errorf("PlaybackStatus(%v) = %q, want %q", tt.state, got, tt.want)
			}
		})
	}
}

func TestStartExportsPlayer(t *testing.T) {
	backend := &fakeBackend{state: domain.StatePaused, volume: 0.3, position: 12, duration: 60, seekable: true, uri: "https://example.com/live.m3u8"}
	s, conn := newTestServer(t, backend)

	if conn.requested != "org.mpris.MediaPlayer2.gtplayer" || s.BusName() != conn.requested {
		t.Errorf("Requested name %q", conn.requested)
	}
	for _, iface := range []string{rootIface, playerIface, "org.freedesktop.DBus.Introspectable"} {
		if _, ok := conn.exported[iface]; !ok {
			t.Errorf("Interface %s not exported", iface)
		}
	}
	if backend.observer == nil {
		t.Fatal("Server should observe the backend")
	}

	sink := conn.sink
	if got := sink.props[rootIface]["Identity"].Value; got != "gtplayer" {
		t.Errorf("Identity = %v", got)
	}
	if got := sink.get("PlaybackStatus"); got != "Paused" {
		t.Errorf("PlaybackStatus = %v", got)
	}
	if got := sink.get("Position"); got != int64(12_000_000) {
		t.Errorf("Position = %v", got)
	}
	if got := sink.get("CanSeek"); got != true {
		t.Errorf("CanSeek = %v", got)
	}

	md, ok := sink.get("Metadata").(map[string]dbus.Variant)
	if !ok {
		t.Fatalf("Metadata has type %T", sink.get("Metadata"))
	}
	if md["xesam:url"].Value() != backend.uri {
		t.Errorf("xesam:url = %v", md["xesam:url"].Value())
	}
	if md["mpris:length"].Value() != int64(60_000_000) {
		t.Errorf("mpris:length = %v", md["mpris:length"].Value())
	}
	if md["mpris:trackid"].Value() != trackPath {
		t.Errorf("mpris:trackid = %v", md["mpris:trackid"].Value())
	}
}

func TestStartWithoutSource(t *testing.T) {
	_, conn := newTestServer(t, &fakeBackend{})

	md := conn.sink.get("Metadata").(map[string]dbus.Variant)
	if md["mpris:trackid"].Value() != noTrackPath {
		t.Errorf("Expected NoTrack id, got %v", md["mpris:trackid"].Value())
	}
	if _, ok := md["xesam:url"]; ok {
		t.Error("No url expected without a source")
	}
	if conn.sink.get("CanPlay") != false {
		t.Error("CanPlay should be false without a source")
	}
}

func TestStartNameTaken(t *testing.T) {
	conn := newFakeConn()
	conn.reply = dbus.RequestNameReplyExists
	s := NewServer(zap.NewNop(), &inlineLoop{}, &fakeBackend{}, "gtplayer")
	s.dial = func() (BusConn, error) { return conn, nil }

	if err := s.Start(context.Background()); err == nil {
		t.Fatal("Expected error when the name is taken")
	}
	if !conn.closed {
		t.Error("Connection should be closed after a failed start")
	}
	if s.running {
		t.Error("Server must not be running after a failed start")
	}
}

func TestStartDialFailure(t *testing.T) {
	boom := errors.New("no session bus")
	s := NewServer(zap.NewNop(), &inlineLoop{}, &fakeBackend{}, "gtplayer")
	s.dial = func() (BusConn, error) { return nil, boom }

	if err := s.Start(context.Background()); !errors.Is(err, boom) {
		t.Errorf("Expected dial error, got %v", err)
	}
}

func TestBackendChangesUpdateProperties(t *testing.T) {
	backend := &fakeBackend{volume: 0.3}
	_, conn := newTestServer(t, backend)

	backend.state = domain.StatePlaying
	backend.emit(domain.PropState)
	if got := conn.sink.get("PlaybackStatus"); got != "Playing" {
		t.Errorf("PlaybackStatus = %v", got)
	}

	backend.position = 42
	backend.emit(domain.PropPosition)
	if got := conn.sink.get("Position"); got != int64(42_000_000) {
		t.Errorf("Position = %v", got)
	}

	backend.seekable = true
	backend.emit(domain.PropSeekable)
	if got := conn.sink.get("CanSeek"); got != true {
		t.Errorf("CanSeek = %v", got)
	}

	backend.SetVolume(0.8)
	if got := conn.sink.get("Volume"); got != 0.8 {
		t.Errorf("Volume = %v", got)
	}

	sets := conn.sink.sets
	backend.emit(domain.PropBufferFill)
	if conn.sink.sets != sets {
		t.Error("Buffer fill has no MPRIS property")
	}
}

func TestTransportMethods(t *testing.T) {
	tests := []struct {
		name  string
		state domain.BackendState
		call  func(p *player) *dbus.Error
		want  []string
	}{
		{"Play", domain.StateStopped, (*player).Play, []string{"play"}},
		{"Pause", domain.StatePlaying, (*player).Pause, []string{"pause"}},
		{"Stop", domain.StatePlaying, (*player).Stop, []string{"stop"}},
		{"PlayPause While Playing", domain.StatePlaying, (*player).PlayPause, []string{"pause"}},
		{"PlayPause While Loading", domain.StateLoading, (*player).PlayPause, []string{"pause"}},
		{"PlayPause While Paused", domain.StatePaused, (*player).PlayPause, []string{"play"}},
		{"PlayPause After Error", domain.StateError, (*player).PlayPause, []string{"play"}},
		{"Next", domain.StatePlaying, (*player).Next, nil},
		{"Previous", domain.StatePlaying, (*player).Previous, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &fakeBackend{state: tt.state}
			_, conn := newTestServer(t, backend)
			p := conn.exported[playerIface].(*player)

			if err := tt.call(p); err != nil {
				t.Fatalf("Unexpected D-Bus error: %v", err)
			}
			if !reflect.DeepEqual(backend.calls, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, backend.calls)
			}
		})
	}
}

func TestSeek(t *testing.T) {
	tests := []struct {
		name       string
		seekable   bool
		offset     int64
		wantCalls  []string
		wantSeeked []int64
	}{
		{"Forward", true, 5_000_000, []string{"seek:15"}, []int64{15_000_000}},
		{"Backward Clamped To Start", true, -30_000_000, []string{"seek:0"}, []int64{0}},
		{"Past The End", true, 100_000_000, nil, nil},
		{"Not Seekable", false, 5_000_000, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &fakeBackend{position: 10, duration: 60, seekable: tt.seekable, uri: "file:///tmp/a.mkv"}
			_, conn := newTestServer(t, backend)
			p := conn.exported[playerIface].(*player)

			p.Seek(tt.offset)

			if !reflect.DeepEqual(backend.calls, tt.wantCalls) {
				t.Errorf("Calls: want %v, got %v", tt.wantCalls, backend.calls)
			}
			var seeked []int64
			for _, sig := range conn.signals {
				if sig.name == playerIface+".Seeked" {
					seeked = append(seeked, sig.values[0].(int64))
				}
			}
			if !reflect.DeepEqual(seeked, tt.wantSeeked) {
				t.Errorf("Seeked: want %v, got %v", tt.wantSeeked, seeked)
			}
		})
	}
}

func TestSetPosition(t *testing.T) {
	tests := []struct {
		name     string
		track    dbus.ObjectPath
		position int64
		want     []string
	}{
		{"Current Track", trackPath, 90_000_000, []string{"seek:90"}},
		{"Stale Track", noTrackPath, 90_000_000, nil},
		{"Negative", trackPath, -1, nil},
		{"Beyond Length", trackPath, 601_000_000, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &fakeBackend{duration: 600, seekable: true, uri: "file:///tmp/a.mkv"}
			_, conn := newTestServer(t, backend)
			p := conn.exported[playerIface].(*player)

			p.SetPosition(tt.track, tt.position)

			if !reflect.DeepEqual(backend.calls, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, backend.calls)
			}
		})
	}
}

func TestOpenUri(t *testing.T) {
	backend := &fakeBackend{}
	_, conn := newTestServer(t, backend)
	p := conn.exported[playerIface].(*player)

	p.OpenUri("https://example.com/stream.m3u8")

	want := []string{"uri:https://example.com/stream.m3u8", "play"}
	if !reflect.DeepEqual(backend.calls, want) {
		t.Errorf("Expected %v, got %v", want, backend.calls)
	}
	md := conn.sink.get("Metadata").(map[string]dbus.Variant)
	if md["xesam:url"].Value() != "https://example.com/stream.m3u8" {
		t.Errorf("Metadata not refreshed: %v", md)
	}
	if conn.sink.get("CanPlay") != true {
		t.Error("CanPlay should be true once a source is set")
	}
}

func TestVolumeWrite(t *testing.T) {
	backend := &fakeBackend{volume: 0.3}
	s, _ := newTestServer(t, backend)

	if err := s.onVolumeWrite(&prop.Change{Iface: playerIface, Name: "Volume", Value: 0.55}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if backend.volume != 0.55 {
		t.Errorf("Volume = %v, want 0.55", backend.volume)
	}

	if err := s.onVolumeWrite(&prop.Change{Iface: playerIface, Name: "Volume", Value: "loud"}); err == nil {
		t.Error("Expected an error for a non-double volume")
	}
}

func TestStop(t *testing.T) {
	backend := &fakeBackend{}
	s, conn := newTestServer(t, backend)

	if err := s.Stop(context.Background()); err != nil {
		t.Fatalf("Stop() failed: %v", err)
	}
	if conn.released != s.BusName() || !conn.closed {
		t.Errorf("Expected name released and connection closed, released=%q closed=%v", conn.released, conn.closed)
	}
	if backend.observer != nil {
		t.Error("Server should stop observing the backend")
	}

	// Stopping twice is a no-op
	if err := s.Stop(context.Background()); err != nil {
		t.Errorf("Second Stop() failed: %v", err)
	}
}

func TestStopWithDeadLoop(t *testing.T) {
	loop := &inlineLoop{}
	conn := newFakeConn()
	s := NewServer(zap.NewNop(), loop, &fakeBackend{}, "gtplayer")
	s.dial = func() (BusConn, error) { return conn, nil }
	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}

	loop.stopped = true
	if err := s.Stop(context.Background()); err == nil {
		t.Error("Expected an error when the loop is gone")
	}
	if !conn.closed {
		t.Error("Connection should still be closed")
	}
}

func TestSourceSetOutsideMPRIS(t *testing.T) {
	backend := &fakeBackend{}
	_, conn := newTestServer(t, backend)
	if conn.sink.get("CanPlay") != false {
		t.Fatal("CanPlay should start false without a source")
	}

	// The host loads a stream directly on the backend
	backend.SetURI("https://example.com/live.m3u8")
	backend.Play()
	backend.state = domain.StateLoading
	backend.emit(domain.PropState)

	if conn.sink.get("CanPlay") != true || conn.sink.get("CanPause") != true {
		t.Errorf("CanPlay/CanPause stale: %v/%v", conn.sink.get("CanPlay"), conn.sink.get("CanPause"))
	}
	md := conn.sink.get("Metadata").(map[string]dbus.Variant)
	if md["xesam:url"].Value() != "https://example.com/live.m3u8" {
		t.Errorf("Metadata not refreshed: %v", md)
	}
}
