package mpris

import (
	"github.com/genricoloni/gtplayer/internal/domain"
	"github.com/godbus/dbus/v5"
)

// root implements org.mpris.MediaPlayer2
type root struct {
	s *Server
}

// Raise is a no-op; CanRaise is false
func (r *root) Raise() *dbus.Error { return nil }

// Quit is a no-op; CanQuit is false
func (r *root) Quit() *dbus.Error { return nil }

// player implements org.mpris.MediaPlayer2.Player. Calls arrive on D-Bus
// goroutines and are queued onto the host loop.
type player struct {
	s *Server
}

func (p *player) Play() *dbus.Error {
	p.s.loop.Invoke(p.s.backend.Play)
	return nil
}

func (p *player) Pause() *dbus.Error {
	p.s.loop.Invoke(p.s.backend.Pause)
	return nil
}

func (p *player) PlayPause() *dbus.Error {
	p.s.loop.Invoke(func() {
		switch p.s.backend.State() {
		case domain.StatePlaying, domain.StateBuffering, domain.StateLoading:
			p.s.backend.Pause()
		default:
			p.s.backend.Play()
		}
	})
	return nil
}

func (p *player) Stop() *dbus.Error {
	p.s.loop.Invoke(p.s.backend.Stop)
	return nil
}

func (p *player) Next() *dbus.Error { return nil }

func (p *player) Previous() *dbus.Error { return nil }

// Seek moves by offset microseconds relative to the current position.
// The name and signature are fixed by the exported D-Bus method, not io.Seeker.
func (p *player) Seek(offset int64) *dbus.Error {
	p.s.loop.Invoke(func() {
		b := p.s.backend
		if !b.Seekable() {
			return
		}

		target := max(toMicros(b.Position())+offset, 0)
		if length := toMicros(b.Duration()); length > 0 && target > length {
			// Past the end behaves like Next, which this player does not support
			return
		}
		p.s.seekTo(target)
	})
	return nil
}

// SetPosition seeks to an absolute position in microseconds on the current track
func (p *player) SetPosition(track dbus.ObjectPath, position int64) *dbus.Error {
	p.s.loop.Invoke(func() {
		b := p.s.backend
		if _, ok := b.URI(); !ok || track != trackPath || !b.Seekable() {
			return
		}
		if position < 0 || (b.Duration() > 0 && position > toMicros(b.Duration())) {
			return
		}
		p.s.seekTo(position)
	})
	return nil
}

// OpenUri replaces the source and starts playback
func (p *player) OpenUri(uri string) *dbus.Error {
	p.s.loop.Invoke(func() {
		p.s.backend.SetURI(uri)
		p.s.backend.Play()
	})
	return nil
}

func (s *Server) seekTo(micros int64) {
	s.backend.SetPosition(micros / microsPerSecond)
	s.emitSeeked(micros)
}
