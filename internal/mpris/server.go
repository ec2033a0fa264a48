// Package mpris exports a player backend on the session bus using the
// org.mpris.MediaPlayer2 interfaces, so desktop media keys and applets can drive it.
package mpris

import (
	"context"
	"fmt"
	"sync"

	"github.com/genricoloni/gtplayer/internal/domain"
	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/introspect"
	"github.com/godbus/dbus/v5/prop"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	busPrefix = "org.mpris.MediaPlayer2."

	objectPath  dbus.ObjectPath = "/org/mpris/MediaPlayer2"
	rootIface                   = "org.mpris.MediaPlayer2"
	playerIface                 = "org.mpris.MediaPlayer2.Player"

	trackPath   dbus.ObjectPath = "/org/mpris/MediaPlayer2/track/0"
	noTrackPath dbus.ObjectPath = "/org/mpris/MediaPlayer2/TrackList/NoTrack"

	microsPerSecond = 1_000_000
)

var uriSchemes = []string{"file", "http", "https", "rtmp", "rtsp"}

// Invoker runs functions on the host loop
type Invoker interface {
	Invoke(fn func())
	InvokeSync(ctx context.Context, fn func()) error
}

// Server publishes one backend as an MPRIS player
type Server struct {
	logger   *zap.Logger
	loop     Invoker
	backend  domain.PlayerBackend
	identity string
	busName  string
	dial     func() (BusConn, error)

	mu      sync.Mutex
	running bool
	conn    BusConn

	// only touched on the loop while running
	props   PropertySink
	handler domain.HandlerID
}

// NewServer creates a server that will claim org.mpris.MediaPlayer2.<name>
func NewServer(logger *zap.Logger, loop Invoker, backend domain.PlayerBackend, name string) *Server {
	return &Server{
		logger:   logger.Named("mpris"),
		loop:     loop,
		backend:  backend,
		identity: name,
		busName:  busPrefix + name,
		dial: func() (BusConn, error) {
			return NewStdBusConn()
		},
	}
}

// BusName returns the well-known name the server claims
func (s *Server) BusName() string {
	return s.busName
}

// Start connects to the session bus and exports the player objects
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = true
	s.mu.Unlock()

	conn, err := s.export(ctx)
	if err != nil {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	s.conn = conn
	s.mu.Unlock()

	s.logger.Info("MPRIS player exported", zap.String("name", s.busName))
	return nil
}

func (s *Server) export(ctx context.Context) (BusConn, error) {
	conn, err := s.dial()
	if err != nil {
		return nil, fmt.Errorf("session bus connection failed: %w", err)
	}

	fail := func(err error) (BusConn, error) {
		if cerr := conn.Close(); cerr != nil {
			s.logger.Warn("Failed to close D-Bus connection", zap.Error(cerr))
		}
		return nil, err
	}

	reply, err := conn.RequestName(s.busName, dbus.NameFlagDoNotQueue)
	if err != nil {
		return fail(fmt.Errorf("failed to request %s: %w", s.busName, err))
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		return fail(fmt.Errorf("bus name %s is already taken", s.busName))
	}

	r, p := &root{s: s}, &player{s: s}
	if err := conn.Export(r, objectPath, rootIface); err != nil {
		return fail(fmt.Errorf("failed to export %s: %w", rootIface, err))
	}
	if err := conn.Export(p, objectPath, playerIface); err != nil {
		return fail(fmt.Errorf("failed to export %s: %w", playerIface, err))
	}

	var table prop.Map
	if err := s.loop.InvokeSync(ctx, func() { table = s.propertyTable() }); err != nil {
		return fail(fmt.Errorf("failed to read backend state: %w", err))
	}

	sink, err := conn.ExportProperties(objectPath, table)
	if err != nil {
		return fail(fmt.Errorf("failed to export properties: %w", err))
	}

	node := &introspect.Node{
		Name: string(objectPath),
		Interfaces: []introspect.Interface{
			introspect.IntrospectData,
			prop.IntrospectData,
			{
				Name:       rootIface,
				Methods:    introspect.Methods(r),
				Properties: sink.Introspection(rootIface),
			},
			{
				Name:       playerIface,
				Methods:    introspect.Methods(p),
				Properties: sink.Introspection(playerIface),
				Signals: []introspect.Signal{{
					Name: "Seeked",
					Args: []introspect.Arg{{Name: "Position", Type: "x"}},
				}},
			},
		},
	}
	if err := conn.Export(introspect.NewIntrospectable(node), objectPath, "org.freedesktop.DBus.Introspectable"); err != nil {
		return fail(fmt.Errorf("failed to export introspection: %w", err))
	}

	// Changes between reading the table and connecting are caught by the resync
	if err := s.loop.InvokeSync(ctx, func() {
		s.props = sink
		s.handler = s.backend.Connect(s.onBackendChanged)
		s.syncAll()
	}); err != nil {
		return fail(fmt.Errorf("failed to observe backend: %w", err))
	}

	return conn, nil
}

// Stop withdraws the player from the bus
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = false
	conn := s.conn
	s.conn = nil
	s.mu.Unlock()

	var errs error
	if err := s.loop.InvokeSync(ctx, func() {
		s.backend.Disconnect(s.handler)
		s.props = nil
	}); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("failed to disconnect from backend: %w", err))
	}

	if conn != nil {
		if _, err := conn.ReleaseName(s.busName); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("failed to release %s: %w", s.busName, err))
		}
		if err := conn.Close(); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("failed to close D-Bus connection: %w", err))
		}
	}

	s.logger.Info("MPRIS player withdrawn", zap.String("name", s.busName))
	return errs
}

// propertyTable snapshots the backend into the published property table
func (s *Server) propertyTable() prop.Map {
	b := s.backend
	_, hasURI := b.URI()

	return prop.Map{
		rootIface: {
			"Identity":            {Value: s.identity, Emit: prop.EmitConst},
			"CanQuit":             {Value: false, Emit: prop.EmitConst},
			"CanRaise":            {Value: false, Emit: prop.EmitConst},
			"HasTrackList":        {Value: false, Emit: prop.EmitConst},
			"SupportedUriSchemes": {Value: uriSchemes, Emit: prop.EmitConst},
			"SupportedMimeTypes":  {Value: []string{}, Emit: prop.EmitConst},
		},
		playerIface: {
			"PlaybackStatus": {Value: PlaybackStatus(b.State()), Emit: prop.EmitTrue},
			"Rate":           {Value: 1.0, Emit: prop.EmitConst},
			"MinimumRate":    {Value: 1.0, Emit: prop.EmitConst},
			"MaximumRate":    {Value: 1.0, Emit: prop.EmitConst},
			"Metadata":       {Value: s.metadata(), Emit: prop.EmitTrue},
			"Volume":         {Value: b.Volume(), Writable: true, Emit: prop.EmitTrue, Callback: s.onVolumeWrite},
			"Position":       {Value: toMicros(b.Position()), Emit: prop.EmitFalse},
			"CanGoNext":      {Value: false, Emit: prop.EmitConst},
			"CanGoPrevious":  {Value: false, Emit: prop.EmitConst},
			"CanPlay":        {Value: hasURI, Emit: prop.EmitTrue},
			"CanPause":       {Value: hasURI, Emit: prop.EmitTrue},
			"CanSeek":        {Value: b.Seekable(), Emit: prop.EmitTrue},
			"CanControl":     {Value: true, Emit: prop.EmitConst},
		},
	}
}

func (s *Server) onBackendChanged(p domain.Property) {
	if s.props == nil {
		return
	}

	switch p {
	case domain.PropState:
		s.props.SetMust(playerIface, "PlaybackStatus", PlaybackStatus(s.backend.State()))
	case domain.PropVolume:
		s.props.SetMust(playerIface, "Volume", s.backend.Volume())
	case domain.PropPosition:
		s.props.SetMust(playerIface, "Position", toMicros(s.backend.Position()))
	case domain.PropDuration:
		s.props.SetMust(playerIface, "Metadata", s.metadata())
	case domain.PropSeekable:
		s.props.SetMust(playerIface, "CanSeek", s.backend.Seekable())
	case domain.PropURI:
		s.syncSource()
	}
}

func (s *Server) syncAll() {
	for _, p := range []domain.Property{
		domain.PropState,
		domain.PropVolume,
		domain.PropPosition,
		domain.PropDuration,
		domain.PropSeekable,
	} {
		s.onBackendChanged(p)
	}
	s.syncSource()
}

// syncSource publishes the properties derived from the uri, which has no notification
func (s *Server) syncSource() {
	if s.props == nil {
		return
	}
	_, hasURI := s.backend.URI()
	s.props.SetMust(playerIface, "Metadata", s.metadata())
	s.props.SetMust(playerIface, "CanPlay", hasURI)
	s.props.SetMust(playerIface, "CanPause", hasURI)
}

func (s *Server) metadata() map[string]dbus.Variant {
	uri, ok := s.backend.URI()
	if !ok {
		return map[string]dbus.Variant{
			"mpris:trackid": dbus.MakeVariant(noTrackPath),
		}
	}

	md := map[string]dbus.Variant{
		"mpris:trackid": dbus.MakeVariant(trackPath),
		"xesam:url":     dbus.MakeVariant(uri),
	}
	if d := s.backend.Duration(); d > 0 {
		md["mpris:length"] = dbus.MakeVariant(toMicros(d))
	}
	return md
}

// onVolumeWrite runs on a D-Bus goroutine when a client sets Volume
func (s *Server) onVolumeWrite(c *prop.Change) *dbus.Error {
	volume, ok := c.Value.(float64)
	if !ok {
		return dbus.MakeFailedError(fmt.Errorf("volume must be a double, got %T", c.Value))
	}
	s.loop.Invoke(func() { s.backend.SetVolume(volume) })
	return nil
}

func (s *Server) emitSeeked(micros int64) {
	s.mu.Lock()
	conn := s.conn
	s.mu.Unlock()

	if conn == nil {
		return
	}
	if err := conn.Emit(objectPath, playerIface+".Seeked", micros); err != nil {
		s.logger.Debug("Failed to emit Seeked", zap.Error(err))
	}
}

// PlaybackStatus maps a backend state to the MPRIS status string
func PlaybackStatus(state domain.BackendState) string {
	switch state {
	case domain.StatePlaying:
		return "Playing"
	case domain.StatePaused, domain.StateBuffering, domain.StateLoading:
		return "Paused"
	default:
		return "Stopped"
	}
}

func toMicros(seconds int64) int64 {
	return seconds * microsPerSecond
}
