package main

import (
	"context"
	"fmt"

	"github.com/genricoloni/gtplayer/internal/backend/gstgl"
	"github.com/genricoloni/gtplayer/internal/config"
	"github.com/genricoloni/gtplayer/internal/domain"
	"github.com/genricoloni/gtplayer/internal/glenv"
	"github.com/genricoloni/gtplayer/internal/gst"
	"github.com/genricoloni/gtplayer/internal/mainloop"
	"github.com/genricoloni/gtplayer/internal/mpris"
	"github.com/genricoloni/gtplayer/internal/registry"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// PlayRequest is what the play command asks the application to do
type PlayRequest struct {
	URI string
}

// Framework marks the GStreamer runtime as initialized
type Framework struct{}

// AppOptions is the application graph. The caller supplies a loaded
// *viper.Viper and a PlayRequest.
var AppOptions = fx.Options(
	fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
		return &fxevent.ZapLogger{Logger: log}
	}),

	fx.Provide(
		newLogger,
		fx.Annotate(config.NewAppConfig, fx.As(new(domain.Config))),
		newLoop,
		fx.Annotate(gst.NewElementFactory, fx.As(new(domain.ElementFactory))),
		newRegistry,
		newDetector,
		newFramework,
		newBackend,
	),

	fx.Invoke(registerMPRIS, registerPlayback),
)

// newLogger creates the zap logger configured by log.level and log.development
func newLogger(v *viper.Viper) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(v.GetString(config.KeyLogLevel))
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	cfg := zap.NewProductionConfig()
	if v.GetBool(config.KeyLogDevelopment) {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger, nil
}

// newLoop runs the host loop for the lifetime of the application
func newLoop(lc fx.Lifecycle, logger *zap.Logger) (*mainloop.Loop, domain.Scheduler) {
	loop := mainloop.NewLoop(logger.Named("loop"))

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := loop.Run(context.Background()); err != nil {
					logger.Warn("Main loop exited", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			loop.Quit()
			return nil
		},
	})

	return loop, loop
}

func newRegistry(logger *zap.Logger) *registry.Registry {
	r := registry.NewRegistry(logger)
	gstgl.RegisterTypes(r)
	return r
}

func newDetector(logger *zap.Logger) *glenv.Detector {
	return glenv.NewDetector(logger, afero.NewOsFs())
}

// newFramework exports the GL environment and initializes GStreamer. Elements
// can only be created once this has run.
func newFramework(lc fx.Lifecycle, logger *zap.Logger, cfg domain.Config, detector *glenv.Detector) (*Framework, error) {
	if _, err := detector.Apply(cfg.GetGLAPI()); err != nil {
		return nil, err
	}
	if err := gst.Init(logger); err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			gst.Deinit(logger)
			return nil
		},
	})

	return &Framework{}, nil
}

// BackendParams groups the inputs of the configured backend
type BackendParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Logger    *zap.Logger
	Config    domain.Config
	Framework *Framework
	Registry  *registry.Registry
	Loop      *mainloop.Loop
	Scheduler domain.Scheduler
	Elements  domain.ElementFactory
}

// newBackend instantiates the configured backend. The loop is not running yet,
// so construction happens on this goroutine; teardown is marshalled onto the loop.
func newBackend(p BackendParams) (domain.PlayerBackend, error) {
	name := p.Config.GetBackend()
	backend, err := p.Registry.New(name, registry.Deps{
		Logger:   p.Logger,
		Loop:     p.Scheduler,
		Elements: p.Elements,
		Options:  p.Config.GetBackendOptions(),
	})
	if err != nil {
		return nil, err
	}

	p.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			var closeErr error
			if err := p.Loop.InvokeSync(ctx, func() { closeErr = backend.Close() }); err != nil {
				return fmt.Errorf("failed to close backend %s: %w", name, err)
			}
			return closeErr
		},
	})

	p.Logger.Info("Player backend ready", zap.String("backend", name))
	return backend, nil
}

func registerMPRIS(lc fx.Lifecycle, logger *zap.Logger, cfg domain.Config, loop *mainloop.Loop, backend domain.PlayerBackend) {
	if !cfg.IsMPRISEnabled() {
		logger.Info("MPRIS export disabled")
		return
	}

	server := mpris.NewServer(logger, loop, backend, cfg.GetMPRISName())
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// The player keeps working without a session bus
			if err := server.Start(ctx); err != nil {
				logger.Warn("MPRIS export unavailable", zap.Error(err))
			}
			return nil
		},
		OnStop: server.Stop,
	})
}

// registerPlayback loads the requested uri once the loop is running
func registerPlayback(lc fx.Lifecycle, logger *zap.Logger, loop *mainloop.Loop, backend domain.PlayerBackend, req PlayRequest) {
	var handler domain.HandlerID

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return loop.InvokeSync(ctx, func() {
				handler = backend.Connect(func(p domain.Property) {
					if p != domain.PropState {
						return
					}
					fields := []zap.Field{zap.Stringer("state", backend.State())}
					if err := backend.Err(); err != nil && backend.State() == domain.StateError {
						fields = append(fields, zap.Error(err))
					}
					logger.Info("Playback state changed", fields...)
				})

				if req.URI == "" {
					return
				}
				backend.SetURI(req.URI)
				backend.Play()
				logger.Info("Playback requested", zap.String("uri", req.URI))
			})
		},
		OnStop: func(ctx context.Context) error {
			return loop.InvokeSync(ctx, func() { backend.Disconnect(handler) })
		},
	})
}
