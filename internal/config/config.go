package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/genricoloni/gtplayer/internal/domain"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Configuration keys. Environment variables use the GTPLAYER_ prefix with
// dots replaced by underscores, e.g. GTPLAYER_ELEMENTS_VIDEO_SINK.
const (
	KeyBackend          = "backend"
	KeyVolume           = "volume"
	KeyPollInterval     = "poll_interval"
	KeyPipelineElement  = "elements.pipeline"
	KeyVideoSinkElement = "elements.video_sink"
	KeyUploadElement    = "elements.upload"
	KeyLogLevel         = "log.level"
	KeyLogDevelopment   = "log.development"
	KeyGLAPI            = "gl.api"
	KeyMPRISEnabled     = "mpris.enabled"
	KeyMPRISName        = "mpris.name"
)

const (
	appName    = "gtplayer"
	envPrefix  = "GTPLAYER"
	configType = "toml"

	defaultPollInterval = 200 * time.Millisecond
)

// EnvKeyReplacer maps configuration keys to environment variable names
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Default holds the factory value of every key
var Default = map[string]any{
	KeyBackend:          "gstreamer-opengl",
	KeyVolume:           0.3,
	KeyPollInterval:     defaultPollInterval,
	KeyPipelineElement:  "playbin",
	KeyVideoSinkElement: "gtkglsink",
	KeyUploadElement:    "glupload",
	KeyLogLevel:         "info",
	KeyLogDevelopment:   false,
	KeyGLAPI:            "auto",
	KeyMPRISEnabled:     true,
	KeyMPRISName:        appName,
}

// Dir returns the directory searched for gtplayer.toml
func Dir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, appName)
	}
	return "."
}

// Setup loads defaults, environment bindings and the optional config file from dir into v
func Setup(v *viper.Viper, fs afero.Fs, dir string) error {
	v.SetConfigName(appName)
	v.SetConfigType(configType)
	v.SetFs(fs)
	v.AddConfigPath(dir)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(EnvKeyReplacer)
	v.AutomaticEnv()

	v.SetTypeByDefaultValue(true)
	for key, value := range Default {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}

	return nil
}

// AppConfig holds application configuration
type AppConfig struct {
	logger    *zap.Logger
	backend   string
	options   domain.BackendOptions
	glAPI     string
	mprisOn   bool
	mprisName string
}

// NewAppConfig creates a new application configuration instance from a loaded viper
func NewAppConfig(logger *zap.Logger, v *viper.Viper) *AppConfig {
	volume := v.GetFloat64(KeyVolume)
	if clamped := lo.Clamp(volume, 0, 1); clamped != volume {
		logger.Warn("Volume out of range, clamping",
			zap.Float64("volume", volume),
			zap.Float64("clamped", clamped))
		volume = clamped
	}

	interval := v.GetDuration(KeyPollInterval)
	if interval <= 0 {
		logger.Warn("Invalid poll interval, using default",
			zap.Duration("interval", interval),
			zap.Duration("default", defaultPollInterval))
		interval = defaultPollInterval
	}

	c := &AppConfig{
		logger:  logger,
		backend: v.GetString(KeyBackend),
		options: domain.BackendOptions{
			Volume:       volume,
			PollInterval: interval,
			Elements: domain.ElementNames{
				Pipeline:  v.GetString(KeyPipelineElement),
				VideoSink: v.GetString(KeyVideoSinkElement),
				Upload:    v.GetString(KeyUploadElement),
			},
		},
		glAPI:     v.GetString(KeyGLAPI),
		mprisOn:   v.GetBool(KeyMPRISEnabled),
		mprisName: v.GetString(KeyMPRISName),
	}

	logger.Info("Configuration loaded",
		zap.String("file", v.ConfigFileUsed()),
		zap.String("backend", c.backend),
		zap.Float64("volume", c.options.Volume),
		zap.Duration("pollInterval", c.options.PollInterval),
		zap.String("videoSink", c.options.Elements.VideoSink),
		zap.String("glAPI", c.glAPI),
		zap.Bool("mpris", c.mprisOn))

	return c
}

// GetBackend returns the registry name of the backend to instantiate
func (c *AppConfig) GetBackend() string {
	return c.backend
}

// GetBackendOptions returns the tunables passed to the backend factory
func (c *AppConfig) GetBackendOptions() domain.BackendOptions {
	return c.options
}

func (c *AppConfig) GetGLAPI() string {
	return c.glAPI
}

func (c *AppConfig) IsMPRISEnabled() bool {
	return c.mprisOn
}

func (c *AppConfig) GetMPRISName() string {
	return c.mprisName
}
