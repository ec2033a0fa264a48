// Package glenv picks the GL window system and platform for the video sink
// before the pipeline framework is initialized.
package glenv

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Session is the display server the process runs under
type Session string

const (
	SessionUnknown Session = ""
	SessionWayland Session = "wayland"
	SessionX11     Session = "x11"
)

// Vendor identifies the GPU driving the display
type Vendor string

const (
	VendorUnknown Vendor = "unknown"
	VendorAMD     Vendor = "amd"
	VendorIntel   Vendor = "intel"
	VendorNvidia  Vendor = "nvidia"
)

const (
	EnvWindow   = "GST_GL_WINDOW"
	EnvPlatform = "GST_GL_PLATFORM"
	EnvAPI      = "GST_GL_API"

	// APIAuto leaves the GL API choice to the framework
	APIAuto = "auto"

	vendorGlob = "/sys/class/drm/card*/device/vendor"
)

// PCI vendor ids found in sysfs
var vendorIDs = map[string]Vendor{
	"0x1002": VendorAMD,
	"0x8086": VendorIntel,
	"0x10de": VendorNvidia,
}

// Detector inspects the session and GPU and exports GL variables
type Detector struct {
	logger *zap.Logger
	fs     afero.Fs
	lookup func(key string) (string, bool)
	setenv func(key, value string) error
}

// NewDetector creates a detector reading sysfs through fs and the process environment
func NewDetector(logger *zap.Logger, fs afero.Fs) *Detector {
	return &Detector{
		logger: logger.Named("glenv"),
		fs:     fs,
		lookup: os.LookupEnv,
		setenv: os.Setenv,
	}
}

// Session reports the display server from the environment
func (d *Detector) Session() Session {
	wayland, _ := d.lookup("WAYLAND_DISPLAY")
	sessionType, _ := d.lookup("XDG_SESSION_TYPE")
	display, _ := d.lookup("DISPLAY")

	switch {
	case wayland != "" || strings.EqualFold(sessionType, "wayland"):
		return SessionWayland
	case strings.EqualFold(sessionType, "x11") || display != "":
		return SessionX11
	default:
		return SessionUnknown
	}
}

// Vendor reports the first recognized GPU vendor among the DRM cards
func (d *Detector) Vendor() Vendor {
	paths, err := afero.Glob(d.fs, vendorGlob)
	if err != nil {
		d.logger.Debug("Failed to list DRM cards", zap.Error(err))
		return VendorUnknown
	}
	sort.Strings(paths)

	for _, path := range paths {
		data, err := afero.ReadFile(d.fs, path)
		if err != nil {
			d.logger.Debug("Failed to read GPU vendor", zap.String("path", path), zap.Error(err))
			continue
		}
		if v, ok := vendorIDs[strings.ToLower(strings.TrimSpace(string(data)))]; ok {
			return v
		}
	}

	return VendorUnknown
}

// Plan returns the variables to export for the detected session and vendor.
// api is the configured GL API; APIAuto or "" leaves GST_GL_API unset.
func (d *Detector) Plan(api string) map[string]string {
	plan := make(map[string]string)

	session := d.Session()
	vendor := d.Vendor()
	d.logger.Debug("Detected graphics environment",
		zap.String("session", string(session)),
		zap.String("vendor", string(vendor)))

	if session != SessionUnknown {
		plan[EnvWindow] = string(session)
		if vendor == VendorNvidia && session == SessionX11 {
			plan[EnvPlatform] = "glx"
		} else {
			plan[EnvPlatform] = "egl"
		}
	}

	if api != "" && !strings.EqualFold(api, APIAuto) {
		plan[EnvAPI] = api
	}

	return plan
}

// Apply exports the planned variables that the user has not already set and
// returns the ones it applied
func (d *Detector) Apply(api string) (map[string]string, error) {
	applied := make(map[string]string)

	for key, value := range d.Plan(api) {
		if existing, ok := d.lookup(key); ok {
			d.logger.Debug("Keeping user GL setting",
				zap.String("key", key),
				zap.String("value", existing))
			continue
		}
		if err := d.setenv(key, value); err != nil {
			return applied, fmt.Errorf("failed to set %s: %w", key, err)
		}
		applied[key] = value
	}

	if len(applied) > 0 {
		d.logger.Info("GL environment configured", zap.Any("env", applied))
	}
	return applied, nil
}
