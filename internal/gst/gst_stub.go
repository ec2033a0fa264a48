//go:build !gst
// +build !gst

package gst

import (
	"github.com/genricoloni/gtplayer/internal/domain"
	"go.uber.org/zap"
)

func startFramework() error { return ErrUnavailable }

func stopFramework() {}

// ElementFactory stub used when the bindings are not compiled in
type ElementFactory struct {
	logger *zap.Logger
}

// NewElementFactory creates a factory whose constructors all fail
func NewElementFactory(logger *zap.Logger) *ElementFactory {
	return &ElementFactory{logger: logger}
}

// NewPipeline returns ErrUnavailable
func (f *ElementFactory) NewPipeline(kind, name string) (domain.Pipeline, error) {
	return nil, ErrUnavailable
}

// NewElement returns ErrUnavailable
func (f *ElementFactory) NewElement(kind string) (domain.Element, error) {
	return nil, ErrUnavailable
}

// NewBin returns ErrUnavailable
func (f *ElementFactory) NewBin(name string) (domain.Bin, error) {
	return nil, ErrUnavailable
}
