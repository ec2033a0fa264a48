package gstgl

import (
	"time"

	"github.com/genricoloni/gtplayer/internal/domain"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"go.uber.org/zap"
)

// Play requests the playing state. The backend reports Loading until the
// pipeline confirms the transition on the bus.
func (b *Backend) Play() {
	if b.closed {
		return
	}
	b.lastErr = nil
	b.requestState(domain.PipelinePlaying)
	b.setState(domain.StateLoading)
}

func (b *Backend) Pause() {
	if b.closed {
		return
	}
	b.requestState(domain.PipelinePaused)
}

// Stop tears the pipeline down to NULL
func (b *Backend) Stop() {
	if b.closed {
		return
	}
	b.requestState(domain.PipelineNull)
}

// SetURI replaces the media source. An empty uri clears it.
func (b *Backend) SetURI(uri string) {
	if b.closed {
		return
	}

	if uri == "" {
		b.uri = mo.None[string]()
	} else {
		b.uri = mo.Some(uri)
	}
	defer b.notifier.Notify(domain.PropURI)

	if err := b.pipeline.SetURI(uri); err != nil {
		b.logger.Warn("Failed to set pipeline uri", zap.String("uri", uri), zap.Error(err))
		return
	}
	b.logger.Debug("Source changed", zap.String("uri", uri))
}

// SetPosition pauses and issues a flushing key-unit seek. The new position is
// only reported once the poller reads it back from the pipeline.
func (b *Backend) SetPosition(seconds int64) {
	if b.closed {
		return
	}

	b.requestState(domain.PipelinePaused)

	target := time.Duration(max(seconds, 0)) * time.Second
	if !b.pipeline.SeekSimple(target, domain.SeekFlagFlush|domain.SeekFlagKeyUnit) {
		b.logger.Debug("Seek request rejected", zap.Duration("target", target))
	}
}

// SetVolume stores the volume; the binding pushes it into the pipeline
func (b *Backend) SetVolume(volume float64) {
	volume = clampVolume(volume)
	if volume == b.volume {
		return
	}
	b.volume = volume
	b.notifier.Notify(domain.PropVolume)
}

func (b *Backend) requestState(state domain.PipelineState) {
	if err := b.pipeline.SetState(state); err != nil {
		b.logger.Warn("State change request failed",
			zap.Stringer("target", state),
			zap.Error(err))
	}
}

// bindVolume keeps the backend and pipeline volumes in sync in both directions.
// The backend value wins at creation time.
func (b *Backend) bindVolume() {
	if err := b.pipeline.SetVolume(b.volume); err != nil {
		b.logger.Warn("Failed to apply initial volume", zap.Float64("volume", b.volume), zap.Error(err))
	}

	toPipeline := b.notifier.ConnectProperty(domain.PropVolume, func() {
		if b.syncingVolume || b.closed {
			return
		}
		if err := b.pipeline.SetVolume(b.volume); err != nil {
			b.logger.Warn("Failed to push volume", zap.Float64("volume", b.volume), zap.Error(err))
		}
	})

	disconnect := b.pipeline.OnVolumeChanged(func(volume float64) {
		b.loop.Invoke(func() {
			if b.closed {
				return
			}
			b.syncingVolume = true
			defer func() { b.syncingVolume = false }()
			b.SetVolume(volume)
		})
	})

	b.unbindVolume = func() {
		b.notifier.Disconnect(toPipeline)
		if disconnect != nil {
			disconnect()
		}
	}
}

func clampVolume(volume float64) float64 {
	return lo.Clamp(volume, 0, 1)
}
