package gstgl

import (
	"time"

	"github.com/genricoloni/gtplayer/internal/domain"
	"go.uber.org/zap"
)

// onBusMessage runs on a pipeline thread; state is only touched on the loop
func (b *Backend) onBusMessage(msg domain.Message) bool {
	b.loop.Invoke(func() { b.handleMessage(msg) })
	return true
}

// handleMessage is the bus state machine
func (b *Backend) handleMessage(msg domain.Message) {
	if b.closed {
		return
	}

	switch msg.Kind {
	case domain.MessageBuffering:
		b.handleBuffering(msg.Percent)

	case domain.MessageStateChanged:
		if msg.Source != b.pipelineName || msg.OldState == msg.NewState {
			return
		}
		b.handleStateChanged(msg.NewState)

	case domain.MessageDurationChanged:
		b.handleDurationChanged()

	case domain.MessageWarning:
		b.logger.Warn("Warning received from pipeline",
			zap.String("source", msg.Source),
			zap.Error(msg.Err),
			zap.String("debug", msg.Debug))

	case domain.MessageError:
		b.logger.Error("Error received from pipeline",
			zap.String("source", msg.Source),
			zap.Error(msg.Err),
			zap.String("debug", msg.Debug))
		b.lastErr = msg.Err
		b.setState(domain.StateError)

	case domain.MessageEOS:
		b.logger.Debug("End of stream")
	}
}

func (b *Backend) handleBuffering(percent int) {
	if percent < 100 {
		b.requestState(domain.PipelinePaused)
	} else {
		b.requestState(domain.PipelinePlaying)
	}

	b.bufferFill = float64(min(max(percent, 0), 100)) / 100
	b.state = domain.StateBuffering
	b.notifier.Notify(domain.PropState, domain.PropBufferFill)
}

func (b *Backend) handleStateChanged(newState domain.PipelineState) {
	b.reconfigurePositionTick(newState > domain.PipelinePaused)

	switch newState {
	case domain.PipelinePaused:
		b.state = domain.StatePaused
	case domain.PipelineReady, domain.PipelineNull:
		b.state = domain.StateStopped
	case domain.PipelinePlaying:
		b.state = domain.StatePlaying
	}

	b.logger.Debug("Pipeline state changed",
		zap.Stringer("pipeline", newState),
		zap.Stringer("state", b.state))
	b.notifier.Notify(domain.PropState)
}

func (b *Backend) handleDurationChanged() {
	duration, ok := b.pipeline.QueryDuration()
	b.seekable = ok
	if ok {
		b.duration = int64(max(duration, 0) / time.Second)
	} else {
		b.duration = 0
	}
	b.notifier.Notify(domain.PropDuration, domain.PropSeekable)
}
