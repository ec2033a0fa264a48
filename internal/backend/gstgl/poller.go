package gstgl

import (
	"time"

	"github.com/genricoloni/gtplayer/internal/domain"
)

// reconfigurePositionTick drops any running poll timer and starts a new one
// when enabled, so at most one timer exists at a time
func (b *Backend) reconfigurePositionTick(enabled bool) {
	if b.pollSource != 0 {
		b.loop.RemoveSource(b.pollSource)
		b.pollSource = 0
	}

	if enabled {
		b.pollSource = b.loop.AddTimeout(b.opts.PollInterval, b.positionTick)
	}
}

// positionTick samples the live position. The live pipeline state is checked
// rather than the cached one, which may lag behind the bus.
func (b *Backend) positionTick() bool {
	position, ok := b.pipeline.QueryPosition()
	current := b.pipeline.CurrentState()
	if !ok {
		return true
	}

	seconds := int64(max(position, 0) / time.Second)
	if seconds != b.position && current == domain.PipelinePlaying {
		b.position = seconds
		b.notifier.Notify(domain.PropPosition)
	}

	return true
}
