package observe

import (
	"testing"

	"github.com/genricoloni/gtplayer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifierDispatchOrder(t *testing.T) {
	n := NewNotifier()
	var got []string

	n.Connect(func(p domain.Property) { got = append(got, "all:"+string(p)) })
	n.ConnectProperty(domain.PropState, func() { got = append(got, "state") })

	n.Notify(domain.PropState, domain.PropBufferFill)

	assert.Equal(t, []string{"all:state", "state", "all:buffer-fill"}, got)
}

func TestNotifierDisconnect(t *testing.T) {
	n := NewNotifier()
	calls := 0

	id := n.Connect(func(domain.Property) { calls++ })
	require.Equal(t, 1, n.Len())

	n.Disconnect(id)
	n.Disconnect(id) // unknown ids are ignored
	n.Notify(domain.PropVolume)

	assert.Equal(t, 0, calls)
	assert.Equal(t, 0, n.Len())
}

func TestNotifierDisconnectDuringDispatch(t *testing.T) {
	n := NewNotifier()
	var second domain.HandlerID
	secondCalled := false

	n.Connect(func(domain.Property) { n.Disconnect(second) })
	second = n.Connect(func(domain.Property) { secondCalled = true })

	n.Notify(domain.PropPosition)

	assert.False(t, secondCalled, "handler removed mid-dispatch must not run")
	assert.Equal(t, 1, n.Len())
}
