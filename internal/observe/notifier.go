// Package observe implements the property-change notification contract
// shared by player backends and their hosts.
package observe

import (
	"slices"

	"github.com/genricoloni/gtplayer/internal/domain"
)

type handler struct {
	id   domain.HandlerID
	prop domain.Property // empty matches every property
	fn   func(domain.Property)
}

// Notifier dispatches property changes to connected handlers in connection order.
// It is not safe for concurrent use: connect, disconnect and notify from the host loop.
type Notifier struct {
	next     domain.HandlerID
	handlers []handler
}

// NewNotifier creates an empty notifier
func NewNotifier() *Notifier {
	return &Notifier{}
}

// Connect registers fn for every property change
func (n *Notifier) Connect(fn func(domain.Property)) domain.HandlerID {
	return n.add("", fn)
}

// ConnectProperty registers fn for changes of a single property
func (n *Notifier) ConnectProperty(prop domain.Property, fn func()) domain.HandlerID {
	return n.add(prop, func(domain.Property) { fn() })
}

func (n *Notifier) add(prop domain.Property, fn func(domain.Property)) domain.HandlerID {
	n.next++
	n.handlers = append(n.handlers, handler{id: n.next, prop: prop, fn: fn})
	return n.next
}

// Disconnect removes a handler. Unknown ids are ignored.
func (n *Notifier) Disconnect(id domain.HandlerID) {
	n.handlers = slices.DeleteFunc(n.handlers, func(h handler) bool { return h.id == id })
}

// Len returns the number of connected handlers
func (n *Notifier) Len() int {
	return len(n.handlers)
}

// Notify emits one change per property, in argument order
func (n *Notifier) Notify(props ...domain.Property) {
	for _, prop := range props {
		// Handlers may disconnect themselves or others while we dispatch
		snapshot := slices.Clone(n.handlers)
		for _, h := range snapshot {
			if h.prop != "" && h.prop != prop {
				continue
			}
			if !n.connected(h.id) {
				continue
			}
			h.fn(prop)
		}
	}
}

func (n *Notifier) connected(id domain.HandlerID) bool {
	return slices.ContainsFunc(n.handlers, func(h handler) bool { return h.id == id })
}
