package mpris

import (
	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/introspect"
	"github.com/godbus/dbus/v5/prop"
)

// BusConn defines the session bus operations the server needs.
// This abstraction allows us to fake D-Bus in tests.
type BusConn interface {
	// Close closes the connection
	Close() error

	// RequestName claims a well-known bus name
	RequestName(name string, flags dbus.RequestNameFlags) (dbus.RequestNameReply, error)

	// ReleaseName gives a well-known bus name back
	ReleaseName(name string) (dbus.ReleaseNameReply, error)

	// Export publishes the exported methods of v under path and iface
	Export(v any, path dbus.ObjectPath, iface string) error

	// ExportProperties publishes props on org.freedesktop.DBus.Properties
	ExportProperties(path dbus.ObjectPath, props prop.Map) (PropertySink, error)

	// Emit sends a signal from path
	Emit(path dbus.ObjectPath, name string, values ...any) error
}

// PropertySink is a published property table, satisfied by *prop.Properties
type PropertySink interface {
	// SetMust updates a property, emitting PropertiesChanged when configured to
	SetMust(iface, property string, v any)

	// Introspection describes the properties of iface
	Introspection(iface string) []introspect.Property
}

// StdBusConn is the real implementation using godbus
type StdBusConn struct {
	conn *dbus.Conn
}

// NewStdBusConn opens a private connection to the session bus
func NewStdBusConn() (*StdBusConn, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, err
	}
	return &StdBusConn{conn: conn}, nil
}

func (c *StdBusConn) Close() error {
	return c.conn.Close()
}

func (c *StdBusConn) RequestName(name string, flags dbus.RequestNameFlags) (dbus.RequestNameReply, error) {
	return c.conn.RequestName(name, flags)
}

func (c *StdBusConn) ReleaseName(name string) (dbus.ReleaseNameReply, error) {
	return c.conn.ReleaseName(name)
}

func (c *StdBusConn) Export(v any, path dbus.ObjectPath, iface string) error {
	return c.conn.Export(v, path, iface)
}

func (c *StdBusConn) ExportProperties(path dbus.ObjectPath, props prop.Map) (PropertySink, error) {
	return prop.Export(c.conn, path, props)
}

func (c *StdBusConn) Emit(path dbus.ObjectPath, name string, values ...any) error {
	return c.conn.Emit(path, name, values...)
}
