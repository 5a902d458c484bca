package transport

import (
	"fmt"
	"net"
	"sync"
)

// connection implements the Connection interface on top of net.Conn.
type connection struct {
	transport Transport
	c         net.Conn

	sync.Mutex
	closed bool
}

func (conn *connection) Read(p []byte) (int, error) {
	return conn.c.Read(p)
}

func (conn *connection) Write(p []byte) (int, error) {
	return conn.c.Write(p)
}

// Close releases the underlying net.Conn. Closing an already closed
// connection is a no-op.
func (conn *connection) Close() error {
	conn.Lock()
	defer conn.Unlock()
	if conn.closed {
		return nil
	}
	conn.closed = true

	return conn.c.Close()
}

func (conn *connection) LocalAddress() string {
	return fmt.Sprintf("%s://%s", conn.transport.Scheme(), conn.c.LocalAddr().String())
}

func (conn *connection) RemoteAddress() string {
	return fmt.Sprintf("%s://%s", conn.transport.Scheme(), conn.c.RemoteAddr().String())
}

// NewConnection allocates a new Connection using the supplied net.Conn
func NewConnection(transport Transport, c net.Conn) Connection {
	return &connection{
		transport: transport,
		c:         c,
	}
}
