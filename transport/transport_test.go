package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTran string

func (t fakeTran) Scheme() string                            { return string(t) }
func (t fakeTran) NewDialer(addr string) (Dialer, error)     { return nil, nil }
func (t fakeTran) NewListener(addr string) (Listener, error) { return nil, nil }

func TestParseScheme(t *testing.T) {
	assert.Equal(t, "tcp", ParseScheme("tcp://127.0.0.1:50007"))
	assert.Equal(t, "inproc", ParseScheme("inproc://demo"))
	assert.Equal(t, "", ParseScheme("127.0.0.1:50007"))
}

func TestStripScheme(t *testing.T) {
	tr := fakeTran("tcp")

	addr, err := StripScheme(tr, "tcp://127.0.0.1:50007")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:50007", addr)

	_, err = StripScheme(tr, "ipc:///tmp/fw.sock")
	assert.Equal(t, ErrBadTransport, err)
}

func TestResolveTCPAddrWildcard(t *testing.T) {
	addr, err := ResolveTCPAddr("*:50007")
	require.NoError(t, err)
	assert.Equal(t, 50007, addr.Port)
	assert.Nil(t, addr.IP)
}

func TestRegistry(t *testing.T) {
	tr := fakeTran("fake")
	RegisterTransport(tr)

	assert.Equal(t, Transport(tr), GetTransport("fake"))
	assert.Equal(t, Transport(tr), GetTransportFromAddr("fake://somewhere"))
	assert.Nil(t, GetTransport("unknown"))
}
