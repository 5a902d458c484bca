package inproc

import (
	"testing"

	"github.com/framewire/framewire/transport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddrInUse(t *testing.T) {
	l1, err := Transport.NewListener("inproc://dup")
	require.NoError(t, err)
	require.NoError(t, l1.Listen(nil))
	defer l1.Close()

	l2, err := Transport.NewListener("inproc://dup")
	require.NoError(t, err)
	assert.Equal(t, transport.ErrAddrInUse, l2.Listen(nil))
}

func TestDialRefused(t *testing.T) {
	d, err := Transport.NewDialer("inproc://void")
	require.NoError(t, err)

	_, err = d.Dial(nil)
	assert.Equal(t, transport.ErrConnRefused, err)
}

func TestHandshakeAndTransfer(t *testing.T) {
	l, err := Transport.NewListener("inproc://xfer")
	require.NoError(t, err)
	require.NoError(t, l.Listen(nil))
	defer l.Close()

	type result struct {
		c   transport.Connection
		err error
	}
	acceptc := make(chan result, 1)
	go func() {
		c, err := l.Accept(nil)
		acceptc <- result{c, err}
	}()

	d, err := Transport.NewDialer("inproc://xfer")
	require.NoError(t, err)
	dc, err := d.Dial(nil)
	require.NoError(t, err)
	defer dc.Close()

	res := <-acceptc
	require.NoError(t, res.err)
	lc := res.c
	defer lc.Close()

	assert.Equal(t, "inproc://xfer", lc.LocalAddress())

	payload := []byte("hello")
	go dc.Write(payload)
	buf := make([]byte, len(payload))
	n, err := lc.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, payload[:n], buf[:n])
}
