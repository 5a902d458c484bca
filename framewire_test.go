package framewire_test

import (
	"testing"
	"time"

	"github.com/framewire/framewire"
	"github.com/framewire/framewire/channel"
	"github.com/framewire/framewire/options"
	_ "github.com/framewire/framewire/transport/all"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTCPRoundTrip(t *testing.T) {
	l, err := framewire.Listen("tcp://127.0.0.1:0", nil)
	require.NoError(t, err)
	addr := l.Address()

	type accepted struct {
		ch  *channel.Channel
		err error
	}
	acceptc := make(chan accepted, 1)
	go func() {
		ch, err := l.Accept()
		acceptc <- accepted{ch, err}
	}()

	cli, err := framewire.Dial(addr, nil)
	require.NoError(t, err)
	defer cli.Close()

	acc := <-acceptc
	require.NoError(t, acc.err)
	srv := acc.ch
	defer srv.Close()

	msg := []byte("over the wire")
	require.NoError(t, cli.Send(msg))
	got, err := srv.Recv()
	require.NoError(t, err)
	assert.Equal(t, msg, got)

	reply := []byte("and back")
	require.NoError(t, srv.Send(reply))
	got, err = cli.Recv()
	require.NoError(t, err)
	assert.Equal(t, reply, got)
}

func TestListenerSingleConnection(t *testing.T) {
	l, err := framewire.Listen("tcp://127.0.0.1:0", nil)
	require.NoError(t, err)
	addr := l.Address()

	go func() {
		cli, err := framewire.Dial(addr, nil)
		if err == nil {
			defer cli.Close()
			cli.Recv()
		}
	}()

	srv, err := l.Accept()
	require.NoError(t, err)
	defer srv.Close()

	// the listener is consumed: no second peer is served
	_, err = l.Accept()
	assert.Equal(t, framewire.ErrListenerConsumed, err)

	// the listening socket is gone, later dials are refused
	time.Sleep(10 * time.Millisecond)
	_, err = framewire.Dial(addr, nil)
	assert.Error(t, err)

	// closing after the accept already released the endpoint is clean
	assert.NoError(t, l.Close())
}

func TestConcurrentAcceptSingleReservation(t *testing.T) {
	l, err := framewire.Listen("inproc://reserve-test", nil)
	require.NoError(t, err)

	acceptc := make(chan error, 1)
	go func() {
		ch, err := l.Accept()
		if ch != nil {
			defer ch.Close()
		}
		acceptc <- err
	}()

	// let the first Accept take the reservation and block
	time.Sleep(10 * time.Millisecond)
	_, err = l.Accept()
	assert.Equal(t, framewire.ErrListenerConsumed, err)

	cli, err := framewire.Dial("inproc://reserve-test", nil)
	require.NoError(t, err)
	defer cli.Close()

	require.NoError(t, <-acceptc)
}

func TestInprocRoundTrip(t *testing.T) {
	ovs := options.OptionValues{channel.OptionPrefixWidth: 1}

	l, err := framewire.Listen("inproc://bootstrap-test", ovs)
	require.NoError(t, err)

	srvc := make(chan *channel.Channel, 1)
	go func() {
		ch, err := l.Accept()
		if err != nil {
			srvc <- nil
			return
		}
		srvc <- ch
	}()

	cli, err := framewire.Dial("inproc://bootstrap-test", ovs)
	require.NoError(t, err)
	defer cli.Close()

	srv := <-srvc
	require.NotNil(t, srv)
	defer srv.Close()

	errc := make(chan error, 1)
	go func() {
		errc <- cli.Send([]byte{1, 2, 3, 4, 5})
	}()
	got, err := srv.Recv()
	require.NoError(t, err)
	require.NoError(t, <-errc)
	assert.Equal(t, []byte{1, 2, 3, 4, 5}, got)
}

func TestDialNoListener(t *testing.T) {
	_, err := framewire.Dial("inproc://nobody-home", nil)
	assert.Equal(t, framewire.ErrConnRefused, err)
}

func TestBadScheme(t *testing.T) {
	_, err := framewire.Dial("carrier-pigeon://coop", nil)
	assert.Equal(t, framewire.ErrBadTransport, err)

	_, err = framewire.Listen("no-scheme-at-all", nil)
	assert.Equal(t, framewire.ErrBadTransport, err)
}

func TestListenerCloseAbortsAccept(t *testing.T) {
	l, err := framewire.Listen("inproc://abort-test", nil)
	require.NoError(t, err)

	errc := make(chan error, 1)
	go func() {
		_, err := l.Accept()
		errc <- err
	}()

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, l.Close())

	select {
	case err := <-errc:
		assert.Error(t, err)
	case <-time.After(time.Second):
		t.Fatal("Accept did not unblock on Close")
	}
}

func TestBadPrefixWidthAtBootstrap(t *testing.T) {
	l, err := framewire.Listen("tcp://127.0.0.1:0", options.OptionValues{channel.OptionPrefixWidth: 9})
	require.NoError(t, err)
	defer l.Close()

	_, err = framewire.Dial(l.Address(), options.OptionValues{channel.OptionPrefixWidth: 9})
	assert.Equal(t, framewire.ErrBadPrefixWidth, err)
}
