// Package framewire bootstraps exactly one framed point-to-point
// channel: one side listens and accepts a single peer, the other dials.
// Addresses are scheme-prefixed ("tcp://127.0.0.1:50007",
// "ipc:///tmp/fw.sock", "ws://127.0.0.1:8080/wire", "inproc://demo");
// the scheme selects a registered transport.
package framewire

import (
	"sync"

	"github.com/framewire/framewire/channel"
	"github.com/framewire/framewire/options"
	"github.com/framewire/framewire/transport"
	log "github.com/sirupsen/logrus"
)

// Listener accepts exactly one peer. The first successful Accept
// consumes it: the listening endpoint is closed and every later Accept
// fails with ErrListenerConsumed. A second peer can never be routed to
// the already accepted channel.
type Listener struct {
	tl   transport.Listener
	opts options.Options
	ovs  options.OptionValues

	sync.Mutex
	accepting bool
	consumed  bool
	closed    bool
}

// Listen binds and listens on addr, ready for a single Accept. A bind
// failure closes any intermediate state and is returned as the
// transport's error.
func Listen(addr string, ovs options.OptionValues) (*Listener, error) {
	t := transport.GetTransportFromAddr(addr)
	if t == nil {
		return nil, transport.ErrBadTransport
	}

	tl, err := t.NewListener(addr)
	if err != nil {
		return nil, err
	}

	opts := options.NewOptionsWithValues(ovs)
	if err = tl.Listen(opts); err != nil {
		tl.Close()
		return nil, err
	}

	if log.IsLevelEnabled(log.DebugLevel) {
		log.WithFields(log.Fields{"addr": tl.Address()}).Debug("listen")
	}

	return &Listener{tl: tl, opts: opts, ovs: ovs}, nil
}

// Address reports the bound address, useful when listening on an
// ephemeral port.
func (l *Listener) Address() string {
	return l.tl.Address()
}

// Accept blocks until one peer connects, then wraps the connection in
// a framed channel and closes the listening endpoint.
func (l *Listener) Accept() (*channel.Channel, error) {
	l.Lock()
	if l.closed {
		l.Unlock()
		return nil, ErrClosed
	}
	if l.consumed || l.accepting {
		l.Unlock()
		return nil, ErrListenerConsumed
	}
	// reserve the single accept before blocking, so a concurrent
	// Accept cannot serve a second peer
	l.accepting = true
	l.Unlock()

	c, err := l.tl.Accept(l.opts)
	if err != nil {
		l.Lock()
		l.accepting = false
		l.Unlock()
		return nil, err
	}

	l.Lock()
	l.consumed = true
	l.accepting = false
	l.Unlock()
	// single-connection lifetime: stop listening as soon as the one
	// peer is connected, so later dials are refused
	l.tl.Close()

	ch, err := channel.New(c, l.ovs)
	if err != nil {
		c.Close()
		return nil, err
	}

	if log.IsLevelEnabled(log.DebugLevel) {
		log.WithFields(log.Fields{"remote": c.RemoteAddress()}).Debug("accept")
	}

	return ch, nil
}

// Close aborts a pending Accept and releases the listening endpoint.
// The channel produced by a completed Accept is unaffected.
func (l *Listener) Close() error {
	l.Lock()
	if l.closed {
		l.Unlock()
		return ErrClosed
	}
	l.closed = true
	consumed := l.consumed
	l.Unlock()

	if consumed {
		// the listening endpoint was already released by Accept
		return nil
	}
	return l.tl.Close()
}

// Dial connects to a listening peer at addr and wraps the connection
// in a framed channel. There is no retry; a refused or unreachable
// peer surfaces as the transport's error and the caller decides what
// to do.
func Dial(addr string, ovs options.OptionValues) (*channel.Channel, error) {
	t := transport.GetTransportFromAddr(addr)
	if t == nil {
		return nil, transport.ErrBadTransport
	}

	td, err := t.NewDialer(addr)
	if err != nil {
		return nil, err
	}

	c, err := td.Dial(options.NewOptionsWithValues(ovs))
	if err != nil {
		if log.IsLevelEnabled(log.DebugLevel) {
			log.WithError(err).WithFields(log.Fields{"addr": addr}).Debug("dial")
		}
		return nil, err
	}

	ch, err := channel.New(c, ovs)
	if err != nil {
		c.Close()
		return nil, err
	}

	if log.IsLevelEnabled(log.DebugLevel) {
		log.WithFields(log.Fields{"addr": addr, "local": c.LocalAddress()}).Debug("dial")
	}

	return ch, nil
}
