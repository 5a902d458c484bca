// Package inproc implements an intra-process transport on top of
// net.Pipe. It exists mostly for tests and demos that want a real
// listener/dialer handshake without touching the network stack.
package inproc

import (
	"net"
	"sync"

	"github.com/framewire/framewire/options"
	"github.com/framewire/framewire/transport"
)

type (
	inprocTran int

	dialer struct {
		addr string
	}

	listener struct {
		addr    string
		accepts chan chan net.Conn
		closedq chan struct{}
	}

	pipe struct {
		net.Conn
		laddr net.Addr
		raddr net.Addr
	}

	address string
)

const (
	// Transport is a transport.Transport for intra-process communication.
	Transport = inprocTran(0)
	scheme    = "inproc"
)

var listeners struct {
	sync.RWMutex
	// Who is listening, on which "address"?
	byAddr map[string]*listener
}

func init() {
	listeners.byAddr = make(map[string]*listener)
	transport.RegisterTransport(Transport)
}

// address
func (a address) Network() string {
	return scheme
}

func (a address) String() string {
	return string(a)
}

// pipe
func (p *pipe) LocalAddr() net.Addr {
	return p.laddr
}

func (p *pipe) RemoteAddr() net.Addr {
	return p.raddr
}

func newPipe(laddr, raddr string) (net.Conn, net.Conn) {
	lc, rc := net.Pipe()

	return &pipe{
			Conn:  lc,
			laddr: address(laddr),
			raddr: address(raddr),
		}, &pipe{
			Conn:  rc,
			laddr: address(raddr),
			raddr: address(laddr),
		}
}

// dialer

func (d *dialer) Dial(opts options.Options) (transport.Connection, error) {
	listeners.RLock()
	l, ok := listeners.byAddr[d.addr]
	listeners.RUnlock()
	if !ok {
		return nil, transport.ErrConnRefused
	}

	ac := make(chan net.Conn)
	select {
	case <-l.closedq:
		return nil, transport.ErrConnRefused
	case l.accepts <- ac:
	}

	select {
	case <-l.closedq:
		return nil, transport.ErrConnRefused
	case dc := <-ac:
		return transport.NewConnection(Transport, dc), nil
	}
}

// listener

func (l *listener) Listen(opts options.Options) error {
	listeners.Lock()
	defer listeners.Unlock()

	if _, ok := listeners.byAddr[l.addr]; ok {
		return transport.ErrAddrInUse
	}
	listeners.byAddr[l.addr] = l
	return nil
}

func (l *listener) Accept(opts options.Options) (transport.Connection, error) {
	select {
	case ac := <-l.accepts:
		lc, dc := newPipe(l.addr, l.addr+".dialer")
		select {
		case ac <- dc:
			return transport.NewConnection(Transport, lc), nil
		case <-l.closedq:
			lc.Close()
			dc.Close()
			return nil, transport.ErrClosed
		}
	case <-l.closedq:
		return nil, transport.ErrClosed
	}
}

func (l *listener) Address() string {
	return scheme + "://" + l.addr
}

func (l *listener) Close() error {
	select {
	case <-l.closedq:
		return transport.ErrClosed
	default:
		close(l.closedq)
	}

	listeners.Lock()
	if listeners.byAddr[l.addr] == l {
		delete(listeners.byAddr, l.addr)
	}
	listeners.Unlock()
	return nil
}

func (t inprocTran) Scheme() string {
	return scheme
}

func (t inprocTran) NewDialer(addr string) (transport.Dialer, error) {
	var err error
	if addr, err = transport.StripScheme(t, addr); err != nil {
		return nil, err
	}
	return &dialer{addr: addr}, nil
}

func (t inprocTran) NewListener(addr string) (transport.Listener, error) {
	var err error
	if addr, err = transport.StripScheme(t, addr); err != nil {
		return nil, err
	}
	return &listener{
		addr:    addr,
		accepts: make(chan chan net.Conn),
		closedq: make(chan struct{}),
	}, nil
}
