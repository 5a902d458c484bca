// Package ws implements the websocket transport. Each websocket binary
// message carries an arbitrary chunk of the byte stream; the adapter
// below re-exposes those chunks as a plain net.Conn so the framing
// layer above stays transport-agnostic.
package ws

import (
	"io"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/framewire/framewire/errs"
	"github.com/framewire/framewire/options"
	"github.com/framewire/framewire/transport"
	"github.com/gorilla/websocket"
)

type (
	wsTran string

	dialer struct {
		addr string
		url  *url.URL
	}

	// Listener websocket listener, exported for add handler or self serving
	Listener struct {
		addr     string
		URL      *url.URL
		upgrader websocket.Upgrader
		*http.ServeMux
		listener net.Listener
		pending  chan *wsConn
		sync.Mutex
		closedq chan struct{}
	}

	wsConn struct {
		*websocket.Conn
		laddr net.Addr
		raddr net.Addr
		r     io.Reader
	}

	address string
)

const (
	// Transport is a transport.Transport for Websocket.
	Transport = wsTran("ws")

	subprotocol = "framewire.binary"
)

func init() {
	transport.RegisterTransport(Transport)
}

func noCheckOrigin(r *http.Request) bool {
	return true
}

// address
func (a address) Network() string {
	return string(Transport)
}

func (a address) String() string {
	return string(a)
}

// ws
func (c *wsConn) LocalAddr() net.Addr {
	return c.laddr
}

func (c *wsConn) RemoteAddr() net.Addr {
	return c.raddr
}

func (c *wsConn) Read(b []byte) (n int, err error) {
	if c.r == nil {
		if _, c.r, err = c.Conn.NextReader(); err != nil {
			return
		}
	}
	n, err = c.r.Read(b)
	if err == io.EOF {
		c.r = nil
		if n == 0 {
			return c.Read(b)
		}
		err = nil
	}
	return
}

func (c *wsConn) Write(b []byte) (n int, err error) {
	err = c.Conn.WriteMessage(websocket.BinaryMessage, b)
	n = len(b)
	return
}

func (c *wsConn) SetDeadline(t time.Time) (err error) {
	if err = c.Conn.SetReadDeadline(t); err != nil {
		return
	}
	return c.Conn.SetWriteDeadline(t)
}

// dialer

func (d *dialer) Dial(opts options.Options) (transport.Connection, error) {
	wd := &websocket.Dialer{
		WriteBufferPool: &sync.Pool{},
		Subprotocols:    []string{subprotocol},
	}
	if val, ok := opts.GetOption(OptionReadBufferSize); ok {
		wd.ReadBufferSize = OptionReadBufferSize.Value(val)
	}
	if val, ok := opts.GetOption(OptionWriteBufferSize); ok {
		wd.WriteBufferSize = OptionWriteBufferSize.Value(val)
	}

	ws, _, err := wd.Dial(d.url.String(), nil)
	if err != nil {
		return nil, err
	}

	c := &wsConn{
		Conn:  ws,
		laddr: ws.LocalAddr(),
		raddr: address(d.addr),
	}

	return transport.NewConnection(Transport, c), nil
}

// listener

// Listen start listen
func (l *Listener) Listen(opts options.Options) (err error) {
	select {
	case <-l.closedq:
		return errs.ErrClosed
	default:
	}

	l.pending = make(chan *wsConn, OptionPendingSize.Value(opts.GetOptionDefault(OptionPendingSize, 1)))
	if val, ok := opts.GetOption(OptionReadBufferSize); ok {
		l.upgrader.ReadBufferSize = OptionReadBufferSize.Value(val)
	}
	if val, ok := opts.GetOption(OptionWriteBufferSize); ok {
		l.upgrader.WriteBufferSize = OptionWriteBufferSize.Value(val)
	}

	var taddr *net.TCPAddr
	if taddr, err = transport.ResolveTCPAddr(l.URL.Host); err != nil {
		return err
	}

	if l.listener, err = net.ListenTCP("tcp", taddr); err != nil {
		return
	}
	go http.Serve(l.listener, l.ServeMux)
	return nil
}

// Accept start accept
func (l *Listener) Accept(opts options.Options) (transport.Connection, error) {
	if l.listener == nil {
		return nil, errs.ErrNotListening
	}

	select {
	case c := <-l.pending:
		return transport.NewConnection(Transport, c), nil
	case <-l.closedq:
		return nil, errs.ErrClosed
	}
}

// Address reports the bound address.
func (l *Listener) Address() string {
	if l.listener != nil {
		return "ws://" + l.listener.Addr().String() + l.URL.Path
	}
	return l.addr
}

// Close stop listen
func (l *Listener) Close() error {
	l.Lock()
	select {
	case <-l.closedq:
		l.Unlock()
		return errs.ErrClosed
	default:
		close(l.closedq)
	}
	l.Unlock()

	if l.listener != nil {
		l.listener.Close()
	}

CLOSING:
	for {
		select {
		case c := <-l.pending:
			c.Close()
		default:
			break CLOSING
		}
	}
	return nil
}

func (l *Listener) ServeHTTP(resp http.ResponseWriter, req *http.Request) {
	ws, err := l.upgrader.Upgrade(resp, req, nil)
	if err != nil {
		return
	}

	select {
	case <-l.closedq:
		ws.Close()
		return
	default:
	}

	if ws.Subprotocol() != subprotocol {
		ws.Close()
		return
	}

	c := &wsConn{
		Conn:  ws,
		laddr: address(l.addr),
		raddr: ws.RemoteAddr(),
	}

	select {
	case l.pending <- c:
	case <-l.closedq:
		ws.Close()
	}
}

func (t wsTran) Scheme() string {
	return string(t)
}

func (t wsTran) NewDialer(address string) (transport.Dialer, error) {
	url, addr, err := parseAddressToURL(t, address)
	if err != nil {
		return nil, err
	}

	return &dialer{
		addr: addr,
		url:  url,
	}, nil
}

func (t wsTran) NewListener(address string) (transport.Listener, error) {
	url, addr, err := parseAddressToURL(t, address)
	if err != nil {
		return nil, err
	}
	if url.Path == "" {
		url.Path = "/"
	}

	l := &Listener{
		addr: addr,
		URL:  url,
		upgrader: websocket.Upgrader{
			WriteBufferPool: &sync.Pool{},
			Subprotocols:    []string{subprotocol},
			CheckOrigin:     noCheckOrigin,
		},
		closedq: make(chan struct{}),
	}
	l.ServeMux = http.NewServeMux()
	l.ServeMux.Handle(l.URL.Path, l)

	return l, nil
}

func parseAddressToURL(t transport.Transport, address string) (u *url.URL, addr string, err error) {
	if addr, err = transport.StripScheme(t, address); err != nil {
		return
	}
	u, err = url.Parse(address)
	return
}
