//go:build !windows && !nacl && !plan9
// +build !windows,!nacl,!plan9

// Package ipc implements the IPC transport on top of UNIX domain sockets.
package ipc

import (
	"net"
	"os"

	"github.com/framewire/framewire/errs"
	"github.com/framewire/framewire/options"
	"github.com/framewire/framewire/transport"
)

type (
	dialer struct {
		addr *net.UnixAddr
	}

	listener struct {
		addr     *net.UnixAddr
		listener *net.UnixListener
	}
)

func (d *dialer) Dial(opts options.Options) (transport.Connection, error) {
	conn, err := net.DialUnix("unix", nil, d.addr)
	if err != nil {
		return nil, err
	}
	return transport.NewConnection(Transport, conn), nil
}

func (l *listener) Listen(opts options.Options) error {
	// remove exists socket file
	path := l.addr.String()
	if stat, err := os.Stat(path); err == nil {
		if stat.Mode()&os.ModeSocket != 0 {
			if err := os.Remove(path); err != nil {
				return errs.ErrAddrInUse
			}
		} else {
			return errs.ErrAddrInUse
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	listener, err := net.ListenUnix("unix", l.addr)
	if err != nil {
		return err
	}
	l.listener = listener
	return nil
}

func (l *listener) Accept(opts options.Options) (transport.Connection, error) {
	if l.listener == nil {
		return nil, transport.ErrNotListening
	}

	conn, err := l.listener.AcceptUnix()
	if err != nil {
		return nil, err
	}
	return transport.NewConnection(Transport, conn), nil
}

func (l *listener) Address() string {
	return "ipc://" + l.addr.String()
}

func (l *listener) Close() error {
	if l.listener == nil {
		return nil
	}
	return l.listener.Close()
}

func (t ipcTran) NewDialer(address string) (transport.Dialer, error) {
	var (
		err  error
		addr *net.UnixAddr
	)

	if address, err = transport.StripScheme(t, address); err != nil {
		return nil, err
	}

	if addr, err = net.ResolveUnixAddr("unix", address); err != nil {
		return nil, err
	}

	return &dialer{addr: addr}, nil
}

// NewListener implements the Transport NewListener method.
func (t ipcTran) NewListener(address string) (transport.Listener, error) {
	var (
		err  error
		addr *net.UnixAddr
	)

	if address, err = transport.StripScheme(t, address); err != nil {
		return nil, err
	}

	if addr, err = net.ResolveUnixAddr("unix", address); err != nil {
		return nil, err
	}

	return &listener{addr: addr}, nil
}
