//go:build windows
// +build windows

// Package ipc implements the IPC transport on top of Windows Named Pipes.
package ipc

import (
	"net"

	"github.com/Microsoft/go-winio"
	"github.com/framewire/framewire/options"
	"github.com/framewire/framewire/transport"
)

type (
	dialer struct {
		path string
	}

	listener struct {
		path     string
		listener net.Listener
	}
)

func (d *dialer) Dial(opts options.Options) (transport.Connection, error) {
	conn, err := winio.DialPipe("\\\\.\\pipe\\"+d.path, nil)
	if err != nil {
		return nil, err
	}
	return transport.NewConnection(Transport, conn), nil
}

func (l *listener) Listen(opts options.Options) error {
	config := &winio.PipeConfig{
		InputBufferSize:  int32(OptionInputBufferSize.Value(opts.GetOptionDefault(OptionInputBufferSize, 4096))),
		OutputBufferSize: int32(OptionOutputBufferSize.Value(opts.GetOptionDefault(OptionOutputBufferSize, 4096))),
		MessageMode:      false,
	}
	if val, ok := opts.GetOption(OptionSecurityDescriptor); ok {
		config.SecurityDescriptor = OptionSecurityDescriptor.Value(val)
	}

	listener, err := winio.ListenPipe("\\\\.\\pipe\\"+l.path, config)
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

	conn, err := l.listener.Accept()
	if err != nil {
		return nil, err
	}
	return transport.NewConnection(Transport, conn), nil
}

func (l *listener) Address() string {
	return "ipc://" + l.path
}

func (l *listener) Close() error {
	if l.listener == nil {
		return nil
	}
	return l.listener.Close()
}

func (t ipcTran) NewDialer(address string) (transport.Dialer, error) {
	var err error
	if address, err = transport.StripScheme(t, address); err != nil {
		return nil, err
	}

	return &dialer{path: address}, nil
}

// NewListener implements the Transport NewListener method.
func (t ipcTran) NewListener(address string) (transport.Listener, error) {
	var err error
	if address, err = transport.StripScheme(t, address); err != nil {
		return nil, err
	}

	return &listener{path: address}, nil
}
