package ipc

import (
	"github.com/framewire/framewire/transport"
)

type ipcTran int

const (
	// Transport is a transport.Transport for inter-process communication.
	Transport = ipcTran(0)
)

func init() {
	transport.RegisterTransport(Transport)
}

func (t ipcTran) Scheme() string {
	return "ipc"
}
