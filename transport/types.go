package transport

import (
	"io"

	"github.com/framewire/framewire/options"
)

type (
	// Connection is an established, ordered, bidirectional byte stream
	// between two peers. It carries no message boundaries; framing is
	// layered on top by the channel package.
	Connection interface {
		io.Reader
		io.Writer

		Close() error

		LocalAddress() string
		RemoteAddress() string
	}

	// Dialer connects to a remote listening peer.
	Dialer interface {
		Dial(opts options.Options) (Connection, error)
	}

	// Listener accepts connections from remote peers.
	Listener interface {
		Listen(opts options.Options) error
		Accept(opts options.Options) (Connection, error)
		Address() string
		Close() error
	}

	// Transport is a stream transport bound to an address scheme.
	Transport interface {
		Scheme() string
		NewDialer(address string) (Dialer, error)
		NewListener(address string) (Listener, error)
	}
)
