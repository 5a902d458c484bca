// Package blockio provides the blocking byte transfer primitives the
// framing layer is built on: writing a whole buffer and reading an exact
// count of bytes from a boundary-less stream, looping over partial
// operations. Both primitives are purely mechanical and know nothing
// about message framing.
package blockio

import (
	"io"

	"github.com/framewire/framewire/errs"
)

// ReadChunkSize bounds the number of bytes requested by a single
// underlying read call in ReadExact.
const ReadChunkSize = 2048

// WriteFull writes all of p to w, looping until every byte has been
// accepted by the transport. It returns errs.ErrConnBroken when an
// underlying write accepts zero bytes without reporting an error, and
// passes through any write error otherwise. On success every byte of p
// has been accepted by the transport layer, not necessarily by the peer
// application.
func WriteFull(w io.Writer, p []byte) error {
	sent := 0
	for sent < len(p) {
		n, err := w.Write(p[sent:])
		if err != nil {
			if err == io.ErrClosedPipe || err == io.EOF {
				return errs.ErrConnBroken
			}
			return err
		}
		if n == 0 {
			return errs.ErrConnBroken
		}
		sent += n
	}
	return nil
}

// ReadExact reads exactly n bytes from r, blocking across as many
// underlying read calls as needed. Each call requests at most
// ReadChunkSize bytes. It returns errs.ErrConnBroken when the peer
// closes the stream before n bytes have arrived, and passes through any
// other read error. The returned slice holds the bytes in arrival order.
func ReadExact(r io.Reader, n int) ([]byte, error) {
	buf := make([]byte, n)
	recd := 0
	for recd < n {
		limit := recd + ReadChunkSize
		if limit > n {
			limit = n
		}
		m, err := r.Read(buf[recd:limit])
		recd += m
		if recd == n {
			break
		}
		if err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF || err == io.ErrClosedPipe {
				return nil, errs.ErrConnBroken
			}
			return nil, err
		}
		if m == 0 {
			return nil, errs.ErrConnBroken
		}
	}
	return buf, nil
}
