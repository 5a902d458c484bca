// Package channel turns a raw byte stream into a sequence of whole
// messages. Every message travels as a fixed-width big-endian length
// prefix followed by the payload bytes; payload contents are never
// interpreted here.
//
// Both peers must agree on the prefix width out of band. The wire
// carries no width field, so a mismatch is not detected: the receiver
// decodes a garbage length and either blocks waiting for bytes that
// never arrive or desynchronizes every later message.
//
// A Channel is not safe for concurrent senders or concurrent
// receivers. Two interleaved Send calls can merge their prefixes and
// payloads into a non-parseable stream; callers sharing a channel
// across goroutines must serialize each direction with their own lock.
package channel

import (
	"encoding/binary"
	"io"
	"math"
	"sync"

	"github.com/framewire/framewire/blockio"
	"github.com/framewire/framewire/bytespool"
	"github.com/framewire/framewire/errs"
	"github.com/framewire/framewire/options"
)

// DefaultPrefixWidth is the prefix width used when OptionPrefixWidth is
// not set.
const DefaultPrefixWidth = 4

// errors
const (
	ErrClosed         = errs.ErrClosed
	ErrConnBroken     = errs.ErrConnBroken
	ErrMsgTooLong     = errs.ErrMsgTooLong
	ErrBadPrefixWidth = errs.ErrBadPrefixWidth
)

// Channel is a framed message channel over a byte stream. It owns the
// stream for its lifetime; Close releases it exactly once.
type Channel struct {
	c           io.ReadWriteCloser
	prefixWidth int
	maxRecv     uint64

	sync.Mutex
	closed bool
}

// New wraps an established byte stream in a Channel. The stream's
// ownership transfers to the channel. OptionPrefixWidth must be in
// [1,8]; widths outside that range fail with ErrBadPrefixWidth.
func New(c io.ReadWriteCloser, ovs options.OptionValues) (*Channel, error) {
	opts := options.NewOptionsWithValues(ovs)

	width := OptionPrefixWidth.Value(opts.GetOptionDefault(OptionPrefixWidth, DefaultPrefixWidth))
	if width < 1 || width > 8 {
		return nil, ErrBadPrefixWidth
	}

	ch := &Channel{
		c:           c,
		prefixWidth: width,
	}
	if val, ok := opts.GetOption(OptionMaxRecvSize); ok {
		ch.maxRecv = uint64(OptionMaxRecvSize.Value(val))
	}
	return ch, nil
}

// PrefixWidth reports the channel's prefix width in bytes.
func (ch *Channel) PrefixWidth() int {
	return ch.prefixWidth
}

// maxLen returns the first length not representable in the prefix, or 0
// when the width imposes no reachable bound.
func (ch *Channel) maxLen() uint64 {
	if ch.prefixWidth >= 8 {
		return 0
	}
	return uint64(1) << uint(8*ch.prefixWidth)
}

func (ch *Channel) isClosed() bool {
	ch.Lock()
	defer ch.Unlock()
	return ch.closed
}

// Send writes one message. The length prefix and payload are
// concatenated into a single buffer and written with one WriteFull
// call, keeping one underlying write per message. Messages whose
// length cannot be represented in the prefix fail with ErrMsgTooLong
// before any byte is written.
func (ch *Channel) Send(msg []byte) error {
	if ch.isClosed() {
		return ErrClosed
	}

	sz := uint64(len(msg))
	if limit := ch.maxLen(); limit != 0 && sz >= limit {
		return ErrMsgTooLong
	}

	buf := bytespool.Alloc(ch.prefixWidth + len(msg))
	putUint(buf[:ch.prefixWidth], sz)
	copy(buf[ch.prefixWidth:], msg)

	err := blockio.WriteFull(ch.c, buf)
	bytespool.Free(buf)
	return err
}

// Recv reads one message: the fixed-width prefix first, then exactly
// that many payload bytes, returned verbatim. The channel itself
// imposes no bound on the decoded length beyond what the prefix can
// represent; set OptionMaxRecvSize to enforce one.
func (ch *Channel) Recv() ([]byte, error) {
	if ch.isClosed() {
		return nil, ErrClosed
	}

	prefix, err := blockio.ReadExact(ch.c, ch.prefixWidth)
	if err != nil {
		return nil, err
	}
	sz := getUint(prefix)

	// the prefix is peer-controlled: a width of 5 or more can carry a
	// length that does not fit in int, which must fail, not panic
	if sz > uint64(math.MaxInt) {
		return nil, ErrMsgTooLong
	}
	if ch.maxRecv != 0 && sz > ch.maxRecv {
		return nil, ErrMsgTooLong
	}

	return blockio.ReadExact(ch.c, int(sz))
}

// Close releases the underlying stream. Closing an already closed
// channel is a no-op reporting ErrClosed.
func (ch *Channel) Close() error {
	ch.Lock()
	if ch.closed {
		ch.Unlock()
		return ErrClosed
	}
	ch.closed = true
	ch.Unlock()

	return ch.c.Close()
}

// putUint encodes v big-endian into exactly len(b) bytes, 1 to 8.
func putUint(b []byte, v uint64) {
	var full [8]byte
	binary.BigEndian.PutUint64(full[:], v)
	copy(b, full[8-len(b):])
}

// getUint decodes a big-endian unsigned integer of 1 to 8 bytes.
func getUint(b []byte) uint64 {
	var full [8]byte
	copy(full[8-len(b):], b)
	return binary.BigEndian.Uint64(full[:])
}
