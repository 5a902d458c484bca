package framewire

import (
	"github.com/framewire/framewire/errs"
)

// errors
const (
	ErrClosed           = errs.ErrClosed
	ErrConnBroken       = errs.ErrConnBroken
	ErrMsgTooLong       = errs.ErrMsgTooLong
	ErrBadPrefixWidth   = errs.ErrBadPrefixWidth
	ErrListenerConsumed = errs.ErrListenerConsumed
	ErrConnRefused      = errs.ErrConnRefused
	ErrBadTransport     = errs.ErrBadTransport
)
