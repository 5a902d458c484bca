package transport

import (
	"github.com/framewire/framewire/errs"
)

// errors
const (
	ErrClosed          = errs.ErrClosed
	ErrBadTransport    = errs.ErrBadTransport
	ErrConnRefused     = errs.ErrConnRefused
	ErrAddrInUse       = errs.ErrAddrInUse
	ErrNotListening    = errs.ErrNotListening
	ErrBadOperateState = errs.ErrBadOperateState
)
