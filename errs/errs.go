package errs

// Err is a string constant error value.
type Err string

func (e Err) Error() string {
	return string(e)
}

// errors
const (
	ErrClosed           = Err("object is closed")
	ErrConnBroken       = Err("connection broken")
	ErrMsgTooLong       = Err("message is too long")
	ErrBadPrefixWidth   = Err("prefix width out of range")
	ErrListenerConsumed = Err("listener already consumed")
	ErrNotListening     = Err("not listening")
	ErrConnRefused      = Err("connection refused")
	ErrAddrInUse        = Err("address already in use")
	ErrBadTransport     = Err("invalid or unsupported transport")
	ErrBadOperateState  = Err("bad operation state")
)
