// Package all is used to register all transports. This allows a program
// to support every known transport with a single import.
package all

import (
	// import transports
	_ "github.com/framewire/framewire/transport/inproc"
	_ "github.com/framewire/framewire/transport/ipc"
	_ "github.com/framewire/framewire/transport/tcp"
	_ "github.com/framewire/framewire/transport/ws"
)
