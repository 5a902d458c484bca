//go:build windows
// +build windows

package ipc

import (
	"github.com/framewire/framewire/options"
)

type optionName int

const (
	optionNameInputBufferSize optionName = iota
	optionNameOutputBufferSize
	optionNameSecurityDescriptor
)

// Options
var (
	OptionInputBufferSize    = options.NewIntOption(optionNameInputBufferSize)
	OptionOutputBufferSize   = options.NewIntOption(optionNameOutputBufferSize)
	OptionSecurityDescriptor = options.NewStringOption(optionNameSecurityDescriptor)
)
