package ws

import (
	"github.com/framewire/framewire/options"
)

type optionName int

const (
	optionNameReadBufferSize optionName = iota
	optionNameWriteBufferSize
	optionNamePendingSize
)

// Options
var (
	OptionReadBufferSize  = options.NewIntOption(optionNameReadBufferSize)
	OptionWriteBufferSize = options.NewIntOption(optionNameWriteBufferSize)
	OptionPendingSize     = options.NewIntOption(optionNamePendingSize)
)
