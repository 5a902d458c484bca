package channel

import (
	"github.com/framewire/framewire/options"
)

type optionName int

const (
	optionNamePrefixWidth optionName = iota
	optionNameMaxRecvSize
)

// Options
var (
	// OptionPrefixWidth is the length prefix width in bytes, 1 to 8.
	OptionPrefixWidth = options.NewIntOption(optionNamePrefixWidth)
	// OptionMaxRecvSize caps the decoded payload length accepted by
	// Recv. Zero or unset means no cap.
	OptionMaxRecvSize = options.NewIntOption(optionNameMaxRecvSize)
)
