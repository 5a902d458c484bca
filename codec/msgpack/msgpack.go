// Package msgpack implements codec.Codec with MessagePack, for sending
// typed values such as numeric vectors over a framed channel.
package msgpack

import (
	"github.com/vmihailenco/msgpack/v4"
)

type mpCodec int

// Codec is a codec.Codec using MessagePack encoding.
const Codec = mpCodec(0)

func (mpCodec) Marshal(v interface{}) ([]byte, error) {
	return msgpack.Marshal(v)
}

func (mpCodec) Unmarshal(data []byte, v interface{}) error {
	return msgpack.Unmarshal(data, v)
}
