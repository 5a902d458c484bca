// Package codec defines the injected payload encode/decode capability.
// The framing core never interprets payload bytes; applications that
// want typed values on the wire plug a Codec in on both sides.
package codec

type (
	// Codec translates application values to and from opaque byte
	// buffers.
	Codec interface {
		Marshal(v interface{}) ([]byte, error)
		Unmarshal(data []byte, v interface{}) error
	}

	// Channel is the part of a framed channel a codec needs.
	Channel interface {
		Send(msg []byte) error
		Recv() ([]byte, error)
	}
)

// Send encodes v with c and sends it as one message.
func Send(ch Channel, c Codec, v interface{}) error {
	data, err := c.Marshal(v)
	if err != nil {
		return err
	}
	return ch.Send(data)
}

// Recv receives one message and decodes it with c into v.
func Recv(ch Channel, c Codec, v interface{}) error {
	data, err := ch.Recv()
	if err != nil {
		return err
	}
	return c.Unmarshal(data, v)
}
