// Package msgpack provides a MessagePack codec implementation.
//
// The codec is binary: cells rendered with it are base64 encoded.
package msgpack

import (
	"github.com/vmihailenco/msgpack/v5"
	"github.com/zoobzio/tabular"
)

// msgpackCodec implements tabular.BinaryCodec for MessagePack.
type msgpackCodec struct{}

// New returns a MessagePack codec.
func New() tabular.Codec {
	return &msgpackCodec{}
}

// ContentType returns the MIME type for MessagePack.
func (c *msgpackCodec) ContentType() string {
	return "application/msgpack"
}

// Binary reports that MessagePack output is not text.
func (c *msgpackCodec) Binary() bool {
	return true
}

// Marshal encodes v as MessagePack.
func (c *msgpackCodec) Marshal(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

// Unmarshal decodes MessagePack data into v.
func (c *msgpackCodec) Unmarshal(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}
