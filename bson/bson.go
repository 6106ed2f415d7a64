// Package bson provides a BSON codec implementation.
//
// The codec is binary: cells rendered with it are base64 encoded. BSON only
// encodes documents, so fields tagged `csv.encode:"bson"` must hold a struct,
// a map or a bson.D.
package bson

import (
	"github.com/zoobzio/tabular"
	"go.mongodb.org/mongo-driver/bson"
)

// bsonCodec implements tabular.BinaryCodec for BSON.
type bsonCodec struct{}

// New returns a BSON codec.
func New() tabular.Codec {
	return &bsonCodec{}
}

// ContentType returns the MIME type for BSON.
func (c *bsonCodec) ContentType() string {
	return "application/bson"
}

// Binary reports that BSON output is not text.
func (c *bsonCodec) Binary() bool {
	return true
}

// Marshal encodes v as BSON.
func (c *bsonCodec) Marshal(v any) ([]byte, error) {
	return bson.Marshal(v)
}

// Unmarshal decodes BSON data into v.
func (c *bsonCodec) Unmarshal(data []byte, v any) error {
	return bson.Unmarshal(data, v)
}
