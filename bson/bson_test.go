package bson

import (
	"testing"

	"github.com/zoobzio/tabular"
)

func TestContentType(t *testing.T) {
	c := New()
	if c.ContentType() != "application/bson" {
		t.Errorf("ContentType() = %q, want %q", c.ContentType(), "application/bson")
	}
	if got := tabular.CodecName(c); got != "bson" {
		t.Errorf("CodecName() = %q, want %q", got, "bson")
	}
}

func TestBinary(t *testing.T) {
	b, ok := New().(tabular.BinaryCodec)
	if !ok || !b.Binary() {
		t.Error("BSON codec should report binary output")
	}
}

func TestMarshalUnmarshal(t *testing.T) {
	c := New()

	type TestStruct struct {
		Name  string `bson:"name"`
		Value int    `bson:"value"`
	}

	original := TestStruct{Name: "test", Value: 42}

	data, err := c.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var restored TestStruct
	if err := c.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	if restored != original {
		t.Errorf("round-trip failed: got %+v, want %+v", restored, original)
	}
}

func TestMarshalScalar(t *testing.T) {
	c := New()

	if _, err := c.Marshal(42); err == nil {
		t.Error("Marshal(scalar) should return error, BSON encodes documents only")
	}
}
