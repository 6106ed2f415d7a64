package tabular

import (
	"bytes"
	"context"
	"fmt"
	"reflect"
	"time"
)

// csvCodec implements Codec for text/csv.
type csvCodec struct {
	cfg *config
}

// NewCodec returns the CSV codec. Marshal accepts a slice or array of records,
// or a pointer to one; the element type supplies the header even when the
// sequence is empty. Unmarshal is not supported.
func NewCodec(opts ...Option) Codec {
	return &csvCodec{cfg: newConfig(opts)}
}

// ContentType returns the MIME type for CSV.
func (c *csvCodec) ContentType() string {
	return c.cfg.contentType
}

// Marshal encodes v as a CSV document.
func (c *csvCodec) Marshal(v any) (data []byte, err error) {
	rv, elem, err := sequenceOf(v)
	if err != nil {
		return nil, newCodecError(ErrMarshal, err)
	}

	typeName := elem.String()
	start := time.Now()
	var buf bytes.Buffer
	enc := newEncoder(&buf, c.cfg)

	emitEncodeStart(context.Background(), c.cfg.contentType, typeName)
	defer func() {
		finishEncode(context.Background(), c.cfg, typeName, enc.rows, enc.size, time.Since(start), err)
	}()

	if elem.Kind() != reflect.Interface {
		s, err := SchemaOf(elem)
		if err != nil {
			return nil, newCodecError(ErrMarshal, err)
		}
		if err := enc.setSchema(s); err != nil {
			return nil, newCodecError(ErrMarshal, err)
		}
		typeName = s.TypeName
	}

	for i := 0; i < rv.Len(); i++ {
		if err := enc.writeRecord(rv.Index(i).Interface()); err != nil {
			return nil, newCodecError(ErrMarshal, err)
		}
	}
	if err := enc.close(); err != nil {
		return nil, newCodecError(ErrMarshal, err)
	}
	return buf.Bytes(), nil
}

// Unmarshal always fails: reading CSV back into records is not provided.
func (c *csvCodec) Unmarshal(_ []byte, _ any) error {
	return newCodecError(ErrUnmarshal, ErrUnsupported)
}

// CanEncode reports whether values of type rt can be marshaled by the CSV
// codec: a slice or array, possibly behind pointers, whose element is an
// interface or has a non-empty schema.
func CanEncode(rt reflect.Type) bool {
	if rt == nil {
		return false
	}
	for rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	if rt.Kind() != reflect.Slice && rt.Kind() != reflect.Array {
		return false
	}
	elem := rt.Elem()
	if elem.Kind() == reflect.Interface {
		return true
	}
	_, err := SchemaOf(elem)
	return err == nil
}

func sequenceOf(v any) (reflect.Value, reflect.Type, error) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return rv, nil, &SchemaError{Err: ErrUnsupportedType, Type: "<nil>"}
	}
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return rv, nil, &SchemaError{Err: ErrUnsupportedType, Type: rv.Type().String(), Reason: "nil pointer"}
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return rv, nil, &SchemaError{
			Err:    ErrUnsupportedType,
			Type:   rv.Type().String(),
			Reason: fmt.Sprintf("%s is not a sequence of records", rv.Kind()),
		}
	}
	return rv, rv.Type().Elem(), nil
}
