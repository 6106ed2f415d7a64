package tabular

import (
	"bufio"
	"context"
	"errors"
	"io"
	"reflect"
)

var (
	errNilSink     = errors.New("sink is nil")
	errWriterClose = errors.New("writer is closed")
)

// encoder is the untyped core shared by Writer and the CSV codec.
// It is not safe for concurrent use.
type encoder struct {
	sink   io.Writer
	out    *bufio.Writer
	cfg    *config
	schema *Schema

	header bool
	rows   int
	size   int
	line   []byte

	err    error
	closed bool
}

func newEncoder(sink io.Writer, cfg *config) *encoder {
	return &encoder{
		sink: sink,
		out:  bufio.NewWriterSize(sink, cfg.bufferSize),
		cfg:  cfg,
		line: make([]byte, 0, 256),
	}
}

func (e *encoder) setSchema(s *Schema) error {
	if err := e.cfg.validate(s); err != nil {
		return err
	}
	e.schema = s
	return nil
}

// fail records err as the sticky error and returns it.
func (e *encoder) fail(err error) error {
	if e.err == nil {
		e.err = err
	}
	return err
}

func (e *encoder) writeHeader() error {
	if e.err != nil {
		return e.err
	}
	if e.closed {
		return errWriterClose
	}
	if e.header {
		return nil
	}
	if e.schema == nil {
		return e.fail(&SchemaError{Err: ErrSchema, Type: "<unknown>", Reason: "no records and no type information"})
	}
	e.line = appendHeader(e.line[:0], e.schema.Names())
	if err := e.emit(); err != nil {
		return err
	}
	e.header = true
	return nil
}

func (e *encoder) writeRecord(record any) error {
	if e.err != nil {
		return e.err
	}
	if e.closed {
		return errWriterClose
	}
	if e.schema == nil {
		s, err := SchemaOf(reflect.TypeOf(record))
		if err != nil {
			return e.fail(err)
		}
		if err := e.setSchema(s); err != nil {
			return e.fail(err)
		}
	}
	if err := e.writeHeader(); err != nil {
		return err
	}

	values, err := e.schema.extract(e.rows, record, e.cfg)
	if err != nil {
		return e.fail(err)
	}
	return e.writeValues(values)
}

// writeValues writes one data line, emitting the header first if needed.
func (e *encoder) writeValues(values []Value) error {
	if err := e.writeHeader(); err != nil {
		return err
	}
	if len(values) != len(e.schema.Fields) {
		return e.fail(&RowShapeError{Row: e.rows, Want: len(e.schema.Fields), Got: len(values)})
	}

	e.line = appendRow(e.line[:0], values)
	if err := e.emit(); err != nil {
		return err
	}
	e.rows++
	return nil
}

func (e *encoder) emit() error {
	n, err := e.out.Write(e.line)
	e.size += n
	if err != nil {
		return e.fail(&SinkError{Op: "write", Cause: err})
	}
	return nil
}

func (e *encoder) flush() error {
	if e.err != nil {
		return e.err
	}
	if err := e.out.Flush(); err != nil {
		return e.fail(&SinkError{Op: "flush", Cause: err})
	}
	return nil
}

// close emits the header if nothing was written yet, flushes, and closes the
// sink when it is an io.Closer. It runs the flush and close even after a
// failure and then reports the first error seen.
func (e *encoder) close() error {
	if e.closed {
		return e.err
	}
	if e.err == nil && !e.header {
		_ = e.writeHeader()
	}
	e.closed = true

	if err := e.out.Flush(); err != nil {
		e.fail(&SinkError{Op: "flush", Cause: err})
	}
	if c, ok := e.sink.(io.Closer); ok {
		if err := c.Close(); err != nil {
			e.fail(&SinkError{Op: "close", Cause: err})
		}
	}
	return e.err
}

// Writer encodes records of type T as CSV onto a sink.
//
// The header row is written before the first record, or by Close when no
// record was written. Any error is sticky: after a failed call every further
// call returns the same error, and the sink holds an incomplete document.
//
// A Writer is not safe for concurrent use; independent Writers share nothing
// but the read-only schema cache.
type Writer[T any] struct {
	enc *encoder
}

// NewWriter returns a Writer for T.
//
// When T is a concrete type its schema is derived immediately and tag
// capabilities are validated. When T is an interface type the schema is derived
// from the dynamic type of the first record.
func NewWriter[T any](sink io.Writer, opts ...Option) (*Writer[T], error) {
	if sink == nil {
		return nil, &SinkError{Op: "open", Cause: errNilSink}
	}
	cfg := newConfig(opts)
	enc := newEncoder(sink, cfg)

	typeName := reflect.TypeFor[T]().String()
	if reflect.TypeFor[T]().Kind() != reflect.Interface {
		s, err := SchemaFor[T]()
		if err != nil {
			return nil, err
		}
		if err := enc.setSchema(s); err != nil {
			return nil, err
		}
		typeName = s.TypeName
	}

	emitWriterCreated(context.Background(), cfg.contentType, typeName)
	return &Writer[T]{enc: enc}, nil
}

// Schema returns the schema in use, or nil if it has not been derived yet.
func (w *Writer[T]) Schema() *Schema {
	return w.enc.schema
}

// ContentType returns the MIME type of the output.
func (w *Writer[T]) ContentType() string {
	return w.enc.cfg.contentType
}

// WriteHeader writes the header row if it has not been written.
func (w *Writer[T]) WriteHeader() error {
	return w.enc.writeHeader()
}

// Write encodes one record as a data line.
func (w *Writer[T]) Write(record T) error {
	return w.enc.writeRecord(record)
}

// Flush writes buffered data to the sink.
func (w *Writer[T]) Flush() error {
	return w.enc.flush()
}

// Close writes the header if needed, flushes, and closes the sink when it
// implements io.Closer. Close is idempotent.
func (w *Writer[T]) Close() error {
	return w.enc.close()
}

// Rows returns the number of data lines written.
func (w *Writer[T]) Rows() int {
	return w.enc.rows
}

// Size returns the number of bytes handed to the buffer, header included.
func (w *Writer[T]) Size() int {
	return w.enc.size
}

// Error reports the first error encountered by the writer.
func (w *Writer[T]) Error() error {
	return w.enc.err
}

func (w *Writer[T]) typeName() string {
	if w.enc.schema != nil {
		return w.enc.schema.TypeName
	}
	return reflect.TypeFor[T]().String()
}
