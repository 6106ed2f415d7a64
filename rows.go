package tabular

import (
	"context"
	"io"
	"iter"
	"time"
)

// RowWriter writes rows of already extracted values under a fixed header.
// It is the schema-free form of Writer, for sources whose columns are only
// known at run time, such as a database cursor.
//
// Cell transforms and codecs do not apply: values are escaped and written as
// given. A RowWriter is not safe for concurrent use.
type RowWriter struct {
	enc *encoder
}

// NewRowWriter returns a RowWriter whose header is names. An empty names
// yields a SchemaError before the sink is touched.
func NewRowWriter(sink io.Writer, names []string, opts ...Option) (*RowWriter, error) {
	if sink == nil {
		return nil, &SinkError{Op: "open", Cause: errNilSink}
	}
	if len(names) == 0 {
		return nil, &SchemaError{Err: ErrSchema, Type: "<rows>"}
	}

	s := &Schema{TypeName: "<rows>", Fields: make([]Field, len(names)), static: true}
	for i, name := range names {
		s.Fields[i] = Field{Name: name}
	}

	cfg := newConfig(opts)
	enc := newEncoder(sink, cfg)
	enc.schema = s

	emitWriterCreated(context.Background(), cfg.contentType, s.TypeName)
	return &RowWriter{enc: enc}, nil
}

// Schema returns the header description.
func (w *RowWriter) Schema() *Schema {
	return w.enc.schema
}

// WriteHeader writes the header row if it has not been written.
func (w *RowWriter) WriteHeader() error {
	return w.enc.writeHeader()
}

// WriteRow writes one data line. values must hold exactly one Value per
// column, otherwise a RowShapeError is returned and nothing is written.
func (w *RowWriter) WriteRow(values []Value) error {
	return w.enc.writeValues(values)
}

// Flush writes buffered data to the sink.
func (w *RowWriter) Flush() error {
	return w.enc.flush()
}

// Close writes the header if needed, flushes, and closes the sink when it
// implements io.Closer.
func (w *RowWriter) Close() error {
	return w.enc.close()
}

// Rows returns the number of data lines written.
func (w *RowWriter) Rows() int {
	return w.enc.rows
}

// Size returns the number of bytes handed to the buffer, header included.
func (w *RowWriter) Size() int {
	return w.enc.size
}

// EncodeRows writes names as the header followed by every row of rows.
// Source errors, cancellation and sink failures behave as in EncodeFrom.
func EncodeRows(ctx context.Context, sink io.Writer, names []string, rows iter.Seq2[[]Value, error], opts ...Option) (retErr error) {
	w, err := NewRowWriter(sink, names, opts...)
	if err != nil {
		return err
	}

	start := time.Now()
	cfg := w.enc.cfg
	emitEncodeStart(ctx, cfg.contentType, w.enc.schema.TypeName)
	defer func() {
		finishEncode(ctx, cfg, w.enc.schema.TypeName, w.Rows(), w.Size(), time.Since(start), retErr)
	}()

	retErr = ctx.Err()
	if retErr == nil {
		for values, srcErr := range rows {
			if srcErr != nil {
				retErr = srcErr
				break
			}
			if retErr = ctx.Err(); retErr != nil {
				break
			}
			if retErr = w.WriteRow(values); retErr != nil {
				break
			}
		}
	}

	if err := w.Close(); retErr == nil {
		retErr = err
	}
	return retErr
}
