package tabular

import (
	"context"
	"io"
	"iter"
	"slices"
	"time"
)

// Encode writes the header and one line per record of records to sink, in
// iteration order, then flushes and closes the sink.
//
// The sequence is consumed once, forward only. On any failure the encode stops,
// the sink is still flushed and closed, and the error is returned; whatever was
// already written stays in the sink and must be treated as incomplete.
func Encode[T any](ctx context.Context, sink io.Writer, records iter.Seq[T], opts ...Option) error {
	return EncodeFrom(ctx, sink, func(yield func(T, error) bool) {
		for record := range records {
			if !yield(record, nil) {
				return
			}
		}
	}, opts...)
}

// EncodeAll encodes a slice of records. An empty slice still produces the header
// when T is a concrete record type.
func EncodeAll[T any](ctx context.Context, sink io.Writer, records []T, opts ...Option) error {
	return Encode(ctx, sink, slices.Values(records), opts...)
}

// EncodeFrom encodes records from a fallible source such as a database cursor.
// A non-nil error yielded by the source stops the encode and is returned as is.
// Cancellation of ctx is checked between records and returned as ctx.Err().
func EncodeFrom[T any](ctx context.Context, sink io.Writer, records iter.Seq2[T, error], opts ...Option) (retErr error) {
	w, err := NewWriter[T](sink, opts...)
	if err != nil {
		return err
	}

	start := time.Now()
	emitEncodeStart(ctx, w.ContentType(), w.typeName())
	defer func() {
		finishEncode(ctx, w.enc.cfg, w.typeName(), w.Rows(), w.Size(), time.Since(start), retErr)
	}()

	retErr = ctx.Err()
	if retErr == nil {
		for record, srcErr := range records {
			if srcErr != nil {
				retErr = srcErr
				break
			}
			if retErr = ctx.Err(); retErr != nil {
				break
			}
			if retErr = w.Write(record); retErr != nil {
				break
			}
		}
	}

	if err := w.Close(); retErr == nil {
		retErr = err
	}
	return retErr
}

// finishEncode reports a completed encode to capitan and to the configured
// observer, if any.
func finishEncode(ctx context.Context, cfg *config, typeName string, rows, size int, duration time.Duration, err error) {
	emitEncodeComplete(ctx, cfg.contentType, typeName, rows, size, duration, err)
	if cfg.observer != nil {
		cfg.observer.ObserveEncode(Stats{
			ContentType: cfg.contentType,
			TypeName:    typeName,
			Rows:        rows,
			Size:        size,
			Duration:    duration,
			Err:         err,
		})
	}
}
