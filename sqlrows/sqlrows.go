// Package sqlrows streams database/sql result sets as CSV.
//
// The header is the result set's column names and every row becomes one data
// line. SQL NULL is a null cell.
//
//	rows, err := db.QueryContext(ctx, "SELECT name, age FROM people")
//	if err != nil {
//	    return err
//	}
//	return sqlrows.Encode(ctx, w, rows)
package sqlrows

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"iter"
	"time"

	"github.com/zoobzio/tabular"
)

// Encode writes rows as CSV to sink and closes rows. Scan and iteration errors
// stop the encode and are returned; the sink is flushed and closed either way.
func Encode(ctx context.Context, sink io.Writer, rows *sql.Rows, opts ...tabular.Option) error {
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return fmt.Errorf("columns: %w", err)
	}
	return tabular.EncodeRows(ctx, sink, cols, Values(rows), opts...)
}

// Values yields the remaining rows of rows as cell values. It does not close
// rows.
func Values(rows *sql.Rows) iter.Seq2[[]tabular.Value, error] {
	return func(yield func([]tabular.Value, error) bool) {
		cols, err := rows.Columns()
		if err != nil {
			yield(nil, fmt.Errorf("columns: %w", err))
			return
		}

		raw := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range raw {
			ptrs[i] = &raw[i]
		}

		for rows.Next() {
			if err := rows.Scan(ptrs...); err != nil {
				yield(nil, fmt.Errorf("scan row: %w", err))
				return
			}
			values := make([]tabular.Value, len(raw))
			for i, v := range raw {
				values[i] = Cell(v)
			}
			if !yield(values, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(nil, fmt.Errorf("iterate: %w", err))
		}
	}
}

// Cell converts a scanned driver value. Byte slices are text and times are
// written in RFC 3339 form.
func Cell(v any) tabular.Value {
	switch val := v.(type) {
	case nil:
		return tabular.Null()
	case []byte:
		return tabular.Text(string(val))
	case time.Time:
		return tabular.Text(val.Format(time.RFC3339Nano))
	default:
		return tabular.ValueOf(val)
	}
}
