// Package testing provides fixtures and sinks for tests of tabular.
package testing

import (
	"bytes"
	"errors"
	"strconv"

	"github.com/zoobzio/tabular"
)

// ErrSinkFailed is returned by FailingSink once its budget is spent.
var ErrSinkFailed = errors.New("sink failed")

// Person is the canonical two-column record. A nil Age is a null cell.
type Person struct {
	Name string
	Age  *int
}

// Age returns a pointer to n.
func Age(n int) *int { return &n }

// People returns the sample rows used across tests:
//
//	Name,Age
//	Ann,30
//	"Bo, Jr.",
func People() []Person {
	return []Person{
		{Name: "Ann", Age: Age(30)},
		{Name: "Bo, Jr."},
	}
}

// Account is a record exercising every csv tag.
type Account struct {
	ID       int
	Email    string            `csv:"E-mail" csv.mask:"email"`
	Password string            `csv.hash:"sha256"`
	SSN      string            `csv.mask:"ssn"`
	Note     string            `csv.redact:"[REDACTED]"`
	Meta     map[string]string `csv.encode:"json"`
	Internal string            `csv:"-"`
}

// Audit is embedded by Event to exercise flattening.
type Audit struct {
	CreatedBy string
	Revision  int
}

// Event flattens Audit between its own fields.
type Event struct {
	ID int
	*Audit
	Kind string
}

// Quad has four nullable columns.
type Quad struct {
	A, B, C, D *string
}

// Pair declares its columns directly.
type Pair struct {
	Key   string
	Value int
}

// Columns implements tabular.Tabular.
func (Pair) Columns() []string { return []string{"key", "value"} }

// Row implements tabular.Tabular.
func (p Pair) Row() ([]tabular.Value, error) {
	return []tabular.Value{tabular.Text(p.Key), tabular.Text(strconv.Itoa(p.Value))}, nil
}

// ShortRow declares three columns but yields two values.
type ShortRow struct{}

// Columns implements tabular.Tabular.
func (ShortRow) Columns() []string { return []string{"a", "b", "c"} }

// Row implements tabular.Tabular.
func (ShortRow) Row() ([]tabular.Value, error) {
	return []tabular.Value{tabular.Text("1"), tabular.Text("2")}, nil
}

// FailingSink accepts Budget bytes and then rejects every write.
type FailingSink struct {
	Budget int
	buf    bytes.Buffer
}

// Write implements io.Writer.
func (s *FailingSink) Write(p []byte) (int, error) {
	if len(p) > s.Budget {
		n := s.Budget
		s.buf.Write(p[:n])
		s.Budget = 0
		return n, ErrSinkFailed
	}
	s.Budget -= len(p)
	return s.buf.Write(p)
}

// String returns what the sink accepted.
func (s *FailingSink) String() string { return s.buf.String() }

// ClosingSink records whether Close was called.
type ClosingSink struct {
	bytes.Buffer
	Closed   bool
	CloseErr error
}

// Close implements io.Closer.
func (s *ClosingSink) Close() error {
	s.Closed = true
	return s.CloseErr
}
