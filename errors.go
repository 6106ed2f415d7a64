package tabular

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrSchema indicates a record type has no readable fields.
	ErrSchema = errors.New("no readable fields")

	// ErrExtraction indicates reading a field from a record failed.
	ErrExtraction = errors.New("extraction failed")

	// ErrRowShape indicates a record yielded a different number of values than its schema declares.
	ErrRowShape = errors.New("row shape mismatch")

	// ErrSink indicates the output sink rejected a write.
	ErrSink = errors.New("sink write failed")

	// ErrInvalidTag indicates a struct tag has an invalid format or value.
	ErrInvalidTag = errors.New("invalid tag")

	// ErrMissingHasher indicates a required hasher was not registered.
	ErrMissingHasher = errors.New("missing hasher")

	// ErrMissingMasker indicates a required masker was not registered.
	ErrMissingMasker = errors.New("missing masker")

	// ErrMissingCodec indicates a required cell codec was not registered.
	ErrMissingCodec = errors.New("missing cell codec")

	// ErrUnsupported indicates the operation is not provided by the CSV codec.
	ErrUnsupported = errors.New("unsupported operation")

	// ErrUnsupportedType indicates a value is not a sequence of records.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrMarshal indicates the codec failed to marshal output data.
	ErrMarshal = errors.New("marshal failed")

	// ErrUnmarshal indicates the codec failed to unmarshal input data.
	ErrUnmarshal = errors.New("unmarshal failed")
)

// SchemaError reports a record type that cannot be described as CSV columns.
type SchemaError struct {
	Err    error  // Underlying sentinel error (ErrSchema, ErrUnsupportedType)
	Type   string // Type name that failed
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("schema %s: %s: %s", e.Type, e.Err.Error(), e.Reason)
	}
	return fmt.Sprintf("schema %s: %s", e.Type, e.Err.Error())
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

// ExtractionError reports a failure reading a value out of a specific record.
// Row is zero-based over the data rows; Field is empty when the failure is not
// tied to one field.
type ExtractionError struct {
	Row   int
	Field string
	Cause error
}

func (e *ExtractionError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: row %d field %s: %v", ErrExtraction.Error(), e.Row, e.Field, e.Cause)
	}
	return fmt.Sprintf("%s: row %d: %v", ErrExtraction.Error(), e.Row, e.Cause)
}

func (e *ExtractionError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrExtraction}
	}
	return []error{ErrExtraction, e.Cause}
}

// RowShapeError reports a record whose value count differs from the schema.
type RowShapeError struct {
	Row  int
	Want int
	Got  int
}

func (e *RowShapeError) Error() string {
	return fmt.Sprintf("%s: row %d has %d values, schema has %d fields", ErrRowShape.Error(), e.Row, e.Got, e.Want)
}

func (e *RowShapeError) Unwrap() error {
	return ErrRowShape
}

// SinkError reports a write, flush or close rejected by the output sink.
type SinkError struct {
	Op    string // write, flush, close
	Cause error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrSink.Error(), e.Op, e.Cause)
}

func (e *SinkError) Unwrap() []error {
	return []error{ErrSink, e.Cause}
}

// ConfigError represents a writer configuration error.
// It wraps a sentinel error with additional context about the field and capability.
type ConfigError struct {
	Err        error  // Underlying sentinel error (ErrMissingHasher, ErrInvalidTag, etc.)
	Field      string // Field name that triggered the error
	Capability string // Algorithm, mask type or codec name that was missing/invalid
}

func (e *ConfigError) Error() string {
	if e.Field != "" && e.Capability != "" {
		return fmt.Sprintf("%s %q (field %s)", e.Err.Error(), e.Capability, e.Field)
	}
	if e.Capability != "" {
		return fmt.Sprintf("%s %q", e.Err.Error(), e.Capability)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s (field %s)", e.Err.Error(), e.Field)
	}
	return e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// CodecError represents a marshal/unmarshal error.
type CodecError struct {
	Err   error // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
	Cause error // Original error
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *CodecError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

func newConfigError(sentinel error, capability, field string) error {
	return &ConfigError{
		Err:        sentinel,
		Capability: capability,
		Field:      field,
	}
}

func newCodecError(sentinel error, cause error) error {
	return &CodecError{
		Err:   sentinel,
		Cause: cause,
	}
}
