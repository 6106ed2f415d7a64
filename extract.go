package tabular

import (
	"encoding/base64"
	"errors"
	"fmt"
	"reflect"
)

var errNilRecord = errors.New("nil record")

// Extract reads the values of record in column order using the default
// configuration. record must be of the schema's type or a pointer to it.
func (s *Schema) Extract(record any) ([]Value, error) {
	return s.extract(0, record, defaultConfig)
}

var defaultConfig = newConfig(nil)

// extract reads one record. row is only used for error reporting.
func (s *Schema) extract(row int, record any, cfg *config) ([]Value, error) {
	if s.static {
		return s.extractStatic(row, record)
	}

	rv := reflect.ValueOf(record)
	for rv.IsValid() && rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			break
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() || rv.Kind() == reflect.Pointer {
		return nil, &ExtractionError{Row: row, Cause: errNilRecord}
	}

	if rv.Type() != s.typ {
		other, err := SchemaOf(rv.Type())
		if err != nil {
			return nil, &ExtractionError{Row: row, Cause: err}
		}
		if len(other.Fields) != len(s.Fields) {
			return nil, &ExtractionError{
				Row:   row,
				Cause: fmt.Errorf("type %s has %d fields, schema %s has %d", other.TypeName, len(other.Fields), s.TypeName, len(s.Fields)),
			}
		}
		return other.extract(row, record, cfg)
	}

	values := make([]Value, len(s.Fields))
	for i, f := range s.Fields {
		v, err := f.read(rv, cfg)
		if err != nil {
			return nil, &ExtractionError{Row: row, Field: f.Name, Cause: err}
		}
		values[i] = v
	}
	return values, nil
}

func (s *Schema) extractStatic(row int, record any) (values []Value, err error) {
	t, ok := record.(Tabular)
	if !ok {
		rv := reflect.ValueOf(record)
		if !rv.IsValid() {
			return nil, &ExtractionError{Row: row, Cause: errNilRecord}
		}
		// Row declared on the pointer receiver of a value record.
		p := reflect.New(rv.Type())
		p.Elem().Set(rv)
		if t, ok = p.Interface().(Tabular); !ok {
			return nil, &ExtractionError{Row: row, Cause: fmt.Errorf("%s does not implement Tabular", rv.Type())}
		}
	}
	if rv := reflect.ValueOf(t); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil, &ExtractionError{Row: row, Cause: errNilRecord}
	}

	defer func() {
		if r := recover(); r != nil {
			values, err = nil, &ExtractionError{Row: row, Cause: fmt.Errorf("panic: %v", r)}
		}
	}()
	values, err = t.Row()
	if err != nil {
		return nil, &ExtractionError{Row: row, Cause: err}
	}
	return values, nil
}

// read renders one field of rv, applying the field's cell plan.
func (f Field) read(rv reflect.Value, cfg *config) (Value, error) {
	fv, ok := fieldByIndex(rv, f.index)
	if !ok {
		return Null(), nil
	}

	var (
		text    string
		present bool
		err     error
	)
	if f.plan.encode != "" {
		text, present, err = encodeCell(fv, cfg.codecs[f.plan.encode])
	} else {
		text, present, err = renderValue(fv)
	}
	if err != nil || !present {
		return Null(), err
	}
	if f.plan.empty() {
		return Text(text), nil
	}
	return f.plan.apply(text, cfg)
}

// fieldByIndex walks index from rv. ok is false when an embedded pointer on
// the path is nil.
func fieldByIndex(rv reflect.Value, index []int) (reflect.Value, bool) {
	for i, x := range index {
		if i > 0 && rv.Kind() == reflect.Pointer {
			if rv.IsNil() {
				return reflect.Value{}, false
			}
			rv = rv.Elem()
		}
		rv = rv.Field(x)
	}
	return rv, true
}

func encodeCell(fv reflect.Value, codec Codec) (string, bool, error) {
	if isNil(fv) {
		return "", false, nil
	}
	if codec == nil {
		return "", false, ErrMissingCodec
	}
	if !fv.CanInterface() {
		return "", false, fmt.Errorf("unexported value of type %s", fv.Type())
	}
	data, err := codec.Marshal(fv.Interface())
	if err != nil {
		return "", false, newCodecError(ErrMarshal, err)
	}
	if isBinary(codec) {
		return base64.StdEncoding.EncodeToString(data), true, nil
	}
	return string(data), true, nil
}

// apply runs hash, mask and redact over a present cell, in that order.
func (p cellPlan) apply(text string, cfg *config) (Value, error) {
	if p.hash != "" {
		h, ok := cfg.hashers[p.hash]
		if !ok {
			return Null(), newConfigError(ErrMissingHasher, string(p.hash), "")
		}
		hashed, err := h.Hash([]byte(text))
		if err != nil {
			return Null(), fmt.Errorf("hash: %w", err)
		}
		text = hashed
	}
	if p.mask != "" {
		m, ok := cfg.maskers[p.mask]
		if !ok {
			return Null(), newConfigError(ErrMissingMasker, string(p.mask), "")
		}
		text = m.Mask(text)
	}
	if p.hasRedact {
		text = p.redact
	}
	return Text(text), nil
}
