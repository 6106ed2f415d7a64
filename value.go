package tabular

import (
	"fmt"
	"reflect"
)

// Value is a single cell before escaping: either present text or absent (null).
// The zero Value is absent.
type Value struct {
	text    string
	present bool
}

// Text returns a present value.
func Text(s string) Value {
	return Value{text: s, present: true}
}

// Null returns an absent value. Absent values render as empty cells.
func Null() Value {
	return Value{}
}

// ValueOf converts v using its default text conversion.
// A nil v, or a nil pointer, interface, map, slice, func or channel, is absent.
// Panics raised by a String or Error method are reported as fmt does.
func ValueOf(v any) Value {
	text, ok, err := render(v)
	if err != nil {
		return Text(fmt.Sprint(v))
	}
	if !ok {
		return Null()
	}
	return Text(text)
}

// IsNull reports whether the value is absent.
func (v Value) IsNull() bool {
	return !v.present
}

// String returns the cell text; absent values return "".
func (v Value) String() string {
	return v.text
}

// render produces the text of v. ok is false when v is absent.
// A String or Error method that panics is returned as err.
func render(v any) (text string, ok bool, err error) {
	if v == nil {
		return "", false, nil
	}
	return renderValue(reflect.ValueOf(v))
}

func renderValue(rv reflect.Value) (text string, ok bool, err error) {
	for {
		if !rv.IsValid() || isNil(rv) {
			return "", false, nil
		}
		if rv.CanInterface() {
			switch x := rv.Interface().(type) {
			case fmt.Stringer:
				return callText(x.String)
			case error:
				return callText(x.Error)
			}
		}
		if rv.Kind() != reflect.Pointer && rv.Kind() != reflect.Interface {
			break
		}
		rv = rv.Elem()
	}
	return fmt.Sprint(rv.Interface()), true, nil
}

func callText(fn func() string) (text string, ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, ok, err = "", false, fmt.Errorf("panic: %v", r)
		}
	}()
	return fn(), true, nil
}

func isNil(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
