package tabular

import (
	"errors"
	"testing"
	"time"
)

type stringerValue struct{ v string }

func (s stringerValue) String() string { return "<" + s.v + ">" }

type panicStringer struct{}

func (panicStringer) String() string { panic("no text") }

func TestValueOf(t *testing.T) {
	n := 42
	var nilInt *int
	var nilStringer *stringerValue
	var nilErr error

	tests := []struct {
		name     string
		in       any
		wantNull bool
		want     string
	}{
		{"nil", nil, true, ""},
		{"string", "Ann", false, "Ann"},
		{"empty string", "", false, ""},
		{"int", 30, false, "30"},
		{"float", 1.5, false, "1.5"},
		{"bool", true, false, "true"},
		{"pointer", &n, false, "42"},
		{"nil pointer", nilInt, true, ""},
		{"stringer", stringerValue{"x"}, false, "<x>"},
		{"pointer to stringer", &stringerValue{"y"}, false, "<y>"},
		{"nil stringer pointer", nilStringer, true, ""},
		{"error", errors.New("bad"), false, "bad"},
		{"nil error", nilErr, true, ""},
		{"nil slice", []int(nil), true, ""},
		{"slice", []int{1, 2}, false, "[1 2]"},
		{"nil map", map[string]int(nil), true, ""},
		{"duration", 2 * time.Second, false, "2s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ValueOf(tt.in)
			if v.IsNull() != tt.wantNull {
				t.Fatalf("IsNull() = %v, want %v", v.IsNull(), tt.wantNull)
			}
			if v.String() != tt.want {
				t.Errorf("String() = %q, want %q", v.String(), tt.want)
			}
		})
	}
}

func TestValue_Zero(t *testing.T) {
	var v Value
	if !v.IsNull() {
		t.Error("zero Value should be null")
	}
	if Text("").IsNull() {
		t.Error("Text(\"\") should be present")
	}
}

func TestRender_PanickingStringer(t *testing.T) {
	_, _, err := render(panicStringer{})
	if err == nil {
		t.Fatal("render() should report a panicking String method")
	}

	// ValueOf falls back to fmt, which reports the panic in the text.
	if v := ValueOf(panicStringer{}); v.IsNull() {
		t.Error("ValueOf() should still produce a present value")
	}
}
