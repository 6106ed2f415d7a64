package tabular

import "testing"

func TestEscapeCell(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Ann", "Ann"},
		{"empty", "", ""},
		{"comma", "b,c", `"b,c"`},
		{"newline", "d\ne", "d e"},
		{"crlf", "d\r\ne", "d  e"},
		{"comma and newline", "x,\ny", "\"x, y\""},
		{"quote untouched", `say "hi"`, `say "hi"`},
		{"leading space", " a ", " a "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escapeCell(tt.in); got != tt.want {
				t.Errorf("escapeCell(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestAppendRow(t *testing.T) {
	tests := []struct {
		name   string
		values []Value
		want   string
	}{
		{
			name:   "mixed",
			values: []Value{Text("a"), Text("b,c"), Text("d\ne"), Null()},
			want:   "a,\"b,c\",d e,\n",
		},
		{
			name:   "all null",
			values: []Value{Null(), Null(), Null(), Null()},
			want:   ",,,\n",
		},
		{
			name:   "single",
			values: []Value{Text("x")},
			want:   "x\n",
		},
		{
			name:   "empty text is not null but renders the same",
			values: []Value{Text(""), Null()},
			want:   ",\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(appendRow(nil, tt.values)); got != tt.want {
				t.Errorf("appendRow() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAppendRow_Idempotent(t *testing.T) {
	values := []Value{Text("a"), Text("b,c"), Null()}

	first := string(appendRow(nil, values))
	second := string(appendRow(nil, values))
	if first != second {
		t.Errorf("appendRow() not stable: %q then %q", first, second)
	}
}

func TestAppendHeader_Verbatim(t *testing.T) {
	got := string(appendHeader(nil, []string{"Name", "a,b", "Age"}))
	if want := "Name,a,b,Age\n"; got != want {
		t.Errorf("appendHeader() = %q, want %q", got, want)
	}
}

func TestAppendRow_Reuse(t *testing.T) {
	buf := make([]byte, 0, 8)
	buf = appendRow(buf[:0], []Value{Text("first")})
	buf = appendRow(buf[:0], []Value{Text("x")})
	if got := string(buf); got != "x\n" {
		t.Errorf("appendRow() = %q, want %q", got, "x\n")
	}
}
