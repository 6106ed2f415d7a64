package testing

import (
	"errors"
	"testing"
)

func TestPeople(t *testing.T) {
	people := People()
	if len(people) != 2 {
		t.Fatalf("People() length = %d, want 2", len(people))
	}
	if people[0].Age == nil || *people[0].Age != 30 {
		t.Error("first person should be 30")
	}
	if people[1].Age != nil {
		t.Error("second person should have no age")
	}
}

func TestFailingSink(t *testing.T) {
	s := &FailingSink{Budget: 4}

	if n, err := s.Write([]byte("ab")); n != 2 || err != nil {
		t.Fatalf("Write() = %d, %v", n, err)
	}
	n, err := s.Write([]byte("cdef"))
	if n != 2 || !errors.Is(err, ErrSinkFailed) {
		t.Errorf("Write() = %d, %v; want 2, ErrSinkFailed", n, err)
	}
	if got := s.String(); got != "abcd" {
		t.Errorf("String() = %q, want %q", got, "abcd")
	}
}

func TestClosingSink(t *testing.T) {
	s := &ClosingSink{}
	if err := s.Close(); err != nil {
		t.Errorf("Close() error: %v", err)
	}
	if !s.Closed {
		t.Error("Close() should mark the sink closed")
	}
}

func TestPair(t *testing.T) {
	row, err := Pair{Key: "k", Value: 7}.Row()
	if err != nil {
		t.Fatalf("Row() error: %v", err)
	}
	if len(row) != len(Pair{}.Columns()) {
		t.Errorf("Row() length = %d, want %d", len(row), len(Pair{}.Columns()))
	}
	if row[1].String() != "7" {
		t.Errorf("Row()[1] = %q, want 7", row[1].String())
	}
}
