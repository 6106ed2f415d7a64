package tabular

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestEmitWriterCreated(_ *testing.T) {
	// Should not panic
	emitWriterCreated(context.Background(), ContentType, "TestType")
}

func TestEmitSchemaDerived(_ *testing.T) {
	emitSchemaDerived(context.Background(), "TestType", 3, false)
	emitSchemaDerived(context.Background(), "TestType", 2, true)
}

func TestEmitEncodeStart(_ *testing.T) {
	emitEncodeStart(context.Background(), ContentType, "TestType")
}

func TestEmitEncodeComplete_Success(_ *testing.T) {
	emitEncodeComplete(context.Background(), ContentType, "TestType", 5, 120, 100*time.Millisecond, nil)
}

func TestEmitEncodeComplete_Error(_ *testing.T) {
	emitEncodeComplete(context.Background(), ContentType, "TestType", 1, 20, 100*time.Millisecond, errors.New("test error"))
}

func TestSignalsDefined(t *testing.T) {
	signals := []any{
		SignalWriterCreated,
		SignalSchemaDerived,
		SignalEncodeStart,
		SignalEncodeComplete,
	}

	for i, sig := range signals {
		if sig == nil {
			t.Errorf("signal %d is nil", i)
		}
	}
}

func TestKeysDefined(t *testing.T) {
	keys := []any{
		KeyContentType,
		KeyTypeName,
		KeySource,
		KeyFieldCount,
		KeyRows,
		KeySize,
		KeyDuration,
		KeyError,
	}

	for i, key := range keys {
		if key == nil {
			t.Errorf("key %d is nil", i)
		}
	}
}
