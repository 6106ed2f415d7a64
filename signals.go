package tabular

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for tabular events.
var (
	SignalWriterCreated  = capitan.NewSignal("tabular.writer.created", "Writer instantiated")
	SignalSchemaDerived  = capitan.NewSignal("tabular.schema.derived", "Record schema derived and cached")
	SignalEncodeStart    = capitan.NewSignal("tabular.encode.start", "Encode operation beginning")
	SignalEncodeComplete = capitan.NewSignal("tabular.encode.complete", "Encode operation finished")
)

// Keys for typed event data.
var (
	KeyContentType = capitan.NewStringKey("content_type")
	KeyTypeName    = capitan.NewStringKey("type_name")
	KeySource      = capitan.NewStringKey("source")
	KeyFieldCount  = capitan.NewIntKey("field_count")
	KeyRows        = capitan.NewIntKey("rows")
	KeySize        = capitan.NewIntKey("size")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyError       = capitan.NewErrorKey("error")
)

// Schema sources reported under KeySource.
const (
	sourceStruct  = "struct"
	sourceTabular = "tabular"
)

func emitWriterCreated(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalWriterCreated,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

func emitSchemaDerived(ctx context.Context, typeName string, fields int, static bool) {
	source := sourceStruct
	if static {
		source = sourceTabular
	}
	capitan.Emit(ctx, SignalSchemaDerived,
		KeyTypeName.Field(typeName),
		KeySource.Field(source),
		KeyFieldCount.Field(fields),
	)
}

func emitEncodeStart(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalEncodeStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitEncodeComplete reports a finished encode. Failed encodes are emitted at
// error severity with the partial row and byte counts.
func emitEncodeComplete(ctx context.Context, contentType, typeName string, rows, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeyRows.Field(rows),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalEncodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalEncodeComplete, fields...)
	}
}
