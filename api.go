// Package tabular encodes sequences of uniformly typed records as CSV.
//
// A document is one header line naming the record's fields, followed by one
// line per record in sequence order. Every line ends in '\n' and cells are
// separated by ','. Neither is configurable.
//
// # Schemas
//
// The columns of a record type are its exported struct fields in declaration
// order, with embedded structs flattened in place. Schemas are derived once per
// type and cached; the cache is safe for concurrent use.
//
//	type Person struct {
//	    Name string
//	    Age  *int
//	}
//
// Types that should not be described by reflection implement Tabular and
// declare their columns and values directly.
//
// # Cells
//
// A nil pointer, interface, map, slice, func or channel is a null cell and is
// written as nothing. Any other value is converted with its String or Error
// method, or with fmt's default formatting. A present cell containing ',' is
// wrapped in '"'; then every '\r' and '\n' is replaced by a space. Header names
// are written verbatim.
//
//	Name,Age
//	Ann,30
//	"Bo, Jr.",
//
// # Tags
//
// Field behaviour is declared with struct tags:
//
//	csv:"-"              - Exclude the field
//	csv:"Alias"          - Header name for the field
//	csv.encode:"json"    - Render the value through a registered cell codec
//	csv.hash:"sha256"    - Replace the cell with its hash
//	csv.mask:"email"     - Mask the cell
//	csv.redact:"***"     - Replace the cell with a literal
//
// Transformations run on present cells only, in the order encode, hash, mask,
// redact. Cell codecs are registered with WithCellCodec; the json, xml, yaml,
// msgpack and bson subpackages provide them. Binary codecs are written base64
// encoded.
//
// # Usage
//
//	err := tabular.EncodeAll(ctx, w, people)
//
//	// or incrementally
//	cw, _ := tabular.NewWriter[Person](w)
//	for _, p := range people {
//	    if err := cw.Write(p); err != nil {
//	        return err
//	    }
//	}
//	return cw.Close()
//
// Sources whose columns are only known at run time write values directly:
//
//	rw, _ := tabular.NewRowWriter(w, []string{"Name", "Age"})
//	_ = rw.WriteRow([]tabular.Value{tabular.Text("Ann"), tabular.Null()})
//	return rw.Close()
//
// # Errors
//
// Failures are reported as *SchemaError, *ExtractionError, *RowShapeError,
// *SinkError and *ConfigError, matching ErrSchema, ErrExtraction, ErrRowShape,
// ErrSink and the configuration sentinels under errors.Is. Nothing is retried
// and written output is never retracted.
package tabular

// Codec provides content-type aware marshaling.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/json").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}

// BinaryCodec is implemented by codecs whose output is not text.
// Cells produced by a binary codec are base64 encoded.
type BinaryCodec interface {
	Codec
	Binary() bool
}

func isBinary(c Codec) bool {
	b, ok := c.(BinaryCodec)
	return ok && b.Binary()
}
