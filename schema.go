package tabular

import (
	"context"
	"fmt"
	"reflect"

	"github.com/zoobzio/sentinel"
)

// Struct tags understood by the field extractor.
const (
	tagName   = "csv"
	tagEncode = "csv.encode"
	tagHash   = "csv.hash"
	tagMask   = "csv.mask"
	tagRedact = "csv.redact"
)

var fieldTags = []string{tagName, tagEncode, tagHash, tagMask, tagRedact}

func init() {
	for _, tag := range fieldTags {
		sentinel.Tag(tag)
	}
}

// Schema is the ordered column description of one record type.
// A Schema is immutable once derived and safe to share between goroutines.
type Schema struct {
	TypeName string
	Fields   []Field

	typ    reflect.Type // record type with pointers stripped
	static bool         // columns come from Tabular, not from struct fields
}

// Field is one column of a Schema.
type Field struct {
	// Name is written verbatim into the header row.
	Name string

	index []int
	plan  cellPlan
}

// cellPlan describes the optional transformations applied to a present cell.
type cellPlan struct {
	encode    string
	hash      HashAlgo
	mask      MaskType
	redact    string
	hasRedact bool
}

func (p cellPlan) empty() bool {
	return p.encode == "" && p.hash == "" && p.mask == "" && !p.hasRedact
}

// Names returns the header cells in column order.
func (s *Schema) Names() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return names
}

// Len returns the number of columns.
func (s *Schema) Len() int {
	return len(s.Fields)
}

// SchemaFor derives the schema of record type T.
// T may be a struct, a pointer to a struct, or any type implementing Tabular.
func SchemaFor[T any]() (*Schema, error) {
	rt := reflect.TypeFor[T]()
	if s, ok := lookup(rt); ok {
		return s, nil
	}
	if base := baseType(rt); base.Kind() != reflect.Struct || implementsTabular(base) {
		return schemaOf(rt, nil)
	}
	meta, err := sentinel.TryScan[T]()
	if err != nil {
		return schemaOf(rt, nil)
	}
	return schemaOf(rt, &meta)
}

// SchemaOf derives the schema of rt, reusing a cached result when available.
func SchemaOf(rt reflect.Type) (*Schema, error) {
	return schemaOf(rt, nil)
}

func schemaOf(rt reflect.Type, meta *sentinel.Metadata) (*Schema, error) {
	if rt == nil {
		return nil, &SchemaError{Err: ErrSchema, Type: "<nil>", Reason: "no type information"}
	}
	if s, ok := lookup(rt); ok {
		return s, nil
	}
	s, err := deriveSchema(rt, meta)
	if err != nil {
		return nil, err
	}
	s = store(rt, s)
	emitSchemaDerived(context.Background(), s.TypeName, len(s.Fields), s.static)
	return s, nil
}

func baseType(rt reflect.Type) reflect.Type {
	for rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	return rt
}

func deriveSchema(rt reflect.Type, meta *sentinel.Metadata) (*Schema, error) {
	base := baseType(rt)

	if implementsTabular(base) {
		return deriveStatic(base)
	}

	if base.Kind() != reflect.Struct {
		return nil, &SchemaError{
			Err:    ErrSchema,
			Type:   rt.String(),
			Reason: fmt.Sprintf("%s is not a struct", base.Kind()),
		}
	}

	s := &Schema{TypeName: base.String(), typ: base}
	if err := collectFields(s, base, nil, meta); err != nil {
		return nil, err
	}
	if len(s.Fields) == 0 {
		return nil, &SchemaError{Err: ErrSchema, Type: s.TypeName}
	}
	return s, nil
}

// collectFields appends the readable fields of rt in declaration order,
// flattening exported embedded structs in place. meta is the sentinel metadata
// of rt when the caller already holds it.
func collectFields(s *Schema, rt reflect.Type, parent []int, meta *sentinel.Metadata) error {
	if meta == nil || meta.ReflectType != rt {
		m := metadataOf(rt)
		meta = &m
	}
	for _, fm := range meta.Fields {
		if len(fm.Index) == 0 {
			continue
		}
		sf := rt.FieldByIndex(fm.Index)
		index := append(append([]int{}, parent...), fm.Index...)

		if sf.Anonymous && (fm.Kind == sentinel.KindStruct || fm.Kind == sentinel.KindPointer) {
			embedded := baseType(fm.ReflectType)
			if embedded.Kind() == reflect.Struct && !implementsTabular(embedded) {
				if err := collectFields(s, embedded, index, nil); err != nil {
					return err
				}
				continue
			}
		}

		name := fm.Name
		if alias, ok := fm.Tags[tagName]; ok {
			if alias == "-" {
				continue
			}
			name = alias
		}

		plan, err := planField(name, fm.Tags)
		if err != nil {
			return err
		}
		s.Fields = append(s.Fields, Field{Name: name, index: index, plan: plan})
	}
	return nil
}

func planField(name string, tags map[string]string) (cellPlan, error) {
	var plan cellPlan
	if val, ok := tags[tagEncode]; ok {
		plan.encode = val
	}
	if val, ok := tags[tagHash]; ok {
		if !IsValidHashAlgo(HashAlgo(val)) {
			return plan, newConfigError(ErrInvalidTag, val, name)
		}
		plan.hash = HashAlgo(val)
	}
	if val, ok := tags[tagMask]; ok {
		if !IsValidMaskType(MaskType(val)) {
			return plan, newConfigError(ErrInvalidTag, val, name)
		}
		plan.mask = MaskType(val)
	}
	if val, ok := tags[tagRedact]; ok {
		plan.redact = val
		plan.hasRedact = true
	}
	return plan, nil
}

// metadataKey is the name sentinel caches the metadata of rt under.
func metadataKey(rt reflect.Type) string {
	if rt.PkgPath() == "" {
		return rt.Name()
	}
	return rt.PkgPath() + "." + rt.Name()
}

// metadataOf returns sentinel metadata for rt. Types sentinel has not scanned,
// such as embedded structs from other modules, are read the way sentinel reads
// them: exported fields only, and only tags carrying a non-empty value.
func metadataOf(rt reflect.Type) sentinel.Metadata {
	if meta, ok := sentinel.Lookup(metadataKey(rt)); ok && meta.ReflectType == rt {
		return meta
	}
	return reflectMetadata(rt)
}

func reflectMetadata(rt reflect.Type) sentinel.Metadata {
	meta := sentinel.Metadata{
		ReflectType: rt,
		FQDN:        metadataKey(rt),
		TypeName:    rt.Name(),
		PackageName: rt.PkgPath(),
		Fields:      make([]sentinel.FieldMetadata, 0, rt.NumField()),
	}
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		fm := sentinel.FieldMetadata{
			Name:        sf.Name,
			Type:        sf.Type.String(),
			ReflectType: sf.Type,
			Index:       sf.Index,
			Tags:        fieldTagValues(sf.Tag),
		}
		switch sf.Type.Kind() {
		case reflect.Struct:
			fm.Kind = sentinel.KindStruct
		case reflect.Ptr:
			fm.Kind = sentinel.KindPointer
		case reflect.Slice, reflect.Array:
			fm.Kind = sentinel.KindSlice
		case reflect.Map:
			fm.Kind = sentinel.KindMap
		case reflect.Interface:
			fm.Kind = sentinel.KindInterface
		default:
			fm.Kind = sentinel.KindScalar
		}
		meta.Fields = append(meta.Fields, fm)
	}
	return meta
}

func fieldTagValues(tag reflect.StructTag) map[string]string {
	tags := make(map[string]string)
	for _, name := range fieldTags {
		if val := tag.Get(name); val != "" {
			tags[name] = val
		}
	}
	return tags
}

// Tabular lets a record type declare its columns and values directly,
// bypassing reflection over struct fields and any csv.* tags.
//
// Columns must return the same names, in the same order, for every value of
// the type; it is called once on a zero value when the schema is derived.
// Row must return exactly one Value per column.
//
//	func (p Person) Columns() []string { return []string{"Name", "Age"} }
//
//	func (p Person) Row() ([]tabular.Value, error) {
//	    return []tabular.Value{tabular.Text(p.Name), tabular.ValueOf(p.Age)}, nil
//	}
type Tabular interface {
	Columns() []string
	Row() ([]Value, error)
}

var tabularType = reflect.TypeFor[Tabular]()

func implementsTabular(rt reflect.Type) bool {
	if rt.Kind() == reflect.Interface {
		return false
	}
	return rt.Implements(tabularType) || reflect.PointerTo(rt).Implements(tabularType)
}

func deriveStatic(base reflect.Type) (s *Schema, err error) {
	defer func() {
		if r := recover(); r != nil {
			s, err = nil, &SchemaError{Err: ErrSchema, Type: base.String(), Reason: fmt.Sprintf("Columns panicked: %v", r)}
		}
	}()

	t := reflect.New(base).Interface().(Tabular)
	columns := t.Columns()
	if len(columns) == 0 {
		return nil, &SchemaError{Err: ErrSchema, Type: base.String()}
	}

	s = &Schema{
		TypeName: base.String(),
		Fields:   make([]Field, len(columns)),
		typ:      base,
		static:   true,
	}
	for i, name := range columns {
		s.Fields[i] = Field{Name: name}
	}
	return s, nil
}
