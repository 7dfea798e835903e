package jsonschema

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/reoring/ledgerskema"
)

// WireTyped is implemented by values with a custom wire form that can be one
// of several JSON types.
type WireTyped interface {
	WireTypes() []string
}

var (
	unionType     = reflect.TypeOf((*ledgerskema.Union)(nil)).Elem()
	enumType      = reflect.TypeOf((*ledgerskema.Enum)(nil)).Elem()
	wireTypedType = reflect.TypeOf((*WireTyped)(nil)).Elem()
)

// Of exports the JSON Schema of the schema object T. The document mirrors the
// construction rules: closed objects, required fields, enum members and
// length bounds.
func Of[T any]() (*Schema, error) {
	var zero T
	return For(reflect.TypeOf(zero))
}

// For exports the JSON Schema of a Go type.
func For(t reflect.Type) (*Schema, error) {
	if t == nil {
		return nil, fmt.Errorf("jsonschema: nil type")
	}
	s, err := schemaOf(t)
	if err != nil {
		return nil, err
	}
	s.Schema = Draft
	if s.Title == "" {
		s.Title = t.Name()
	}
	return s, nil
}

func schemaOf(t reflect.Type) (*Schema, error) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	pt := reflect.PointerTo(t)
	switch {
	case pt.Implements(unionType):
		obj, err := schemaOf(reflect.New(t).Interface().(ledgerskema.Union).ObjectType())
		if err != nil {
			return nil, err
		}
		return &Schema{OneOf: []*Schema{{Type: "string"}, obj}}, nil
	case t.Kind() == reflect.String && pt.Implements(enumType):
		vals := reflect.New(t).Interface().(ledgerskema.Enum).Values()
		enum := make([]any, len(vals))
		for i, v := range vals {
			enum[i] = v
		}
		return &Schema{Type: "string", Enum: enum}, nil
	case pt.Implements(wireTypedType):
		types := reflect.New(t).Interface().(WireTyped).WireTypes()
		out := &Schema{}
		for _, wt := range types {
			out.OneOf = append(out.OneOf, &Schema{Type: wt})
		}
		return out, nil
	}

	switch t.Kind() {
	case reflect.Struct:
		return objectSchema(t)
	case reflect.String:
		return &Schema{Type: "string"}, nil
	case reflect.Bool:
		return &Schema{Type: "boolean"}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return &Schema{Type: "integer"}, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		zero := 0.0
		return &Schema{Type: "integer", Minimum: &zero}, nil
	case reflect.Float32, reflect.Float64:
		return &Schema{Type: "number"}, nil
	case reflect.Slice, reflect.Array:
		items, err := schemaOf(t.Elem())
		if err != nil {
			return nil, err
		}
		return &Schema{Type: "array", Items: items}, nil
	case reflect.Map:
		if t.Key().Kind() != reflect.String {
			return nil, fmt.Errorf("jsonschema: unsupported map key %s", t.Key())
		}
		return &Schema{Type: "object", AdditionalProperties: true}, nil
	case reflect.Interface:
		return &Schema{}, nil
	}
	return nil, fmt.Errorf("jsonschema: unsupported kind %s", t.Kind())
}

func objectSchema(t reflect.Type) (*Schema, error) {
	fields := ledgerskema.Fields(t)
	out := &Schema{
		Type:                 "object",
		Properties:           make(map[string]*Schema, len(fields)),
		AdditionalProperties: false,
	}
	for _, f := range fields {
		ps, err := schemaOf(f.Type)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", t.Name(), f.Name, err)
		}
		if f.MaxLen > 0 {
			n := f.MaxLen
			ps.MaxLength = &n
		}
		if f.NonZero && ps.Type == "string" {
			one := 1
			ps.MinLength = &one
		}
		out.Properties[f.Name] = ps
		if f.Required {
			out.Required = append(out.Required, f.Name)
		}
	}
	sort.Strings(out.Required)
	return out, nil
}
