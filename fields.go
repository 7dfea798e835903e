package ledgerskema

import (
	"reflect"
	"strconv"
	"strings"
	"sync"
)

// FieldSpec describes one wire field of a model struct, as declared by its
// json and ledger struct tags.
type FieldSpec struct {
	Name     string       // Wire key.
	Index    []int        // Index sequence for reflect.Value.FieldByIndex.
	Type     reflect.Type // Declared Go type (pointers included).
	Required bool         // ledger:"required"; the key must be present.
	NonZero  bool         // ledger:"nonzero"; the value must not be empty.
	MaxLen   int          // ledger:"maxlen=N"; 0 when unbounded.
}

// ResolveStructKey applies the repository-wide rule to resolve a struct field's
// external key.
// Priority: json tag name > field name; "-" disables the field.
func ResolveStructKey(sf reflect.StructField) string {
	if jt := sf.Tag.Get("json"); jt != "" {
		if jt == "-" {
			return "-"
		}
		if i := strings.IndexByte(jt, ','); i >= 0 {
			if jt[:i] == "" {
				return sf.Name
			}
			return jt[:i]
		}
		return jt
	}
	return sf.Name
}

var fieldCache sync.Map // reflect.Type -> []FieldSpec

// Fields lists the wire fields of a struct type. Anonymous embedded structs
// without a json name are flattened the same way encoding/json does it.
func Fields(t reflect.Type) []FieldSpec {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	if v, ok := fieldCache.Load(t); ok {
		return v.([]FieldSpec)
	}
	specs := collectFields(t, nil)
	fieldCache.Store(t, specs)
	return specs
}

func collectFields(t reflect.Type, prefix []int) []FieldSpec {
	var out []FieldSpec
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		idx := append(append([]int{}, prefix...), i)
		if sf.Anonymous && sf.Type.Kind() == reflect.Struct && sf.Tag.Get("json") == "" {
			out = append(out, collectFields(sf.Type, idx)...)
			continue
		}
		if !sf.IsExported() {
			continue
		}
		name := ResolveStructKey(sf)
		if name == "-" {
			continue
		}
		spec := FieldSpec{Name: name, Index: idx, Type: sf.Type}
		for _, opt := range strings.Split(sf.Tag.Get("ledger"), ",") {
			opt = strings.TrimSpace(opt)
			switch {
			case opt == "required":
				spec.Required = true
			case opt == "nonzero":
				spec.NonZero = true
			case strings.HasPrefix(opt, "maxlen="):
				if n, err := strconv.Atoi(strings.TrimPrefix(opt, "maxlen=")); err == nil {
					spec.MaxLen = n
				}
			}
		}
		out = append(out, spec)
	}
	return out
}

// FieldByName returns the spec for a wire key.
func FieldByName(t reflect.Type, name string) (FieldSpec, bool) {
	for _, f := range Fields(t) {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}
