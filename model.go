package ledgerskema

import (
	"reflect"
)

// Model is implemented by every schema object. Validate inspects the
// populated fields and returns every structural violation; an empty result
// means the object is well-formed.
type Model interface {
	Validate() Issues
}

// Normalizer is an optional hook run by the decoding constructors after the
// fields are populated. Models use it to pin fixed discriminators such as the
// request method or the transaction type.
type Normalizer[T any] interface {
	Normalize() (T, error)
}

// Enum is implemented by closed-set string tags.
type Enum interface {
	Valid() bool
	Values() []string
}

// Union is implemented by fields that accept either a JSON string or a JSON
// object. ObjectType is the struct type of the object form; the decoding
// constructors apply the closed-schema policy to it.
type Union interface {
	ObjectType() reflect.Type
}

// Errors runs the model's validator and returns the field/rule -> message
// mapping. An empty map means valid.
func Errors(m Model) map[string]string {
	return m.Validate().Map()
}

// IsValid reports whether the model has no validation issues.
func IsValid(m Model) bool { return len(m.Validate()) == 0 }

// Check returns the validation issues as an error, or nil.
func Check(m Model) error { return m.Validate().Err() }

// Equal reports structural equality of two schema objects.
func Equal[T any](a, b T) bool { return reflect.DeepEqual(a, b) }

// Update returns a modified copy of v. The original value is left untouched
// as long as fn replaces, rather than mutates, reference-typed fields.
func Update[T any](v T, fn func(*T)) T {
	c := v
	fn(&c)
	return c
}

// Ptr returns a pointer to a copy of v; handy for optional fields.
func Ptr[T any](v T) *T { return &v }

// CheckRequired reports every field tagged ledger:"nonzero" that holds its
// zero value (or an empty slice), and every field tagged ledger:"required"
// that is nil. A required number may legitimately be zero, so only its
// presence is checked, and that happens at construction. Models call
// CheckRequired from Validate so that values built with struct literals are
// held to the same rule as decoded ones.
func CheckRequired(v any) Issues {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}
	var iss Issues
	for _, f := range Fields(rv.Type()) {
		if !f.Required && !f.NonZero {
			continue
		}
		fv := rv.FieldByIndex(f.Index)
		if (f.NonZero && isEmptyValue(fv)) || isNil(fv) {
			iss = AppendIssues(iss, Root().Field(f.Name).Issue(CodeRequired, "This field is required."))
		}
	}
	return iss
}

func isNil(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Slice, reflect.Map, reflect.Pointer, reflect.Interface:
		return v.IsNil()
	}
	return false
}

func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return v.IsNil()
	default:
		return v.IsZero()
	}
}

// EnumValues renders a closed set of string tags.
func EnumValues[E ~string](set []E) []string {
	out := make([]string, len(set))
	for i, v := range set {
		out[i] = string(v)
	}
	return out
}

// EnumContains reports whether v is a member of set.
func EnumContains[E ~string](set []E, v E) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
