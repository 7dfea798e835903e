package ledgerskema

import (
	"errors"
	"reflect"
	"sort"
	"strconv"

	j "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	eng "github.com/reoring/ledgerskema/internal/engine"
)

var (
	unionType       = reflect.TypeOf((*Union)(nil)).Elem()
	enumType        = reflect.TypeOf((*Enum)(nil)).Elem()
	wireCheckerType = reflect.TypeOf((*WireChecker)(nil)).Elem()
	unmarshalerType = reflect.TypeOf((*interface{ UnmarshalJSON([]byte) error })(nil)).Elem()
)

// WireChecker is implemented by types with a custom wire form. CheckWire vets
// the generic decoded value (string, bool, json number, map, slice or nil)
// before the typed decode runs, so that failures carry a field path.
type WireChecker interface {
	CheckWire(v any) error
}

// FromJSON builds a T from a JSON object of named fields. It fails, with every
// problem collected into Issues, when the input is not well-formed JSON,
// repeats a key, names a field T does not declare (at any depth), omits a
// required field, or holds a value of the wrong type or outside an enum's
// closed set. On success the value's Normalize hook, if any, has been applied.
func FromJSON[T any](data []byte, opts ...DecodeOpt) (T, error) {
	var zero T
	opt := DefaultDecodeOpt()
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	raw, warns, err := eng.Decode(data, eng.Options{
		OnDuplicate: toEngineDup(opt.Strictness.OnDuplicateKey),
		MaxDepth:    opt.MaxDepth,
	})
	if err != nil {
		return zero, toIssues(err)
	}
	if opt.OnWarning != nil {
		for _, it := range fromEngineIssues(warns) {
			opt.OnWarning(it)
		}
	}
	if iss := checkShape(reflect.TypeOf(zero), raw, Root()); len(iss) > 0 {
		return zero, iss.Sorted()
	}
	var out T
	if err := j.Unmarshal(data, &out); err != nil {
		return zero, toIssues(err)
	}
	if n, ok := any(out).(Normalizer[T]); ok {
		return n.Normalize()
	}
	return out, nil
}

// FromMap builds a T from a map of named fields (wire keys).
func FromMap[T any](fields map[string]any, opts ...DecodeOpt) (T, error) {
	data, err := j.Marshal(fields)
	if err != nil {
		var zero T
		return zero, singleIssue(CodeParseError, err.Error())
	}
	return FromJSON[T](data, opts...)
}

// FromYAML builds a T from a YAML mapping of named fields. YAML itself
// rejects duplicate keys.
func FromYAML[T any](data []byte, opts ...DecodeOpt) (T, error) {
	var zero T
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return zero, singleIssue(CodeParseError, err.Error())
	}
	js, err := j.Marshal(doc)
	if err != nil {
		return zero, singleIssue(CodeParseError, err.Error())
	}
	return FromJSON[T](js, opts...)
}

// checkShape walks the generic value against the Go type and reports
// construction-time issues.
func checkShape(t reflect.Type, v any, at PathRef) Issues {
	if t == nil {
		return nil
	}
	if t.Kind() == reflect.Pointer {
		if v == nil {
			return nil
		}
		return checkShape(t.Elem(), v, at)
	}
	if reflect.PointerTo(t).Implements(unionType) {
		switch val := v.(type) {
		case string:
			return nil
		case map[string]any:
			ot := reflect.New(t).Interface().(Union).ObjectType()
			return checkShape(ot, val, at)
		default:
			return Issues{at.Issue(CodeInvalidType, "expected a string or an object", "expected", "string|object")}
		}
	}
	if t.Kind() == reflect.String && reflect.PointerTo(t).Implements(enumType) {
		s, ok := v.(string)
		if !ok {
			return Issues{at.Issue(CodeInvalidType, "expected a string", "expected", "string")}
		}
		ev := reflect.New(t)
		ev.Elem().SetString(s)
		e := ev.Interface().(Enum)
		if !e.Valid() {
			return Issues{at.Issue(CodeInvalidEnum, "must be one of the declared values", "got", s, "allowed", e.Values())}
		}
		return nil
	}
	if reflect.PointerTo(t).Implements(wireCheckerType) {
		if err := reflect.New(t).Interface().(WireChecker).CheckWire(v); err != nil {
			return Issues{at.Issue(CodeInvalidType, err.Error())}
		}
		return nil
	}
	if reflect.PointerTo(t).Implements(unmarshalerType) {
		// Custom wire forms validate themselves while unmarshaling.
		return nil
	}
	switch t.Kind() {
	case reflect.Struct:
		obj, ok := v.(map[string]any)
		if !ok {
			return Issues{at.Issue(CodeInvalidType, "expected an object", "expected", "object")}
		}
		return checkObject(t, obj, at)
	case reflect.String:
		if _, ok := v.(string); !ok {
			return Issues{at.Issue(CodeInvalidType, "expected a string", "expected", "string")}
		}
	case reflect.Bool:
		if _, ok := v.(bool); !ok {
			return Issues{at.Issue(CodeInvalidType, "expected a boolean", "expected", "boolean")}
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, ok := v.(j.Number)
		if !ok {
			return Issues{at.Issue(CodeInvalidType, "expected an integer", "expected", "integer")}
		}
		if _, err := strconv.ParseInt(string(n), 10, t.Bits()); err != nil {
			return Issues{at.Issue(CodeInvalidType, "expected an integer that fits "+t.Kind().String(), "expected", t.Kind().String(), "got", string(n))}
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, ok := v.(j.Number)
		if !ok {
			return Issues{at.Issue(CodeInvalidType, "expected an unsigned integer", "expected", "integer")}
		}
		if _, err := strconv.ParseUint(string(n), 10, t.Bits()); err != nil {
			return Issues{at.Issue(CodeInvalidType, "expected an unsigned integer that fits "+t.Kind().String(), "expected", t.Kind().String(), "got", string(n))}
		}
	case reflect.Slice:
		arr, ok := v.([]any)
		if !ok {
			return Issues{at.Issue(CodeInvalidType, "expected an array", "expected", "array")}
		}
		var iss Issues
		for i, el := range arr {
			iss = append(iss, checkShape(t.Elem(), el, at.Index(i))...)
		}
		return iss
	}
	// Interfaces (opaque pass-through values) and maps accept anything.
	return nil
}

func checkObject(t reflect.Type, obj map[string]any, at PathRef) Issues {
	var iss Issues
	known := make(map[string]struct{})
	for _, f := range Fields(t) {
		known[f.Name] = struct{}{}
		val, present := obj[f.Name]
		if !present || val == nil {
			if f.Required {
				iss = AppendIssues(iss, at.Field(f.Name).Issue(CodeRequired, "This field is required."))
			}
			continue
		}
		iss = append(iss, checkShape(f.Type, val, at.Field(f.Name))...)
	}
	unknown := make([]string, 0)
	for k := range obj {
		if _, ok := known[k]; !ok {
			unknown = append(unknown, k)
		}
	}
	sort.Strings(unknown)
	for _, k := range unknown {
		iss = AppendIssues(iss, at.Field(k).Issue(CodeUnknownKey, "unknown field '"+k+"'"))
	}
	return iss
}

func toIssues(err error) Issues {
	if err == nil {
		return nil
	}
	if ii, ok := AsIssues(err); ok {
		return ii
	}
	var ie eng.IssueError
	if errors.As(err, &ie) {
		return AppendIssues(nil, Issue{Code: ie.Code, Path: ie.Path, Message: ie.Message})
	}
	return singleIssue(CodeParseError, err.Error())
}
