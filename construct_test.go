package ledgerskema

import (
	"errors"
	"reflect"
	"testing"

	eng "github.com/reoring/ledgerskema/internal/engine"
)

type testColor string

func (c testColor) Valid() bool      { return c == "red" || c == "blue" }
func (c testColor) Values() []string { return []string{"red", "blue"} }

type testKey struct {
	Owner string `json:"owner" ledger:"required,nonzero"`
	Seq   uint32 `json:"seq" ledger:"required"`
}

func (k testKey) Validate() Issues { return CheckRequired(k) }

// testRef is a string-or-object union.
type testRef struct {
	ID  string
	Key *testKey
}

func (testRef) ObjectType() reflect.Type { return reflect.TypeOf(testKey{}) }

type testBase struct {
	Kind string `json:"kind,omitempty"`
}

type testModel struct {
	testBase
	Name   string     `json:"name" ledger:"required,nonzero,maxlen=5"`
	Color  *testColor `json:"color,omitempty"`
	Tags   []string   `json:"tags,omitempty"`
	Key    *testKey   `json:"key,omitempty"`
	Ref    *testRef   `json:"ref,omitempty"`
	Opaque any        `json:"opaque,omitempty"`
	Count  int8       `json:"count,omitempty"`
}

func (m testModel) Validate() Issues { return CheckRequired(m) }

func (m testModel) Normalize() (testModel, error) {
	if m.Kind == "" {
		m.Kind = "test"
	}
	return m, nil
}

func paths(iss Issues) []string {
	out := make([]string, len(iss))
	for i, it := range iss {
		out[i] = it.Path
	}
	return out
}

func TestFromJSON_OK(t *testing.T) {
	m, err := FromJSON[testModel]([]byte(`{"name":"abc","color":"red","tags":["x"],"key":{"owner":"o","seq":1},"opaque":{"any":[1,2]}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Kind != "test" {
		t.Fatalf("Normalize not applied: %q", m.Kind)
	}
	if m.Color == nil || *m.Color != "red" || m.Key == nil || m.Key.Seq != 1 {
		t.Fatalf("unexpected value %+v", m)
	}
}

func TestFromJSON_CollectsIssues(t *testing.T) {
	_, err := FromJSON[testModel]([]byte(`{"color":"green","tags":[1],"key":{"seq":"1","x":true},"extra":null,"count":300}`))
	iss, ok := AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues, got %v", err)
	}
	want := []string{"/color", "/count", "/extra", "/key/owner", "/key/seq", "/key/x", "/name", "/tags/0"}
	if got := paths(iss); !reflect.DeepEqual(got, want) {
		t.Fatalf("paths: got %v want %v", got, want)
	}
	if !errors.Is(err, ErrUnknownField) || !errors.Is(err, ErrMissingRequiredField) {
		t.Fatalf("sentinels must match: %v", err)
	}
}

func TestFromJSON_RequiredNull(t *testing.T) {
	_, err := FromJSON[testModel]([]byte(`{"name":null}`))
	if !errors.Is(err, ErrMissingRequiredField) {
		t.Fatalf("null must count as missing: %v", err)
	}
}

func TestFromJSON_Union(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{name: "string", in: `{"name":"a","ref":"ID1"}`},
		{name: "object", in: `{"name":"a","ref":{"owner":"o","seq":2}}`},
		{name: "object unknown", in: `{"name":"a","ref":{"owner":"o","seq":2,"z":1}}`, want: []string{"/ref/z"}},
		{name: "number", in: `{"name":"a","ref":3}`, want: []string{"/ref"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			iss := checkShapeJSON(t, tc.in)
			if got := paths(iss); len(tc.want) != len(got) || (len(got) > 0 && !reflect.DeepEqual(got, tc.want)) {
				t.Fatalf("got %v want %v", got, tc.want)
			}
		})
	}
}

// checkShapeJSON runs the shape check alone; testRef has no unmarshaler.
func checkShapeJSON(t *testing.T, in string) Issues {
	t.Helper()
	raw, _, err := eng.Decode([]byte(in), eng.Options{})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	return checkShape(reflect.TypeOf(testModel{}), raw, Root()).Sorted()
}

func TestFromJSON_Duplicates(t *testing.T) {
	in := []byte(`{"name":"a","name":"b"}`)
	_, err := FromJSON[testModel](in)
	iss, ok := AsIssues(err)
	if !ok || iss[0].Code != CodeDuplicateKey || iss[0].Path != "/name" {
		t.Fatalf("expected duplicate_key at /name, got %v", err)
	}

	var warned Issues
	opt := DefaultDecodeOpt()
	opt.Strictness.OnDuplicateKey = Warn
	opt.OnWarning = func(it Issue) { warned = append(warned, it) }
	m, err := FromJSON[testModel](in, opt)
	if err != nil {
		t.Fatalf("warn mode must decode: %v", err)
	}
	if m.Name != "b" {
		t.Fatalf("last value wins, got %q", m.Name)
	}
	if len(warned) != 1 || warned[0].Code != CodeDuplicateKey || warned[0].Path != "/name" {
		t.Fatalf("expected one duplicate_key warning at /name, got %v", warned)
	}

	warned = nil
	opt.Strictness.OnDuplicateKey = Ignore
	if _, err := FromJSON[testModel](in, opt); err != nil || len(warned) != 0 {
		t.Fatalf("ignore mode is silent: %v %v", err, warned)
	}
}

func TestFromJSON_Malformed(t *testing.T) {
	for _, in := range []string{``, `{"name":`, `{"name":"a"} {}`, `[1,2]`} {
		if _, err := FromJSON[testModel]([]byte(in)); err == nil {
			t.Fatalf("%q: expected an error", in)
		}
	}
	opt := DefaultDecodeOpt()
	opt.MaxDepth = 2
	_, err := FromJSON[testModel]([]byte(`{"name":"a","opaque":{"a":{"b":1}}}`), opt)
	iss, _ := AsIssues(err)
	if len(iss) != 1 || iss[0].Code != CodeTooDeep {
		t.Fatalf("expected too_deep, got %v", err)
	}
}

func TestFromMapAndYAML(t *testing.T) {
	m, err := FromMap[testModel](map[string]any{"name": "abc", "tags": []string{"a"}})
	if err != nil || m.Name != "abc" || len(m.Tags) != 1 {
		t.Fatalf("FromMap: %+v %v", m, err)
	}
	m, err = FromYAML[testModel]([]byte("name: abc\ncolor: blue\n"))
	if err != nil || *m.Color != "blue" {
		t.Fatalf("FromYAML: %+v %v", m, err)
	}
	if _, err := FromYAML[testModel]([]byte("name: [")); err == nil {
		t.Fatalf("expected a parse error")
	}
	if _, err := FromYAML[testModel]([]byte("nme: abc\n")); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected unknown field, got %v", err)
	}
}
