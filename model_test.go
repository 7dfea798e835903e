package ledgerskema

import (
	"errors"
	"reflect"
	"testing"
)

func TestCheckRequired(t *testing.T) {
	iss := CheckRequired(testModel{})
	if len(iss) != 1 || iss[0].Path != "/name" || iss[0].Code != CodeRequired {
		t.Fatalf("got %v", iss)
	}
	if iss := CheckRequired(&testKey{Owner: "o", Seq: 1}); len(iss) != 0 {
		t.Fatalf("pointer to a complete key: %v", iss)
	}
	if CheckRequired((*testKey)(nil)) != nil || CheckRequired(3) != nil {
		t.Fatalf("nil pointers and non-structs have nothing to check")
	}
}

type presenceModel struct {
	Index  uint32         `json:"index" ledger:"required"`
	Nodes  []string       `json:"nodes" ledger:"required"`
	Fields map[string]any `json:"fields" ledger:"required"`
	Owner  string         `json:"owner" ledger:"required,nonzero"`
}

func TestCheckRequired_PresenceAndNonZero(t *testing.T) {
	// Zero numbers and empty collections count as present.
	ok := presenceModel{Nodes: []string{}, Fields: map[string]any{}, Owner: "o"}
	if iss := CheckRequired(ok); len(iss) != 0 {
		t.Fatalf("zero values that were supplied: %v", iss)
	}
	iss := CheckRequired(presenceModel{})
	got := make([]string, 0, len(iss))
	for _, it := range iss {
		got = append(got, it.Path)
	}
	if !reflect.DeepEqual(got, []string{"/nodes", "/fields", "/owner"}) {
		t.Fatalf("got %v", got)
	}
}

func TestFromJSON_RequiredZeroValues(t *testing.T) {
	m, err := FromJSON[presenceModel]([]byte(`{"index":0,"nodes":[],"fields":{},"owner":"o"}`))
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	if iss := CheckRequired(m); len(iss) != 0 {
		t.Fatalf("validate: %v", iss)
	}
	_, err = FromJSON[presenceModel]([]byte(`{"nodes":[],"fields":{},"owner":"o"}`))
	iss, _ := AsIssues(err)
	if !errors.Is(err, ErrMissingRequiredField) || len(iss) != 1 || iss[0].Path != "/index" {
		t.Fatalf("missing index: %v", err)
	}
}

func TestErrorsAndIsValid(t *testing.T) {
	if IsValid(testModel{}) {
		t.Fatalf("missing name must be invalid")
	}
	if got := Errors(testModel{}); !reflect.DeepEqual(got, map[string]string{"name": "This field is required."}) {
		t.Fatalf("Errors: %v", got)
	}
	if Check(testModel{Name: "a"}) != nil {
		t.Fatalf("Check must return nil for a valid model")
	}
}

func TestEqualAndUpdate(t *testing.T) {
	a := testModel{Name: "a", Tags: []string{"x"}, Key: &testKey{Owner: "o", Seq: 1}}
	b := testModel{Name: "a", Tags: []string{"x"}, Key: &testKey{Owner: "o", Seq: 1}}
	if !Equal(a, b) {
		t.Fatalf("structurally equal values must compare equal")
	}
	c := Update(a, func(m *testModel) {
		m.Name = "c"
		m.Color = Ptr(testColor("red"))
	})
	if a.Name != "a" || a.Color != nil {
		t.Fatalf("Update changed the original: %+v", a)
	}
	if c.Name != "c" || *c.Color != "red" || Equal(a, c) {
		t.Fatalf("unexpected copy %+v", c)
	}
}

func TestFields(t *testing.T) {
	fs := Fields(reflect.TypeOf(testModel{}))
	names := make([]string, len(fs))
	for i, f := range fs {
		names[i] = f.Name
	}
	want := []string{"kind", "name", "color", "tags", "key", "ref", "opaque", "count"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("got %v want %v", names, want)
	}
	f, ok := FieldByName(reflect.TypeOf(testModel{}), "name")
	if !ok || !f.Required || !f.NonZero || f.MaxLen != 5 {
		t.Fatalf("name spec: %+v", f)
	}
}

func TestEnumHelpers(t *testing.T) {
	set := []testColor{"red", "blue"}
	if !EnumContains(set, "blue") || EnumContains(set, "green") {
		t.Fatalf("EnumContains")
	}
	if got := EnumValues(set); !reflect.DeepEqual(got, []string{"red", "blue"}) {
		t.Fatalf("EnumValues: %v", got)
	}
}
