package ledgerskema

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
)

func TestIssues_Error(t *testing.T) {
	iss := Issues{
		{Path: "/a", Code: CodeRequired},
		{Path: "/b", Code: CodeUnknownKey},
		{Path: "/c", Code: CodeTooLong},
		{Path: "/d", Code: CodeInvalidType},
	}
	want := "required at /a; unknown_key at /b; too_long at /c; ... (total 4)"
	if got := iss.Error(); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
	if (Issues{}).Err() != nil {
		t.Fatalf("empty Issues must not be an error")
	}
}

func TestIssues_IsAndAs(t *testing.T) {
	var err error = Issues{{Path: "/uri", Code: CodeRequired}}
	wrapped := fmt.Errorf("build: %w", err)
	if !errors.Is(wrapped, ErrMissingRequiredField) {
		t.Fatalf("expected ErrMissingRequiredField")
	}
	if errors.Is(wrapped, ErrUnknownField) {
		t.Fatalf("unexpected ErrUnknownField")
	}
	iss, ok := AsIssues(wrapped)
	if !ok || len(iss) != 1 || iss[0].Path != "/uri" {
		t.Fatalf("AsIssues: %v %v", iss, ok)
	}
	if _, ok := AsIssues(errors.New("plain")); ok {
		t.Fatalf("plain errors are not Issues")
	}
}

func TestIssues_Map(t *testing.T) {
	iss := Issues{
		RuleIssue("LedgerEntry", CodeExclusiveChoice, "Must choose exactly one data to query"),
		Root().Field("URI").Issue(CodeTooLong, "Must not be longer than 270 characters"),
		Root().Field("URI").Issue(CodeInvalidFormat, "second issue on URI"),
		Root().Field("escrow").Field("owner").Issue(CodeRequired, "This field is required."),
	}
	want := map[string]string{
		"LedgerEntry":  "Must choose exactly one data to query",
		"URI":          "Must not be longer than 270 characters",
		"escrow/owner": "This field is required.",
	}
	if got := iss.Map(); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestIssues_UnderAndAt(t *testing.T) {
	iss := Issues{
		{Path: "/", Code: CodeExclusiveChoice, Rule: "AffectedNode"},
		{Path: "/owner", Code: CodeRequired},
	}
	got := iss.Under("escrow")
	if got[0].Path != "/escrow" || got[1].Path != "/escrow/owner" || got[0].Rule != "AffectedNode" {
		t.Fatalf("Under: %v", got)
	}
	got = iss.At(Root().Field("Memos").Index(2))
	if got[1].Path != "/Memos/2/owner" {
		t.Fatalf("At: %v", got)
	}
	if iss[1].Path != "/owner" {
		t.Fatalf("original must be untouched")
	}
	if Issues(nil).Under("x") != nil {
		t.Fatalf("nil stays nil")
	}
}

func TestIssues_Sorted(t *testing.T) {
	iss := Issues{
		{Path: "/b", Code: CodeRequired},
		{Path: "/", Rule: "LedgerEntry", Code: CodeExclusiveChoice},
		{Path: "/", Rule: "Bridge", Code: CodePairedFields},
		{Path: "/a", Code: CodeTooLong},
	}
	got := iss.Sorted()
	want := []string{"Bridge", "LedgerEntry", "a", "b"}
	for i, it := range got {
		if it.Key() != want[i] {
			t.Fatalf("order %d: got %s want %s", i, it.Key(), want[i])
		}
	}
	if iss[0].Path != "/b" {
		t.Fatalf("Sorted must copy")
	}
}

func TestPathRef(t *testing.T) {
	p := Root().Field("a/b").Field("c~d").Index(3)
	if got := p.Pointer(); got != "/a~1b/c~0d/3" {
		t.Fatalf("got %s", got)
	}
	if At("/x/y").Field("z").Pointer() != "/x/y/z" {
		t.Fatalf("At")
	}
	it := Root().Field("URI").Issue(CodeTooLong, "msg", "max", 270)
	if it.Params["max"] != 270 {
		t.Fatalf("params: %v", it.Params)
	}
}
