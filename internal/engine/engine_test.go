package engine

import (
	"errors"
	"testing"

	j "github.com/goccy/go-json"
)

func TestDecode_BuildsGenericValue(t *testing.T) {
	v, iss, err := Decode([]byte(`{"a":1,"b":[true,null,"x"],"c":{"d":2.5}}`), Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(iss) != 0 {
		t.Fatalf("unexpected issues: %v", iss)
	}
	m, ok := v.(map[string]any)
	if !ok {
		t.Fatalf("expected object, got %T", v)
	}
	if m["a"] != j.Number("1") {
		t.Fatalf("expected json number 1, got %#v", m["a"])
	}
	arr, ok := m["b"].([]any)
	if !ok || len(arr) != 3 || arr[0] != true || arr[1] != nil || arr[2] != "x" {
		t.Fatalf("unexpected array: %#v", m["b"])
	}
}

func TestDecode_DuplicateKeyPaths(t *testing.T) {
	_, iss, err := Decode([]byte(`{"a":{"x":1,"x":2},"a":3}`), Options{OnDuplicate: DupWarn})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(iss) != 2 {
		t.Fatalf("expected 2 duplicate issues, got %v", iss)
	}
	if iss[0].Path != "/a/x" || iss[1].Path != "/a" {
		t.Fatalf("unexpected paths: %v", iss)
	}
}

func TestDecode_DuplicateKeyError(t *testing.T) {
	_, _, err := Decode([]byte(`{"a":1,"a":2}`), Options{OnDuplicate: DupError})
	var ie IssueError
	if !errors.As(err, &ie) {
		t.Fatalf("expected IssueError, got %v", err)
	}
	if ie.Code != "duplicate_key" || ie.Path != "/a" {
		t.Fatalf("unexpected issue: %+v", ie.SimpleIssue)
	}
}

func TestDecode_MaxDepth(t *testing.T) {
	_, _, err := Decode([]byte(`{"a":{"b":{"c":1}}}`), Options{MaxDepth: 2})
	var ie IssueError
	if !errors.As(err, &ie) || ie.Code != "too_deep" {
		t.Fatalf("expected too_deep, got %v", err)
	}
}

func TestDecode_TrailingData(t *testing.T) {
	if _, _, err := Decode([]byte(`{} {}`), Options{}); !errors.Is(err, ErrTrailingData) {
		t.Fatalf("expected ErrTrailingData, got %v", err)
	}
}
