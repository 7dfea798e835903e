package i18n

import (
	"testing"

	"github.com/reoring/ledgerskema"
)

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T(ledgerskema.CodeInvalidType, nil); msg != "invalid type" {
		t.Fatalf("expected a human message, got %q", msg)
	}

	SetLanguage("ja")
	t.Cleanup(func() { SetLanguage("en") })
	if msg := T(ledgerskema.CodeExclusiveChoice, nil); msg != "排他的なフィールドです" {
		t.Fatalf("expected japanese message, got %q", msg)
	}
	if msg := T("no_such_code", nil); msg != "no_such_code" {
		t.Fatalf("unknown codes pass through, got %q", msg)
	}
}

func TestTranslator_UnknownLanguageFallsBack(t *testing.T) {
	SetLanguage("fr")
	if msg := T(ledgerskema.CodeRequired, nil); msg != "required field missing" {
		t.Fatalf("expected english fallback, got %q", msg)
	}
}

func TestDescribe(t *testing.T) {
	it := ledgerskema.Root().Field("URI").Issue(ledgerskema.CodeTooLong, "Must not be longer than 270 characters", "max", 270, "got", 271)
	want := "URI: too long (max 270): Must not be longer than 270 characters"
	if got := Describe(it); got != want {
		t.Fatalf("got %q want %q", got, want)
	}

	rule := ledgerskema.RuleIssue("Bridge", ledgerskema.CodePairedFields, "Must include both `bridge` and `bridge_account`.")
	want = "Bridge: fields must be set together: Must include both `bridge` and `bridge_account`."
	if got := Describe(rule); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestLanguages(t *testing.T) {
	got := Languages()
	if len(got) != 2 || got[0] != "en" || got[1] != "ja" {
		t.Fatalf("unexpected languages %v", got)
	}
}

type upper struct{}

func (upper) Message(code string, _ map[string]string) string { return "X:" + code }

func TestSetTranslator(t *testing.T) {
	SetTranslator(upper{})
	t.Cleanup(func() { SetTranslator(nil) })
	if got := T("required", nil); got != "X:required" {
		t.Fatalf("custom translator not used: %q", got)
	}
}
