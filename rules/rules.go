package rules

import (
	"encoding/hex"
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/reoring/ledgerskema"
)

// Rule is a typed validation rule over a schema object.
type Rule[T any] = func(T) ledgerskema.Issues

// And executes all rules and concatenates Issues. Every rule runs; violations
// are collected rather than short-circuited.
func And[T any](rules ...Rule[T]) Rule[T] {
	return func(v T) ledgerskema.Issues {
		var out ledgerskema.Issues
		for _, r := range rules {
			if r == nil {
				continue
			}
			if iss := r(v); len(iss) > 0 {
				out = append(out, iss...)
			}
		}
		return out
	}
}

// When runs rules only when pred holds.
func When[T any](pred func(T) bool, rules ...Rule[T]) Rule[T] {
	inner := And(rules...)
	return func(v T) ledgerskema.Issues {
		if !pred(v) {
			return nil
		}
		return inner(v)
	}
}

// Nested validates an optional nested model and re-roots its issues under
// field.
func Nested[T any, M ledgerskema.Model](field string, get func(T) *M) Rule[T] {
	return func(v T) ledgerskema.Issues {
		m := get(v)
		if m == nil {
			return nil
		}
		return (*m).Validate().Under(field)
	}
}

// Run evaluates the rules against v and returns the issues in a
// deterministic order.
func Run[T any](v T, rules ...Rule[T]) ledgerskema.Issues {
	return And(rules...)(v).Sorted()
}

// ------- leaf checks -------

// ExactlyOne reports a violation under rule unless exactly one of the
// alternatives is populated.
func ExactlyOne(rule, msg string, set ...bool) ledgerskema.Issues {
	n := count(set)
	if n == 1 {
		return nil
	}
	it := ledgerskema.RuleIssue(rule, ledgerskema.CodeExclusiveChoice, msg)
	it.Params = map[string]any{"populated": n, "alternatives": len(set)}
	return ledgerskema.Issues{it}
}

// AtMostOne reports a violation under rule when more than one alternative is
// populated.
func AtMostOne(rule, msg string, set ...bool) ledgerskema.Issues {
	n := count(set)
	if n <= 1 {
		return nil
	}
	it := ledgerskema.RuleIssue(rule, ledgerskema.CodeExclusiveChoice, msg)
	it.Params = map[string]any{"populated": n, "alternatives": len(set)}
	return ledgerskema.Issues{it}
}

// Paired reports a violation under rule when exactly one of a and b is
// populated.
func Paired(rule, msg string, a, b bool) ledgerskema.Issues {
	if a == b {
		return nil
	}
	return ledgerskema.Issues{ledgerskema.RuleIssue(rule, ledgerskema.CodePairedFields, msg)}
}

// MaxLength bounds a string field by its number of characters.
func MaxLength(field, value string, max int) ledgerskema.Issues {
	n := utf8.RuneCountInString(value)
	if n <= max {
		return nil
	}
	return ledgerskema.Issues{ledgerskema.Root().Field(field).Issue(
		ledgerskema.CodeTooLong,
		fmt.Sprintf("Must not be longer than %d characters", max),
		"max", max, "got", n,
	)}
}

// FlagsWithin reports bits of flags that are not part of allowed.
func FlagsWithin(field string, flags, allowed uint32) ledgerskema.Issues {
	extra := flags &^ allowed
	if extra == 0 {
		return nil
	}
	return ledgerskema.Issues{ledgerskema.Root().Field(field).Issue(
		ledgerskema.CodeInvalidFlags,
		fmt.Sprintf("Unrecognized flag bits 0x%08X", extra),
		"unknown", extra, "allowed", allowed,
	)}
}

// OneOf reports an enum-typed field holding a value outside its closed set.
func OneOf(field string, v ledgerskema.Enum) ledgerskema.Issues {
	if v.Valid() {
		return nil
	}
	return ledgerskema.Issues{ledgerskema.Root().Field(field).Issue(
		ledgerskema.CodeInvalidEnum,
		"Must be one of: "+strings.Join(v.Values(), ", "),
		"got", fmt.Sprint(v), "allowed", v.Values(),
	)}
}

// Hex reports a field that is not hexadecimal. When size is positive the
// value must also be exactly size hex characters long.
func Hex(field, value string, size int) ledgerskema.Issues {
	p := ledgerskema.Root().Field(field)
	if size > 0 && len(value) != size {
		return ledgerskema.Issues{p.Issue(ledgerskema.CodeInvalidFormat, fmt.Sprintf("Must be %d hexadecimal characters", size), "size", size, "got", len(value))}
	}
	if _, err := hex.DecodeString(value); err != nil {
		return ledgerskema.Issues{p.Issue(ledgerskema.CodeInvalidFormat, "Must be a hexadecimal string")}
	}
	return nil
}

// Len reports a slice field whose length differs from n.
func Len(field string, got, n int) ledgerskema.Issues {
	if got == n {
		return nil
	}
	code := ledgerskema.CodeTooShort
	if got > n {
		code = ledgerskema.CodeTooLong
	}
	return ledgerskema.Issues{ledgerskema.Root().Field(field).Issue(code, fmt.Sprintf("Must contain exactly %d items", n), "want", n, "got", got)}
}

func count(set []bool) int {
	n := 0
	for _, s := range set {
		if s {
			n++
		}
	}
	return n
}

// Bounded applies MaxLength to every string field of v that declares a
// ledger:"maxlen=N" tag.
func Bounded(v any) ledgerskema.Issues {
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
	var out ledgerskema.Issues
	for _, f := range ledgerskema.Fields(rv.Type()) {
		if f.MaxLen <= 0 {
			continue
		}
		fv := rv.FieldByIndex(f.Index)
		if fv.Kind() == reflect.Pointer {
			if fv.IsNil() {
				continue
			}
			fv = fv.Elem()
		}
		if fv.Kind() != reflect.String {
			continue
		}
		out = append(out, MaxLength(f.Name, fv.String(), f.MaxLen)...)
	}
	return out
}
