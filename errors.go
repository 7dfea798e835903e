package ledgerskema

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType   = "invalid_type"
	CodeRequired      = "required"
	CodeUnknownKey    = "unknown_key"
	CodeDuplicateKey  = "duplicate_key"
	CodeTooLong       = "too_long"
	CodeTooShort      = "too_short"
	CodeInvalidEnum   = "invalid_enum"
	CodeInvalidFlags  = "invalid_flags"
	CodeInvalidFormat = "invalid_format"
	CodeParseError    = "parse_error"
	CodeTooDeep       = "too_deep"
	// Cross-field rules
	CodeExclusiveChoice = "exclusive_choice"
	CodePairedFields    = "paired_fields"
	CodeInvalidAmount   = "invalid_amount"
	CodeConflict        = "conflict"
)

// Sentinel conditions for construction-time failures. Issues matches them
// through errors.Is when it carries an issue with the corresponding code.
var (
	ErrMissingRequiredField = errors.New("ledgerskema: missing required field")
	ErrUnknownField         = errors.New("ledgerskema: unknown field")
)

// Issue represents a single validation entry.
type Issue struct {
	Path    string // JSON Pointer (for example: /directory/owner).
	Code    string // One of the codes listed above.
	Message string
	// Rule names the cross-field rule that produced the issue ("LedgerEntry",
	// "Bridge"). Empty for single-field issues.
	Rule string
	// Params carries structured parameters (e.g., {"max":270, "got":271}).
	Params map[string]any
}

// Key is the name an issue is reported under in Issues.Map: the rule name
// when set, otherwise the path without its leading slash.
func (it Issue) Key() string {
	if it.Rule != "" {
		return it.Rule
	}
	if it.Path == "" || it.Path == "/" {
		return "/"
	}
	return strings.TrimPrefix(it.Path, "/")
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. unknown_key at /foo
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Is reports whether the collection carries an issue matching one of the
// construction sentinels.
func (iss Issues) Is(target error) bool {
	var code string
	switch target {
	case ErrMissingRequiredField:
		code = CodeRequired
	case ErrUnknownField:
		code = CodeUnknownKey
	default:
		return false
	}
	return iss.Has(code)
}

// Has reports whether any issue carries the given code.
func (iss Issues) Has(code string) bool {
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}

// Map projects the issues onto a field-or-rule name -> message mapping. When
// two issues share a key the first one wins.
func (iss Issues) Map() map[string]string {
	out := make(map[string]string, len(iss))
	for _, it := range iss {
		k := it.Key()
		if _, ok := out[k]; ok {
			continue
		}
		out[k] = it.Message
	}
	return out
}

// Under re-roots every issue beneath the given field name, so that issues of
// a nested composite key show up at /parent/child.
func (iss Issues) Under(field string) Issues { return iss.At(Root().Field(field)) }

// At re-roots every issue beneath p.
func (iss Issues) At(p PathRef) Issues {
	if len(iss) == 0 {
		return nil
	}
	base := p.Pointer()
	if base == "/" {
		return append(Issues(nil), iss...)
	}
	out := make(Issues, len(iss))
	for i, it := range iss {
		if it.Path == "" || it.Path == "/" {
			it.Path = base
		} else {
			it.Path = base + it.Path
		}
		out[i] = it
	}
	return out
}

// Sorted returns a copy ordered by path, then rule, then code.
func (iss Issues) Sorted() Issues {
	if len(iss) == 0 {
		return nil
	}
	out := append(Issues(nil), iss...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Path != out[j].Path {
			return out[i].Path < out[j].Path
		}
		if out[i].Rule != out[j].Rule {
			return out[i].Rule < out[j].Rule
		}
		return out[i].Code < out[j].Code
	})
	return out
}

// Err returns the issues as an error, or nil when there are none.
func (iss Issues) Err() error {
	if len(iss) == 0 {
		return nil
	}
	return iss
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

func singleIssue(code, msg string) Issues { return AppendIssues(nil, Issue{Path: "/", Code: code, Message: msg}) }
