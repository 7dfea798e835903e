package engine

import (
	"bytes"
	"errors"
	"io"
	"strconv"
	"strings"

	j "github.com/goccy/go-json"
)

// DuplicateStrictness controls duplicate key handling.
type DuplicateStrictness int

const (
	DupIgnore DuplicateStrictness = iota
	DupWarn
	DupError
)

// Options controls decoding enforcement.
type Options struct {
	OnDuplicate DuplicateStrictness
	MaxDepth    int // 0 means unlimited.
}

// SimpleIssue is a minimal issue representation used by internal helpers.
type SimpleIssue struct {
	Code    string
	Path    string
	Message string
}

// IssueError is a lightweight error carrying a SimpleIssue.
type IssueError struct{ SimpleIssue }

func (e IssueError) Error() string { return e.SimpleIssue.Message }

// ErrTrailingData is returned when a document is followed by more tokens.
var ErrTrailingData = errors.New("unexpected data after top-level value")

// Decode reads one JSON document into a generic value built from
// map[string]any, []any, json.Number, string, bool and nil. Duplicate keys are
// reported with their JSON Pointer; with DupError they abort decoding.
func Decode(data []byte, opt Options) (any, []SimpleIssue, error) {
	dec := j.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	d := &decoder{dec: dec, opt: opt}
	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return nil, nil, io.ErrUnexpectedEOF
		}
		return nil, nil, err
	}
	v, err := d.value(tok, "", 0)
	if err != nil {
		return nil, d.issues, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, d.issues, ErrTrailingData
	}
	return v, d.issues, nil
}

type decoder struct {
	dec    *j.Decoder
	opt    Options
	issues []SimpleIssue
}

func (d *decoder) value(tok j.Token, path string, depth int) (any, error) {
	switch v := tok.(type) {
	case j.Delim:
		if d.opt.MaxDepth > 0 && depth+1 > d.opt.MaxDepth {
			return nil, IssueError{SimpleIssue{Code: "too_deep", Path: normalizeIssuePath(path), Message: "max depth " + strconv.Itoa(d.opt.MaxDepth) + " exceeded"}}
		}
		switch v {
		case '{':
			return d.object(path, depth+1)
		case '[':
			return d.array(path, depth+1)
		}
		return nil, io.ErrUnexpectedEOF
	case string, bool, nil:
		return v, nil
	case j.Number:
		return v, nil
	case float64:
		return j.Number(strconv.FormatFloat(v, 'g', -1, 64)), nil
	default:
		return nil, io.ErrUnexpectedEOF
	}
}

func (d *decoder) object(path string, depth int) (any, error) {
	m := make(map[string]any)
	for {
		tok, err := d.dec.Token()
		if err != nil {
			return nil, err
		}
		if delim, ok := tok.(j.Delim); ok && delim == '}' {
			return m, nil
		}
		key, ok := tok.(string)
		if !ok {
			return nil, io.ErrUnexpectedEOF
		}
		child := joinJSONPointer(path, key)
		if _, dup := m[key]; dup && d.opt.OnDuplicate != DupIgnore {
			si := SimpleIssue{Code: "duplicate_key", Path: normalizeIssuePath(child), Message: "key '" + key + "' duplicated"}
			if d.opt.OnDuplicate == DupError {
				return nil, IssueError{si}
			}
			d.issues = append(d.issues, si)
		}
		vt, err := d.dec.Token()
		if err != nil {
			return nil, err
		}
		v, err := d.value(vt, child, depth)
		if err != nil {
			return nil, err
		}
		m[key] = v
	}
}

func (d *decoder) array(path string, depth int) (any, error) {
	arr := []any{}
	for i := 0; ; i++ {
		tok, err := d.dec.Token()
		if err != nil {
			return nil, err
		}
		if delim, ok := tok.(j.Delim); ok && delim == ']' {
			return arr, nil
		}
		v, err := d.value(tok, joinJSONPointer(path, strconv.Itoa(i)), depth)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
}

func normalizeIssuePath(p string) string {
	if p == "" {
		return "/"
	}
	return p
}

var jsonPointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func joinJSONPointer(base, token string) string {
	return base + "/" + jsonPointerEscaper.Replace(token)
}
