package requests

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	j "github.com/goccy/go-json"

	"github.com/reoring/ledgerskema"
	"github.com/reoring/ledgerskema/rules"
)

// Request holds the fields shared by every RPC request.
type Request struct {
	Method     RequestMethod `json:"method,omitempty"`
	ID         any           `json:"id,omitempty"`
	APIVersion *uint32       `json:"api_version,omitempty"`
}

// validateFor checks the shared fields of a request whose method is fixed to
// want. An empty method is accepted and pinned by Normalize.
func (r Request) validateFor(want RequestMethod) ledgerskema.Issues {
	var iss ledgerskema.Issues
	if r.Method != "" && r.Method != want {
		iss = ledgerskema.AppendIssues(iss, ledgerskema.Root().Field("method").Issue(
			ledgerskema.CodeInvalidEnum, fmt.Sprintf("Method must be %q", want), "got", string(r.Method), "want", string(want)))
	}
	switch r.ID.(type) {
	case nil, string, float64, int, int64, uint32, uint64, j.Number:
	default:
		iss = ledgerskema.AppendIssues(iss, ledgerskema.Root().Field("id").Issue(ledgerskema.CodeInvalidType, "Request id must be a string or a number"))
	}
	return iss
}

func (r Request) pin(want RequestMethod) (Request, error) {
	if iss := r.validateFor(want); len(iss) > 0 {
		return r, iss
	}
	r.Method = want
	return r, nil
}

// LookupByLedger holds the fields of requests that can target a specific
// ledger version.
type LookupByLedger struct {
	LedgerHash  *string      `json:"ledger_hash,omitempty"`
	LedgerIndex *LedgerIndex `json:"ledger_index,omitempty"`
}

func (l LookupByLedger) Validate() ledgerskema.Issues {
	var iss ledgerskema.Issues
	if l.LedgerHash != nil {
		iss = append(iss, rules.Hex("ledger_hash", *l.LedgerHash, 64)...)
	}
	if l.LedgerIndex != nil && l.LedgerIndex.seq == 0 {
		iss = append(iss, rules.OneOf("ledger_index", l.LedgerIndex.shortcut)...)
	}
	return iss
}

// LedgerShortcut names a ledger by its state rather than its sequence.
type LedgerShortcut string

const (
	LedgerCurrent   LedgerShortcut = "current"
	LedgerClosed    LedgerShortcut = "closed"
	LedgerValidated LedgerShortcut = "validated"
)

var ledgerShortcuts = []LedgerShortcut{LedgerCurrent, LedgerClosed, LedgerValidated}

func (s LedgerShortcut) Valid() bool      { return ledgerskema.EnumContains(ledgerShortcuts, s) }
func (s LedgerShortcut) Values() []string { return ledgerskema.EnumValues(ledgerShortcuts) }

// LedgerIndex is either a ledger sequence number or a LedgerShortcut.
type LedgerIndex struct {
	seq      uint32
	shortcut LedgerShortcut
}

// LedgerSeq selects a ledger by sequence number.
func LedgerSeq(seq uint32) *LedgerIndex { return &LedgerIndex{seq: seq} }

// Ledger selects a ledger by shortcut.
func Ledger(s LedgerShortcut) *LedgerIndex { return &LedgerIndex{shortcut: s} }

// Seq returns the sequence number, if the index is numeric.
func (l LedgerIndex) Seq() (uint32, bool) { return l.seq, l.seq != 0 }

// Shortcut returns the shortcut, if the index is not numeric.
func (l LedgerIndex) Shortcut() (LedgerShortcut, bool) { return l.shortcut, l.seq == 0 }

func (l LedgerIndex) String() string {
	if l.seq != 0 {
		return strconv.FormatUint(uint64(l.seq), 10)
	}
	return string(l.shortcut)
}

func (l LedgerIndex) MarshalJSON() ([]byte, error) {
	if l.seq != 0 {
		return []byte(strconv.FormatUint(uint64(l.seq), 10)), nil
	}
	return j.Marshal(string(l.shortcut))
}

func (l *LedgerIndex) UnmarshalJSON(b []byte) error {
	var raw any
	dec := j.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	if err := l.CheckWire(raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case string:
		*l = LedgerIndex{shortcut: LedgerShortcut(v)}
	case j.Number:
		n, _ := strconv.ParseUint(string(v), 10, 32)
		*l = LedgerIndex{seq: uint32(n)}
	}
	return nil
}

// WireTypes lists the JSON types a ledger index may take.
func (LedgerIndex) WireTypes() []string { return []string{"integer", "string"} }

func (l *LedgerIndex) CheckWire(v any) error {
	switch t := v.(type) {
	case string:
		if !LedgerShortcut(t).Valid() {
			return fmt.Errorf("ledger_index must be a ledger sequence or one of current, closed, validated; got %q", t)
		}
		return nil
	case j.Number:
		n, err := strconv.ParseUint(string(t), 10, 32)
		if err != nil || n == 0 {
			return fmt.Errorf("ledger_index must be a positive 32-bit ledger sequence; got %s", t)
		}
		return nil
	default:
		return errors.New("ledger_index must be a number or a string")
	}
}

// NumberOrString holds identifiers the server accepts either as a JSON
// number or as a string.
type NumberOrString struct {
	text   string
	number bool
}

// Number returns a numeric identifier.
func Number(n uint64) NumberOrString {
	return NumberOrString{text: strconv.FormatUint(n, 10), number: true}
}

// Text returns a string identifier.
func Text(s string) NumberOrString { return NumberOrString{text: s} }

func (n NumberOrString) String() string { return n.text }

// IsNumber reports whether the identifier is numeric.
func (n NumberOrString) IsNumber() bool { return n.number }

func (n NumberOrString) MarshalJSON() ([]byte, error) {
	if n.number {
		return []byte(n.text), nil
	}
	return j.Marshal(n.text)
}

func (n *NumberOrString) UnmarshalJSON(b []byte) error {
	var raw any
	dec := j.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	if err := n.CheckWire(raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case string:
		*n = Text(v)
	case j.Number:
		*n = NumberOrString{text: string(v), number: true}
	}
	return nil
}

func (NumberOrString) WireTypes() []string { return []string{"integer", "string"} }

func (n *NumberOrString) CheckWire(v any) error {
	switch t := v.(type) {
	case string:
		return nil
	case j.Number:
		if _, err := strconv.ParseUint(string(t), 10, 64); err != nil {
			return fmt.Errorf("expected a non-negative integer; got %s", t)
		}
		return nil
	default:
		return errors.New("expected a number or a string")
	}
}
