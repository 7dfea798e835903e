package ledgerskema

// Severity expresses the severity level for issues.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// Strictness configures enforcement for duplicate keys.
type Strictness struct {
	OnDuplicateKey Severity // Warn or Error (duplicate JSON keys).
}

// DecodeOpt bundles options for the decoding constructors. Unknown keys are
// always rejected; the schemas are closed.
type DecodeOpt struct {
	Strictness Strictness
	MaxDepth   int // 0 means unlimited.
	// OnWarning receives the issues that did not fail decoding, such as
	// duplicate keys under Warn.
	OnWarning func(Issue)
}

// DefaultDecodeOpt rejects duplicate keys and caps nesting at 32 levels.
func DefaultDecodeOpt() DecodeOpt {
	return DecodeOpt{Strictness: Strictness{OnDuplicateKey: Error}, MaxDepth: 32}
}
