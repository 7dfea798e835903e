package transactions

import (
	"fmt"

	"github.com/reoring/ledgerskema"
	"github.com/reoring/ledgerskema/amounts"
	"github.com/reoring/ledgerskema/rules"
)

// RuleTransaction is the rule name of cross-field issues in the common
// transaction fields.
const RuleTransaction = "Transaction"

// Transaction holds the fields common to every transaction.
type Transaction struct {
	Account            string               `json:"Account" ledger:"required,nonzero"`
	TransactionType    TransactionType      `json:"TransactionType,omitempty"`
	Fee                *string              `json:"Fee,omitempty"`
	Sequence           *uint32              `json:"Sequence,omitempty"`
	AccountTxnID       *string              `json:"AccountTxnID,omitempty"`
	Flags              uint32               `json:"Flags,omitempty"`
	LastLedgerSequence *uint32              `json:"LastLedgerSequence,omitempty"`
	Memos              []MemoEntry          `json:"Memos,omitempty"`
	Signers            []SignerEntry        `json:"Signers,omitempty"`
	SourceTag          *uint32              `json:"SourceTag,omitempty"`
	SigningPubKey      string               `json:"SigningPubKey,omitempty"`
	TicketSequence     *uint32              `json:"TicketSequence,omitempty"`
	TxnSignature       *string              `json:"TxnSignature,omitempty"`
	NetworkID          *uint32              `json:"NetworkID,omitempty"`
	HookParameters     []HookParameterEntry `json:"HookParameters,omitempty"`
}

// MemoEntry is the wire wrapper of a Memo.
type MemoEntry struct {
	Memo Memo `json:"Memo" ledger:"required,nonzero"`
}

// Memo carries arbitrary hex-encoded data. At least one field must be set.
type Memo struct {
	MemoData   *string `json:"MemoData,omitempty"`
	MemoFormat *string `json:"MemoFormat,omitempty"`
	MemoType   *string `json:"MemoType,omitempty"`
}

func (m Memo) Validate() ledgerskema.Issues {
	if m.MemoData == nil && m.MemoFormat == nil && m.MemoType == nil {
		return ledgerskema.Issues{ledgerskema.Root().Issue(ledgerskema.CodeRequired,
			"Memo must contain at least one of `MemoData`, `MemoFormat`, or `MemoType`.")}
	}
	var iss ledgerskema.Issues
	for _, f := range []struct {
		name string
		v    *string
	}{{"MemoData", m.MemoData}, {"MemoFormat", m.MemoFormat}, {"MemoType", m.MemoType}} {
		if f.v != nil {
			iss = append(iss, rules.Hex(f.name, *f.v, 0)...)
		}
	}
	return iss
}

// SignerEntry is the wire wrapper of a Signer.
type SignerEntry struct {
	Signer Signer `json:"Signer" ledger:"required,nonzero"`
}

// Signer is one signature of a multi-signed transaction.
type Signer struct {
	Account       string `json:"Account" ledger:"required,nonzero"`
	TxnSignature  string `json:"TxnSignature" ledger:"required,nonzero"`
	SigningPubKey string `json:"SigningPubKey" ledger:"required,nonzero"`
}

func (s Signer) Validate() ledgerskema.Issues { return ledgerskema.CheckRequired(s) }

// HookParameterEntry is the wire wrapper of a HookParameter.
type HookParameterEntry struct {
	HookParameter HookParameter `json:"HookParameter" ledger:"required,nonzero"`
}

// HookParameter passes a named value to the hooks a transaction triggers.
type HookParameter struct {
	HookParameterName  string  `json:"HookParameterName" ledger:"required,nonzero"`
	HookParameterValue *string `json:"HookParameterValue,omitempty"`
}

func (p HookParameter) Validate() ledgerskema.Issues { return ledgerskema.CheckRequired(p) }

// validateFor checks the common fields of a transaction whose type is fixed
// to want and whose Flags may carry the bits in flags besides the universal
// ones. Required fields are left to the caller, which checks them on the
// whole transaction.
func (t Transaction) validateFor(want TransactionType, flags uint32) ledgerskema.Issues {
	var iss ledgerskema.Issues
	if t.TransactionType != "" && t.TransactionType != want {
		iss = ledgerskema.AppendIssues(iss, ledgerskema.Root().Field("TransactionType").Issue(
			ledgerskema.CodeInvalidEnum, fmt.Sprintf("TransactionType must be %q", want), "got", string(t.TransactionType), "want", string(want)))
	}
	if t.Fee != nil {
		iss = append(iss, amounts.Drops(*t.Fee).Validate().Under("Fee")...)
	}
	if t.AccountTxnID != nil {
		iss = append(iss, rules.Hex("AccountTxnID", *t.AccountTxnID, 64)...)
	}
	if t.TicketSequence != nil && ((t.Sequence != nil && *t.Sequence != 0) || t.AccountTxnID != nil) {
		iss = ledgerskema.AppendIssues(iss, ledgerskema.RuleIssue(RuleTransaction, ledgerskema.CodeConflict,
			"If TicketSequence is provided, AccountTxnID must be omitted and Sequence must be omitted or 0."))
	}
	iss = append(iss, rules.FlagsWithin("Flags", t.Flags, flags|UniversalFlags)...)
	root := ledgerskema.Root()
	for i, m := range t.Memos {
		iss = append(iss, m.Memo.Validate().At(root.Field("Memos").Index(i).Field("Memo"))...)
	}
	for i, s := range t.Signers {
		iss = append(iss, s.Signer.Validate().At(root.Field("Signers").Index(i).Field("Signer"))...)
	}
	for i, p := range t.HookParameters {
		iss = append(iss, p.HookParameter.Validate().At(root.Field("HookParameters").Index(i).Field("HookParameter"))...)
	}
	return iss
}

func (t Transaction) pin(want TransactionType) (Transaction, error) {
	if t.TransactionType != "" && t.TransactionType != want {
		return t, ledgerskema.Issues{ledgerskema.Root().Field("TransactionType").Issue(
			ledgerskema.CodeInvalidEnum, fmt.Sprintf("TransactionType must be %q", want), "got", string(t.TransactionType), "want", string(want))}
	}
	t.TransactionType = want
	return t, nil
}

// HasFlag reports whether every bit of flag is set in the transaction flags.
func (t Transaction) HasFlag(flag uint32) bool { return t.Flags&flag == flag }
