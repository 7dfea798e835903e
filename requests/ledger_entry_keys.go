package requests

import (
	"errors"
	"reflect"

	j "github.com/goccy/go-json"

	"github.com/reoring/ledgerskema"
	"github.com/reoring/ledgerskema/amounts"
	"github.com/reoring/ledgerskema/rules"
)

// Lookup names a ledger entry either by its opaque object ID or by a
// composite key K. On the wire it is a JSON string or a JSON object.
type Lookup[K ledgerskema.Model] struct {
	ID  string
	Key *K
}

// ByID returns a lookup by object ID.
func ByID[K ledgerskema.Model](id string) *Lookup[K] { return &Lookup[K]{ID: id} }

// ByKey returns a lookup by composite key.
func ByKey[K ledgerskema.Model](k K) *Lookup[K] { return &Lookup[K]{Key: &k} }

func (l Lookup[K]) ObjectType() reflect.Type { return reflect.TypeOf((*K)(nil)).Elem() }

func (l Lookup[K]) MarshalJSON() ([]byte, error) {
	if l.Key != nil {
		return j.Marshal(l.Key)
	}
	return j.Marshal(l.ID)
}

func (l *Lookup[K]) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var id string
		if err := j.Unmarshal(b, &id); err != nil {
			return err
		}
		*l = Lookup[K]{ID: id}
		return nil
	}
	if len(b) > 0 && b[0] == '{' {
		var k K
		if err := j.Unmarshal(b, &k); err != nil {
			return err
		}
		*l = Lookup[K]{Key: &k}
		return nil
	}
	return errors.New("lookup must be an object ID string or a key object")
}

func (l Lookup[K]) Validate() ledgerskema.Issues {
	root := ledgerskema.Root()
	switch {
	case l.Key != nil && l.ID != "":
		return ledgerskema.Issues{root.Issue(ledgerskema.CodeConflict, "Set either an object ID or a key, not both.")}
	case l.Key != nil:
		return (*l.Key).Validate()
	case l.ID == "":
		return ledgerskema.Issues{root.Issue(ledgerskema.CodeRequired, "An object ID or a key is required.")}
	}
	return nil
}

// DepositPreauthKey identifies a DepositPreauth entry.
type DepositPreauthKey struct {
	Owner      string `json:"owner" ledger:"required,nonzero"`
	Authorized string `json:"authorized" ledger:"required,nonzero"`
}

func NewDepositPreauthKey(owner, authorized string) (DepositPreauthKey, error) {
	return checked(DepositPreauthKey{Owner: owner, Authorized: authorized})
}

func (k DepositPreauthKey) Validate() ledgerskema.Issues { return ledgerskema.CheckRequired(k) }

// DirectoryKey identifies a DirectoryNode entry.
type DirectoryKey struct {
	Owner    string  `json:"owner" ledger:"required,nonzero"`
	DirRoot  string  `json:"dir_root" ledger:"required,nonzero"`
	SubIndex *uint64 `json:"sub_index,omitempty"`
}

func NewDirectoryKey(owner, dirRoot string) (DirectoryKey, error) {
	return checked(DirectoryKey{Owner: owner, DirRoot: dirRoot})
}

func (k DirectoryKey) Validate() ledgerskema.Issues { return ledgerskema.CheckRequired(k) }

// EscrowKey identifies an Escrow entry.
type EscrowKey struct {
	Owner string `json:"owner" ledger:"required,nonzero"`
	Seq   uint32 `json:"seq" ledger:"required"`
}

func NewEscrowKey(owner string, seq uint32) (EscrowKey, error) {
	return checked(EscrowKey{Owner: owner, Seq: seq})
}

func (k EscrowKey) Validate() ledgerskema.Issues { return ledgerskema.CheckRequired(k) }

// OfferKey identifies an Offer entry.
type OfferKey struct {
	Account string `json:"account" ledger:"required,nonzero"`
	Seq     uint32 `json:"seq" ledger:"required"`
}

func NewOfferKey(account string, seq uint32) (OfferKey, error) {
	return checked(OfferKey{Account: account, Seq: seq})
}

func (k OfferKey) Validate() ledgerskema.Issues { return ledgerskema.CheckRequired(k) }

// OracleKey identifies a price Oracle entry.
type OracleKey struct {
	Account          string         `json:"account" ledger:"required,nonzero"`
	OracleDocumentID NumberOrString `json:"oracle_document_id" ledger:"required,nonzero"`
}

func NewOracleKey(account string, documentID NumberOrString) (OracleKey, error) {
	return checked(OracleKey{Account: account, OracleDocumentID: documentID})
}

func (k OracleKey) Validate() ledgerskema.Issues { return ledgerskema.CheckRequired(k) }

// RippleStateKey identifies a trust line by its two accounts and currency.
type RippleStateKey struct {
	Accounts []string `json:"accounts" ledger:"required"`
	Currency string   `json:"currency" ledger:"required,nonzero"`
}

func NewRippleStateKey(accountA, accountB, currency string) (RippleStateKey, error) {
	return checked(RippleStateKey{Accounts: []string{accountA, accountB}, Currency: currency})
}

func (k RippleStateKey) Validate() ledgerskema.Issues {
	iss := ledgerskema.CheckRequired(k)
	if len(k.Accounts) > 0 {
		iss = append(iss, rules.Len("accounts", len(k.Accounts), 2)...)
	}
	for i, a := range k.Accounts {
		if a == "" {
			iss = ledgerskema.AppendIssues(iss, ledgerskema.Root().Field("accounts").Index(i).Issue(ledgerskema.CodeRequired, "Account must not be empty."))
		}
	}
	if k.Currency != "" && !amounts.ValidCurrencyCode(k.Currency) {
		iss = ledgerskema.AppendIssues(iss, ledgerskema.Root().Field("currency").Issue(ledgerskema.CodeInvalidFormat, "Invalid currency code.", "got", k.Currency))
	}
	return iss
}

// TicketKey identifies a Ticket entry.
type TicketKey struct {
	Owner          string `json:"owner" ledger:"required,nonzero"`
	TicketSequence uint32 `json:"ticket_sequence" ledger:"required"`
}

func NewTicketKey(owner string, ticketSequence uint32) (TicketKey, error) {
	return checked(TicketKey{Owner: owner, TicketSequence: ticketSequence})
}

func (k TicketKey) Validate() ledgerskema.Issues { return ledgerskema.CheckRequired(k) }

// XChainClaimIDKey identifies an XChainOwnedClaimID entry by bridge and the
// claim ID created in an XChainCreateClaimID transaction.
type XChainClaimIDKey struct {
	XChainBridge
	XChainClaimID NumberOrString `json:"xchain_claim_id" ledger:"required,nonzero"`
}

func (k XChainClaimIDKey) Validate() ledgerskema.Issues {
	return append(k.XChainBridge.Validate(), requiredOnly(k, "xchain_claim_id")...)
}

// XChainCreateAccountClaimIDKey identifies an XChainOwnedCreateAccountClaimID
// entry by bridge and account-create counter.
type XChainCreateAccountClaimIDKey struct {
	XChainBridge
	XChainCreateAccountClaimID NumberOrString `json:"xchain_create_account_claim_id" ledger:"required,nonzero"`
}

func (k XChainCreateAccountClaimIDKey) Validate() ledgerskema.Issues {
	return append(k.XChainBridge.Validate(), requiredOnly(k, "xchain_create_account_claim_id")...)
}

// HookKey identifies the Hook entry of an account.
type HookKey struct {
	Account string `json:"account" ledger:"required,nonzero"`
}

func NewHookKey(account string) (HookKey, error) { return checked(HookKey{Account: account}) }

func (k HookKey) Validate() ledgerskema.Issues { return ledgerskema.CheckRequired(k) }

// HookStateKey identifies one HookState entry.
type HookStateKey struct {
	Account     string `json:"account" ledger:"required,nonzero"`
	Key         string `json:"key" ledger:"required,nonzero"`
	NamespaceID string `json:"namespace_id" ledger:"required,nonzero"`
}

func NewHookStateKey(account, key, namespaceID string) (HookStateKey, error) {
	return checked(HookStateKey{Account: account, Key: key, NamespaceID: namespaceID})
}

func (k HookStateKey) Validate() ledgerskema.Issues {
	iss := ledgerskema.CheckRequired(k)
	if k.Key != "" {
		iss = append(iss, rules.Hex("key", k.Key, 64)...)
	}
	if k.NamespaceID != "" {
		iss = append(iss, rules.Hex("namespace_id", k.NamespaceID, 64)...)
	}
	return iss
}

// HookDefinitionKey identifies a HookDefinition entry by hook hash.
type HookDefinitionKey struct {
	HookDefinition string `json:"hook_definition" ledger:"required,nonzero"`
}

func NewHookDefinitionKey(hookHash string) (HookDefinitionKey, error) {
	return checked(HookDefinitionKey{HookDefinition: hookHash})
}

func (k HookDefinitionKey) Validate() ledgerskema.Issues { return ledgerskema.CheckRequired(k) }

// ImportVLSequenceKey identifies an ImportVLSequence entry by validator list
// publisher key.
type ImportVLSequenceKey struct {
	PublicKey string `json:"public_key" ledger:"required,nonzero"`
}

func NewImportVLSequenceKey(publicKey string) (ImportVLSequenceKey, error) {
	return checked(ImportVLSequenceKey{PublicKey: publicKey})
}

func (k ImportVLSequenceKey) Validate() ledgerskema.Issues { return ledgerskema.CheckRequired(k) }

// EmittedTxnKey identifies an EmittedTxn entry.
type EmittedTxnKey struct {
	EmittedTxn string `json:"emitted_txn" ledger:"required,nonzero"`
}

func NewEmittedTxnKey(id string) (EmittedTxnKey, error) {
	return checked(EmittedTxnKey{EmittedTxn: id})
}

func (k EmittedTxnKey) Validate() ledgerskema.Issues { return ledgerskema.CheckRequired(k) }

// URITokenKey identifies a URIToken entry by issuer and URI.
type URITokenKey struct {
	Issuer string `json:"issuer" ledger:"required,nonzero"`
	URI    string `json:"uri" ledger:"required,nonzero"`
}

func NewURITokenKey(issuer, uri string) (URITokenKey, error) {
	return checked(URITokenKey{Issuer: issuer, URI: uri})
}

func (k URITokenKey) Validate() ledgerskema.Issues { return ledgerskema.CheckRequired(k) }

// checked fails construction when a required field was left empty.
func checked[K ledgerskema.Model](k K) (K, error) {
	if iss := ledgerskema.CheckRequired(k); len(iss) > 0 {
		var zero K
		return zero, iss
	}
	return k, nil
}

func requiredOnly(v any, field string) ledgerskema.Issues {
	var out ledgerskema.Issues
	for _, it := range ledgerskema.CheckRequired(v) {
		if it.Path == "/"+field {
			out = append(out, it)
		}
	}
	return out
}
