package requests

import (
	"github.com/reoring/ledgerskema"
	"github.com/reoring/ledgerskema/rules"
)

// LedgerEntryType identifies a kind of on-ledger object.
type LedgerEntryType string

const (
	LedgerEntryAccount        LedgerEntryType = "account"
	LedgerEntryAmendments     LedgerEntryType = "amendments"
	LedgerEntryAMM            LedgerEntryType = "amm"
	LedgerEntryCheck          LedgerEntryType = "check"
	LedgerEntryDepositPreauth LedgerEntryType = "deposit_preauth"
	LedgerEntryDirectory      LedgerEntryType = "directory"
	LedgerEntryDID            LedgerEntryType = "did"
	LedgerEntryEscrow         LedgerEntryType = "escrow"
	LedgerEntryHook           LedgerEntryType = "hook"
	LedgerEntryHookState      LedgerEntryType = "hook_state"
	LedgerEntryHookDefinition LedgerEntryType = "hook_definition"
	LedgerEntryFee            LedgerEntryType = "fee"
	LedgerEntryHashes         LedgerEntryType = "hashes"
	LedgerEntryOffer          LedgerEntryType = "offer"
	LedgerEntryOracle         LedgerEntryType = "oracle"
	LedgerEntryPaymentChannel LedgerEntryType = "payment_channel"
	LedgerEntrySignerList     LedgerEntryType = "signer_list"
	LedgerEntryState          LedgerEntryType = "state"
	LedgerEntryTicket         LedgerEntryType = "ticket"
	LedgerEntryNFTOffer       LedgerEntryType = "nft_offer"
	LedgerEntryURIToken       LedgerEntryType = "uri_token"
)

var ledgerEntryTypes = []LedgerEntryType{
	LedgerEntryAccount, LedgerEntryAmendments, LedgerEntryAMM, LedgerEntryCheck,
	LedgerEntryDepositPreauth, LedgerEntryDirectory, LedgerEntryDID, LedgerEntryEscrow,
	LedgerEntryHook, LedgerEntryHookState, LedgerEntryHookDefinition, LedgerEntryFee,
	LedgerEntryHashes, LedgerEntryOffer, LedgerEntryOracle, LedgerEntryPaymentChannel,
	LedgerEntrySignerList, LedgerEntryState, LedgerEntryTicket, LedgerEntryNFTOffer,
	LedgerEntryURIToken,
}

func (t LedgerEntryType) Valid() bool      { return ledgerskema.EnumContains(ledgerEntryTypes, t) }
func (t LedgerEntryType) Values() []string { return ledgerskema.EnumValues(ledgerEntryTypes) }

// Rule names reported by LedgerEntry.Validate.
const (
	RuleLedgerEntry = "LedgerEntry"
	RuleBridge      = "Bridge"
)

// LedgerEntry returns a single ledger object in its raw format. Exactly one
// way of identifying the object must be set: an object ID in Index, one of
// the typed fields, or the Bridge/BridgeAccount pair.
type LedgerEntry struct {
	Request
	LookupByLedger

	Index                      *string                                `json:"index,omitempty"`
	AccountRoot                *string                                `json:"account_root,omitempty"`
	Check                      *string                                `json:"check,omitempty"`
	DepositPreauth             *Lookup[DepositPreauthKey]             `json:"deposit_preauth,omitempty"`
	DID                        *string                                `json:"did,omitempty"`
	Directory                  *Lookup[DirectoryKey]                  `json:"directory,omitempty"`
	EmittedTxn                 *Lookup[EmittedTxnKey]                 `json:"emitted_txn,omitempty"`
	Escrow                     *Lookup[EscrowKey]                     `json:"escrow,omitempty"`
	Hook                       *Lookup[HookKey]                       `json:"hook,omitempty"`
	HookDefinition             *Lookup[HookDefinitionKey]             `json:"hook_definition,omitempty"`
	HookState                  *Lookup[HookStateKey]                  `json:"hook_state,omitempty"`
	ImportVLSeq                *Lookup[ImportVLSequenceKey]           `json:"import_vlseq,omitempty"`
	Offer                      *Lookup[OfferKey]                      `json:"offer,omitempty"`
	Oracle                     *OracleKey                             `json:"oracle,omitempty"`
	PaymentChannel             *string                                `json:"payment_channel,omitempty"`
	RippleState                *RippleStateKey                        `json:"ripple_state,omitempty"`
	Ticket                     *Lookup[TicketKey]                     `json:"ticket,omitempty"`
	BridgeAccount              *string                                `json:"bridge_account,omitempty"`
	Bridge                     *XChainBridge                          `json:"bridge,omitempty"`
	XChainClaimID              *Lookup[XChainClaimIDKey]              `json:"xchain_claim_id,omitempty"`
	XChainCreateAccountClaimID *Lookup[XChainCreateAccountClaimIDKey] `json:"xchain_create_account_claim_id,omitempty"`
	URIToken                   *Lookup[URITokenKey]                   `json:"uri_token,omitempty"`
	// NFTPage is the object ID of an NFToken page, as hexadecimal.
	NFTPage *string `json:"nft_page,omitempty"`

	Binary bool `json:"binary,omitempty"`
}

// NewLedgerEntry builds a LedgerEntry request. The returned value identifies
// nothing yet; set one identification field before validating.
func NewLedgerEntry() LedgerEntry {
	return LedgerEntry{Request: Request{Method: MethodLedgerEntry}}
}

// LedgerEntryByIndex builds a request for the object with the given ID.
func LedgerEntryByIndex(id string) LedgerEntry {
	r := NewLedgerEntry()
	r.Index = &id
	return r
}

func (r LedgerEntry) WithLedger(idx *LedgerIndex) LedgerEntry {
	r.LedgerIndex = idx
	return r
}

func (r LedgerEntry) WithBinary(v bool) LedgerEntry {
	r.Binary = v
	return r
}

// Normalize pins the method name.
func (r LedgerEntry) Normalize() (LedgerEntry, error) {
	req, err := r.Request.pin(MethodLedgerEntry)
	if err != nil {
		return LedgerEntry{}, err
	}
	r.Request = req
	return r, nil
}

// selectors reports, per identification alternative, whether it is set. The
// bridge pair counts as a single alternative.
func (r LedgerEntry) selectors() []bool {
	return []bool{
		r.Index != nil,
		r.AccountRoot != nil,
		r.Check != nil,
		r.DepositPreauth != nil,
		r.DID != nil,
		r.Directory != nil,
		r.EmittedTxn != nil,
		r.Escrow != nil,
		r.Hook != nil,
		r.HookDefinition != nil,
		r.HookState != nil,
		r.ImportVLSeq != nil,
		r.Offer != nil,
		r.Oracle != nil,
		r.PaymentChannel != nil,
		r.RippleState != nil,
		r.Ticket != nil,
		r.URIToken != nil,
		r.XChainClaimID != nil,
		r.XChainCreateAccountClaimID != nil,
		r.NFTPage != nil,
		r.Bridge != nil || r.BridgeAccount != nil,
	}
}

func (r LedgerEntry) Validate() ledgerskema.Issues {
	return rules.Run(r,
		func(r LedgerEntry) ledgerskema.Issues { return r.Request.validateFor(MethodLedgerEntry) },
		func(r LedgerEntry) ledgerskema.Issues { return r.LookupByLedger.Validate() },
		func(r LedgerEntry) ledgerskema.Issues {
			return rules.ExactlyOne(RuleLedgerEntry, "Must choose exactly one data to query", r.selectors()...)
		},
		func(r LedgerEntry) ledgerskema.Issues {
			return rules.Paired(RuleBridge, "Must include both `bridge` and `bridge_account`.", r.Bridge != nil, r.BridgeAccount != nil)
		},
		rules.Nested("deposit_preauth", func(r LedgerEntry) *Lookup[DepositPreauthKey] { return r.DepositPreauth }),
		rules.Nested("directory", func(r LedgerEntry) *Lookup[DirectoryKey] { return r.Directory }),
		rules.Nested("emitted_txn", func(r LedgerEntry) *Lookup[EmittedTxnKey] { return r.EmittedTxn }),
		rules.Nested("escrow", func(r LedgerEntry) *Lookup[EscrowKey] { return r.Escrow }),
		rules.Nested("hook", func(r LedgerEntry) *Lookup[HookKey] { return r.Hook }),
		rules.Nested("hook_definition", func(r LedgerEntry) *Lookup[HookDefinitionKey] { return r.HookDefinition }),
		rules.Nested("hook_state", func(r LedgerEntry) *Lookup[HookStateKey] { return r.HookState }),
		rules.Nested("import_vlseq", func(r LedgerEntry) *Lookup[ImportVLSequenceKey] { return r.ImportVLSeq }),
		rules.Nested("offer", func(r LedgerEntry) *Lookup[OfferKey] { return r.Offer }),
		rules.Nested("oracle", func(r LedgerEntry) *OracleKey { return r.Oracle }),
		rules.Nested("ripple_state", func(r LedgerEntry) *RippleStateKey { return r.RippleState }),
		rules.Nested("ticket", func(r LedgerEntry) *Lookup[TicketKey] { return r.Ticket }),
		rules.Nested("bridge", func(r LedgerEntry) *XChainBridge { return r.Bridge }),
		rules.Nested("xchain_claim_id", func(r LedgerEntry) *Lookup[XChainClaimIDKey] { return r.XChainClaimID }),
		rules.Nested("xchain_create_account_claim_id", func(r LedgerEntry) *Lookup[XChainCreateAccountClaimIDKey] {
			return r.XChainCreateAccountClaimID
		}),
		rules.Nested("uri_token", func(r LedgerEntry) *Lookup[URITokenKey] { return r.URIToken }),
		rules.When(func(r LedgerEntry) bool { return r.NFTPage != nil },
			func(r LedgerEntry) ledgerskema.Issues { return rules.Hex("nft_page", *r.NFTPage, 64) }),
	)
}
