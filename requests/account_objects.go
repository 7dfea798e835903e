package requests

import (
	"github.com/reoring/ledgerskema"
	"github.com/reoring/ledgerskema/rules"
)

// AccountObjectType represents the object types that an AccountObjects
// request can ask for.
type AccountObjectType string

const (
	AccountObjectAMM                             AccountObjectType = "amm"
	AccountObjectBridge                          AccountObjectType = "bridge"
	AccountObjectCheck                           AccountObjectType = "check"
	AccountObjectDepositPreauth                  AccountObjectType = "deposit_preauth"
	AccountObjectDID                             AccountObjectType = "did"
	AccountObjectEscrow                          AccountObjectType = "escrow"
	AccountObjectNFTOffer                        AccountObjectType = "nft_offer"
	AccountObjectHook                            AccountObjectType = "hook"
	AccountObjectOffer                           AccountObjectType = "offer"
	AccountObjectOracle                          AccountObjectType = "oracle"
	AccountObjectPaymentChannel                  AccountObjectType = "payment_channel"
	AccountObjectSignerList                      AccountObjectType = "signer_list"
	AccountObjectState                           AccountObjectType = "state"
	AccountObjectTicket                          AccountObjectType = "ticket"
	AccountObjectXChainOwnedCreateAccountClaimID AccountObjectType = "xchain_owned_create_account_claim_id"
	AccountObjectXChainOwnedClaimID              AccountObjectType = "xchain_owned_claim_id"
	AccountObjectURIToken                        AccountObjectType = "uri_token"
)

var accountObjectTypes = []AccountObjectType{
	AccountObjectAMM, AccountObjectBridge, AccountObjectCheck, AccountObjectDepositPreauth,
	AccountObjectDID, AccountObjectEscrow, AccountObjectNFTOffer, AccountObjectHook,
	AccountObjectOffer, AccountObjectOracle, AccountObjectPaymentChannel, AccountObjectSignerList,
	AccountObjectState, AccountObjectTicket, AccountObjectXChainOwnedCreateAccountClaimID,
	AccountObjectXChainOwnedClaimID, AccountObjectURIToken,
}

func (t AccountObjectType) Valid() bool      { return ledgerskema.EnumContains(accountObjectTypes, t) }
func (t AccountObjectType) Values() []string { return ledgerskema.EnumValues(accountObjectTypes) }

// AccountObjects returns the raw ledger format for all objects owned by an
// account. For a higher-level view of trust lines and balances use
// account_lines instead.
type AccountObjects struct {
	Request
	LookupByLedger

	Account              string             `json:"account" ledger:"required,nonzero"`
	Type                 *AccountObjectType `json:"type,omitempty"`
	DeletionBlockersOnly bool               `json:"deletion_blockers_only,omitempty"`
	Limit                *uint32            `json:"limit,omitempty"`
	// Marker is the pagination cursor returned by a previous response. Its
	// shape is up to the server; it is passed through untouched.
	Marker any `json:"marker,omitempty"`
}

// NewAccountObjects builds an AccountObjects request for account.
func NewAccountObjects(account string) (AccountObjects, error) {
	r := AccountObjects{Request: Request{Method: MethodAccountObjects}, Account: account}
	if iss := ledgerskema.CheckRequired(r); len(iss) > 0 {
		return AccountObjects{}, iss
	}
	return r, nil
}

func (r AccountObjects) WithType(t AccountObjectType) AccountObjects {
	r.Type = &t
	return r
}

func (r AccountObjects) WithLimit(n uint32) AccountObjects {
	r.Limit = &n
	return r
}

func (r AccountObjects) WithMarker(marker any) AccountObjects {
	r.Marker = marker
	return r
}

func (r AccountObjects) WithDeletionBlockersOnly(v bool) AccountObjects {
	r.DeletionBlockersOnly = v
	return r
}

func (r AccountObjects) WithLedger(idx *LedgerIndex) AccountObjects {
	r.LedgerIndex = idx
	return r
}

// Normalize pins the method name.
func (r AccountObjects) Normalize() (AccountObjects, error) {
	req, err := r.Request.pin(MethodAccountObjects)
	if err != nil {
		return AccountObjects{}, err
	}
	r.Request = req
	return r, nil
}

func (r AccountObjects) Validate() ledgerskema.Issues {
	return rules.Run(r,
		func(r AccountObjects) ledgerskema.Issues { return r.Request.validateFor(MethodAccountObjects) },
		func(r AccountObjects) ledgerskema.Issues { return r.LookupByLedger.Validate() },
		func(r AccountObjects) ledgerskema.Issues { return ledgerskema.CheckRequired(r) },
		rules.When(func(r AccountObjects) bool { return r.Type != nil },
			func(r AccountObjects) ledgerskema.Issues { return rules.OneOf("type", *r.Type) }),
	)
}
