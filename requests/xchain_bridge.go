package requests

import (
	"github.com/reoring/ledgerskema"
	"github.com/reoring/ledgerskema/amounts"
)

// XChainBridge describes a cross-chain bridge: the door accounts and the
// assets on the locking and issuing chains.
type XChainBridge struct {
	LockingChainDoor  string           `json:"LockingChainDoor" ledger:"required,nonzero"`
	LockingChainIssue amounts.Currency `json:"LockingChainIssue" ledger:"required,nonzero"`
	IssuingChainDoor  string           `json:"IssuingChainDoor" ledger:"required,nonzero"`
	IssuingChainIssue amounts.Currency `json:"IssuingChainIssue" ledger:"required,nonzero"`
}

func (b XChainBridge) Validate() ledgerskema.Issues {
	iss := ledgerskema.CheckRequired(b)
	if b.LockingChainIssue != (amounts.Currency{}) {
		iss = append(iss, b.LockingChainIssue.Validate().Under("LockingChainIssue")...)
	}
	if b.IssuingChainIssue != (amounts.Currency{}) {
		iss = append(iss, b.IssuingChainIssue.Validate().Under("IssuingChainIssue")...)
	}
	return iss
}
