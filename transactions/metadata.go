package transactions

import (
	"github.com/reoring/ledgerskema"
	"github.com/reoring/ledgerskema/amounts"
	"github.com/reoring/ledgerskema/rules"
)

// DeliveredUnavailable is reported in delivered_amount for transactions
// applied before the server started recording the delivered amount.
const DeliveredUnavailable = "unavailable"

const RuleAffectedNode = "AffectedNode"

// TransactionMetadata describes the outcome of an applied transaction.
type TransactionMetadata struct {
	AffectedNodes     []AffectedNode       `json:"AffectedNodes" ledger:"required"`
	TransactionIndex  uint32               `json:"TransactionIndex" ledger:"required"`
	TransactionResult string               `json:"TransactionResult" ledger:"required,nonzero"`
	DeliveredAmount   *amounts.Amount      `json:"DeliveredAmount,omitempty"`
	Delivered         *amounts.Amount      `json:"delivered_amount,omitempty"`
	HookExecutions    []HookExecutionEntry `json:"HookExecutions,omitempty"`
	HookEmissions     []HookEmissionEntry  `json:"HookEmissions,omitempty"`
}

// NodeFields holds the ledger object fields of an affected node. Their set
// depends on the ledger entry type, so they are kept as decoded.
type NodeFields map[string]any

// AffectedNode is a ledger object created, modified or deleted by a
// transaction. Exactly one of its members is set.
type AffectedNode struct {
	CreatedNode  *CreatedNode  `json:"CreatedNode,omitempty"`
	ModifiedNode *ModifiedNode `json:"ModifiedNode,omitempty"`
	DeletedNode  *DeletedNode  `json:"DeletedNode,omitempty"`
}

func (n AffectedNode) IsCreatedNode() bool  { return n.CreatedNode != nil }
func (n AffectedNode) IsModifiedNode() bool { return n.ModifiedNode != nil }
func (n AffectedNode) IsDeletedNode() bool  { return n.DeletedNode != nil }

// LedgerIndex returns the ID of the affected ledger object.
func (n AffectedNode) LedgerIndex() string {
	switch {
	case n.CreatedNode != nil:
		return n.CreatedNode.LedgerIndex
	case n.ModifiedNode != nil:
		return n.ModifiedNode.LedgerIndex
	case n.DeletedNode != nil:
		return n.DeletedNode.LedgerIndex
	}
	return ""
}

func (n AffectedNode) Validate() ledgerskema.Issues {
	return rules.Run(n,
		func(n AffectedNode) ledgerskema.Issues {
			return rules.ExactlyOne(RuleAffectedNode,
				"Must set exactly one of `CreatedNode`, `ModifiedNode`, or `DeletedNode`.",
				n.CreatedNode != nil, n.ModifiedNode != nil, n.DeletedNode != nil)
		},
		rules.Nested("CreatedNode", func(n AffectedNode) *CreatedNode { return n.CreatedNode }),
		rules.Nested("ModifiedNode", func(n AffectedNode) *ModifiedNode { return n.ModifiedNode }),
		rules.Nested("DeletedNode", func(n AffectedNode) *DeletedNode { return n.DeletedNode }),
	)
}

type CreatedNode struct {
	LedgerEntryType string     `json:"LedgerEntryType" ledger:"required,nonzero"`
	LedgerIndex     string     `json:"LedgerIndex" ledger:"required,nonzero"`
	NewFields       NodeFields `json:"NewFields" ledger:"required"`
}

func (n CreatedNode) Validate() ledgerskema.Issues { return ledgerskema.CheckRequired(n) }

type ModifiedNode struct {
	LedgerEntryType   string     `json:"LedgerEntryType" ledger:"required,nonzero"`
	LedgerIndex       string     `json:"LedgerIndex" ledger:"required,nonzero"`
	FinalFields       NodeFields `json:"FinalFields,omitempty"`
	PreviousFields    NodeFields `json:"PreviousFields,omitempty"`
	PreviousTxnID     *string    `json:"PreviousTxnID,omitempty"`
	PreviousTxnLgrSeq *uint32    `json:"PreviousTxnLgrSeq,omitempty"`
}

func (n ModifiedNode) Validate() ledgerskema.Issues { return ledgerskema.CheckRequired(n) }

type DeletedNode struct {
	LedgerEntryType string     `json:"LedgerEntryType" ledger:"required,nonzero"`
	LedgerIndex     string     `json:"LedgerIndex" ledger:"required,nonzero"`
	FinalFields     NodeFields `json:"FinalFields" ledger:"required"`
	PreviousFields  NodeFields `json:"PreviousFields,omitempty"`
}

func (n DeletedNode) Validate() ledgerskema.Issues { return ledgerskema.CheckRequired(n) }

type HookExecutionEntry struct {
	HookExecution HookExecution `json:"HookExecution" ledger:"required,nonzero"`
}

// HookExecution records one hook run triggered by the transaction.
type HookExecution struct {
	HookAccount          string `json:"HookAccount" ledger:"required,nonzero"`
	HookEmitCount        uint16 `json:"HookEmitCount" ledger:"required"`
	HookExecutionIndex   uint16 `json:"HookExecutionIndex" ledger:"required"`
	HookHash             string `json:"HookHash" ledger:"required,nonzero"`
	HookInstructionCount string `json:"HookInstructionCount" ledger:"required"`
	HookResult           uint8  `json:"HookResult" ledger:"required"`
	HookReturnCode       string `json:"HookReturnCode" ledger:"required"`
	HookReturnString     string `json:"HookReturnString" ledger:"required"`
	HookStateChangeCount uint16 `json:"HookStateChangeCount" ledger:"required"`
	Flags                uint32 `json:"Flags" ledger:"required"`
}

func (h HookExecution) Validate() ledgerskema.Issues { return ledgerskema.CheckRequired(h) }

type HookEmissionEntry struct {
	HookEmission HookEmission `json:"HookEmission" ledger:"required,nonzero"`
}

// HookEmission records a transaction emitted by a hook.
type HookEmission struct {
	EmittedTxnID string `json:"EmittedTxnID" ledger:"required,nonzero"`
	HookAccount  string `json:"HookAccount" ledger:"required,nonzero"`
	HookHash     string `json:"HookHash" ledger:"required,nonzero"`
	EmitNonce    string `json:"EmitNonce" ledger:"required,nonzero"`
}

func (h HookEmission) Validate() ledgerskema.Issues { return ledgerskema.CheckRequired(h) }

// Succeeded reports whether the transaction result is tesSUCCESS.
func (m TransactionMetadata) Succeeded() bool { return m.TransactionResult == "tesSUCCESS" }

// CreatedNodes returns the nodes created by the transaction.
func (m TransactionMetadata) CreatedNodes() []CreatedNode {
	var out []CreatedNode
	for _, n := range m.AffectedNodes {
		if n.IsCreatedNode() {
			out = append(out, *n.CreatedNode)
		}
	}
	return out
}

func (m TransactionMetadata) Validate() ledgerskema.Issues {
	root := ledgerskema.Root()
	iss := ledgerskema.CheckRequired(m)
	for i, n := range m.AffectedNodes {
		iss = append(iss, n.Validate().At(root.Field("AffectedNodes").Index(i))...)
	}
	for i, h := range m.HookExecutions {
		iss = append(iss, h.HookExecution.Validate().At(root.Field("HookExecutions").Index(i).Field("HookExecution"))...)
	}
	for i, h := range m.HookEmissions {
		iss = append(iss, h.HookEmission.Validate().At(root.Field("HookEmissions").Index(i).Field("HookEmission"))...)
	}
	if m.DeliveredAmount != nil {
		iss = append(iss, m.DeliveredAmount.Validate().Under("DeliveredAmount")...)
	}
	if m.Delivered != nil {
		if d, native := m.Delivered.DropsValue(); !native || d != DeliveredUnavailable {
			iss = append(iss, m.Delivered.Validate().Under("delivered_amount")...)
		}
	}
	return iss.Sorted()
}
