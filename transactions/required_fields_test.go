package transactions_test

import (
	"strconv"
	"strings"
	"testing"

	j "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/ledgerskema"
	"github.com/reoring/ledgerskema/transactions"
)

// withoutKey removes the member named by a JSON Pointer from doc.
func withoutKey(t *testing.T, doc, pointer string) []byte {
	t.Helper()
	var root any
	require.NoError(t, j.Unmarshal([]byte(doc), &root))
	parts := strings.Split(strings.TrimPrefix(pointer, "/"), "/")
	cur := root
	for _, p := range parts[:len(parts)-1] {
		switch node := cur.(type) {
		case map[string]any:
			cur = node[p]
		case []any:
			i, err := strconv.Atoi(p)
			require.NoError(t, err)
			cur = node[i]
		}
	}
	obj, ok := cur.(map[string]any)
	require.True(t, ok, "parent of %s is not an object", pointer)
	last := parts[len(parts)-1]
	require.Contains(t, obj, last)
	delete(obj, last)
	out, err := j.Marshal(root)
	require.NoError(t, err)
	return out
}

func assertEachRequired[T any](t *testing.T, doc string, pointers ...string) {
	t.Helper()
	_, err := ledgerskema.FromJSON[T]([]byte(doc))
	require.NoError(t, err)
	for _, p := range pointers {
		t.Run(p, func(t *testing.T) {
			_, err := ledgerskema.FromJSON[T](withoutKey(t, doc, p))
			require.ErrorIs(t, err, ledgerskema.ErrMissingRequiredField)
			iss, ok := ledgerskema.AsIssues(err)
			require.True(t, ok)
			require.Len(t, iss, 1)
			assert.Equal(t, p, iss[0].Path)
			assert.Equal(t, ledgerskema.CodeRequired, iss[0].Code)
		})
	}
}

func TestURITokenMint_EachRequiredField(t *testing.T) {
	assertEachRequired[transactions.URITokenMint](t, `{
		"TransactionType": "URITokenMint",
		"Account": "rIssuer",
		"URI": "ipfs://token",
		"Amount": {"currency": "USD", "issuer": "rIssuer", "value": "1"},
		"Memos": [{"Memo": {"MemoData": "AB"}}],
		"Signers": [{"Signer": {"Account": "rSigner", "TxnSignature": "AB", "SigningPubKey": "CD"}}],
		"HookParameters": [{"HookParameter": {"HookParameterName": "AB", "HookParameterValue": "CD"}}]
	}`,
		"/Account",
		"/URI",
		"/Amount/currency",
		"/Amount/issuer",
		"/Amount/value",
		"/Memos/0/Memo",
		"/Signers/0/Signer",
		"/Signers/0/Signer/Account",
		"/Signers/0/Signer/TxnSignature",
		"/Signers/0/Signer/SigningPubKey",
		"/HookParameters/0/HookParameter",
		"/HookParameters/0/HookParameter/HookParameterName",
	)
}

const fullMetaJSON = `{
	"AffectedNodes": [
		{"CreatedNode": {"LedgerEntryType": "URIToken", "LedgerIndex": "AB12", "NewFields": {}}},
		{"ModifiedNode": {"LedgerEntryType": "AccountRoot", "LedgerIndex": "CD34"}},
		{"DeletedNode": {"LedgerEntryType": "Offer", "LedgerIndex": "EF56", "FinalFields": {"Flags": 0}}}
	],
	"TransactionIndex": 0,
	"TransactionResult": "tesSUCCESS",
	"HookExecutions": [{"HookExecution": {
		"HookAccount": "rHook",
		"HookEmitCount": 0,
		"HookExecutionIndex": 0,
		"HookHash": "5EDF",
		"HookInstructionCount": "0",
		"HookResult": 0,
		"HookReturnCode": "0",
		"HookReturnString": "",
		"HookStateChangeCount": 0,
		"Flags": 0
	}}],
	"HookEmissions": [{"HookEmission": {
		"EmittedTxnID": "AB",
		"HookAccount": "rHook",
		"HookHash": "5EDF",
		"EmitNonce": "CD"
	}}]
}`

func TestTransactionMetadata_EachRequiredField(t *testing.T) {
	pointers := []string{
		"/AffectedNodes",
		"/TransactionIndex",
		"/TransactionResult",
		"/AffectedNodes/0/CreatedNode/LedgerEntryType",
		"/AffectedNodes/0/CreatedNode/LedgerIndex",
		"/AffectedNodes/0/CreatedNode/NewFields",
		"/AffectedNodes/1/ModifiedNode/LedgerEntryType",
		"/AffectedNodes/1/ModifiedNode/LedgerIndex",
		"/AffectedNodes/2/DeletedNode/LedgerEntryType",
		"/AffectedNodes/2/DeletedNode/LedgerIndex",
		"/AffectedNodes/2/DeletedNode/FinalFields",
		"/HookExecutions/0/HookExecution",
		"/HookEmissions/0/HookEmission",
	}
	for _, k := range []string{
		"HookAccount", "HookEmitCount", "HookExecutionIndex", "HookHash", "HookInstructionCount",
		"HookResult", "HookReturnCode", "HookReturnString", "HookStateChangeCount", "Flags",
	} {
		pointers = append(pointers, "/HookExecutions/0/HookExecution/"+k)
	}
	for _, k := range []string{"EmittedTxnID", "HookAccount", "HookHash", "EmitNonce"} {
		pointers = append(pointers, "/HookEmissions/0/HookEmission/"+k)
	}
	assertEachRequired[transactions.TransactionMetadata](t, fullMetaJSON, pointers...)
}

func TestTransactionMetadata_ZeroValuesAreValid(t *testing.T) {
	m, err := ledgerskema.FromJSON[transactions.TransactionMetadata]([]byte(fullMetaJSON))
	require.NoError(t, err)
	assert.Empty(t, m.Validate())

	m, err = ledgerskema.FromJSON[transactions.TransactionMetadata]([]byte(`{"AffectedNodes": [], "TransactionIndex": 0, "TransactionResult": "tecNO_DST"}`))
	require.NoError(t, err)
	assert.Empty(t, m.Validate())
	assert.False(t, m.Succeeded())
}
