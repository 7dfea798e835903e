package requests

import "github.com/reoring/ledgerskema"

// RequestMethod is the name of an RPC method.
type RequestMethod string

const (
	// account methods
	MethodAccountChannels   RequestMethod = "account_channels"
	MethodAccountCurrencies RequestMethod = "account_currencies"
	MethodAccountInfo       RequestMethod = "account_info"
	MethodAccountLines      RequestMethod = "account_lines"
	MethodAccountNamespace  RequestMethod = "account_namespace"
	MethodAccountNFTs       RequestMethod = "account_nfts"
	MethodAccountObjects    RequestMethod = "account_objects"
	MethodAccountOffers     RequestMethod = "account_offers"
	MethodAccountTx         RequestMethod = "account_tx"
	MethodGatewayBalances   RequestMethod = "gateway_balances"
	MethodNoRippleCheck     RequestMethod = "noripple_check"

	// ledger methods
	MethodLedger        RequestMethod = "ledger"
	MethodLedgerClosed  RequestMethod = "ledger_closed"
	MethodLedgerCurrent RequestMethod = "ledger_current"
	MethodLedgerData    RequestMethod = "ledger_data"
	MethodLedgerEntry   RequestMethod = "ledger_entry"

	// transaction methods
	MethodSubmit            RequestMethod = "submit"
	MethodSubmitMultisigned RequestMethod = "submit_multisigned"
	MethodTransactionEntry  RequestMethod = "transaction_entry"
	MethodTx                RequestMethod = "tx"

	// channel methods
	MethodChannelAuthorize RequestMethod = "channel_authorize"
	MethodChannelVerify    RequestMethod = "channel_verify"

	// path methods
	MethodBookOffers        RequestMethod = "book_offers"
	MethodDepositAuthorized RequestMethod = "deposit_authorized"
	MethodPathFind          RequestMethod = "path_find"
	MethodRipplePathFind    RequestMethod = "ripple_path_find"

	// server info methods
	MethodFee               RequestMethod = "fee"
	MethodManifest          RequestMethod = "manifest"
	MethodServerDefinitions RequestMethod = "server_definitions"
	MethodServerInfo        RequestMethod = "server_info"
	MethodServerState       RequestMethod = "server_state"

	// utility methods
	MethodPing   RequestMethod = "ping"
	MethodRandom RequestMethod = "random"
)

var requestMethods = []RequestMethod{
	MethodAccountChannels, MethodAccountCurrencies, MethodAccountInfo, MethodAccountLines,
	MethodAccountNamespace, MethodAccountNFTs, MethodAccountObjects, MethodAccountOffers,
	MethodAccountTx, MethodGatewayBalances, MethodNoRippleCheck,
	MethodLedger, MethodLedgerClosed, MethodLedgerCurrent, MethodLedgerData, MethodLedgerEntry,
	MethodSubmit, MethodSubmitMultisigned, MethodTransactionEntry, MethodTx,
	MethodChannelAuthorize, MethodChannelVerify,
	MethodBookOffers, MethodDepositAuthorized, MethodPathFind, MethodRipplePathFind,
	MethodFee, MethodManifest, MethodServerDefinitions, MethodServerInfo, MethodServerState,
	MethodPing, MethodRandom,
}

func (m RequestMethod) Valid() bool      { return ledgerskema.EnumContains(requestMethods, m) }
func (m RequestMethod) Values() []string { return ledgerskema.EnumValues(requestMethods) }
