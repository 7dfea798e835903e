// Package requests defines the RPC request schema objects a client sends to
// a ledger server: account object listings, single ledger entry lookups and
// payment channel authorization.
//
// Every request embeds Request, which carries the method name. Requests
// that can target a specific ledger version also embed LookupByLedger.
// Construct requests with the New* functions, or decode them from named
// fields with ledgerskema.FromJSON / FromYAML / FromMap, then call Validate:
//
//	req, err := requests.NewAccountObjects("rAccount")
//	req = req.WithType(requests.AccountObjectEscrow).WithLimit(50)
//	if iss := req.Validate(); len(iss) > 0 {
//		return iss
//	}
package requests
