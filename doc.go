// Package ledgerskema provides typed schema objects for the requests and
// transactions a client sends to a Xahau/XRPL-family ledger server, and the
// machinery to build and check them:
//
//   - A stable error model via Issues (JSON Pointer path, code, message, and
//     the name of the cross-field rule that produced the issue)
//   - Decoding constructors (FromJSON, FromYAML, FromMap) with a closed-schema
//     policy: unknown fields, missing required fields, duplicate keys, wrong
//     types and unknown enum members fail construction
//   - Validate on every model, returning every structural violation at once
//   - Value semantics: models are immutable values compared structurally
//     with Equal and copied with Update or the With* helpers
//
// The schema objects live in the requests and transactions packages; the
// reusable checks in rules.
//
// Typical usage:
//
//	req, err := ledgerskema.FromJSON[requests.LedgerEntry](data)
//	if err != nil {
//		iss, _ := ledgerskema.AsIssues(err) // construction errors
//	}
//	if errs := ledgerskema.Errors(req); len(errs) > 0 {
//		// e.g. {"LedgerEntry": "Must choose exactly one data to query"}
//	}
package ledgerskema
