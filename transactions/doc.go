// Package transactions defines transaction schema objects: the fields shared
// by every transaction, the URITokenMint transaction, and the metadata the
// server attaches to an applied transaction.
//
// Field names follow the ledger's PascalCase wire format:
//
//	tx, err := transactions.NewURITokenMint("rIssuer", "ipfs://bafy...")
//	tx = tx.WithFlags(transactions.TFBurnable)
//	if err := ledgerskema.Check(tx); err != nil {
//		// handle issues
//	}
package transactions
