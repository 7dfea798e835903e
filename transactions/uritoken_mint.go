package transactions

import (
	"github.com/reoring/ledgerskema"
	"github.com/reoring/ledgerskema/amounts"
	"github.com/reoring/ledgerskema/rules"
)

// MaxURILength bounds the URI of a URIToken, in characters.
const MaxURILength = 270

// URITokenMint creates a URIToken object.
type URITokenMint struct {
	Transaction

	URI         string          `json:"URI" ledger:"required,nonzero,maxlen=270"`
	Digest      *string         `json:"Digest,omitempty"`
	Destination *string         `json:"Destination,omitempty"` // only this account may accept the offer
	Amount      *amounts.Amount `json:"Amount,omitempty"`      // asking price; zero only for a free native offer
}

// NewURITokenMint builds a URITokenMint issued by account.
func NewURITokenMint(account, uri string) (URITokenMint, error) {
	tx := URITokenMint{
		Transaction: Transaction{Account: account, TransactionType: TypeURITokenMint},
		URI:         uri,
	}
	if iss := ledgerskema.CheckRequired(tx); len(iss) > 0 {
		return URITokenMint{}, iss
	}
	return tx, nil
}

func (tx URITokenMint) WithFlags(flags ...URITokenMintFlag) URITokenMint {
	tx.Flags |= CombineFlags(flags...)
	return tx
}

func (tx URITokenMint) WithDigest(digest string) URITokenMint {
	tx.Digest = &digest
	return tx
}

func (tx URITokenMint) WithDestination(dest string) URITokenMint {
	tx.Destination = &dest
	return tx
}

func (tx URITokenMint) WithAmount(a amounts.Amount) URITokenMint {
	tx.Amount = &a
	return tx
}

// Burnable reports whether TFBurnable is set.
func (tx URITokenMint) Burnable() bool { return TFBurnable.Set(tx.Flags) }

// Normalize pins the transaction type.
func (tx URITokenMint) Normalize() (URITokenMint, error) {
	t, err := tx.Transaction.pin(TypeURITokenMint)
	if err != nil {
		return URITokenMint{}, err
	}
	tx.Transaction = t
	return tx, nil
}

func (tx URITokenMint) Validate() ledgerskema.Issues {
	return rules.Run(tx,
		func(tx URITokenMint) ledgerskema.Issues { return tx.Transaction.validateFor(TypeURITokenMint, URITokenMintFlags()) },
		func(tx URITokenMint) ledgerskema.Issues { return ledgerskema.CheckRequired(tx) },
		func(tx URITokenMint) ledgerskema.Issues { return rules.Bounded(tx) },
		rules.When(func(tx URITokenMint) bool { return tx.Digest != nil },
			func(tx URITokenMint) ledgerskema.Issues { return rules.Hex("Digest", *tx.Digest, 64) }),
		rules.Nested("Amount", func(tx URITokenMint) *amounts.Amount { return tx.Amount }),
	)
}
