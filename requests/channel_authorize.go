package requests

import (
	"github.com/reoring/ledgerskema"
	"github.com/reoring/ledgerskema/amounts"
	"github.com/reoring/ledgerskema/rules"
)

// CryptoAlgorithm names a key derivation algorithm.
type CryptoAlgorithm string

const (
	ED25519   CryptoAlgorithm = "ed25519"
	SECP256K1 CryptoAlgorithm = "secp256k1"
)

var cryptoAlgorithms = []CryptoAlgorithm{ED25519, SECP256K1}

func (a CryptoAlgorithm) Valid() bool      { return ledgerskema.EnumContains(cryptoAlgorithms, a) }
func (a CryptoAlgorithm) Values() []string { return ledgerskema.EnumValues(cryptoAlgorithms) }

const RuleChannelAuthorize = "ChannelAuthorize"

// ChannelAuthorize asks the server to sign a claim redeeming Amount from a
// payment channel. Exactly one of the secret key fields must be set.
//
// The secret key fields travel to the server in clear; only use this request
// against a server you run or fully trust, over an encrypted connection.
type ChannelAuthorize struct {
	Request

	ChannelID  string           `json:"channel_id" ledger:"required,nonzero"`
	Amount     amounts.Amount   `json:"amount" ledger:"required,nonzero"`
	Secret     *string          `json:"secret,omitempty"`
	Seed       *string          `json:"seed,omitempty"`
	SeedHex    *string          `json:"seed_hex,omitempty"`
	Passphrase *string          `json:"passphrase,omitempty"`
	KeyType    *CryptoAlgorithm `json:"key_type,omitempty"`
}

// NewChannelAuthorize builds a request with no signing secret set.
func NewChannelAuthorize(channelID string, amount amounts.Amount) (ChannelAuthorize, error) {
	r := ChannelAuthorize{Request: Request{Method: MethodChannelAuthorize}, ChannelID: channelID, Amount: amount}
	if iss := ledgerskema.CheckRequired(r); len(iss) > 0 {
		return ChannelAuthorize{}, iss
	}
	return r, nil
}

func (r ChannelAuthorize) WithSecret(secret string) ChannelAuthorize {
	r.Secret = &secret
	return r
}

func (r ChannelAuthorize) WithSeed(seed string) ChannelAuthorize {
	r.Seed = &seed
	return r
}

func (r ChannelAuthorize) WithSeedHex(seedHex string) ChannelAuthorize {
	r.SeedHex = &seedHex
	return r
}

func (r ChannelAuthorize) WithPassphrase(p string) ChannelAuthorize {
	r.Passphrase = &p
	return r
}

func (r ChannelAuthorize) WithKeyType(t CryptoAlgorithm) ChannelAuthorize {
	r.KeyType = &t
	return r
}

// Normalize pins the method name.
func (r ChannelAuthorize) Normalize() (ChannelAuthorize, error) {
	req, err := r.Request.pin(MethodChannelAuthorize)
	if err != nil {
		return ChannelAuthorize{}, err
	}
	r.Request = req
	return r, nil
}

func (r ChannelAuthorize) Validate() ledgerskema.Issues {
	return rules.Run(r,
		func(r ChannelAuthorize) ledgerskema.Issues { return r.Request.validateFor(MethodChannelAuthorize) },
		func(r ChannelAuthorize) ledgerskema.Issues { return ledgerskema.CheckRequired(r) },
		func(r ChannelAuthorize) ledgerskema.Issues {
			return rules.ExactlyOne(RuleChannelAuthorize,
				"Must set exactly one of `secret`, `seed`, `seed_hex`, or `passphrase`.",
				r.Secret != nil, r.Seed != nil, r.SeedHex != nil, r.Passphrase != nil)
		},
		rules.When(func(r ChannelAuthorize) bool { return r.ChannelID != "" },
			func(r ChannelAuthorize) ledgerskema.Issues { return rules.Hex("channel_id", r.ChannelID, 64) }),
		rules.When(func(r ChannelAuthorize) bool { return !r.Amount.IsZero() },
			func(r ChannelAuthorize) ledgerskema.Issues { return r.Amount.Validate().Under("amount") }),
		rules.When(func(r ChannelAuthorize) bool { return r.KeyType != nil },
			func(r ChannelAuthorize) ledgerskema.Issues { return rules.OneOf("key_type", *r.KeyType) }),
	)
}
