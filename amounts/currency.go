package amounts

import (
	"encoding/hex"
	"strings"

	"github.com/reoring/ledgerskema"
)

// NativeCurrency is the currency code of the ledger's native asset.
const NativeCurrency = "XAH"

// Currency identifies an asset: the native currency (no issuer) or an issued
// currency code together with its issuing account.
type Currency struct {
	Currency string `json:"currency" ledger:"required,nonzero"`
	Issuer   string `json:"issuer,omitempty"`
}

// Native returns the native currency.
func Native() Currency { return Currency{Currency: NativeCurrency} }

// IssuedCurrency returns an issued currency.
func IssuedCurrency(code, issuer string) Currency {
	return Currency{Currency: code, Issuer: issuer}
}

// IsNative reports whether c is the native asset.
func (c Currency) IsNative() bool { return isNativeCode(c.Currency) }

func (c Currency) Validate() ledgerskema.Issues {
	iss := ledgerskema.CheckRequired(c)
	if c.Currency == "" {
		return iss
	}
	root := ledgerskema.Root()
	switch {
	case c.IsNative():
		if c.Issuer != "" {
			iss = ledgerskema.AppendIssues(iss, root.Field("issuer").Issue(ledgerskema.CodeConflict, "Native currency must not have an issuer."))
		}
	default:
		if !ValidCurrencyCode(c.Currency) {
			iss = ledgerskema.AppendIssues(iss, root.Field("currency").Issue(ledgerskema.CodeInvalidFormat, "Invalid currency code.", "got", c.Currency))
		}
		if c.Issuer == "" {
			iss = ledgerskema.AppendIssues(iss, root.Field("issuer").Issue(ledgerskema.CodeRequired, "Issued currency requires an issuer."))
		}
	}
	return iss
}

// ValidCurrencyCode reports whether code is a standard three character code
// (other than the native one) or a 160-bit hex code.
func ValidCurrencyCode(code string) bool {
	if len(code) == 3 {
		if isNativeCode(code) {
			return false
		}
		for _, r := range code {
			if r > 0x7e || r < 0x21 {
				return false
			}
		}
		return true
	}
	if len(code) == 40 {
		_, err := hex.DecodeString(code)
		return err == nil
	}
	return false
}

func isNativeCode(code string) bool {
	return strings.EqualFold(code, NativeCurrency) || strings.EqualFold(code, "XRP")
}
