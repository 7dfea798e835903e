package amounts

import (
	"errors"
	"reflect"

	j "github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"github.com/reoring/ledgerskema"
)

// MaxDrops is the largest native amount the ledger can represent.
var MaxDrops = decimal.New(1, 17)

// IssuedCurrencyAmount is the object form of an Amount.
type IssuedCurrencyAmount struct {
	Currency string `json:"currency" ledger:"required,nonzero"`
	Issuer   string `json:"issuer" ledger:"required,nonzero"`
	Value    string `json:"value" ledger:"required,nonzero"`
}

func (a IssuedCurrencyAmount) Validate() ledgerskema.Issues {
	iss := ledgerskema.CheckRequired(a)
	root := ledgerskema.Root()
	if a.Currency != "" && !ValidCurrencyCode(a.Currency) {
		iss = ledgerskema.AppendIssues(iss, root.Field("currency").Issue(ledgerskema.CodeInvalidFormat, "Invalid currency code.", "got", a.Currency))
	}
	if a.Value != "" {
		if _, err := decimal.NewFromString(a.Value); err != nil {
			iss = ledgerskema.AppendIssues(iss, root.Field("value").Issue(ledgerskema.CodeInvalidAmount, "Value must be a decimal number.", "got", a.Value))
		}
	}
	return iss
}

// Amount is either a native amount in drops (a JSON string) or an
// IssuedCurrencyAmount (a JSON object).
type Amount struct {
	drops  string
	issued *IssuedCurrencyAmount
}

// Drops returns a native amount.
func Drops(drops string) Amount { return Amount{drops: drops} }

// Issued returns an issued-currency amount.
func Issued(currency, issuer, value string) Amount {
	return Amount{issued: &IssuedCurrencyAmount{Currency: currency, Issuer: issuer, Value: value}}
}

// IsZero reports whether the amount is unset.
func (a Amount) IsZero() bool { return a.drops == "" && a.issued == nil }

// IsNative reports whether the amount is denominated in drops.
func (a Amount) IsNative() bool { return a.issued == nil }

// DropsValue returns the drops string of a native amount.
func (a Amount) DropsValue() (string, bool) { return a.drops, a.issued == nil }

// IssuedValue returns the object form of an issued amount.
func (a Amount) IssuedValue() (IssuedCurrencyAmount, bool) {
	if a.issued == nil {
		return IssuedCurrencyAmount{}, false
	}
	return *a.issued, true
}

func (a Amount) ObjectType() reflect.Type { return reflect.TypeOf(IssuedCurrencyAmount{}) }

func (a Amount) MarshalJSON() ([]byte, error) {
	if a.issued != nil {
		return j.Marshal(a.issued)
	}
	return j.Marshal(a.drops)
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := j.Unmarshal(b, &s); err != nil {
			return err
		}
		*a = Drops(s)
		return nil
	}
	if len(b) > 0 && b[0] == '{' {
		var ic IssuedCurrencyAmount
		if err := j.Unmarshal(b, &ic); err != nil {
			return err
		}
		*a = Amount{issued: &ic}
		return nil
	}
	return errors.New("amount must be a string of drops or an issued currency object")
}

func (a Amount) Validate() ledgerskema.Issues {
	if a.issued != nil {
		return a.issued.Validate()
	}
	root := ledgerskema.Root()
	if a.drops == "" {
		return ledgerskema.Issues{root.Issue(ledgerskema.CodeRequired, "Amount in drops is required.")}
	}
	d, err := decimal.NewFromString(a.drops)
	if err != nil || !isDigits(a.drops) {
		return ledgerskema.Issues{root.Issue(ledgerskema.CodeInvalidAmount, "Drops must be a non-negative integer string.", "got", a.drops)}
	}
	if d.GreaterThan(MaxDrops) {
		return ledgerskema.Issues{root.Issue(ledgerskema.CodeInvalidAmount, "Drops exceed the maximum native amount.", "max", MaxDrops.String(), "got", a.drops)}
	}
	return nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}
