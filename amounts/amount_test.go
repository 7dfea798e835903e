package amounts_test

import (
	"testing"

	j "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/ledgerskema"
	"github.com/reoring/ledgerskema/amounts"
)

func TestAmount_Validate(t *testing.T) {
	cases := []struct {
		name string
		amt  amounts.Amount
		code string
	}{
		{name: "drops", amt: amounts.Drops("1000000")},
		{name: "zero drops", amt: amounts.Drops("0")},
		{name: "max drops", amt: amounts.Drops("100000000000000000")},
		{name: "too many drops", amt: amounts.Drops("100000000000000001"), code: ledgerskema.CodeInvalidAmount},
		{name: "fractional drops", amt: amounts.Drops("1.5"), code: ledgerskema.CodeInvalidAmount},
		{name: "negative drops", amt: amounts.Drops("-1"), code: ledgerskema.CodeInvalidAmount},
		{name: "empty drops", amt: amounts.Drops(""), code: ledgerskema.CodeRequired},
		{name: "issued", amt: amounts.Issued("USD", "rIssuer", "12.5")},
		{name: "issued hex code", amt: amounts.Issued("0158415500000000C1F76FF6ECB0BAC600000000", "rIssuer", "1e3")},
		{name: "issued bad value", amt: amounts.Issued("USD", "rIssuer", "twelve"), code: ledgerskema.CodeInvalidAmount},
		{name: "issued native code", amt: amounts.Issued("XAH", "rIssuer", "1"), code: ledgerskema.CodeInvalidFormat},
		{name: "issued missing issuer", amt: amounts.Issued("USD", "", "1"), code: ledgerskema.CodeRequired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			iss := tc.amt.Validate()
			if tc.code == "" {
				assert.Empty(t, iss)
				return
			}
			require.NotEmpty(t, iss)
			assert.True(t, iss.Has(tc.code), "issues: %v", iss)
		})
	}
}

func TestAmount_JSONForms(t *testing.T) {
	b, err := j.Marshal(amounts.Drops("10"))
	require.NoError(t, err)
	assert.JSONEq(t, `"10"`, string(b))

	b, err = j.Marshal(amounts.Issued("USD", "rIssuer", "1"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"currency":"USD","issuer":"rIssuer","value":"1"}`, string(b))

	var a amounts.Amount
	require.NoError(t, j.Unmarshal([]byte(`{"currency":"USD","issuer":"rIssuer","value":"1"}`), &a))
	ic, ok := a.IssuedValue()
	require.True(t, ok)
	assert.Equal(t, "USD", ic.Currency)
	assert.False(t, a.IsNative())

	require.NoError(t, j.Unmarshal([]byte(`"25"`), &a))
	drops, ok := a.DropsValue()
	require.True(t, ok)
	assert.Equal(t, "25", drops)

	assert.Error(t, j.Unmarshal([]byte(`25`), &a))
}

func TestCurrency_Validate(t *testing.T) {
	assert.Empty(t, amounts.Native().Validate())
	assert.Empty(t, amounts.IssuedCurrency("USD", "rIssuer").Validate())
	assert.True(t, amounts.Currency{Currency: "XAH", Issuer: "rX"}.Validate().Has(ledgerskema.CodeConflict))
	assert.True(t, amounts.IssuedCurrency("USD", "").Validate().Has(ledgerskema.CodeRequired))
	assert.True(t, amounts.Currency{}.Validate().Has(ledgerskema.CodeRequired))
}

func TestAmount_IsZero(t *testing.T) {
	var a amounts.Amount
	assert.True(t, a.IsZero())
	assert.False(t, amounts.Drops("1").IsZero())
	assert.False(t, amounts.Issued("USD", "rIssuer", "0").IsZero())
}

func TestIssuedCurrencyAmount_EachRequiredField(t *testing.T) {
	for _, key := range []string{"currency", "issuer", "value"} {
		t.Run(key, func(t *testing.T) {
			doc := map[string]any{"currency": "USD", "issuer": "rIssuer", "value": "1.5"}
			_, err := ledgerskema.FromMap[amounts.IssuedCurrencyAmount](doc)
			require.NoError(t, err)

			delete(doc, key)
			_, err = ledgerskema.FromMap[amounts.IssuedCurrencyAmount](doc)
			require.ErrorIs(t, err, ledgerskema.ErrMissingRequiredField)
			iss, _ := ledgerskema.AsIssues(err)
			require.Len(t, iss, 1)
			assert.Equal(t, "/"+key, iss[0].Path)
		})
	}

	_, err := ledgerskema.FromMap[amounts.Currency](map[string]any{"issuer": "rIssuer"})
	require.ErrorIs(t, err, ledgerskema.ErrMissingRequiredField)
}
