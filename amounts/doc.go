// Package amounts models currency amounts as they appear in requests and
// transactions: native XAH expressed in drops, or an issued-currency amount
// naming a currency, its issuer and a decimal value.
package amounts
