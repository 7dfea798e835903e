// Package hooks provides helpers for building SetHook transactions and hook
// parameters.
package hooks

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/reoring/ledgerskema/transactions"
)

// hookOnSeed is the HookOn value of a hook triggered by no transaction type.
const hookOnSeed = 0x3e3ff5bf

// CalculateHookOn computes the HookOn field of a hook that fires on the given
// transaction types. The result is 64 upper-case hex digits.
func CalculateHookOn(types []transactions.TransactionType) (string, error) {
	v := big.NewInt(hookOnSeed)
	for _, tt := range types {
		code, ok := tt.Code()
		if !ok {
			return "", fmt.Errorf("invalid transaction type %q in HookOn array", tt)
		}
		v.Xor(v, new(big.Int).Lsh(big.NewInt(1), uint(code)))
	}
	return fmt.Sprintf("%064X", v), nil
}

// HexHookParameters returns a copy of params with names and values encoded
// as upper-case hex.
func HexHookParameters(params []transactions.HookParameterEntry) []transactions.HookParameterEntry {
	out := make([]transactions.HookParameterEntry, len(params))
	for i, p := range params {
		hp := transactions.HookParameter{HookParameterName: hexUpper(p.HookParameter.HookParameterName)}
		if p.HookParameter.HookParameterValue != nil {
			v := hexUpper(*p.HookParameter.HookParameterValue)
			hp.HookParameterValue = &v
		}
		out[i] = transactions.HookParameterEntry{HookParameter: hp}
	}
	return out
}

func hexUpper(s string) string { return strings.ToUpper(hex.EncodeToString([]byte(s))) }
