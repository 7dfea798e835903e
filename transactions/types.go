package transactions

import (
	"sort"

	"github.com/reoring/ledgerskema"
)

// TransactionType names a kind of transaction.
type TransactionType string

const (
	TypePayment                 TransactionType = "Payment"
	TypeEscrowCreate            TransactionType = "EscrowCreate"
	TypeEscrowFinish            TransactionType = "EscrowFinish"
	TypeAccountSet              TransactionType = "AccountSet"
	TypeEscrowCancel            TransactionType = "EscrowCancel"
	TypeSetRegularKey           TransactionType = "SetRegularKey"
	TypeOfferCreate             TransactionType = "OfferCreate"
	TypeOfferCancel             TransactionType = "OfferCancel"
	TypeTicketCreate            TransactionType = "TicketCreate"
	TypeSignerListSet           TransactionType = "SignerListSet"
	TypePaymentChannelCreate    TransactionType = "PaymentChannelCreate"
	TypePaymentChannelFund      TransactionType = "PaymentChannelFund"
	TypePaymentChannelClaim     TransactionType = "PaymentChannelClaim"
	TypeCheckCreate             TransactionType = "CheckCreate"
	TypeCheckCash               TransactionType = "CheckCash"
	TypeCheckCancel             TransactionType = "CheckCancel"
	TypeDepositPreauth          TransactionType = "DepositPreauth"
	TypeTrustSet                TransactionType = "TrustSet"
	TypeAccountDelete           TransactionType = "AccountDelete"
	TypeSetHook                 TransactionType = "SetHook"
	TypeURITokenMint            TransactionType = "URITokenMint"
	TypeURITokenBurn            TransactionType = "URITokenBurn"
	TypeURITokenBuy             TransactionType = "URITokenBuy"
	TypeURITokenCreateSellOffer TransactionType = "URITokenCreateSellOffer"
	TypeURITokenCancelSellOffer TransactionType = "URITokenCancelSellOffer"
	TypeSetRemarks              TransactionType = "SetRemarks"
	TypeRemit                   TransactionType = "Remit"
	TypeGenesisMint             TransactionType = "GenesisMint"
	TypeImport                  TransactionType = "Import"
	TypeClaimReward             TransactionType = "ClaimReward"
	TypeInvoke                  TransactionType = "Invoke"
	TypeEnableAmendment         TransactionType = "EnableAmendment"
	TypeSetFee                  TransactionType = "SetFee"
	TypeUNLModify               TransactionType = "UNLModify"
	TypeEmitFailure             TransactionType = "EmitFailure"
	TypeUNLReport               TransactionType = "UNLReport"
)

// typeCodes maps each transaction type to its binary type code.
var typeCodes = map[TransactionType]int{
	TypePayment:                 0,
	TypeEscrowCreate:            1,
	TypeEscrowFinish:            2,
	TypeAccountSet:              3,
	TypeEscrowCancel:            4,
	TypeSetRegularKey:           5,
	TypeOfferCreate:             7,
	TypeOfferCancel:             8,
	TypeTicketCreate:            10,
	TypeSignerListSet:           12,
	TypePaymentChannelCreate:    13,
	TypePaymentChannelFund:      14,
	TypePaymentChannelClaim:     15,
	TypeCheckCreate:             16,
	TypeCheckCash:               17,
	TypeCheckCancel:             18,
	TypeDepositPreauth:          19,
	TypeTrustSet:                20,
	TypeAccountDelete:           21,
	TypeSetHook:                 22,
	TypeURITokenMint:            45,
	TypeURITokenBurn:            46,
	TypeURITokenBuy:             47,
	TypeURITokenCreateSellOffer: 48,
	TypeURITokenCancelSellOffer: 49,
	TypeSetRemarks:              94,
	TypeRemit:                   95,
	TypeGenesisMint:             96,
	TypeImport:                  97,
	TypeClaimReward:             98,
	TypeInvoke:                  99,
	TypeEnableAmendment:         100,
	TypeSetFee:                  101,
	TypeUNLModify:               102,
	TypeEmitFailure:             103,
	TypeUNLReport:               104,
}

var transactionTypes = func() []TransactionType {
	out := make([]TransactionType, 0, len(typeCodes))
	for t := range typeCodes {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return typeCodes[out[i]] < typeCodes[out[j]] })
	return out
}()

func (t TransactionType) Valid() bool {
	_, ok := typeCodes[t]
	return ok
}

func (t TransactionType) Values() []string { return ledgerskema.EnumValues(transactionTypes) }

// Code returns the binary type code of t.
func (t TransactionType) Code() (int, bool) {
	c, ok := typeCodes[t]
	return c, ok
}

// TransactionTypes lists every known transaction type ordered by type code.
func TransactionTypes() []TransactionType {
	return append([]TransactionType(nil), transactionTypes...)
}
