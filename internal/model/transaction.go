package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TxnType is a transaction type as printed on a TNG e-wallet statement.
// The set is closed: this statement layout only ever shows these three.
type TxnType string

const (
	TypeReceiveFromWallet TxnType = "Receive from Wallet"
	TypePayDirectPayment  TxnType = "PayDirect Payment"
	TypeDuitNowReceive    TxnType = "DUITNOW_RECEI"
)

// AllTypes returns the known transaction types in a stable order.
func AllTypes() []TxnType {
	return []TxnType{TypeReceiveFromWallet, TypePayDirectPayment, TypeDuitNowReceive}
}

// ParseType maps a statement literal to its TxnType.
func ParseType(s string) (TxnType, bool) {
	switch TxnType(s) {
	case TypeReceiveFromWallet, TypePayDirectPayment, TypeDuitNowReceive:
		return TxnType(s), true
	}
	return "", false
}

// IsCredit reports whether the type adds money to the wallet.
func (t TxnType) IsCredit() bool {
	return t == TypeReceiveFromWallet || t == TypeDuitNowReceive
}

// RawTransaction is one statement row as matched from page text, before
// any type conversion. Amount and Balance are never negative.
type RawTransaction struct {
	Date    string // D/M/YYYY or DD/MM/YYYY as printed
	Type    TxnType
	Name    string // uppercase counterparty, possibly empty
	Amount  decimal.Decimal
	Balance decimal.Decimal // running balance at time of transaction
}

// Transaction is a normalized statement row. Amount carries the sign:
// positive for credits, negative for debits. Balance stays as printed on
// the statement, never recomputed.
type Transaction struct {
	Date    time.Time
	Type    TxnType
	Name    string
	Amount  decimal.Decimal
	Balance decimal.Decimal
}
