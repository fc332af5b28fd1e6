package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wallet holds a user's stored balance, funded by affiliate earnings and
// spendable at checkout. Balance lives on this row; the transaction log is
// append-only history.
type Wallet struct {
	UserID    string          `json:"userId"`
	Balance   decimal.Decimal `json:"balance"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

type TransactionType string

const (
	TransactionCredit TransactionType = "credit"
	TransactionDebit  TransactionType = "debit"
)

type WalletTransaction struct {
	ID          string          `json:"id"`
	UserID      string          `json:"userId"`
	Type        TransactionType `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	OrderID     *string         `json:"orderId,omitempty"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
}
