package wallet

import (
	"context"

	"medicart/internal/domain"
	"github.com/shopspring/decimal"
)

type Repository interface {
	Get(ctx context.Context, userID string) (*domain.Wallet, error)
	// Credit adds to the balance, creating the wallet row if needed, and
	// appends a credit ledger entry in the same transaction.
	Credit(ctx context.Context, userID string, amount decimal.Decimal, description string) (*domain.Wallet, error)
	ListTransactions(ctx context.Context, userID string) ([]domain.WalletTransaction, error)
}
