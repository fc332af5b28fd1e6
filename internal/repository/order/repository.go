package order

import (
	"context"
	"time"

	"medicart/internal/domain"
	"github.com/shopspring/decimal"
)

// PlaceInput carries everything needed to persist a new order, including
// the wallet amount to debit in the same transaction.
type PlaceInput struct {
	UserID           string
	Products         []domain.OrderProduct
	TotalPrice       decimal.Decimal
	DeliveryAddress  string
	PaymentMethod    string
	PaidFromWallet   decimal.Decimal
	ExpectedDelivery time.Time
}

type Repository interface {
	// Place inserts the order and, when PaidFromWallet is positive, debits
	// the wallet and appends the matching ledger entry inside one
	// transaction. Returns domain.ErrWalletNotFound or
	// domain.ErrInsufficientBalance without any mutation.
	Place(ctx context.Context, in PlaceInput) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	GetByID(ctx context.Context, userID, id string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
}
