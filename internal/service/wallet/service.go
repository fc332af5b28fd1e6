package wallet

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"medicart/internal/domain"
	walletrepo "medicart/internal/repository/wallet"
	"github.com/shopspring/decimal"
)

// ErrInvalidInput marks request-shaped validation failures, mapped to 400
// by the HTTP layer.
var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	repo walletrepo.Repository
}

func New(repo walletrepo.Repository) *Service {
	return &Service{repo: repo}
}

// Summary is the wallet page payload: current balance plus the ledger,
// newest first.
type Summary struct {
	UserID       string                     `json:"userId"`
	Balance      decimal.Decimal            `json:"balance"`
	Transactions []domain.WalletTransaction `json:"transactions"`
}

func (s *Service) Get(ctx context.Context, userID string) (*Summary, error) {
	w, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	txs, err := s.repo.ListTransactions(ctx, userID)
	if err != nil {
		return nil, err
	}
	if txs == nil {
		txs = []domain.WalletTransaction{}
	}
	return &Summary{UserID: w.UserID, Balance: w.Balance, Transactions: txs}, nil
}

// Credit tops up a wallet from affiliate earnings. The amount arrives as a
// decimal string and must be strictly positive.
func (s *Service) Credit(ctx context.Context, userID, amount, description string) (*domain.Wallet, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: userId required", ErrInvalidInput)
	}
	d, err := decimal.NewFromString(amount)
	if err != nil || !d.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}
	return s.repo.Credit(ctx, userID, d, description)
}
