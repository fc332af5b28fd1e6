package wallet

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"medicart/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Get(ctx context.Context, userID string) (*domain.Wallet, error) {
	const q = `
SELECT user_id, balance::text, updated_at
FROM wallets
WHERE user_id = $1
`
	var (
		w   domain.Wallet
		raw string
	)
	err := r.pool.QueryRow(ctx, q, userID).Scan(&w.UserID, &raw, &w.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrWalletNotFound
		}
		r.logger.Printf("wallet repo: get user_id=%s error=%v", userID, err)
		return nil, err
	}
	if w.Balance, err = decimal.NewFromString(raw); err != nil {
		return nil, fmt.Errorf("parse balance: %w", err)
	}
	return &w, nil
}

func (r *postgresRepo) Credit(ctx context.Context, userID string, amount decimal.Decimal, description string) (*domain.Wallet, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var (
		w   domain.Wallet
		raw string
	)
	err = tx.QueryRow(ctx, `
INSERT INTO wallets (user_id, balance)
VALUES ($1, $2::numeric)
ON CONFLICT (user_id) DO UPDATE
SET balance = wallets.balance + EXCLUDED.balance, updated_at = now()
RETURNING user_id, balance::text, updated_at
`, userID, amount.String()).Scan(&w.UserID, &raw, &w.UpdatedAt)
	if err != nil {
		r.logger.Printf("wallet repo: credit user_id=%s amount=%s error=%v", userID, amount, err)
		return nil, err
	}
	if w.Balance, err = decimal.NewFromString(raw); err != nil {
		return nil, fmt.Errorf("parse balance: %w", err)
	}

	if _, err := tx.Exec(ctx, `
INSERT INTO wallet_transactions (user_id, type, amount, description, status)
VALUES ($1, 'credit', $2::numeric, $3, 'completed')
`, userID, amount.String(), description); err != nil {
		r.logger.Printf("wallet repo: credit ledger user_id=%s error=%v", userID, err)
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *postgresRepo) ListTransactions(ctx context.Context, userID string) ([]domain.WalletTransaction, error) {
	const q = `
SELECT id::text, user_id, type, amount::text, COALESCE(description, ''), order_id::text, status, created_at
FROM wallet_transactions
WHERE user_id = $1
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		r.logger.Printf("wallet repo: list transactions user_id=%s error=%v", userID, err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.WalletTransaction
	for rows.Next() {
		var (
			t       domain.WalletTransaction
			raw     string
			orderID *string
		)
		if err := rows.Scan(&t.ID, &t.UserID, &t.Type, &raw, &t.Description, &orderID, &t.Status, &t.CreatedAt); err != nil {
			return nil, err
		}
		if t.Amount, err = decimal.NewFromString(raw); err != nil {
			return nil, fmt.Errorf("parse amount: %w", err)
		}
		t.OrderID = orderID
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("wallet repo: list transactions rows user_id=%s error=%v", userID, err)
		return nil, err
	}
	return result, nil
}
