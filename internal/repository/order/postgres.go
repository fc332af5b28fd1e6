package order

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

const orderColumns = `
id::text, user_id, products, total_price::text, delivery_address, payment_method,
paid_from_wallet::text, status, expected_delivery, created_at, updated_at
`

func (r *postgresRepo) Place(ctx context.Context, in PlaceInput) (*domain.Order, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	debit := in.PaidFromWallet.IsPositive()
	if debit {
		// FOR UPDATE locks the wallet row so two simultaneous checkouts
		// for the same user cannot both pass the balance check.
		var raw string
		err := tx.QueryRow(ctx, `
SELECT balance::text
FROM wallets
WHERE user_id = $1
FOR UPDATE
`, in.UserID).Scan(&raw)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, domain.ErrWalletNotFound
			}
			r.logger.Printf("order repo: wallet read user_id=%s error=%v", in.UserID, err)
			return nil, err
		}

		balance, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("parse wallet balance: %w", err)
		}
		if balance.LessThan(in.PaidFromWallet) {
			return nil, domain.ErrInsufficientBalance
		}

		cmd, err := tx.Exec(ctx, `
UPDATE wallets
SET balance = balance - $1::numeric, updated_at = now()
WHERE user_id = $2 AND balance >= $1::numeric
`, in.PaidFromWallet.String(), in.UserID)
		if err != nil {
			r.logger.Printf("order repo: wallet debit user_id=%s amount=%s error=%v", in.UserID, in.PaidFromWallet, err)
			return nil, err
		}
		if cmd.RowsAffected() == 0 {
			return nil, domain.ErrInsufficientBalance
		}
	}

	row := tx.QueryRow(ctx, `
INSERT INTO orders (user_id, products, total_price, delivery_address, payment_method, paid_from_wallet, expected_delivery)
VALUES ($1, $2, $3::numeric, $4, $5, $6::numeric, $7)
RETURNING `+orderColumns,
		in.UserID,
		in.Products,
		in.TotalPrice.String(),
		in.DeliveryAddress,
		in.PaymentMethod,
		in.PaidFromWallet.String(),
		in.ExpectedDelivery,
	)
	order, err := scanOrder(row)
	if err != nil {
		r.logger.Printf("order repo: insert user_id=%s amount=%s error=%v", in.UserID, in.TotalPrice, err)
		return nil, err
	}

	if debit {
		description := fmt.Sprintf("Payment for order %s", shortID(order.ID))
		if _, err := tx.Exec(ctx, `
INSERT INTO wallet_transactions (user_id, type, amount, description, order_id, status)
VALUES ($1, 'debit', $2::numeric, $3, $4, 'completed')
`, in.UserID, in.PaidFromWallet.String(), description, order.ID); err != nil {
			r.logger.Printf("order repo: ledger insert user_id=%s order_id=%s error=%v", in.UserID, order.ID, err)
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Printf("order repo: commit user_id=%s error=%v", in.UserID, err)
		return nil, err
	}
	return order, nil
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	const q = `
SELECT ` + orderColumns + `
FROM orders
WHERE user_id = $1
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		r.logger.Printf("order repo: list user_id=%s error=%v", userID, err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *order)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("order repo: list rows user_id=%s error=%v", userID, err)
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, userID, id string) (*domain.Order, error) {
	const q = `
SELECT ` + orderColumns + `
FROM orders
WHERE user_id = $1 AND id = $2
`
	order, err := scanOrder(r.pool.QueryRow(ctx, q, userID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("order repo: get user_id=%s id=%s error=%v", userID, id, err)
		return nil, err
	}
	return order, nil
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	const q = `
UPDATE orders
SET status = $1, updated_at = now()
WHERE id = $2
RETURNING ` + orderColumns
	order, err := scanOrder(r.pool.QueryRow(ctx, q, string(status), id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("order repo: update status id=%s status=%s error=%v", id, status, err)
		return nil, err
	}
	return order, nil
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var (
		o         domain.Order
		totalRaw  string
		walletRaw string
		status    string
	)
	if err := row.Scan(
		&o.ID,
		&o.UserID,
		&o.Products,
		&totalRaw,
		&o.DeliveryAddress,
		&o.PaymentMethod,
		&walletRaw,
		&status,
		&o.ExpectedDelivery,
		&o.CreatedAt,
		&o.UpdatedAt,
	); err != nil {
		return nil, err
	}

	var err error
	if o.TotalPrice, err = decimal.NewFromString(totalRaw); err != nil {
		return nil, fmt.Errorf("parse total_price: %w", err)
	}
	if o.PaidFromWallet, err = decimal.NewFromString(walletRaw); err != nil {
		return nil, fmt.Errorf("parse paid_from_wallet: %w", err)
	}
	o.Status = domain.OrderStatus(status)
	return &o, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
