package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type productSeed struct {
	Name        string
	Description string
	Packages    string // jsonb literal
	Images      string // jsonb literal
}

// Apply inserts basic seed data for manual testing. It is idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	products := []productSeed{
		{
			Name:        "Paracetamol 500mg",
			Description: "Pain and fever relief tablets",
			Packages:    `[{"name":"10-pack","price":"45"},{"name":"30-pack","price":"120"}]`,
			Images:      `["https://cdn.medicart.example/paracetamol.jpg"]`,
		},
		{
			Name:        "Cetirizine 10mg",
			Description: "Antihistamine for allergy relief",
			Packages:    `[{"name":"10-pack","price":"60"}]`,
			Images:      `["https://cdn.medicart.example/cetirizine.jpg"]`,
		},
		{
			Name:        "Vitamin D3 1000 IU",
			Description: "Daily vitamin D supplement",
			Packages:    `[{"name":"60-capsules","price":"350"},{"name":"120-capsules","price":"640"}]`,
			Images:      `["https://cdn.medicart.example/vitamin-d3.jpg"]`,
		},
	}

	for _, p := range products {
		if err := upsertProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.Name, err)
		}
	}

	if err := ensureWallet(ctx, pool, "demo-user", "1500"); err != nil {
		return fmt.Errorf("ensure demo wallet: %w", err)
	}

	return nil
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, p productSeed) error {
	const q = `
INSERT INTO products (name, description, images, packages, in_stock)
VALUES ($1, $2, $3::jsonb, $4::jsonb, true)
ON CONFLICT (name) DO UPDATE
SET description = EXCLUDED.description,
    images = EXCLUDED.images,
    packages = EXCLUDED.packages,
    in_stock = EXCLUDED.in_stock
`
	_, err := pool.Exec(ctx, q, p.Name, p.Description, p.Images, p.Packages)
	return err
}

func ensureWallet(ctx context.Context, pool *pgxpool.Pool, userID, balance string) error {
	const q = `
INSERT INTO wallets (user_id, balance)
VALUES ($1, $2::numeric)
ON CONFLICT (user_id) DO NOTHING
`
	_, err := pool.Exec(ctx, q, userID, balance)
	return err
}
