package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Package is a purchasable configuration of a product (pack size) with its
// own price. It is copied into cart line items at add time so the price a
// customer saw stays stable while the item sits in the cart.
type Package struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Images      []string  `json:"images,omitempty"`
	Packages    []Package `json:"variants"`
	InStock     bool      `json:"inStock"`
	CreatedAt   time.Time `json:"createdAt"`
}
