package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderPending        OrderStatus = "pending"
	OrderConfirmed      OrderStatus = "confirmed"
	OrderProcessing     OrderStatus = "processing"
	OrderShipped        OrderStatus = "shipped"
	OrderInTransit      OrderStatus = "in_transit"
	OrderOutForDelivery OrderStatus = "out_for_delivery"
	OrderDelivered      OrderStatus = "delivered"
	OrderCancelled      OrderStatus = "cancelled"
	OrderReturned       OrderStatus = "returned"
	OrderRefunded       OrderStatus = "refunded"
)

var orderStatuses = map[OrderStatus]struct{}{
	OrderPending:        {},
	OrderConfirmed:      {},
	OrderProcessing:     {},
	OrderShipped:        {},
	OrderInTransit:      {},
	OrderOutForDelivery: {},
	OrderDelivered:      {},
	OrderCancelled:      {},
	OrderReturned:       {},
	OrderRefunded:       {},
}

// Valid reports whether s is one of the known order statuses.
func (s OrderStatus) Valid() bool {
	_, ok := orderStatuses[s]
	return ok
}

// OrderProduct is the denormalized snapshot of a purchased line stored on
// the order itself, so later product edits never rewrite order history.
type OrderProduct struct {
	ProductID   string          `json:"productId"`
	Name        string          `json:"name"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	VariantName string          `json:"variantName,omitempty"`
}

type Order struct {
	ID               string          `json:"id"`
	UserID           string          `json:"userId"`
	Products         []OrderProduct  `json:"products"`
	TotalPrice       decimal.Decimal `json:"totalPrice"`
	DeliveryAddress  string          `json:"deliveryAddress"`
	PaymentMethod    string          `json:"paymentMethod"`
	PaidFromWallet   decimal.Decimal `json:"paidFromWallet"`
	Status           OrderStatus     `json:"status"`
	ExpectedDelivery time.Time       `json:"expectedDelivery"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}
