package checkout

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"medicart/internal/domain"
	orderrepo "medicart/internal/repository/order"
	"github.com/shopspring/decimal"
)

// ErrInvalidInput marks request-shaped validation failures, mapped to 400
// by the HTTP layer.
var ErrInvalidInput = errors.New("invalid input")

// deliveryLeadTime is added to the placement time to compute the expected
// delivery date. Calendar time, not business days.
const deliveryLeadTime = 3 * 24 * time.Hour

// Service turns a priced cart snapshot plus payment choice into a
// persisted order. The wallet debit, order insert and ledger entry happen
// in one repository transaction; the cart clear afterwards is best effort.
type Service struct {
	orders orderPlacer
	cart   cartClearer
	logger *log.Logger
	now    func() time.Time
}

type orderPlacer interface {
	Place(ctx context.Context, in orderrepo.PlaceInput) (*domain.Order, error)
}

type cartClearer interface {
	Clear(userID string)
}

func New(orders orderPlacer, cart cartClearer, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{orders: orders, cart: cart, logger: logger, now: time.Now}
}

// Input mirrors the POST /orders body. Monetary fields arrive as decimal
// strings and are parsed here, before any side effect.
type Input struct {
	UserID          string         `json:"userId"`
	Products        []ProductInput `json:"products"`
	TotalPrice      string         `json:"totalPrice"`
	DeliveryAddress string         `json:"deliveryAddress"`
	PaymentMethod   string         `json:"paymentMethod"`
	PaidFromWallet  string         `json:"paidFromWallet"`
}

type ProductInput struct {
	ProductID   string `json:"productId"`
	Name        string `json:"name"`
	Quantity    int    `json:"quantity"`
	Price       string `json:"price"`
	VariantName string `json:"variantName"`
}

// PlaceOrder validates the input, persists the order (debiting the wallet
// when requested) and clears the user's cart.
//
// Error contract: domain.ErrInvalidAmount for unparseable or negative
// money, domain.ErrWalletNotFound and domain.ErrInsufficientBalance from
// the wallet branch, ErrInvalidInput for missing fields. None of these
// leave any state behind.
func (s *Service) PlaceOrder(ctx context.Context, in Input) (*domain.Order, error) {
	if strings.TrimSpace(in.UserID) == "" {
		return nil, fmt.Errorf("%w: userId required", ErrInvalidInput)
	}
	if len(in.Products) == 0 {
		return nil, fmt.Errorf("%w: products required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.DeliveryAddress) == "" {
		return nil, fmt.Errorf("%w: deliveryAddress required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.PaymentMethod) == "" {
		return nil, fmt.Errorf("%w: paymentMethod required", ErrInvalidInput)
	}

	products := make([]domain.OrderProduct, 0, len(in.Products))
	for _, p := range in.Products {
		if strings.TrimSpace(p.ProductID) == "" {
			return nil, fmt.Errorf("%w: product productId required", ErrInvalidInput)
		}
		if p.Quantity < 1 {
			return nil, fmt.Errorf("%w: product quantity must be positive", ErrInvalidInput)
		}
		price, err := parseAmount(p.Price)
		if err != nil {
			return nil, fmt.Errorf("product %s price: %w", p.ProductID, err)
		}
		products = append(products, domain.OrderProduct{
			ProductID:   p.ProductID,
			Name:        p.Name,
			Quantity:    p.Quantity,
			Price:       price,
			VariantName: p.VariantName,
		})
	}

	totalPrice, err := parseAmount(in.TotalPrice)
	if err != nil {
		return nil, fmt.Errorf("totalPrice: %w", err)
	}

	walletAmount := in.PaidFromWallet
	if strings.TrimSpace(walletAmount) == "" {
		walletAmount = "0"
	}
	paidFromWallet, err := parseAmount(walletAmount)
	if err != nil {
		return nil, fmt.Errorf("paidFromWallet: %w", err)
	}

	order, err := s.orders.Place(ctx, orderrepo.PlaceInput{
		UserID:           in.UserID,
		Products:         products,
		TotalPrice:       totalPrice,
		DeliveryAddress:  in.DeliveryAddress,
		PaymentMethod:    in.PaymentMethod,
		PaidFromWallet:   paidFromWallet,
		ExpectedDelivery: s.now().Add(deliveryLeadTime),
	})
	if err != nil {
		if !errors.Is(err, domain.ErrWalletNotFound) && !errors.Is(err, domain.ErrInsufficientBalance) {
			// Loud on purpose: a failure here may mean a debited wallet
			// without an order if the transaction boundary is ever relaxed.
			s.logger.Printf("checkout: place order failed user_id=%s total=%s wallet_amount=%s error=%v",
				in.UserID, totalPrice, paidFromWallet, err)
		}
		return nil, err
	}

	s.cart.Clear(in.UserID)
	return order, nil
}

func parseAmount(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, domain.ErrInvalidAmount
	}
	if d.IsNegative() {
		return decimal.Decimal{}, domain.ErrInvalidAmount
	}
	return d, nil
}
