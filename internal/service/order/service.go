package order

import (
	"context"
	"errors"
	"fmt"

	"medicart/internal/domain"
	orderrepo "medicart/internal/repository/order"
)

// ErrInvalidStatus indicates an unknown order status value.
var ErrInvalidStatus = errors.New("invalid order status")

// Service answers order queries and carries the admin-side status update.
// Order placement lives in the checkout service.
type Service struct {
	repo orderrepo.Repository
}

func New(repo orderrepo.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) Get(ctx context.Context, userID, id string) (*domain.Order, error) {
	return s.repo.GetByID(ctx, userID, id)
}

func (s *Service) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return s.repo.UpdateStatus(ctx, id, status)
}
