package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/superfood-sragen/storefront-system/internal/core/ports"
)

// DashboardService aggregates the admin-console tallies in one round trip
// instead of the console issuing a request per collection.
type DashboardService struct {
	products ports.ProductRepository
	promos   ports.PromoRepository
	orders   ports.OrderRepository
	users    ports.UserRepository
	log      zerolog.Logger
}

func NewDashboardService(
	products ports.ProductRepository,
	promos ports.PromoRepository,
	orders ports.OrderRepository,
	users ports.UserRepository,
	log zerolog.Logger,
) *DashboardService {
	return &DashboardService{products: products, promos: promos, orders: orders, users: users, log: log}
}

func (s *DashboardService) Stats(ctx context.Context, includeUsers bool) (*ports.DashboardStats, error) {
	stats := &ports.DashboardStats{}

	var err error
	if stats.Products, err = s.products.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Promos, err = s.promos.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Orders, err = s.orders.Count(ctx); err != nil {
		return nil, err
	}

	// Account counts are admin-only; sub_admins get the rest of the board.
	if includeUsers {
		n, err := s.users.Count(ctx)
		if err != nil {
			return nil, err
		}
		stats.Users = &n
	}

	return stats, nil
}
