package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/superfood-sragen/storefront-system/internal/core/domain"
	"github.com/superfood-sragen/storefront-system/internal/core/ports"
)

// PromoService implements promotion reads and administration.
type PromoService struct {
	repo ports.PromoRepository
	log  zerolog.Logger
}

func NewPromoService(repo ports.PromoRepository, log zerolog.Logger) *PromoService {
	return &PromoService{repo: repo, log: log}
}

func (s *PromoService) Create(ctx context.Context, in ports.PromoInput) (*domain.Promo, error) {
	now := time.Now().UTC()
	p := &domain.Promo{
		Name:         in.Name,
		Description:  in.Description,
		Discount:     in.Discount,
		DiscountType: discountType(in.DiscountType),
		MinPurchase:  in.MinPurchase,
		MaxDiscount:  in.MaxDiscount,
		Code:         in.Code,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		IsActive:     true,
		Image:        in.Image,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create promo")
		return nil, err
	}
	s.log.Info().Str("promo_id", created.ID).Str("name", created.Name).Msg("promo created")
	return created, nil
}

func (s *PromoService) Get(ctx context.Context, id string) (*domain.Promo, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PromoService) List(ctx context.Context) ([]*domain.Promo, error) {
	return s.repo.List(ctx)
}

func (s *PromoService) Update(ctx context.Context, id string, in ports.PromoInput) (*domain.Promo, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		p.Name = in.Name
	}
	p.Description = in.Description
	if in.Discount > 0 {
		p.Discount = in.Discount
	}
	if in.DiscountType != "" {
		p.DiscountType = discountType(in.DiscountType)
	}
	p.MinPurchase = in.MinPurchase
	p.MaxDiscount = in.MaxDiscount
	p.Code = in.Code
	p.StartDate = in.StartDate
	p.EndDate = in.EndDate
	p.Image = in.Image
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	p.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PromoService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("promo_id", id).Msg("promo deleted")
	return nil
}

// DeactivateExpired is run from the nightly sweep.
func (s *PromoService) DeactivateExpired(ctx context.Context) (int64, error) {
	n, err := s.repo.DeactivateExpired(ctx, time.Now().UTC())
	if err != nil {
		s.log.Error().Err(err).Msg("promo expiry sweep failed")
		return 0, err
	}
	if n > 0 {
		s.log.Info().Int64("count", n).Msg("expired promos deactivated")
	}
	return n, nil
}

func discountType(s string) domain.DiscountType {
	if domain.DiscountType(s) == domain.DiscountFixed {
		return domain.DiscountFixed
	}
	return domain.DiscountPercentage
}
