package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/superfood-sragen/storefront-system/internal/core/domain"
	"github.com/superfood-sragen/storefront-system/internal/core/ports"
)

// StoreProfileService reads and updates the single store profile record.
type StoreProfileService struct {
	repo ports.StoreProfileRepository
	log  zerolog.Logger
}

func NewStoreProfileService(repo ports.StoreProfileRepository, log zerolog.Logger) *StoreProfileService {
	return &StoreProfileService{repo: repo, log: log}
}

func (s *StoreProfileService) Get(ctx context.Context) (*domain.StoreProfile, error) {
	return s.repo.Get(ctx)
}

func (s *StoreProfileService) Update(ctx context.Context, in ports.StoreProfileInput) (*domain.StoreProfile, error) {
	profile := &domain.StoreProfile{
		Name:        in.Name,
		Description: in.Description,
		Address:     in.Address,
		Phone:       in.Phone,
		Email:       in.Email,
		Owner:       in.Owner,
		Logo:        in.Logo,
		UpdatedAt:   time.Now().UTC(),
	}

	saved, err := s.repo.Upsert(ctx, profile)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to save store profile")
		return nil, err
	}
	s.log.Info().Str("name", saved.Name).Msg("store profile saved")
	return saved, nil
}
