package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/superfood-sragen/storefront-system/internal/core/domain"
	"github.com/superfood-sragen/storefront-system/internal/core/ports"
)

// UserService implements account administration. Role changes go only through
// Update here; nothing else in the system writes roles.
type UserService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewUserService(repo ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

func (s *UserService) List(ctx context.Context) ([]*domain.Identity, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Identity, 0, len(users))
	for _, u := range users {
		out = append(out, u.Identity())
	}
	return out, nil
}

func (s *UserService) Update(ctx context.Context, id string, in ports.UserUpdateInput) (*domain.Identity, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.DisplayName != nil {
		user.DisplayName = *in.DisplayName
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	if in.Role != nil {
		role := domain.Role(*in.Role)
		if !role.Valid() {
			return nil, domain.ErrInvalidRole
		}
		if role != user.Role {
			s.log.Info().Str("user_id", id).Str("from", string(user.Role)).Str("to", string(role)).Msg("role changed")
		}
		user.Role = role
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user.Identity(), nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("user_id", id).Msg("account deleted")
	return nil
}
