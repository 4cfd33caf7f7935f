package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/superfood-sragen/storefront-system/internal/core/domain"
	"github.com/superfood-sragen/storefront-system/internal/core/ports"
	"github.com/superfood-sragen/storefront-system/internal/pkg/token"
)

// DefaultTokenTTL matches the persisted-credential expiry on the client side.
const DefaultTokenTTL = 7 * 24 * time.Hour

// AuthService implements registration, login, identity lookup, and token
// revocation. Issued tokens are recorded in the allow-list so logout can
// invalidate them before their signature expires.
type AuthService struct {
	users     ports.UserRepository
	tokens    ports.TokenStore
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenStore, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = DefaultTokenTTL
	}
	return &AuthService{users: users, tokens: tokens, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	// Registration never grants privileges: anything above user is refused.
	role := domain.ParseRole(in.Role)
	if in.Role != "" && role != domain.RoleUser {
		return nil, domain.ErrForbidden
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        in.Email,
		DisplayName:  in.DisplayName,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Msg("account registered")
	return s.issue(ctx, created)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	s.log.Info().Str("user_id", user.ID).Msg("login succeeded")
	return s.issue(ctx, user)
}

func (s *AuthService) Identity(ctx context.Context, userID string) (*domain.Identity, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Identity(), nil
}

func (s *AuthService) Revoke(ctx context.Context, tokenID string) error {
	if tokenID == "" {
		return nil
	}
	return s.tokens.Revoke(ctx, tokenID)
}

// issue signs a token for the user and records it in the allow-list. The
// allow-list write happens before the token is handed out, so a token the
// caller sees is always revocable.
func (s *AuthService) issue(ctx context.Context, user *domain.User) (*ports.AuthResult, error) {
	tokenID := uuid.NewString()
	signed, err := token.Generate(user.ID, user.Email, user.Role, tokenID, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return nil, err
	}
	if err := s.tokens.Save(ctx, tokenID, user.ID, s.tokenTTL); err != nil {
		return nil, err
	}
	return &ports.AuthResult{Token: signed, User: user.Identity()}, nil
}
