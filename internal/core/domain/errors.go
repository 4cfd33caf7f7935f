package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role")
	ErrTokenRevoked       = errors.New("token revoked or expired")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrProductNotFound    = errors.New("product not found")
	ErrPromoNotFound      = errors.New("promo not found")
	ErrProfileNotFound    = errors.New("store profile not found")
	ErrOutOfStock         = errors.New("product out of stock")
	ErrForbidden          = errors.New("access forbidden")
)
