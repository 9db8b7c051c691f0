package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/taskhive/taskhive/internal/service/auth"
)

// PasswordHasher is a testify mock for auth.PasswordHasher.
type PasswordHasher struct {
	mock.Mock
}

var _ auth.PasswordHasher = (*PasswordHasher)(nil)

// Hash mocks auth.PasswordHasher.Hash
func (m *PasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

// PasswordVerifier is a testify mock for auth.PasswordVerifier.
type PasswordVerifier struct {
	mock.Mock
}

var _ auth.PasswordVerifier = (*PasswordVerifier)(nil)

// Compare mocks auth.PasswordVerifier.Compare
func (m *PasswordVerifier) Compare(hashedPassword, password string) error {
	args := m.Called(hashedPassword, password)
	return args.Error(0)
}

// JWTService is a testify mock for auth.JWTService.
type JWTService struct {
	mock.Mock
}

var _ auth.JWTService = (*JWTService)(nil)

// GenerateToken mocks auth.JWTService.GenerateToken
func (m *JWTService) GenerateToken(ctx context.Context, userID int64, email string) (string, error) {
	args := m.Called(ctx, userID, email)
	return args.String(0), args.Error(1)
}

// ValidateToken mocks auth.JWTService.ValidateToken
func (m *JWTService) ValidateToken(ctx context.Context, token string) (*auth.Claims, error) {
	args := m.Called(ctx, token)
	if claims := args.Get(0); claims != nil {
		return claims.(*auth.Claims), args.Error(1)
	}
	return nil, args.Error(1)
}
