package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/taskhive/taskhive/internal/domain"
	"github.com/taskhive/taskhive/internal/service/auth"
	"github.com/taskhive/taskhive/internal/store"
)

// RegisterParams carries the validated input for user registration.
type RegisterParams struct {
	Username string
	Email    string
	Password string
}

// AuthService provides user registration, credential verification and
// profile lookups. Token issuance is the API layer's concern; this service
// only establishes identity.
type AuthService interface {
	// Register creates a new user with a hashed password and the default
	// role. Returns store.ErrEmailExists if the email is already taken.
	Register(ctx context.Context, params RegisterParams) (*domain.User, error)

	// VerifyCredentials checks an email/password pair. Returns the user on
	// success, store.ErrUserNotFound if the email is unknown, or
	// auth.ErrInvalidCredentials if the password does not match.
	VerifyCredentials(ctx context.Context, email, password string) (*domain.User, error)

	// ListUsers returns all registered users.
	ListUsers(ctx context.Context) ([]*domain.User, error)

	// GetByID returns the user or store.ErrUserNotFound.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetProfile looks a user up by email. Returns store.ErrUserNotFound
	// when absent, the same contract as GetByID.
	GetProfile(ctx context.Context, email string) (*domain.User, error)
}

// AuthServiceImpl implements the AuthService interface.
type AuthServiceImpl struct {
	userStore store.UserStore
	txRunner  store.TxRunner
	hasher    auth.PasswordHasher
	verifier  auth.PasswordVerifier
	logger    *slog.Logger
}

// Ensure AuthServiceImpl implements AuthService
var _ AuthService = (*AuthServiceImpl)(nil)

// NewAuthService creates a new AuthService.
func NewAuthService(
	userStore store.UserStore,
	txRunner store.TxRunner,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	logger *slog.Logger,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		userStore: userStore,
		txRunner:  txRunner,
		hasher:    hasher,
		verifier:  verifier,
		logger:    logger.With("component", "auth_service"),
	}
}

// Register creates a new user inside a single transaction. The plaintext
// password is hashed before any storage call and never persisted.
func (s *AuthServiceImpl) Register(ctx context.Context, params RegisterParams) (*domain.User, error) {
	user, err := domain.NewUser(params.Username, params.Email, params.Password)
	if err != nil {
		s.logger.Warn("failed to create user object",
			"error", err,
			"email", params.Email)
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	hashed, err := s.hasher.Hash(params.Password)
	if err != nil {
		s.logger.Error("failed to hash password",
			"error", err,
			"email", params.Email)
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	user.HashedPassword = hashed
	user.Password = "" // Drop the plaintext as early as possible

	err = s.txRunner.RunInTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		return s.userStore.WithTx(tx).Create(ctx, user)
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			s.logger.Debug("attempted to register existing email",
				"email", params.Email)
		} else {
			s.logger.Error("failed to save user",
				"error", err,
				"email", params.Email)
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.logger.Info("user registered successfully",
		"user_id", user.ID,
		"email", user.Email)

	return user, nil
}

// VerifyCredentials checks an email/password pair against the stored hash.
func (s *AuthServiceImpl) VerifyCredentials(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("login attempt for unknown email",
				"email", email)
		} else {
			s.logger.Error("failed to retrieve user for login",
				"error", err,
				"email", email)
		}
		return nil, fmt.Errorf("failed to verify credentials: %w", err)
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		s.logger.Debug("password mismatch",
			"user_id", user.ID,
			"email", email)
		return nil, auth.ErrInvalidCredentials
	}

	return user, nil
}

// ListUsers returns all registered users.
func (s *AuthServiceImpl) ListUsers(ctx context.Context) ([]*domain.User, error) {
	users, err := s.userStore.List(ctx)
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

// GetByID returns the user or store.ErrUserNotFound.
func (s *AuthServiceImpl) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("user not found", "user_id", id)
		} else {
			s.logger.Error("failed to retrieve user",
				"error", err,
				"user_id", id)
		}
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}

	return user, nil
}

// GetProfile looks a user up by email. Unlike the system this replaces,
// a missing profile is an error, matching GetByID's contract.
func (s *AuthServiceImpl) GetProfile(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("profile not found", "email", email)
		} else {
			s.logger.Error("failed to retrieve profile",
				"error", err,
				"email", email)
		}
		return nil, fmt.Errorf("failed to retrieve profile: %w", err)
	}

	return user, nil
}
