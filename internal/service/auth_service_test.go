package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/taskhive/taskhive/internal/domain"
	"github.com/taskhive/taskhive/internal/mocks"
	"github.com/taskhive/taskhive/internal/service"
	"github.com/taskhive/taskhive/internal/service/auth"
	"github.com/taskhive/taskhive/internal/store"
)

func newAuthService(
	userStore *mocks.UserStore,
	hasher *mocks.PasswordHasher,
	verifier *mocks.PasswordVerifier,
) *service.AuthServiceImpl {
	return service.NewAuthService(userStore, &mocks.TxRunner{}, hasher, verifier, testLogger())
}

func TestAuthService_Register(t *testing.T) {
	params := service.RegisterParams{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	}

	t.Run("successful registration hashes password and assigns role", func(t *testing.T) {
		mockStore := new(mocks.UserStore)
		hasher := new(mocks.PasswordHasher)

		hasher.On("Hash", "s3cret-pass").Return("hashed-digest", nil)
		mockStore.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
			return u.Email == "alice@example.com" &&
				u.Role == domain.DefaultUserRole &&
				u.HashedPassword == "hashed-digest" &&
				u.Password == "" // Plaintext must be dropped before storage
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.User).ID = 11
		}).Return(nil)

		svc := newAuthService(mockStore, hasher, new(mocks.PasswordVerifier))

		user, err := svc.Register(context.Background(), params)

		require.NoError(t, err)
		assert.Equal(t, int64(11), user.ID)
		assert.Equal(t, domain.DefaultUserRole, user.Role)
		mockStore.AssertExpectations(t)
		hasher.AssertExpectations(t)
	})

	t.Run("duplicate email fails with conflict", func(t *testing.T) {
		mockStore := new(mocks.UserStore)
		hasher := new(mocks.PasswordHasher)

		hasher.On("Hash", "s3cret-pass").Return("hashed-digest", nil)
		mockStore.On("Create", mock.Anything, mock.Anything).Return(store.ErrEmailExists)

		svc := newAuthService(mockStore, hasher, new(mocks.PasswordVerifier))

		_, err := svc.Register(context.Background(), params)

		require.Error(t, err)
		assert.ErrorIs(t, err, store.ErrEmailExists)
	})

	t.Run("invalid email fails validation before any storage call", func(t *testing.T) {
		mockStore := new(mocks.UserStore)

		svc := newAuthService(mockStore, new(mocks.PasswordHasher), new(mocks.PasswordVerifier))

		_, err := svc.Register(context.Background(), service.RegisterParams{
			Username: "alice",
			Email:    "not-an-email",
			Password: "s3cret-pass",
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrValidation)
		mockStore.AssertNotCalled(t, "Create")
	})

	t.Run("hashing failure is surfaced and nothing is stored", func(t *testing.T) {
		mockStore := new(mocks.UserStore)
		hasher := new(mocks.PasswordHasher)
		cause := errors.New("entropy source unavailable")

		hasher.On("Hash", "s3cret-pass").Return("", cause)

		svc := newAuthService(mockStore, hasher, new(mocks.PasswordVerifier))

		_, err := svc.Register(context.Background(), params)

		require.Error(t, err)
		assert.ErrorIs(t, err, cause)
		mockStore.AssertNotCalled(t, "Create")
	})
}

func TestAuthService_VerifyCredentials(t *testing.T) {
	storedUser := &domain.User{
		ID:             11,
		Username:       "alice",
		Email:          "alice@example.com",
		Role:           domain.DefaultUserRole,
		HashedPassword: "hashed-digest",
	}

	t.Run("matching password returns the user", func(t *testing.T) {
		mockStore := new(mocks.UserStore)
		verifier := new(mocks.PasswordVerifier)

		mockStore.On("GetByEmail", mock.Anything, "alice@example.com").Return(storedUser, nil)
		verifier.On("Compare", "hashed-digest", "s3cret-pass").Return(nil)

		svc := newAuthService(mockStore, new(mocks.PasswordHasher), verifier)

		user, err := svc.VerifyCredentials(context.Background(), "alice@example.com", "s3cret-pass")

		require.NoError(t, err)
		assert.Equal(t, storedUser, user)
	})

	t.Run("wrong password fails with invalid credentials", func(t *testing.T) {
		mockStore := new(mocks.UserStore)
		verifier := new(mocks.PasswordVerifier)

		mockStore.On("GetByEmail", mock.Anything, "alice@example.com").Return(storedUser, nil)
		verifier.On("Compare", "hashed-digest", "wrong").Return(errors.New("mismatch"))

		svc := newAuthService(mockStore, new(mocks.PasswordHasher), verifier)

		_, err := svc.VerifyCredentials(context.Background(), "alice@example.com", "wrong")

		require.Error(t, err)
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("unknown email fails with not found", func(t *testing.T) {
		mockStore := new(mocks.UserStore)
		mockStore.On("GetByEmail", mock.Anything, "ghost@example.com").
			Return(nil, store.ErrUserNotFound)

		svc := newAuthService(mockStore, new(mocks.PasswordHasher), new(mocks.PasswordVerifier))

		_, err := svc.VerifyCredentials(context.Background(), "ghost@example.com", "pass")

		require.Error(t, err)
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}

func TestAuthService_Lookups(t *testing.T) {
	storedUser := &domain.User{ID: 11, Username: "alice", Email: "alice@example.com"}

	t.Run("ListUsers returns all users", func(t *testing.T) {
		mockStore := new(mocks.UserStore)
		mockStore.On("List", mock.Anything).Return([]*domain.User{storedUser}, nil)

		svc := newAuthService(mockStore, new(mocks.PasswordHasher), new(mocks.PasswordVerifier))

		users, err := svc.ListUsers(context.Background())
		require.NoError(t, err)
		assert.Len(t, users, 1)
	})

	t.Run("GetByID absent fails with not found", func(t *testing.T) {
		mockStore := new(mocks.UserStore)
		mockStore.On("GetByID", mock.Anything, int64(99)).Return(nil, store.ErrUserNotFound)

		svc := newAuthService(mockStore, new(mocks.PasswordHasher), new(mocks.PasswordVerifier))

		_, err := svc.GetByID(context.Background(), 99)
		require.Error(t, err)
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})

	t.Run("GetProfile shares GetByID's not-found contract", func(t *testing.T) {
		mockStore := new(mocks.UserStore)
		mockStore.On("GetByEmail", mock.Anything, "ghost@example.com").
			Return(nil, store.ErrUserNotFound)

		svc := newAuthService(mockStore, new(mocks.PasswordHasher), new(mocks.PasswordVerifier))

		_, err := svc.GetProfile(context.Background(), "ghost@example.com")
		require.Error(t, err)
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})

	t.Run("GetProfile present returns the user", func(t *testing.T) {
		mockStore := new(mocks.UserStore)
		mockStore.On("GetByEmail", mock.Anything, "alice@example.com").Return(storedUser, nil)

		svc := newAuthService(mockStore, new(mocks.PasswordHasher), new(mocks.PasswordVerifier))

		user, err := svc.GetProfile(context.Background(), "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, storedUser, user)
	})
}
