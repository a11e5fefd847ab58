// Copyright (c) 2026 Gudangku. All rights reserved.
// Author: dev@gudangku.app

package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gudangku/gudangku/internal/platform/apperr"
	"github.com/gudangku/gudangku/internal/platform/sec"
)

// # Mocks

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *User) error {
	args := m.Called(ctx, user)
	if args.Error(0) == nil {
		user.ID = 1
	}
	return args.Error(0)
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*User, error) {
	args := m.Called(ctx, username)
	if user := args.Get(0); user != nil {
		return user.(*User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	args := m.Called(ctx, email)
	if user := args.Get(0); user != nil {
		return user.(*User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepository) FindByID(ctx context.Context, id int64) (*User, error) {
	args := m.Called(ctx, id)
	if user := args.Get(0); user != nil {
		return user.(*User), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockBlobStore struct {
	mock.Mock
}

func (m *mockBlobStore) Save(ctx context.Context, originalName string, content []byte) (string, error) {
	args := m.Called(ctx, originalName, content)
	return args.String(0), args.Error(1)
}

type mockTokenIssuer struct {
	mock.Mock
}

func (m *mockTokenIssuer) IssueToken(userID int64, username string) (string, error) {
	args := m.Called(userID, username)
	return args.String(0), args.Error(1)
}

// # Registration

func TestRegister_Success(t *testing.T) {
	repo := &mockUserRepository{}
	blobStore := &mockBlobStore{}
	issuer := &mockTokenIssuer{}
	service := NewService(repo, blobStore, issuer)

	repo.On("FindByUsername", mock.Anything, "alice").Return(nil, apperr.NotFound("User"))
	repo.On("FindByEmail", mock.Anything, "alice@example.com").Return(nil, apperr.NotFound("User"))
	blobStore.On("Save", mock.Anything, "photo.jpg", []byte("img")).Return("http://localhost:8080/uploads/1-photo.jpg", nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*auth.User")).Return(nil)

	user, err := service.Register(context.Background(), RegisterInput{
		Username:      "alice",
		Email:         "alice@example.com",
		Password:      "pw123456",
		FirstName:     "Alice",
		LastName:      "Tan",
		PhotoBytes:    []byte("img"),
		PhotoFilename: "photo.jpg",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "http://localhost:8080/uploads/1-photo.jpg", user.PhotoURL)
	assert.NotEqual(t, "pw123456", user.PasswordHash, "password must be stored hashed")
	assert.False(t, user.IsAdmin)
	repo.AssertExpectations(t)
	blobStore.AssertExpectations(t)
}

func TestRegister_UsernameTaken(t *testing.T) {
	repo := &mockUserRepository{}
	service := NewService(repo, &mockBlobStore{}, &mockTokenIssuer{})

	repo.On("FindByUsername", mock.Anything, "alice").Return(&User{ID: 7, Username: "alice"}, nil)

	_, err := service.Register(context.Background(), RegisterInput{
		Username: "alice",
		Email:    "new@example.com",
		Password: "pw123456",
	})

	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))
	repo.AssertNotCalled(t, "Create")
}

func TestRegister_EmailTaken(t *testing.T) {
	repo := &mockUserRepository{}
	service := NewService(repo, &mockBlobStore{}, &mockTokenIssuer{})

	repo.On("FindByUsername", mock.Anything, "bob").Return(nil, apperr.NotFound("User"))
	repo.On("FindByEmail", mock.Anything, "taken@example.com").Return(&User{ID: 3}, nil)

	_, err := service.Register(context.Background(), RegisterInput{
		Username: "bob",
		Email:    "taken@example.com",
		Password: "pw123456",
	})

	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))
}

func TestRegister_UniquenessCheckStoreFailure(t *testing.T) {
	repo := &mockUserRepository{}
	service := NewService(repo, &mockBlobStore{}, &mockTokenIssuer{})

	// A store fault during the uniqueness pre-check must not be read as
	// "identity free"; the registration aborts before Create.
	repo.On("FindByUsername", mock.Anything, "alice").
		Return(nil, errors.New("pgx: connection refused"))

	_, err := service.Register(context.Background(), RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "pw123456",
	})

	require.Error(t, err)
	assert.False(t, apperr.IsAppError(err))
	repo.AssertNotCalled(t, "Create")
}

// # Login

func TestLogin_Success(t *testing.T) {
	repo := &mockUserRepository{}
	issuer := &mockTokenIssuer{}
	service := NewService(repo, &mockBlobStore{}, issuer)

	hash, err := sec.HashPassword("pw123")
	require.NoError(t, err)

	repo.On("FindByUsername", mock.Anything, "alice").Return(&User{
		ID:           42,
		Username:     "alice",
		PasswordHash: hash,
		PhotoURL:     "http://localhost:8080/uploads/p.jpg",
	}, nil)
	issuer.On("IssueToken", int64(42), "alice").Return("signed.jwt.token", nil)

	result, err := service.Login(context.Background(), LoginInput{Username: "alice", Password: "pw123"})

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", result.Token)
	assert.Equal(t, int64(42), result.UserID)
	assert.Equal(t, "alice", result.Username)
	assert.Equal(t, "http://localhost:8080/uploads/p.jpg", result.PhotoURL)
}

func TestLogin_UnknownUser(t *testing.T) {
	repo := &mockUserRepository{}
	service := NewService(repo, &mockBlobStore{}, &mockTokenIssuer{})

	repo.On("FindByUsername", mock.Anything, "ghost").Return(nil, apperr.NotFound("User"))

	_, err := service.Login(context.Background(), LoginInput{Username: "ghost", Password: "whatever"})

	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, 401, appError.HTTPStatus)
	assert.Equal(t, "Invalid username or password", appError.Message)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := &mockUserRepository{}
	issuer := &mockTokenIssuer{}
	service := NewService(repo, &mockBlobStore{}, issuer)

	hash, err := sec.HashPassword("correct-password")
	require.NoError(t, err)

	repo.On("FindByUsername", mock.Anything, "alice").Return(&User{
		ID:           42,
		Username:     "alice",
		PasswordHash: hash,
	}, nil)

	_, err = service.Login(context.Background(), LoginInput{Username: "alice", Password: "wrong-password"})

	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, 401, appError.HTTPStatus)
	issuer.AssertNotCalled(t, "IssueToken")
}

func TestLogin_StoreFailure(t *testing.T) {
	repo := &mockUserRepository{}
	service := NewService(repo, &mockBlobStore{}, &mockTokenIssuer{})

	// A connectivity fault during lookup is an infrastructure error, not a 401:
	// only a not-found result may be reported as bad credentials.
	repo.On("FindByUsername", mock.Anything, "alice").
		Return(nil, errors.New("pgx: connection refused"))

	_, err := service.Login(context.Background(), LoginInput{Username: "alice", Password: "pw123"})

	require.Error(t, err)
	assert.False(t, apperr.IsAppError(err))
}

func TestLogin_MalformedStoredHash(t *testing.T) {
	repo := &mockUserRepository{}
	service := NewService(repo, &mockBlobStore{}, &mockTokenIssuer{})

	// A corrupted hash must surface as an infrastructure error, not a 401.
	repo.On("FindByUsername", mock.Anything, "alice").Return(&User{
		ID:           42,
		Username:     "alice",
		PasswordHash: "not-a-bcrypt-hash",
	}, nil)

	_, err := service.Login(context.Background(), LoginInput{Username: "alice", Password: "pw123"})

	require.Error(t, err)
	assert.False(t, apperr.IsAppError(err))
}
