// Copyright (c) 2026 Gudangku. All rights reserved.
// Author: dev@gudangku.app

package account

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gudangku/gudangku/internal/platform/apperr"
	"github.com/gudangku/gudangku/internal/users/auth"
	"github.com/gudangku/gudangku/pkg/pointer"
)

// # Mocks

type mockAccountRepository struct {
	mock.Mock
}

func (m *mockAccountRepository) FindByID(ctx context.Context, id int64) (*auth.User, error) {
	args := m.Called(ctx, id)
	if user := args.Get(0); user != nil {
		return user.(*auth.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAccountRepository) List(ctx context.Context) ([]auth.User, error) {
	args := m.Called(ctx)
	if users := args.Get(0); users != nil {
		return users.([]auth.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAccountRepository) UpdateProfile(ctx context.Context, id int64, changes ProfileChanges) error {
	args := m.Called(ctx, id, changes)
	return args.Error(0)
}

func newTestService(repo AccountRepository) *Service {
	return NewService(repo, slog.Default())
}

// # Profile Visibility

func TestGetProfile_Self(t *testing.T) {
	repo := &mockAccountRepository{}
	service := newTestService(repo)

	repo.On("FindByID", mock.Anything, int64(5)).Return(&auth.User{ID: 5, Username: "alice"}, nil)

	user, err := service.GetProfile(context.Background(), 5, 5)

	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	// Self access must not trigger an admin lookup.
	repo.AssertNumberOfCalls(t, "FindByID", 1)
}

func TestGetProfile_OtherAsAdmin(t *testing.T) {
	repo := &mockAccountRepository{}
	service := newTestService(repo)

	repo.On("FindByID", mock.Anything, int64(1)).Return(&auth.User{ID: 1, IsAdmin: true}, nil)
	repo.On("FindByID", mock.Anything, int64(9)).Return(&auth.User{ID: 9, Username: "bob"}, nil)

	user, err := service.GetProfile(context.Background(), 1, 9)

	require.NoError(t, err)
	assert.Equal(t, "bob", user.Username)
}

func TestGetProfile_OtherAsNonAdmin(t *testing.T) {
	repo := &mockAccountRepository{}
	service := newTestService(repo)

	repo.On("FindByID", mock.Anything, int64(2)).Return(&auth.User{ID: 2, IsAdmin: false}, nil)

	_, err := service.GetProfile(context.Background(), 2, 9)

	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, 403, appError.HTTPStatus)
	// The target row must never be fetched when access is denied.
	repo.AssertNotCalled(t, "FindByID", mock.Anything, int64(9))
}

// # Profile Updates

func TestUpdateProfile_HashesPassword(t *testing.T) {
	repo := &mockAccountRepository{}
	service := newTestService(repo)

	var captured ProfileChanges
	repo.On("UpdateProfile", mock.Anything, int64(4), mock.AnythingOfType("account.ProfileChanges")).
		Run(func(args mock.Arguments) {
			captured = args.Get(2).(ProfileChanges)
		}).
		Return(nil)

	err := service.UpdateProfile(context.Background(), 4, UpdateProfileInput{
		Password: pointer.To("new-secret"),
	})

	require.NoError(t, err)
	require.NotNil(t, captured.PasswordHash)
	assert.NotEqual(t, "new-secret", *captured.PasswordHash)
	assert.Nil(t, captured.Username)
}

func TestUpdateProfile_EmptyInputRejectedBeforeStore(t *testing.T) {
	repo := &mockAccountRepository{}
	service := newTestService(repo)

	err := service.UpdateProfile(context.Background(), 4, UpdateProfileInput{})

	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, 400, appError.HTTPStatus)
	repo.AssertNotCalled(t, "UpdateProfile")
}

func TestUpdateProfile_UnknownUser(t *testing.T) {
	repo := &mockAccountRepository{}
	service := newTestService(repo)

	repo.On("UpdateProfile", mock.Anything, int64(99), mock.Anything).Return(apperr.NotFound("User"))

	err := service.UpdateProfile(context.Background(), 99, UpdateProfileInput{
		FirstName: pointer.To("Ghost"),
	})

	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}
