// Copyright (c) 2026 Gudangku. All rights reserved.
// Author: dev@gudangku.app

package account

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gudangku/gudangku/internal/platform/apperr"
	"github.com/gudangku/gudangku/internal/platform/sec"
	"github.com/gudangku/gudangku/internal/users/auth"
)

// # Service Layer

// Service orchestrates business logic for user profiles.
type Service struct {
	accountRepository AccountRepository
	logger            *slog.Logger
}

// NewService constructs a new [Service] with its repository dependency.
func NewService(accountRepo AccountRepository, logger *slog.Logger) *Service {
	return &Service{
		accountRepository: accountRepo,
		logger:            logger,
	}
}

// # Profile Visibility

/*
GetProfile retrieves the full profile of a user, enforcing the self-or-admin rule.

Description: A principal may always read their own profile. Reading any other
profile requires the principal's stored is_admin flag, which is resolved from
the database because identity tokens carry only {id, username}.

Parameters:
  - context: context.Context
  - principalID: int64 (The authenticated caller)
  - targetID: int64 (The requested profile)

Returns:
  - *auth.User: The requested profile
  - error: apperr.Forbidden when not self/admin, apperr.NotFound, or storage failures
*/
func (service *Service) GetProfile(context context.Context, principalID, targetID int64) (*auth.User, error) {

	// Self access is always permitted
	if principalID != targetID {
		principal, err := service.accountRepository.FindByID(context, principalID)
		if err != nil {
			return nil, fmt.Errorf("account_service_principal_lookup_failed: %w", err)
		}
		if !principal.IsAdmin {
			return nil, apperr.Forbidden("You may only view your own profile")
		}
	}

	user, err := service.accountRepository.FindByID(context, targetID)
	if err != nil {
		return nil, err
	}

	return user, nil
}

/*
ListUsers retrieves all registered users.

Description: Public directory listing. Password hashes are carried in memory
but never serialize (json:"-" on the entity).

Parameters:
  - context: context.Context

Returns:
  - []auth.User: All accounts
  - error: Retrieval failures
*/
func (service *Service) ListUsers(context context.Context) ([]auth.User, error) {
	users, err := service.accountRepository.List(context)
	if err != nil {
		return nil, fmt.Errorf("account_service_list_failed: %w", err)
	}
	return users, nil
}

// # Profile Updates

// UpdateProfileInput defines the optionally-present profile fields.
//
// A nil pointer means the field was not submitted at all, which is distinct
// from a submitted empty string.
type UpdateProfileInput struct {
	Username  *string
	Email     *string
	Password  *string
	FirstName *string
	LastName  *string
	PhotoURL  *string
}

/*
UpdateProfile applies a sparse set of changes to a user's account.

Description: Hashes a submitted password before it ever reaches storage,
rejects a fully-empty submission before touching the store, and delegates
the dynamic SET construction to the repository.

Parameters:
  - context: context.Context
  - userID: int64
  - input: UpdateProfileInput

Returns:
  - error: Validation, not-found, conflict, or storage failures
*/
func (service *Service) UpdateProfile(context context.Context, userID int64, input UpdateProfileInput) error {
	changes := ProfileChanges{
		Username:  input.Username,
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		PhotoURL:  input.PhotoURL,
	}

	// Hash before inclusion. The raw password never reaches the store.
	if input.Password != nil {
		hashedPassword, err := sec.HashPassword(*input.Password)
		if err != nil {
			return fmt.Errorf("account_service_update_hash_failed: %w", err)
		}
		changes.PasswordHash = &hashedPassword
	}

	// An empty submission fails before any storage round trip
	if changes.IsEmpty() {
		return apperr.ValidationError("No fields to update")
	}

	if err := service.accountRepository.UpdateProfile(context, userID, changes); err != nil {
		return err
	}

	service.logger.Info("user_profile_updated", slog.Int64("user_id", userID))

	return nil
}
