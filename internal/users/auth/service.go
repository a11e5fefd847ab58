// Copyright (c) 2026 Gudangku. All rights reserved.
// Author: dev@gudangku.app

package auth

import (
	"context"
	"fmt"

	"github.com/gudangku/gudangku/internal/platform/apperr"
	"github.com/gudangku/gudangku/internal/platform/blob"
	"github.com/gudangku/gudangku/internal/platform/sec"
)

// # Contracts & Types

// TokenIssuer defines the contract for minting identity tokens.
type TokenIssuer interface {
	// IssueToken creates a signed JWT string for the given user.
	//
	// # Parameters
	//   - userID: The row ID of the account.
	//   - username: The username of the account.
	//
	// # Returns
	//   - A signed JWT string, or an err if signing fails.
	IssueToken(userID int64, username string) (string, error)
}

// Service implements user authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, registration,
// or login logic must be reviewed carefully.
type Service struct {
	userRepository UserRepository
	blobStore      blob.Store
	tokenIssuer    TokenIssuer
}

// NewService constructs a new auth [Service] with necessary dependencies.
func NewService(userRepo UserRepository, blobStore blob.Store, tokenIssuer TokenIssuer) *Service {
	return &Service{
		userRepository: userRepo,
		blobStore:      blobStore,
		tokenIssuer:    tokenIssuer,
	}
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new member.
type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string

	// PhotoBytes holds the uploaded profile image. Mandatory at registration.
	PhotoBytes    []byte
	PhotoFilename string
}

/*
Register validates, hashes, and persists a brand new user account.

Description: Deep-enrollment of a new member, handling password hashing and
profile photo persistence through the blob store.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *User: Created entity
  - err: Conflict (if identity exists) or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*User, error) {

	// Verify username uniqueness. Return a client-safe Conflict err.
	// Only a not-found result means the name is free; a store fault must
	// not be mistaken for availability.
	_, err := service.userRepository.FindByUsername(context, input.Username)
	if err == nil {
		return nil, apperr.Conflict("Username is already taken")
	}
	if !apperr.IsNotFound(err) {
		return nil, fmt.Errorf("auth_service_username_check_failed: %w", err)
	}

	// Verify email uniqueness. Return a client-safe Conflict err.
	_, err = service.userRepository.FindByEmail(context, input.Email)
	if err == nil {
		return nil, apperr.Conflict("Email is already registered")
	}
	if !apperr.IsNotFound(err) {
		return nil, fmt.Errorf("auth_service_email_check_failed: %w", err)
	}

	// Prevent storing plain-text passwords. Default cost is used for balance
	// between security and CPU utilization during registration spikes.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	// Persist the profile photo and obtain its public URL
	photoURL, err := service.blobStore.Save(context, input.PhotoFilename, input.PhotoBytes)
	if err != nil {
		return nil, fmt.Errorf("auth_service_photo_save_failed: %w", err)
	}

	user := &User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PhotoURL:     photoURL,
		IsAdmin:      false,
	}

	// Persist the user to the database. The unique constraints on username
	// and email are the backstop against races past the pre-checks above.
	if err := service.userRepository.Create(context, user); err != nil {
		if apperr.IsConflict(err) {
			return nil, err
		}
		return nil, fmt.Errorf("auth_service_register_failed: %w", err)
	}

	return user, nil
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Username string
	Password string
}

// LoginResult represents a successfully authenticated principal.
type LoginResult struct {
	Token    string `json:"token"`
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	PhotoURL string `json:"photo_url"`
}

/*
Login validates user credentials and issues a signed identity token.

Description: Verifies identity via constant-time password comparison and mints
a short-lived JWT carrying the principal's id and username.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *LoginResult: Transport-ready token and profile summary
  - err: Unauthorized or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (*LoginResult, error) {
	user, err := service.userRepository.FindByUsername(context, input.Username)

	// An unknown username gets the generic message to prevent enumeration.
	// Any other lookup failure is a store fault and must surface as 500.
	if apperr.IsNotFound(err) {
		return nil, apperr.Unauthorized("Invalid username or password")
	}
	if err != nil {
		return nil, fmt.Errorf("auth_service_lookup_failed: %w", err)
	}

	// Verify the password hash. A malformed stored hash is an infrastructure
	// fault, never a silent "no match".
	matches, err := sec.VerifyPassword(input.Password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("auth_service_verify_failed: %w", err)
	}
	if !matches {
		return nil, apperr.Unauthorized("Invalid username or password")
	}

	// Mint the short-lived identity token
	token, err := service.tokenIssuer.IssueToken(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	return &LoginResult{
		Token:    token,
		UserID:   user.ID,
		Username: user.Username,
		PhotoURL: user.PhotoURL,
	}, nil
}
