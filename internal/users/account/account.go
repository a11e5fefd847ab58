// Copyright (c) 2026 Gudangku. All rights reserved.
// Author: dev@gudangku.app

/*
Package account handles user profile visibility and partial profile updates.

It provides functionality for listing registered members, resolving a single
profile (self or admin only), and applying sparse profile edits where only
the submitted fields are touched.

# Architecture

  - Domain: This package depends on the auth package for the User entity.
  - Updates: Profile edits are the single place in the system where sparse
    (partial) updates occur; everything else is full-row.
*/
package account

import (
	"context"

	"github.com/gudangku/gudangku/internal/users/auth"
)

// # Domain Types

// ProfileChanges is the sparse set of profile fields to persist.
//
// A nil pointer means "leave the column untouched". PasswordHash is already
// hashed by the service layer; raw passwords never reach storage.
type ProfileChanges struct {
	Username     *string
	Email        *string
	PasswordHash *string
	FirstName    *string
	LastName     *string
	PhotoURL     *string
}

// IsEmpty reports whether no field is present.
func (c ProfileChanges) IsEmpty() bool {
	return c.Username == nil &&
		c.Email == nil &&
		c.PasswordHash == nil &&
		c.FirstName == nil &&
		c.LastName == nil &&
		c.PhotoURL == nil
}

// # Repository Contracts

// AccountRepository defines the persistence contract for profile access.
type AccountRepository interface {
	/*
		FindByID retrieves a user record by their unique row ID.

		Parameters:
		  - context: context.Context
		  - id: int64

		Returns:
		  - *auth.User: Loaded account entity
		  - error: apperr.NotFound or storage failures
	*/
	FindByID(context context.Context, id int64) (*auth.User, error)

	/*
		List retrieves all registered users.

		Parameters:
		  - context: context.Context

		Returns:
		  - []auth.User: All account rows (password hashes never serialize)
		  - error: Retrieval failures
	*/
	List(context context.Context) ([]auth.User, error)

	/*
		UpdateProfile applies a sparse set of changes to a user row.

		Description: Only the present fields of changes are written. Zero
		affected rows means the user does not exist.

		Parameters:
		  - context: context.Context
		  - id: int64
		  - changes: ProfileChanges (must not be empty)

		Returns:
		  - error: apperr.NotFound, apperr.Conflict, or storage failures
	*/
	UpdateProfile(context context.Context, id int64, changes ProfileChanges) error
}
