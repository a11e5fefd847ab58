// Copyright (c) 2026 Gudangku. All rights reserved.
// Author: dev@gudangku.app

package auth

import "context"

// # Repository Contracts

// UserRepository defines the persistence contract for user accounts.
type UserRepository interface {
	/*
		Create persists a new user record and assigns its row ID.

		Parameters:
		  - context: context.Context
		  - user: *User (Entity to persist; ID is populated on success)

		Returns:
		  - error: Database constraint violations or connectivity errors
	*/
	Create(context context.Context, user *User) error

	/*
		FindByUsername retrieves a user record by their unique username.

		Parameters:
		  - context: context.Context
		  - username: string

		Returns:
		  - *User: Hydrated account entity
		  - error: apperr.NotFound or storage failures
	*/
	FindByUsername(context context.Context, username string) (*User, error)

	/*
		FindByEmail retrieves a user record by their unique email address.

		Parameters:
		  - context: context.Context
		  - email: string

		Returns:
		  - *User: Hydrated account entity
		  - error: apperr.NotFound or storage failures
	*/
	FindByEmail(context context.Context, email string) (*User, error)

	/*
		FindByID retrieves a user record by their unique row ID.

		Parameters:
		  - context: context.Context
		  - id: int64

		Returns:
		  - *User: Hydrated account entity
		  - error: apperr.NotFound or storage failures
	*/
	FindByID(context context.Context, id int64) (*User, error)
}
