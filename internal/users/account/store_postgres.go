// Copyright (c) 2026 Gudangku. All rights reserved.
// Author: dev@gudangku.app

// PostgreSQL implementation of the account storage contracts.

package account

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gudangku/gudangku/internal/platform/apperr"
	"github.com/gudangku/gudangku/internal/platform/dberr"
	"github.com/gudangku/gudangku/internal/users/auth"
)

// # Account Repository

// PostgresAccountRepository implements the AccountRepository interface using pgx.
type PostgresAccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository creates a new PostgreSQL implementation of AccountRepository.
func NewAccountRepository(pool *pgxpool.Pool) *PostgresAccountRepository {
	return &PostgresAccountRepository{pool: pool}
}

/*
FindByID retrieves a user record by their unique row ID.

Parameters:
  - context: context.Context
  - id: int64

Returns:
  - *auth.User: Hydrated account entity
  - error: apperr.NotFound or execution errors
*/
func (repository *PostgresAccountRepository) FindByID(context context.Context, id int64) (*auth.User, error) {
	const query = `
		SELECT id, username, email, password_hash, first_name, last_name, photo_url, is_admin, created_at, updated_at
		FROM users
		WHERE id = $1`

	user := &auth.User{}
	err := repository.pool.QueryRow(context, query, id).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.FirstName,
		&user.LastName,
		&user.PhotoURL,
		&user.IsAdmin,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("User")
		}
		return nil, fmt.Errorf("postgres_account_repo_find_failed: %w", err)
	}

	return user, nil
}

/*
List retrieves all registered users ordered by row ID.

Parameters:
  - context: context.Context

Returns:
  - []auth.User: All account rows
  - error: Retrieval failures
*/
func (repository *PostgresAccountRepository) List(context context.Context) ([]auth.User, error) {
	const query = `
		SELECT id, username, email, password_hash, first_name, last_name, photo_url, is_admin, created_at, updated_at
		FROM users
		ORDER BY id`

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, fmt.Errorf("postgres_account_repo_list_failed: %w", err)
	}
	defer rows.Close()

	var users []auth.User
	for rows.Next() {
		var user auth.User
		err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.Email,
			&user.PasswordHash,
			&user.FirstName,
			&user.LastName,
			&user.PhotoURL,
			&user.IsAdmin,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("postgres_account_repo_scan_failed: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_account_repo_rows_failed: %w", err)
	}

	return users, nil
}

/*
UpdateProfile applies a sparse set of profile changes to a user row.

Description: The SET clause is built dynamically from the present fields
only; absent fields are never mentioned in the statement. The updated_at
column is always refreshed.

Parameters:
  - context: context.Context
  - id: int64
  - changes: ProfileChanges

Returns:
  - error: apperr.NotFound when no row matches, apperr.Conflict on unique
    violations, or execution failures
*/
func (repository *PostgresAccountRepository) UpdateProfile(context context.Context, id int64, changes ProfileChanges) error {
	query, args := buildProfileUpdate(id, changes, time.Now())

	commandTag, err := repository.pool.Exec(context, query, args...)
	if err != nil {
		if wrapped := dberr.Wrap(err, "User"); apperr.IsConflict(wrapped) {
			return wrapped
		}
		return fmt.Errorf("postgres_account_repo_update_failed: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return apperr.NotFound("User")
	}

	return nil
}

// buildProfileUpdate constructs the sparse UPDATE statement.
//
// Only present (non-nil) fields of changes contribute a SET fragment. The
// placeholders are numbered sequentially, with the row ID always last.
func buildProfileUpdate(id int64, changes ProfileChanges, now time.Time) (string, []any) {
	var setClauses []string
	var args []any

	appendChange := func(column string, value *string) {
		if value == nil {
			return
		}
		args = append(args, *value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	appendChange("username", changes.Username)
	appendChange("email", changes.Email)
	appendChange("password_hash", changes.PasswordHash)
	appendChange("first_name", changes.FirstName)
	appendChange("last_name", changes.LastName)
	appendChange("photo_url", changes.PhotoURL)

	args = append(args, now)
	setClauses = append(setClauses, fmt.Sprintf("updated_at = $%d", len(args)))

	args = append(args, id)
	query := fmt.Sprintf("UPDATE users SET %s WHERE id = $%d",
		strings.Join(setClauses, ", "), len(args))

	return query, args
}
