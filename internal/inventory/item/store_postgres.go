// Copyright (c) 2026 Gudangku. All rights reserved.
// Author: dev@gudangku.app

// PostgreSQL implementation of the item storage contracts.
//
// # Error Mapping
//
// Empty list/search results and zero-affected-row mutations are mapped to
// apperr.NotFound here, matching the wire contract the mobile client
// expects. The status summary is the one aggregate that never 404s.

package item

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gudangku/gudangku/internal/platform/apperr"
)

const itemColumns = `id, user_id, name, stock, location, condition, reminder_date, image_path, description, status, created_at, updated_at`

// # Item Repository

// PostgresItemRepository implements the ItemRepository interface using pgx.
type PostgresItemRepository struct {
	pool *pgxpool.Pool
}

// NewItemRepository creates a new PostgreSQL implementation of ItemRepository.
func NewItemRepository(pool *pgxpool.Pool) *PostgresItemRepository {
	return &PostgresItemRepository{pool: pool}
}

/*
ListByOwner retrieves every item belonging to a user, newest first.

Parameters:
  - context: context.Context
  - userID: int64

Returns:
  - []Item: The user's items
  - error: apperr.NotFound when the user has no items, or retrieval failures
*/
func (repository *PostgresItemRepository) ListByOwner(context context.Context, userID int64) ([]Item, error) {
	const query = `
		SELECT ` + itemColumns + `
		FROM items
		WHERE user_id = $1
		ORDER BY id DESC`

	items, err := repository.queryItems(context, query, userID)
	if err != nil {
		return nil, err
	}

	// Empty inventory is reported as not-found, matching the wire contract.
	if len(items) == 0 {
		return nil, apperr.NotFound("Items")
	}

	return items, nil
}

/*
SearchByName matches item names case-insensitively, scoped to the owner.

Parameters:
  - context: context.Context
  - userID: int64
  - query: string

Returns:
  - []Item: Matching items
  - error: apperr.NotFound when nothing matches, or retrieval failures
*/
func (repository *PostgresItemRepository) SearchByName(context context.Context, userID int64, query string) ([]Item, error) {
	const sqlQuery = `
		SELECT ` + itemColumns + `
		FROM items
		WHERE user_id = $1 AND name ILIKE '%' || $2 || '%'
		ORDER BY id DESC`

	items, err := repository.queryItems(context, sqlQuery, userID, query)
	if err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, apperr.NotFound("Items")
	}

	return items, nil
}

/*
FindByIDAndOwner retrieves a single item scoped by (id, owner).

Description: A row owned by a different user scans as zero rows, which maps
to the same not-found as a truly missing row.

Parameters:
  - context: context.Context
  - id: int64
  - userID: int64

Returns:
  - *Item: Hydrated item entity
  - error: apperr.NotFound or execution failures
*/
func (repository *PostgresItemRepository) FindByIDAndOwner(context context.Context, id, userID int64) (*Item, error) {
	const query = `
		SELECT ` + itemColumns + `
		FROM items
		WHERE id = $1 AND user_id = $2`

	item := &Item{}
	err := repository.pool.QueryRow(context, query, id, userID).Scan(
		&item.ID,
		&item.UserID,
		&item.Name,
		&item.Stock,
		&item.Location,
		&item.Condition,
		&item.ReminderDate,
		&item.ImagePath,
		&item.Description,
		&item.Status,
		&item.CreatedAt,
		&item.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Item")
		}
		return nil, fmt.Errorf("postgres_item_repo_find_failed: %w", err)
	}

	return item, nil
}

/*
Create persists a new item row and backfills the generated ID.

Parameters:
  - context: context.Context
  - item: *Item

Returns:
  - error: Storage failures
*/
func (repository *PostgresItemRepository) Create(context context.Context, item *Item) error {
	const query = `
		INSERT INTO items (
			user_id, name, stock, location, condition, reminder_date, image_path, description, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	now := time.Now()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	item.UpdatedAt = now
	if item.Status == "" {
		item.Status = StatusAvailable
	}

	err := repository.pool.QueryRow(context, query,
		item.UserID,
		item.Name,
		item.Stock,
		item.Location,
		item.Condition,
		item.ReminderDate,
		item.ImagePath,
		item.Description,
		item.Status,
		item.CreatedAt,
		item.UpdatedAt,
	).Scan(&item.ID)

	if err != nil {
		return fmt.Errorf("postgres_item_repo_create_failed: %w", err)
	}

	return nil
}

/*
Update overwrites every mutable column of an owned item.

Description: Full-row overwrite selected by (id, user_id). Zero affected
rows means missing or not owned; both map to the same not-found.

Parameters:
  - context: context.Context
  - item: *Item

Returns:
  - error: apperr.NotFound or execution failures
*/
func (repository *PostgresItemRepository) Update(context context.Context, item *Item) error {
	const query = `
		UPDATE items
		SET name = $3, stock = $4, location = $5, condition = $6, reminder_date = $7,
		    image_path = $8, description = $9, status = $10, updated_at = $11
		WHERE id = $1 AND user_id = $2`

	item.UpdatedAt = time.Now()
	commandTag, err := repository.pool.Exec(context, query,
		item.ID,
		item.UserID,
		item.Name,
		item.Stock,
		item.Location,
		item.Condition,
		item.ReminderDate,
		item.ImagePath,
		item.Description,
		item.Status,
		item.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("postgres_item_repo_update_failed: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return apperr.NotFound("Item")
	}

	return nil
}

/*
DeleteByIDAndOwner removes a single owned item.

Parameters:
  - context: context.Context
  - id: int64
  - userID: int64

Returns:
  - error: apperr.NotFound or execution failures
*/
func (repository *PostgresItemRepository) DeleteByIDAndOwner(context context.Context, id, userID int64) error {
	const query = "DELETE FROM items WHERE id = $1 AND user_id = $2"

	commandTag, err := repository.pool.Exec(context, query, id, userID)
	if err != nil {
		return fmt.Errorf("postgres_item_repo_delete_failed: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return apperr.NotFound("Item")
	}

	return nil
}

/*
StatusSummaryByOwner aggregates item counts by status for a user.

Description: COUNT(*) FILTER produces a single row even for a user with no
items, so the zero case is a zero-filled summary rather than an error.

Parameters:
  - context: context.Context
  - userID: int64

Returns:
  - *StatusSummary: Aggregate counts
  - error: Retrieval failures
*/
func (repository *PostgresItemRepository) StatusSummaryByOwner(context context.Context, userID int64) (*StatusSummary, error) {
	const query = `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = $2),
			COUNT(*) FILTER (WHERE status = $3)
		FROM items
		WHERE user_id = $1`

	summary := &StatusSummary{}
	err := repository.pool.QueryRow(context, query, userID, StatusAvailable, StatusUnavailable).Scan(
		&summary.TotalItems,
		&summary.AvailableItems,
		&summary.UnavailableItems,
	)

	if err != nil {
		return nil, fmt.Errorf("postgres_item_repo_summary_failed: %w", err)
	}

	return summary, nil
}

// queryItems executes a multi-row item query and hydrates the slice.
func (repository *PostgresItemRepository) queryItems(context context.Context, query string, args ...any) ([]Item, error) {
	rows, err := repository.pool.Query(context, query, args...)
	if err != nil {
		return nil, fmt.Errorf("postgres_item_repo_query_failed: %w", err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var item Item
		err := rows.Scan(
			&item.ID,
			&item.UserID,
			&item.Name,
			&item.Stock,
			&item.Location,
			&item.Condition,
			&item.ReminderDate,
			&item.ImagePath,
			&item.Description,
			&item.Status,
			&item.CreatedAt,
			&item.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("postgres_item_repo_scan_failed: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_item_repo_rows_failed: %w", err)
	}

	return items, nil
}
