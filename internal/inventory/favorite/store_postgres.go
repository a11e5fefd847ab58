// Copyright (c) 2026 Gudangku. All rights reserved.
// Author: dev@gudangku.app

// PostgreSQL implementation of the favorite storage contracts.

package favorite

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gudangku/gudangku/internal/inventory/item"
	"github.com/gudangku/gudangku/internal/platform/apperr"
	"github.com/gudangku/gudangku/internal/platform/dberr"
)

// # Favorite Repository

// PostgresFavoriteRepository implements the FavoriteRepository interface using pgx.
type PostgresFavoriteRepository struct {
	pool *pgxpool.Pool
}

// NewFavoriteRepository creates a new PostgreSQL implementation of FavoriteRepository.
func NewFavoriteRepository(pool *pgxpool.Pool) *PostgresFavoriteRepository {
	return &PostgresFavoriteRepository{pool: pool}
}

/*
Exists reports whether a favorite row is present for the pair.

Parameters:
  - context: context.Context
  - userID: int64
  - itemID: int64

Returns:
  - bool: Presence of the row
  - error: Retrieval failures
*/
func (repository *PostgresFavoriteRepository) Exists(context context.Context, userID, itemID int64) (bool, error) {
	const query = "SELECT EXISTS (SELECT 1 FROM favorites WHERE user_id = $1 AND item_id = $2)"

	var exists bool
	if err := repository.pool.QueryRow(context, query, userID, itemID).Scan(&exists); err != nil {
		return false, fmt.Errorf("postgres_favorite_repo_exists_failed: %w", err)
	}

	return exists, nil
}

/*
Create inserts a favorite row for the pair.

Description: The (user_id, item_id) primary key enforces uniqueness under
concurrency; SQLSTATE 23505 maps to apperr.Conflict.

Parameters:
  - context: context.Context
  - favorite: *Favorite

Returns:
  - error: apperr.Conflict on duplicates, or execution failures
*/
func (repository *PostgresFavoriteRepository) Create(context context.Context, favorite *Favorite) error {
	const query = `
		INSERT INTO favorites (user_id, item_id, created_at)
		VALUES ($1, $2, $3)`

	if favorite.CreatedAt.IsZero() {
		favorite.CreatedAt = time.Now()
	}

	_, err := repository.pool.Exec(context, query, favorite.UserID, favorite.ItemID, favorite.CreatedAt)
	if err != nil {
		if wrapped := dberr.Wrap(err, "Favorite"); apperr.IsConflict(wrapped) {
			return wrapped
		}
		return fmt.Errorf("postgres_favorite_repo_create_failed: %w", err)
	}

	return nil
}

/*
Delete removes the favorite row for the pair.

Parameters:
  - context: context.Context
  - userID: int64
  - itemID: int64

Returns:
  - error: apperr.NotFound when no row matched, or execution failures
*/
func (repository *PostgresFavoriteRepository) Delete(context context.Context, userID, itemID int64) error {
	const query = "DELETE FROM favorites WHERE user_id = $1 AND item_id = $2"

	commandTag, err := repository.pool.Exec(context, query, userID, itemID)
	if err != nil {
		return fmt.Errorf("postgres_favorite_repo_delete_failed: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return apperr.NotFound("Favorite")
	}

	return nil
}

/*
ListItems returns the full item rows the user has favorited, newest mark first.

Parameters:
  - context: context.Context
  - userID: int64

Returns:
  - []item.Item: Favorited items
  - error: apperr.NotFound when there are none, or retrieval failures
*/
func (repository *PostgresFavoriteRepository) ListItems(context context.Context, userID int64) ([]item.Item, error) {
	const query = `
		SELECT i.id, i.user_id, i.name, i.stock, i.location, i.condition, i.reminder_date,
		       i.image_path, i.description, i.status, i.created_at, i.updated_at
		FROM favorites f
		JOIN items i ON i.id = f.item_id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC`

	rows, err := repository.pool.Query(context, query, userID)
	if err != nil {
		return nil, fmt.Errorf("postgres_favorite_repo_list_failed: %w", err)
	}
	defer rows.Close()

	var items []item.Item
	for rows.Next() {
		var row item.Item
		err := rows.Scan(
			&row.ID,
			&row.UserID,
			&row.Name,
			&row.Stock,
			&row.Location,
			&row.Condition,
			&row.ReminderDate,
			&row.ImagePath,
			&row.Description,
			&row.Status,
			&row.CreatedAt,
			&row.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("postgres_favorite_repo_scan_failed: %w", err)
		}
		items = append(items, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_favorite_repo_rows_failed: %w", err)
	}

	if len(items) == 0 {
		return nil, apperr.NotFound("Favorites")
	}

	return items, nil
}
