// Copyright (c) 2026 Gudangku. All rights reserved.
// Author: dev@gudangku.app

/*
Package favorite implements the user-to-item favorites join.

A favorite is a pure (user_id, item_id) pair: created and destroyed
explicitly, never updated in place, unique per pair. Listing favorites
returns the full item rows for the principal's marked items.
*/
package favorite

import (
	"context"
	"time"

	"github.com/gudangku/gudangku/internal/inventory/item"
)

// # Domain Entities

// Favorite represents a single user-to-item bookmark.
type Favorite struct {
	UserID    int64     `json:"user_id"`
	ItemID    int64     `json:"item_id"`
	CreatedAt time.Time `json:"created_at"`
}

// # Repository Contracts

// FavoriteRepository defines the persistence contract for favorites.
type FavoriteRepository interface {
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
	Exists(context context.Context, userID, itemID int64) (bool, error)

	/*
		Create inserts a favorite row for the pair.

		Description: The composite primary key is the backstop against the
		check-then-insert race; a concurrent duplicate surfaces as
		apperr.Conflict.

		Parameters:
		  - context: context.Context
		  - favorite: *Favorite

		Returns:
		  - error: apperr.Conflict on duplicates, or storage failures
	*/
	Create(context context.Context, favorite *Favorite) error

	/*
		Delete removes the favorite row for the pair.

		Parameters:
		  - context: context.Context
		  - userID: int64
		  - itemID: int64

		Returns:
		  - error: apperr.NotFound when no row matched, or storage failures
	*/
	Delete(context context.Context, userID, itemID int64) error

	/*
		ListItems returns the full item rows the user has favorited.

		Parameters:
		  - context: context.Context
		  - userID: int64

		Returns:
		  - []item.Item: Favorited items; apperr.NotFound when there are none
		  - error: Retrieval failures
	*/
	ListItems(context context.Context, userID int64) ([]item.Item, error)
}
