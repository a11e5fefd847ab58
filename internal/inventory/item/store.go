// Copyright (c) 2026 Gudangku. All rights reserved.
// Author: dev@gudangku.app

package item

import (
	"context"
	"time"
)

// # Repository Contracts

// ItemRepository defines the persistence contract for inventory items.
//
// Every method that targets a single row takes both the row ID and the
// owner's user ID; the owner filter is part of the query, not an
// afterthought in the service layer.
type ItemRepository interface {
	/*
		ListByOwner retrieves every item belonging to a user.

		Parameters:
		  - context: context.Context
		  - userID: int64

		Returns:
		  - []Item: The user's items; apperr.NotFound when they have none
		  - error: Retrieval failures
	*/
	ListByOwner(context context.Context, userID int64) ([]Item, error)

	/*
		SearchByName performs a case-insensitive substring match on item names,
		scoped to the owner.

		Parameters:
		  - context: context.Context
		  - userID: int64
		  - query: string (non-empty; validated upstream)

		Returns:
		  - []Item: Matching items; apperr.NotFound when nothing matches
		  - error: Retrieval failures
	*/
	SearchByName(context context.Context, userID int64, query string) ([]Item, error)

	/*
		FindByIDAndOwner retrieves a single item scoped by (id, owner).

		Parameters:
		  - context: context.Context
		  - id: int64
		  - userID: int64

		Returns:
		  - *Item: The item, only if owned by userID
		  - error: apperr.NotFound (missing OR not owned) or storage failures
	*/
	FindByIDAndOwner(context context.Context, id, userID int64) (*Item, error)

	/*
		Create persists a new item and backfills its generated row ID.

		Parameters:
		  - context: context.Context
		  - item: *Item

		Returns:
		  - error: Storage failures
	*/
	Create(context context.Context, item *Item) error

	/*
		Update overwrites every mutable column of an owned item.

		Description: Full-row overwrite; this is not a sparse patch. Zero
		affected rows means the item is missing or not owned.

		Parameters:
		  - context: context.Context
		  - item: *Item (ID and UserID select the row)

		Returns:
		  - error: apperr.NotFound or storage failures
	*/
	Update(context context.Context, item *Item) error

	/*
		DeleteByIDAndOwner removes a single owned item.

		Parameters:
		  - context: context.Context
		  - id: int64
		  - userID: int64

		Returns:
		  - error: apperr.NotFound (missing OR not owned) or storage failures
	*/
	DeleteByIDAndOwner(context context.Context, id, userID int64) error

	/*
		StatusSummaryByOwner aggregates item counts by status for a user.

		Description: Always yields one zero-filled row, never not-found.

		Parameters:
		  - context: context.Context
		  - userID: int64

		Returns:
		  - *StatusSummary: Aggregate counts
		  - error: Retrieval failures
	*/
	StatusSummaryByOwner(context context.Context, userID int64) (*StatusSummary, error)
}

// SummaryCache defines the volatile cache contract for status summaries.
//
// Implementations must treat cache failures as soft: the service degrades to
// the database path and never surfaces a cache error to the client.
type SummaryCache interface {
	/*
		Get retrieves a cached summary for a user.

		Returns:
		  - *StatusSummary: The cached aggregate
		  - error: apperr.NotFound on a cache miss, or connectivity errors
	*/
	Get(context context.Context, userID int64) (*StatusSummary, error)

	/*
		Set stores a summary for a user with the given TTL.
	*/
	Set(context context.Context, userID int64, summary *StatusSummary, ttl time.Duration) error

	/*
		Invalidate drops the cached summary for a user.
	*/
	Invalidate(context context.Context, userID int64) error
}
